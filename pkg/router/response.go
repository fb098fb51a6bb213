package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, data any) {
	writeJson(ctx, w, response{Code: 0, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	writeJson(ctx, w, response{Code: int64(errx.Code), Error: errx.Message})
}

func writeJson(ctx context.Context, w http.ResponseWriter, resp response) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}
