package router

import (
	"encoding/json"
	"net/http"

	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router, method string, handler HandlerFunc[Request, Response],
) http.Handler {
	befores := append([]MiddlewareFunc{}, router.befores...)
	closers := append([]CloserFunc{}, router.closers...)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = xcontext.WithHTTPRequest(ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithTokenEngine(ctx, router.tokenEngine)
		ctx = xcontext.WithErrorHolder(ctx)
		ctx = xcontext.WithResponseHolder(ctx)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		if r.Method != method {
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Method not allowed"))
			writeError(ctx, w, xcontext.Error(ctx))
			return
		}

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = bindQuery(r, &req)
		case http.MethodPost:
			err = json.NewDecoder(r.Body).Decode(&req)
		}
		if err != nil {
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot parse the request"))
			writeError(ctx, w, xcontext.Error(ctx))
			return
		}

		for _, m := range befores {
			newCtx, err := m(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				writeError(ctx, w, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			xcontext.SetError(ctx, err)
			writeError(ctx, w, err)
			return
		}

		xcontext.SetResponse(ctx, resp)
		writeSuccess(ctx, w, resp)
	})
}
