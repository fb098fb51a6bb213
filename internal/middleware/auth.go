package middleware

import (
	"context"
	"strings"

	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/router"
	"github.com/swapapp/backend/pkg/xcontext"
)

// NewAuthVerifier parses the bearer token (or the access token cookie) and
// binds the user id to the context. It never fails by itself; endpoints that
// require a login chain Authenticate after it.
func NewAuthVerifier() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := extractToken(ctx)
		if token == "" {
			return nil, nil
		}

		var accessToken model.AccessToken
		if err := xcontext.TokenEngine(ctx).Verify(token, &accessToken); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}

// Authenticate rejects requests that carry no verified user id.
func Authenticate(ctx context.Context) (context.Context, error) {
	if xcontext.RequestUserID(ctx) == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	return nil, nil
}

func extractToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)

	authorization := req.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		return token
	}

	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
