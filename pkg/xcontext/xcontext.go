package xcontext

import (
	"context"
	"net/http"

	"github.com/swapapp/backend/config"
	"github.com/swapapp/backend/pkg/authenticator"
	"github.com/swapapp/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey          struct{}
	configsKey     struct{}
	loggerKey      struct{}
	tokenEngineKey struct{}
	httpRequestKey struct{}
	httpWriterKey  struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

func DB(ctx context.Context) *gorm.DB {
	return ctx.Value(dbKey{}).(*gorm.DB)
}

// WithDBTransaction begins a transaction and replaces the DB in context with
// it. The caller must finish with WithCommitDBTransaction or
// WithRollbackDBTransaction on the returned context.
func WithDBTransaction(ctx context.Context) context.Context {
	return WithDB(ctx, DB(ctx).Begin())
}

// WithCommitDBTransaction commits the current transaction. Calling it on a
// context whose transaction already rolled back is a no-op.
func WithCommitDBTransaction(ctx context.Context) {
	DB(ctx).Commit()
}

// WithRollbackDBTransaction rollbacks the current transaction. It is safe to
// defer it before WithCommitDBTransaction; rollback after commit is a no-op.
func WithRollbackDBTransaction(ctx context.Context) {
	DB(ctx).Rollback()
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey{}).(config.Configs)
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	return ctx.Value(loggerKey{}).(logger.Logger)
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine {
	return ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine)
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	return ctx.Value(httpRequestKey{}).(*http.Request)
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	return ctx.Value(httpWriterKey{}).(http.ResponseWriter)
}
