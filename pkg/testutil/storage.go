package testutil

import (
	"context"

	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/storage"
)

type MockStorage struct {
	UploadFunc func(ctx context.Context, object *storage.UploadObject) (*storage.UploadResponse, error)
}

func (s *MockStorage) Upload(ctx context.Context, object *storage.UploadObject) (*storage.UploadResponse, error) {
	if s.UploadFunc != nil {
		return s.UploadFunc(ctx, object)
	}

	return nil, errorx.New(errorx.NotImplemented, "Not implemented Upload")
}
