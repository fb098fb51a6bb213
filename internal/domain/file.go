package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/storage"
	"github.com/swapapp/backend/pkg/xcontext"
)

type FileDomain interface {
	UploadImage(ctx context.Context, req *model.UploadImageRequest) (*model.UploadImageResponse, error)
}

type fileDomain struct {
	fileRepo    repository.FileRepository
	fileStorage storage.Storage
}

func NewFileDomain(fileRepo repository.FileRepository, fileStorage storage.Storage) *fileDomain {
	return &fileDomain{fileRepo: fileRepo, fileStorage: fileStorage}
}

// UploadImage stores a proof image. The caller references the returned URL
// in a submission.
func (d *fileDomain) UploadImage(
	ctx context.Context, req *model.UploadImageRequest,
) (*model.UploadImageResponse, error) {
	uresp, err := common.ProcessImage(ctx, d.fileStorage, "image", "proofs")
	if err != nil {
		return nil, err
	}

	err = d.fileRepo.Create(ctx, &entity.File{
		Base:      entity.Base{ID: uuid.NewString()},
		Mime:      "image",
		Name:      uresp.FileName,
		CreatedBy: xcontext.RequestUserID(ctx),
		Url:       uresp.Url,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save file record: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UploadImageResponse{Url: uresp.Url}, nil
}
