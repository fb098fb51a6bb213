package repository

import (
	"context"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
)

type LevelTierRepository interface {
	Create(ctx context.Context, data *entity.LevelTier) error
	GetList(ctx context.Context) ([]entity.LevelTier, error)
	UpdateByID(ctx context.Context, id string, data *entity.LevelTier) error
	DeleteAll(ctx context.Context) error
}

type levelTierRepository struct{}

func NewLevelTierRepository() *levelTierRepository {
	return &levelTierRepository{}
}

func (r *levelTierRepository) Create(ctx context.Context, data *entity.LevelTier) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *levelTierRepository) GetList(ctx context.Context) ([]entity.LevelTier, error) {
	result := []entity.LevelTier{}
	if err := xcontext.DB(ctx).Order("min_level ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *levelTierRepository) UpdateByID(ctx context.Context, id string, data *entity.LevelTier) error {
	return xcontext.DB(ctx).Model(&entity.LevelTier{}).Where("id=?", id).Updates(data).Error
}

// DeleteAll hard-deletes every tier row. Only the seeding path uses it,
// inside a transaction that recreates the full band set.
func (r *levelTierRepository) DeleteAll(ctx context.Context) error {
	return xcontext.DB(ctx).Unscoped().Where("1=1").Delete(&entity.LevelTier{}).Error
}
