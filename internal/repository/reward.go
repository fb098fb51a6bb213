package repository

import (
	"context"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
)

type RewardFilter struct {
	Category   string
	ActiveOnly bool
}

type RewardRepository interface {
	Create(ctx context.Context, data *entity.Reward) error
	GetByID(ctx context.Context, id string) (*entity.Reward, error)
	GetList(ctx context.Context, filter *RewardFilter, offset, limit int) ([]entity.Reward, error)
	UpdateByID(ctx context.Context, id string, data *entity.Reward) error
	SetActive(ctx context.Context, id string, active bool) error
}

type rewardRepository struct{}

func NewRewardRepository() *rewardRepository {
	return &rewardRepository{}
}

func (r *rewardRepository) Create(ctx context.Context, data *entity.Reward) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *rewardRepository) GetByID(ctx context.Context, id string) (*entity.Reward, error) {
	var result entity.Reward
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *rewardRepository) GetList(
	ctx context.Context, filter *RewardFilter, offset, limit int,
) ([]entity.Reward, error) {
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("cost_points ASC")

	if filter.ActiveOnly {
		tx.Where("is_active=?", true)
	}

	if filter.Category != "" {
		tx.Where("category=?", filter.Category)
	}

	result := []entity.Reward{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *rewardRepository) UpdateByID(ctx context.Context, id string, data *entity.Reward) error {
	return xcontext.DB(ctx).Model(&entity.Reward{}).Where("id=?", id).Updates(data).Error
}

func (r *rewardRepository) SetActive(ctx context.Context, id string, active bool) error {
	return xcontext.DB(ctx).
		Model(&entity.Reward{}).
		Where("id=?", id).
		Update("is_active", active).Error
}
