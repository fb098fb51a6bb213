package repository

import (
	"context"
	"time"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
)

type PromotionRepository interface {
	Create(ctx context.Context, data *entity.PromotionPurchase) error
	GetByID(ctx context.Context, id string) (*entity.PromotionPurchase, error)
	GetActiveByTarget(ctx context.Context, targetType entity.PromotionTarget, targetID string) (*entity.PromotionPurchase, error)
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.PromotionPurchase, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type promotionRepository struct{}

func NewPromotionRepository() *promotionRepository {
	return &promotionRepository{}
}

func (r *promotionRepository) Create(ctx context.Context, data *entity.PromotionPurchase) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *promotionRepository) GetByID(ctx context.Context, id string) (*entity.PromotionPurchase, error) {
	var result entity.PromotionPurchase
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *promotionRepository) GetActiveByTarget(
	ctx context.Context, targetType entity.PromotionTarget, targetID string,
) (*entity.PromotionPurchase, error) {
	var result entity.PromotionPurchase
	err := xcontext.DB(ctx).
		Where("target_type=? AND target_id=? AND status=? AND expires_at > ?",
			targetType, targetID, entity.PromotionActive, time.Now()).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *promotionRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.PromotionPurchase, error) {
	result := []entity.PromotionPurchase{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *promotionRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.PromotionPurchase{}).
		Where("status=? AND expires_at < ?", entity.PromotionActive, now).
		Update("status", entity.PromotionExpired)

	return tx.RowsAffected, tx.Error
}
