package repository

import (
	"context"
	"errors"
	"time"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
)

// ErrCodeNotRedeemable is returned when a verification races another one or
// targets a non-issued code.
var ErrCodeNotRedeemable = errors.New("code is not redeemable")

type RedemptionRepository interface {
	Create(ctx context.Context, data *entity.Redemption) error
	GetByCode(ctx context.Context, code string) (*entity.Redemption, error)
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.Redemption, error)
	MarkRedeemed(ctx context.Context, code, verifierID string) error
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type redemptionRepository struct{}

func NewRedemptionRepository() *redemptionRepository {
	return &redemptionRepository{}
}

func (r *redemptionRepository) Create(ctx context.Context, data *entity.Redemption) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *redemptionRepository) GetByCode(ctx context.Context, code string) (*entity.Redemption, error) {
	var result entity.Redemption
	if err := xcontext.DB(ctx).Take(&result, "code=?", code).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *redemptionRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.Redemption, error) {
	result := []entity.Redemption{}
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

// MarkRedeemed flips issued->redeemed exactly once. The status guard in the
// WHERE clause makes the transition terminal even under concurrent
// verifications.
func (r *redemptionRepository) MarkRedeemed(ctx context.Context, code, verifierID string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Redemption{}).
		Where("code=? AND status=?", code, entity.RedemptionIssued).
		Updates(map[string]any{
			"status":      entity.RedemptionRedeemed,
			"redeemed_at": time.Now(),
			"verifier_id": verifierID,
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return ErrCodeNotRedeemable
	}

	return nil
}

func (r *redemptionRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.Redemption{}).
		Where("status=? AND expires_at < ?", entity.RedemptionIssued, now).
		Update("status", entity.RedemptionExpired)

	return tx.RowsAffected, tx.Error
}
