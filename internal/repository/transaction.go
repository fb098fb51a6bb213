package repository

import (
	"context"
	"time"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
)

type UserEarning struct {
	UserID string
	Earned int64
}

type TransactionRepository interface {
	Create(ctx context.Context, data *entity.PointsTransaction) error
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.PointsTransaction, error)
	SumByUserID(ctx context.Context, userID string) (int64, error)
	GetTopEarners(ctx context.Context, since time.Time, limit int) ([]UserEarning, error)
}

type transactionRepository struct{}

func NewTransactionRepository() *transactionRepository {
	return &transactionRepository{}
}

// Create appends one immutable ledger row. There is deliberately no update
// or delete method on this repository.
func (r *transactionRepository) Create(ctx context.Context, data *entity.PointsTransaction) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *transactionRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.PointsTransaction, error) {
	result := []entity.PointsTransaction{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *transactionRepository) SumByUserID(ctx context.Context, userID string) (int64, error) {
	var sum int64
	err := xcontext.DB(ctx).
		Model(&entity.PointsTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id=?", userID).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return sum, nil
}

// GetTopEarners aggregates positive ledger entries since a point in time.
// It is the fallback when the redis leaderboard is unavailable.
func (r *transactionRepository) GetTopEarners(
	ctx context.Context, since time.Time, limit int,
) ([]UserEarning, error) {
	result := []UserEarning{}
	err := xcontext.DB(ctx).
		Model(&entity.PointsTransaction{}).
		Select("user_id, SUM(amount) as earned").
		Where("amount > 0 AND created_at >= ?", since).
		Group("user_id").
		Order("earned DESC").
		Limit(limit).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
