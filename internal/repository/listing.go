package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
)

type ListingFilter struct {
	UserID string
	Status []entity.ListingStatus
}

type ListingRepository interface {
	Create(ctx context.Context, data *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	GetList(ctx context.Context, filter *ListingFilter, offset, limit int) ([]entity.Listing, error)
	CountCreatedSince(ctx context.Context, userID string, since time.Time) (int64, error)
	UpdateReviewByID(ctx context.Context, id string, data *entity.Listing) error
	UpdatePromotion(ctx context.Context, id string, promoted bool, until time.Time) error
	ClearExpiredPromotions(ctx context.Context, now time.Time) error
}

type listingRepository struct{}

func NewListingRepository() *listingRepository {
	return &listingRepository{}
}

func (r *listingRepository) Create(ctx context.Context, data *entity.Listing) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	var result entity.Listing
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *listingRepository) GetList(
	ctx context.Context, filter *ListingFilter, offset, limit int,
) ([]entity.Listing, error) {
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("is_promoted DESC, created_at DESC")

	if len(filter.Status) > 0 {
		tx.Where("status IN (?)", filter.Status)
	}

	if filter.UserID != "" {
		tx.Where("user_id=?", filter.UserID)
	}

	result := []entity.Listing{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *listingRepository) CountCreatedSince(
	ctx context.Context, userID string, since time.Time,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Listing{}).
		Where("user_id=? AND created_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *listingRepository) UpdateReviewByID(ctx context.Context, id string, data *entity.Listing) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Listing{}).
		Where("id=? AND status=?", id, entity.ListingPending).
		Updates(data)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("listing is not pending anymore")
	}

	return nil
}

func (r *listingRepository) UpdatePromotion(
	ctx context.Context, id string, promoted bool, until time.Time,
) error {
	return xcontext.DB(ctx).
		Model(&entity.Listing{}).
		Where("id=?", id).
		Updates(map[string]any{"is_promoted": promoted, "promoted_until": until}).Error
}

func (r *listingRepository) ClearExpiredPromotions(ctx context.Context, now time.Time) error {
	return xcontext.DB(ctx).
		Model(&entity.Listing{}).
		Where("is_promoted=? AND promoted_until < ?", true, now).
		Update("is_promoted", false).Error
}
