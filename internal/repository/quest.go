package repository

import (
	"context"
	"time"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
)

type QuestFilter struct {
	Status     []entity.QuestStatus
	CategoryID string
}

type QuestRepository interface {
	Create(ctx context.Context, data *entity.Quest) error
	GetByID(ctx context.Context, id string) (*entity.Quest, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Quest, error)
	GetList(ctx context.Context, filter *QuestFilter, offset, limit int) ([]entity.Quest, error)
	UpdateByID(ctx context.Context, id string, data *entity.Quest) error
	UpdatePromotion(ctx context.Context, id string, promoted bool, until time.Time) error
	ClearExpiredPromotions(ctx context.Context, now time.Time) error
}

type questRepository struct{}

func NewQuestRepository() *questRepository {
	return &questRepository{}
}

func (r *questRepository) Create(ctx context.Context, data *entity.Quest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *questRepository) GetByID(ctx context.Context, id string) (*entity.Quest, error) {
	var result entity.Quest
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *questRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Quest, error) {
	result := []entity.Quest{}
	if err := xcontext.DB(ctx).Find(&result, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questRepository) GetList(
	ctx context.Context, filter *QuestFilter, offset, limit int,
) ([]entity.Quest, error) {
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("is_promoted DESC, created_at DESC")

	if len(filter.Status) > 0 {
		tx.Where("status IN (?)", filter.Status)
	}

	if filter.CategoryID != "" {
		tx.Where("category_id=?", filter.CategoryID)
	}

	result := []entity.Quest{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questRepository) UpdateByID(ctx context.Context, id string, data *entity.Quest) error {
	return xcontext.DB(ctx).Model(&entity.Quest{}).Where("id=?", id).Updates(data).Error
}

func (r *questRepository) UpdatePromotion(
	ctx context.Context, id string, promoted bool, until time.Time,
) error {
	return xcontext.DB(ctx).
		Model(&entity.Quest{}).
		Where("id=?", id).
		Updates(map[string]any{"is_promoted": promoted, "promoted_until": until}).Error
}

func (r *questRepository) ClearExpiredPromotions(ctx context.Context, now time.Time) error {
	return xcontext.DB(ctx).
		Model(&entity.Quest{}).
		Where("is_promoted=? AND promoted_until < ?", true, now).
		Update("is_promoted", false).Error
}
