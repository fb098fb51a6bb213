package repository

import (
	"context"
	"fmt"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type SubmissionFilter struct {
	QuestID string
	UserID  string
	Status  []entity.SubmissionStatus
}

type SubmissionRepository interface {
	Create(ctx context.Context, data *entity.QuestSubmission) error
	GetByID(ctx context.Context, id string) (*entity.QuestSubmission, error)
	GetLast(ctx context.Context, userID, questID string) (*entity.QuestSubmission, error)
	GetList(ctx context.Context, filter *SubmissionFilter, offset, limit int) ([]entity.QuestSubmission, error)
	UpdateReviewByID(ctx context.Context, id string, data *entity.QuestSubmission) error
	GetStreak(ctx context.Context, userID string) (*entity.SubmissionStreak, error)
	UpsertStreak(ctx context.Context, data *entity.SubmissionStreak) error
}

type submissionRepository struct{}

func NewSubmissionRepository() *submissionRepository {
	return &submissionRepository{}
}

func (r *submissionRepository) Create(ctx context.Context, data *entity.QuestSubmission) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*entity.QuestSubmission, error) {
	var result entity.QuestSubmission
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *submissionRepository) GetLast(
	ctx context.Context, userID, questID string,
) (*entity.QuestSubmission, error) {
	var result entity.QuestSubmission
	err := xcontext.DB(ctx).
		Where("user_id=? AND quest_id=?", userID, questID).
		Order("created_at DESC").
		First(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *submissionRepository) GetList(
	ctx context.Context, filter *SubmissionFilter, offset, limit int,
) ([]entity.QuestSubmission, error) {
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at ASC")

	if len(filter.Status) > 0 {
		tx.Where("status IN (?)", filter.Status)
	}

	if filter.QuestID != "" {
		tx.Where("quest_id=?", filter.QuestID)
	}

	if filter.UserID != "" {
		tx.Where("user_id=?", filter.UserID)
	}

	result := []entity.QuestSubmission{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateReviewByID flips a pending submission to a terminal status. The
// pending guard makes a double review a no-op error instead of a double
// award.
func (r *submissionRepository) UpdateReviewByID(
	ctx context.Context, id string, data *entity.QuestSubmission,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.QuestSubmission{}).
		Where("id=? AND status=?", id, entity.SubmissionPending).
		Updates(data)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("submission is not pending anymore")
	}

	return nil
}

func (r *submissionRepository) GetStreak(
	ctx context.Context, userID string,
) (*entity.SubmissionStreak, error) {
	var result entity.SubmissionStreak
	if err := xcontext.DB(ctx).Take(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *submissionRepository) UpsertStreak(ctx context.Context, data *entity.SubmissionStreak) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_day", "streaks"}),
		}).
		Create(data).Error
}
