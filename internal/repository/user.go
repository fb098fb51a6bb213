package repository

import (
	"context"
	"errors"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// ErrInsufficientPoints is returned when a guarded spend finds less balance
// than the requested amount.
var ErrInsufficientPoints = errors.New("insufficient points")

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	GetByReferralCode(ctx context.Context, code string) (*entity.User, error)
	UpdateByID(ctx context.Context, id string, data *entity.User) error
	IncreasePoints(ctx context.Context, userID string, points, xp uint64) error
	DecreasePoints(ctx context.Context, userID string, points uint64) error
	UpdateLevel(ctx context.Context, userID string, level int) error
	IncreaseInviteCount(ctx context.Context, userID string) error
	SetReferredBy(ctx context.Context, userID, referrerID string) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.User, error) {
	result := []entity.User{}
	if err := xcontext.DB(ctx).Find(&result, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "name=?", name).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "referral_code=?", code).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, data *entity.User) error {
	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(data).Error
}

// IncreasePoints atomically adds points and xp on the server side. It never
// reads the balance first; earning is always safe.
func (r *userRepository) IncreasePoints(ctx context.Context, userID string, points, xp uint64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", userID).
		Updates(map[string]any{
			"points": gorm.Expr("points+?", points),
			"xp":     gorm.Expr("xp+?", xp),
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DecreasePoints atomically deducts points. The balance guard lives in the
// WHERE clause so two concurrent spends can never drive the balance
// negative; the losing spend gets ErrInsufficientPoints.
func (r *userRepository) DecreasePoints(ctx context.Context, userID string, points uint64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=? AND points >= ?", userID, points).
		Update("points", gorm.Expr("points-?", points))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return ErrInsufficientPoints
	}

	return nil
}

func (r *userRepository) UpdateLevel(ctx context.Context, userID string, level int) error {
	return xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", userID).
		Update("level", level).Error
}

func (r *userRepository) IncreaseInviteCount(ctx context.Context, userID string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", userID).
		Update("invite_count", gorm.Expr("invite_count+1"))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) SetReferredBy(ctx context.Context, userID, referrerID string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=? AND referred_by IS NULL", userID).
		Update("referred_by", referrerID)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
