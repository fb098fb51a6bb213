package domain

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/domain/progression"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/idutil"
	"github.com/swapapp/backend/pkg/xcontext"
)

// pointAwarder is the single path through which balances change. Every
// mutation pairs one guarded balance update with one immutable ledger row;
// callers are expected to run it inside a database transaction so the pair
// commits or rolls back together.
type pointAwarder struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	leaderboard     Leaderboard
}

func newPointAwarder(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	leaderboard Leaderboard,
) *pointAwarder {
	return &pointAwarder{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		leaderboard:     leaderboard,
	}
}

// Award adds points and xp, appends the ledger row, and recomputes the
// cached level from the new xp. A level advance also pays the level bonus
// as its own ledger row.
func (a *pointAwarder) Award(
	ctx context.Context,
	userID string,
	points, xp uint64,
	txType entity.TransactionType,
	relatedID, idempotencyKey, description string,
) error {
	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// The ledger insert goes first: a duplicated idempotency key aborts the
	// whole award before any balance change.
	err = a.transactionRepo.Create(ctx, &entity.PointsTransaction{
		ID:             idutil.NewSnowflakeID(),
		UserID:         userID,
		Amount:         int64(points),
		Type:           txType,
		RelatedID:      nullString(relatedID),
		Description:    description,
		IdempotencyKey: nullString(idempotencyKey),
	})
	if err != nil {
		return err
	}

	if err := a.userRepo.IncreasePoints(ctx, userID, points, xp); err != nil {
		return err
	}

	newLevel := progression.LevelFromXP(user.XP + xp)
	if newLevel != user.Level {
		if err := a.userRepo.UpdateLevel(ctx, userID, newLevel); err != nil {
			return err
		}
	}

	if newLevel > user.Level {
		if err := a.awardLevelBonus(ctx, userID, user.Level, newLevel); err != nil {
			return err
		}
	}

	if a.leaderboard != nil {
		// Best effort. The ledger is the source of truth and the fallback.
		if err := a.leaderboard.IncreasePoint(ctx, userID, points); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot update leaderboard: %v", err)
		}
	}

	return nil
}

// Spend deducts points through the guarded update and appends the negative
// ledger row. It never touches xp; spending does not reduce progression.
func (a *pointAwarder) Spend(
	ctx context.Context,
	userID string,
	points uint64,
	txType entity.TransactionType,
	relatedID, idempotencyKey, description string,
) error {
	if err := a.userRepo.DecreasePoints(ctx, userID, points); err != nil {
		return err
	}

	return a.transactionRepo.Create(ctx, &entity.PointsTransaction{
		ID:             idutil.NewSnowflakeID(),
		UserID:         userID,
		Amount:         -int64(points),
		Type:           txType,
		RelatedID:      nullString(relatedID),
		Description:    description,
		IdempotencyKey: nullString(idempotencyKey),
	})
}

func (a *pointAwarder) awardLevelBonus(ctx context.Context, userID string, oldLevel, newLevel int) error {
	bonus := xcontext.Configs(ctx).Points.LevelUpBonus * uint64(newLevel-oldLevel)
	if bonus == 0 {
		return nil
	}

	err := a.transactionRepo.Create(ctx, &entity.PointsTransaction{
		ID:             idutil.NewSnowflakeID(),
		UserID:         userID,
		Amount:         int64(bonus),
		Type:           entity.LevelBonusTx,
		Description:    fmt.Sprintf("Reached level %d", newLevel),
		IdempotencyKey: nullString(common.IdempotencyKey("level-bonus", userID, fmt.Sprint(newLevel))),
	})
	if err != nil {
		return err
	}

	// The bonus pays points only, so it cannot trigger another level up.
	return a.userRepo.IncreasePoints(ctx, userID, bonus, 0)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: s, Valid: true}
}
