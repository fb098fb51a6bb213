package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/domain/progression"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error)
	ClaimReferral(ctx context.Context, req *model.ClaimReferralRequest) (*model.ClaimReferralResponse, error)
	AdminAdjustPoints(ctx context.Context, req *model.AdminAdjustPointsRequest) (*model.AdminAdjustPointsResponse, error)
}

type userDomain struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	awarder         *pointAwarder
	tiers           *TierCache
	roleVerifier    *common.GlobalRoleVerifier
}

func NewUserDomain(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	tiers *TierCache,
	leaderboard Leaderboard,
) *userDomain {
	return &userDomain{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		awarder:         newPointAwarder(userRepo, transactionRepo, leaderboard),
		tiers:           tiers,
		roleVerifier:    common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *userDomain) GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	tiers, err := d.tiers.list(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load tiers: %v", err)
		return nil, errorx.Unknown
	}

	// The level column is display-only; the response derives everything from
	// xp so a stale cache can never leak out.
	level := progression.LevelFromXP(user.XP)

	return &model.GetMeResponse{
		User:         convertUser(user),
		Points:       user.Points,
		XP:           user.XP,
		Level:        level,
		Progress:     progression.Progress(user.XP, level),
		Tier:         convertTier(progression.ResolveTier(level, tiers)),
		NextTier:     convertTier(progression.NextTier(level, tiers)),
		ReferralCode: user.ReferralCode,
		InviteCount:  user.InviteCount,
	}, nil
}

func (d *userDomain) ClaimReferral(
	ctx context.Context, req *model.ClaimReferralRequest,
) (*model.ClaimReferralResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	referrer, err := d.userRepo.GetByReferralCode(ctx, req.ReferralCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Referral code is not valid")
		}

		xcontext.Logger(ctx).Errorf("Cannot get referrer: %v", err)
		return nil, errorx.Unknown
	}

	if referrer.ID == userID {
		return nil, errorx.New(errorx.BadRequest, "Cannot refer yourself")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	// SetReferredBy only succeeds while referred_by is NULL, so a code can be
	// claimed once per account.
	if err := d.userRepo.SetReferredBy(ctx, userID, referrer.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.AlreadyExists, "Referral already claimed")
		}

		xcontext.Logger(ctx).Errorf("Cannot set referrer: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.IncreaseInviteCount(ctx, referrer.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase invite count: %v", err)
		return nil, errorx.Unknown
	}

	pointsCfg := xcontext.Configs(ctx).Points
	err = d.awarder.Award(ctx,
		referrer.ID, pointsCfg.ReferrerReward, pointsCfg.ReferrerReward,
		entity.ReferralTx, userID,
		common.IdempotencyKey("referral-referrer", userID),
		fmt.Sprintf("Referred %s", userID),
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reward referrer: %v", err)
		return nil, errorx.Unknown
	}

	err = d.awarder.Award(ctx,
		userID, pointsCfg.RefereeReward, pointsCfg.RefereeReward,
		entity.ReferralTx, referrer.ID,
		common.IdempotencyKey("referral-referee", userID),
		"Joined through a referral",
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reward referee: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.ClaimReferralResponse{}, nil
}

func (d *userDomain) AdminAdjustPoints(
	ctx context.Context, req *model.AdminAdjustPointsRequest,
) (*model.AdminAdjustPointsResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Reason == "" {
		return nil, errorx.New(errorx.BadRequest, "Adjustment requires a reason")
	}

	maxAward := xcontext.Configs(ctx).Points.MaxAdminAward
	if req.Amount == 0 || req.Amount > int64(maxAward) || req.Amount < -int64(maxAward) {
		return nil, errorx.New(errorx.BadRequest, "Amount must be non-zero and within ±%d", maxAward)
	}

	if _, err := d.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	adminID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	var err error
	if req.Amount > 0 {
		// Adjustments change the balance only, never xp.
		err = d.awarder.Award(ctx,
			req.UserID, uint64(req.Amount), 0,
			entity.AdminAdjustmentTx, adminID, "", req.Reason)
	} else {
		err = d.awarder.Spend(ctx,
			req.UserID, uint64(-req.Amount),
			entity.AdminAdjustmentTx, adminID, "", req.Reason)
	}

	if err != nil {
		if errors.Is(err, repository.ErrInsufficientPoints) {
			return nil, errorx.New(errorx.InsufficientPoints, "User does not have enough points")
		}

		xcontext.Logger(ctx).Errorf("Cannot adjust points: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.AdminAdjustPointsResponse{}, nil
}
