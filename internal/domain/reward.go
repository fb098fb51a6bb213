package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/crypto"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// codeAttempts bounds the retries on a redemption code collision. With a
// 31^12 code space, more than one retry is already vanishingly rare.
const codeAttempts = 10

type RewardDomain interface {
	Create(ctx context.Context, req *model.CreateRewardRequest) (*model.CreateRewardResponse, error)
	Update(ctx context.Context, req *model.UpdateRewardRequest) (*model.UpdateRewardResponse, error)
	GetList(ctx context.Context, req *model.GetListRewardRequest) (*model.GetListRewardResponse, error)
	Redeem(ctx context.Context, req *model.RedeemRewardRequest) (*model.RedeemRewardResponse, error)
	Verify(ctx context.Context, req *model.VerifyRedemptionRequest) (*model.VerifyRedemptionResponse, error)
	GetMyRedemptions(ctx context.Context, req *model.GetMyRedemptionsRequest) (*model.GetMyRedemptionsResponse, error)
}

type rewardDomain struct {
	rewardRepo      repository.RewardRepository
	redemptionRepo  repository.RedemptionRepository
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	awarder         *pointAwarder
	roleVerifier    *common.GlobalRoleVerifier
}

func NewRewardDomain(
	rewardRepo repository.RewardRepository,
	redemptionRepo repository.RedemptionRepository,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
) *rewardDomain {
	return &rewardDomain{
		rewardRepo:      rewardRepo,
		redemptionRepo:  redemptionRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		awarder:         newPointAwarder(userRepo, transactionRepo, nil),
		roleVerifier:    common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *rewardDomain) Create(
	ctx context.Context, req *model.CreateRewardRequest,
) (*model.CreateRewardResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Reward requires a name")
	}

	if req.CostPoints == 0 {
		return nil, errorx.New(errorx.BadRequest, "Reward requires a cost")
	}

	reward := &entity.Reward{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CostPoints:  req.CostPoints,
		IsActive:    true,
	}

	if err := d.rewardRepo.Create(ctx, reward); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reward: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateRewardResponse{ID: reward.ID}, nil
}

func (d *rewardDomain) Update(
	ctx context.Context, req *model.UpdateRewardRequest,
) (*model.UpdateRewardResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if _, err := d.rewardRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Reward not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
		return nil, errorx.Unknown
	}

	err := d.rewardRepo.UpdateByID(ctx, req.ID, &entity.Reward{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update reward: %v", err)
		return nil, errorx.Unknown
	}

	if req.IsActive != nil {
		if err := d.rewardRepo.SetActive(ctx, req.ID, *req.IsActive); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot set reward active flag: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.UpdateRewardResponse{}, nil
}

func (d *rewardDomain) GetList(
	ctx context.Context, req *model.GetListRewardRequest,
) (*model.GetListRewardResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	// Non-admins only see redeemable rewards.
	activeOnly := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...) != nil

	rewards, err := d.rewardRepo.GetList(ctx, &repository.RewardFilter{
		Category:   req.Category,
		ActiveOnly: activeOnly,
	}, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list rewards: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListRewardResponse{Rewards: []model.Reward{}}
	for i := range rewards {
		resp.Rewards = append(resp.Rewards, convertReward(&rewards[i]))
	}

	return resp, nil
}

// Redeem exchanges points for a single-use code. The guarded deduction, the
// ledger row, and the redemption row commit in one transaction; a losing
// concurrent spend rolls everything back.
func (d *rewardDomain) Redeem(
	ctx context.Context, req *model.RedeemRewardRequest,
) (*model.RedeemRewardResponse, error) {
	reward, err := d.rewardRepo.GetByID(ctx, req.RewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Reward not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
		return nil, errorx.Unknown
	}

	if !reward.IsActive {
		return nil, errorx.New(errorx.Unavailable, "Reward is unavailable")
	}

	userID := xcontext.RequestUserID(ctx)
	redemptionID := uuid.NewString()
	pointsCfg := xcontext.Configs(ctx).Points

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.awarder.Spend(ctx,
		userID, reward.CostPoints,
		entity.RedemptionTx, redemptionID,
		common.IdempotencyKey("redemption", redemptionID),
		fmt.Sprintf("Redeemed %q", reward.Name),
	)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientPoints) {
			return nil, errorx.New(errorx.InsufficientPoints, "Not enough points")
		}

		xcontext.Logger(ctx).Errorf("Cannot spend points: %v", err)
		return nil, errorx.Unknown
	}

	code, err := d.uniqueCode(ctx, pointsCfg.RedemptionCodeLength)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate redemption code: %v", err)
		return nil, errorx.Unknown
	}

	redemption := &entity.Redemption{
		Base:        entity.Base{ID: redemptionID},
		Code:        code,
		UserID:      userID,
		RewardID:    reward.ID,
		PointsSpent: reward.CostPoints,
		Status:      entity.RedemptionIssued,
		ExpiresAt:   common.Now().AddDate(0, 0, pointsCfg.RedemptionValidDays),
	}

	if err := d.redemptionRepo.Create(ctx, redemption); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create redemption: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.RedeemRewardResponse{
		Code:      redemption.Code,
		ExpiresAt: redemption.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// Verify consumes an issued code. The guarded status update makes redeemed
// and expired terminal even when two verifiers race on the same code.
func (d *rewardDomain) Verify(
	ctx context.Context, req *model.VerifyRedemptionRequest,
) (*model.VerifyRedemptionResponse, error) {
	if err := d.verifierAllowed(ctx); err != nil {
		return nil, err
	}

	redemption, err := d.redemptionRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Code not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get redemption: %v", err)
		return nil, errorx.Unknown
	}

	switch redemption.Status {
	case entity.RedemptionRedeemed:
		return nil, errorx.New(errorx.CodeAlreadyRedeemed, "Code is already redeemed")
	case entity.RedemptionExpired:
		return nil, errorx.New(errorx.CodeExpired, "Code is expired")
	}

	// An overdue code that the cron has not flipped yet is still expired.
	if redemption.ExpiresAt.Before(common.Now()) {
		return nil, errorx.New(errorx.CodeExpired, "Code is expired")
	}

	err = d.redemptionRepo.MarkRedeemed(ctx, req.Code, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotRedeemable) {
			return nil, errorx.New(errorx.CodeAlreadyRedeemed, "Code is already redeemed")
		}

		xcontext.Logger(ctx).Errorf("Cannot mark redemption: %v", err)
		return nil, errorx.Unknown
	}

	return &model.VerifyRedemptionResponse{
		RewardID:    redemption.RewardID,
		PointsSpent: redemption.PointsSpent,
	}, nil
}

func (d *rewardDomain) GetMyRedemptions(
	ctx context.Context, req *model.GetMyRedemptionsRequest,
) (*model.GetMyRedemptionsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	redemptions, err := d.redemptionRepo.GetListByUserID(
		ctx, xcontext.RequestUserID(ctx), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list redemptions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyRedemptionsResponse{Redemptions: []model.Redemption{}}
	for i := range redemptions {
		resp.Redemptions = append(resp.Redemptions, convertRedemption(&redemptions[i]))
	}

	return resp, nil
}

// verifierAllowed restricts code verification to supporters and admins.
func (d *rewardDomain) verifierAllowed(ctx context.Context) error {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get verifier: %v", err)
		return errorx.Unknown
	}

	if user.UserType == entity.Supporter {
		return nil
	}

	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		return errorx.New(errorx.PermissionDenied, "Only supporters can verify codes")
	}

	return nil
}

func (d *rewardDomain) uniqueCode(ctx context.Context, length uint) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := crypto.GenerateRedemptionCode(length)

		_, err := d.redemptionRepo.GetByCode(ctx, code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}

		if err != nil {
			return "", err
		}
	}

	return "", errors.New("too many code collisions")
}
