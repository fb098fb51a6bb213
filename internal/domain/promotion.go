package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/enum"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PromotionDomain interface {
	Purchase(ctx context.Context, req *model.PurchasePromotionRequest) (*model.PurchasePromotionResponse, error)
	GetMine(ctx context.Context, req *model.GetMyPromotionsRequest) (*model.GetMyPromotionsResponse, error)
}

type promotionDomain struct {
	promotionRepo repository.PromotionRepository
	listingRepo   repository.ListingRepository
	questRepo     repository.QuestRepository
	awarder       *pointAwarder
	roleVerifier  *common.GlobalRoleVerifier
}

func NewPromotionDomain(
	promotionRepo repository.PromotionRepository,
	listingRepo repository.ListingRepository,
	questRepo repository.QuestRepository,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
) *promotionDomain {
	return &promotionDomain{
		promotionRepo: promotionRepo,
		listingRepo:   listingRepo,
		questRepo:     questRepo,
		awarder:       newPointAwarder(userRepo, transactionRepo, nil),
		roleVerifier:  common.NewGlobalRoleVerifier(userRepo),
	}
}

// Purchase promotes a listing or quest for a number of days, paid either with
// points through the guarded spend or with money referenced by a receipt.
func (d *promotionDomain) Purchase(
	ctx context.Context, req *model.PurchasePromotionRequest,
) (*model.PurchasePromotionResponse, error) {
	target, err := enum.ToEnum[entity.PromotionTarget](req.TargetType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid target type %s", req.TargetType)
	}

	payment, err := enum.ToEnum[entity.PaymentType](req.PaymentType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid payment type %s", req.PaymentType)
	}

	pointsCfg := xcontext.Configs(ctx).Points
	if req.DurationDays <= 0 || req.DurationDays > pointsCfg.PromotionMaxDays {
		return nil, errorx.New(errorx.BadRequest,
			"Duration must be between 1 and %d days", pointsCfg.PromotionMaxDays)
	}

	if payment == entity.PayWithMoney && req.ReceiptID == "" {
		return nil, errorx.New(errorx.BadRequest, "Money purchase requires a receipt")
	}

	userID := xcontext.RequestUserID(ctx)
	if err := d.checkTarget(ctx, target, req.TargetID, userID); err != nil {
		return nil, err
	}

	if _, err := d.promotionRepo.GetActiveByTarget(ctx, target, req.TargetID); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Target is already promoted")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check active promotion: %v", err)
		return nil, errorx.Unknown
	}

	promotion := &entity.PromotionPurchase{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       userID,
		TargetType:   target,
		TargetID:     req.TargetID,
		PaymentType:  payment,
		DurationDays: req.DurationDays,
		ExpiresAt:    common.Now().AddDate(0, 0, req.DurationDays),
		Status:       entity.PromotionActive,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if payment == entity.PayWithPoints {
		cost := pointsCfg.PromotionCostPerDay * uint64(req.DurationDays)
		promotion.PointsSpent = cost

		err := d.awarder.Spend(ctx,
			userID, cost,
			entity.PromotionPurchaseTx, promotion.ID,
			common.IdempotencyKey("promotion", promotion.ID),
			fmt.Sprintf("Promoted %s for %d days", target, req.DurationDays),
		)
		if err != nil {
			if errors.Is(err, repository.ErrInsufficientPoints) {
				return nil, errorx.New(errorx.InsufficientPoints, "Not enough points")
			}

			xcontext.Logger(ctx).Errorf("Cannot spend points: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		promotion.ReceiptID = sql.NullString{String: req.ReceiptID, Valid: true}
	}

	if err := d.promotionRepo.Create(ctx, promotion); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create promotion: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.flagTarget(ctx, target, req.TargetID, promotion.ExpiresAt); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot flag promoted target: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.PurchasePromotionResponse{
		ID:        promotion.ID,
		ExpiresAt: promotion.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (d *promotionDomain) GetMine(
	ctx context.Context, req *model.GetMyPromotionsRequest,
) (*model.GetMyPromotionsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	promotions, err := d.promotionRepo.GetListByUserID(
		ctx, xcontext.RequestUserID(ctx), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list promotions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyPromotionsResponse{Promotions: []model.PromotionPurchase{}}
	for i := range promotions {
		resp.Promotions = append(resp.Promotions, convertPromotion(&promotions[i]))
	}

	return resp, nil
}

// checkTarget verifies the promoted row exists and the purchaser may promote
// it: listings must belong to the purchaser and be approved, quests are
// promoted by admins only.
func (d *promotionDomain) checkTarget(
	ctx context.Context, target entity.PromotionTarget, targetID, userID string,
) error {
	switch target {
	case entity.PromoteListing:
		listing, err := d.listingRepo.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errorx.New(errorx.NotFound, "Listing not found")
			}

			xcontext.Logger(ctx).Errorf("Cannot get listing: %v", err)
			return errorx.Unknown
		}

		if listing.UserID != userID {
			return errorx.New(errorx.PermissionDenied, "Cannot promote another user's listing")
		}

		if listing.Status != entity.ListingApproved {
			return errorx.New(errorx.Unavailable, "Only approved listings can be promoted")
		}

	case entity.PromoteQuest:
		if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return errorx.New(errorx.PermissionDenied, "Only admins can promote quests")
		}

		if _, err := d.questRepo.GetByID(ctx, targetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errorx.New(errorx.NotFound, "Quest not found")
			}

			xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}

func (d *promotionDomain) flagTarget(
	ctx context.Context, target entity.PromotionTarget, targetID string, until time.Time,
) error {
	switch target {
	case entity.PromoteListing:
		return d.listingRepo.UpdatePromotion(ctx, targetID, true, until)
	case entity.PromoteQuest:
		return d.questRepo.UpdatePromotion(ctx, targetID, true, until)
	}

	return nil
}
