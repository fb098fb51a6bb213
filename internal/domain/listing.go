package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/domain/progression"
	"github.com/swapapp/backend/internal/domain/search"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/dateutil"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ListingDomain interface {
	Create(ctx context.Context, req *model.CreateListingRequest) (*model.CreateListingResponse, error)
	Get(ctx context.Context, req *model.GetListingRequest) (*model.GetListingResponse, error)
	GetList(ctx context.Context, req *model.GetListListingRequest) (*model.GetListListingResponse, error)
	Review(ctx context.Context, req *model.ReviewListingRequest) (*model.ReviewListingResponse, error)
}

type listingDomain struct {
	listingRepo  repository.ListingRepository
	userRepo     repository.UserRepository
	awarder      *pointAwarder
	tiers        *TierCache
	roleVerifier *common.GlobalRoleVerifier
	searchIndex  search.Index
}

func NewListingDomain(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	tiers *TierCache,
	leaderboard Leaderboard,
	searchIndex search.Index,
) *listingDomain {
	return &listingDomain{
		listingRepo:  listingRepo,
		userRepo:     userRepo,
		awarder:      newPointAwarder(userRepo, transactionRepo, leaderboard),
		tiers:        tiers,
		roleVerifier: common.NewGlobalRoleVerifier(userRepo),
		searchIndex:  searchIndex,
	}
}

func (d *listingDomain) Create(
	ctx context.Context, req *model.CreateListingRequest,
) (*model.CreateListingResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Listing requires a title")
	}

	userID := xcontext.RequestUserID(ctx)

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	tiers, err := d.tiers.list(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load tiers: %v", err)
		return nil, errorx.Unknown
	}

	// The daily cap is a tier perk. A tierless user gets no cap exemption; a
	// zero limit in the band means unlimited.
	tier := progression.ResolveTier(progression.LevelFromXP(user.XP), tiers)
	if tier != nil && tier.DailyListingLimit > 0 {
		count, err := d.listingRepo.CountCreatedSince(
			ctx, userID, dateutil.BeginningOfDay(common.Now()))
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count listings: %v", err)
			return nil, errorx.Unknown
		}

		if count >= int64(tier.DailyListingLimit) {
			return nil, errorx.New(errorx.TooManyRequests,
				"Daily listing limit of %d reached", tier.DailyListingLimit)
		}
	}

	listing := &entity.Listing{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
		Status:      entity.ListingPending,
	}

	if err := d.listingRepo.Create(ctx, listing); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create listing: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateListingResponse{ID: listing.ID}, nil
}

func (d *listingDomain) Get(ctx context.Context, req *model.GetListingRequest) (*model.GetListingResponse, error) {
	listing, err := d.listingRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Listing not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get listing: %v", err)
		return nil, errorx.Unknown
	}

	if listing.Status != entity.ListingApproved &&
		listing.UserID != xcontext.RequestUserID(ctx) && !d.isAdmin(ctx) {
		return nil, errorx.New(errorx.NotFound, "Listing not found")
	}

	resp := model.GetListingResponse(convertListing(listing))
	return &resp, nil
}

func (d *listingDomain) GetList(
	ctx context.Context, req *model.GetListListingRequest,
) (*model.GetListListingResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	filter := &repository.ListingFilter{UserID: req.UserID}
	if !d.isAdmin(ctx) && req.UserID != xcontext.RequestUserID(ctx) {
		filter.Status = []entity.ListingStatus{entity.ListingApproved}
	}

	listings, err := d.listingRepo.GetList(ctx, filter, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list listings: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListListingResponse{Listings: []model.Listing{}}
	for i := range listings {
		resp.Listings = append(resp.Listings, convertListing(&listings[i]))
	}

	return resp, nil
}

// Review settles one pending listing the same way submission review does:
// the pending guard plus the award commit in one transaction.
func (d *listingDomain) Review(
	ctx context.Context, req *model.ReviewListingRequest,
) (*model.ReviewListingResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Action != ReviewApprove && req.Action != ReviewReject {
		return nil, errorx.New(errorx.BadRequest, "Action must be approve or reject")
	}

	listing, err := d.listingRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Listing not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get listing: %v", err)
		return nil, errorx.Unknown
	}

	if listing.Status != entity.ListingPending {
		return nil, errorx.New(errorx.BadRequest, "Listing is already reviewed")
	}

	points, xp := listing.Points, listing.Points/2
	if req.Action == ReviewApprove {
		maxAward := xcontext.Configs(ctx).Points.MaxAdminAward
		if req.Points > maxAward || req.XP > maxAward {
			return nil, errorx.New(errorx.BadRequest, "Override exceeds the allowed maximum %d", maxAward)
		}

		if req.Points > 0 {
			points = req.Points
			xp = req.Points / 2
		}

		if req.XP > 0 {
			xp = req.XP
		}
	}

	status := entity.ListingApproved
	if req.Action == ReviewReject {
		status = entity.ListingRejected
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.listingRepo.UpdateReviewByID(ctx, listing.ID, &entity.Listing{
		Status:     status,
		ReviewerID: xcontext.RequestUserID(ctx),
		ReviewedAt: common.Now(),
		AdminNote:  req.AdminNote,
	})
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot update listing review: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Listing is already reviewed")
	}

	if req.Action == ReviewApprove && points > 0 {
		user, err := d.userRepo.GetByID(ctx, listing.UserID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get listing owner: %v", err)
			return nil, errorx.Unknown
		}

		tiers, err := d.tiers.list(ctx)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot load tiers: %v", err)
			return nil, errorx.Unknown
		}

		level := progression.LevelFromXP(user.XP)
		points = uint64(float64(points) * progression.Multiplier(level, tiers))

		err = d.awarder.Award(ctx,
			listing.UserID, points, xp,
			entity.ListingRewardTx, listing.ID,
			common.IdempotencyKey("listing", listing.ID),
			fmt.Sprintf("Listing %q approved", listing.Title),
		)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot pay listing reward: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	// Only approved listings are searchable.
	if req.Action == ReviewApprove {
		err := d.searchIndex.Index(search.ListingDoc, listing.ID, search.ListingData{
			Title:       listing.Title,
			Description: listing.Description,
		})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot index listing: %v", err)
		}
	}

	return &model.ReviewListingResponse{}, nil
}

func (d *listingDomain) isAdmin(ctx context.Context) bool {
	return d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...) == nil
}
