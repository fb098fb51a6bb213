package domain

import (
	"context"

	"github.com/puzpuzpuz/xsync"
	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
)

const tierCacheKey = "tiers"

// TierCache keeps the tier band set in memory. Tiers change rarely (seeding
// or an admin edit), so every read path goes through here instead of the
// database.
type TierCache struct {
	tierRepo repository.LevelTierRepository
	cached   *xsync.MapOf[string, []entity.LevelTier]
}

func NewTierCache(tierRepo repository.LevelTierRepository) *TierCache {
	return &TierCache{
		tierRepo: tierRepo,
		cached:   xsync.NewMapOf[[]entity.LevelTier](),
	}
}

func (c *TierCache) list(ctx context.Context) ([]entity.LevelTier, error) {
	if tiers, ok := c.cached.Load(tierCacheKey); ok {
		return tiers, nil
	}

	tiers, err := c.tierRepo.GetList(ctx)
	if err != nil {
		return nil, err
	}

	c.cached.Store(tierCacheKey, tiers)
	return tiers, nil
}

func (c *TierCache) invalidate() {
	c.cached.Delete(tierCacheKey)
}

type TierDomain interface {
	GetTiers(ctx context.Context, req *model.GetTiersRequest) (*model.GetTiersResponse, error)
	UpdateTier(ctx context.Context, req *model.UpdateTierRequest) (*model.UpdateTierResponse, error)
}

type tierDomain struct {
	tierRepo     repository.LevelTierRepository
	tiers        *TierCache
	roleVerifier *common.GlobalRoleVerifier
}

func NewTierDomain(
	tierRepo repository.LevelTierRepository,
	tiers *TierCache,
	userRepo repository.UserRepository,
) *tierDomain {
	return &tierDomain{
		tierRepo:     tierRepo,
		tiers:        tiers,
		roleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *tierDomain) GetTiers(
	ctx context.Context, req *model.GetTiersRequest,
) (*model.GetTiersResponse, error) {
	tiers, err := d.tiers.list(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load tiers: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetTiersResponse{Tiers: []model.Tier{}}
	for i := range tiers {
		resp.Tiers = append(resp.Tiers, *convertTier(&tiers[i]))
	}

	return resp, nil
}

func (d *tierDomain) UpdateTier(
	ctx context.Context, req *model.UpdateTierRequest,
) (*model.UpdateTierResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.PointMultiplier < 0 {
		return nil, errorx.New(errorx.BadRequest, "Multiplier must not be negative")
	}

	err := d.tierRepo.UpdateByID(ctx, req.ID, &entity.LevelTier{
		Name:              req.Name,
		PointMultiplier:   req.PointMultiplier,
		DailyListingLimit: req.DailyListingLimit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update tier: %v", err)
		return nil, errorx.Unknown
	}

	d.tiers.invalidate()
	return &model.UpdateTierResponse{}, nil
}
