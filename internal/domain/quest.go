package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/domain/search"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/enum"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type QuestDomain interface {
	Create(ctx context.Context, req *model.CreateQuestRequest) (*model.CreateQuestResponse, error)
	Update(ctx context.Context, req *model.UpdateQuestRequest) (*model.UpdateQuestResponse, error)
	Get(ctx context.Context, req *model.GetQuestRequest) (*model.GetQuestResponse, error)
	GetList(ctx context.Context, req *model.GetListQuestRequest) (*model.GetListQuestResponse, error)
	Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error)
}

type questDomain struct {
	questRepo    repository.QuestRepository
	listingRepo  repository.ListingRepository
	roleVerifier *common.GlobalRoleVerifier
	searchIndex  search.Index
}

func NewQuestDomain(
	questRepo repository.QuestRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	searchIndex search.Index,
) *questDomain {
	return &questDomain{
		questRepo:    questRepo,
		listingRepo:  listingRepo,
		roleVerifier: common.NewGlobalRoleVerifier(userRepo),
		searchIndex:  searchIndex,
	}
}

func (d *questDomain) Create(
	ctx context.Context, req *model.CreateQuestRequest,
) (*model.CreateQuestResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Quest requires a title")
	}

	if req.Points == 0 {
		return nil, errorx.New(errorx.BadRequest, "Quest requires a point value")
	}

	quest := &entity.Quest{
		Base:           entity.Base{ID: uuid.NewString()},
		Title:          req.Title,
		Description:    req.Description,
		Status:         entity.QuestActive,
		Points:         req.Points,
		CreatedBy:      xcontext.RequestUserID(ctx),
		ValidationData: req.Validation,
	}

	if req.CategoryID != "" {
		quest.CategoryID = sql.NullString{String: req.CategoryID, Valid: true}
	}

	if err := d.questRepo.Create(ctx, quest); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create quest: %v", err)
		return nil, errorx.Unknown
	}

	d.indexQuest(ctx, quest)
	return &model.CreateQuestResponse{ID: quest.ID}, nil
}

func (d *questDomain) Update(
	ctx context.Context, req *model.UpdateQuestRequest,
) (*model.UpdateQuestResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Quest not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	update := &entity.Quest{
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.QuestStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		update.Status = status
	}

	if err := d.questRepo.UpdateByID(ctx, quest.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update quest: %v", err)
		return nil, errorx.Unknown
	}

	if update.Status == entity.QuestArchived {
		if err := d.searchIndex.Delete(search.QuestDoc, quest.ID); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot remove quest from index: %v", err)
		}
	} else {
		quest.Title = req.Title
		quest.Description = req.Description
		d.indexQuest(ctx, quest)
	}

	return &model.UpdateQuestResponse{}, nil
}

func (d *questDomain) Get(ctx context.Context, req *model.GetQuestRequest) (*model.GetQuestResponse, error) {
	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Quest not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	if quest.Status != entity.QuestActive && !d.isAdmin(ctx) {
		return nil, errorx.New(errorx.NotFound, "Quest not found")
	}

	resp := model.GetQuestResponse(convertQuest(quest))
	return &resp, nil
}

func (d *questDomain) GetList(
	ctx context.Context, req *model.GetListQuestRequest,
) (*model.GetListQuestResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	filter := &repository.QuestFilter{CategoryID: req.CategoryID}
	if !d.isAdmin(ctx) {
		filter.Status = []entity.QuestStatus{entity.QuestActive}
	}

	quests, err := d.questRepo.GetList(ctx, filter, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list quests: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListQuestResponse{Quests: []model.Quest{}}
	for i := range quests {
		resp.Quests = append(resp.Quests, convertQuest(&quests[i]))
	}

	return resp, nil
}

// Search queries the quest and listing indexes in one call, then hydrates the
// hits from the database in index order.
func (d *questDomain) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	if req.Query == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty search query")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	questIDs, err := d.searchIndex.Search(search.QuestDoc, req.Query, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search quests: %v", err)
		return nil, errorx.Unknown
	}

	quests, err := d.questRepo.GetByIDs(ctx, questIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load searched quests: %v", err)
		return nil, errorx.Unknown
	}

	listingIDs, err := d.searchIndex.Search(search.ListingDoc, req.Query, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search listings: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.SearchResponse{Quests: []model.Quest{}, Listings: []model.Listing{}}
	for i := range quests {
		if quests[i].Status == entity.QuestActive {
			resp.Quests = append(resp.Quests, convertQuest(&quests[i]))
		}
	}

	for _, id := range listingIDs {
		listing, err := d.listingRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}

		if listing.Status == entity.ListingApproved {
			resp.Listings = append(resp.Listings, convertListing(listing))
		}
	}

	return resp, nil
}

func (d *questDomain) isAdmin(ctx context.Context) bool {
	return d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...) == nil
}

func (d *questDomain) indexQuest(ctx context.Context, quest *entity.Quest) {
	err := d.searchIndex.Index(search.QuestDoc, quest.ID, search.QuestData{
		Title:       quest.Title,
		Description: quest.Description,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot index quest: %v", err)
	}
}

