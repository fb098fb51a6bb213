package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/math"
	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/domain/progression"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/dateutil"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	ReviewApprove = "approve"
	ReviewReject  = "reject"
)

// questValidation is decoded from the quest's validation data. When
// AutoValidate is set and the submitted text matches Answer, the submission
// skips the review queue.
type questValidation struct {
	AutoValidate bool   `mapstructure:"auto_validate"`
	Answer       string `mapstructure:"answer"`
}

type SubmissionDomain interface {
	Submit(ctx context.Context, req *model.SubmitQuestRequest) (*model.SubmitQuestResponse, error)
	Get(ctx context.Context, req *model.GetSubmissionRequest) (*model.GetSubmissionResponse, error)
	GetPending(ctx context.Context, req *model.GetPendingSubmissionsRequest) (*model.GetPendingSubmissionsResponse, error)
	GetMine(ctx context.Context, req *model.GetMySubmissionsRequest) (*model.GetMySubmissionsResponse, error)
	Review(ctx context.Context, req *model.ReviewSubmissionRequest) (*model.ReviewSubmissionResponse, error)
}

type submissionDomain struct {
	submissionRepo repository.SubmissionRepository
	questRepo      repository.QuestRepository
	userRepo       repository.UserRepository
	awarder        *pointAwarder
	tiers          *TierCache
	roleVerifier   *common.GlobalRoleVerifier
}

func NewSubmissionDomain(
	submissionRepo repository.SubmissionRepository,
	questRepo repository.QuestRepository,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	tiers *TierCache,
	leaderboard Leaderboard,
) *submissionDomain {
	return &submissionDomain{
		submissionRepo: submissionRepo,
		questRepo:      questRepo,
		userRepo:       userRepo,
		awarder:        newPointAwarder(userRepo, transactionRepo, leaderboard),
		tiers:          tiers,
		roleVerifier:   common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *submissionDomain) Submit(
	ctx context.Context, req *model.SubmitQuestRequest,
) (*model.SubmitQuestResponse, error) {
	if req.ProofText == "" && req.ProofImageURL == "" {
		return nil, errorx.New(errorx.BadRequest, "Submission requires a proof")
	}

	quest, err := d.questRepo.GetByID(ctx, req.QuestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Quest not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	if quest.Status != entity.QuestActive {
		return nil, errorx.New(errorx.Unavailable, "Quest is not open for submissions")
	}

	userID := xcontext.RequestUserID(ctx)

	// One open or settled submission per (user, quest); only a rejection
	// opens the quest for another attempt. Without this guard an
	// auto-validated quest would pay on every resubmission.
	last, err := d.submissionRepo.GetLast(ctx, userID, quest.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get last submission: %v", err)
		return nil, errorx.Unknown
	}

	if last != nil && last.Status != entity.SubmissionRejected {
		return nil, errorx.New(errorx.AlreadyExists, "You already submitted this quest")
	}

	submission := &entity.QuestSubmission{
		Base:          entity.Base{ID: uuid.NewString()},
		QuestID:       quest.ID,
		UserID:        userID,
		ProofText:     req.ProofText,
		ProofImageURL: req.ProofImageURL,
		Status:        entity.SubmissionPending,
	}

	autoApproved := d.autoValidate(ctx, quest, req.ProofText)
	if autoApproved {
		submission.Status = entity.SubmissionAutoApproved
		submission.ReviewedAt = common.Now()
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.submissionRepo.Create(ctx, submission); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create submission: %v", err)
		return nil, errorx.Unknown
	}

	if autoApproved {
		if err := d.payout(ctx, submission, quest, quest.Points, quest.Points/2); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot pay auto-approved submission: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SubmitQuestResponse{
		ID:     submission.ID,
		Status: string(submission.Status),
	}, nil
}

func (d *submissionDomain) Get(
	ctx context.Context, req *model.GetSubmissionRequest,
) (*model.GetSubmissionResponse, error) {
	submission, err := d.submissionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Submission not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get submission: %v", err)
		return nil, errorx.Unknown
	}

	// Only the owner and admins may read a submission.
	if submission.UserID != xcontext.RequestUserID(ctx) {
		if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}
	}

	resp := model.GetSubmissionResponse(convertSubmission(submission))
	return &resp, nil
}

func (d *submissionDomain) GetPending(
	ctx context.Context, req *model.GetPendingSubmissionsRequest,
) (*model.GetPendingSubmissionsResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	submissions, err := d.submissionRepo.GetList(ctx, &repository.SubmissionFilter{
		QuestID: req.QuestID,
		Status:  []entity.SubmissionStatus{entity.SubmissionPending},
	}, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list submissions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetPendingSubmissionsResponse{Submissions: []model.QuestSubmission{}}
	for i := range submissions {
		resp.Submissions = append(resp.Submissions, convertSubmission(&submissions[i]))
	}

	return resp, nil
}

func (d *submissionDomain) GetMine(
	ctx context.Context, req *model.GetMySubmissionsRequest,
) (*model.GetMySubmissionsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	submissions, err := d.submissionRepo.GetList(ctx, &repository.SubmissionFilter{
		UserID: xcontext.RequestUserID(ctx),
	}, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list submissions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMySubmissionsResponse{Submissions: []model.QuestSubmission{}}
	for i := range submissions {
		resp.Submissions = append(resp.Submissions, convertSubmission(&submissions[i]))
	}

	return resp, nil
}

// Review settles one pending submission. Approval and the resulting award
// commit atomically; the pending guard on the status update makes a repeated
// review fail instead of paying twice.
func (d *submissionDomain) Review(
	ctx context.Context, req *model.ReviewSubmissionRequest,
) (*model.ReviewSubmissionResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Action != ReviewApprove && req.Action != ReviewReject {
		return nil, errorx.New(errorx.BadRequest, "Action must be approve or reject")
	}

	submission, err := d.submissionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Submission not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get submission: %v", err)
		return nil, errorx.Unknown
	}

	if submission.Status != entity.SubmissionPending {
		return nil, errorx.New(errorx.BadRequest, "Submission is already reviewed")
	}

	quest, err := d.questRepo.GetByID(ctx, submission.QuestID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	points, xp := quest.Points, quest.Points/2
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

	status := entity.SubmissionApproved
	if req.Action == ReviewReject {
		status = entity.SubmissionRejected
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.submissionRepo.UpdateReviewByID(ctx, submission.ID, &entity.QuestSubmission{
		Status:     status,
		ReviewerID: xcontext.RequestUserID(ctx),
		ReviewedAt: common.Now(),
		AdminNote:  req.AdminNote,
	})
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot update submission review: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Submission is already reviewed")
	}

	if req.Action == ReviewApprove {
		if err := d.payout(ctx, submission, quest, points, xp); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot pay submission: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.ReviewSubmissionResponse{}, nil
}

// payout awards an approved submission: tier multiplier on points, the quest
// reward ledger row, and the streak bookkeeping with its bonus.
func (d *submissionDomain) payout(
	ctx context.Context, submission *entity.QuestSubmission, quest *entity.Quest,
	points, xp uint64,
) error {
	user, err := d.userRepo.GetByID(ctx, submission.UserID)
	if err != nil {
		return err
	}

	tiers, err := d.tiers.list(ctx)
	if err != nil {
		return err
	}

	level := progression.LevelFromXP(user.XP)
	points = uint64(float64(points) * progression.Multiplier(level, tiers))

	err = d.awarder.Award(ctx,
		submission.UserID, points, xp,
		entity.QuestRewardTx, submission.ID,
		common.IdempotencyKey("submission", submission.ID),
		fmt.Sprintf("Completed quest %q", quest.Title),
	)
	if err != nil {
		return err
	}

	tier := progression.ResolveTier(level, tiers)
	return d.extendStreak(ctx, submission.UserID, tier != nil && tier.StreakEligible)
}

// extendStreak advances the consecutive-day counter and, for streak-eligible
// tiers, pays the capped streak bonus once per day.
func (d *submissionDomain) extendStreak(ctx context.Context, userID string, eligible bool) error {
	today := dateutil.BeginningOfDay(common.Now())

	streak, err := d.submissionRepo.GetStreak(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	newStreak := &entity.SubmissionStreak{UserID: userID, LastDay: today, Streaks: 1}
	if streak != nil {
		switch {
		case streak.LastDay.Equal(today):
			// Already counted today; nothing to extend, nothing to pay.
			return nil
		case streak.LastDay.Equal(today.AddDate(0, 0, -1)):
			newStreak.Streaks = streak.Streaks + 1
		}
	}

	if err := d.submissionRepo.UpsertStreak(ctx, newStreak); err != nil {
		return err
	}

	if !eligible {
		return nil
	}

	pointsCfg := xcontext.Configs(ctx).Points
	bonus := pointsCfg.StreakBonus * uint64(math.Min(newStreak.Streaks, pointsCfg.StreakBonusCap))
	if bonus == 0 {
		return nil
	}

	return d.awarder.Award(ctx,
		userID, bonus, 0,
		entity.StreakBonusTx, "",
		common.IdempotencyKey("streak", userID, today.Format(time.DateOnly)),
		fmt.Sprintf("%d-day streak", newStreak.Streaks),
	)
}

func (d *submissionDomain) autoValidate(ctx context.Context, quest *entity.Quest, proofText string) bool {
	if len(quest.ValidationData) == 0 {
		return false
	}

	var validation questValidation
	if err := mapstructure.Decode(map[string]any(quest.ValidationData), &validation); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode validation data of quest %s: %v", quest.ID, err)
		return false
	}

	if !validation.AutoValidate || validation.Answer == "" {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(proofText), validation.Answer)
}
