package domain

import (
	"testing"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestSubmissionDomain() *submissionDomain {
	return NewSubmissionDomain(
		repository.NewSubmissionRepository(),
		repository.NewQuestRepository(),
		repository.NewUserRepository(),
		repository.NewTransactionRepository(),
		NewTierCache(repository.NewLevelTierRepository()),
		nil,
	)
}

func Test_submissionDomain_Submit_RequiresProof(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Submit(authorizedCtx, &model.SubmitQuestRequest{QuestID: testutil.Quest1.ID})
	require.Error(t, err)
	require.Equal(t, "Submission requires a proof", err.Error())
}

func Test_submissionDomain_Submit_InactiveQuest(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.QuestDraft1.ID,
		ProofText: "done",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)
}

func Test_submissionDomain_Submit_AutoValidate(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()
	userRepo := repository.NewUserRepository()

	// Case-insensitive, whitespace-trimmed answer match.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest2.ID,
		ProofText: "  Kindness ",
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.SubmissionAutoApproved), resp.Status)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(40), user.Points)
	require.Equal(t, uint64(20), user.XP)
	require.Equal(t, 1, user.Level)

	// A wrong answer stays pending instead of being rejected.
	authorizedCtx = testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err = d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest2.ID,
		ProofText: "cruelty",
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.SubmissionPending), resp.Status)
}

func Test_submissionDomain_Submit_OnePerQuest(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()
	userRepo := repository.NewUserRepository()

	// An auto-approved submission must not be repeatable; every duplicate
	// would mint the reward again.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest2.ID,
		ProofText: "kindness",
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.SubmissionAutoApproved), resp.Status)

	var errx errorx.Error
	_, err = d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest2.ID,
		ProofText: "kindness",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(40), user.Points)

	// A pending submission blocks another attempt too.
	pending, err := d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest1.ID,
		ProofText: "carried the groceries",
	})
	require.NoError(t, err)

	_, err = d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest1.ID,
		ProofText: "carried them twice",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	// Only a rejection opens the quest for a new attempt.
	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Review(adminCtx, &model.ReviewSubmissionRequest{
		ID:     pending.ID,
		Action: ReviewReject,
	})
	require.NoError(t, err)

	_, err = d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest1.ID,
		ProofText: "with a photo this time",
	})
	require.NoError(t, err)
}

func Test_submissionDomain_Review_Approve(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest1.ID,
		ProofText: "carried the groceries",
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.SubmissionPending), resp.Status)

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Review(adminCtx, &model.ReviewSubmissionRequest{
		ID:     resp.ID,
		Action: ReviewApprove,
	})
	require.NoError(t, err)

	// 100 points and 50 xp, which crosses level 2 and pays the 25 point
	// level bonus on top.
	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(125), user.Points)
	require.Equal(t, uint64(50), user.XP)
	require.Equal(t, 2, user.Level)

	sum, err := transactionRepo.SumByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(user.Points), sum)

	// A second review of the same submission must not pay again.
	_, err = d.Review(adminCtx, &model.ReviewSubmissionRequest{
		ID:     resp.ID,
		Action: ReviewApprove,
	})
	require.Error(t, err)
	require.Equal(t, "Submission is already reviewed", err.Error())

	user, err = userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(125), user.Points)
}

func Test_submissionDomain_Review_Reject(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()
	userRepo := repository.NewUserRepository()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest1.ID,
		ProofText: "carried the groceries",
	})
	require.NoError(t, err)

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Review(adminCtx, &model.ReviewSubmissionRequest{
		ID:        resp.ID,
		Action:    ReviewReject,
		AdminNote: "no proof visible",
	})
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), user.Points)
	require.Equal(t, uint64(0), user.XP)

	got, err := d.Get(authorizedCtx, &model.GetSubmissionRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, string(entity.SubmissionRejected), got.Status)
	require.Equal(t, "no proof visible", got.AdminNote)
}

func Test_submissionDomain_Review_OverrideAndPermission(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestSubmissionDomain()
	userRepo := repository.NewUserRepository()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Submit(authorizedCtx, &model.SubmitQuestRequest{
		QuestID:   testutil.Quest1.ID,
		ProofText: "carried the groceries",
	})
	require.NoError(t, err)

	// A regular user cannot review.
	_, err = d.Review(authorizedCtx, &model.ReviewSubmissionRequest{
		ID:     resp.ID,
		Action: ReviewApprove,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// An override above the cap is refused.
	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Review(adminCtx, &model.ReviewSubmissionRequest{
		ID:     resp.ID,
		Action: ReviewApprove,
		Points: 5000,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// An override within the cap replaces the quest default; xp follows as
	// half the override.
	_, err = d.Review(adminCtx, &model.ReviewSubmissionRequest{
		ID:     resp.ID,
		Action: ReviewApprove,
		Points: 10,
	})
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(10), user.Points)
	require.Equal(t, uint64(5), user.XP)
}
