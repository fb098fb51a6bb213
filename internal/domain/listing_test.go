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

func newTestListingDomain(searchIndex *testutil.MockSearchIndex) *listingDomain {
	return NewListingDomain(
		repository.NewListingRepository(),
		repository.NewUserRepository(),
		repository.NewTransactionRepository(),
		NewTierCache(repository.NewLevelTierRepository()),
		nil,
		searchIndex,
	)
}

func Test_listingDomain_Create_DailyLimit(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestListingDomain(&testutil.MockSearchIndex{})

	// The Newcomer band allows three listings per day.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	for i := 0; i < 3; i++ {
		_, err := d.Create(authorizedCtx, &model.CreateListingRequest{
			Title:  "Old bicycle",
			Points: 20,
		})
		require.NoError(t, err)
	}

	_, err := d.Create(authorizedCtx, &model.CreateListingRequest{
		Title:  "One too many",
		Points: 20,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.TooManyRequests, errx.Code)
}

func Test_listingDomain_Get_PendingHidden(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestListingDomain(&testutil.MockSearchIndex{})

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Create(authorizedCtx, &model.CreateListingRequest{
		Title:  "Old bicycle",
		Points: 20,
	})
	require.NoError(t, err)

	// The owner sees the pending listing, another user does not.
	_, err = d.Get(authorizedCtx, &model.GetListingRequest{ID: resp.ID})
	require.NoError(t, err)

	otherCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err = d.Get(otherCtx, &model.GetListingRequest{ID: resp.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Get(adminCtx, &model.GetListingRequest{ID: resp.ID})
	require.NoError(t, err)
}

func Test_listingDomain_Review_Approve(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	indexed := []string{}
	searchIndex := &testutil.MockSearchIndex{
		IndexFunc: func(document, id string, data any) error {
			indexed = append(indexed, id)
			return nil
		},
	}
	d := newTestListingDomain(searchIndex)
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Create(authorizedCtx, &model.CreateListingRequest{
		Title:  "Old bicycle",
		Points: 20,
	})
	require.NoError(t, err)

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Review(adminCtx, &model.ReviewListingRequest{
		ID:     resp.ID,
		Action: ReviewApprove,
	})
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(20), user.Points)
	require.Equal(t, uint64(10), user.XP)

	sum, err := transactionRepo.SumByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(user.Points), sum)

	// Approval makes the listing searchable.
	require.Equal(t, []string{resp.ID}, indexed)

	// The listing is now visible to everyone.
	otherCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	got, err := d.Get(otherCtx, &model.GetListingRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, string(entity.ListingApproved), got.Status)

	// A second review must not pay again.
	_, err = d.Review(adminCtx, &model.ReviewListingRequest{
		ID:     resp.ID,
		Action: ReviewApprove,
	})
	require.Error(t, err)

	user, err = userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(20), user.Points)
}

func Test_listingDomain_Review_Reject(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	indexed := []string{}
	d := newTestListingDomain(&testutil.MockSearchIndex{
		IndexFunc: func(document, id string, data any) error {
			indexed = append(indexed, id)
			return nil
		},
	})
	userRepo := repository.NewUserRepository()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Create(authorizedCtx, &model.CreateListingRequest{
		Title:  "Old bicycle",
		Points: 20,
	})
	require.NoError(t, err)

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Review(adminCtx, &model.ReviewListingRequest{
		ID:     resp.ID,
		Action: ReviewReject,
	})
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), user.Points)
	require.Empty(t, indexed)
}
