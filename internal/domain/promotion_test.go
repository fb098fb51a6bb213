package domain

import (
	"testing"

	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestPromotionDomain() *promotionDomain {
	return NewPromotionDomain(
		repository.NewPromotionRepository(),
		repository.NewListingRepository(),
		repository.NewQuestRepository(),
		repository.NewUserRepository(),
		repository.NewTransactionRepository(),
	)
}

func Test_promotionDomain_Purchase_WithPoints(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestPromotionDomain()
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()
	listingRepo := repository.NewListingRepository()

	listing := &entity.Listing{
		Base:   entity.Base{ID: "listing1"},
		UserID: testutil.User1.ID,
		Title:  "Old bicycle",
		Status: entity.ListingApproved,
	}
	require.NoError(t, listingRepo.Create(ctx, listing))

	awarder := newPointAwarder(userRepo, transactionRepo, nil)
	err := awarder.Award(ctx, testutil.User1.ID, 200, 0,
		entity.AdminAdjustmentTx, "", common.IdempotencyKey("fund", "1"), "fund")
	require.NoError(t, err)

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Purchase(authorizedCtx, &model.PurchasePromotionRequest{
		TargetType:   "listing",
		TargetID:     listing.ID,
		PaymentType:  "points",
		DurationDays: 7,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ExpiresAt)

	// 7 days at 20 points per day.
	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(60), user.Points)

	promoted, err := listingRepo.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	require.True(t, promoted.IsPromoted)

	// The target cannot be promoted twice at once.
	_, err = d.Purchase(authorizedCtx, &model.PurchasePromotionRequest{
		TargetType:   "listing",
		TargetID:     listing.ID,
		PaymentType:  "points",
		DurationDays: 3,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)

	mine, err := d.GetMine(authorizedCtx, &model.GetMyPromotionsRequest{})
	require.NoError(t, err)
	require.Len(t, mine.Promotions, 1)
	require.Equal(t, uint64(140), mine.Promotions[0].PointsSpent)
}

func Test_promotionDomain_Purchase_Validation(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestPromotionDomain()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)

	var errx errorx.Error
	_, err := d.Purchase(authorizedCtx, &model.PurchasePromotionRequest{
		TargetType:   "banner",
		TargetID:     "x",
		PaymentType:  "points",
		DurationDays: 7,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = d.Purchase(authorizedCtx, &model.PurchasePromotionRequest{
		TargetType:   "listing",
		TargetID:     "x",
		PaymentType:  "points",
		DurationDays: 31,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// Money purchases need a receipt.
	_, err = d.Purchase(authorizedCtx, &model.PurchasePromotionRequest{
		TargetType:   "listing",
		TargetID:     "x",
		PaymentType:  "money",
		DurationDays: 7,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
