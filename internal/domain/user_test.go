package domain

import (
	"testing"

	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestUserDomain() *userDomain {
	return NewUserDomain(
		repository.NewUserRepository(),
		repository.NewTransactionRepository(),
		NewTierCache(repository.NewLevelTierRepository()),
		nil,
	)
}

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestUserDomain()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.GetMe(authorizedCtx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.User.ID)
	require.Equal(t, 1, resp.Level)
	require.Equal(t, float64(0), resp.Progress)
	require.NotNil(t, resp.Tier)
	require.Equal(t, "Newcomer", resp.Tier.Name)
	require.NotNil(t, resp.NextTier)
	require.Equal(t, "Helper", resp.NextTier.Name)
	require.Equal(t, testutil.User1.ReferralCode, resp.ReferralCode)
}

func Test_userDomain_ClaimReferral(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestUserDomain()
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := d.ClaimReferral(authorizedCtx, &model.ClaimReferralRequest{
		ReferralCode: testutil.User1.ReferralCode,
	})
	require.NoError(t, err)

	// The referrer gets 50 points and 50 xp, which crosses level 2 and
	// pays the 25 point bonus.
	referrer, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(75), referrer.Points)
	require.Equal(t, uint64(50), referrer.XP)
	require.Equal(t, uint64(1), referrer.InviteCount)

	// 25 xp is exactly the level 2 floor, so the referee levels up too.
	referee, err := userRepo.GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(50), referee.Points)
	require.Equal(t, uint64(25), referee.XP)
	require.Equal(t, 2, referee.Level)

	for _, id := range []string{testutil.User1.ID, testutil.User2.ID} {
		user, err := userRepo.GetByID(ctx, id)
		require.NoError(t, err)

		sum, err := transactionRepo.SumByUserID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, int64(user.Points), sum)
	}

	// A referral can only be claimed once per account.
	_, err = d.ClaimReferral(authorizedCtx, &model.ClaimReferralRequest{
		ReferralCode: testutil.Admin.ReferralCode,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_userDomain_ClaimReferral_Invalid(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestUserDomain()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.ClaimReferral(authorizedCtx, &model.ClaimReferralRequest{
		ReferralCode: "NOSUCHCODE",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	_, err = d.ClaimReferral(authorizedCtx, &model.ClaimReferralRequest{
		ReferralCode: testutil.User1.ReferralCode,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_userDomain_AdminAdjustPoints(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestUserDomain()
	userRepo := repository.NewUserRepository()

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err := d.AdminAdjustPoints(adminCtx, &model.AdminAdjustPointsRequest{
		UserID: testutil.User1.ID,
		Amount: 100,
		Reason: "community event",
	})
	require.NoError(t, err)

	// Adjustments never touch xp.
	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(100), user.Points)
	require.Equal(t, uint64(0), user.XP)
	require.Equal(t, 1, user.Level)

	_, err = d.AdminAdjustPoints(adminCtx, &model.AdminAdjustPointsRequest{
		UserID: testutil.User1.ID,
		Amount: -60,
		Reason: "correction",
	})
	require.NoError(t, err)

	user, err = userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(40), user.Points)

	// Deducting below zero fails and changes nothing.
	_, err = d.AdminAdjustPoints(adminCtx, &model.AdminAdjustPointsRequest{
		UserID: testutil.User1.ID,
		Amount: -100,
		Reason: "correction",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.InsufficientPoints, errx.Code)

	user, err = userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(40), user.Points)

	// Beyond the cap, zero, or missing reason are rejected up front.
	_, err = d.AdminAdjustPoints(adminCtx, &model.AdminAdjustPointsRequest{
		UserID: testutil.User1.ID,
		Amount: 1001,
		Reason: "too much",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = d.AdminAdjustPoints(adminCtx, &model.AdminAdjustPointsRequest{
		UserID: testutil.User1.ID,
		Amount: 10,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	userCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err = d.AdminAdjustPoints(userCtx, &model.AdminAdjustPointsRequest{
		UserID: testutil.User2.ID,
		Amount: 10,
		Reason: "not allowed",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}
