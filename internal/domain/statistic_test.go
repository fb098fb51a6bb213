package domain

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_statisticDomain_GetLeaderboard_FromRedis(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	leaderboard := NewRedisLeaderboard(&testutil.MockRedisClient{
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			return []redis.Z{
				{Member: testutil.User2.ID, Score: 120},
				{Member: testutil.User1.ID, Score: 80},
			}, nil
		},
	})

	d := NewStatisticDomain(
		repository.NewTransactionRepository(),
		repository.NewUserRepository(),
		leaderboard,
	)

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Period: "week"})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	require.Equal(t, testutil.User2.ID, resp.Entries[0].UserID)
	require.Equal(t, testutil.User2.Name, resp.Entries[0].Name)
	require.Equal(t, uint64(120), resp.Entries[0].Points)
	require.Equal(t, 1, resp.Entries[0].Rank)
	require.Equal(t, 2, resp.Entries[1].Rank)

	_, err = d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Period: "year"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_statisticDomain_GetLeaderboard_LedgerFallback(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()

	awarder := newPointAwarder(userRepo, transactionRepo, nil)
	err := awarder.Award(ctx, testutil.User1.ID, 100, 0,
		entity.AdminAdjustmentTx, "", common.IdempotencyKey("t", "1"), "fund")
	require.NoError(t, err)
	err = awarder.Award(ctx, testutil.User2.ID, 300, 0,
		entity.AdminAdjustmentTx, "", common.IdempotencyKey("t", "2"), "fund")
	require.NoError(t, err)

	// Spends must not count against leaderboard earnings.
	err = awarder.Spend(ctx, testutil.User2.ID, 250,
		entity.RedemptionTx, "", common.IdempotencyKey("t", "3"), "spend")
	require.NoError(t, err)

	// With no redis configured the leaderboard aggregates the ledger.
	d := NewStatisticDomain(transactionRepo, userRepo, nil)

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Period: "total"})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	require.Equal(t, testutil.User2.ID, resp.Entries[0].UserID)
	require.Equal(t, uint64(300), resp.Entries[0].Points)
	require.Equal(t, testutil.User1.ID, resp.Entries[1].UserID)
	require.Equal(t, uint64(100), resp.Entries[1].Points)

	offset, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Period: "total", Offset: 1})
	require.NoError(t, err)
	require.Len(t, offset.Entries, 1)
	require.Equal(t, testutil.User1.ID, offset.Entries[0].UserID)
	require.Equal(t, 2, offset.Entries[0].Rank)
}
