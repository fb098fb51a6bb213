package domain

import (
	"testing"

	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/testutil"
	"github.com/swapapp/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_pointAwarder_LedgerMatchesBalance(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()
	awarder := newPointAwarder(userRepo, transactionRepo, nil)

	err := awarder.Award(ctx, testutil.User1.ID, 100, 0,
		entity.AdminAdjustmentTx, "", common.IdempotencyKey("t", "1"), "first")
	require.NoError(t, err)

	err = awarder.Award(ctx, testutil.User1.ID, 40, 0,
		entity.AdminAdjustmentTx, "", common.IdempotencyKey("t", "2"), "second")
	require.NoError(t, err)

	err = awarder.Spend(ctx, testutil.User1.ID, 30,
		entity.RedemptionTx, "", common.IdempotencyKey("t", "3"), "spend")
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(110), user.Points)

	sum, err := transactionRepo.SumByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(user.Points), sum)
}

func Test_pointAwarder_DuplicatedIdempotencyKey(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()
	awarder := newPointAwarder(userRepo, transactionRepo, nil)

	key := common.IdempotencyKey("submission", "sub1")
	err := awarder.Award(ctx, testutil.User1.ID, 100, 0,
		entity.QuestRewardTx, "sub1", key, "completed quest")
	require.NoError(t, err)

	// The second award with the same key must fail before any balance change.
	err = awarder.Award(ctx, testutil.User1.ID, 100, 0,
		entity.QuestRewardTx, "sub1", key, "completed quest")
	require.Error(t, err)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(100), user.Points)

	sum, err := transactionRepo.SumByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), sum)
}

func Test_pointAwarder_LevelUpBonus(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()
	awarder := newPointAwarder(userRepo, transactionRepo, nil)

	// 50 xp crosses the level 2 floor (25 xp), so the award pays the level
	// bonus as its own ledger row.
	err := awarder.Award(ctx, testutil.User1.ID, 100, 50,
		entity.QuestRewardTx, "sub1", common.IdempotencyKey("submission", "sub1"), "completed quest")
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 2, user.Level)
	require.Equal(t, uint64(50), user.XP)
	require.Equal(t, uint64(125), user.Points)

	transactions, err := transactionRepo.GetListByUserID(ctx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	types := []entity.TransactionType{transactions[0].Type, transactions[1].Type}
	require.Contains(t, types, entity.QuestRewardTx)
	require.Contains(t, types, entity.LevelBonusTx)

	sum, err := transactionRepo.SumByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(user.Points), sum)
}

func Test_pointAwarder_NoLevelBonusByDefault(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()
	awarder := newPointAwarder(userRepo, transactionRepo, nil)

	// With the bonus left unconfigured a level-crossing award writes the
	// quest_reward row and nothing else.
	cfg := xcontext.Configs(ctx)
	cfg.Points.LevelUpBonus = 0
	ctx = xcontext.WithConfigs(ctx, cfg)

	err := awarder.Award(ctx, testutil.User1.ID, 100, 50,
		entity.QuestRewardTx, "sub1", common.IdempotencyKey("submission", "sub1"), "completed quest")
	require.NoError(t, err)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(100), user.Points)
	require.Equal(t, uint64(50), user.XP)
	require.Equal(t, 2, user.Level)

	transactions, err := transactionRepo.GetListByUserID(ctx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, entity.QuestRewardTx, transactions[0].Type)
	require.Equal(t, int64(100), transactions[0].Amount)
}

func Test_pointAwarder_SpendMoreThanBalance(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	userRepo := repository.NewUserRepository()
	transactionRepo := repository.NewTransactionRepository()
	awarder := newPointAwarder(userRepo, transactionRepo, nil)

	err := awarder.Spend(ctx, testutil.User1.ID, 500,
		entity.RedemptionTx, "", common.IdempotencyKey("t", "1"), "spend")
	require.ErrorIs(t, err, repository.ErrInsufficientPoints)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), user.Points)

	transactions, err := transactionRepo.GetListByUserID(ctx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Empty(t, transactions)
}
