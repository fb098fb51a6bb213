package domain

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/swapapp/backend/internal/common"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/dateutil"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/xcontext"
	"github.com/swapapp/backend/pkg/xredis"
)

// Leaderboard tracks earned points per period. Implementations must be safe
// to call best-effort; the ledger remains the source of truth.
type Leaderboard interface {
	IncreasePoint(ctx context.Context, userID string, points uint64) error
	GetTop(ctx context.Context, periodValue string, offset, limit int) ([]redis.Z, error)
}

type redisLeaderboard struct {
	redisClient xredis.Client
}

func NewRedisLeaderboard(redisClient xredis.Client) *redisLeaderboard {
	return &redisLeaderboard{redisClient: redisClient}
}

func (l *redisLeaderboard) IncreasePoint(ctx context.Context, userID string, points uint64) error {
	keys, err := common.PointLeaderboardKeys(
		dateutil.PeriodWeek, dateutil.PeriodMonth, dateutil.PeriodTotal)
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := l.redisClient.ZIncrBy(ctx, key, int64(points), userID); err != nil {
			return err
		}
	}

	return nil
}

func (l *redisLeaderboard) GetTop(
	ctx context.Context, periodValue string, offset, limit int,
) ([]redis.Z, error) {
	return l.redisClient.ZRevRangeWithScores(
		ctx, common.PointLeaderboardKey(periodValue), offset, limit)
}

type StatisticDomain interface {
	GetLeaderboard(ctx context.Context, req *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
}

type statisticDomain struct {
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
	leaderboard     Leaderboard
}

func NewStatisticDomain(
	transactionRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	leaderboard Leaderboard,
) *statisticDomain {
	return &statisticDomain{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		leaderboard:     leaderboard,
	}
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	period, err := dateutil.ToPeriod(req.Period)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid period %s", req.Period)
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	entries, err := d.topFromRedis(ctx, period, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Leaderboard fallback to ledger: %v", err)

		entries, err = d.topFromLedger(ctx, period, req.Offset, req.Limit)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot aggregate leaderboard: %v", err)
			return nil, errorx.Unknown
		}
	}

	if err := d.fillNames(ctx, entries); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot resolve leaderboard users: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetLeaderboardResponse{Entries: entries}, nil
}

func (d *statisticDomain) topFromRedis(
	ctx context.Context, period dateutil.Period, offset, limit int,
) ([]model.LeaderboardEntry, error) {
	if d.leaderboard == nil {
		return nil, errorx.New(errorx.Unavailable, "No leaderboard configured")
	}

	periodValue, err := dateutil.PeriodValue(common.Now(), period)
	if err != nil {
		return nil, err
	}

	zs, err := d.leaderboard.GetTop(ctx, periodValue, offset, limit)
	if err != nil {
		return nil, err
	}

	entries := []model.LeaderboardEntry{}
	for i, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}

		entries = append(entries, model.LeaderboardEntry{
			UserID: member,
			Points: uint64(z.Score),
			Rank:   offset + i + 1,
		})
	}

	return entries, nil
}

func (d *statisticDomain) topFromLedger(
	ctx context.Context, period dateutil.Period, offset, limit int,
) ([]model.LeaderboardEntry, error) {
	since, err := dateutil.PeriodStart(common.Now(), period)
	if err != nil {
		return nil, err
	}

	earners, err := d.transactionRepo.GetTopEarners(ctx, since, offset+limit)
	if err != nil {
		return nil, err
	}

	if offset >= len(earners) {
		return []model.LeaderboardEntry{}, nil
	}

	entries := []model.LeaderboardEntry{}
	for i, earner := range earners[offset:] {
		entries = append(entries, model.LeaderboardEntry{
			UserID: earner.UserID,
			Points: uint64(earner.Earned),
			Rank:   offset + i + 1,
		})
	}

	return entries, nil
}

func (d *statisticDomain) fillNames(ctx context.Context, entries []model.LeaderboardEntry) error {
	if len(entries) == 0 {
		return nil
	}

	ids := []string{}
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}

	users, err := d.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	names := map[string]string{}
	for _, u := range users {
		names[u.ID] = u.Name
	}

	for i := range entries {
		entries[i].Name = names[entries[i].UserID]
	}

	return nil
}
