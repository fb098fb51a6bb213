package testutil

import (
	"context"
	"time"

	"github.com/swapapp/backend/config"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/authenticator"
	"github.com/swapapp/backend/pkg/logger"
	"github.com/swapapp/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewMockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		ApiServer: config.ServerConfigs{
			MaxLimit:     50,
			DefaultLimit: 10,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "token_secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: time.Minute,
			},
		},
		File: config.FileConfigs{
			MaxSize:        2 << 20,
			AvatarMaxWidth: 512,
		},
		Points: config.PointsConfigs{
			MaxAdminAward:        1000,
			ReferrerReward:       50,
			RefereeReward:        25,
			LevelUpBonus:         25,
			StreakBonus:          10,
			StreakBonusCap:       10,
			RedemptionCodeLength: 12,
			RedemptionValidDays:  90,
			PromotionCostPerDay:  20,
			PromotionMaxDays:     30,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func NewMockContextWithUserID(ctx context.Context, userID string) context.Context {
	return xcontext.WithRequestUserID(ctx, userID)
}
