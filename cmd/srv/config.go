package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/swapapp/backend/config"
)

func loadConfigs() config.Configs {
	return config.Configs{
		Env: getEnv("ENV", "local"),
		ApiServer: config.ServerConfigs{
			Host:           getEnv("HOST", "localhost"),
			Port:           getEnv("PORT", "8080"),
			MaxLimit:       getEnvInt("API_MAX_LIMIT", 50),
			DefaultLimit:   getEnvInt("API_DEFAULT_LIMIT", 10),
			AllowedOrigins: strings.Split(getEnv("API_ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		},
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "swap"),
			User:     getEnv("MYSQL_USER", "swap"),
			Password: getEnv("MYSQL_PASSWORD", "swap"),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvDuration("ACCESS_TOKEN_DURATION", time.Hour),
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: getEnvDuration("REFRESH_TOKEN_DURATION", 24*time.Hour),
			},
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Storage: config.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", "access_key"),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", "secret_key"),
			Bucket:         getEnv("STORAGE_BUCKET", "swap"),
			SSLDisabled:    getEnvBool("STORAGE_SSL_DISABLED", true),
		},
		File: config.FileConfigs{
			MaxSize:        int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 2)) << 20,
			AvatarMaxWidth: uint(getEnvInt("IMAGE_MAX_WIDTH", 512)),
		},
		Points: config.PointsConfigs{
			MaxAdminAward:        getEnvUint64("POINTS_MAX_ADMIN_AWARD", 1000),
			ReferrerReward:       getEnvUint64("POINTS_REFERRER_REWARD", 50),
			RefereeReward:        getEnvUint64("POINTS_REFEREE_REWARD", 25),
			// Off unless configured, so a quest approval pays exactly its
			// quest_reward row.
			LevelUpBonus:         getEnvUint64("POINTS_LEVEL_UP_BONUS", 0),
			StreakBonus:          getEnvUint64("POINTS_STREAK_BONUS", 10),
			StreakBonusCap:       getEnvInt("POINTS_STREAK_BONUS_CAP", 10),
			RedemptionCodeLength: uint(getEnvInt("REDEMPTION_CODE_LENGTH", 12)),
			RedemptionValidDays:  getEnvInt("REDEMPTION_VALID_DAYS", 90),
			PromotionCostPerDay:  getEnvUint64("PROMOTION_COST_PER_DAY", 20),
			PromotionMaxDays:     getEnvInt("PROMOTION_MAX_DAYS", 30),
			TierSeedFile:         getEnv("TIER_SEED_FILE", "tiers.toml"),
		},
		Search: config.SearchConfigs{
			IndexPath: getEnv("SEARCH_INDEX_PATH", "searchindex"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func getEnvUint64(key string, fallback uint64) uint64 {
	value, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}

	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}
