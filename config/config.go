package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	ApiServer ServerConfigs
	Database  DatabaseConfigs
	Auth      AuthConfigs
	Redis     RedisConfigs
	Storage   S3Configs
	File      FileConfigs
	Points    PointsConfigs
	Search    SearchConfigs
}

type ServerConfigs struct {
	Host string
	Port string

	MaxLimit     int
	DefaultLimit int

	AllowedOrigins []string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type AuthConfigs struct {
	TokenSecret  string
	AccessToken  TokenConfigs
	RefreshToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type RedisConfigs struct {
	Addr string
}

type S3Configs struct {
	Region         string
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	Bucket         string
	SSLDisabled    bool
}

type FileConfigs struct {
	MaxSize        int64
	AvatarMaxWidth uint
}

type PointsConfigs struct {
	// MaxAdminAward bounds the per-review override an admin may enter.
	MaxAdminAward uint64

	ReferrerReward uint64
	RefereeReward  uint64

	LevelUpBonus   uint64
	StreakBonus    uint64
	StreakBonusCap int

	RedemptionCodeLength uint
	RedemptionValidDays  int

	PromotionCostPerDay uint64
	PromotionMaxDays    int

	TierSeedFile string
}

type SearchConfigs struct {
	IndexPath string
}
