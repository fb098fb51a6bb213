package main

import (
	"context"
	"net/http"

	"github.com/swapapp/backend/internal/domain"
	"github.com/swapapp/backend/internal/domain/search"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/logger"
	"github.com/swapapp/backend/pkg/router"
	"github.com/swapapp/backend/pkg/storage"
	"github.com/swapapp/backend/pkg/xcontext"
	"github.com/swapapp/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	ctx context.Context
	app *cli.App

	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	questRepo       repository.QuestRepository
	submissionRepo  repository.SubmissionRepository
	rewardRepo      repository.RewardRepository
	redemptionRepo  repository.RedemptionRepository
	tierRepo        repository.LevelTierRepository
	listingRepo     repository.ListingRepository
	promotionRepo   repository.PromotionRepository
	fileRepo        repository.FileRepository

	userDomain        domain.UserDomain
	questDomain       domain.QuestDomain
	submissionDomain  domain.SubmissionDomain
	listingDomain     domain.ListingDomain
	rewardDomain      domain.RewardDomain
	promotionDomain   domain.PromotionDomain
	tierDomain        domain.TierDomain
	transactionDomain domain.TransactionDomain
	statisticDomain   domain.StatisticDomain
	fileDomain        domain.FileDomain

	tierCache   *domain.TierCache
	leaderboard domain.Leaderboard
	searchIndex search.Index
	storage     storage.Storage
	redisClient xredis.Client

	router *router.Router
	server *http.Server
}

func (s *srv) loadBaseContext() {
	cfg := loadConfigs()

	level := logger.INFO
	if cfg.Env == "local" || cfg.Env == "dev" {
		level = logger.DEBUG
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) newDatabase() *gorm.DB {
	db, err := gorm.Open(
		mysql.Open(xcontext.Configs(s.ctx).Database.ConnectionString()),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) migrateDB() {
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(xcontext.Configs(s.ctx).Storage)
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		xcontext.Logger(s.ctx).Warnf("Cannot connect to redis, leaderboard will fall back to the ledger: %v", err)
		return
	}

	s.leaderboard = domain.NewRedisLeaderboard(s.redisClient)
}

func (s *srv) loadSearchIndex() {
	s.searchIndex = search.NewBleveIndex(s.ctx)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.transactionRepo = repository.NewTransactionRepository()
	s.questRepo = repository.NewQuestRepository()
	s.submissionRepo = repository.NewSubmissionRepository()
	s.rewardRepo = repository.NewRewardRepository()
	s.redemptionRepo = repository.NewRedemptionRepository()
	s.tierRepo = repository.NewLevelTierRepository()
	s.listingRepo = repository.NewListingRepository()
	s.promotionRepo = repository.NewPromotionRepository()
	s.fileRepo = repository.NewFileRepository()
}

func (s *srv) loadDomains() {
	s.tierCache = domain.NewTierCache(s.tierRepo)

	s.userDomain = domain.NewUserDomain(s.userRepo, s.transactionRepo, s.tierCache, s.leaderboard)
	s.questDomain = domain.NewQuestDomain(s.questRepo, s.listingRepo, s.userRepo, s.searchIndex)
	s.submissionDomain = domain.NewSubmissionDomain(
		s.submissionRepo, s.questRepo, s.userRepo, s.transactionRepo, s.tierCache, s.leaderboard)
	s.listingDomain = domain.NewListingDomain(
		s.listingRepo, s.userRepo, s.transactionRepo, s.tierCache, s.leaderboard, s.searchIndex)
	s.rewardDomain = domain.NewRewardDomain(
		s.rewardRepo, s.redemptionRepo, s.userRepo, s.transactionRepo)
	s.promotionDomain = domain.NewPromotionDomain(
		s.promotionRepo, s.listingRepo, s.questRepo, s.userRepo, s.transactionRepo)
	s.tierDomain = domain.NewTierDomain(s.tierRepo, s.tierCache, s.userRepo)
	s.transactionDomain = domain.NewTransactionDomain(s.transactionRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.transactionRepo, s.userRepo, s.leaderboard)
	s.fileDomain = domain.NewFileDomain(s.fileRepo, s.storage)
}
