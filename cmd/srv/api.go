package main

import (
	"net/http"

	"github.com/swapapp/backend/internal/middleware"
	"github.com/swapapp/backend/pkg/router"
	"github.com/swapapp/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadBaseContext()

	db := s.newDatabase()
	s.ctx = xcontext.WithDB(s.ctx, db)
	s.migrateDB()

	s.loadStorage()
	s.loadRedisClient()
	s.loadSearchIndex()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter(db)

	defer s.searchIndex.Close()

	cfg := xcontext.Configs(s.ctx)
	s.server = &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting api server on %s", cfg.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Api server stopped")
	return nil
}

func (s *srv) loadRouter(db *gorm.DB) {
	cfg := xcontext.Configs(s.ctx)
	s.router = router.New(db, cfg, xcontext.Logger(s.ctx))
	s.router.AddCloser(middleware.Logger())
	s.router.Before(middleware.NewAuthVerifier())

	// Public API.
	router.GET(s.router, "/getQuest", s.questDomain.Get)
	router.GET(s.router, "/getListQuest", s.questDomain.GetList)
	router.GET(s.router, "/getListing", s.listingDomain.Get)
	router.GET(s.router, "/getListListing", s.listingDomain.GetList)
	router.GET(s.router, "/getListReward", s.rewardDomain.GetList)
	router.GET(s.router, "/getTiers", s.tierDomain.GetTiers)
	router.GET(s.router, "/getLeaderboard", s.statisticDomain.GetLeaderboard)
	router.GET(s.router, "/search", s.questDomain.Search)

	// These APIs need authentication.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate)
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)
		router.POST(authRouter, "/claimReferral", s.userDomain.ClaimReferral)
		router.GET(authRouter, "/getMyTransactions", s.transactionDomain.GetMine)

		// Submission API
		router.POST(authRouter, "/submitQuest", s.submissionDomain.Submit)
		router.GET(authRouter, "/getSubmission", s.submissionDomain.Get)
		router.GET(authRouter, "/getMySubmissions", s.submissionDomain.GetMine)

		// Listing API
		router.POST(authRouter, "/createListing", s.listingDomain.Create)

		// Redemption API
		router.POST(authRouter, "/redeemReward", s.rewardDomain.Redeem)
		router.POST(authRouter, "/verifyRedemption", s.rewardDomain.Verify)
		router.GET(authRouter, "/getMyRedemptions", s.rewardDomain.GetMyRedemptions)

		// Promotion API
		router.POST(authRouter, "/purchasePromotion", s.promotionDomain.Purchase)
		router.GET(authRouter, "/getMyPromotions", s.promotionDomain.GetMine)

		// Image API
		router.POST(authRouter, "/uploadImage", s.fileDomain.UploadImage)
	}

	// These APIs need an admin role.
	adminRouter := authRouter.Branch()
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		router.POST(adminRouter, "/createQuest", s.questDomain.Create)
		router.POST(adminRouter, "/updateQuest", s.questDomain.Update)
		router.GET(adminRouter, "/getPendingSubmissions", s.submissionDomain.GetPending)
		router.POST(adminRouter, "/reviewSubmission", s.submissionDomain.Review)
		router.POST(adminRouter, "/reviewListing", s.listingDomain.Review)
		router.POST(adminRouter, "/createReward", s.rewardDomain.Create)
		router.POST(adminRouter, "/updateReward", s.rewardDomain.Update)
		router.POST(adminRouter, "/updateTier", s.tierDomain.UpdateTier)
		router.POST(adminRouter, "/adjustPoints", s.userDomain.AdminAdjustPoints)
	}
}
