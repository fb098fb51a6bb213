package main

import (
	"github.com/swapapp/backend/internal/domain/cron"
	"github.com/swapapp/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	s.loadBaseContext()
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRepos()

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewExpireRedemptionsCronJob(s.redemptionRepo))
	cronJobManager.Register(cron.NewExpirePromotionsCronJob(s.promotionRepo, s.listingRepo, s.questRepo))
	cronJobManager.Start(s.ctx)

	return nil
}
