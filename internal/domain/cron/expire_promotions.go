package cron

import (
	"context"
	"time"

	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/xcontext"
)

// ExpirePromotionsCronJob expires overdue promotion purchases and clears the
// promoted flags they set on listings and quests.
type ExpirePromotionsCronJob struct {
	promotionRepo repository.PromotionRepository
	listingRepo   repository.ListingRepository
	questRepo     repository.QuestRepository
}

func NewExpirePromotionsCronJob(
	promotionRepo repository.PromotionRepository,
	listingRepo repository.ListingRepository,
	questRepo repository.QuestRepository,
) *ExpirePromotionsCronJob {
	return &ExpirePromotionsCronJob{
		promotionRepo: promotionRepo,
		listingRepo:   listingRepo,
		questRepo:     questRepo,
	}
}

func (job *ExpirePromotionsCronJob) Do(ctx context.Context) {
	now := time.Now()

	n, err := job.promotionRepo.ExpireOverdue(ctx, now)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot expire promotions: %v", err)
		return
	}

	if n > 0 {
		xcontext.Logger(ctx).Infof("Expired %d promotions", n)
	}

	if err := job.listingRepo.ClearExpiredPromotions(ctx, now); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear promoted listings: %v", err)
	}

	if err := job.questRepo.ClearExpiredPromotions(ctx, now); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear promoted quests: %v", err)
	}
}

func (job *ExpirePromotionsCronJob) RunNow() bool {
	return true
}

func (job *ExpirePromotionsCronJob) Next() time.Time {
	return time.Now().Add(time.Hour)
}
