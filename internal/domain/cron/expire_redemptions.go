package cron

import (
	"context"
	"time"

	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/xcontext"
)

// ExpireRedemptionsCronJob flips overdue issued codes to expired. Verify also
// checks expiry at read time, so the job only keeps the table honest.
type ExpireRedemptionsCronJob struct {
	redemptionRepo repository.RedemptionRepository
}

func NewExpireRedemptionsCronJob(redemptionRepo repository.RedemptionRepository) *ExpireRedemptionsCronJob {
	return &ExpireRedemptionsCronJob{redemptionRepo: redemptionRepo}
}

func (job *ExpireRedemptionsCronJob) Do(ctx context.Context) {
	n, err := job.redemptionRepo.ExpireOverdue(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot expire redemptions: %v", err)
		return
	}

	if n > 0 {
		xcontext.Logger(ctx).Infof("Expired %d redemption codes", n)
	}
}

func (job *ExpireRedemptionsCronJob) RunNow() bool {
	return true
}

func (job *ExpireRedemptionsCronJob) Next() time.Time {
	return time.Now().Add(time.Hour)
}
