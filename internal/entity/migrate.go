package entity

import (
	"context"

	"github.com/swapapp/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Category{},
		&Quest{},
		&QuestSubmission{},
		&SubmissionStreak{},
		&PointsTransaction{},
		&Reward{},
		&Redemption{},
		&LevelTier{},
		&Listing{},
		&PromotionPurchase{},
		&File{},
	)
}
