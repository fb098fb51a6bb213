package entity

import (
	"database/sql"
	"time"

	"github.com/swapapp/backend/pkg/enum"
)

type TransactionType string

var (
	QuestRewardTx       = enum.New(TransactionType("quest_reward"))
	ListingRewardTx     = enum.New(TransactionType("listing_reward"))
	ReferralTx          = enum.New(TransactionType("referral"))
	PurchaseTx          = enum.New(TransactionType("purchase"))
	RedemptionTx        = enum.New(TransactionType("redemption"))
	AdminAdjustmentTx   = enum.New(TransactionType("admin_adjustment"))
	StreakBonusTx       = enum.New(TransactionType("streak_bonus"))
	LevelBonusTx        = enum.New(TransactionType("level_bonus"))
	PromotionPurchaseTx = enum.New(TransactionType("promotion_purchase"))
)

// PointsTransaction is an immutable ledger entry. Rows are only ever
// inserted; there is no update or delete path, and no soft delete. The
// snowflake id keeps the ledger time-ordered. Amount is signed: earns are
// positive, spends negative.
type PointsTransaction struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	Amount int64
	Type   TransactionType

	// RelatedID points to the row that triggered this entry (submission,
	// listing, redemption, promotion, referred user).
	RelatedID   sql.NullString
	Description string

	// IdempotencyKey makes one logical event pay at most once; duplicates
	// fail the unique constraint.
	IdempotencyKey sql.NullString `gorm:"unique"`
}
