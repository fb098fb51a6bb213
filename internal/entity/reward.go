package entity

import (
	"database/sql"
	"time"

	"github.com/swapapp/backend/pkg/enum"
)

type Reward struct {
	Base

	Name        string
	Description string
	Category    string

	CostPoints uint64
	IsActive   bool `gorm:"default:true"`
}

type RedemptionStatus string

var (
	RedemptionIssued   = enum.New(RedemptionStatus("issued"))
	RedemptionRedeemed = enum.New(RedemptionStatus("redeemed"))
	RedemptionExpired  = enum.New(RedemptionStatus("expired"))
)

// Redemption is a single-use claim on a reward. PointsSpent copies the
// reward cost at redemption time so later catalog price changes do not
// rewrite history. Status only moves issued->redeemed or issued->expired.
type Redemption struct {
	Base

	Code string `gorm:"unique"`

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	RewardID string
	Reward   Reward `gorm:"foreignKey:RewardID"`

	PointsSpent uint64
	Status      RedemptionStatus

	ExpiresAt  time.Time
	RedeemedAt sql.NullTime
	VerifierID sql.NullString
}
