package entity

import (
	"database/sql"
	"time"

	"github.com/swapapp/backend/pkg/enum"
)

type PromotionStatus string

var (
	PromotionActive  = enum.New(PromotionStatus("active"))
	PromotionExpired = enum.New(PromotionStatus("expired"))
)

type PromotionTarget string

var (
	PromoteListing = enum.New(PromotionTarget("listing"))
	PromoteQuest   = enum.New(PromotionTarget("quest"))
)

type PaymentType string

var (
	PayWithPoints = enum.New(PaymentType("points"))
	PayWithMoney  = enum.New(PaymentType("money"))
)

type PromotionPurchase struct {
	Base

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	TargetType PromotionTarget
	TargetID   string

	PaymentType  PaymentType
	PointsSpent  uint64
	ReceiptID    sql.NullString
	DurationDays int

	ExpiresAt time.Time
	Status    PromotionStatus
}
