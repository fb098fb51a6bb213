package entity

import (
	"database/sql"
	"time"

	"github.com/swapapp/backend/pkg/enum"
)

type ListingStatus string

var (
	ListingPending  = enum.New(ListingStatus("pending"))
	ListingApproved = enum.New(ListingStatus("approved"))
	ListingRejected = enum.New(ListingStatus("rejected"))
)

type Listing struct {
	Base

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	Title       string
	Description string
	Points      uint64

	Status     ListingStatus
	ReviewerID string
	ReviewedAt time.Time
	AdminNote  string

	IsPromoted    bool
	PromotedUntil sql.NullTime
}
