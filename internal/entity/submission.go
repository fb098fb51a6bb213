package entity

import (
	"time"

	"github.com/swapapp/backend/pkg/enum"
)

type SubmissionStatus string

var (
	SubmissionPending      = enum.New(SubmissionStatus("pending"))
	SubmissionApproved     = enum.New(SubmissionStatus("approved"))
	SubmissionAutoApproved = enum.New(SubmissionStatus("auto_approved"))
	SubmissionRejected     = enum.New(SubmissionStatus("rejected"))
)

type QuestSubmission struct {
	Base

	QuestID string
	Quest   Quest `gorm:"foreignKey:QuestID"`

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	ProofText     string
	ProofImageURL string

	Status     SubmissionStatus
	ReviewerID string
	ReviewedAt time.Time
	AdminNote  string
}

// SubmissionStreak tracks consecutive days with at least one approved
// submission. LastDay is truncated to midnight UTC.
type SubmissionStreak struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	LastDay time.Time
	Streaks int
}
