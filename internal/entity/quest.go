package entity

import (
	"database/sql"

	"github.com/swapapp/backend/pkg/enum"
)

type QuestStatus string

var (
	QuestDraft    = enum.New(QuestStatus("draft"))
	QuestActive   = enum.New(QuestStatus("active"))
	QuestArchived = enum.New(QuestStatus("archived"))
)

type Quest struct {
	Base

	Title       string
	Description string
	Status      QuestStatus

	// Points is the default award suggested to the reviewer. XP defaults to
	// half of the awarded points.
	Points uint64

	CategoryID sql.NullString
	Category   Category `gorm:"foreignKey:CategoryID"`

	CreatedBy     string `gorm:"not null"`
	CreatedByUser User   `gorm:"foreignKey:CreatedBy"`

	// ValidationData optionally enables auto review, e.g.
	// {"auto_validate": true, "answer": "..."}.
	ValidationData Map

	IsPromoted    bool
	PromotedUntil sql.NullTime
}

type Category struct {
	Base
	Name          string
	CreatedBy     string `gorm:"not null"`
	CreatedByUser User   `gorm:"foreignKey:CreatedBy"`
}
