package entity

import (
	"database/sql"

	"github.com/swapapp/backend/pkg/enum"
)

type UserType string

var (
	Helper    = enum.New(UserType("helper"))
	Supporter = enum.New(UserType("supporter"))
)

const (
	SuperAdminRole = "SUPER_ADMIN"
	AdminRole      = "ADMIN"
	UserRole       = "USER"
)

var GlobalAdminRoles = []string{SuperAdminRole, AdminRole}

// User carries both the identity and the progression state of an account.
// Points is the cached balance; it must always equal the sum of the user's
// ledger entries, which is why it is only ever mutated by the guarded atomic
// updates in the user repository. Level is cached for display but derived
// from XP; every XP write recomputes it.
type User struct {
	Base

	Name      string `gorm:"unique"`
	Role      string `gorm:"default:USER"`
	UserType  UserType
	AvatarURL string

	Points uint64
	XP     uint64
	Level  int `gorm:"default:1"`

	ReferralCode string `gorm:"unique"`
	ReferredBy   sql.NullString
	ReferrerUser *User  `gorm:"foreignKey:ReferredBy"`
	InviteCount  uint64
}
