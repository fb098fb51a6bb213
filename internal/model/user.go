package model

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	UserType  string `json:"user_type,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Tier struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	MinLevel          int     `json:"min_level"`
	MaxLevel          int     `json:"max_level"`
	PointMultiplier   float64 `json:"point_multiplier"`
	DailyListingLimit int     `json:"daily_listing_limit"`
	UnlocksThemes     bool    `json:"unlocks_themes"`
	StreakEligible    bool    `json:"streak_eligible"`
	MonthlyFreeCode   bool    `json:"monthly_free_code"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`

	Points uint64 `json:"points"`
	XP     uint64 `json:"xp"`

	// Level and progress are recomputed from XP on every read.
	Level    int     `json:"level"`
	Progress float64 `json:"progress"`

	Tier     *Tier `json:"tier,omitempty"`
	NextTier *Tier `json:"next_tier,omitempty"`

	ReferralCode string `json:"referral_code"`
	InviteCount  uint64 `json:"invite_count"`
}

type ClaimReferralRequest struct {
	ReferralCode string `json:"referral_code"`
}

type ClaimReferralResponse struct{}

type AdminAdjustPointsRequest struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

type AdminAdjustPointsResponse struct{}
