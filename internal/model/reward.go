package model

type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CostPoints  uint64 `json:"cost_points"`
	IsActive    bool   `json:"is_active"`
}

type Redemption struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	RewardID    string `json:"reward_id"`
	PointsSpent uint64 `json:"points_spent"`
	Status      string `json:"status"`
	ExpiresAt   string `json:"expires_at"`
	RedeemedAt  string `json:"redeemed_at,omitempty"`
}

type CreateRewardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CostPoints  uint64 `json:"cost_points"`
}

type CreateRewardResponse struct {
	ID string `json:"id"`
}

type UpdateRewardRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateRewardResponse struct{}

type GetListRewardRequest struct {
	Category string `json:"category"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type GetListRewardResponse struct {
	Rewards []Reward `json:"rewards"`
}

type RedeemRewardRequest struct {
	RewardID string `json:"reward_id"`
}

type RedeemRewardResponse struct {
	Code      string `json:"code"`
	ExpiresAt string `json:"expires_at"`
}

type VerifyRedemptionRequest struct {
	Code string `json:"code"`
}

type VerifyRedemptionResponse struct {
	RewardID    string `json:"reward_id"`
	PointsSpent uint64 `json:"points_spent"`
}

type GetMyRedemptionsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMyRedemptionsResponse struct {
	Redemptions []Redemption `json:"redemptions"`
}
