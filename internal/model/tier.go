package model

type GetTiersRequest struct{}

type GetTiersResponse struct {
	Tiers []Tier `json:"tiers"`
}

type UpdateTierRequest struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	PointMultiplier   float64 `json:"point_multiplier"`
	DailyListingLimit int     `json:"daily_listing_limit"`
}

type UpdateTierResponse struct{}
