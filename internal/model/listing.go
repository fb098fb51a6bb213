package model

type Listing struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      uint64 `json:"points"`
	Status      string `json:"status"`
	IsPromoted  bool   `json:"is_promoted"`
}

type CreateListingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      uint64 `json:"points"`
}

type CreateListingResponse struct {
	ID string `json:"id"`
}

type GetListingRequest struct {
	ID string `json:"id"`
}

type GetListingResponse Listing

type GetListListingRequest struct {
	UserID string `json:"user_id"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetListListingResponse struct {
	Listings []Listing `json:"listings"`
}

type ReviewListingRequest struct {
	ID     string `json:"id"`
	Action string `json:"action"`

	Points    uint64 `json:"points"`
	XP        uint64 `json:"xp"`
	AdminNote string `json:"admin_note"`
}

type ReviewListingResponse struct{}
