package model

type Quest struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Points      uint64         `json:"points"`
	CategoryID  string         `json:"category_id,omitempty"`
	IsPromoted  bool           `json:"is_promoted"`
	Validation  map[string]any `json:"validation,omitempty"`
}

type CreateQuestRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Points      uint64         `json:"points"`
	CategoryID  string         `json:"category_id"`
	Validation  map[string]any `json:"validation"`
}

type CreateQuestResponse struct {
	ID string `json:"id"`
}

type UpdateQuestRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      uint64 `json:"points"`
	Status      string `json:"status"`
}

type UpdateQuestResponse struct{}

type GetQuestRequest struct {
	ID string `json:"id"`
}

type GetQuestResponse Quest

type GetListQuestRequest struct {
	CategoryID string `json:"category_id"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type GetListQuestResponse struct {
	Quests []Quest `json:"quests"`
}

type SearchRequest struct {
	Query  string `json:"query"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type SearchResponse struct {
	Quests   []Quest   `json:"quests"`
	Listings []Listing `json:"listings"`
}
