package model

type PromotionPurchase struct {
	ID           string `json:"id"`
	TargetType   string `json:"target_type"`
	TargetID     string `json:"target_id"`
	PaymentType  string `json:"payment_type"`
	PointsSpent  uint64 `json:"points_spent"`
	DurationDays int    `json:"duration_days"`
	ExpiresAt    string `json:"expires_at"`
	Status       string `json:"status"`
}

type PurchasePromotionRequest struct {
	TargetType   string `json:"target_type"`
	TargetID     string `json:"target_id"`
	PaymentType  string `json:"payment_type"`
	DurationDays int    `json:"duration_days"`

	// ReceiptID references the external payment for money purchases.
	ReceiptID string `json:"receipt_id"`
}

type PurchasePromotionResponse struct {
	ID        string `json:"id"`
	ExpiresAt string `json:"expires_at"`
}

type GetMyPromotionsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMyPromotionsResponse struct {
	Promotions []PromotionPurchase `json:"promotions"`
}
