package model

type QuestSubmission struct {
	ID            string `json:"id"`
	QuestID       string `json:"quest_id"`
	UserID        string `json:"user_id"`
	ProofText     string `json:"proof_text"`
	ProofImageURL string `json:"proof_image_url,omitempty"`
	Status        string `json:"status"`
	ReviewerID    string `json:"reviewer_id,omitempty"`
	ReviewedAt    string `json:"reviewed_at,omitempty"`
	AdminNote     string `json:"admin_note,omitempty"`
}

type SubmitQuestRequest struct {
	QuestID       string `json:"quest_id"`
	ProofText     string `json:"proof_text"`
	ProofImageURL string `json:"proof_image_url"`
}

type SubmitQuestResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type GetSubmissionRequest struct {
	ID string `json:"id"`
}

type GetSubmissionResponse QuestSubmission

type GetPendingSubmissionsRequest struct {
	QuestID string `json:"quest_id"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

type GetPendingSubmissionsResponse struct {
	Submissions []QuestSubmission `json:"submissions"`
}

type GetMySubmissionsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMySubmissionsResponse struct {
	Submissions []QuestSubmission `json:"submissions"`
}

type ReviewSubmissionRequest struct {
	ID     string `json:"id"`
	Action string `json:"action"`

	// Points and XP override the quest defaults when non-zero. Ignored on
	// reject.
	Points    uint64 `json:"points"`
	XP        uint64 `json:"xp"`
	AdminNote string `json:"admin_note"`
}

type ReviewSubmissionResponse struct{}
