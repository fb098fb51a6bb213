package domain

import (
	"time"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
)

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	return model.User{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		UserType:  string(user.UserType),
		AvatarURL: user.AvatarURL,
	}
}

func convertTier(tier *entity.LevelTier) *model.Tier {
	if tier == nil {
		return nil
	}

	return &model.Tier{
		ID:                tier.ID,
		Name:              tier.Name,
		MinLevel:          tier.MinLevel,
		MaxLevel:          tier.MaxLevel,
		PointMultiplier:   tier.PointMultiplier,
		DailyListingLimit: tier.DailyListingLimit,
		UnlocksThemes:     tier.UnlocksThemes,
		StreakEligible:    tier.StreakEligible,
		MonthlyFreeCode:   tier.MonthlyFreeCode,
	}
}

func convertQuest(quest *entity.Quest) model.Quest {
	if quest == nil {
		return model.Quest{}
	}

	return model.Quest{
		ID:          quest.ID,
		Title:       quest.Title,
		Description: quest.Description,
		Status:      string(quest.Status),
		Points:      quest.Points,
		CategoryID:  quest.CategoryID.String,
		IsPromoted:  quest.IsPromoted,
		Validation:  quest.ValidationData,
	}
}

func convertSubmission(submission *entity.QuestSubmission) model.QuestSubmission {
	if submission == nil {
		return model.QuestSubmission{}
	}

	reviewedAt := ""
	if !submission.ReviewedAt.IsZero() {
		reviewedAt = submission.ReviewedAt.Format(time.RFC3339)
	}

	return model.QuestSubmission{
		ID:            submission.ID,
		QuestID:       submission.QuestID,
		UserID:        submission.UserID,
		ProofText:     submission.ProofText,
		ProofImageURL: submission.ProofImageURL,
		Status:        string(submission.Status),
		ReviewerID:    submission.ReviewerID,
		ReviewedAt:    reviewedAt,
		AdminNote:     submission.AdminNote,
	}
}

func convertReward(reward *entity.Reward) model.Reward {
	if reward == nil {
		return model.Reward{}
	}

	return model.Reward{
		ID:          reward.ID,
		Name:        reward.Name,
		Description: reward.Description,
		Category:    reward.Category,
		CostPoints:  reward.CostPoints,
		IsActive:    reward.IsActive,
	}
}

func convertRedemption(redemption *entity.Redemption) model.Redemption {
	if redemption == nil {
		return model.Redemption{}
	}

	redeemedAt := ""
	if redemption.RedeemedAt.Valid {
		redeemedAt = redemption.RedeemedAt.Time.Format(time.RFC3339)
	}

	return model.Redemption{
		ID:          redemption.ID,
		Code:        redemption.Code,
		RewardID:    redemption.RewardID,
		PointsSpent: redemption.PointsSpent,
		Status:      string(redemption.Status),
		ExpiresAt:   redemption.ExpiresAt.Format(time.RFC3339),
		RedeemedAt:  redeemedAt,
	}
}

func convertListing(listing *entity.Listing) model.Listing {
	if listing == nil {
		return model.Listing{}
	}

	return model.Listing{
		ID:          listing.ID,
		UserID:      listing.UserID,
		Title:       listing.Title,
		Description: listing.Description,
		Points:      listing.Points,
		Status:      string(listing.Status),
		IsPromoted:  listing.IsPromoted,
	}
}

func convertPromotion(promotion *entity.PromotionPurchase) model.PromotionPurchase {
	if promotion == nil {
		return model.PromotionPurchase{}
	}

	return model.PromotionPurchase{
		ID:           promotion.ID,
		TargetType:   string(promotion.TargetType),
		TargetID:     promotion.TargetID,
		PaymentType:  string(promotion.PaymentType),
		PointsSpent:  promotion.PointsSpent,
		DurationDays: promotion.DurationDays,
		ExpiresAt:    promotion.ExpiresAt.Format(time.RFC3339),
		Status:       string(promotion.Status),
	}
}

func convertTransaction(tx *entity.PointsTransaction) model.PointsTransaction {
	if tx == nil {
		return model.PointsTransaction{}
	}

	return model.PointsTransaction{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		RelatedID:   tx.RelatedID.String,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
