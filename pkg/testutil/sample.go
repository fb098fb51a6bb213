package testutil

import "github.com/swapapp/backend/internal/entity"

var (
	User1 = &entity.User{
		Base:         entity.Base{ID: "user1"},
		Name:         "user1",
		Role:         entity.UserRole,
		UserType:     entity.Helper,
		ReferralCode: "USER1CODE",
	}

	User2 = &entity.User{
		Base:         entity.Base{ID: "user2"},
		Name:         "user2",
		Role:         entity.UserRole,
		UserType:     entity.Helper,
		ReferralCode: "USER2CODE",
	}

	Admin = &entity.User{
		Base:         entity.Base{ID: "admin"},
		Name:         "admin",
		Role:         entity.AdminRole,
		UserType:     entity.Helper,
		ReferralCode: "ADMINCODE",
	}

	Supporter = &entity.User{
		Base:         entity.Base{ID: "supporter"},
		Name:         "supporter",
		Role:         entity.UserRole,
		UserType:     entity.Supporter,
		ReferralCode: "SUPPORTERCODE",
	}

	TierNewcomer = &entity.LevelTier{
		Base:              entity.Base{ID: "tier1"},
		Name:              "Newcomer",
		MinLevel:          1,
		MaxLevel:          4,
		PointMultiplier:   1.0,
		DailyListingLimit: 3,
	}

	TierHelper = &entity.LevelTier{
		Base:              entity.Base{ID: "tier2"},
		Name:              "Helper",
		MinLevel:          5,
		MaxLevel:          9,
		PointMultiplier:   1.1,
		DailyListingLimit: 5,
		StreakEligible:    true,
	}

	TierPillar = &entity.LevelTier{
		Base:              entity.Base{ID: "tier3"},
		Name:              "Pillar",
		MinLevel:          10,
		MaxLevel:          99,
		PointMultiplier:   1.5,
		UnlocksThemes:     true,
		StreakEligible:    true,
		MonthlyFreeCode:   true,
	}

	Quest1 = &entity.Quest{
		Base:        entity.Base{ID: "quest1"},
		Title:       "Help a neighbor carry groceries",
		Description: "Snap a photo while helping out",
		Status:      entity.QuestActive,
		Points:      100,
		CreatedBy:   Admin.ID,
	}

	Quest2 = &entity.Quest{
		Base:      entity.Base{ID: "quest2"},
		Title:     "Community trivia",
		Status:    entity.QuestActive,
		Points:    40,
		CreatedBy: Admin.ID,
		ValidationData: entity.Map{
			"auto_validate": true,
			"answer":        "kindness",
		},
	}

	QuestDraft1 = &entity.Quest{
		Base:      entity.Base{ID: "quest3"},
		Title:     "Unfinished quest",
		Status:    entity.QuestDraft,
		Points:    10,
		CreatedBy: Admin.ID,
	}

	Reward1 = &entity.Reward{
		Base:       entity.Base{ID: "reward1"},
		Name:       "Coffee voucher",
		Category:   "food",
		CostPoints: 500,
		IsActive:   true,
	}

	Reward2 = &entity.Reward{
		Base:       entity.Base{ID: "reward2"},
		Name:       "Retired mug",
		Category:   "merch",
		CostPoints: 100,
		IsActive:   false,
	}
)
