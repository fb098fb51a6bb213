package testutil

import (
	"context"

	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/repository"
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertTiers(ctx)
	InsertQuests(ctx)
	InsertRewards(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []*entity.User{User1, User2, Admin, Supporter} {
		u := *user
		if err := userRepo.Create(ctx, &u); err != nil {
			panic(err)
		}
	}
}

func InsertTiers(ctx context.Context) {
	tierRepo := repository.NewLevelTierRepository()

	for _, tier := range []*entity.LevelTier{TierNewcomer, TierHelper, TierPillar} {
		t := *tier
		if err := tierRepo.Create(ctx, &t); err != nil {
			panic(err)
		}
	}
}

func InsertQuests(ctx context.Context) {
	questRepo := repository.NewQuestRepository()

	for _, quest := range []*entity.Quest{Quest1, Quest2, QuestDraft1} {
		q := *quest
		if err := questRepo.Create(ctx, &q); err != nil {
			panic(err)
		}
	}
}

func InsertRewards(ctx context.Context) {
	rewardRepo := repository.NewRewardRepository()

	for _, reward := range []*entity.Reward{Reward1, Reward2} {
		r := *reward
		if err := rewardRepo.Create(ctx, &r); err != nil {
			panic(err)
		}

		// Create leaves the is_active column on its default, so inactive
		// fixtures need an explicit update.
		if !reward.IsActive {
			if err := rewardRepo.SetActive(ctx, reward.ID, false); err != nil {
				panic(err)
			}
		}
	}
}
