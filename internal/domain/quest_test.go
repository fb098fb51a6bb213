package domain

import (
	"testing"

	"github.com/swapapp/backend/internal/domain/search"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/internal/model"
	"github.com/swapapp/backend/internal/repository"
	"github.com/swapapp/backend/pkg/errorx"
	"github.com/swapapp/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestQuestDomain(searchIndex *testutil.MockSearchIndex) *questDomain {
	return NewQuestDomain(
		repository.NewQuestRepository(),
		repository.NewListingRepository(),
		repository.NewUserRepository(),
		searchIndex,
	)
}

func Test_questDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestQuestDomain(&testutil.MockSearchIndex{})

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Create(authorizedCtx, &model.CreateQuestRequest{
		Title:  "Pick up litter",
		Points: 30,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Create(adminCtx, &model.CreateQuestRequest{Points: 30})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = d.Create(adminCtx, &model.CreateQuestRequest{Title: "Pick up litter"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	resp, err := d.Create(adminCtx, &model.CreateQuestRequest{
		Title:  "Pick up litter",
		Points: 30,
	})
	require.NoError(t, err)

	got, err := d.Get(authorizedCtx, &model.GetQuestRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, string(entity.QuestActive), got.Status)
}

func Test_questDomain_Get_HidesInactive(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newTestQuestDomain(&testutil.MockSearchIndex{})

	// Draft quests are invisible to regular users but not to admins.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Get(authorizedCtx, &model.GetQuestRequest{ID: testutil.QuestDraft1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Get(adminCtx, &model.GetQuestRequest{ID: testutil.QuestDraft1.ID})
	require.NoError(t, err)

	list, err := d.GetList(authorizedCtx, &model.GetListQuestRequest{})
	require.NoError(t, err)
	for _, quest := range list.Quests {
		require.Equal(t, string(entity.QuestActive), quest.Status)
	}
}

func Test_questDomain_Update_Archive(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	deleted := []string{}
	d := newTestQuestDomain(&testutil.MockSearchIndex{
		DeleteFunc: func(document, id string) error {
			require.Equal(t, search.QuestDoc, document)
			deleted = append(deleted, id)
			return nil
		},
	})

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err := d.Update(adminCtx, &model.UpdateQuestRequest{
		ID:     testutil.Quest1.ID,
		Title:  testutil.Quest1.Title,
		Points: testutil.Quest1.Points,
		Status: "archived",
	})
	require.NoError(t, err)
	require.Equal(t, []string{testutil.Quest1.ID}, deleted)

	// Archived quests disappear for regular users.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err = d.Get(authorizedCtx, &model.GetQuestRequest{ID: testutil.Quest1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	_, err = d.Update(adminCtx, &model.UpdateQuestRequest{
		ID:     testutil.Quest2.ID,
		Status: "paused",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_questDomain_Search(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	d := newTestQuestDomain(&testutil.MockSearchIndex{
		SearchFunc: func(document, query string, offset, limit int) ([]string, error) {
			if document == search.QuestDoc {
				// The index may return stale hits; inactive ones are
				// filtered out after hydration.
				return []string{testutil.Quest1.ID, testutil.QuestDraft1.ID}, nil
			}

			return nil, nil
		},
	})

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Search(authorizedCtx, &model.SearchRequest{Query: "groceries"})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 1)
	require.Equal(t, testutil.Quest1.ID, resp.Quests[0].ID)
	require.Empty(t, resp.Listings)

	_, err = d.Search(authorizedCtx, &model.SearchRequest{})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
