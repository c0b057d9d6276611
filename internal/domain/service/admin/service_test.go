package admin_test

import (
	"ChallengeWizard/internal/adapters/repository/memory"
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/schema"
	"ChallengeWizard/internal/domain/service/admin"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func complete(id string, status schema.ChallengeStatus) schema.Challenge {
	return schema.Challenge{
		ID:     id,
		Status: status,
		FormData: schema.FormData{
			BasicInformation: &schema.BasicInformation{Category: schema.CategoryNutrition, Theme: schema.ThemeBingo, Importance: "low"},
			Objective:        &schema.Objective{Bingo: &schema.BingoGoal{SquaresRequired: 5}},
			Details: &schema.Details{
				Name: "Veggie Bingo", Headline: "Eat the rainbow", Summary: "Fill the card with vegetables.",
				Image: "/img/bingo.png", HeroImage: "/img/bingo-hero.png",
				EnrollmentStartDate: "2026-04-01", EnrollmentEndDate: "2026-04-07",
				ChallengeStartDate: "2026-04-02", ChallengeEndDate: "2026-04-30",
			},
			Rewards:  &schema.Rewards{Types: []string{"points", "badge"}, Points: 50, BadgeID: "badge3"},
			Features: &schema.Features{NextBestActions: []string{"Recipes"}, RecipeDiet: "vegan"},
		},
		CreatedAt: base,
		UpdatedAt: base,
	}
}

func seed(t *testing.T, challenges ...schema.Challenge) (*admin.Service, *memory.ChallengeRepo) {
	t.Helper()
	repo := memory.NewChallengeRepo()
	for _, c := range challenges {
		_, err := repo.Create(context.Background(), c)
		require.NoError(t, err)
	}
	return admin.New(repo).WithClock(func() time.Time { return base.Add(time.Hour) }), repo
}

func TestListTabs(t *testing.T) {
	draft := complete("d", schema.ChallengeStatusDraft)
	sub := complete("s", schema.ChallengeStatusSubmitted)
	sub.UpdatedAt = base.Add(time.Minute)
	listed := complete("l", schema.ChallengeStatusListed)
	listed.UpdatedAt = base.Add(2 * time.Minute)
	svc, _ := seed(t, draft, sub, listed)
	ctx := context.Background()

	all, err := svc.List(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, "l", all.Items[0].ID)

	drafts, err := svc.List(ctx, "draft", 1, 10)
	require.NoError(t, err)
	require.Len(t, drafts.Items, 1)
	assert.Equal(t, "d", drafts.Items[0].ID)

	_, err = svc.List(ctx, "archived", 1, 10)
	assert.ErrorIs(t, err, errorz.ErrValidation)
}

func TestUpdateStatus(t *testing.T) {
	incomplete := complete("i", schema.ChallengeStatusDraft)
	incomplete.FormData.Rewards.BadgeID = ""
	svc, _ := seed(t, complete("d", schema.ChallengeStatusDraft), incomplete)
	ctx := context.Background()

	c, err := svc.UpdateStatus(ctx, "d", schema.ChallengeStatusSubmitted)
	require.NoError(t, err)
	assert.Equal(t, schema.ChallengeStatusSubmitted, c.Status)
	assert.Equal(t, base.Add(time.Hour), c.UpdatedAt)

	c, err = svc.UpdateStatus(ctx, "d", schema.ChallengeStatusListed)
	require.NoError(t, err)
	assert.Equal(t, schema.ChallengeStatusListed, c.Status)

	_, err = svc.UpdateStatus(ctx, "d", schema.ChallengeStatusDraft)
	assert.ErrorIs(t, err, errorz.ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, "i", schema.ChallengeStatusListed)
	assert.ErrorIs(t, err, errorz.ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, "i", schema.ChallengeStatusSubmitted)
	assert.ErrorIs(t, err, errorz.ErrValidation)

	_, err = svc.UpdateStatus(ctx, "missing", schema.ChallengeStatusSubmitted)
	assert.ErrorIs(t, err, errorz.ErrNotFound)
}

func TestPreview(t *testing.T) {
	svc, _ := seed(t, complete("b", schema.ChallengeStatusListed))

	p, err := svc.Preview(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "Veggie Bingo", p.Title)
	assert.Equal(t, "5 Squares", p.Objective)
	assert.Equal(t, "2026-04-02 - 2026-04-30", p.DateRange)
	assert.Equal(t, "/img/bingo.png", p.Image)
	assert.Equal(t, "/img/bingo-hero.png", p.RewardImage)
	assert.Equal(t, "Wellness Warrior", p.Badge)
	assert.Equal(t, []string{"Points: 50", "Badge: Wellness Warrior"}, p.Rewards)
	assert.Len(t, p.Benefits, 2)
	assert.Len(t, p.Sections, 5)
}

func TestPreviewFallbacks(t *testing.T) {
	p := admin.BuildPreview(schema.Challenge{ID: "empty", Status: schema.ChallengeStatusDraft})
	assert.Equal(t, "Untitled Challenge", p.Title)
	assert.Equal(t, admin.DefaultChallengeImage, p.Image)
	assert.Equal(t, admin.DefaultRewardImage, p.RewardImage)
	assert.Equal(t, admin.DefaultSummary, p.Summary)
	assert.Empty(t, p.DateRange)
	assert.Empty(t, p.Rewards)
	assert.NotEmpty(t, p.Benefits)

	p = admin.BuildPreview(schema.Challenge{FormData: schema.FormData{Rewards: &schema.Rewards{BadgeID: "custom"}}})
	assert.Equal(t, "custom", p.Badge)
}

func TestDeleteThenPreviewIsNotFound(t *testing.T) {
	svc, _ := seed(t, complete("x", schema.ChallengeStatusSubmitted))
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "x"))

	all, err := svc.List(ctx, schema.StatusFilterAll, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, all.Total)

	_, err = svc.Preview(ctx, "x")
	assert.ErrorIs(t, err, errorz.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "x"), errorz.ErrNotFound)
}
