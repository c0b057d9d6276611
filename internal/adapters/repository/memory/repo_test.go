package memory

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/schema"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeRepo_ReturnsCopies(t *testing.T) {
	repo := NewChallengeRepo()
	ctx := context.Background()

	c := schema.Challenge{
		ID:       "a",
		Status:   schema.ChallengeStatusDraft,
		FormData: schema.FormData{Rewards: &schema.Rewards{Types: []string{"points"}}},
	}
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	got.FormData.Rewards.Types[0] = "badge"

	again, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"points"}, again.FormData.RewardTypes())

	_, err = repo.Create(ctx, c)
	assert.Error(t, err)

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.GetByID(ctx, "a")
	assert.ErrorIs(t, err, errorz.ErrNotFound)
}

func TestWizardStateRepo_Expires(t *testing.T) {
	repo := NewWizardStateRepo(time.Hour)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	st := schema.WizardState{ChallengeID: "a", SubSteps: []int{1, 0}}
	require.NoError(t, repo.Set(ctx, 7, st))

	got, ok, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, st, got)

	now = now.Add(2 * time.Hour)
	_, ok, err = repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, 7, st))
	require.NoError(t, repo.Delete(ctx, 7))
	_, ok, _ = repo.Get(ctx, 7)
	assert.False(t, ok)
}
