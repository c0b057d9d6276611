package redisstate

import (
	"ChallengeWizard/internal/domain/schema"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, ttl time.Duration) (*WizardStateRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWizardStateRepo(client, ttl), mr
}

func TestWizardStateRepo_RoundTrip(t *testing.T) {
	repo, mr := newRepo(t, time.Hour)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	st := schema.WizardState{
		Mode:        schema.WizardModeEdit,
		ChallengeID: "abc",
		Cursor:      schema.Cursor{Step: 3, SubStep: 1},
		SubSteps:    []int{2, 0, 6, 1, 0, 0},
		UpdatedAt:   time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Set(ctx, 5, st))
	assert.True(t, mr.Exists("wizard:5"))
	assert.Equal(t, time.Hour, mr.TTL("wizard:5"))

	got, ok, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, st, got)

	require.NoError(t, repo.Delete(ctx, 5))
	_, ok, err = repo.Get(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWizardStateRepo_Expires(t *testing.T) {
	repo, mr := newRepo(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, 9, schema.WizardState{ChallengeID: "x"}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := repo.Get(ctx, 9)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWizardStateRepo_DefaultTTL(t *testing.T) {
	repo, _ := newRepo(t, 0)
	assert.Equal(t, DefaultTTL, repo.ttl)
}

func TestWizardStateRepo_CorruptValue(t *testing.T) {
	repo, mr := newRepo(t, time.Hour)
	require.NoError(t, mr.Set("wizard:1", "{not json"))

	_, _, err := repo.Get(context.Background(), 1)
	assert.Error(t, err)
}
