package redisstate

import (
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 24 * time.Hour

// WizardStateRepo stores one wizard session per admin. Every write refreshes
// the expiry, so an abandoned session disappears after ttl.
type WizardStateRepo struct {
	client *redis.Client
	ttl    time.Duration
}

var _ repository.WizardStateRepository = (*WizardStateRepo)(nil)

func NewWizardStateRepo(client *redis.Client, ttl time.Duration) *WizardStateRepo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &WizardStateRepo{client: client, ttl: ttl}
}

func (r *WizardStateRepo) Get(ctx context.Context, userID int64) (schema.WizardState, bool, error) {
	v, err := r.client.Get(ctx, wizardKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return schema.WizardState{}, false, nil
	}
	if err != nil {
		return schema.WizardState{}, false, err
	}

	var state schema.WizardState
	if err := json.Unmarshal(v, &state); err != nil {
		return schema.WizardState{}, false, fmt.Errorf("decode wizard %d: %w", userID, err)
	}
	return state, true, nil
}

func (r *WizardStateRepo) Set(ctx context.Context, userID int64, state schema.WizardState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, wizardKey(userID), b, r.ttl).Err()
}

func (r *WizardStateRepo) Delete(ctx context.Context, userID int64) error {
	return r.client.Del(ctx, wizardKey(userID)).Err()
}

func wizardKey(userID int64) string {
	return fmt.Sprintf("wizard:%d", userID)
}
