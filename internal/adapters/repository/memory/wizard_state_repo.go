package memory

import (
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	"context"
	"sync"
	"time"
)

// WizardStateRepo keeps sessions in process. Entries idle for longer than
// ttl are dropped on read.
type WizardStateRepo struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	states map[int64]stateEntry
}

type stateEntry struct {
	state   schema.WizardState
	expires time.Time
}

var _ repository.WizardStateRepository = (*WizardStateRepo)(nil)

func NewWizardStateRepo(ttl time.Duration) *WizardStateRepo {
	return &WizardStateRepo{ttl: ttl, now: time.Now, states: make(map[int64]stateEntry)}
}

func (r *WizardStateRepo) Get(ctx context.Context, userID int64) (schema.WizardState, bool, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.states[userID]
	if !ok {
		return schema.WizardState{}, false, nil
	}
	if r.ttl > 0 && r.now().After(e.expires) {
		delete(r.states, userID)
		return schema.WizardState{}, false, nil
	}
	return copyState(e.state), true, nil
}

func (r *WizardStateRepo) Set(ctx context.Context, userID int64, state schema.WizardState) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[userID] = stateEntry{state: copyState(state), expires: r.now().Add(r.ttl)}
	return nil
}

func (r *WizardStateRepo) Delete(ctx context.Context, userID int64) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, userID)
	return nil
}

func copyState(st schema.WizardState) schema.WizardState {
	st.SubSteps = append([]int(nil), st.SubSteps...)
	return st
}
