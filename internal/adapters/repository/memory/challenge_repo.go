package memory

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	"context"
	"fmt"
	"sync"
)

type ChallengeRepo struct {
	mu         sync.RWMutex
	challenges map[string]schema.Challenge
}

var _ repository.ChallengeRepository = (*ChallengeRepo)(nil)

func NewChallengeRepo() *ChallengeRepo {
	return &ChallengeRepo{challenges: make(map[string]schema.Challenge)}
}

func (r *ChallengeRepo) Create(ctx context.Context, c schema.Challenge) (schema.Challenge, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.challenges[c.ID]; ok {
		return schema.Challenge{}, fmt.Errorf("challenge %s already exists", c.ID)
	}
	r.challenges[c.ID] = clone(c)
	return clone(c), nil
}

func (r *ChallengeRepo) GetByID(ctx context.Context, id string) (schema.Challenge, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.challenges[id]
	if !ok {
		return schema.Challenge{}, errorz.ErrNotFound
	}
	return clone(c), nil
}

func (r *ChallengeRepo) List(ctx context.Context, filter repository.ListChallengesFilter) (repository.ListChallengesResult, error) {
	_ = ctx

	r.mu.RLock()
	all := make([]schema.Challenge, 0, len(r.challenges))
	for _, c := range r.challenges {
		all = append(all, clone(c))
	}
	r.mu.RUnlock()

	return repository.Paginate(all, filter), nil
}

func (r *ChallengeRepo) Update(ctx context.Context, c schema.Challenge) (schema.Challenge, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.challenges[c.ID]; !ok {
		return schema.Challenge{}, errorz.ErrNotFound
	}
	r.challenges[c.ID] = clone(c)
	return clone(c), nil
}

func (r *ChallengeRepo) Delete(ctx context.Context, id string) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.challenges[id]; !ok {
		return errorz.ErrNotFound
	}
	delete(r.challenges, id)
	return nil
}

func clone(c schema.Challenge) schema.Challenge {
	c.FormData = c.FormData.Clone()
	return c
}
