// Package filestore persists every challenge in one JSON document on disk,
// stored under a single key the way the dashboard keeps its list.
package filestore

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// StorageKey names the document; the file is <dataDir>/<StorageKey>.json.
const StorageKey = "challenge-wizard"

type fileState struct {
	Challenges []schema.Challenge `json:"challenges"`
}

type ChallengeRepo struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

var _ repository.ChallengeRepository = (*ChallengeRepo)(nil)

func NewChallengeRepo(dataDir string) (*ChallengeRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &ChallengeRepo{
		path: filepath.Join(dataDir, StorageKey+".json"),
		s:    fileState{Challenges: []schema.Challenge{}},
	}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", r.path, err)
	}
	return r, nil
}

func (r *ChallengeRepo) Path() string {
	return r.path
}

func (r *ChallengeRepo) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.Challenges == nil {
		loaded.Challenges = []schema.Challenge{}
	}
	r.s = loaded
	return nil
}

func (r *ChallengeRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *ChallengeRepo) indexLocked(id string) int {
	for i, c := range r.s.Challenges {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *ChallengeRepo) Create(ctx context.Context, c schema.Challenge) (schema.Challenge, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexLocked(c.ID) >= 0 {
		return schema.Challenge{}, fmt.Errorf("challenge %s already exists", c.ID)
	}
	c.FormData = c.FormData.Clone()
	r.s.Challenges = append(r.s.Challenges, c)
	if err := r.saveLocked(); err != nil {
		r.s.Challenges = r.s.Challenges[:len(r.s.Challenges)-1]
		return schema.Challenge{}, err
	}
	return c, nil
}

func (r *ChallengeRepo) GetByID(ctx context.Context, id string) (schema.Challenge, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexLocked(id)
	if i < 0 {
		return schema.Challenge{}, errorz.ErrNotFound
	}
	c := r.s.Challenges[i]
	c.FormData = c.FormData.Clone()
	return c, nil
}

func (r *ChallengeRepo) List(ctx context.Context, filter repository.ListChallengesFilter) (repository.ListChallengesResult, error) {
	_ = ctx

	r.mu.RLock()
	all := make([]schema.Challenge, len(r.s.Challenges))
	for i, c := range r.s.Challenges {
		c.FormData = c.FormData.Clone()
		all[i] = c
	}
	r.mu.RUnlock()

	return repository.Paginate(all, filter), nil
}

func (r *ChallengeRepo) Update(ctx context.Context, c schema.Challenge) (schema.Challenge, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(c.ID)
	if i < 0 {
		return schema.Challenge{}, errorz.ErrNotFound
	}
	prev := r.s.Challenges[i]
	c.FormData = c.FormData.Clone()
	r.s.Challenges[i] = c
	if err := r.saveLocked(); err != nil {
		r.s.Challenges[i] = prev
		return schema.Challenge{}, err
	}
	return c, nil
}

func (r *ChallengeRepo) Delete(ctx context.Context, id string) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return errorz.ErrNotFound
	}
	prev := r.s.Challenges
	next := make([]schema.Challenge, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)
	r.s.Challenges = next
	if err := r.saveLocked(); err != nil {
		r.s.Challenges = prev
		return err
	}
	return nil
}
