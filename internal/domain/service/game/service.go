package game

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	"ChallengeWizard/internal/domain/service/admin"
	"context"
	"errors"
)

var ErrNoListedChallenges = errors.New("no listed challenges")

// Service is the participant side: it only ever shows listed challenges.
type Service struct {
	challenges repository.ChallengeRepository
}

func New(challenges repository.ChallengeRepository) *Service {
	return &Service{challenges: challenges}
}

func (s *Service) Listed(ctx context.Context, page, pageSize int) (repository.ListChallengesResult, error) {
	res, err := s.challenges.List(ctx, repository.ListChallengesFilter{
		Status:   string(schema.ChallengeStatusListed),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return repository.ListChallengesResult{}, err
	}
	if res.Total == 0 {
		return res, ErrNoListedChallenges
	}
	return res, nil
}

// Challenge hides drafts and submissions behind ErrNotFound.
func (s *Service) Challenge(ctx context.Context, id string) (admin.Preview, error) {
	c, err := s.challenges.GetByID(ctx, id)
	if err != nil {
		return admin.Preview{}, err
	}
	if c.Status != schema.ChallengeStatusListed {
		return admin.Preview{}, errorz.ErrNotFound
	}
	return admin.BuildPreview(c), nil
}
