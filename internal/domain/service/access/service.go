package access

import (
	"ChallengeWizard/internal/domain/errorz"
	"fmt"
	"strconv"
	"strings"
)

// Service decides who may open the dashboard and the wizard. Everyone else
// only sees listed challenges.
type Service struct {
	admins map[int64]struct{}
}

func New(admins map[int64]struct{}) *Service {
	if admins == nil {
		admins = map[int64]struct{}{}
	}
	return &Service{admins: admins}
}

func (s *Service) IsAdmin(userID int64) bool {
	_, ok := s.admins[userID]
	return ok
}

func (s *Service) Require(userID int64) error {
	if !s.IsAdmin(userID) {
		return fmt.Errorf("%w: user %d is not an admin", errorz.ErrForbidden, userID)
	}
	return nil
}

// Authorize resolves a raw user id, as sent in a request header, to an admin.
func (s *Service) Authorize(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: missing or malformed user id", errorz.ErrForbidden)
	}
	if err := s.Require(id); err != nil {
		return 0, err
	}
	return id, nil
}
