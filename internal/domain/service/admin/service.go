package admin

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	"ChallengeWizard/internal/domain/wizard"
	"context"
	"fmt"
	"time"
)

const (
	DefaultChallengeImage = "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=facearea&w=256&q=80"
	DefaultRewardImage    = "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=facearea&w=256&q=80"
	DefaultSummary        = "No summary provided."
)

var defaultBenefits = []string{
	"You may lower your overall blood pressure.",
	"You can make improvements to your cardio health and daily mood.",
}

// Preview is the read-only rendering of one challenge.
type Preview struct {
	ID          string                  `json:"id"`
	Status      schema.ChallengeStatus  `json:"status"`
	Title       string                  `json:"title"`
	Headline    string                  `json:"headline,omitempty"`
	Summary     string                  `json:"summary"`
	DateRange   string                  `json:"dateRange,omitempty"`
	Objective   string                  `json:"objective,omitempty"`
	Image       string                  `json:"image"`
	RewardImage string                  `json:"rewardImage"`
	Badge       string                  `json:"badge,omitempty"`
	Rewards     []string                `json:"rewards"`
	Benefits    []string                `json:"benefits"`
	Sections    []wizard.SummarySection `json:"sections"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

type Service struct {
	challenges repository.ChallengeRepository
	now        func() time.Time
}

func New(challenges repository.ChallengeRepository) *Service {
	return &Service{challenges: challenges, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List backs the dashboard tabs. An empty status means all of them.
func (s *Service) List(ctx context.Context, status string, page, pageSize int) (repository.ListChallengesResult, error) {
	if status == "" {
		status = schema.StatusFilterAll
	}
	if status != schema.StatusFilterAll && !schema.ChallengeStatus(status).Valid() {
		return repository.ListChallengesResult{}, errorz.NewFieldError("status", "unknown status %q", status)
	}
	return s.challenges.List(ctx, repository.ListChallengesFilter{
		Status:   status,
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *Service) Get(ctx context.Context, id string) (schema.Challenge, error) {
	return s.challenges.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.challenges.Delete(ctx, id)
}

// UpdateStatus moves a challenge one step along draft -> submitted -> listed.
// A draft can only be submitted once every question is answered.
func (s *Service) UpdateStatus(ctx context.Context, id string, next schema.ChallengeStatus) (schema.Challenge, error) {
	c, err := s.challenges.GetByID(ctx, id)
	if err != nil {
		return schema.Challenge{}, err
	}
	if !c.Status.CanTransition(next) {
		return schema.Challenge{}, fmt.Errorf("%w: %s -> %s", errorz.ErrInvalidTransition, c.Status, next)
	}
	if next == schema.ChallengeStatusSubmitted {
		if _, err := wizard.FirstInvalid(c.FormData); err != nil {
			return schema.Challenge{}, err
		}
	}

	c.Status = next
	c.UpdatedAt = s.now().UTC()
	return s.challenges.Update(ctx, c)
}

func (s *Service) Preview(ctx context.Context, id string) (Preview, error) {
	c, err := s.challenges.GetByID(ctx, id)
	if err != nil {
		return Preview{}, err
	}
	return BuildPreview(c), nil
}

// BuildPreview fills in the placeholder image, summary and benefits wherever
// the challenge leaves them empty.
func BuildPreview(c schema.Challenge) Preview {
	fd := c.FormData
	p := Preview{
		ID:          c.ID,
		Status:      c.Status,
		Title:       c.Title(),
		Summary:     DefaultSummary,
		Objective:   fd.Objective.Summary(fd.Theme()),
		Image:       DefaultChallengeImage,
		RewardImage: DefaultRewardImage,
		Rewards:     []string{},
		Benefits:    append([]string(nil), defaultBenefits...),
		Sections:    wizard.Summarize(fd),
		UpdatedAt:   c.UpdatedAt,
	}

	if d := fd.Details; d != nil {
		p.Headline = d.Headline
		if d.Summary != "" {
			p.Summary = d.Summary
		}
		if d.Image != "" {
			p.Image = d.Image
		}
		if d.HeroImage != "" {
			p.RewardImage = d.HeroImage
		}
		p.DateRange = wizard.DateRangeText(d.ChallengeStartDate, d.ChallengeEndDate)
	}

	if r := fd.Rewards; r != nil {
		if r.Points > 0 {
			p.Rewards = append(p.Rewards, fmt.Sprintf("Points: %d", r.Points))
		}
		if r.BadgeID != "" {
			p.Badge = wizard.BadgeLabel(r.BadgeID)
			if p.Badge == "" {
				p.Badge = r.BadgeID
			}
			p.Rewards = append(p.Rewards, "Badge: "+p.Badge)
		}
	}
	return p
}
