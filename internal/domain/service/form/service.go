package form

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	"ChallengeWizard/internal/domain/wizard"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// View is everything a controller needs to render the wizard at its cursor.
type View struct {
	Challenge  schema.Challenge        `json:"challenge"`
	Mode       schema.WizardMode       `json:"mode"`
	Cursor     schema.Cursor           `json:"cursor"`
	Step       wizard.Step             `json:"step"`
	Question   wizard.Question         `json:"question"`
	Answer     any                     `json:"answer,omitempty"`
	Totals     []int                   `json:"totals"`
	Progress   int                     `json:"progress"`
	CanAdvance bool                    `json:"canAdvance"`
	Submitted  bool                    `json:"submitted"`
	Review     []wizard.SummarySection `json:"review,omitempty"`
	Location   string                  `json:"location"`
}

type Service struct {
	challenges repository.ChallengeRepository
	states     repository.WizardStateRepository
	now        func() time.Time
}

func New(challenges repository.ChallengeRepository, states repository.WizardStateRepository) *Service {
	return &Service{challenges: challenges, states: states, now: time.Now}
}

// WithClock replaces time.Now, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// StartCreate opens a fresh draft and puts the admin on its first question.
func (s *Service) StartCreate(ctx context.Context, userID int64) (View, error) {
	now := s.now().UTC()
	c, err := s.challenges.Create(ctx, schema.Challenge{
		ID:        uuid.NewString(),
		AuthorID:  userID,
		Status:    schema.ChallengeStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return View{}, fmt.Errorf("create draft: %w", err)
	}

	st := wizard.NewState(schema.WizardModeCreate, c.ID, now)
	if err := s.states.Set(ctx, userID, st); err != nil {
		return View{}, fmt.Errorf("save wizard: %w", err)
	}
	return render(c, st), nil
}

// Resume opens an existing challenge. With at set the cursor is rebuilt from
// that position; otherwise an open session on the same challenge keeps its
// cursor and anything else starts from the top.
func (s *Service) Resume(ctx context.Context, userID int64, challengeID string, at *schema.Cursor) (View, error) {
	c, err := s.challenges.GetByID(ctx, challengeID)
	if err != nil {
		return View{}, err
	}

	st, ok, err := s.states.Get(ctx, userID)
	if err != nil {
		return View{}, fmt.Errorf("load wizard: %w", err)
	}
	if !ok || st.ChallengeID != c.ID {
		mode := schema.WizardModeEdit
		if c.Status == schema.ChallengeStatusDraft && c.AuthorID == userID {
			mode = schema.WizardModeCreate
		}
		st = wizard.NewState(mode, c.ID, s.now().UTC())
	}
	if at != nil {
		st = wizard.Restore(st, at.Step, at.SubStep, c.FormData)
	}
	st = wizard.Clamp(st, c.FormData)
	st.UpdatedAt = s.now().UTC()

	if err := s.states.Set(ctx, userID, st); err != nil {
		return View{}, fmt.Errorf("save wizard: %w", err)
	}
	return render(c, st), nil
}

func (s *Service) Current(ctx context.Context, userID int64) (View, error) {
	c, st, err := s.load(ctx, userID)
	if err != nil {
		return View{}, err
	}
	return render(c, st), nil
}

// Answer merges a partial section into the challenge. Totals may change as a
// result, so the cursors are clamped before the state is saved.
func (s *Service) Answer(ctx context.Context, userID int64, section schema.Section, patch json.RawMessage) (View, error) {
	c, st, err := s.load(ctx, userID)
	if err != nil {
		return View{}, err
	}

	if err := c.FormData.Merge(section, patch); err != nil {
		if errors.Is(err, schema.ErrUnknownSection) {
			return View{}, errorz.NewFieldError("section", "unknown section %q", section)
		}
		return View{}, errorz.NewFieldError(string(section), "%v", err)
	}
	now := s.now().UTC()
	c.UpdatedAt = now
	c, err = s.challenges.Update(ctx, c)
	if err != nil {
		return View{}, fmt.Errorf("update challenge: %w", err)
	}

	st = wizard.Clamp(st, c.FormData)
	st.UpdatedAt = now
	if err := s.states.Set(ctx, userID, st); err != nil {
		return View{}, fmt.Errorf("save wizard: %w", err)
	}
	return render(c, st), nil
}

// Next advances past the current question. On the final review question it
// submits instead.
func (s *Service) Next(ctx context.Context, userID int64) (View, error) {
	c, st, err := s.load(ctx, userID)
	if err != nil {
		return View{}, err
	}

	next, done, err := wizard.Next(st, c.FormData)
	if err != nil {
		return View{}, err
	}
	if done {
		return s.submit(ctx, userID, c, next)
	}
	next.UpdatedAt = s.now().UTC()
	if err := s.states.Set(ctx, userID, next); err != nil {
		return View{}, fmt.Errorf("save wizard: %w", err)
	}
	return render(c, next), nil
}

func (s *Service) Back(ctx context.Context, userID int64) (View, error) {
	c, st, err := s.load(ctx, userID)
	if err != nil {
		return View{}, err
	}

	prev := wizard.Back(st, c.FormData)
	prev.UpdatedAt = s.now().UTC()
	if err := s.states.Set(ctx, userID, prev); err != nil {
		return View{}, fmt.Errorf("save wizard: %w", err)
	}
	return render(c, prev), nil
}

// Submit is only accepted on the review step.
func (s *Service) Submit(ctx context.Context, userID int64) (View, error) {
	c, st, err := s.load(ctx, userID)
	if err != nil {
		return View{}, err
	}
	if st.Cursor.Step != wizard.LastStep() {
		return View{}, errorz.NewFieldError("step", "submit is only available on the review step")
	}
	return s.submit(ctx, userID, c, st)
}

func (s *Service) Cancel(ctx context.Context, userID int64) error {
	return s.states.Delete(ctx, userID)
}

func (s *Service) submit(ctx context.Context, userID int64, c schema.Challenge, st schema.WizardState) (View, error) {
	if at, err := wizard.FirstInvalid(c.FormData); err != nil {
		// Send the admin back to the question that is still missing.
		st = wizard.Restore(st, at.Step, at.SubStep, c.FormData)
		st.UpdatedAt = s.now().UTC()
		if serr := s.states.Set(ctx, userID, st); serr != nil {
			return View{}, fmt.Errorf("save wizard: %w", serr)
		}
		return View{}, err
	}

	if c.Status == schema.ChallengeStatusDraft {
		c.Status = schema.ChallengeStatusSubmitted
	}
	c.UpdatedAt = s.now().UTC()
	c, err := s.challenges.Update(ctx, c)
	if err != nil {
		return View{}, fmt.Errorf("submit challenge: %w", err)
	}
	if err := s.states.Delete(ctx, userID); err != nil {
		return View{}, fmt.Errorf("close wizard: %w", err)
	}

	v := render(c, st)
	v.Submitted = true
	v.Progress = 100
	return v, nil
}

func (s *Service) load(ctx context.Context, userID int64) (schema.Challenge, schema.WizardState, error) {
	st, ok, err := s.states.Get(ctx, userID)
	if err != nil {
		return schema.Challenge{}, schema.WizardState{}, fmt.Errorf("load wizard: %w", err)
	}
	if !ok {
		return schema.Challenge{}, schema.WizardState{}, errorz.ErrWizardClosed
	}

	c, err := s.challenges.GetByID(ctx, st.ChallengeID)
	if err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			// The challenge was deleted under an open session.
			_ = s.states.Delete(ctx, userID)
		}
		return schema.Challenge{}, schema.WizardState{}, err
	}
	return c, wizard.Clamp(st, c.FormData), nil
}

func render(c schema.Challenge, st schema.WizardState) View {
	q, _ := wizard.QuestionAt(st.Cursor, c.FormData)
	v := View{
		Challenge:  c,
		Mode:       st.Mode,
		Cursor:     st.Cursor,
		Step:       wizard.StepAt(st.Cursor.Step),
		Question:   q,
		Answer:     q.Value(c.FormData),
		Totals:     wizard.Totals(c.FormData),
		Progress:   wizard.Progress(st.Cursor, c.FormData),
		CanAdvance: wizard.CanAdvance(st.Cursor, c.FormData),
		Location:   Location(c.ID, st.Cursor),
	}
	if v.Step.ID == wizard.StepReview {
		v.Review = wizard.Summarize(c.FormData)
	}
	return v
}

// Location is the query string that reopens the wizard at c.
func Location(challengeID string, c schema.Cursor) string {
	q := url.Values{}
	q.Set("id", challengeID)
	q.Set("step", strconv.Itoa(c.Step))
	q.Set("substep", strconv.Itoa(c.SubStep))
	return q.Encode()
}
