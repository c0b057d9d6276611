package form_test

import (
	"ChallengeWizard/internal/adapters/repository/memory"
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/schema"
	"ChallengeWizard/internal/domain/service/form"
	"ChallengeWizard/internal/domain/wizard"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const admin int64 = 1001

var answers = []struct {
	section schema.Section
	patch   string
}{
	{schema.SectionBasicInformation, `{"category":"Activity","theme":"Steps","importance":"medium"}`},
	{schema.SectionObjective, `{"stepCount":{"steps":10000,"trackingPeriod":"daily"}}`},
	{schema.SectionDetails, `{"name":"10k a day","headline":"Walk more","summary":"Hit ten thousand steps daily.",
		"image":"/img/a.png","heroImage":"/img/b.png",
		"enrollmentStartDate":"2026-04-01","enrollmentEndDate":"2026-04-10",
		"challengeStartDate":"2026-04-05","challengeEndDate":"2026-05-05"}`},
	{schema.SectionRewards, `{"types":["points"],"points":100}`},
	{schema.SectionFeatures, `{"nextBestActions":["Coupons"]}`},
}

type fixture struct {
	svc        *form.Service
	challenges *memory.ChallengeRepo
	states     *memory.WizardStateRepo
	now        time.Time
}

func newFixture() *fixture {
	f := &fixture{
		challenges: memory.NewChallengeRepo(),
		states:     memory.NewWizardStateRepo(time.Hour),
		now:        time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = form.New(f.challenges, f.states).WithClock(func() time.Time { return f.now })
	return f
}

func answerAll(t *testing.T, f *fixture) {
	t.Helper()
	for _, a := range answers {
		_, err := f.svc.Answer(context.Background(), admin, a.section, json.RawMessage(a.patch))
		require.NoError(t, err, a.section)
	}
}

func TestStartCreate(t *testing.T) {
	f := newFixture()
	v, err := f.svc.StartCreate(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, schema.Cursor{}, v.Cursor)
	assert.Equal(t, schema.WizardModeCreate, v.Mode)
	assert.Equal(t, "category", v.Question.Name)
	assert.Equal(t, 0, v.Progress)
	assert.False(t, v.CanAdvance)
	assert.Equal(t, "id="+v.Challenge.ID+"&step=0&substep=0", v.Location)

	stored, err := f.challenges.GetByID(context.Background(), v.Challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.ChallengeStatusDraft, stored.Status)
	assert.Equal(t, admin, stored.AuthorID)
}

func TestNextIsBlockedUntilAnswered(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.StartCreate(ctx, admin)
	require.NoError(t, err)

	_, err = f.svc.Next(ctx, admin)
	assert.ErrorIs(t, err, errorz.ErrValidation)

	v, err := f.svc.Answer(ctx, admin, schema.SectionBasicInformation, json.RawMessage(`{"category":"Activity"}`))
	require.NoError(t, err)
	assert.True(t, v.CanAdvance)

	v, err = f.svc.Next(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, schema.Cursor{Step: 0, SubStep: 1}, v.Cursor)
	assert.Equal(t, "theme", v.Question.Name)
	assert.Len(t, v.Question.Options, 5)
}

func TestWalkToSubmit(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	started, err := f.svc.StartCreate(ctx, admin)
	require.NoError(t, err)
	answerAll(t, f)

	var v form.View
	for i := 0; i < 20; i++ {
		f.now = f.now.Add(time.Minute)
		v, err = f.svc.Next(ctx, admin)
		require.NoError(t, err)
		if v.Submitted {
			break
		}
		if v.Step.ID == wizard.StepReview {
			assert.NotEmpty(t, v.Review)
		}
	}
	require.True(t, v.Submitted)
	assert.Equal(t, 100, v.Progress)
	assert.Equal(t, schema.ChallengeStatusSubmitted, v.Challenge.Status)

	stored, err := f.challenges.GetByID(ctx, started.Challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.ChallengeStatusSubmitted, stored.Status)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))

	_, err = f.svc.Current(ctx, admin)
	assert.ErrorIs(t, err, errorz.ErrWizardClosed)
}

func TestAnswerClampsShrinkingSection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	started, err := f.svc.StartCreate(ctx, admin)
	require.NoError(t, err)
	answerAll(t, f)

	_, err = f.svc.Answer(ctx, admin, schema.SectionRewards, json.RawMessage(`{"types":["points","badge"],"badgeId":"badge2"}`))
	require.NoError(t, err)

	v, err := f.svc.Resume(ctx, admin, started.Challenge.ID, &schema.Cursor{Step: 3, SubStep: 2})
	require.NoError(t, err)
	require.Equal(t, "badgeId", v.Question.Name)
	assert.Equal(t, "badge2", v.Answer)

	v, err = f.svc.Answer(ctx, admin, schema.SectionRewards, json.RawMessage(`{"types":["points"]}`))
	require.NoError(t, err)
	assert.Equal(t, schema.Cursor{Step: 3, SubStep: 0}, v.Cursor)
	assert.Equal(t, 100, v.Challenge.FormData.Rewards.Points)
	assert.Equal(t, 2, v.Totals[3])
}

func TestResumeFromLocation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	started, err := f.svc.StartCreate(ctx, admin)
	require.NoError(t, err)
	answerAll(t, f)

	v, err := f.svc.Resume(ctx, admin, started.Challenge.ID, &schema.Cursor{Step: 2, SubStep: 3})
	require.NoError(t, err)
	assert.Equal(t, "image", v.Question.Name)
	assert.Equal(t, "id="+started.Challenge.ID+"&step=2&substep=3", v.Location)

	v, err = f.svc.Back(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, schema.Cursor{Step: 2, SubStep: 2}, v.Cursor)

	// Without a position the open session keeps its cursor.
	v, err = f.svc.Resume(ctx, admin, started.Challenge.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, schema.Cursor{Step: 2, SubStep: 2}, v.Cursor)

	// Stepping back out of details lands on the last objective question.
	v, err = f.svc.Resume(ctx, admin, started.Challenge.ID, &schema.Cursor{Step: 2, SubStep: 0})
	require.NoError(t, err)
	v, err = f.svc.Back(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, schema.Cursor{Step: 1, SubStep: 1}, v.Cursor)
}

func TestResumeUnknownChallenge(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Resume(context.Background(), admin, "nope", nil)
	assert.ErrorIs(t, err, errorz.ErrNotFound)
}

func TestDeletedChallengeClosesSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	started, err := f.svc.StartCreate(ctx, admin)
	require.NoError(t, err)

	require.NoError(t, f.challenges.Delete(ctx, started.Challenge.ID))

	_, err = f.svc.Current(ctx, admin)
	assert.ErrorIs(t, err, errorz.ErrNotFound)
	_, err = f.svc.Current(ctx, admin)
	assert.ErrorIs(t, err, errorz.ErrWizardClosed)
}

func TestSubmitOutsideReview(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.StartCreate(ctx, admin)
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, admin)
	assert.ErrorIs(t, err, errorz.ErrValidation)
}

func TestSubmitIncompleteSendsBack(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	started, err := f.svc.StartCreate(ctx, admin)
	require.NoError(t, err)
	answerAll(t, f)
	_, err = f.svc.Answer(ctx, admin, schema.SectionDetails, json.RawMessage(`{"headline":""}`))
	require.NoError(t, err)

	_, err = f.svc.Resume(ctx, admin, started.Challenge.ID, &schema.Cursor{Step: wizard.LastStep()})
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, admin)
	require.ErrorIs(t, err, errorz.ErrValidation)

	v, err := f.svc.Current(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, schema.Cursor{Step: 2, SubStep: 1}, v.Cursor)
}

func TestAnswerRejectsUnknownFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.StartCreate(ctx, admin)
	require.NoError(t, err)

	_, err = f.svc.Answer(ctx, admin, schema.SectionDetails, json.RawMessage(`{"title":"x"}`))
	assert.ErrorIs(t, err, errorz.ErrValidation)
	_, err = f.svc.Answer(ctx, admin, "timeline", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, errorz.ErrValidation)
}

func TestCancel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.StartCreate(ctx, admin)
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(ctx, admin))
	_, err = f.svc.Next(ctx, admin)
	assert.ErrorIs(t, err, errorz.ErrWizardClosed)
}
