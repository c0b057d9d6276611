package wizard

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/schema"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(t *testing.T, fd *schema.FormData, step int, q Question, text string) {
	t.Helper()
	v, err := ParseAnswer(q, text)
	require.NoError(t, err)
	patch, err := q.Patch(v)
	require.NoError(t, err)
	require.NoError(t, fd.Merge(StepAt(step).Section, patch))
}

func TestPatchNestsUnderPath(t *testing.T) {
	q := ObjectiveQuestions(schema.ThemeSteps)[0]
	patch, err := q.Patch(10000)
	require.NoError(t, err)
	assert.JSONEq(t, `{"stepCount":{"steps":10000}}`, string(patch))

	period := DetailsQuestions()[6]
	patch, err = period.Patch(DateRange{Start: "2026-04-01", End: "2026-04-30"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"challengeStartDate":"2026-04-01","challengeEndDate":"2026-04-30"}`, string(patch))

	_, err = period.Patch("2026-04-01")
	assert.Error(t, err)

	_, err = reviewQuestions()[0].Patch(true)
	assert.Error(t, err)
}

func TestParseAnswer(t *testing.T) {
	basic := BasicInformationQuestions(schema.CategoryActivity)

	v, err := ParseAnswer(basic[1], "team challenge")
	require.NoError(t, err)
	assert.Equal(t, schema.ThemeTeamChallenge, v)

	_, err = ParseAnswer(basic[1], "Bingo")
	var fe *errorz.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "theme", fe.Field)

	v, err = ParseAnswer(distanceQuestion(), "5.5 Miles")
	require.NoError(t, err)
	assert.Equal(t, schema.DistanceGoal{Value: 5.5, Unit: "miles"}, v)

	_, err = ParseAnswer(distanceQuestion(), "-1 miles")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "distance.value", fe.Field)

	_, err = ParseAnswer(ObjectiveQuestions(schema.ThemeBingo)[0], "0")
	assert.ErrorIs(t, err, errorz.ErrValidation)

	v, err = ParseAnswer(RewardsQuestions(nil)[0], "Badge, points, badge")
	require.NoError(t, err)
	assert.Equal(t, []string{RewardBadge, RewardPoints}, v)

	v, err = ParseAnswer(DetailsQuestions()[5], "2026-03-01 - 2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, DateRange{Start: "2026-03-01", End: "2026-03-10"}, v)

	_, err = ParseAnswer(DetailsQuestions()[5], "March")
	assert.ErrorIs(t, err, errorz.ErrValidation)

	_, err = ParseAnswer(DetailsQuestions()[1], "This headline runs well past the fifty five characters allowed")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "headline", fe.Field)
}

func TestAnswersFillTheForm(t *testing.T) {
	var fd schema.FormData
	basic := BasicInformationQuestions("")
	answer(t, &fd, 0, basic[0], "Activity")
	answer(t, &fd, 0, BasicInformationQuestions(fd.Category())[1], "Steps")
	answer(t, &fd, 0, basic[2], "High")

	for i, text := range []string{"8000", "daily"} {
		answer(t, &fd, 1, ObjectiveQuestions(fd.Theme())[i], text)
	}
	assert.Equal(t, schema.StepsGoal{Steps: 8000, TrackingPeriod: "daily"}, stepsGoal(fd))

	detailAnswers := []string{"Step Up", "Walk more", "Eight thousand a day", "/img/a.png", "/img/b.png",
		"2026-03-01 2026-03-10", "2026-03-05 2026-04-05"}
	for i, text := range detailAnswers {
		answer(t, &fd, 2, DetailsQuestions()[i], text)
	}

	answer(t, &fd, 3, RewardsQuestions(nil)[0], "points")
	answer(t, &fd, 3, RewardsQuestions(fd.RewardTypes())[1], "250")
	answer(t, &fd, 4, FeaturesQuestions(nil)[0], "Coupons")

	_, err := FirstInvalid(fd)
	assert.NoError(t, err)
}
