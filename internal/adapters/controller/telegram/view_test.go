package telegram

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	adminsvc "ChallengeWizard/internal/domain/service/admin"
	"ChallengeWizard/internal/domain/service/form"
	gamesvc "ChallengeWizard/internal/domain/service/game"
	"ChallengeWizard/internal/domain/wizard"
	"errors"
	"fmt"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callbacks(kb *models.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			out = append(out, b.CallbackData)
		}
	}
	return out
}

func viewAt(step, sub int, fd schema.FormData) form.View {
	c := schema.Cursor{Step: step, SubStep: sub}
	q, _ := wizard.QuestionAt(c, fd)
	return form.View{
		Cursor:     c,
		Step:       wizard.StepAt(step),
		Question:   q,
		Answer:     q.Value(fd),
		Totals:     wizard.Totals(fd),
		Progress:   wizard.Progress(c, fd),
		CanAdvance: wizard.CanAdvance(c, fd),
	}
}

func TestWizardKeyboardFirstQuestion(t *testing.T) {
	kb := wizardKeyboard(viewAt(0, 0, schema.FormData{}))
	data := callbacks(kb)

	assert.Equal(t, []string{"wz:o:0", "wz:o:1", "wz:o:2", "wz:o:3", "wz:cancel"}, data)
}

func TestWizardKeyboardMarksSelection(t *testing.T) {
	fd := schema.FormData{BasicInformation: &schema.BasicInformation{Category: schema.CategoryNutrition}}
	kb := wizardKeyboard(viewAt(0, 0, fd))

	assert.Equal(t, "✅ Nutrition", kb.InlineKeyboard[1][0].Text)
	assert.Contains(t, callbacks(kb), "wz:next")
}

func TestWizardKeyboardMultiselect(t *testing.T) {
	fd := schema.FormData{Rewards: &schema.Rewards{Types: []string{wizard.RewardBadge}}}
	kb := wizardKeyboard(viewAt(3, 0, fd))

	assert.Equal(t, "⬜ Points", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "✅ Badge", kb.InlineKeyboard[1][0].Text)
	assert.Equal(t, []string{"wz:t:0", "wz:t:1", "wz:back", "wz:next", "wz:cancel"}, callbacks(kb))
}

func TestWizardKeyboardReview(t *testing.T) {
	kb := wizardKeyboard(viewAt(wizard.LastStep(), 0, schema.FormData{}))
	assert.Equal(t, []string{"wz:back", "wz:submit", "wz:cancel"}, callbacks(kb))
}

func TestWizardText(t *testing.T) {
	fd := schema.FormData{
		BasicInformation: &schema.BasicInformation{Category: schema.CategoryActivity, Theme: schema.ThemeDistance},
		Objective:        &schema.Objective{Distance: &schema.DistanceGoal{Value: 5, Unit: "kilometers"}},
	}
	text := wizardText(viewAt(1, 0, fd))

	assert.Contains(t, text, "Challenge Objective · 1/1")
	assert.Contains(t, text, "Current answer: 5 kilometers")
}

func TestToggleValue(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, toggleValue([]string{"a"}, "b"))
	assert.Equal(t, []string{"b"}, toggleValue([]string{"a", "b"}, "a"))
	assert.Equal(t, []string{"x"}, toggleValue(nil, "x"))
}

func TestParseIntPart(t *testing.T) {
	v, ok := parseIntPart("adm:list:draft:3", 3)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = parseIntPart("adm:list", 3)
	assert.False(t, ok)
	_, ok = parseIntPart("wz:o:x", 2)
	assert.False(t, ok)
}

func TestShortText(t *testing.T) {
	assert.Equal(t, "short", shortText("  short ", 10))
	assert.Equal(t, "abcd…", shortText("abcdefgh", 5))
}

func TestDashboardKeyboard(t *testing.T) {
	items := make([]schema.Challenge, pageSize)
	for i := range items {
		items[i] = schema.Challenge{ID: fmt.Sprintf("c%d", i), Status: schema.ChallengeStatusDraft}
	}
	kb := dashboardKeyboard(repository.ListChallengesResult{Items: items, Total: pageSize + 1}, "draft", 1)

	assert.Equal(t, "• draft", kb.InlineKeyboard[0][1].Text)
	assert.Equal(t, "[draft] Untitled Challenge", kb.InlineKeyboard[1][0].Text)
	assert.Contains(t, callbacks(kb), "adm:list:draft:2")
	assert.NotContains(t, callbacks(kb), "adm:list:draft:0")
	assert.Contains(t, callbacks(kb), "adm:open:c0")
}

func TestPreviewKeyboard(t *testing.T) {
	draft := callbacks(previewKeyboard(adminsvc.Preview{ID: "x", Status: schema.ChallengeStatusDraft}))
	assert.Contains(t, draft, "adm:st:x:submitted")
	assert.Contains(t, draft, "adm:edit:x")

	listed := callbacks(previewKeyboard(adminsvc.Preview{ID: "x", Status: schema.ChallengeStatusListed}))
	assert.Equal(t, []string{"adm:delask:x", "adm:list:all:1"}, listed)
}

func TestPreviewText(t *testing.T) {
	p := adminsvc.BuildPreview(schema.Challenge{ID: "x", Status: schema.ChallengeStatusDraft})
	text := previewText(p)

	assert.Contains(t, text, "Untitled Challenge")
	assert.Contains(t, text, adminsvc.DefaultSummary)
	assert.Contains(t, text, "Status: draft")
}

func TestErrorText(t *testing.T) {
	text, ok := errorText(errorz.NewFieldError("steps", "must be greater than zero"))
	assert.True(t, ok)
	assert.Equal(t, "steps: must be greater than zero", text)

	_, ok = errorText(fmt.Errorf("load: %w", errorz.ErrNotFound))
	assert.True(t, ok)
	_, ok = errorText(gamesvc.ErrNoListedChallenges)
	assert.True(t, ok)
	_, ok = errorText(errors.New("boom"))
	assert.False(t, ok)
}
