package telegram

import (
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/schema"
	adminsvc "ChallengeWizard/internal/domain/service/admin"
	"ChallengeWizard/internal/domain/service/form"
	"ChallengeWizard/internal/domain/wizard"
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

var dashboardTabs = []string{
	schema.StatusFilterAll,
	string(schema.ChallengeStatusDraft),
	string(schema.ChallengeStatusSubmitted),
	string(schema.ChallengeStatusListed),
}

func (c *Controller) mainMenu(userID int64) *models.InlineKeyboardMarkup {
	rows := [][]models.InlineKeyboardButton{
		{{Text: "Browse challenges", CallbackData: "show:1"}},
	}
	if c.access.IsAdmin(userID) {
		rows = append(rows, []models.InlineKeyboardButton{{Text: "Dashboard", CallbackData: "adm:menu"}})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (c *Controller) sendMenu(ctx context.Context, chatID, userID int64) {
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Main menu",
		ReplyMarkup: c.mainMenu(userID),
	})
}

func (c *Controller) sendAdminMenu(ctx context.Context, chatID int64) {
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   "Challenge dashboard",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "➕ Create challenge", CallbackData: "adm:new"}},
			{{Text: "📋 Challenges", CallbackData: "adm:list:all:1"}},
			{{Text: "⬅ Back", CallbackData: "menu"}},
		}},
	})
}

func (c *Controller) sendDashboard(ctx context.Context, chatID, userID int64, status string, page int) {
	if page < 1 {
		page = 1
	}
	res, err := c.admin.List(ctx, status, page, pageSize)
	if err != nil {
		c.replyError(ctx, chatID, userID, err)
		return
	}
	if pages := totalPages(res.Total); page > pages {
		page = pages
		if res, err = c.admin.List(ctx, status, page, pageSize); err != nil {
			c.replyError(ctx, chatID, userID, err)
			return
		}
	}

	text := "Challenges: " + status
	if res.Total == 0 {
		text += "\n\nNothing here yet"
	}
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: dashboardKeyboard(res, status, page),
	})
}

func dashboardKeyboard(res repository.ListChallengesResult, status string, page int) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(res.Items)+3)

	tabs := make([]models.InlineKeyboardButton, 0, len(dashboardTabs))
	for _, tab := range dashboardTabs {
		label := tab
		if tab == status {
			label = "• " + tab
		}
		tabs = append(tabs, models.InlineKeyboardButton{Text: label, CallbackData: "adm:list:" + tab + ":1"})
	}
	rows = append(rows, tabs)

	for _, ch := range res.Items {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         fmt.Sprintf("[%s] %s", ch.Status, shortText(ch.Title(), 35)),
			CallbackData: "adm:open:" + ch.ID,
		}})
	}

	pages := totalPages(res.Total)
	nav := []models.InlineKeyboardButton{}
	if page > 1 {
		nav = append(nav, models.InlineKeyboardButton{Text: "⬅️ Prev", CallbackData: fmt.Sprintf("adm:list:%s:%d", status, page-1)})
	}
	nav = append(nav, models.InlineKeyboardButton{Text: fmt.Sprintf("Page %d/%d", page, pages), CallbackData: "noop"})
	if page < pages {
		nav = append(nav, models.InlineKeyboardButton{Text: "➡️ Next", CallbackData: fmt.Sprintf("adm:list:%s:%d", status, page+1)})
	}
	rows = append(rows, nav)
	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅ Back", CallbackData: "adm:menu"}})
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (c *Controller) sendPreview(ctx context.Context, chatID, userID int64, id string) {
	p, err := c.admin.Preview(ctx, id)
	if err != nil {
		c.replyError(ctx, chatID, userID, err)
		return
	}
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        previewText(p),
		ReplyMarkup: previewKeyboard(p),
	})
}

func previewKeyboard(p adminsvc.Preview) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	switch p.Status {
	case schema.ChallengeStatusDraft:
		rows = append(rows,
			[]models.InlineKeyboardButton{{Text: "✏️ Continue editing", CallbackData: "adm:edit:" + p.ID}},
			[]models.InlineKeyboardButton{{Text: "📤 Submit", CallbackData: "adm:st:" + p.ID + ":" + string(schema.ChallengeStatusSubmitted)}},
		)
	case schema.ChallengeStatusSubmitted:
		rows = append(rows,
			[]models.InlineKeyboardButton{{Text: "✏️ Edit", CallbackData: "adm:edit:" + p.ID}},
			[]models.InlineKeyboardButton{{Text: "✅ List", CallbackData: "adm:st:" + p.ID + ":" + string(schema.ChallengeStatusListed)}},
		)
	}
	rows = append(rows,
		[]models.InlineKeyboardButton{{Text: "🗑 Delete", CallbackData: "adm:delask:" + p.ID}},
		[]models.InlineKeyboardButton{{Text: "⬅ Back to list", CallbackData: "adm:list:all:1"}},
	)
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func previewText(p adminsvc.Preview) string {
	var b strings.Builder
	b.WriteString(p.Title)
	if p.Headline != "" {
		b.WriteString("\n" + p.Headline)
	}
	b.WriteString("\n\n" + p.Summary)
	if p.DateRange != "" {
		b.WriteString("\n\n📅 " + p.DateRange)
	}
	if p.Objective != "" {
		b.WriteString("\n🎯 " + p.Objective)
	}
	if len(p.Rewards) > 0 {
		b.WriteString("\n🏆 " + strings.Join(p.Rewards, ", "))
	}
	if len(p.Benefits) > 0 {
		b.WriteString("\n\nBenefits:")
		for _, s := range p.Benefits {
			b.WriteString("\n- " + s)
		}
	}
	if p.Status != "" {
		b.WriteString("\n\nStatus: " + string(p.Status))
	}
	return b.String()
}

func (c *Controller) sendShowcase(ctx context.Context, chatID, userID int64, page int) {
	if page < 1 {
		page = 1
	}
	res, err := c.game.Listed(ctx, page, pageSize)
	if err != nil {
		c.replyError(ctx, chatID, userID, err)
		return
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(res.Items)+2)
	for _, ch := range res.Items {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         shortText(ch.Title(), 40),
			CallbackData: "show:open:" + ch.ID,
		}})
	}
	if page < totalPages(res.Total) {
		rows = append(rows, []models.InlineKeyboardButton{{Text: "➡️ More", CallbackData: fmt.Sprintf("show:%d", page+1)}})
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅ Back", CallbackData: "menu"}})

	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Live challenges",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
}

func (c *Controller) sendShowcaseCard(ctx context.Context, chatID, userID int64, id string) {
	p, err := c.game.Challenge(ctx, id)
	if err != nil {
		c.replyError(ctx, chatID, userID, err)
		return
	}
	p.Status = ""
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   previewText(p),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "⬅ Back", CallbackData: "show:1"}},
		}},
	})
}

func (c *Controller) sendWizard(ctx context.Context, chatID int64, v form.View) {
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        wizardText(v),
		ReplyMarkup: wizardKeyboard(v),
	})
}

func wizardText(v form.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s · %d/%d · %d%%\n\n", v.Step.Label, v.Cursor.SubStep+1, v.Totals[v.Cursor.Step], v.Progress)
	b.WriteString(v.Question.Label)
	if v.Question.Subtitle != "" {
		b.WriteString("\n" + v.Question.Subtitle)
	}

	if v.Step.ID == wizard.StepReview {
		for _, s := range v.Review {
			b.WriteString("\n\n" + s.Label)
			for _, l := range s.Lines {
				b.WriteString("\n" + l.Label + ": " + l.Value)
			}
		}
		return b.String()
	}

	switch v.Question.Kind {
	case wizard.KindDistance:
		b.WriteString("\nReply like \"5 kilometers\"")
	case wizard.KindDateRange:
		b.WriteString("\nReply with two dates, e.g. 2026-04-01 2026-04-30")
	case wizard.KindText, wizard.KindImage, wizard.KindNumber:
		if v.Question.MaxLength > 0 {
			fmt.Fprintf(&b, "\nUp to %d characters", v.Question.MaxLength)
		}
	}
	if s := answerText(v.Answer); s != "" {
		b.WriteString("\n\nCurrent answer: " + s)
	}
	return b.String()
}

func wizardKeyboard(v form.View) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	q := v.Question

	switch q.Kind {
	case wizard.KindSelect:
		current, _ := v.Answer.(string)
		for i, o := range q.Options {
			label := o.Label
			if o.Value == current {
				label = "✅ " + label
			}
			rows = append(rows, []models.InlineKeyboardButton{{Text: label, CallbackData: "wz:o:" + strconv.Itoa(i)}})
		}
	case wizard.KindMultiSelect:
		current, _ := v.Answer.([]string)
		for i, o := range q.Options {
			label := "⬜ " + o.Label
			for _, x := range current {
				if x == o.Value {
					label = "✅ " + o.Label
					break
				}
			}
			rows = append(rows, []models.InlineKeyboardButton{{Text: label, CallbackData: "wz:t:" + strconv.Itoa(i)}})
		}
	}

	nav := []models.InlineKeyboardButton{}
	if v.Cursor.Step > 0 || v.Cursor.SubStep > 0 {
		nav = append(nav, models.InlineKeyboardButton{Text: "⬅ Back", CallbackData: "wz:back"})
	}
	switch {
	case v.Step.ID == wizard.StepReview:
		nav = append(nav, models.InlineKeyboardButton{Text: "📤 Submit", CallbackData: "wz:submit"})
	case v.CanAdvance:
		nav = append(nav, models.InlineKeyboardButton{Text: "Next ➡", CallbackData: "wz:next"})
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "❌ Cancel", CallbackData: "wz:cancel"}})
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func answerText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		if x == 0 {
			return ""
		}
		return strconv.Itoa(x)
	case []string:
		return strings.Join(x, ", ")
	case wizard.DateRange:
		return wizard.DateRangeText(x.Start, x.End)
	case schema.DistanceGoal:
		if x.Value == 0 {
			return ""
		}
		return strconv.FormatFloat(x.Value, 'f', -1, 64) + " " + x.Unit
	}
	return fmt.Sprint(v)
}
