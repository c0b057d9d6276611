package telegram

import (
	"ChallengeWizard/internal/domain/schema"
	"ChallengeWizard/internal/domain/service/form"
	"ChallengeWizard/internal/domain/wizard"
	"context"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (c *Controller) handleCallback(ctx context.Context, upd *models.Update) {
	cb := upd.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	userID := cb.From.ID
	chatID := cb.Message.Message.Chat.ID
	data := cb.Data
	c.answerCallback(ctx, cb.ID, "")

	switch {
	case data == "noop":
	case data == "menu":
		c.sendMenu(ctx, chatID, userID)
	case strings.HasPrefix(data, "show:open:"):
		c.sendShowcaseCard(ctx, chatID, userID, strings.TrimPrefix(data, "show:open:"))
	case strings.HasPrefix(data, "show:"):
		page, ok := parseIntPart(data, 1)
		if !ok {
			return
		}
		c.sendShowcase(ctx, chatID, userID, page)
	case strings.HasPrefix(data, "adm:"):
		if err := c.access.Require(userID); err != nil {
			c.replyError(ctx, chatID, userID, err)
			return
		}
		c.handleAdminCallback(ctx, chatID, userID, data)
	case strings.HasPrefix(data, "wz:"):
		if !c.access.IsAdmin(userID) {
			return
		}
		c.handleWizardCallback(ctx, chatID, userID, data)
	}
}

func (c *Controller) handleAdminCallback(ctx context.Context, chatID, userID int64, data string) {
	parts := strings.Split(data, ":")
	switch parts[1] {
	case "menu":
		c.sendAdminMenu(ctx, chatID)
	case "new":
		v, err := c.forms.StartCreate(ctx, userID)
		if err != nil {
			c.replyError(ctx, chatID, userID, err)
			return
		}
		c.sendWizard(ctx, chatID, v)
	case "list":
		if len(parts) < 4 {
			return
		}
		page, ok := parseIntPart(data, 3)
		if !ok {
			return
		}
		c.sendDashboard(ctx, chatID, userID, parts[2], page)
	case "open":
		if len(parts) < 3 {
			return
		}
		c.sendPreview(ctx, chatID, userID, parts[2])
	case "edit":
		if len(parts) < 3 {
			return
		}
		v, err := c.forms.Resume(ctx, userID, parts[2], nil)
		if err != nil {
			c.replyError(ctx, chatID, userID, err)
			return
		}
		c.sendWizard(ctx, chatID, v)
	case "st":
		if len(parts) < 4 {
			return
		}
		ch, err := c.admin.UpdateStatus(ctx, parts[2], schema.ChallengeStatus(parts[3]))
		if err != nil {
			c.replyError(ctx, chatID, userID, err)
			return
		}
		_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: "Status: " + string(ch.Status)})
		c.sendPreview(ctx, chatID, userID, ch.ID)
	case "delask":
		if len(parts) < 3 {
			return
		}
		id := parts[2]
		_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text:   "Delete this challenge? This cannot be undone.",
			ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
				{{Text: "Yes, delete", CallbackData: "adm:del:" + id}},
				{{Text: "No, keep it", CallbackData: "adm:open:" + id}},
			}},
		})
	case "del":
		if len(parts) < 3 {
			return
		}
		if err := c.admin.Delete(ctx, parts[2]); err != nil {
			c.replyError(ctx, chatID, userID, err)
			return
		}
		_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: "Deleted"})
		c.sendDashboard(ctx, chatID, userID, schema.StatusFilterAll, 1)
	}
}

func (c *Controller) handleWizardCallback(ctx context.Context, chatID, userID int64, data string) {
	var (
		v   form.View
		err error
	)
	switch {
	case data == "wz:next":
		v, err = c.forms.Next(ctx, userID)
	case data == "wz:back":
		v, err = c.forms.Back(ctx, userID)
	case data == "wz:submit":
		v, err = c.forms.Submit(ctx, userID)
	case data == "wz:cancel":
		if err := c.forms.Cancel(ctx, userID); err != nil {
			c.replyError(ctx, chatID, userID, err)
			return
		}
		c.sendAdminMenu(ctx, chatID)
		return
	case strings.HasPrefix(data, "wz:o:"), strings.HasPrefix(data, "wz:t:"):
		idx, ok := parseIntPart(data, 2)
		if !ok {
			return
		}
		v, err = c.chooseOption(ctx, userID, idx, strings.HasPrefix(data, "wz:t:"))
	default:
		return
	}
	if err != nil {
		c.replyError(ctx, chatID, userID, err)
		return
	}

	if v.Submitted {
		_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text:   "Challenge submitted for review: " + v.Challenge.Title(),
		})
		c.sendAdminMenu(ctx, chatID)
		return
	}
	c.sendWizard(ctx, chatID, v)
}

// chooseOption answers a select question with option idx, or flips idx in a
// multiselect answer.
func (c *Controller) chooseOption(ctx context.Context, userID int64, idx int, toggle bool) (form.View, error) {
	v, err := c.forms.Current(ctx, userID)
	if err != nil {
		return form.View{}, err
	}
	q := v.Question
	if idx < 0 || idx >= len(q.Options) {
		return v, nil
	}

	var value any = q.Options[idx].Value
	if toggle {
		current, _ := v.Answer.([]string)
		value = toggleValue(current, q.Options[idx].Value)
	}
	patch, err := q.Patch(value)
	if err != nil {
		return form.View{}, err
	}
	return c.forms.Answer(ctx, userID, wizard.StepAt(v.Cursor.Step).Section, patch)
}
