package telegram

import (
	"ChallengeWizard/internal/domain/errorz"
	"ChallengeWizard/internal/domain/wizard"
	"context"
	"errors"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (c *Controller) handleText(ctx context.Context, upd *models.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if strings.HasPrefix(text, "/") {
		return
	}
	if !c.access.IsAdmin(userID) {
		_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: "Use /menu"})
		return
	}

	v, err := c.forms.Current(ctx, userID)
	if err != nil {
		if errors.Is(err, errorz.ErrWizardClosed) {
			_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: "Use /menu"})
			return
		}
		c.replyError(ctx, chatID, userID, err)
		return
	}

	q := v.Question
	if q.Kind == wizard.KindConfirm {
		_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: "Use the buttons below the message"})
		return
	}
	value, err := wizard.ParseAnswer(q, text)
	if err != nil {
		c.replyError(ctx, chatID, userID, err)
		return
	}
	patch, err := q.Patch(value)
	if err != nil {
		c.replyError(ctx, chatID, userID, err)
		return
	}
	v, err = c.forms.Answer(ctx, userID, wizard.StepAt(v.Cursor.Step).Section, patch)
	if err != nil {
		c.replyError(ctx, chatID, userID, err)
		return
	}
	c.sendWizard(ctx, chatID, v)
}
