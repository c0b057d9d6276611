package telegram

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

func (c *Controller) start(ctx context.Context, b *tgbot.Bot, upd *models.Update) {
	if upd.Message == nil || upd.Message.From == nil {
		return
	}
	userID := upd.Message.From.ID
	chatID := upd.Message.Chat.ID
	if err := c.forms.Cancel(ctx, userID); err != nil {
		c.log.Warn("cancel wizard", zapUser(userID), zap.Error(err))
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Welcome to Challenge Wizard",
		ReplyMarkup: c.mainMenu(userID),
	})
}

// menu leaves any open wizard alone so /resume can pick it up again.
func (c *Controller) menu(ctx context.Context, b *tgbot.Bot, upd *models.Update) {
	if upd.Message == nil || upd.Message.From == nil {
		return
	}
	c.sendMenu(ctx, upd.Message.Chat.ID, upd.Message.From.ID)
}

func (c *Controller) resume(ctx context.Context, b *tgbot.Bot, upd *models.Update) {
	if upd.Message == nil || upd.Message.From == nil {
		return
	}
	userID := upd.Message.From.ID
	chatID := upd.Message.Chat.ID
	if !c.access.IsAdmin(userID) {
		c.sendMenu(ctx, chatID, userID)
		return
	}

	v, err := c.forms.Current(ctx, userID)
	if err != nil {
		c.replyError(ctx, chatID, userID, err)
		return
	}
	c.sendWizard(ctx, chatID, v)
}
