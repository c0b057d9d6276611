package telegram

import (
	"ChallengeWizard/internal/domain/errorz"
	gamesvc "ChallengeWizard/internal/domain/service/game"
	"context"
	"errors"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"go.uber.org/zap"
)

func shortText(s string, max int) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

func parseIntPart(data string, idx int) (int, bool) {
	parts := strings.Split(data, ":")
	if len(parts) <= idx {
		return 0, false
	}
	v, err := strconv.Atoi(parts[idx])
	if err != nil {
		return 0, false
	}
	return v, true
}

func toggleValue(values []string, v string) []string {
	out := make([]string, 0, len(values)+1)
	found := false
	for _, x := range values {
		if x == v {
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

func totalPages(total int) int {
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		return 1
	}
	return pages
}

// errorText is the chat rendering of a service error. ok is false for
// errors the user cannot act on.
func errorText(err error) (string, bool) {
	var fieldErr *errorz.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return fieldErr.Field + ": " + fieldErr.Message, true
	case errors.Is(err, errorz.ErrNotFound):
		return "Challenge not found. It may have been deleted.", true
	case errors.Is(err, errorz.ErrWizardClosed):
		return "This wizard session has expired. Start again from /menu.", true
	case errors.Is(err, errorz.ErrInvalidTransition):
		return "That status change is not allowed.", true
	case errors.Is(err, errorz.ErrForbidden):
		return "Admins only", true
	case errors.Is(err, gamesvc.ErrNoListedChallenges):
		return "No challenges are live yet.", true
	}
	return "Something went wrong, try again later.", false
}

func (c *Controller) replyError(ctx context.Context, chatID, userID int64, err error) {
	text, known := errorText(err)
	if !known {
		c.log.Error("telegram update failed", zapUser(userID), zap.Error(err))
	}
	_, _ = c.bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: chatID, Text: text, ReplyMarkup: c.mainMenu(userID)})
}

func (c *Controller) answerCallback(ctx context.Context, callbackID, text string) {
	_, _ = c.bot.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

func zapUser(id int64) zap.Field { return zap.Int64("user_id", id) }
