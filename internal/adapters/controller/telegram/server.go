package telegram

import (
	"ChallengeWizard/internal/domain/service/access"
	adminsvc "ChallengeWizard/internal/domain/service/admin"
	"ChallengeWizard/internal/domain/service/form"
	gamesvc "ChallengeWizard/internal/domain/service/game"
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const pageSize = 8

type Runner struct {
	bot *tgbot.Bot
	log *zap.Logger
}

type Controller struct {
	bot    *tgbot.Bot
	access *access.Service
	forms  *form.Service
	admin  *adminsvc.Service
	game   *gamesvc.Service
	log    *zap.Logger
}

func New(token string, accessSvc *access.Service, formSvc *form.Service, adminSvc *adminsvc.Service, gameSvc *gamesvc.Service, log *zap.Logger) (*Runner, error) {
	ctrl := &Controller{access: accessSvc, forms: formSvc, admin: adminSvc, game: gameSvc, log: log.Named("telegram")}

	b, err := tgbot.New(token, tgbot.WithDefaultHandler(ctrl.defaultHandler))
	if err != nil {
		return nil, err
	}
	ctrl.bot = b

	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypeExact, ctrl.start)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/menu", tgbot.MatchTypeExact, ctrl.menu)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/resume", tgbot.MatchTypeExact, ctrl.resume)

	return &Runner{bot: b, log: ctrl.log}, nil
}

// Start blocks until ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	r.log.Info("telegram bot started")
	r.bot.Start(ctx)
}

func (c *Controller) defaultHandler(ctx context.Context, b *tgbot.Bot, upd *models.Update) {
	switch {
	case upd.CallbackQuery != nil:
		c.handleCallback(ctx, upd)
	case upd.Message != nil && upd.Message.Text != "":
		c.handleText(ctx, upd)
	}
}
