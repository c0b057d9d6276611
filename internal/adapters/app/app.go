package app

import (
	"ChallengeWizard/internal/adapters/app/service_provider"
	"ChallengeWizard/internal/adapters/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *service_provider.ServiceProvider

	config config.Config
	log    *zap.Logger
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	a := &App{config: cfg, log: log}
	if err := a.initDeps(ctx); err != nil {
		return nil, fmt.Errorf("init deps: %w", err)
	}
	return a, nil
}

// Start serves HTTP, and the Telegram bot when one is configured, until ctx
// is cancelled.
func (a *App) Start(ctx context.Context) error {
	defer a.ServiceProvider.Close()

	srv := &http.Server{
		Addr:              a.config.HTTPAddr,
		Handler:           a.ServiceProvider.HTTPServer().Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if bot := a.ServiceProvider.BotRunner(); bot != nil {
		g.Go(func() error {
			bot.Start(gctx)
			return nil
		})
	}

	err := g.Wait()
	a.log.Info("stopped")
	return err
}
