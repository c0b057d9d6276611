package app

import (
	"ChallengeWizard/internal/adapters/app/service_provider"
	"context"
	"fmt"
)

func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initServiceProvider,
	}
	for _, f := range inits {
		if err := f(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) initServiceProvider(ctx context.Context) error {
	sp, err := service_provider.New(ctx, a.config, a.log)
	if err != nil {
		return fmt.Errorf("create service provider: %w", err)
	}
	a.ServiceProvider = sp
	return nil
}
