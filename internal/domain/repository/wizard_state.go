package repository

import (
	"ChallengeWizard/internal/domain/schema"
	"context"
)

type WizardStateRepository interface {
	Get(ctx context.Context, userID int64) (schema.WizardState, bool, error)
	Set(ctx context.Context, userID int64, state schema.WizardState) error
	Delete(ctx context.Context, userID int64) error
}
