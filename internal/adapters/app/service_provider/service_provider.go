package service_provider

import (
	"ChallengeWizard/internal/adapters/config"
	"ChallengeWizard/internal/adapters/controller/httpapi"
	tgcontroller "ChallengeWizard/internal/adapters/controller/telegram"
	"ChallengeWizard/internal/adapters/repository/filestore"
	"ChallengeWizard/internal/adapters/repository/memory"
	"ChallengeWizard/internal/adapters/repository/postgres"
	"ChallengeWizard/internal/adapters/repository/redisstate"
	"ChallengeWizard/internal/domain/repository"
	"ChallengeWizard/internal/domain/service/access"
	"ChallengeWizard/internal/domain/service/admin"
	"ChallengeWizard/internal/domain/service/form"
	"ChallengeWizard/internal/domain/service/game"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	config config.Config
	log    *zap.Logger

	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	challengeRepo repository.ChallengeRepository
	stateRepo     repository.WizardStateRepository

	accessService *access.Service
	adminService  *admin.Service
	gameService   *game.Service
	formService   *form.Service

	httpServer *httpapi.Server
	botRunner  *tgcontroller.Runner
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*ServiceProvider, error) {
	sp := &ServiceProvider{config: cfg, log: log}
	if err := sp.init(ctx); err != nil {
		sp.Close()
		return nil, err
	}
	return sp, nil
}

func (sp *ServiceProvider) Config() config.Config {
	return sp.config
}

func (sp *ServiceProvider) HTTPServer() *httpapi.Server {
	return sp.httpServer
}

// BotRunner is nil when no bot token is configured.
func (sp *ServiceProvider) BotRunner() *tgcontroller.Runner {
	return sp.botRunner
}

func (sp *ServiceProvider) Close() {
	if sp.pgPool != nil {
		sp.pgPool.Close()
	}
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			sp.log.Warn("close redis", zap.Error(err))
		}
	}
}

func (sp *ServiceProvider) init(ctx context.Context) error {
	cfg := sp.config

	challengeRepo, err := sp.initChallengeRepo(ctx)
	if err != nil {
		return err
	}
	sp.challengeRepo = challengeRepo

	stateRepo, err := sp.initStateRepo(ctx)
	if err != nil {
		return err
	}
	sp.stateRepo = stateRepo

	sp.accessService = access.New(cfg.AdminIDs)
	sp.adminService = admin.New(sp.challengeRepo)
	sp.gameService = game.New(sp.challengeRepo)
	sp.formService = form.New(sp.challengeRepo, sp.stateRepo)

	sp.httpServer = httpapi.New(sp.accessService, sp.formService, sp.adminService, sp.gameService, sp.log)

	if cfg.BotToken != "" {
		botRunner, err := tgcontroller.New(cfg.BotToken, sp.accessService, sp.formService, sp.adminService, sp.gameService, sp.log)
		if err != nil {
			return fmt.Errorf("create telegram controller: %w", err)
		}
		sp.botRunner = botRunner
	}

	sp.log.Info("service provider initialized",
		zap.String("storage", cfg.StorageBackend),
		zap.String("state", cfg.StateBackend),
		zap.Bool("telegram", sp.botRunner != nil),
	)
	return nil
}

func (sp *ServiceProvider) initChallengeRepo(ctx context.Context) (repository.ChallengeRepository, error) {
	switch sp.config.StorageBackend {
	case config.StoragePostgres:
		pool, err := sp.postgresPool(ctx)
		if err != nil {
			return nil, err
		}
		repo := postgres.NewChallengeRepo(pool)
		if err := repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return repo, nil
	default:
		repo, err := filestore.NewChallengeRepo(sp.config.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		sp.log.Debug("file store opened", zap.String("path", repo.Path()))
		return repo, nil
	}
}

func (sp *ServiceProvider) initStateRepo(ctx context.Context) (repository.WizardStateRepository, error) {
	switch sp.config.StateBackend {
	case config.StateRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     sp.config.RedisAddr,
			Password: sp.config.RedisPassword,
			DB:       sp.config.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		sp.redisClient = client
		return redisstate.NewWizardStateRepo(client, sp.config.WizardTTL), nil
	default:
		return memory.NewWizardStateRepo(sp.config.WizardTTL), nil
	}
}

func (sp *ServiceProvider) postgresPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, sp.config.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	sp.pgPool = pool
	return pool, nil
}

// Migrate prepares the configured challenge store without starting anything.
func Migrate(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	sp := &ServiceProvider{config: cfg, log: log}
	defer sp.Close()

	if _, err := sp.initChallengeRepo(ctx); err != nil {
		return err
	}
	log.Info("challenge store ready", zap.String("storage", cfg.StorageBackend))
	return nil
}
