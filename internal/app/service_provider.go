package app

import (
	"context"
	"fmt"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	slotAPI "slot_backend/internal/api/slot"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/engine"
	"slot_backend/internal/logging"
	"slot_backend/internal/metrics"
	"slot_backend/internal/middleware"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/memory_session_repo"
	"slot_backend/internal/repository/redis_session_repo"
	"slot_backend/internal/repository/session_repo"
	"slot_backend/internal/repository/stats_repo"
	"slot_backend/internal/repository/txlock"
	"slot_backend/internal/service"
	"slot_backend/internal/service/slot"
)

type ServiceProvider struct {
	machinePath string

	// Logging
	logCfg config.LogConfig
	logger *zap.Logger

	// Storage
	storageCfg  config.StorageConfig
	txManager   trm.Manager
	pgConfig    config.PGConfig
	dbClient    *pgxpool.Pool
	redisCfg    config.RedisConfig
	redisClient *redis.Client

	// Slot bits
	machineCfg  config.MachineConfig
	sessionCfg  config.SessionConfig
	engine      *engine.Engine
	sessionRepo repository.SessionRepository
	statsRepo   repository.StatsRepository
	metrics     *metrics.Metrics
	slotServ    service.SlotService
	slotHand    *slotAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(machinePath string) *ServiceProvider {
	return &ServiceProvider{machinePath: machinePath}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		logger, err := logging.New(sp.LogCfg().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = logger
	}
	return sp.logger
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		cfg := sp.RedisCfg()
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = client
	}
	return sp.redisClient
}

// TXManager - транзакции pgx для postgres, мьютекс процесса для остальных хранилищ
func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.StorageCfg().Driver() != env.StoragePostgres {
			sp.txManager = txlock.New()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) SessionRepository(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		switch driver := sp.StorageCfg().Driver(); driver {
		case env.StorageMemory:
			sp.sessionRepo = memory_session_repo.NewSessionRepository(
				memory_session_repo.WithTTL(sp.SessionCfg().TokenDuration()),
				memory_session_repo.WithOnExpire(sp.Metrics().SessionsExpired),
			)
		case env.StorageRedis:
			sp.sessionRepo = redis_session_repo.NewSessionRepository(
				sp.RedisClient(ctx),
				redis_session_repo.WithTTL(sp.RedisCfg().SessionTTL()),
			)
		case env.StoragePostgres:
			sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
		default:
			panic(fmt.Sprintf("unknown storage driver %q", driver))
		}
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(0)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) MachineCfg() config.MachineConfig {
	if sp.machineCfg == nil {
		cfg, err := env.NewMachineConfigFromYAML(sp.machinePath)
		if err != nil {
			panic("failed to get machine config: " + err.Error())
		}
		sp.machineCfg = cfg
	}
	return sp.machineCfg
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) Engine() *engine.Engine {
	if sp.engine == nil {
		sp.engine = engine.New()
	}
	return sp.engine
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New()
	}
	return sp.metrics
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(slot.Deps{
			Machine:     sp.MachineCfg().Machine(),
			Engine:      sp.Engine(),
			Repo:        sp.SessionRepository(ctx),
			StatsRepo:   sp.StatsRepository(),
			Metrics:     sp.Metrics(),
			TxManager:   sp.TXManager(ctx),
			Logger:      sp.Logger().Named("slot"),
			TokenSecret: sp.SessionCfg().TokenSecretKey(),
			TokenTTL:    sp.SessionCfg().TokenDuration(),
		})
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv:   sp.SlotService(ctx),
			Logger: sp.Logger().Named("api"),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Slot endpoints
		slotHandler := sp.SlotHandler(ctx)
		r.Route("/slot", func(rr chi.Router) {
			rr.Post("/deposit", slotHandler.Deposit)
			rr.Get("/machine", slotHandler.Machine)
			rr.Get("/stats", slotHandler.Stats)

			rr.Group(func(auth chi.Router) {
				auth.Use(middleware.Session(sp.SessionCfg().TokenSecretKey()))
				auth.Post("/spin", slotHandler.Spin)
				auth.Get("/balance", slotHandler.Balance)
				auth.Post("/cash-out", slotHandler.CashOut)
			})
		})

		r.Method(http.MethodGet, "/metrics", sp.Metrics().Handler())

		sp.router = r
	}

	return sp.router
}

// Close освобождает клиентов хранилищ
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			sp.Logger().Warn("close redis client", zap.Error(err))
		}
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
