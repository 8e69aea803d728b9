package slot

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"slot_backend/internal/engine"
	"slot_backend/internal/metrics"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
)

type serv struct {
	machine   model.MachineConfig
	engine    *engine.Engine
	repo      repository.SessionRepository
	statsRepo repository.StatsRepository
	metrics   *metrics.Metrics
	txManager trm.Manager
	logger    *zap.Logger

	tokenSecret []byte
	tokenTTL    time.Duration
}

type Deps struct {
	Machine     model.MachineConfig
	Engine      *engine.Engine
	Repo        repository.SessionRepository
	StatsRepo   repository.StatsRepository
	Metrics     *metrics.Metrics
	TxManager   trm.Manager
	Logger      *zap.Logger
	TokenSecret []byte
	TokenTTL    time.Duration
}

// NewSlotService Создать сервис автомата. Конфигурация машины должна быть уже проверена
func NewSlotService(deps Deps) service.SlotService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &serv{
		machine:     deps.Machine,
		engine:      deps.Engine,
		repo:        deps.Repo,
		statsRepo:   deps.StatsRepo,
		metrics:     deps.Metrics,
		txManager:   deps.TxManager,
		logger:      logger,
		tokenSecret: deps.TokenSecret,
		tokenTTL:    deps.TokenTTL,
	}
}

func (s *serv) Machine() model.MachineConfig {
	return s.machine
}

func sessionID(ctx context.Context) (string, error) {
	id, ok := middleware.SessionIDFromContext(ctx)
	if !ok {
		return "", model.ErrSessionNotFound
	}
	return id, nil
}
