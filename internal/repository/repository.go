package repository

import (
	"context"

	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/stats_repo/model"
)

// SessionRepository хранит баланс игровых сессий
type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetBalance(ctx context.Context, id string) (int, error)
	UpdateBalance(ctx context.Context, id string, amount int) error
	DeleteSession(ctx context.Context, id string) error
}

// StatsRepository накапливает статистику выплат процесса
type StatsRepository interface {
	RecordSpin(totalBet, winnings, winningLines int)
	State() statsModel.State
}
