package service

import (
	"context"

	"slot_backend/internal/model"
)

// SlotService - игра на автомате в рамках сессии.
// ID сессии берётся из контекста запроса (middleware.SessionIDFromContext)
type SlotService interface {
	Deposit(ctx context.Context, amount int) (*model.DepositResult, error)
	Spin(ctx context.Context, bet model.Bet) (*model.SpinResult, error)
	Balance(ctx context.Context) (int, error)
	CashOut(ctx context.Context) (int, error)
	Machine() model.MachineConfig
	Stats() model.Stats
}
