package slot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slot_backend/internal/game"
	"slot_backend/internal/model"
	"slot_backend/pkg/token"
)

// Deposit открывает сессию с балансом amount и выдаёт её токен
func (s *serv) Deposit(ctx context.Context, amount int) (*model.DepositResult, error) {
	if err := game.ValidateDeposit(amount); err != nil {
		return nil, err
	}

	session := &model.Session{
		ID:        uuid.NewString(),
		Balance:   amount,
		CreatedAt: time.Now().UTC(),
	}

	tokenStr, err := token.GenerateSessionToken(session.ID, s.tokenSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		s.logger.Error("create session", zap.Error(err))
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.metrics.SessionOpened()

	s.logger.Info("session opened",
		zap.String("session_id", session.ID),
		zap.Int("balance", session.Balance),
	)

	return &model.DepositResult{
		SessionID: session.ID,
		Token:     tokenStr,
		Balance:   session.Balance,
	}, nil
}

func (s *serv) Balance(ctx context.Context) (int, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return 0, err
	}
	return s.repo.GetBalance(ctx, id)
}

// CashOut закрывает сессию и возвращает итоговый баланс
func (s *serv) CashOut(ctx context.Context) (int, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return 0, err
	}

	var balance int
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err = s.repo.GetBalance(txCtx, id)
		if err != nil {
			return err
		}
		return s.repo.DeleteSession(txCtx, id)
	})
	if err != nil {
		return 0, err
	}
	s.metrics.SessionClosed()

	s.logger.Info("session cashed out",
		zap.String("session_id", id),
		zap.Int("balance", balance),
	)
	return balance, nil
}
