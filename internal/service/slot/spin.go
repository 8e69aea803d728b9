package slot

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"slot_backend/internal/game"
	"slot_backend/internal/model"
)

// Spin играет раунд на балансе сессии.
// Чтение и запись баланса выполняются в одной транзакции
func (s *serv) Spin(ctx context.Context, bet model.Bet) (*model.SpinResult, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	var round game.Round
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.repo.GetBalance(txCtx, id)
		if err != nil {
			return err
		}

		round, err = game.PlayRound(s.engine, s.machine, balance, bet)
		if err != nil {
			return err
		}

		return s.repo.UpdateBalance(txCtx, id, round.Balance)
	})
	if err != nil {
		if !isPlayerError(err) {
			s.logger.Error("spin failed", zap.String("session_id", id), zap.Error(err))
		}
		return nil, err
	}

	s.statsRepo.RecordSpin(round.TotalBet, round.Settlement.Winnings, len(round.Settlement.WinningLines))
	s.metrics.ObserveSpin(round.TotalBet, round.Settlement.Winnings, round.Settlement.WinningLines)

	s.logger.Debug("spin settled",
		zap.String("session_id", id),
		zap.Int("total_bet", round.TotalBet),
		zap.Int("winnings", round.Settlement.Winnings),
		zap.Ints("winning_lines", round.Settlement.WinningLines),
		zap.Int("balance", round.Balance),
	)

	return &model.SpinResult{
		Grid:         round.Grid,
		Winnings:     round.Settlement.Winnings,
		WinningLines: round.Settlement.WinningLines,
		TotalBet:     round.TotalBet,
		Balance:      round.Balance,
		GameOver:     round.GameOver,
	}, nil
}

// isPlayerError - ошибки ввода и состояния сессии, которые не логируются как сбой
func isPlayerError(err error) bool {
	for _, target := range []error{
		model.ErrInvalidLines,
		model.ErrInvalidBet,
		model.ErrInsufficientBalance,
		model.ErrSessionNotFound,
		model.ErrGameOver,
		model.ErrBalanceLimit,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
