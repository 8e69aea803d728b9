package game

import (
	"fmt"

	"slot_backend/internal/engine"
	"slot_backend/internal/model"
)

// Round - результат одного раунда игрового цикла
type Round struct {
	Grid       model.Grid
	Settlement model.SettlementResult
	TotalBet   int
	Balance    int // Баланс после раунда
	GameOver   bool
}

// ValidateDeposit проверяет сумму депозита
func ValidateDeposit(amount int) error {
	if amount <= 0 {
		return model.ErrInvalidDeposit
	}
	if amount > model.MaxBalance {
		return fmt.Errorf("%w: must be at most %d", model.ErrInvalidDeposit, model.MaxBalance)
	}
	return nil
}

// ValidateLines проверяет количество линий
func ValidateLines(machine model.MachineConfig, lines int) error {
	if lines < 1 || lines > machine.MaxLines {
		return fmt.Errorf("%w: must be between 1 and %d", model.ErrInvalidLines, machine.MaxLines)
	}
	return nil
}

// ValidatePerLine проверяет ставку на линию
func ValidatePerLine(machine model.MachineConfig, perLine int) error {
	if perLine < machine.MinBet || perLine > machine.MaxBet {
		return fmt.Errorf("%w: must be between %d and %d", model.ErrInvalidBet, machine.MinBet, machine.MaxBet)
	}
	return nil
}

// ValidateBet проверяет ставку целиком, включая покрытие общей ставки балансом
func ValidateBet(machine model.MachineConfig, bet model.Bet, balance int) error {
	if err := ValidateLines(machine, bet.Lines); err != nil {
		return err
	}
	if err := ValidatePerLine(machine, bet.PerLine); err != nil {
		return err
	}
	if bet.Total() > balance {
		return fmt.Errorf("%w: total bet %d, balance %d", model.ErrInsufficientBalance, bet.Total(), balance)
	}
	return nil
}

// PlayRound выполняет раунд: проверка ставки, спин, расчёт и новый баланс.
// Баланс передаётся и возвращается явно, глобального состояния нет
func PlayRound(e *engine.Engine, machine model.MachineConfig, balance int, bet model.Bet) (Round, error) {
	if balance <= 0 {
		return Round{}, model.ErrGameOver
	}
	if err := ValidateBet(machine, bet, balance); err != nil {
		return Round{}, err
	}

	grid, err := e.Spin(machine)
	if err != nil {
		return Round{}, err
	}

	settlement, err := engine.Settle(grid, bet.Lines, bet.PerLine, machine.Symbols)
	if err != nil {
		return Round{}, err
	}

	balance, err = NextBalance(balance, bet, settlement)
	if err != nil {
		return Round{}, err
	}
	return Round{
		Grid:       grid,
		Settlement: settlement,
		TotalBet:   bet.Total(),
		Balance:    balance,
		GameOver:   balance <= 0,
	}, nil
}

// NextBalance - balance + выигрыш - общая ставка.
// Ставка уже покрыта балансом, результат выше MaxBalance - ErrBalanceLimit
func NextBalance(balance int, bet model.Bet, settlement model.SettlementResult) (int, error) {
	afterBet := balance - bet.Total()
	if afterBet < 0 {
		return 0, fmt.Errorf("%w: total bet %d, balance %d", model.ErrInsufficientBalance, bet.Total(), balance)
	}
	if settlement.Winnings > model.MaxBalance-afterBet {
		return 0, fmt.Errorf("%w: balance %d, winnings %d", model.ErrBalanceLimit, afterBet, settlement.Winnings)
	}
	return afterBet + settlement.Winnings, nil
}
