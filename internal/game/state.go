package game

import "strings"

// State - состояние игрового цикла
type State int

const (
	AwaitingDeposit State = iota
	AwaitingBet
	Settling
	BalanceUpdated
	GameOver
	Quit
)

var stateNames = map[State]string{
	AwaitingDeposit: "awaiting_deposit",
	AwaitingBet:     "awaiting_bet",
	Settling:        "settling",
	BalanceUpdated:  "balance_updated",
	GameOver:        "game_over",
	Quit:            "quit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal - цикл завершён
func (s State) Terminal() bool {
	return s == GameOver || s == Quit
}

// AfterRound - следующее состояние после обновления баланса
func AfterRound(balance int) State {
	if balance <= 0 {
		return GameOver
	}
	return AwaitingBet
}

// IsQuit - ответ игрока означает выход (q без учёта регистра)
func IsQuit(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "q")
}
