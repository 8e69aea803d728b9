package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDeposit      = errors.New("deposit amount must be greater than 0")
	ErrInvalidLines        = errors.New("invalid number of lines")
	ErrInvalidBet          = errors.New("bet per line out of range")
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrSessionNotFound     = errors.New("session not found")
	ErrGameOver            = errors.New("balance is exhausted")
	ErrBalanceLimit        = errors.New("balance limit exceeded")
)

// ConfigError - ошибка конфигурации автомата или несогласованности поля и таблицы символов
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "slot config: " + e.Reason
}

// NewConfigError создаёт ConfigError с форматированной причиной
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
