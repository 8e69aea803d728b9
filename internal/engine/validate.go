package engine

import "slot_backend/internal/model"

// Validate проверяет конфигурацию автомата целиком
func Validate(machine model.MachineConfig) error {
	if machine.Rows < 1 {
		return model.NewConfigError("rows must be at least 1, got %d", machine.Rows)
	}
	if machine.Reels < 1 {
		return model.NewConfigError("reels must be at least 1, got %d", machine.Reels)
	}
	if machine.MaxLines < 1 || machine.MaxLines > machine.Rows {
		return model.NewConfigError("max lines must be in [1, %d], got %d", machine.Rows, machine.MaxLines)
	}
	if machine.MinBet < 1 || machine.MinBet > machine.MaxBet {
		return model.NewConfigError("bet bounds must satisfy 1 <= min <= max, got %d..%d", machine.MinBet, machine.MaxBet)
	}

	if machine.MaxBet > model.MaxBalance/machine.MaxLines {
		return model.NewConfigError("max bet %d on %d lines exceeds balance limit %d", machine.MaxBet, machine.MaxLines, model.MaxBalance)
	}
	// Максимальный выигрыш за спин: payout * MaxBet * MaxLines <= MaxBalance
	maxPayout := model.MaxBalance / (machine.MaxBet * machine.MaxLines)

	seen := make(map[string]struct{}, len(machine.Symbols))
	for _, s := range machine.Symbols {
		if s.ID == "" {
			return model.NewConfigError("symbol id must not be empty")
		}
		if _, ok := seen[s.ID]; ok {
			return model.NewConfigError("duplicate symbol %q", s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Payout <= 0 {
			return model.NewConfigError("payout of %q must be positive, got %d", s.ID, s.Payout)
		}
		if s.Payout > maxPayout {
			return model.NewConfigError("payout of %q must be at most %d for the bet limits, got %d", s.ID, maxPayout, s.Payout)
		}
	}

	_, err := BuildPool(machine.Symbols, machine.Rows)
	return err
}
