package engine_test

import "slot_backend/internal/model"

// classicTable - таблица 3x3 автомата по умолчанию
var classicTable = model.SymbolTable{
	{ID: "A", Frequency: 2, Payout: 5},
	{ID: "B", Frequency: 4, Payout: 4},
	{ID: "C", Frequency: 6, Payout: 3},
	{ID: "D", Frequency: 8, Payout: 2},
}

func classicMachine() model.MachineConfig {
	return model.MachineConfig{
		Rows:     3,
		Reels:    3,
		MaxLines: 3,
		MinBet:   1,
		MaxBet:   100,
		Symbols:  classicTable,
	}
}

// zeroRand всегда выбирает первый элемент пула
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }
