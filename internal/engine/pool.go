package engine

import "slot_backend/internal/model"

// BuildPool разворачивает таблицу символов в плоский пул одного барабана:
// каждый символ повторяется Frequency раз в порядке таблицы
func BuildPool(table model.SymbolTable, rows int) ([]string, error) {
	if len(table) == 0 {
		return nil, model.NewConfigError("symbol table is empty")
	}

	size := 0
	for _, s := range table {
		if s.Frequency <= 0 {
			return nil, model.NewConfigError("frequency of %q must be positive, got %d", s.ID, s.Frequency)
		}
		size += s.Frequency
	}
	// Без возврата нельзя вытянуть больше символов, чем есть в пуле
	if size < rows {
		return nil, model.NewConfigError("pool of %d symbols cannot fill %d rows", size, rows)
	}

	pool := make([]string, 0, size)
	for _, s := range table {
		for i := 0; i < s.Frequency; i++ {
			pool = append(pool, s.ID)
		}
	}
	return pool, nil
}
