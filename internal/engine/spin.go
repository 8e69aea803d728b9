package engine

import (
	"slices"

	"slot_backend/internal/model"
)

// Spin генерирует игровое поле Reels x Rows.
// Каждый барабан тянет символы без возврата из собственной копии пула
func (e *Engine) Spin(machine model.MachineConfig) (model.Grid, error) {
	if err := Validate(machine); err != nil {
		return nil, err
	}

	pool, err := BuildPool(machine.Symbols, machine.Rows)
	if err != nil {
		return nil, err
	}

	grid := make(model.Grid, machine.Reels)
	for r := 0; r < machine.Reels; r++ {
		grid[r] = e.drawReel(slices.Clone(pool), machine.Rows)
	}
	return grid, nil
}

// drawReel вытягивает rows символов из pool. pool изменяется
func (e *Engine) drawReel(pool []string, rows int) []string {
	reel := make([]string, rows)
	for row := 0; row < rows; row++ {
		i := e.rnd.Intn(len(pool))
		reel[row] = pool[i]

		// Удаляем вытянутый экземпляр: ставим на его место последний
		last := len(pool) - 1
		pool[i] = pool[last]
		pool = pool[:last]
	}
	return reel
}
