package engine

import "slot_backend/internal/model"

// Settle считает выигрыш по первым lineCount строкам поля.
// Линия выигрывает, только если на всех барабанах в этой строке один и тот же символ
func Settle(grid model.Grid, lineCount, betPerLine int, table model.SymbolTable) (model.SettlementResult, error) {
	if lineCount < 1 {
		return model.SettlementResult{}, model.NewConfigError("line count must be at least 1, got %d", lineCount)
	}
	if len(grid) == 0 {
		return model.SettlementResult{}, model.NewConfigError("grid has no reels")
	}

	index := table.Index()
	for r, reel := range grid {
		if len(reel) < lineCount {
			return model.SettlementResult{}, model.NewConfigError("reel %d has %d rows, %d lines requested", r, len(reel), lineCount)
		}
		for _, sym := range reel {
			if _, ok := index[sym]; !ok {
				return model.SettlementResult{}, model.NewConfigError("symbol %q on reel %d is not in the symbol table", sym, r)
			}
		}
	}

	res := model.SettlementResult{WinningLines: []int{}}
	for line := 0; line < lineCount; line++ {
		symbol, ok := matchLine(grid, line)
		if !ok {
			continue
		}
		res.Winnings += index[symbol].Payout * betPerLine
		res.WinningLines = append(res.WinningLines, line+1)
	}
	return res, nil
}

// matchLine возвращает символ строки, если он совпадает на всех барабанах
func matchLine(grid model.Grid, line int) (string, bool) {
	symbol := grid[0][line]
	for _, reel := range grid[1:] {
		if reel[line] != symbol {
			return "", false
		}
	}
	return symbol, true
}
