package game

import (
	"context"

	"github.com/shopspring/decimal"

	"slot_backend/internal/engine"
	"slot_backend/internal/model"
)

// Report - статистика симуляции
type Report struct {
	Rounds     int
	TotalBet   decimal.Decimal
	TotalWin   decimal.Decimal
	RTP        decimal.Decimal // В процентах
	HitRate    decimal.Decimal // Доля выигрышных раундов, в процентах
	WinRounds  int
	LineHits   []int // LineHits[i] - сколько раз выиграла линия i+1
	MaxWin     int
	SymbolWins map[string]int // Сколько линий выиграл каждый символ
}

var hundred = decimal.NewFromInt(100)

// Simulate играет rounds раундов с фиксированной ставкой без учёта баланса.
// Возвращает частичный отчёт и ошибку контекста, если симуляцию прервали
func Simulate(ctx context.Context, e *engine.Engine, machine model.MachineConfig, bet model.Bet, rounds int) (Report, error) {
	if err := engine.Validate(machine); err != nil {
		return Report{}, err
	}
	if err := ValidateLines(machine, bet.Lines); err != nil {
		return Report{}, err
	}
	if err := ValidatePerLine(machine, bet.PerLine); err != nil {
		return Report{}, err
	}

	report := Report{
		LineHits:   make([]int, bet.Lines),
		SymbolWins: make(map[string]int, len(machine.Symbols)),
	}
	var totalBet, totalWin int64

	for i := 0; i < rounds; i++ {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return report.finish(totalBet, totalWin), err
			}
		}

		grid, err := e.Spin(machine)
		if err != nil {
			return Report{}, err
		}
		settlement, err := engine.Settle(grid, bet.Lines, bet.PerLine, machine.Symbols)
		if err != nil {
			return Report{}, err
		}

		report.Rounds++
		totalBet += int64(bet.Total())
		totalWin += int64(settlement.Winnings)
		if settlement.Winnings > 0 {
			report.WinRounds++
		}
		if settlement.Winnings > report.MaxWin {
			report.MaxWin = settlement.Winnings
		}
		for _, line := range settlement.WinningLines {
			report.LineHits[line-1]++
			report.SymbolWins[grid[0][line-1]]++
		}
	}

	return report.finish(totalBet, totalWin), nil
}

func (r Report) finish(totalBet, totalWin int64) Report {
	r.TotalBet = decimal.NewFromInt(totalBet)
	r.TotalWin = decimal.NewFromInt(totalWin)
	r.RTP = decimal.Zero
	r.HitRate = decimal.Zero
	if totalBet > 0 {
		r.RTP = r.TotalWin.Div(r.TotalBet).Mul(hundred).Round(2)
	}
	if r.Rounds > 0 {
		r.HitRate = decimal.NewFromInt(int64(r.WinRounds)).Div(decimal.NewFromInt(int64(r.Rounds))).Mul(hundred).Round(2)
	}
	return r
}
