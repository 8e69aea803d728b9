package converter

import (
	"strings"

	"slot_backend/internal/api/dto/slot"
	"slot_backend/internal/model"
)

func ToBet(req slot.SpinRequest) model.Bet {
	return model.Bet{
		PerLine: req.Bet,
		Lines:   req.Lines,
	}
}

func ToDepositResponse(res model.DepositResult) slot.DepositResponse {
	return slot.DepositResponse{
		Token:     res.Token,
		SessionID: res.SessionID,
		Balance:   res.Balance,
	}
}

func ToSpinResponse(res model.SpinResult) slot.SpinResponse {
	winningLines := res.WinningLines
	if winningLines == nil {
		winningLines = []int{}
	}
	return slot.SpinResponse{
		Grid:         res.Grid,
		Rows:         toRows(res.Grid),
		Winnings:     res.Winnings,
		WinningLines: winningLines,
		TotalBet:     res.TotalBet,
		Balance:      res.Balance,
		GameOver:     res.GameOver,
	}
}

func toRows(grid model.Grid) []string {
	if len(grid) == 0 {
		return []string{}
	}
	rows := make([]string, len(grid[0]))
	for i := range rows {
		rows[i] = strings.Join(grid.Row(i), " | ")
	}
	return rows
}

func ToMachineResponse(m model.MachineConfig) slot.MachineResponse {
	symbols := make([]slot.Symbol, len(m.Symbols))
	for i, s := range m.Symbols {
		symbols[i] = slot.Symbol{
			ID:        s.ID,
			Frequency: s.Frequency,
			Payout:    s.Payout,
		}
	}
	return slot.MachineResponse{
		Rows:     m.Rows,
		Reels:    m.Reels,
		MaxLines: m.MaxLines,
		MinBet:   m.MinBet,
		MaxBet:   m.MaxBet,
		Symbols:  symbols,
	}
}

func ToStatsResponse(s model.Stats) slot.StatsResponse {
	return slot.StatsResponse{
		TotalSpins:   s.TotalSpins,
		WinSpins:     s.WinSpins,
		WinningLines: s.WinningLines,
		TotalBet:     s.TotalBet.String(),
		TotalPayout:  s.TotalPayout.String(),
		RTP:          s.RTP.StringFixed(2),
		WindowRTP:    s.WindowRTP.StringFixed(2),
		WindowSize:   s.WindowSize,
	}
}
