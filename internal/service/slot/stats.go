package slot

import (
	"github.com/shopspring/decimal"

	"slot_backend/internal/model"
)

func (s *serv) Stats() model.Stats {
	state := s.statsRepo.State()

	return model.Stats{
		TotalSpins:   state.TotalSpins,
		WinSpins:     state.WinSpins,
		WinningLines: state.WinningLines,
		TotalBet:     decimal.NewFromInt(state.TotalBet),
		TotalPayout:  decimal.NewFromInt(state.TotalPayout),
		RTP:          state.RTP.Round(2),
		WindowRTP:    state.WindowRTP.Round(2),
		WindowSize:   state.WindowSize,
	}
}
