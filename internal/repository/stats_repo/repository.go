package stats_repo

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	repoModel "slot_backend/internal/repository/stats_repo/model"
)

const defaultWindowSize = 500

var hundred = decimal.NewFromInt(100)

// StatsRepo - потокобезопасная статистика выплат в памяти процесса.
// Суммы целые, RTP считается в decimal
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.State

	windowBet    int64
	windowPayout int64
}

// NewStatsRepository - windowSize <= 0 означает окно по умолчанию
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.State{
			SpinWindow: make([]repoModel.SpinResult, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// State возвращает копию состояния вместе с окном
func (r *StatsRepo) State() repoModel.State {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	state := r.state
	state.SpinWindow = slices.Clone(r.state.SpinWindow)
	return state
}

// RecordSpin учитывает settled спин
func (r *StatsRepo) RecordSpin(totalBet, winnings, winningLines int) {
	spin := repoModel.SpinResult{Bet: int64(totalBet), Payout: int64(winnings)}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	s := &r.state
	s.TotalSpins++
	s.WinningLines += winningLines
	if spin.Payout > 0 {
		s.WinSpins++
	}
	s.TotalBet += spin.Bet
	s.TotalPayout += spin.Payout
	s.RTP = rtp(s.TotalPayout, s.TotalBet)

	if len(s.SpinWindow) == s.WindowSize {
		oldest := s.SpinWindow[0]
		r.windowBet -= oldest.Bet
		r.windowPayout -= oldest.Payout
		s.SpinWindow = append(s.SpinWindow[:0], s.SpinWindow[1:]...)
	}
	s.SpinWindow = append(s.SpinWindow, spin)
	r.windowBet += spin.Bet
	r.windowPayout += spin.Payout
	s.WindowRTP = rtp(r.windowPayout, r.windowBet)
}

func rtp(payout, bet int64) decimal.Decimal {
	if bet == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(payout).Mul(hundred).Div(decimal.NewFromInt(bet))
}
