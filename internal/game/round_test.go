package game_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/engine"
	"slot_backend/internal/game"
	"slot_backend/internal/model"
)

func classicMachine() model.MachineConfig {
	return model.MachineConfig{
		Rows:     3,
		Reels:    3,
		MaxLines: 3,
		MinBet:   1,
		MaxBet:   100,
		Symbols: model.SymbolTable{
			{ID: "A", Frequency: 2, Payout: 5},
			{ID: "B", Frequency: 4, Payout: 4},
			{ID: "C", Frequency: 6, Payout: 3},
			{ID: "D", Frequency: 8, Payout: 2},
		},
	}
}

// jackpotMachine - у каждого барабана единственный символ, любая линия выигрывает
func jackpotMachine() model.MachineConfig {
	return model.MachineConfig{
		Rows:     3,
		Reels:    3,
		MaxLines: 3,
		MinBet:   1,
		MaxBet:   100,
		Symbols:  model.SymbolTable{{ID: "7", Frequency: 3, Payout: 10}},
	}
}

func TestValidateDeposit(t *testing.T) {
	assert.NoError(t, game.ValidateDeposit(1))
	assert.ErrorIs(t, game.ValidateDeposit(0), model.ErrInvalidDeposit)
	assert.ErrorIs(t, game.ValidateDeposit(-5), model.ErrInvalidDeposit)
	assert.NoError(t, game.ValidateDeposit(model.MaxBalance))
	assert.ErrorIs(t, game.ValidateDeposit(model.MaxBalance+1), model.ErrInvalidDeposit)
	assert.ErrorIs(t, game.ValidateDeposit(math.MaxInt-100), model.ErrInvalidDeposit)
}

func TestNextBalance(t *testing.T) {
	bet := model.Bet{PerLine: 100, Lines: 3}

	balance, err := game.NextBalance(1000, bet, model.SettlementResult{Winnings: 3000})
	require.NoError(t, err)
	assert.Equal(t, 3700, balance)

	_, err = game.NextBalance(100, bet, model.SettlementResult{})
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)

	balance, err = game.NextBalance(model.MaxBalance, bet, model.SettlementResult{Winnings: 300})
	require.NoError(t, err)
	assert.Equal(t, model.MaxBalance, balance)

	_, err = game.NextBalance(model.MaxBalance, bet, model.SettlementResult{Winnings: 301})
	assert.ErrorIs(t, err, model.ErrBalanceLimit)
}

// Выигрыш у потолка баланса отклоняется, а не переполняет баланс
func TestPlayRound_BalanceLimit(t *testing.T) {
	bet := model.Bet{PerLine: 100, Lines: 3}

	_, err := game.PlayRound(engine.New(), jackpotMachine(), model.MaxBalance-100, bet)
	assert.ErrorIs(t, err, model.ErrBalanceLimit)

	round, err := game.PlayRound(engine.New(), jackpotMachine(), model.MaxBalance-2700, bet)
	require.NoError(t, err)
	assert.Equal(t, 3000, round.Settlement.Winnings)
	assert.Equal(t, model.MaxBalance, round.Balance)
	assert.False(t, round.GameOver)
}

func TestValidateBet(t *testing.T) {
	machine := classicMachine()

	tests := []struct {
		name    string
		bet     model.Bet
		balance int
		wantErr error
	}{
		{"valid", model.Bet{PerLine: 10, Lines: 3}, 30, nil},
		{"zero lines", model.Bet{PerLine: 10, Lines: 0}, 100, model.ErrInvalidLines},
		{"too many lines", model.Bet{PerLine: 10, Lines: 4}, 100, model.ErrInvalidLines},
		{"bet below min", model.Bet{PerLine: 0, Lines: 1}, 100, model.ErrInvalidBet},
		{"bet above max", model.Bet{PerLine: 101, Lines: 1}, 1000, model.ErrInvalidBet},
		{"total above balance", model.Bet{PerLine: 50, Lines: 3}, 20, model.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := game.ValidateBet(machine, tt.bet, tt.balance)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlayRound_Win(t *testing.T) {
	e := engine.New()
	bet := model.Bet{PerLine: 10, Lines: 2}

	round, err := game.PlayRound(e, jackpotMachine(), 100, bet)
	require.NoError(t, err)

	assert.Equal(t, 20, round.TotalBet)
	assert.Equal(t, 200, round.Settlement.Winnings)
	assert.Equal(t, []int{1, 2}, round.Settlement.WinningLines)
	assert.Equal(t, 280, round.Balance)
	assert.False(t, round.GameOver)
}

func TestPlayRound_BalanceThreading(t *testing.T) {
	e := engine.New(engine.WithRand(rand.New(rand.NewSource(3))))
	machine := classicMachine()
	bet := model.Bet{PerLine: 5, Lines: 3}

	balance := 200
	for i := 0; i < 10 && balance >= bet.Total(); i++ {
		round, err := game.PlayRound(e, machine, balance, bet)
		require.NoError(t, err)

		want := balance + round.Settlement.Winnings - bet.Total()
		assert.Equal(t, want, round.Balance)
		assert.Equal(t, round.Balance <= 0, round.GameOver)
		balance = round.Balance
	}
}

func TestPlayRound_GameOver(t *testing.T) {
	// Одна линия и разные символы на барабанах: ставка всегда проигрывает
	machine := model.MachineConfig{
		Rows:     1,
		Reels:    2,
		MaxLines: 1,
		MinBet:   1,
		MaxBet:   10,
		Symbols: model.SymbolTable{
			{ID: "A", Frequency: 1, Payout: 1},
			{ID: "B", Frequency: 1, Payout: 1},
		},
	}
	rnd := &seqRand{values: []int{0, 1}}
	e := engine.New(engine.WithRand(rnd))

	round, err := game.PlayRound(e, machine, 10, model.Bet{PerLine: 10, Lines: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, round.Balance)
	assert.True(t, round.GameOver)
	assert.Equal(t, game.GameOver, game.AfterRound(round.Balance))

	_, err = game.PlayRound(e, machine, round.Balance, model.Bet{PerLine: 1, Lines: 1})
	assert.ErrorIs(t, err, model.ErrGameOver)
}

func TestPlayRound_RejectsBet(t *testing.T) {
	_, err := game.PlayRound(engine.New(), classicMachine(), 10, model.Bet{PerLine: 10, Lines: 3})
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
}

// seqRand возвращает значения по кругу
type seqRand struct {
	values []int
	i      int
}

func (r *seqRand) Intn(n int) int {
	v := r.values[r.i%len(r.values)] % n
	r.i++
	return v
}
