package slot

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/engine"
	"slot_backend/internal/metrics"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
	"slot_backend/internal/repository/memory_session_repo"
	"slot_backend/internal/repository/stats_repo"
	"slot_backend/internal/repository/txlock"
	"slot_backend/internal/service"
	"slot_backend/pkg/token"
)

var secret = []byte("test-secret")

// seqRand выдаёт индексы по кругу из заданной последовательности
type seqRand struct {
	mtx  sync.Mutex
	seq  []int
	next int
}

func (r *seqRand) Intn(n int) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	v := r.seq[r.next%len(r.seq)]
	r.next++
	return v % n
}

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

// losingMachine с seqRand{0, 1} всегда показывает A | B
func losingMachine() model.MachineConfig {
	return model.MachineConfig{
		Rows:     1,
		Reels:    2,
		MaxLines: 1,
		MinBet:   1,
		MaxBet:   100,
		Symbols: model.SymbolTable{
			{ID: "A", Frequency: 1, Payout: 5},
			{ID: "B", Frequency: 1, Payout: 5},
		},
	}
}

type fixture struct {
	serv    service.SlotService
	metrics *metrics.Metrics
}

func newFixture(machine model.MachineConfig, e *engine.Engine) fixture {
	m := metrics.New()
	return fixture{
		serv: NewSlotService(Deps{
			Machine:     machine,
			Engine:      e,
			Repo:        memory_session_repo.NewSessionRepository(),
			StatsRepo:   stats_repo.NewStatsRepository(0),
			Metrics:     m,
			TxManager:   txlock.New(),
			TokenSecret: secret,
			TokenTTL:    time.Hour,
		}),
		metrics: m,
	}
}

func (f fixture) open(t *testing.T, amount int) context.Context {
	t.Helper()
	res, err := f.serv.Deposit(context.Background(), amount)
	require.NoError(t, err)
	return middleware.WithSessionID(context.Background(), res.SessionID)
}

func TestDeposit(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())

	res, err := f.serv.Deposit(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Balance)
	assert.NotEmpty(t, res.SessionID)

	claims, err := token.VerifyToken(res.Token, secret)
	require.NoError(t, err)
	assert.Equal(t, res.SessionID, claims.ID)

	balance, err := f.serv.Balance(middleware.WithSessionID(context.Background(), res.SessionID))
	require.NoError(t, err)
	assert.Equal(t, 100, balance)
}

func TestDeposit_Invalid(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())

	_, err := f.serv.Deposit(context.Background(), 0)
	assert.ErrorIs(t, err, model.ErrInvalidDeposit)
}

func TestDeposit_AboveBalanceLimit(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())

	_, err := f.serv.Deposit(context.Background(), math.MaxInt-100)
	assert.ErrorIs(t, err, model.ErrInvalidDeposit)
}

func TestSpin_WinAtBalanceLimit(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())
	ctx := f.open(t, model.MaxBalance-100)

	_, err := f.serv.Spin(ctx, model.Bet{PerLine: 100, Lines: 3})
	assert.ErrorIs(t, err, model.ErrBalanceLimit)

	balance, err := f.serv.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.MaxBalance-100, balance)
	assert.Equal(t, 0, f.serv.Stats().TotalSpins)
}

func TestSpin_Win(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())
	ctx := f.open(t, 100)

	res, err := f.serv.Spin(ctx, model.Bet{PerLine: 10, Lines: 2})
	require.NoError(t, err)

	assert.Equal(t, 20, res.TotalBet)
	assert.Equal(t, 200, res.Winnings)
	assert.Equal(t, []int{1, 2}, res.WinningLines)
	assert.Equal(t, 280, res.Balance)
	assert.False(t, res.GameOver)

	balance, err := f.serv.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 280, balance)

	stats := f.serv.Stats()
	assert.Equal(t, 1, stats.TotalSpins)
	assert.Equal(t, 1, stats.WinSpins)
	assert.Equal(t, 2, stats.WinningLines)
	assert.Equal(t, "1000", stats.RTP.String())

	rec := httptest.NewRecorder()
	f.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "slot_spins_total 1")
	assert.Contains(t, rec.Body.String(), "slot_paid_total 200")
}

func TestSpin_LossToGameOver(t *testing.T) {
	f := newFixture(losingMachine(), engine.New(engine.WithRand(&seqRand{seq: []int{0, 1}})))
	ctx := f.open(t, 10)

	res, err := f.serv.Spin(ctx, model.Bet{PerLine: 10, Lines: 1})
	require.NoError(t, err)
	assert.Equal(t, model.Grid{{"A"}, {"B"}}, res.Grid)
	assert.Equal(t, 0, res.Winnings)
	assert.Empty(t, res.WinningLines)
	assert.Equal(t, 0, res.Balance)
	assert.True(t, res.GameOver)

	_, err = f.serv.Spin(ctx, model.Bet{PerLine: 1, Lines: 1})
	assert.ErrorIs(t, err, model.ErrGameOver)

	balance, err := f.serv.CashOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestSpin_Rejected(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())
	ctx := f.open(t, 30)

	tests := []struct {
		name string
		bet  model.Bet
		want error
	}{
		{name: "too many lines", bet: model.Bet{PerLine: 1, Lines: 4}, want: model.ErrInvalidLines},
		{name: "zero lines", bet: model.Bet{PerLine: 1, Lines: 0}, want: model.ErrInvalidLines},
		{name: "bet above max", bet: model.Bet{PerLine: 101, Lines: 1}, want: model.ErrInvalidBet},
		{name: "total over balance", bet: model.Bet{PerLine: 11, Lines: 3}, want: model.ErrInsufficientBalance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.serv.Spin(ctx, tt.bet)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	balance, err := f.serv.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, balance)
	assert.Equal(t, 0, f.serv.Stats().TotalSpins)
}

func TestSpin_UnknownSession(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())

	_, err := f.serv.Spin(context.Background(), model.Bet{PerLine: 1, Lines: 1})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	ctx := middleware.WithSessionID(context.Background(), "missing")
	_, err = f.serv.Spin(ctx, model.Bet{PerLine: 1, Lines: 1})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestSpin_ExpiredSession(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := metrics.New()
	serv := NewSlotService(Deps{
		Machine: jackpotMachine(),
		Engine:  engine.New(),
		Repo: memory_session_repo.NewSessionRepository(
			memory_session_repo.WithTTL(time.Hour),
			memory_session_repo.WithClock(func() time.Time { return now }),
			memory_session_repo.WithOnExpire(m.SessionsExpired),
		),
		StatsRepo:   stats_repo.NewStatsRepository(0),
		Metrics:     m,
		TxManager:   txlock.New(),
		TokenSecret: secret,
		TokenTTL:    time.Hour,
	})

	res, err := serv.Deposit(context.Background(), 100)
	require.NoError(t, err)
	ctx := middleware.WithSessionID(context.Background(), res.SessionID)
	assert.Contains(t, scrape(t, m), "slot_sessions_active 1")

	now = now.Add(time.Hour)

	_, err = serv.Spin(ctx, model.Bet{PerLine: 1, Lines: 1})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	_, err = serv.Balance(ctx)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.Contains(t, scrape(t, m), "slot_sessions_active 0")
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestSpin_ConcurrentSameSession(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())
	ctx := f.open(t, 100)

	const spins = 20
	var wg sync.WaitGroup
	for range spins {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.serv.Spin(ctx, model.Bet{PerLine: 1, Lines: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// каждый спин: -1 ставка, +10 выигрыш
	balance, err := f.serv.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100+spins*9, balance)
	assert.Equal(t, spins, f.serv.Stats().TotalSpins)
}

func TestCashOut(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())
	ctx := f.open(t, 50)

	balance, err := f.serv.CashOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)

	_, err = f.serv.Balance(ctx)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	_, err = f.serv.CashOut(ctx)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestMachine(t *testing.T) {
	f := newFixture(jackpotMachine(), engine.New())
	assert.Equal(t, jackpotMachine(), f.serv.Machine())
}
