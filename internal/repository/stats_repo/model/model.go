package model

import "github.com/shopspring/decimal"

// State - статистика автомата за время жизни процесса
type State struct {
	TotalSpins   int
	WinSpins     int // Спинов с ненулевым выигрышем
	WinningLines int
	TotalBet     int64
	TotalPayout  int64
	RTP          decimal.Decimal // TotalPayout / TotalBet * 100

	SpinWindow []SpinResult // Последние WindowSize спинов, старые в начале
	WindowRTP  decimal.Decimal
	WindowSize int
}

// SpinResult - спин в окне
type SpinResult struct {
	Bet    int64
	Payout int64
}
