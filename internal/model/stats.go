package model

import "github.com/shopspring/decimal"

// Stats - агрегированная статистика выплат процесса
type Stats struct {
	TotalSpins   int
	WinSpins     int
	WinningLines int
	TotalBet     decimal.Decimal
	TotalPayout  decimal.Decimal
	RTP          decimal.Decimal // Процент, за всё время
	WindowRTP    decimal.Decimal // Процент, по окну последних спинов
	WindowSize   int
}
