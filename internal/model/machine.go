package model

import "math"

// MaxBalance - потолок баланса сессии и депозита.
// Выигрыш за спин тоже не может его превышать, см. engine.Validate
const MaxBalance = math.MaxInt32

// Symbol - символ барабана: вес в пуле и множитель выплаты за линию
type Symbol struct {
	ID        string
	Frequency int
	Payout    int
}

// SymbolTable - упорядоченная таблица символов.
// Порядок задаёт порядок символов в пуле барабана
type SymbolTable []Symbol

// Index возвращает таблицу в виде map по ID символа
func (t SymbolTable) Index() map[string]Symbol {
	index := make(map[string]Symbol, len(t))
	for _, s := range t {
		index[s.ID] = s
	}
	return index
}

// MachineConfig - конфигурация автомата. Создаётся один раз при старте
type MachineConfig struct {
	Rows     int // Количество строк (R)
	Reels    int // Количество барабанов (C)
	MaxLines int // Максимум линий для ставки (L)
	MinBet   int
	MaxBet   int
	Symbols  SymbolTable
}

// Grid - игровое поле: Reels барабанов по Rows символов, строка 0 - верхняя
type Grid [][]string

// Row возвращает символы строки row по всем барабанам
func (g Grid) Row(row int) []string {
	symbols := make([]string, len(g))
	for r, reel := range g {
		symbols[r] = reel[row]
	}
	return symbols
}

// Bet - ставка на спин
type Bet struct {
	PerLine int
	Lines   int
}

// Total - общая сумма ставки
func (b Bet) Total() int {
	return b.PerLine * b.Lines
}

// SettlementResult - итог расчёта спина
type SettlementResult struct {
	Winnings     int
	WinningLines []int // Номера выигравших линий, с 1, по возрастанию
}
