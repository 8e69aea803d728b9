package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session - игровая сессия игрока с балансом
type Session struct {
	ID        string
	Balance   int
	CreatedAt time.Time
}

// SessionClaims - claims токена сессии, ID токена совпадает с ID сессии
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SpinResult - результат спина в рамках сессии
type SpinResult struct {
	Grid         Grid
	Winnings     int
	WinningLines []int
	TotalBet     int
	Balance      int
	GameOver     bool
}

// DepositResult - открытая депозитом сессия и её токен
type DepositResult struct {
	SessionID string
	Token     string
	Balance   int
}
