package session_repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/model"
)

func TestQueries(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		build    func() (string, []any, error)
		wantSQL  string
		wantArgs []any
	}{
		{
			name: "create",
			build: func() (string, []any, error) {
				return createSessionQuery(&model.Session{ID: "s1", Balance: 100, CreatedAt: createdAt})
			},
			wantSQL:  "INSERT INTO slot_sessions (session_id,balance,created_at) VALUES ($1,$2,$3)",
			wantArgs: []any{"s1", int64(100), createdAt},
		},
		{
			name:     "get balance",
			build:    func() (string, []any, error) { return getBalanceQuery("s1") },
			wantSQL:  "SELECT balance FROM slot_sessions WHERE session_id = $1 FOR UPDATE",
			wantArgs: []any{"s1"},
		},
		{
			name:     "update balance",
			build:    func() (string, []any, error) { return updateBalanceQuery("s1", 42) },
			wantSQL:  "UPDATE slot_sessions SET balance = $1 WHERE session_id = $2",
			wantArgs: []any{int64(42), "s1"},
		},
		{
			name:     "delete",
			build:    func() (string, []any, error) { return deleteSessionQuery("s1") },
			wantSQL:  "DELETE FROM slot_sessions WHERE session_id = $1",
			wantArgs: []any{"s1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlStr, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sqlStr)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
