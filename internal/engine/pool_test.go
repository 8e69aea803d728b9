package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/engine"
	"slot_backend/internal/model"
)

func TestBuildPool(t *testing.T) {
	pool, err := engine.BuildPool(model.SymbolTable{
		{ID: "A", Frequency: 1, Payout: 5},
		{ID: "B", Frequency: 2, Payout: 4},
		{ID: "C", Frequency: 3, Payout: 3},
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "B", "C", "C", "C"}, pool)
}

func TestBuildPool_Deterministic(t *testing.T) {
	first, err := engine.BuildPool(classicTable, 3)
	require.NoError(t, err)
	second, err := engine.BuildPool(classicTable, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 20)
}

func TestBuildPool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		table model.SymbolTable
		rows  int
	}{
		{"empty table", model.SymbolTable{}, 1},
		{"nil table", nil, 1},
		{"zero frequency", model.SymbolTable{{ID: "A", Frequency: 0, Payout: 1}}, 1},
		{"negative frequency", model.SymbolTable{{ID: "A", Frequency: 3, Payout: 1}, {ID: "B", Frequency: -1, Payout: 1}}, 1},
		{"pool smaller than rows", model.SymbolTable{{ID: "A", Frequency: 1, Payout: 1}, {ID: "B", Frequency: 1, Payout: 1}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := engine.BuildPool(tt.table, tt.rows)
			assert.Nil(t, pool)

			var cfgErr *model.ConfigError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, engine.Validate(classicMachine()))

	tests := []struct {
		name   string
		mutate func(*model.MachineConfig)
	}{
		{"zero rows", func(m *model.MachineConfig) { m.Rows = 0 }},
		{"zero reels", func(m *model.MachineConfig) { m.Reels = 0 }},
		{"zero max lines", func(m *model.MachineConfig) { m.MaxLines = 0 }},
		{"max lines above rows", func(m *model.MachineConfig) { m.MaxLines = 4 }},
		{"zero min bet", func(m *model.MachineConfig) { m.MinBet = 0 }},
		{"min bet above max bet", func(m *model.MachineConfig) { m.MinBet = 200 }},
		{"empty symbols", func(m *model.MachineConfig) { m.Symbols = nil }},
		{"empty symbol id", func(m *model.MachineConfig) {
			m.Symbols = model.SymbolTable{{ID: "", Frequency: 5, Payout: 1}}
		}},
		{"duplicate symbol", func(m *model.MachineConfig) {
			m.Symbols = model.SymbolTable{{ID: "A", Frequency: 2, Payout: 1}, {ID: "A", Frequency: 2, Payout: 1}}
		}},
		{"zero payout", func(m *model.MachineConfig) {
			m.Symbols = model.SymbolTable{{ID: "A", Frequency: 5, Payout: 0}}
		}},
		{"too few symbols for rows", func(m *model.MachineConfig) {
			m.Symbols = model.SymbolTable{{ID: "A", Frequency: 2, Payout: 1}}
		}},
		{"max bet over balance limit", func(m *model.MachineConfig) { m.MaxBet = model.MaxBalance }},
		{"payout over balance limit", func(m *model.MachineConfig) {
			m.Symbols[0].Payout = model.MaxBalance/(m.MaxBet*m.MaxLines) + 1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine := classicMachine()
			tt.mutate(&machine)

			var cfgErr *model.ConfigError
			assert.ErrorAs(t, engine.Validate(machine), &cfgErr)
		})
	}
}
