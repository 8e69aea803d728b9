package env

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"slot_backend/internal/config"
	"slot_backend/internal/engine"
	"slot_backend/internal/model"
)

//go:embed default_machine.yaml
var defaultMachineYAML []byte

type symbolYAML struct {
	ID        string `yaml:"id"`
	Frequency int    `yaml:"frequency"`
	Payout    int    `yaml:"payout"`
}

type machineYAML struct {
	Machine struct {
		Rows     int          `yaml:"rows"`
		Reels    int          `yaml:"reels"`
		MaxLines int          `yaml:"max_lines"`
		MinBet   int          `yaml:"min_bet"`
		MaxBet   int          `yaml:"max_bet"`
		Symbols  []symbolYAML `yaml:"symbols"`
	} `yaml:"machine"`
}

type machineConfig struct {
	machine model.MachineConfig
}

// NewMachineConfigFromYAML читает конфигурацию автомата из файла.
// Пустой путь - конфигурация по умолчанию (3x3, символы A-D)
func NewMachineConfigFromYAML(path string) (config.MachineConfig, error) {
	if path == "" {
		return ParseMachineConfig(defaultMachineYAML)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine config: %w", err)
	}
	return ParseMachineConfig(data)
}

// ParseMachineConfig разбирает YAML и сразу проверяет конфигурацию
func ParseMachineConfig(data []byte) (config.MachineConfig, error) {
	var raw machineYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse machine config: %w", err)
	}

	symbols := make(model.SymbolTable, 0, len(raw.Machine.Symbols))
	for _, s := range raw.Machine.Symbols {
		symbols = append(symbols, model.Symbol{
			ID:        s.ID,
			Frequency: s.Frequency,
			Payout:    s.Payout,
		})
	}

	machine := model.MachineConfig{
		Rows:     raw.Machine.Rows,
		Reels:    raw.Machine.Reels,
		MaxLines: raw.Machine.MaxLines,
		MinBet:   raw.Machine.MinBet,
		MaxBet:   raw.Machine.MaxBet,
		Symbols:  symbols,
	}
	if err := engine.Validate(machine); err != nil {
		return nil, err
	}

	return &machineConfig{machine: machine}, nil
}

func (cfg *machineConfig) Machine() model.MachineConfig {
	return cfg.machine
}
