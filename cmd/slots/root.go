package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/model"
)

var rootCmd = &cobra.Command{
	Use:   "slots",
	Short: "Slot machine with a terminal game, an HTTP API and an RTP simulator",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		envFile, _ := cmd.Flags().GetString("env")
		// .env необязателен
		_ = config.Load(envFile)
	},
}

// Execute запускает корневую команду
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Machine YAML config (built-in 3x3 machine when empty)")
	rootCmd.PersistentFlags().String("env", ".env", "Env file to load")
}

func loadMachine(cmd *cobra.Command) (model.MachineConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := env.NewMachineConfigFromYAML(path)
	if err != nil {
		return model.MachineConfig{}, err
	}
	return cfg.Machine(), nil
}
