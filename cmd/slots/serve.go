package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"slot_backend/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Starts the JSON API. Sessions are stored according to STORAGE_DRIVER (memory, redis or postgres).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		machinePath, _ := cmd.Flags().GetString("config")
		envFile, _ := cmd.Flags().GetString("env")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a := app.NewApp(
			app.WithEnvFile(envFile),
			app.WithMachineConfig(machinePath),
		)
		return a.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
