package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"slot_backend/internal/cli"
	"slot_backend/internal/config/env"
	"slot_backend/internal/engine"
	"slot_backend/internal/logging"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the slot machine in the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		machine, err := loadMachine(cmd)
		if err != nil {
			return err
		}

		logger, err := logging.New(env.NewLogConfig().Level())
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		g := cli.NewGame(cmd.InOrStdin(), cmd.OutOrStdout(), engine.New(), machine, logger.Named("play"))
		_, err = g.Run(ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
