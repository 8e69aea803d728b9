package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"slot_backend/internal/cli"
	"slot_backend/internal/engine"
	"slot_backend/internal/game"
	"slot_backend/internal/model"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Estimate the machine's RTP by playing many rounds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		machine, err := loadMachine(cmd)
		if err != nil {
			return err
		}

		rounds, _ := cmd.Flags().GetInt("rounds")
		perLine, _ := cmd.Flags().GetInt("bet")
		lines, _ := cmd.Flags().GetInt("lines")
		seed, _ := cmd.Flags().GetInt64("seed")
		if rounds <= 0 {
			return errors.New("rounds must be greater than 0")
		}
		if lines == 0 {
			lines = machine.MaxLines
		}
		if perLine == 0 {
			perLine = machine.MinBet
		}

		var opts []engine.Option
		if seed != 0 {
			opts = append(opts, engine.WithRand(rand.New(rand.NewSource(seed))))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		bet := model.Bet{PerLine: perLine, Lines: lines}
		spinner, _ := pterm.DefaultSpinner.WithWriter(cmd.ErrOrStderr()).Start(fmt.Sprintf("Playing %d rounds ...", rounds))
		report, simErr := game.Simulate(ctx, engine.New(opts...), machine, bet, rounds)
		if spinner != nil {
			_ = spinner.Stop()
		}
		if simErr != nil && report.Rounds == 0 {
			return simErr
		}

		table, err := cli.RenderReport(report, bet)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)
		return simErr
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().Int("rounds", 100000, "Number of rounds to play")
	simulateCmd.Flags().Int("bet", 0, "Bet per line (machine minimum when 0)")
	simulateCmd.Flags().Int("lines", 0, "Lines to bet on (machine maximum when 0)")
	simulateCmd.Flags().Int64("seed", 0, "Random seed (non-deterministic when 0)")
}
