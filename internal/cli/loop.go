package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"slot_backend/internal/engine"
	"slot_backend/internal/game"
	"slot_backend/internal/model"
)

// Game - терминальный игровой цикл
type Game struct {
	prompter *Prompter
	out      io.Writer
	engine   *engine.Engine
	machine  model.MachineConfig
	logger   *zap.Logger
}

func NewGame(in io.Reader, out io.Writer, e *engine.Engine, machine model.MachineConfig, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		prompter: NewPrompter(in, out),
		out:      out,
		engine:   e,
		machine:  machine,
		logger:   logger,
	}
}

// Run проводит игру от депозита до выхода или проигрыша и возвращает итоговый баланс.
// Конец ввода и q на любом вопросе равносильны выходу
func (g *Game) Run(ctx context.Context) (int, error) {
	var (
		balance int
		bet     model.Bet
		round   game.Round
		err     error
	)

	state := game.AwaitingDeposit
	for !state.Terminal() {
		if err := ctx.Err(); err != nil {
			return balance, err
		}
		g.logger.Debug("state", zap.Stringer("state", state), zap.Int("balance", balance))

		switch state {
		case game.AwaitingDeposit:
			balance, err = g.prompter.Deposit()
			state = game.AwaitingBet

		case game.AwaitingBet:
			var play bool
			play, err = g.prompter.Continue(balance)
			if err != nil || !play {
				state = game.Quit
				break
			}
			bet, err = g.prompter.Bet(g.machine, balance)
			state = game.Settling

		case game.Settling:
			round, err = game.PlayRound(g.engine, g.machine, balance, bet)
			if errors.Is(err, model.ErrBalanceLimit) {
				g.prompter.warn("This spin could exceed the balance limit, lower your bet.")
				err = nil
				state = game.AwaitingBet
				break
			}
			if err != nil {
				return balance, err
			}
			if err = g.printRound(round); err != nil {
				return balance, err
			}
			state = game.BalanceUpdated

		case game.BalanceUpdated:
			balance = round.Balance
			state = game.AfterRound(balance)
		}

		if errors.Is(err, io.EOF) || errors.Is(err, ErrQuit) {
			err = nil
			state = game.Quit
		}
		if err != nil {
			return balance, err
		}
	}

	if state == game.GameOver {
		fmt.Fprint(g.out, pterm.Sprintfln("%s", pterm.LightRed("You're out of money. Game over.")))
	}
	fmt.Fprint(g.out, pterm.Sprintfln("You left with $%d", balance))
	return balance, nil
}

func (g *Game) printRound(round game.Round) error {
	grid, err := RenderGrid(round.Grid)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, grid)
	fmt.Fprint(g.out, RenderRound(round))
	return nil
}
