package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"slot_backend/internal/game"
	"slot_backend/internal/model"
)

// ErrQuit - игрок ввёл q вместо числа
var ErrQuit = errors.New("player quit")

// Prompter задаёт вопросы игроку и переспрашивает до корректного ответа.
// Конец ввода возвращается как io.EOF
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) warn(msg string) {
	fmt.Fprint(p.out, pterm.Sprintfln("%s", pterm.LightRed(msg)))
}

// askInt спрашивает число, пока validate не примет ответ. q - ErrQuit
func (p *Prompter) askInt(question string, validate func(int) error) (int, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		if game.IsQuit(answer) {
			return 0, ErrQuit
		}

		n, err := strconv.Atoi(answer)
		if err != nil {
			p.warn("Please enter a whole number.")
			continue
		}
		if err := validate(n); err != nil {
			p.warn(err.Error())
			continue
		}
		return n, nil
	}
}

func (p *Prompter) Deposit() (int, error) {
	return p.askInt("How much would you like to deposit? $", game.ValidateDeposit)
}

func (p *Prompter) Lines(machine model.MachineConfig) (int, error) {
	question := fmt.Sprintf("Enter the number of lines to bet on (1-%d, q to quit): ", machine.MaxLines)
	return p.askInt(question, func(n int) error {
		return game.ValidateLines(machine, n)
	})
}

func (p *Prompter) PerLine(machine model.MachineConfig) (int, error) {
	question := fmt.Sprintf("How much would you like to bet on each line (%d-%d)? $", machine.MinBet, machine.MaxBet)
	return p.askInt(question, func(n int) error {
		return game.ValidatePerLine(machine, n)
	})
}

// Bet спрашивает линии и ставку на линию. Если общая ставка больше баланса,
// спрашивается заново и количество линий
func (p *Prompter) Bet(machine model.MachineConfig, balance int) (model.Bet, error) {
	for {
		lines, err := p.Lines(machine)
		if err != nil {
			return model.Bet{}, err
		}
		perLine, err := p.PerLine(machine)
		if err != nil {
			return model.Bet{}, err
		}

		bet := model.Bet{PerLine: perLine, Lines: lines}
		if err := game.ValidateBet(machine, bet, balance); err != nil {
			p.warn(fmt.Sprintf("You do not have enough to bet that amount, your current balance is $%d.", balance))
			continue
		}
		return bet, nil
	}
}

// Continue - false, если игрок ввёл q
func (p *Prompter) Continue(balance int) (bool, error) {
	answer, err := p.ask(fmt.Sprintf("Current balance is $%d. Press enter to play (q to quit). ", balance))
	if err != nil {
		return false, err
	}
	return !game.IsQuit(answer), nil
}
