package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"slot_backend/internal/game"
	"slot_backend/internal/model"
)

// RenderGrid рисует поле построчно, символы разделены " | "
func RenderGrid(grid model.Grid) (string, error) {
	if len(grid) == 0 {
		return "", nil
	}

	data := make(pterm.TableData, len(grid[0]))
	for row := range data {
		data[row] = grid.Row(row)
	}
	return pterm.DefaultTable.WithData(data).Srender()
}

func RenderRound(round game.Round) string {
	var sb strings.Builder
	sb.WriteString(pterm.Sprintfln("You won $%s.", pterm.LightGreen(round.Settlement.Winnings)))

	lines := make([]string, len(round.Settlement.WinningLines))
	for i, line := range round.Settlement.WinningLines {
		lines[i] = strconv.Itoa(line)
	}
	sb.WriteString(pterm.Sprintfln("You won on lines: %s", strings.Join(lines, " ")))
	return sb.String()
}

// RenderReport - таблица результатов симуляции
func RenderReport(report game.Report, bet model.Bet) (string, error) {
	data := pterm.TableData{
		{"Metric", "Value"},
		{"Rounds", strconv.Itoa(report.Rounds)},
		{"Bet", fmt.Sprintf("%d x %d lines", bet.PerLine, bet.Lines)},
		{"Total bet", report.TotalBet.String()},
		{"Total win", report.TotalWin.String()},
		{"RTP, %", report.RTP.StringFixed(2)},
		{"Hit rate, %", report.HitRate.StringFixed(2)},
		{"Max win", strconv.Itoa(report.MaxWin)},
	}
	for i, hits := range report.LineHits {
		data = append(data, []string{fmt.Sprintf("Line %d hits", i+1), strconv.Itoa(hits)})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
