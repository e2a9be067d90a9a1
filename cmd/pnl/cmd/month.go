package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pnl/calendar"
	"github.com/rustyeddy/pnl/ledger"
	"github.com/rustyeddy/pnl/stats"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Show the monthly trading calendar",
	Long: `Render a month as a 7-column calendar. Days with trades show
their net P&L and trade count; today is marked with an asterisk.
Defaults to the current month.

Examples:
  pnl month
  pnl month 2024-03`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if len(args) == 1 {
		t, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("parse month %q: %w", args[0], err)
		}
		year, month = t.Year(), t.Month()
	}

	store, j, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	trades := store.List()
	cells := calendar.BuildMonth(trades, year, month, ledger.DateOf(now))
	renderMonth(os.Stdout, cells, year, month)

	// Month footer: totals over just this month's trades.
	var monthTrades []ledger.Trade
	for _, t := range trades {
		if t.Date.Year() == year && t.Date.Month() == month {
			monthTrades = append(monthTrades, t)
		}
	}
	totals := stats.Compute(monthTrades)
	fmt.Printf("\n%s %d: %d trade(s), net %s\n",
		month, year, totals.TradeCount, formatSigned(totals.NetPL, cfg.Display.Currency))
	return nil
}

const cellWidth = 8

// renderMonth writes the grid two lines per week: day numbers, then the
// net result of each day that has trades.
func renderMonth(w io.Writer, cells []calendar.Cell, year int, month time.Month) {
	title := fmt.Sprintf("%s %d", month, year)
	pad := (cellWidth*7 - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), title)

	for _, name := range calendar.DayNames {
		fmt.Fprintf(w, "%*s", cellWidth, name)
	}
	fmt.Fprintln(w)

	for start := 0; start < len(cells); start += 7 {
		week := cells[start:min(start+7, len(cells))]

		for _, c := range week {
			switch {
			case c.Empty():
				fmt.Fprintf(w, "%*s", cellWidth, "")
			case c.Today:
				fmt.Fprintf(w, "%*s", cellWidth, fmt.Sprintf("%d*", c.Day))
			default:
				fmt.Fprintf(w, "%*d", cellWidth, c.Day)
			}
		}
		fmt.Fprintln(w)

		for _, c := range week {
			if c.Empty() || c.Count == 0 {
				fmt.Fprintf(w, "%*s", cellWidth, "")
				continue
			}
			// Day nets are rounded to whole units to fit the cell.
			net := c.Net.Round(0).StringFixed(0)
			if c.Net.IsPositive() {
				net = "+" + net
			}
			fmt.Fprintf(w, "%*s", cellWidth, net)
		}
		fmt.Fprintln(w)
	}
}
