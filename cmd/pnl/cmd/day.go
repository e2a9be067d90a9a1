package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pnl/ledger"
	"github.com/rustyeddy/pnl/stats"
)

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "List the trades of a single day",
	Long: `Show every trade journaled on a day, in ledger order, with the
day's net P&L. Defaults to today.

Examples:
  pnl day
  pnl day 2024-03-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	date := ledger.DateOf(time.Now())
	if len(args) == 1 {
		var err error
		if date, err = ledger.ParseDate(args[0]); err != nil {
			return err
		}
	}

	store, j, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	trades := store.ByDate(date)
	if len(trades) == 0 {
		fmt.Printf("No trades on %s\n", date)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tAMOUNT\tNOTE\tID")
	for _, t := range trades {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Time, t.Type, formatMoney(t.Amount, cfg.Display.Currency), t.Note, t.ID)
	}
	w.Flush()

	net := stats.DayNet(trades, date)
	fmt.Printf("\n%s: %d trade(s), net %s\n",
		date, len(trades), formatSigned(net, cfg.Display.Currency))
	return nil
}
