package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/pnl/ledger"
)

var addCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Log a trade",
	Long: `Log a profit or loss entry in the journal.

The amount is a positive decimal; use --loss to record it as a loss.
Date and time default to now.

Examples:
  pnl add 125.50
  pnl add 40 --loss --note "stopped out early"
  pnl add 25 --date 2024-03-02 --time 09:45`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addLoss bool
	addDate string
	addTime string
	addNote string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().BoolVar(&addLoss, "loss", false, "record the amount as a loss")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "trade date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&addTime, "time", "t", "", "trade time (HH:MM, default now)")
	addCmd.Flags().StringVarP(&addNote, "note", "n", "", "optional note")
}

func runAdd(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", args[0], err)
	}

	// Defaults are resolved here at the CLI boundary; core code never
	// reads the clock.
	now := time.Now()
	date := ledger.DateOf(now)
	if addDate != "" {
		if date, err = ledger.ParseDate(addDate); err != nil {
			return err
		}
	}
	clock := ledger.ClockOf(now)
	if addTime != "" {
		if clock, err = ledger.ParseClock(addTime); err != nil {
			return err
		}
	}

	kind := ledger.Profit
	if addLoss {
		kind = ledger.Loss
	}

	store, j, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	t, err := store.Add(ledger.Draft{
		Date:   date,
		Time:   clock,
		Amount: amount,
		Type:   kind,
		Note:   addNote,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Logged %s %s on %s %s  [%s]\n",
		t.Type, formatMoney(t.Amount, cfg.Display.Currency), t.Date, t.Time, t.ID)
	return nil
}
