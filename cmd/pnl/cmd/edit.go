package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/pnl/ledger"
)

var editCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Edit a journaled trade",
	Long: `Replace fields of an existing trade. Only the given flags change;
the trade ID never does.

Examples:
  pnl edit 01J3ZK... --amount 80
  pnl edit 01J3ZK... --type loss --note "fat finger"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editAmount string
	editDate   string
	editTime   string
	editType   string
	editNote   string
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editAmount, "amount", "", "new amount (positive decimal)")
	editCmd.Flags().StringVarP(&editDate, "date", "d", "", "new date (YYYY-MM-DD)")
	editCmd.Flags().StringVarP(&editTime, "time", "t", "", "new time (HH:MM)")
	editCmd.Flags().StringVar(&editType, "type", "", "new type (profit or loss)")
	editCmd.Flags().StringVarP(&editNote, "note", "n", "", "new note (empty clears it)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, j, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	t, ok := store.Get(args[0])
	if !ok {
		return &ledger.NotFoundError{ID: args[0]}
	}

	if editAmount != "" {
		if t.Amount, err = decimal.NewFromString(editAmount); err != nil {
			return fmt.Errorf("parse amount %q: %w", editAmount, err)
		}
	}
	if editDate != "" {
		if t.Date, err = ledger.ParseDate(editDate); err != nil {
			return err
		}
	}
	if editTime != "" {
		if t.Time, err = ledger.ParseClock(editTime); err != nil {
			return err
		}
	}
	if editType != "" {
		t.Type = ledger.Type(editType)
	}
	if cmd.Flags().Changed("note") {
		t.Note = editNote
	}

	if err := store.Update(t); err != nil {
		return err
	}

	fmt.Printf("✓ Updated %s: %s %s on %s %s\n",
		t.ID, t.Type, formatMoney(t.Amount, cfg.Display.Currency), t.Date, t.Time)
	return nil
}
