package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pnl/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the journal to CSV",
	Long: `Write every journaled trade as CSV, in ledger order. Writes to
stdout when no file is given.

Examples:
  pnl export
  pnl export trades.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, j, _, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	out := os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := journal.WriteCSV(out, store.List()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if len(args) == 1 {
		fmt.Printf("✓ Exported %d trade(s) to %s\n", store.Len(), args[0])
	}
	return nil
}
