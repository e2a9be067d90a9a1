package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <trade-id>",
	Short: "Delete a journaled trade",
	Long: `Remove a trade from the journal. Deleting an ID that does not
exist is not an error; the command is idempotent.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	store, j, _, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	if _, ok := store.Get(args[0]); !ok {
		fmt.Printf("Trade %s not found, nothing to delete\n", args[0])
		return nil
	}

	store.Delete(args[0])
	fmt.Printf("✓ Deleted trade %s\n", args[0])
	return nil
}
