package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pnl/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate journal statistics",
	Long: `Print whole-journal statistics: total profit, total loss, net
P&L, and trade count.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	store, j, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer j.Close()

	t := stats.Compute(store.List())
	code := cfg.Display.Currency

	fmt.Printf("Total Profit: %s\n", formatMoney(t.TotalProfit, code))
	fmt.Printf("Total Loss:   %s\n", formatMoney(t.TotalLoss, code))
	fmt.Printf("Net P&L:      %s\n", formatSigned(t.NetPL, code))
	fmt.Printf("Trades:       %d\n", t.TradeCount)
	return nil
}
