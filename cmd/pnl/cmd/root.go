package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/pnl/config"
	"github.com/rustyeddy/pnl/journal"
	"github.com/rustyeddy/pnl/ledger"
)

var rootCmd = &cobra.Command{
	Use:   "pnl",
	Short: "A personal trading profit/loss journal",
	Long: `pnl is a local trading journal: log dated profit and loss entries,
browse them on a monthly calendar, and track aggregate statistics.

It provides commands for:
  - Logging trades with an amount, date, time and optional note
  - Editing and deleting journaled trades
  - Listing the trades of a single day with its net P&L
  - Rendering a monthly calendar annotated with daily results
  - Aggregate stats: total profit, total loss, net P&L, trade count
  - Exporting the ledger to CSV

Trades are stored locally (JSON file or SQLite database); there is no
server and no account.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgFile string
	dbPath  string
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pnl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "ledger path, overriding the configured storage path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log adapter warnings to stderr")
}

// newLogger builds the CLI logger: silent unless --verbose is set.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// loadConfig resolves the active configuration: the --config file when
// given, an existing default-location file otherwise, built-in defaults
// as the fallback.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	if path := defaultConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return config.LoadFromFile(path)
		}
	}
	return config.Default(), nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pnl", "config.yaml")
}

// resolveConfig loads the active configuration and applies flag
// overrides: --db replaces the storage path for this invocation, storage
// type stays as configured.
func resolveConfig() (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	return cfg, nil
}

// openStore opens the configured journal backend and replays it into a
// store. The caller must Close the returned journal.
func openStore() (*ledger.Store, journal.Journal, *config.Config, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := newLogger()
	j, err := journal.Open(cfg.Storage.Type, cfg.Storage.Path, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open journal: %w", err)
	}

	return ledger.NewStore(j, log), j, cfg, nil
}

// formatMoney renders an exact decimal amount as currency, rounding to
// the currency's minor unit only here at the display boundary. The
// minor-unit scale comes from the currency itself: JPY has none, KWD
// has three.
func formatMoney(d decimal.Decimal, code string) string {
	fraction := 2
	if c := money.GetCurrency(code); c != nil {
		fraction = c.Fraction
	}
	minor := d.Round(int32(fraction)).Shift(int32(fraction)).IntPart()
	return money.New(minor, code).Display()
}

// formatSigned is formatMoney with an explicit leading + for gains.
func formatSigned(d decimal.Decimal, code string) string {
	if d.IsPositive() {
		return "+" + formatMoney(d, code)
	}
	return formatMoney(d, code)
}
