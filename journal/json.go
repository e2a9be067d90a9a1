package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rustyeddy/pnl/ledger"
)

func init() {
	// Amounts are written as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// JSONFile persists the ledger as one JSON array of trade records.
// Writes are atomic: the snapshot lands in a temp file that is renamed
// over the target, so a crash mid-save never truncates the ledger.
type JSONFile struct {
	path string
	log  *zap.Logger
}

// NewJSONFile returns a JSONFile backend at the given path. The file need
// not exist yet; a missing file loads as an empty ledger.
func NewJSONFile(path string, log *zap.Logger) *JSONFile {
	if log == nil {
		log = zap.NewNop()
	}
	return &JSONFile{path: path, log: log}
}

// Load reads the saved trade sequence. Records that fail to decode are
// skipped with a warning; only an unreadable or unparseable file is an
// error.
func (j *JSONFile) Load() ([]ledger.Trade, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ledger: %w", err)
	}

	var out []ledger.Trade
	for i, msg := range raw {
		var t ledger.Trade
		if err := json.Unmarshal(msg, &t); err != nil {
			j.log.Warn("skipping unreadable trade record",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Save writes the full trade sequence, replacing the previous snapshot.
func (j *JSONFile) Save(trades []ledger.Trade) error {
	if trades == nil {
		trades = []ledger.Trade{}
	}
	data, err := json.MarshalIndent(trades, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create ledger dir: %w", err)
		}
	}

	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := os.Rename(tmp, j.path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}

// Close is a no-op; the file is never held open between saves.
func (j *JSONFile) Close() error { return nil }
