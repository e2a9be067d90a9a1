// Package journal holds the durable backends for the trade ledger. Each
// backend persists the full snapshot the store hands it and replays it on
// startup; the store itself never touches disk.
package journal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rustyeddy/pnl/ledger"
)

// Journal is a ledger.Persister that owns a releasable resource.
type Journal interface {
	ledger.Persister
	Close() error
}

// Open builds the backend named by kind: "json" for a single JSON file,
// "sqlite" for a SQLite database at path.
func Open(kind, path string, log *zap.Logger) (Journal, error) {
	switch kind {
	case "json":
		return NewJSONFile(path, log), nil
	case "sqlite":
		return NewSQLite(path, log)
	default:
		return nil, fmt.Errorf("unknown journal type %q", kind)
	}
}
