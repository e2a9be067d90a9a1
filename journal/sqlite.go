package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rustyeddy/pnl/ledger"
)

// SQLite persists the ledger in one trades table. Amounts are stored as
// decimal strings so no precision is lost through the database round
// trip; the seq column preserves ledger order across save and load.
type SQLite struct {
	db  *sql.DB
	log *zap.Logger
}

// NewSQLite opens (creating if needed) a SQLite ledger at path.
func NewSQLite(path string, log *zap.Logger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db, log: log}, nil
}

// Load returns the saved trade sequence in ledger order. Rows that fail
// to decode are skipped with a warning.
func (j *SQLite) Load() ([]ledger.Trade, error) {
	rows, err := j.db.Query(`
		SELECT id, date, time, amount, type, note
		FROM trades
		ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var out []ledger.Trade
	for rows.Next() {
		var id, date, clock, amount, kind, note string
		if err := rows.Scan(&id, &date, &clock, &amount, &kind, &note); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}

		t, err := decodeRow(id, date, clock, amount, kind, note)
		if err != nil {
			j.log.Warn("skipping unreadable trade row",
				zap.String("id", id), zap.Error(err))
			continue
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save replaces the stored snapshot with the given sequence in one
// transaction: either the whole new ledger lands or the old one stays.
func (j *SQLite) Save(trades []ledger.Trade) error {
	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trades`); err != nil {
		return fmt.Errorf("clear trades: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trades (id, date, time, amount, type, note)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trades {
		_, err := stmt.Exec(
			t.ID,
			t.Date.String(),
			t.Time.String(),
			t.Amount.String(),
			string(t.Type),
			t.Note,
		)
		if err != nil {
			return fmt.Errorf("insert trade %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

// Close releases the database handle.
func (j *SQLite) Close() error { return j.db.Close() }

func decodeRow(id, date, clock, amount, kind, note string) (ledger.Trade, error) {
	d, err := ledger.ParseDate(date)
	if err != nil {
		return ledger.Trade{}, err
	}
	c, err := ledger.ParseClock(clock)
	if err != nil {
		return ledger.Trade{}, err
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return ledger.Trade{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return ledger.Trade{
		ID:     id,
		Date:   d,
		Time:   c,
		Amount: amt,
		Type:   ledger.Type(kind),
		Note:   note,
	}, nil
}
