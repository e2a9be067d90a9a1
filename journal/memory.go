package journal

import "github.com/rustyeddy/pnl/ledger"

// Memory keeps the snapshot in process. Used by tests and ephemeral runs
// where nothing should touch disk.
type Memory struct {
	trades []ledger.Trade
}

// NewMemory returns a Memory backend seeded with the given trades.
func NewMemory(trades ...ledger.Trade) *Memory {
	m := &Memory{}
	m.trades = append(m.trades, trades...)
	return m
}

func (m *Memory) Load() ([]ledger.Trade, error) {
	out := make([]ledger.Trade, len(m.trades))
	copy(out, m.trades)
	return out, nil
}

func (m *Memory) Save(trades []ledger.Trade) error {
	m.trades = make([]ledger.Trade, len(trades))
	copy(m.trades, trades)
	return nil
}

func (m *Memory) Close() error { return nil }
