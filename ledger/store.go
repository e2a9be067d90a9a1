package ledger

import (
	"sync"

	"go.uber.org/zap"

	"github.com/rustyeddy/pnl/pkg/id"
)

// Persister stores the full ledger snapshot durably. The store pushes the
// whole sequence on every mutation and replays Load once at startup;
// retry and IO policy live behind this interface, never in the store.
type Persister interface {
	Load() ([]Trade, error)
	Save([]Trade) error
}

// Store owns the canonical trade ledger. All mutations are serialized
// behind one mutex; reads hand out copies so callers never alias the
// internal slice.
type Store struct {
	mu      sync.RWMutex
	trades  []Trade
	persist Persister
	log     *zap.Logger
}

// NewStore builds a store over the given persister, replaying the last
// saved ledger. Malformed or duplicate records are dropped with a
// warning rather than failing the load; a load error starts an empty
// ledger. A nil logger is replaced with a no-op one.
func NewStore(p Persister, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{persist: p, log: log}
	if p == nil {
		return s
	}

	loaded, err := p.Load()
	if err != nil {
		log.Warn("ledger load failed, starting empty", zap.Error(err))
		return s
	}

	seen := make(map[string]bool, len(loaded))
	for _, t := range loaded {
		if t.ID == "" || seen[t.ID] {
			log.Warn("dropping trade with missing or duplicate id", zap.String("id", t.ID))
			continue
		}
		draft := Draft{Date: t.Date, Time: t.Time, Amount: t.Amount, Type: t.Type}
		if err := draft.validate(); err != nil {
			log.Warn("dropping invalid trade", zap.String("id", t.ID), zap.Error(err))
			continue
		}
		t.Note = normalizeNote(t.Note)
		seen[t.ID] = true
		s.trades = append(s.trades, t)
	}
	return s
}

// Add validates the draft, assigns a fresh ID, and appends the record to
// the ledger. The ledger is untouched when validation fails.
func (s *Store) Add(d Draft) (Trade, error) {
	if err := d.validate(); err != nil {
		return Trade{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := Trade{
		ID:     id.New(),
		Date:   d.Date,
		Time:   d.Time,
		Amount: d.Amount,
		Type:   d.Type,
		Note:   normalizeNote(d.Note),
	}
	s.trades = append(s.trades, t)
	s.saveLocked()
	return t, nil
}

// Update replaces the record carrying t.ID wholesale. The ID itself never
// changes. Returns NotFoundError when the ID is absent and
// ValidationError when the replacement violates an invariant; either way
// the ledger is left as it was.
func (s *Store) Update(t Trade) error {
	draft := Draft{Date: t.Date, Time: t.Time, Amount: t.Amount, Type: t.Type}
	if err := draft.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trades {
		if s.trades[i].ID == t.ID {
			t.Note = normalizeNote(t.Note)
			s.trades[i] = t
			s.saveLocked()
			return nil
		}
	}
	return &NotFoundError{ID: t.ID}
}

// Delete removes the record with the given ID. Deleting an absent ID is a
// no-op: deletion is idempotent.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trades {
		if s.trades[i].ID == id {
			s.trades = append(s.trades[:i], s.trades[i+1:]...)
			s.saveLocked()
			return
		}
	}
}

// Get returns the record with the given ID, if present.
func (s *Store) Get(id string) (Trade, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.trades {
		if t.ID == id {
			return t, true
		}
	}
	return Trade{}, false
}

// List returns a snapshot of the full ledger in insertion order.
func (s *Store) List() []Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// ByDate returns the trades on the given day, in ledger order.
func (s *Store) ByDate(d Date) []Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Trade
	for _, t := range s.trades {
		if t.Date == d {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of records in the ledger.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}

// saveLocked pushes the current snapshot to the persister. A save failure
// is logged but never rolls back the in-memory ledger; durable-write
// retries belong to the persister.
func (s *Store) saveLocked() {
	if s.persist == nil {
		return
	}
	snapshot := make([]Trade, len(s.trades))
	copy(snapshot, s.trades)
	if err := s.persist.Save(snapshot); err != nil {
		s.log.Error("ledger save failed", zap.Error(err), zap.Int("trades", len(snapshot)))
	}
}
