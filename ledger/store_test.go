package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Persister that remembers every snapshot it was handed.
type recorder struct {
	seeded  []Trade
	loadErr error
	saved   [][]Trade
}

func (r *recorder) Load() ([]Trade, error) { return r.seeded, r.loadErr }

func (r *recorder) Save(trades []Trade) error {
	r.saved = append(r.saved, trades)
	return nil
}

func draft(amount string, kind Type) Draft {
	return Draft{
		Date:   NewDate(2024, time.March, 1),
		Time:   NewClock(9, 30),
		Amount: decimal.RequireFromString(amount),
		Type:   kind,
	}
}

func TestStoreAdd(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := NewStore(rec, nil)

	tr, err := s.Add(draft("100", Profit))
	require.NoError(t, err)
	assert.NotEmpty(t, tr.ID)
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(tr.ID)
	assert.True(t, ok)
	assert.Equal(t, tr, got)

	// Every successful mutation pushes a snapshot.
	require.Len(t, rec.saved, 1)
	assert.Equal(t, []Trade{tr}, rec.saved[0])
}

func TestStoreAddRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := NewStore(rec, nil)

	for _, amount := range []string{"0", "-5"} {
		_, err := s.Add(draft(amount, Profit))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "amount %s", amount)
		assert.Equal(t, 0, s.Len())
	}
	assert.Empty(t, rec.saved, "rejected adds must not persist")
}

func TestStoreAddRejectsUnknownType(t *testing.T) {
	t.Parallel()

	s := NewStore(&recorder{}, nil)
	_, err := s.Add(draft("10", Type("breakeven")))

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestStoreAddAssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	s := NewStore(&recorder{}, nil)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tr, err := s.Add(draft("1", Profit))
		require.NoError(t, err)
		assert.False(t, seen[tr.ID], "duplicate id %s", tr.ID)
		seen[tr.ID] = true
	}
}

func TestStoreAddTrimsNote(t *testing.T) {
	t.Parallel()

	s := NewStore(&recorder{}, nil)

	d := draft("10", Profit)
	d.Note = "  stopped out  "
	tr, err := s.Add(d)
	require.NoError(t, err)
	assert.Equal(t, "stopped out", tr.Note)

	d.Note = "   "
	tr, err = s.Add(d)
	require.NoError(t, err)
	assert.Empty(t, tr.Note, "blank note is stored as absent")
}

func TestStoreUpdate(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := NewStore(rec, nil)

	tr, err := s.Add(draft("100", Profit))
	require.NoError(t, err)

	tr.Amount = decimal.RequireFromString("80")
	tr.Type = Loss
	tr.Note = "revised"
	require.NoError(t, s.Update(tr))

	got, ok := s.Get(tr.ID)
	require.True(t, ok)
	assert.Equal(t, Loss, got.Type)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("80")))
	assert.Equal(t, "revised", got.Note)
	assert.Equal(t, 1, s.Len())
	assert.Len(t, rec.saved, 2)
}

func TestStoreUpdateUnknownID(t *testing.T) {
	t.Parallel()

	s := NewStore(&recorder{}, nil)
	before, err := s.Add(draft("100", Profit))
	require.NoError(t, err)

	missing := Trade{
		ID:     "no-such-id",
		Date:   NewDate(2024, time.March, 1),
		Time:   NewClock(10, 0),
		Amount: decimal.RequireFromString("5"),
		Type:   Profit,
	}

	var nferr *NotFoundError
	require.ErrorAs(t, s.Update(missing), &nferr)
	assert.Equal(t, "no-such-id", nferr.ID)

	// No partial mutation.
	assert.Equal(t, []Trade{before}, s.List())
}

func TestStoreUpdateRejectsInvalidReplacement(t *testing.T) {
	t.Parallel()

	s := NewStore(&recorder{}, nil)
	tr, err := s.Add(draft("100", Profit))
	require.NoError(t, err)

	bad := tr
	bad.Amount = decimal.Zero

	var verr *ValidationError
	require.ErrorAs(t, s.Update(bad), &verr)

	got, _ := s.Get(tr.ID)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("100")))
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := NewStore(rec, nil)

	tr, err := s.Add(draft("100", Profit))
	require.NoError(t, err)

	s.Delete(tr.ID)
	assert.Equal(t, 0, s.Len())
	assert.Len(t, rec.saved, 2)

	// Idempotent: deleting again is a no-op and does not re-save.
	s.Delete(tr.ID)
	assert.Equal(t, 0, s.Len())
	assert.Len(t, rec.saved, 2)
}

func TestStoreListReturnsSnapshot(t *testing.T) {
	t.Parallel()

	s := NewStore(&recorder{}, nil)
	first, err := s.Add(draft("100", Profit))
	require.NoError(t, err)

	list := s.List()
	list[0].Note = "mutated by caller"

	got, _ := s.Get(first.ID)
	assert.Empty(t, got.Note, "callers must not reach internal state")
}

func TestStoreByDate(t *testing.T) {
	t.Parallel()

	s := NewStore(&recorder{}, nil)
	day1 := NewDate(2024, time.March, 1)
	day2 := NewDate(2024, time.March, 2)

	a, _ := s.Add(Draft{Date: day1, Amount: decimal.RequireFromString("100"), Type: Profit})
	_, _ = s.Add(Draft{Date: day2, Amount: decimal.RequireFromString("25"), Type: Profit})
	b, _ := s.Add(Draft{Date: day1, Amount: decimal.RequireFromString("40"), Type: Loss})

	got := s.ByDate(day1)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID, "ledger order preserved")
	assert.Equal(t, b.ID, got[1].ID)
	assert.Empty(t, s.ByDate(NewDate(2024, time.March, 3)))
}

func TestNewStoreReplaysLoad(t *testing.T) {
	t.Parallel()

	day := NewDate(2024, time.March, 1)
	valid := Trade{ID: "a", Date: day, Amount: decimal.RequireFromString("100"), Type: Profit}
	dup := Trade{ID: "a", Date: day, Amount: decimal.RequireFromString("1"), Type: Profit}
	noID := Trade{Date: day, Amount: decimal.RequireFromString("1"), Type: Profit}
	badAmount := Trade{ID: "b", Date: day, Amount: decimal.Zero, Type: Profit}
	badType := Trade{ID: "c", Date: day, Amount: decimal.RequireFromString("1"), Type: Type("maybe")}
	kept := Trade{ID: "d", Date: day, Amount: decimal.RequireFromString("40"), Type: Loss, Note: "  pad  "}

	rec := &recorder{seeded: []Trade{valid, dup, noID, badAmount, badType, kept}}
	s := NewStore(rec, nil)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "d", list[1].ID)
	assert.Equal(t, "pad", list[1].Note, "notes are normalized on replay")
}

func TestNewStoreToleratesLoadFailure(t *testing.T) {
	t.Parallel()

	rec := &recorder{loadErr: errors.New("disk gone")}
	s := NewStore(rec, nil)
	assert.Equal(t, 0, s.Len())

	// The store still works and persists after a failed load.
	_, err := s.Add(draft("10", Profit))
	require.NoError(t, err)
	assert.Len(t, rec.saved, 1)
}

func TestNewStoreNilPersister(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, nil)
	_, err := s.Add(draft("10", Profit))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}
