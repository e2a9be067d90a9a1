package journal

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='trades'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "trades", name)
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	in := sampleTrades()
	require.NoError(t, j.Save(in))

	out, err := j.Load()
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Date, out[i].Date)
		assert.Equal(t, in[i].Time, out[i].Time)
		assert.True(t, in[i].Amount.Equal(out[i].Amount), "amount %s vs %s", in[i].Amount, out[i].Amount)
		assert.Equal(t, in[i].Type, out[i].Type)
		assert.Equal(t, in[i].Note, out[i].Note)
	}
}

func TestSQLiteSaveReplacesSnapshot(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	in := sampleTrades()
	require.NoError(t, j.Save(in))
	require.NoError(t, j.Save(in[:1]))

	out, err := j.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].ID, out[0].ID)
}

func TestSQLiteEmptyDatabaseLoadsEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	out, err := j.Load()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSQLiteSkipsUnreadableRows(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	require.NoError(t, j.Save(sampleTrades()[:1]))

	_, err := j.db.Exec(`
		INSERT INTO trades (id, date, time, amount, type, note)
		VALUES ('broken', 'someday', '09:00', 'lots', 'profit', '')`)
	require.NoError(t, err)

	out, err := j.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "t1", out[0].ID)
}

func TestSQLiteOrderPreserved(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	in := sampleTrades()
	// Reverse of ULID-ish ordering: order must come from the ledger,
	// not from sorting IDs.
	in[0], in[2] = in[2], in[0]
	require.NoError(t, j.Save(in))

	out, err := j.Load()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, in[0].ID, out[0].ID)
	assert.Equal(t, in[2].ID, out[2].ID)
}
