package journal

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTrades()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"id", "date", "time", "amount", "type", "note"}, rows[0])
	assert.Equal(t, []string{"t1", "2024-03-01", "09:30", "100.5", "profit", "breakout"}, rows[1])
	assert.Equal(t, []string{"t2", "2024-03-01", "14:05", "40", "loss", ""}, rows[2])
	assert.Equal(t, []string{"t3", "2024-03-02", "10:00", "25", "profit", ""}, rows[3])
}

func TestWriteCSVEmptyLedger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
