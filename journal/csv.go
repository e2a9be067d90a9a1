package journal

import (
	"encoding/csv"
	"io"

	"github.com/rustyeddy/pnl/ledger"
)

// WriteCSV dumps the trade sequence to w, header first, in ledger order.
// Export only: the CSV form is for spreadsheets, not a load path.
func WriteCSV(w io.Writer, trades []ledger.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "date", "time", "amount", "type", "note"}); err != nil {
		return err
	}
	for _, t := range trades {
		err := cw.Write([]string{
			t.ID,
			t.Date.String(),
			t.Time.String(),
			t.Amount.String(),
			string(t.Type),
			t.Note,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
