package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Type discriminates the sign of a trade's contribution to P&L.
type Type string

const (
	Profit Type = "profit"
	Loss   Type = "loss"
)

// Valid reports whether t is a known trade type.
func (t Type) Valid() bool { return t == Profit || t == Loss }

// Trade is one journaled profit or loss entry. Records are immutable by
// replacement: Update swaps the whole record, never a single field.
type Trade struct {
	ID     string          `json:"id"`
	Date   Date            `json:"date"`
	Time   Clock           `json:"time"`
	Amount decimal.Decimal `json:"amount"`
	Type   Type            `json:"type"`
	Note   string          `json:"note,omitempty"`
}

// Signed returns the trade's signed contribution: +Amount for a profit,
// -Amount for a loss.
func (t Trade) Signed() decimal.Decimal {
	if t.Type == Loss {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Draft is a trade candidate before the store assigns it an ID.
type Draft struct {
	Date   Date
	Time   Clock
	Amount decimal.Decimal
	Type   Type
	Note   string
}

// validate applies the invariants a record must satisfy to enter the
// ledger. The same checks gate Add, Update, and replay on load.
func (d Draft) validate() error {
	if !d.Amount.IsPositive() {
		return &ValidationError{Reason: "amount must be positive"}
	}
	if !d.Type.Valid() {
		return &ValidationError{Reason: "type must be profit or loss"}
	}
	if d.Date.IsZero() {
		return &ValidationError{Reason: "date is required"}
	}
	return nil
}

// normalizeNote trims a note; a blank note is stored as absent.
func normalizeNote(s string) string { return strings.TrimSpace(s) }
