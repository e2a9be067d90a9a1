package ledger

import "fmt"

// ValidationError rejects a trade that violates a ledger invariant.
// Nothing is written to the ledger when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid trade: " + e.Reason }

// NotFoundError reports an update against an ID the ledger does not hold.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("trade %q not found", e.ID) }
