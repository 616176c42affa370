package models

import "errors"

// Domain errors shared across services and handlers. Handlers map these to
// HTTP status codes; anything else surfaces as a 500.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient inventory quantity")
	ErrHasTransactions   = errors.New("inventory item has ledger transactions")
	ErrHasDependents     = errors.New("record is referenced by other records")
	ErrAlreadyApplied    = errors.New("source event already added to inventory")
)
