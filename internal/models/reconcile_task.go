package models

import (
	"time"

	"github.com/google/uuid"
)

// Source kinds a reconcile task can point at.
const (
	SourceThreadPurchase   = "THREAD_PURCHASE"
	SourceDyeingProcess    = "DYEING_PROCESS"
	SourceFabricProduction = "FABRIC_PRODUCTION"
)

// Reconcile task statuses. PENDING tasks are retried by the background
// worker until they apply or exhaust their attempts.
const (
	ReconcileStatusPending = "PENDING"
	ReconcileStatusDone    = "DONE"
	ReconcileStatusFailed  = "FAILED"
)

// ReconcileTask is an outbox row for a deferred inventory side effect. It is
// inserted in the same transaction as the primary domain write, so a crash
// between the primary commit and the inventory mutation leaves a retryable
// record instead of a silently lost update.
type ReconcileTask struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	SourceKind string     `json:"source_kind" db:"source_kind"`
	SourceID   uuid.UUID  `json:"source_id" db:"source_id"`
	Status     string     `json:"status" db:"status"`
	Attempts   int        `json:"attempts" db:"attempts"`
	LastError  *string    `json:"last_error" db:"last_error"`
	AppliedAt  *time.Time `json:"applied_at" db:"applied_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
