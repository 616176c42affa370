package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

// Reconciler is the consolidated inventory reconciliation flow: detector,
// resolver and ledger writer behind one operation. Every call runs in a
// single database transaction, so the item mutation, the ledger line and the
// source's inventory-status flip commit or roll back together.
type Reconciler struct {
	txRunner    repositories.TxRunner
	tasks       repositories.ReconcileTaskRepository
	purchases   repositories.ThreadPurchaseRepository
	dyeing      repositories.DyeingProcessRepository
	fabric      repositories.FabricProductionRepository
	resolver    Resolver
	writer      *LedgerWriter
	maxAttempts int
	log         zerolog.Logger
}

func NewReconciler(
	txRunner repositories.TxRunner,
	tasks repositories.ReconcileTaskRepository,
	purchases repositories.ThreadPurchaseRepository,
	dyeing repositories.DyeingProcessRepository,
	fabric repositories.FabricProductionRepository,
	markups Markups,
	maxAttempts int,
	log zerolog.Logger,
) *Reconciler {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Reconciler{
		txRunner:    txRunner,
		tasks:       tasks,
		purchases:   purchases,
		dyeing:      dyeing,
		fabric:      fabric,
		writer:      NewLedgerWriter(markups),
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// NewTask builds the outbox row recorded alongside a primary domain write.
func NewTask(sourceKind string, sourceID uuid.UUID) *models.ReconcileTask {
	return &models.ReconcileTask{
		ID:         uuid.New(),
		SourceKind: sourceKind,
		SourceID:   sourceID,
		Status:     models.ReconcileStatusPending,
	}
}

// Apply runs the full reconciliation for one source event. It re-checks the
// duplicate guard inside the transaction, so applying the same completion
// twice yields ErrAlreadyApplied instead of a second ledger line.
func (r *Reconciler) Apply(ctx context.Context, ev SourceEvent) (*models.InventoryTransaction, error) {
	if !ev.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: source event quantity must be positive", models.ErrInvalidInput)
	}

	var txn *models.InventoryTransaction
	err := r.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		exists, err := repos.Transactions.ExistsForSource(ctx, ev.Kind, ev.ID)
		if err != nil {
			return err
		}
		if exists {
			return models.ErrAlreadyApplied
		}

		item, isNew, err := r.resolver.Resolve(ctx, repos, ev)
		if err != nil {
			return err
		}
		if !isNew {
			// Re-read under lock; the resolver's match ran without one.
			item, err = repos.Inventory.GetForUpdate(ctx, item.ID)
			if err != nil {
				return err
			}
		}

		entry := LedgerEntry{
			Item:      item,
			ItemIsNew: isNew,
			Type:      ev.TxnType,
			Quantity:  ev.Quantity,
			UnitCost:  ev.UnitCost,
		}
		switch ev.Kind {
		case models.SourceThreadPurchase:
			entry.ThreadPurchaseID = &ev.ID
		case models.SourceDyeingProcess:
			entry.DyeingProcessID = &ev.ID
		case models.SourceFabricProduction:
			entry.FabricProductionID = &ev.ID
		default:
			return fmt.Errorf("%w: unknown source kind %q", models.ErrInvalidInput, ev.Kind)
		}

		txn, err = r.writer.Apply(ctx, repos, entry)
		if err != nil {
			return err
		}

		return r.setSourceStatus(ctx, repos, ev.Kind, ev.ID)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *Reconciler) setSourceStatus(ctx context.Context, repos repositories.TxRepos, kind string, id uuid.UUID) error {
	switch kind {
	case models.SourceThreadPurchase:
		return repos.ThreadPurchases.SetInventoryStatus(ctx, id, models.InventoryStatusAdded)
	case models.SourceDyeingProcess:
		return repos.DyeingProcesses.SetInventoryStatus(ctx, id, models.InventoryStatusAdded)
	case models.SourceFabricProduction:
		return repos.FabricProductions.SetInventoryStatus(ctx, id, models.InventoryStatusAdded)
	}
	return fmt.Errorf("%w: unknown source kind %q", models.ErrInvalidInput, kind)
}

// ApplyTask executes one outbox task and records the outcome. A duplicate
// application counts as done, which makes retries harmless.
func (r *Reconciler) ApplyTask(ctx context.Context, task *models.ReconcileTask) error {
	ev, err := r.loadEvent(ctx, task)
	if err == nil {
		_, err = r.Apply(ctx, ev)
	}

	if err == nil || errors.Is(err, models.ErrAlreadyApplied) {
		if markErr := r.tasks.MarkDone(ctx, task.ID); markErr != nil {
			return markErr
		}
		return nil
	}

	failed := task.Attempts+1 >= r.maxAttempts
	r.log.Warn().
		Err(err).
		Str("source_kind", task.SourceKind).
		Str("source_id", task.SourceID.String()).
		Int("attempts", task.Attempts+1).
		Bool("parked", failed).
		Msg("inventory reconciliation attempt failed")
	if markErr := r.tasks.MarkAttempt(ctx, task.ID, err.Error(), failed); markErr != nil {
		return markErr
	}
	return err
}

// RetryPending drains a batch of pending outbox tasks. Called by the
// background worker; errors per task are already recorded on the task row.
func (r *Reconciler) RetryPending(ctx context.Context, batchSize int) error {
	tasks, err := r.tasks.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if err := r.ApplyTask(ctx, task); err != nil {
			continue // recorded on the task, keep draining
		}
	}
	return nil
}

// loadEvent re-reads the source entity so retries always reconcile from
// current state rather than a stale payload.
func (r *Reconciler) loadEvent(ctx context.Context, task *models.ReconcileTask) (SourceEvent, error) {
	switch task.SourceKind {
	case models.SourceThreadPurchase:
		purchase, err := r.purchases.GetByID(ctx, task.SourceID)
		if err != nil {
			return SourceEvent{}, err
		}
		return EventFromThreadPurchase(purchase), nil
	case models.SourceDyeingProcess:
		process, err := r.dyeing.GetByID(ctx, task.SourceID)
		if err != nil {
			return SourceEvent{}, err
		}
		purchase, err := r.purchases.GetByID(ctx, process.ThreadPurchaseID)
		if err != nil {
			return SourceEvent{}, err
		}
		return EventFromDyeingProcess(process, purchase), nil
	case models.SourceFabricProduction:
		production, err := r.fabric.GetByID(ctx, task.SourceID)
		if err != nil {
			return SourceEvent{}, err
		}
		return EventFromFabricProduction(production), nil
	}
	return SourceEvent{}, fmt.Errorf("%w: unknown source kind %q", models.ErrInvalidInput, task.SourceKind)
}
