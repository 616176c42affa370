package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type ReconcileTaskRepository interface {
	Create(ctx context.Context, task *models.ReconcileTask) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReconcileTask, error)
	ListPending(ctx context.Context, limit int) ([]*models.ReconcileTask, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.ReconcileTask, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkAttempt(ctx context.Context, id uuid.UUID, attemptErr string, failed bool) error
	Reset(ctx context.Context, id uuid.UUID) error
}

type reconcileTaskRepo struct {
	db DB
}

func NewReconcileTaskRepository(db DB) ReconcileTaskRepository {
	return &reconcileTaskRepo{db: db}
}

const reconcileTaskColumns = `id, source_kind, source_id, status, attempts, last_error, applied_at, created_at, updated_at`

func scanReconcileTask(row interface{ Scan(...any) error }) (*models.ReconcileTask, error) {
	task := &models.ReconcileTask{}
	err := row.Scan(&task.ID, &task.SourceKind, &task.SourceID, &task.Status, &task.Attempts, &task.LastError, &task.AppliedAt, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return task, nil
}

func (r *reconcileTaskRepo) Create(ctx context.Context, task *models.ReconcileTask) error {
	query := `
		INSERT INTO reconcile_tasks (id, source_kind, source_id, status, attempts, last_error, applied_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, task.ID, task.SourceKind, task.SourceID, task.Status, task.Attempts, task.LastError, task.AppliedAt)
	return err
}

func (r *reconcileTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ReconcileTask, error) {
	query := `SELECT ` + reconcileTaskColumns + ` FROM reconcile_tasks WHERE id = $1`
	return scanReconcileTask(r.db.QueryRow(ctx, query, id))
}

// ListPending returns the oldest pending tasks first so retries drain in
// arrival order.
func (r *reconcileTaskRepo) ListPending(ctx context.Context, limit int) ([]*models.ReconcileTask, error) {
	query := `SELECT ` + reconcileTaskColumns + ` FROM reconcile_tasks WHERE status = $1 ORDER BY created_at LIMIT $2`
	return r.queryTasks(ctx, query, models.ReconcileStatusPending, limit)
}

func (r *reconcileTaskRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.ReconcileTask, error) {
	query := `SELECT ` + reconcileTaskColumns + ` FROM reconcile_tasks WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryTasks(ctx, query, status, limit, offset)
}

func (r *reconcileTaskRepo) MarkDone(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE reconcile_tasks
		SET status = $1, attempts = attempts + 1, last_error = NULL, applied_at = NOW(), updated_at = NOW()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, models.ReconcileStatusDone, id)
	return err
}

// MarkAttempt records a failed attempt. When failed is true the task is
// parked as FAILED and only a manual retry can revive it.
func (r *reconcileTaskRepo) MarkAttempt(ctx context.Context, id uuid.UUID, attemptErr string, failed bool) error {
	status := models.ReconcileStatusPending
	if failed {
		status = models.ReconcileStatusFailed
	}
	query := `
		UPDATE reconcile_tasks
		SET status = $1, attempts = attempts + 1, last_error = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, status, attemptErr, id)
	return err
}

func (r *reconcileTaskRepo) Reset(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE reconcile_tasks
		SET status = $1, attempts = 0, last_error = NULL, updated_at = NOW()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, models.ReconcileStatusPending, id)
	return err
}

func (r *reconcileTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*models.ReconcileTask, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.ReconcileTask
	for rows.Next() {
		task, err := scanReconcileTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
