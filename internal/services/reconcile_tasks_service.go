package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/reconcile"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

// ReconcileTasksService exposes the outbox for operators: inspecting stuck
// tasks and retrying parked ones by hand.
type ReconcileTasksService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.ReconcileTask, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.ReconcileTask, error)
	Retry(ctx context.Context, id uuid.UUID) (*models.ReconcileTask, error)
}

type reconcileTasksService struct {
	taskRepo   repositories.ReconcileTaskRepository
	reconciler *reconcile.Reconciler
}

func NewReconcileTasksService(
	taskRepo repositories.ReconcileTaskRepository,
	reconciler *reconcile.Reconciler,
) ReconcileTasksService {
	return &reconcileTasksService{
		taskRepo:   taskRepo,
		reconciler: reconciler,
	}
}

func (s *reconcileTasksService) Get(ctx context.Context, id uuid.UUID) (*models.ReconcileTask, error) {
	return s.taskRepo.GetByID(ctx, id)
}

func (s *reconcileTasksService) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.ReconcileTask, error) {
	switch status {
	case models.ReconcileStatusPending, models.ReconcileStatusDone, models.ReconcileStatusFailed:
	default:
		return nil, fmt.Errorf("%w: unknown task status %q", models.ErrInvalidInput, status)
	}
	return s.taskRepo.ListByStatus(ctx, status, limit, offset)
}

// Retry resets a parked or pending task and applies it immediately. The
// application error, if any, is recorded on the task and returned alongside
// the refreshed row.
func (s *reconcileTasksService) Retry(ctx context.Context, id uuid.UUID) (*models.ReconcileTask, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status == models.ReconcileStatusDone {
		return nil, fmt.Errorf("%w: task already applied", models.ErrAlreadyApplied)
	}

	if err := s.taskRepo.Reset(ctx, id); err != nil {
		return nil, err
	}
	task.Status = models.ReconcileStatusPending
	task.Attempts = 0

	if err := s.reconciler.ApplyTask(ctx, task); err != nil {
		// Recorded on the task row; surface the refreshed state instead.
		return s.taskRepo.GetByID(ctx, id)
	}
	return s.taskRepo.GetByID(ctx, id)
}
