package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/reconcile"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

type DyeingService interface {
	Create(ctx context.Context, process *models.DyeingProcess, addToInventory bool) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DyeingProcess, error)
	Update(ctx context.Context, process *models.DyeingProcess, addToInventory bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, threadPurchaseID *uuid.UUID, limit, offset int) ([]*models.DyeingProcess, error)
}

type dyeingService struct {
	dyeingRepo   repositories.DyeingProcessRepository
	purchaseRepo repositories.ThreadPurchaseRepository
	txRunner     repositories.TxRunner
	reconciler   *reconcile.Reconciler
	detector     reconcile.Detector
	log          zerolog.Logger
}

func NewDyeingService(
	dyeingRepo repositories.DyeingProcessRepository,
	purchaseRepo repositories.ThreadPurchaseRepository,
	txRunner repositories.TxRunner,
	reconciler *reconcile.Reconciler,
	log zerolog.Logger,
) DyeingService {
	return &dyeingService{
		dyeingRepo:   dyeingRepo,
		purchaseRepo: purchaseRepo,
		txRunner:     txRunner,
		reconciler:   reconciler,
		log:          log,
	}
}

func (s *dyeingService) validate(process *models.DyeingProcess) error {
	if process.ThreadPurchaseID == uuid.Nil {
		return fmt.Errorf("%w: thread purchase is required", models.ErrInvalidInput)
	}
	if process.ColorName == "" {
		return fmt.Errorf("%w: color name is required", models.ErrInvalidInput)
	}
	switch process.ResultStatus {
	case models.DyeingResultPending, models.DyeingResultPartial,
		models.DyeingResultCompleted, models.DyeingResultFailed:
	default:
		return fmt.Errorf("%w: unknown result status %q", models.ErrInvalidInput, process.ResultStatus)
	}
	if process.ResultStatus == models.DyeingResultCompleted && !process.OutputQuantity.IsPositive() {
		return fmt.Errorf("%w: completed dyeing requires a positive output quantity", models.ErrInvalidInput)
	}
	return nil
}

// fillTotalCost derives the process total when the caller did not provide
// one: thread consumed at purchase cost plus labor and dye material.
func (s *dyeingService) fillTotalCost(process *models.DyeingProcess, purchase *models.ThreadPurchase) {
	if process.TotalCost != nil {
		return
	}
	total := process.DyeQuantity.Mul(purchase.UnitPrice)
	if process.LaborCost != nil {
		total = total.Add(*process.LaborCost)
	}
	if process.DyeMaterialCost != nil {
		total = total.Add(*process.DyeMaterialCost)
	}
	total = total.Round(2)
	process.TotalCost = &total
}

func (s *dyeingService) Create(ctx context.Context, process *models.DyeingProcess, addToInventory bool) error {
	if err := s.validate(process); err != nil {
		return err
	}
	purchase, err := s.purchaseRepo.GetByID(ctx, process.ThreadPurchaseID)
	if err != nil {
		return fmt.Errorf("%w: thread purchase not found", models.ErrInvalidInput)
	}
	if !purchase.Received {
		return fmt.Errorf("%w: cannot dye a purchase that has not been received", models.ErrInvalidInput)
	}

	process.ID = uuid.New()
	process.InventoryStatus = models.InventoryStatusPending
	s.fillTotalCost(process, purchase)
	completed := process.ResultStatus == models.DyeingResultCompleted
	if completed && process.CompletionDate == nil {
		now := time.Now()
		process.CompletionDate = &now
	}

	var task *models.ReconcileTask
	err = s.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		if err := repos.DyeingProcesses.Create(ctx, process); err != nil {
			return err
		}
		if s.detector.ShouldApply(false, completed, addToInventory, process.InventoryStatus) {
			task = reconcile.NewTask(models.SourceDyeingProcess, process.ID)
			return repos.ReconcileTasks.Create(ctx, task)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.applyBestEffort(ctx, task)
	return nil
}

func (s *dyeingService) GetByID(ctx context.Context, id uuid.UUID) (*models.DyeingProcess, error) {
	return s.dyeingRepo.GetByID(ctx, id)
}

func (s *dyeingService) Update(ctx context.Context, process *models.DyeingProcess, addToInventory bool) error {
	if err := s.validate(process); err != nil {
		return err
	}

	prev, err := s.dyeingRepo.GetByID(ctx, process.ID)
	if err != nil {
		return err
	}
	purchase, err := s.purchaseRepo.GetByID(ctx, process.ThreadPurchaseID)
	if err != nil {
		return fmt.Errorf("%w: thread purchase not found", models.ErrInvalidInput)
	}

	process.InventoryStatus = prev.InventoryStatus
	s.fillTotalCost(process, purchase)
	prevCompleted := prev.ResultStatus == models.DyeingResultCompleted
	completed := process.ResultStatus == models.DyeingResultCompleted
	if completed && process.CompletionDate == nil {
		now := time.Now()
		process.CompletionDate = &now
	}

	var task *models.ReconcileTask
	err = s.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		if err := repos.DyeingProcesses.Update(ctx, process); err != nil {
			return err
		}
		if s.detector.ShouldApply(prevCompleted, completed, addToInventory, prev.InventoryStatus) {
			task = reconcile.NewTask(models.SourceDyeingProcess, process.ID)
			return repos.ReconcileTasks.Create(ctx, task)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.applyBestEffort(ctx, task)
	return nil
}

func (s *dyeingService) Delete(ctx context.Context, id uuid.UUID) error {
	process, err := s.dyeingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if process.InventoryStatus == models.InventoryStatusAdded {
		return fmt.Errorf("%w: dyeing process already added to inventory", models.ErrHasDependents)
	}
	return s.dyeingRepo.Delete(ctx, id)
}

func (s *dyeingService) List(ctx context.Context, threadPurchaseID *uuid.UUID, limit, offset int) ([]*models.DyeingProcess, error) {
	return s.dyeingRepo.List(ctx, threadPurchaseID, limit, offset)
}

func (s *dyeingService) applyBestEffort(ctx context.Context, task *models.ReconcileTask) {
	if task == nil {
		return
	}
	if err := s.reconciler.ApplyTask(ctx, task); err != nil {
		s.log.Error().Err(err).
			Str("dyeing_process_id", task.SourceID.String()).
			Msg("dyeing inventory side effect deferred to retry worker")
	}
}
