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

type FabricProductionService interface {
	Create(ctx context.Context, production *models.FabricProduction, addToInventory bool) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FabricProduction, error)
	Update(ctx context.Context, production *models.FabricProduction, addToInventory bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.FabricProduction, error)
}

type fabricProductionService struct {
	fabricRepo   repositories.FabricProductionRepository
	purchaseRepo repositories.ThreadPurchaseRepository
	dyeingRepo   repositories.DyeingProcessRepository
	txRunner     repositories.TxRunner
	reconciler   *reconcile.Reconciler
	detector     reconcile.Detector
	log          zerolog.Logger
}

func NewFabricProductionService(
	fabricRepo repositories.FabricProductionRepository,
	purchaseRepo repositories.ThreadPurchaseRepository,
	dyeingRepo repositories.DyeingProcessRepository,
	txRunner repositories.TxRunner,
	reconciler *reconcile.Reconciler,
	log zerolog.Logger,
) FabricProductionService {
	return &fabricProductionService{
		fabricRepo:   fabricRepo,
		purchaseRepo: purchaseRepo,
		dyeingRepo:   dyeingRepo,
		txRunner:     txRunner,
		reconciler:   reconciler,
		log:          log,
	}
}

func (s *fabricProductionService) validate(production *models.FabricProduction) error {
	if production.FabricTypeName == "" {
		return fmt.Errorf("%w: fabric type name is required", models.ErrInvalidInput)
	}
	switch production.Status {
	case models.FabricStatusPending, models.FabricStatusInProgress,
		models.FabricStatusCompleted, models.FabricStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown production status %q", models.ErrInvalidInput, production.Status)
	}
	if production.Status == models.FabricStatusCompleted && !production.QuantityProduced.IsPositive() {
		return fmt.Errorf("%w: completed production requires a positive quantity", models.ErrInvalidInput)
	}
	if production.TotalCost.IsNegative() {
		return fmt.Errorf("%w: total cost cannot be negative", models.ErrInvalidInput)
	}
	return nil
}

// checkSources verifies the optional thread source references.
func (s *fabricProductionService) checkSources(ctx context.Context, production *models.FabricProduction) error {
	if production.ThreadPurchaseID != nil {
		if _, err := s.purchaseRepo.GetByID(ctx, *production.ThreadPurchaseID); err != nil {
			return fmt.Errorf("%w: thread purchase not found", models.ErrInvalidInput)
		}
	}
	if production.DyeingProcessID != nil {
		if _, err := s.dyeingRepo.GetByID(ctx, *production.DyeingProcessID); err != nil {
			return fmt.Errorf("%w: dyeing process not found", models.ErrInvalidInput)
		}
	}
	return nil
}

func (s *fabricProductionService) Create(ctx context.Context, production *models.FabricProduction, addToInventory bool) error {
	if err := s.validate(production); err != nil {
		return err
	}
	if err := s.checkSources(ctx, production); err != nil {
		return err
	}

	production.ID = uuid.New()
	production.InventoryStatus = models.InventoryStatusPending
	if production.TotalCost.IsZero() {
		total := production.ProductionCost
		if production.LaborCost != nil {
			total = total.Add(*production.LaborCost)
		}
		production.TotalCost = total.Round(2)
	}
	completed := production.Status == models.FabricStatusCompleted
	if completed && production.CompletionDate == nil {
		now := time.Now()
		production.CompletionDate = &now
	}

	var task *models.ReconcileTask
	err := s.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		if err := repos.FabricProductions.Create(ctx, production); err != nil {
			return err
		}
		if s.detector.ShouldApply(false, completed, addToInventory, production.InventoryStatus) {
			task = reconcile.NewTask(models.SourceFabricProduction, production.ID)
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

func (s *fabricProductionService) GetByID(ctx context.Context, id uuid.UUID) (*models.FabricProduction, error) {
	return s.fabricRepo.GetByID(ctx, id)
}

func (s *fabricProductionService) Update(ctx context.Context, production *models.FabricProduction, addToInventory bool) error {
	if err := s.validate(production); err != nil {
		return err
	}
	if err := s.checkSources(ctx, production); err != nil {
		return err
	}

	prev, err := s.fabricRepo.GetByID(ctx, production.ID)
	if err != nil {
		return err
	}
	production.InventoryStatus = prev.InventoryStatus
	prevCompleted := prev.Status == models.FabricStatusCompleted
	completed := production.Status == models.FabricStatusCompleted
	if completed && production.CompletionDate == nil {
		now := time.Now()
		production.CompletionDate = &now
	}

	var task *models.ReconcileTask
	err = s.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		if err := repos.FabricProductions.Update(ctx, production); err != nil {
			return err
		}
		if s.detector.ShouldApply(prevCompleted, completed, addToInventory, prev.InventoryStatus) {
			task = reconcile.NewTask(models.SourceFabricProduction, production.ID)
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

func (s *fabricProductionService) Delete(ctx context.Context, id uuid.UUID) error {
	production, err := s.fabricRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if production.InventoryStatus == models.InventoryStatusAdded {
		return fmt.Errorf("%w: production already added to inventory", models.ErrHasDependents)
	}
	return s.fabricRepo.Delete(ctx, id)
}

func (s *fabricProductionService) List(ctx context.Context, limit, offset int) ([]*models.FabricProduction, error) {
	return s.fabricRepo.List(ctx, limit, offset)
}

func (s *fabricProductionService) applyBestEffort(ctx context.Context, task *models.ReconcileTask) {
	if task == nil {
		return
	}
	if err := s.reconciler.ApplyTask(ctx, task); err != nil {
		s.log.Error().Err(err).
			Str("fabric_production_id", task.SourceID.String()).
			Msg("fabric production inventory side effect deferred to retry worker")
	}
}
