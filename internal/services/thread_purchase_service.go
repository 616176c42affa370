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

type ThreadPurchaseService interface {
	Create(ctx context.Context, purchase *models.ThreadPurchase, addToInventory bool) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ThreadPurchase, error)
	Update(ctx context.Context, purchase *models.ThreadPurchase, addToInventory bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, vendorID *uuid.UUID, limit, offset int) ([]*models.ThreadPurchase, error)
}

type threadPurchaseService struct {
	purchaseRepo repositories.ThreadPurchaseRepository
	vendorRepo   repositories.VendorRepository
	txRunner     repositories.TxRunner
	reconciler   *reconcile.Reconciler
	detector     reconcile.Detector
	log          zerolog.Logger
}

func NewThreadPurchaseService(
	purchaseRepo repositories.ThreadPurchaseRepository,
	vendorRepo repositories.VendorRepository,
	txRunner repositories.TxRunner,
	reconciler *reconcile.Reconciler,
	log zerolog.Logger,
) ThreadPurchaseService {
	return &threadPurchaseService{
		purchaseRepo: purchaseRepo,
		vendorRepo:   vendorRepo,
		txRunner:     txRunner,
		reconciler:   reconciler,
		log:          log,
	}
}

func (s *threadPurchaseService) validate(purchase *models.ThreadPurchase) error {
	if purchase.VendorID == uuid.Nil {
		return fmt.Errorf("%w: vendor is required", models.ErrInvalidInput)
	}
	if purchase.ThreadTypeName == "" {
		return fmt.Errorf("%w: thread type name is required", models.ErrInvalidInput)
	}
	if !purchase.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive", models.ErrInvalidInput)
	}
	if purchase.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price cannot be negative", models.ErrInvalidInput)
	}
	if purchase.ColorStatus != models.ColorStatusRaw && purchase.ColorStatus != models.ColorStatusColored {
		return fmt.Errorf("%w: color status must be RAW or COLORED", models.ErrInvalidInput)
	}
	return nil
}

// Create stores the purchase and, when it arrives already received with the
// add-to-inventory opt-in, runs the reconciliation side effect.
func (s *threadPurchaseService) Create(ctx context.Context, purchase *models.ThreadPurchase, addToInventory bool) error {
	if err := s.validate(purchase); err != nil {
		return err
	}
	if _, err := s.vendorRepo.GetByID(ctx, purchase.VendorID); err != nil {
		return fmt.Errorf("%w: vendor not found", models.ErrInvalidInput)
	}

	purchase.ID = uuid.New()
	purchase.InventoryStatus = models.InventoryStatusPending
	if purchase.Received && purchase.ReceivedAt == nil {
		now := time.Now()
		purchase.ReceivedAt = &now
	}

	var task *models.ReconcileTask
	err := s.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		if err := repos.ThreadPurchases.Create(ctx, purchase); err != nil {
			return err
		}
		if s.detector.ShouldApply(false, purchase.Received, addToInventory, purchase.InventoryStatus) {
			task = reconcile.NewTask(models.SourceThreadPurchase, purchase.ID)
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

func (s *threadPurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*models.ThreadPurchase, error) {
	return s.purchaseRepo.GetByID(ctx, id)
}

// Update applies a partial update. A transition into received with the
// opt-in flag triggers the inventory side effect; the purchase update itself
// commits regardless of how the side effect fares.
func (s *threadPurchaseService) Update(ctx context.Context, purchase *models.ThreadPurchase, addToInventory bool) error {
	if err := s.validate(purchase); err != nil {
		return err
	}

	prev, err := s.purchaseRepo.GetByID(ctx, purchase.ID)
	if err != nil {
		return err
	}
	purchase.InventoryStatus = prev.InventoryStatus
	if purchase.Received && purchase.ReceivedAt == nil {
		now := time.Now()
		purchase.ReceivedAt = &now
	}

	var task *models.ReconcileTask
	err = s.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		if err := repos.ThreadPurchases.Update(ctx, purchase); err != nil {
			return err
		}
		if s.detector.ShouldApply(prev.Received, purchase.Received, addToInventory, prev.InventoryStatus) {
			task = reconcile.NewTask(models.SourceThreadPurchase, purchase.ID)
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

// Delete refuses once inventory has been minted from the purchase.
func (s *threadPurchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase.InventoryStatus == models.InventoryStatusAdded {
		return fmt.Errorf("%w: purchase already added to inventory", models.ErrHasDependents)
	}
	return s.purchaseRepo.Delete(ctx, id)
}

func (s *threadPurchaseService) List(ctx context.Context, vendorID *uuid.UUID, limit, offset int) ([]*models.ThreadPurchase, error) {
	return s.purchaseRepo.List(ctx, vendorID, limit, offset)
}

// applyBestEffort runs the queued reconciliation inline. Failure is logged
// and left to the retry worker; the primary write has already committed.
func (s *threadPurchaseService) applyBestEffort(ctx context.Context, task *models.ReconcileTask) {
	if task == nil {
		return
	}
	if err := s.reconciler.ApplyTask(ctx, task); err != nil {
		s.log.Error().Err(err).
			Str("thread_purchase_id", task.SourceID.String()).
			Msg("thread purchase inventory side effect deferred to retry worker")
	}
}
