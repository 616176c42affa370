package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/caching"
	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/reconcile"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

const (
	itemCacheTTL     = 5 * time.Minute
	lowStockCacheTTL = 2 * time.Minute
)

type InventoryService interface {
	CreateItem(ctx context.Context, item *models.InventoryItem) error
	GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	GetItemByCode(ctx context.Context, itemCode string) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, item *models.InventoryItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, limit, offset int) ([]*models.InventoryItem, error)
	LowStock(ctx context.Context) ([]*models.InventoryItem, error)
	Search(ctx context.Context, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error)

	ListTransactions(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*models.InventoryTransaction, error)
	RecordTransaction(ctx context.Context, itemID uuid.UUID, txnType models.TransactionType, quantity, unitCost decimal.Decimal, notes *string) (*models.InventoryTransaction, error)

	AddDyeingToInventory(ctx context.Context, dyeingProcessID uuid.UUID) (*models.InventoryTransaction, error)
	AddFabricToInventory(ctx context.Context, fabricProductionID uuid.UUID) (*models.InventoryTransaction, error)
}

type inventoryService struct {
	itemRepo     repositories.InventoryRepository
	txnRepo      repositories.InventoryTransactionRepository
	purchaseRepo repositories.ThreadPurchaseRepository
	dyeingRepo   repositories.DyeingProcessRepository
	fabricRepo   repositories.FabricProductionRepository
	txRunner     repositories.TxRunner
	reconciler   *reconcile.Reconciler
	writer       *reconcile.LedgerWriter
	cache        caching.CacheService
	log          zerolog.Logger
}

func NewInventoryService(
	itemRepo repositories.InventoryRepository,
	txnRepo repositories.InventoryTransactionRepository,
	purchaseRepo repositories.ThreadPurchaseRepository,
	dyeingRepo repositories.DyeingProcessRepository,
	fabricRepo repositories.FabricProductionRepository,
	txRunner repositories.TxRunner,
	reconciler *reconcile.Reconciler,
	markups reconcile.Markups,
	cache caching.CacheService,
	log zerolog.Logger,
) InventoryService {
	return &inventoryService{
		itemRepo:     itemRepo,
		txnRepo:      txnRepo,
		purchaseRepo: purchaseRepo,
		dyeingRepo:   dyeingRepo,
		fabricRepo:   fabricRepo,
		txRunner:     txRunner,
		reconciler:   reconciler,
		writer:       reconcile.NewLedgerWriter(markups),
		cache:        cache,
		log:          log,
	}
}

func (s *inventoryService) validateItem(item *models.InventoryItem) error {
	if item.ItemCode == "" {
		return fmt.Errorf("%w: item code is required", models.ErrInvalidInput)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: category must be THREAD or FABRIC", models.ErrInvalidInput)
	}
	if item.CurrentQuantity.IsNegative() {
		return fmt.Errorf("%w: quantity cannot be negative", models.ErrInvalidInput)
	}
	if item.CostPerUnit.IsNegative() || item.SalePrice.IsNegative() {
		return fmt.Errorf("%w: cost and sale price cannot be negative", models.ErrInvalidInput)
	}
	return nil
}

func (s *inventoryService) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	if err := s.validateItem(item); err != nil {
		return err
	}
	if existing, err := s.itemRepo.GetByItemCode(ctx, item.ItemCode); err == nil && existing != nil {
		return fmt.Errorf("%w: item code %q already in use", models.ErrInvalidInput, item.ItemCode)
	}

	item.ID = uuid.New()
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return err
	}
	s.invalidateItem(ctx, item.ID)
	return nil
}

// GetItem reads through the cache. Cache failures degrade to a plain
// database read.
func (s *inventoryService) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	cached, err := s.cache.GetItem(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("item_id", id.String()).Msg("inventory cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetItem(ctx, item, itemCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("item_id", id.String()).Msg("inventory cache write failed")
	}
	return item, nil
}

func (s *inventoryService) GetItemByCode(ctx context.Context, itemCode string) (*models.InventoryItem, error) {
	return s.itemRepo.GetByItemCode(ctx, itemCode)
}

func (s *inventoryService) UpdateItem(ctx context.Context, item *models.InventoryItem) error {
	if err := s.validateItem(item); err != nil {
		return err
	}
	if _, err := s.itemRepo.GetByID(ctx, item.ID); err != nil {
		return err
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return err
	}
	s.invalidateItem(ctx, item.ID)
	return nil
}

// DeleteItem refuses while ledger lines reference the item; the transaction
// history is immutable and must stay resolvable.
func (s *inventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	count, err := s.txnRepo.CountByItem(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: item has %d transactions", models.ErrHasTransactions, count)
	}
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateItem(ctx, id)
	return nil
}

func (s *inventoryService) ListItems(ctx context.Context, limit, offset int) ([]*models.InventoryItem, error) {
	return s.itemRepo.List(ctx, limit, offset)
}

func (s *inventoryService) LowStock(ctx context.Context) ([]*models.InventoryItem, error) {
	cached, err := s.cache.GetLowStock(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("low-stock cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	items, err := s.itemRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetLowStock(ctx, items, lowStockCacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("low-stock cache write failed")
	}
	return items, nil
}

func (s *inventoryService) Search(ctx context.Context, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error) {
	if filter == nil {
		filter = &models.InventorySearchFilter{}
	}
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	return s.itemRepo.AdvancedSearch(ctx, filter)
}

func (s *inventoryService) ListTransactions(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*models.InventoryTransaction, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.txnRepo.ListByItem(ctx, itemID, limit, offset)
}

// RecordTransaction applies a manual ledger entry (adjustment, transfer or a
// hand-entered movement) against a known item. Runs under the same row lock
// and invariants as the automated flow.
func (s *inventoryService) RecordTransaction(ctx context.Context, itemID uuid.UUID, txnType models.TransactionType, quantity, unitCost decimal.Decimal, notes *string) (*models.InventoryTransaction, error) {
	if !txnType.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", models.ErrInvalidInput, txnType)
	}
	if quantity.IsZero() {
		return nil, fmt.Errorf("%w: quantity must be non-zero", models.ErrInvalidInput)
	}

	var txn *models.InventoryTransaction
	err := s.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		item, err := repos.Inventory.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		txn, err = s.writer.Apply(ctx, repos, reconcile.LedgerEntry{
			Item:     item,
			Type:     txnType,
			Quantity: quantity,
			UnitCost: unitCost,
			Notes:    notes,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	s.invalidateItem(ctx, itemID)
	return txn, nil
}

// AddDyeingToInventory manually replays the dyeing completion side effect,
// for completions recorded without the opt-in flag. The duplicate guard
// still applies.
func (s *inventoryService) AddDyeingToInventory(ctx context.Context, dyeingProcessID uuid.UUID) (*models.InventoryTransaction, error) {
	process, err := s.dyeingRepo.GetByID(ctx, dyeingProcessID)
	if err != nil {
		return nil, err
	}
	if process.ResultStatus != models.DyeingResultCompleted {
		return nil, fmt.Errorf("%w: dyeing process is not completed", models.ErrInvalidInput)
	}
	purchase, err := s.purchaseRepo.GetByID(ctx, process.ThreadPurchaseID)
	if err != nil {
		return nil, err
	}

	txn, err := s.reconciler.Apply(ctx, reconcile.EventFromDyeingProcess(process, purchase))
	if err != nil {
		return nil, err
	}
	s.invalidateItem(ctx, txn.ItemID)
	return txn, nil
}

// AddFabricToInventory is the fabric counterpart of AddDyeingToInventory.
func (s *inventoryService) AddFabricToInventory(ctx context.Context, fabricProductionID uuid.UUID) (*models.InventoryTransaction, error) {
	production, err := s.fabricRepo.GetByID(ctx, fabricProductionID)
	if err != nil {
		return nil, err
	}
	if production.Status != models.FabricStatusCompleted {
		return nil, fmt.Errorf("%w: fabric production is not completed", models.ErrInvalidInput)
	}

	txn, err := s.reconciler.Apply(ctx, reconcile.EventFromFabricProduction(production))
	if err != nil {
		return nil, err
	}
	s.invalidateItem(ctx, txn.ItemID)
	return txn, nil
}

// invalidateItem drops cached copies after a write. Cache failures are
// logged and swallowed.
func (s *inventoryService) invalidateItem(ctx context.Context, id uuid.UUID) {
	if err := s.cache.DeleteItem(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("item_id", id.String()).Msg("inventory cache invalidation failed")
	}
	if err := s.cache.InvalidateLowStock(ctx); err != nil {
		s.log.Warn().Err(err).Msg("low-stock cache invalidation failed")
	}
}
