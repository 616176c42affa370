package reconcile

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

// stubTxRunner hands the callback a fixed repository bundle. There is no
// real transaction; tests assert against the mocks inside the bundle.
type stubTxRunner struct {
	repos repositories.TxRepos
}

func (s *stubTxRunner) Run(ctx context.Context, fn func(repos repositories.TxRepos) error) error {
	return fn(s.repos)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetByItemCode(ctx context.Context, itemCode string) (*models.InventoryItem, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindByDescription(ctx context.Context, category models.ProductCategory, typeID *uuid.UUID, description string) (*models.InventoryItem, error) {
	args := m.Called(ctx, category, typeID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryRepository) List(ctx context.Context, limit, offset int) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) LowStock(ctx context.Context) ([]*models.InventoryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) AdvancedSearch(ctx context.Context, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *models.InventoryTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByItem(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*models.InventoryTransaction, error) {
	args := m.Called(ctx, itemID, limit, offset)
	return args.Get(0).([]*models.InventoryTransaction), args.Error(1)
}

func (m *MockTransactionRepository) CountByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) ExistsForSource(ctx context.Context, sourceKind string, sourceID uuid.UUID) (bool, error) {
	args := m.Called(ctx, sourceKind, sourceID)
	return args.Bool(0), args.Error(1)
}

type MockThreadTypeRepository struct {
	mock.Mock
}

func (m *MockThreadTypeRepository) Create(ctx context.Context, threadType *models.ThreadType) error {
	args := m.Called(ctx, threadType)
	return args.Error(0)
}

func (m *MockThreadTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ThreadType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ThreadType), args.Error(1)
}

func (m *MockThreadTypeRepository) GetByName(ctx context.Context, name string) (*models.ThreadType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ThreadType), args.Error(1)
}

func (m *MockThreadTypeRepository) List(ctx context.Context, limit, offset int) ([]*models.ThreadType, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.ThreadType), args.Error(1)
}

type MockFabricTypeRepository struct {
	mock.Mock
}

func (m *MockFabricTypeRepository) Create(ctx context.Context, fabricType *models.FabricType) error {
	args := m.Called(ctx, fabricType)
	return args.Error(0)
}

func (m *MockFabricTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FabricType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FabricType), args.Error(1)
}

func (m *MockFabricTypeRepository) GetByName(ctx context.Context, name string) (*models.FabricType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FabricType), args.Error(1)
}

func (m *MockFabricTypeRepository) List(ctx context.Context, limit, offset int) ([]*models.FabricType, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.FabricType), args.Error(1)
}

type MockThreadPurchaseRepository struct {
	mock.Mock
}

func (m *MockThreadPurchaseRepository) Create(ctx context.Context, purchase *models.ThreadPurchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockThreadPurchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ThreadPurchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ThreadPurchase), args.Error(1)
}

func (m *MockThreadPurchaseRepository) Update(ctx context.Context, purchase *models.ThreadPurchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockThreadPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockThreadPurchaseRepository) List(ctx context.Context, vendorID *uuid.UUID, limit, offset int) ([]*models.ThreadPurchase, error) {
	args := m.Called(ctx, vendorID, limit, offset)
	return args.Get(0).([]*models.ThreadPurchase), args.Error(1)
}

func (m *MockThreadPurchaseRepository) SetInventoryStatus(ctx context.Context, id uuid.UUID, status models.InventoryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockDyeingProcessRepository struct {
	mock.Mock
}

func (m *MockDyeingProcessRepository) Create(ctx context.Context, process *models.DyeingProcess) error {
	args := m.Called(ctx, process)
	return args.Error(0)
}

func (m *MockDyeingProcessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DyeingProcess, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DyeingProcess), args.Error(1)
}

func (m *MockDyeingProcessRepository) Update(ctx context.Context, process *models.DyeingProcess) error {
	args := m.Called(ctx, process)
	return args.Error(0)
}

func (m *MockDyeingProcessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDyeingProcessRepository) List(ctx context.Context, threadPurchaseID *uuid.UUID, limit, offset int) ([]*models.DyeingProcess, error) {
	args := m.Called(ctx, threadPurchaseID, limit, offset)
	return args.Get(0).([]*models.DyeingProcess), args.Error(1)
}

func (m *MockDyeingProcessRepository) SetInventoryStatus(ctx context.Context, id uuid.UUID, status models.InventoryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockFabricProductionRepository struct {
	mock.Mock
}

func (m *MockFabricProductionRepository) Create(ctx context.Context, production *models.FabricProduction) error {
	args := m.Called(ctx, production)
	return args.Error(0)
}

func (m *MockFabricProductionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FabricProduction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FabricProduction), args.Error(1)
}

func (m *MockFabricProductionRepository) Update(ctx context.Context, production *models.FabricProduction) error {
	args := m.Called(ctx, production)
	return args.Error(0)
}

func (m *MockFabricProductionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFabricProductionRepository) List(ctx context.Context, limit, offset int) ([]*models.FabricProduction, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.FabricProduction), args.Error(1)
}

func (m *MockFabricProductionRepository) SetInventoryStatus(ctx context.Context, id uuid.UUID, status models.InventoryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockReconcileTaskRepository struct {
	mock.Mock
}

func (m *MockReconcileTaskRepository) Create(ctx context.Context, task *models.ReconcileTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockReconcileTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ReconcileTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReconcileTask), args.Error(1)
}

func (m *MockReconcileTaskRepository) ListPending(ctx context.Context, limit int) ([]*models.ReconcileTask, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*models.ReconcileTask), args.Error(1)
}

func (m *MockReconcileTaskRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.ReconcileTask, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]*models.ReconcileTask), args.Error(1)
}

func (m *MockReconcileTaskRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReconcileTaskRepository) MarkAttempt(ctx context.Context, id uuid.UUID, attemptErr string, failed bool) error {
	args := m.Called(ctx, id, attemptErr, failed)
	return args.Error(0)
}

func (m *MockReconcileTaskRepository) Reset(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
