package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

// stubTxRunner hands the callback a fixed repository bundle.
type stubTxRunner struct {
	repos repositories.TxRepos
}

func (s *stubTxRunner) Run(ctx context.Context, fn func(repos repositories.TxRepos) error) error {
	return fn(s.repos)
}

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByName(ctx context.Context, name string) (*models.Vendor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepository) List(ctx context.Context, limit, offset int) ([]*models.Vendor, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) HasThreadPurchases(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByName(ctx context.Context, name string) (*models.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) HasSalesOrders(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
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

type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) Create(ctx context.Context, order *models.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) CreateItem(ctx context.Context, item *models.SalesOrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SalesOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]*models.SalesOrderItem, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]*models.SalesOrderItem), args.Error(1)
}

func (m *MockSalesOrderRepository) List(ctx context.Context, customerID *uuid.UUID, limit, offset int) ([]*models.SalesOrder, error) {
	args := m.Called(ctx, customerID, limit, offset)
	return args.Get(0).([]*models.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.Payment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) TotalPaid(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
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

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetItem(ctx context.Context, itemID uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockCacheService) SetItem(ctx context.Context, item *models.InventoryItem, ttl time.Duration) error {
	args := m.Called(ctx, item, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCacheService) GetLowStock(ctx context.Context) ([]*models.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockCacheService) SetLowStock(ctx context.Context, items []*models.InventoryItem, ttl time.Duration) error {
	args := m.Called(ctx, items, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateLowStock(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
