package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/reconcile"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

type SalesServiceTestSuite struct {
	suite.Suite
	salesRepo     *MockSalesOrderRepository
	customerRepo  *MockCustomerRepository
	inventoryRepo *MockInventoryRepository
	txnRepo       *MockTransactionRepository
	cache         *MockCacheService
	service       SalesService
	ctx           context.Context
	customerID    uuid.UUID
}

func (s *SalesServiceTestSuite) SetupTest() {
	s.salesRepo = new(MockSalesOrderRepository)
	s.customerRepo = new(MockCustomerRepository)
	s.inventoryRepo = new(MockInventoryRepository)
	s.txnRepo = new(MockTransactionRepository)
	s.cache = new(MockCacheService)
	s.ctx = context.Background()
	s.customerID = uuid.New()

	runner := &stubTxRunner{repos: repositories.TxRepos{
		SalesOrders:  s.salesRepo,
		Inventory:    s.inventoryRepo,
		Transactions: s.txnRepo,
	}}
	s.service = NewSalesService(s.salesRepo, s.customerRepo, runner, reconcile.DefaultMarkups(), s.cache, zerolog.Nop())
}

func (s *SalesServiceTestSuite) TearDownTest() {
	s.salesRepo.AssertExpectations(s.T())
	s.customerRepo.AssertExpectations(s.T())
	s.inventoryRepo.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
	s.cache.AssertExpectations(s.T())
}

func (s *SalesServiceTestSuite) stockedItem(qty int64) *models.InventoryItem {
	return &models.InventoryItem{
		ID:              uuid.New(),
		ItemCode:        "THR-TEST-00001",
		Category:        models.CategoryThread,
		Description:     "Indigo Cotton 40s",
		CurrentQuantity: decimal.NewFromInt(qty),
		CostPerUnit:     decimal.NewFromInt(10),
	}
}

func (s *SalesServiceTestSuite) order(item *models.InventoryItem, qty, price int64) *models.SalesOrder {
	return &models.SalesOrder{
		CustomerID: s.customerID,
		Items: []*models.SalesOrderItem{
			{ItemID: item.ID, Quantity: decimal.NewFromInt(qty), UnitPrice: decimal.NewFromInt(price)},
		},
	}
}

func (s *SalesServiceTestSuite) TestCreateOrderDrawsDownStock() {
	item := s.stockedItem(100)
	order := s.order(item, 40, 15)

	s.customerRepo.On("GetByID", s.ctx, s.customerID).Return(&models.Customer{ID: s.customerID}, nil)
	s.salesRepo.On("Create", s.ctx, order).Return(nil)
	s.salesRepo.On("CreateItem", s.ctx, order.Items[0]).Return(nil)
	s.inventoryRepo.On("GetForUpdate", s.ctx, item.ID).Return(item, nil)
	s.inventoryRepo.On("Update", s.ctx, item).Return(nil)
	s.txnRepo.On("Create", s.ctx, mock.AnythingOfType("*models.InventoryTransaction")).Return(nil)
	s.cache.On("DeleteItem", s.ctx, item.ID).Return(nil)
	s.cache.On("InvalidateLowStock", s.ctx).Return(nil)

	err := s.service.CreateOrder(s.ctx, order)

	s.NoError(err)
	s.True(strings.HasPrefix(order.OrderNumber, "SO-"))
	s.Equal(models.PaymentStatusPending, order.PaymentStatus)
	s.True(order.TotalAmount.Equal(decimal.NewFromInt(600)))
	s.True(order.Items[0].Subtotal.Equal(decimal.NewFromInt(600)))
	s.True(item.CurrentQuantity.Equal(decimal.NewFromInt(60)))

	txn := s.txnRepo.Calls[0].Arguments.Get(1).(*models.InventoryTransaction)
	s.Equal(models.TransactionSales, txn.Type)
	s.True(txn.Quantity.Equal(decimal.NewFromInt(-40)))
	s.True(txn.UnitCost.Equal(decimal.NewFromInt(10)))
	s.Equal(order.ID, *txn.SalesOrderID)
}

func (s *SalesServiceTestSuite) TestInsufficientStockRejectsWholeOrder() {
	item := s.stockedItem(30)
	order := s.order(item, 40, 15)

	s.customerRepo.On("GetByID", s.ctx, s.customerID).Return(&models.Customer{ID: s.customerID}, nil)
	s.salesRepo.On("Create", s.ctx, order).Return(nil)
	s.salesRepo.On("CreateItem", s.ctx, order.Items[0]).Return(nil)
	s.inventoryRepo.On("GetForUpdate", s.ctx, item.ID).Return(item, nil)

	err := s.service.CreateOrder(s.ctx, order)

	s.ErrorIs(err, models.ErrInsufficientStock)
	s.Contains(err.Error(), item.ItemCode)
	s.inventoryRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.cache.AssertNotCalled(s.T(), "InvalidateLowStock", mock.Anything)
}

func (s *SalesServiceTestSuite) TestDiscountReducesTotal() {
	item := s.stockedItem(100)
	order := s.order(item, 10, 20)
	discount := decimal.NewFromInt(50)
	order.Discount = &discount

	s.customerRepo.On("GetByID", s.ctx, s.customerID).Return(&models.Customer{ID: s.customerID}, nil)
	s.salesRepo.On("Create", s.ctx, order).Return(nil)
	s.salesRepo.On("CreateItem", s.ctx, order.Items[0]).Return(nil)
	s.inventoryRepo.On("GetForUpdate", s.ctx, item.ID).Return(item, nil)
	s.inventoryRepo.On("Update", s.ctx, item).Return(nil)
	s.txnRepo.On("Create", s.ctx, mock.AnythingOfType("*models.InventoryTransaction")).Return(nil)
	s.cache.On("DeleteItem", s.ctx, item.ID).Return(nil)
	s.cache.On("InvalidateLowStock", s.ctx).Return(nil)

	err := s.service.CreateOrder(s.ctx, order)

	s.NoError(err)
	s.True(order.TotalAmount.Equal(decimal.NewFromInt(150)))
}

func (s *SalesServiceTestSuite) TestDiscountExceedingTotal() {
	item := s.stockedItem(100)
	order := s.order(item, 10, 20)
	discount := decimal.NewFromInt(500)
	order.Discount = &discount

	s.customerRepo.On("GetByID", s.ctx, s.customerID).Return(&models.Customer{ID: s.customerID}, nil)

	err := s.service.CreateOrder(s.ctx, order)

	s.ErrorIs(err, models.ErrInvalidInput)
	s.salesRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *SalesServiceTestSuite) TestEmptyOrderRejected() {
	order := &models.SalesOrder{CustomerID: s.customerID}

	err := s.service.CreateOrder(s.ctx, order)

	s.ErrorIs(err, models.ErrInvalidInput)
}

func (s *SalesServiceTestSuite) TestUnknownCustomerRejected() {
	item := s.stockedItem(100)
	order := s.order(item, 10, 20)
	s.customerRepo.On("GetByID", s.ctx, s.customerID).Return(nil, models.ErrNotFound)

	err := s.service.CreateOrder(s.ctx, order)

	s.ErrorIs(err, models.ErrInvalidInput)
}

func (s *SalesServiceTestSuite) TestGetOrderLoadsLines() {
	orderID := uuid.New()
	order := &models.SalesOrder{ID: orderID, CustomerID: s.customerID}
	lines := []*models.SalesOrderItem{{ID: uuid.New(), SalesOrderID: orderID}}
	s.salesRepo.On("GetByID", s.ctx, orderID).Return(order, nil)
	s.salesRepo.On("ListItems", s.ctx, orderID).Return(lines, nil)

	got, err := s.service.GetOrder(s.ctx, orderID)

	s.NoError(err)
	s.Len(got.Items, 1)
}

func TestSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesServiceTestSuite))
}
