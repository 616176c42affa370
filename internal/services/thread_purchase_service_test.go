package services

import (
	"context"
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

type ThreadPurchaseServiceTestSuite struct {
	suite.Suite
	purchaseRepo *MockThreadPurchaseRepository
	vendorRepo   *MockVendorRepository
	taskRepo     *MockReconcileTaskRepository
	txnRepo      *MockTransactionRepository
	service      ThreadPurchaseService
	ctx          context.Context
}

func (s *ThreadPurchaseServiceTestSuite) SetupTest() {
	s.purchaseRepo = new(MockThreadPurchaseRepository)
	s.vendorRepo = new(MockVendorRepository)
	s.taskRepo = new(MockReconcileTaskRepository)
	s.txnRepo = new(MockTransactionRepository)
	s.ctx = context.Background()

	runner := &stubTxRunner{repos: repositories.TxRepos{
		ThreadPurchases: s.purchaseRepo,
		ReconcileTasks:  s.taskRepo,
		Transactions:    s.txnRepo,
	}}
	reconciler := reconcile.NewReconciler(
		runner, s.taskRepo, s.purchaseRepo, nil, nil,
		reconcile.DefaultMarkups(), 5, zerolog.Nop(),
	)
	s.service = NewThreadPurchaseService(s.purchaseRepo, s.vendorRepo, runner, reconciler, zerolog.Nop())
}

func (s *ThreadPurchaseServiceTestSuite) TearDownTest() {
	s.purchaseRepo.AssertExpectations(s.T())
	s.vendorRepo.AssertExpectations(s.T())
	s.taskRepo.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
}

func (s *ThreadPurchaseServiceTestSuite) purchase(received bool) *models.ThreadPurchase {
	return &models.ThreadPurchase{
		VendorID:       uuid.New(),
		ThreadTypeName: "Cotton 40s",
		ColorStatus:    models.ColorStatusRaw,
		Quantity:       decimal.NewFromInt(100),
		UnitPrice:      decimal.NewFromInt(10),
		UnitOfMeasure:  "kg",
		Received:       received,
	}
}

func (s *ThreadPurchaseServiceTestSuite) TestCreateNotReceivedSkipsReconciliation() {
	purchase := s.purchase(false)
	s.vendorRepo.On("GetByID", s.ctx, purchase.VendorID).Return(&models.Vendor{ID: purchase.VendorID}, nil)
	s.purchaseRepo.On("Create", s.ctx, purchase).Return(nil)

	err := s.service.Create(s.ctx, purchase, true)

	s.NoError(err)
	s.NotEqual(uuid.Nil, purchase.ID)
	s.Equal(models.InventoryStatusPending, purchase.InventoryStatus)
	s.taskRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ThreadPurchaseServiceTestSuite) TestCreateReceivedEnqueuesAndApplies() {
	purchase := s.purchase(true)
	s.vendorRepo.On("GetByID", s.ctx, purchase.VendorID).Return(&models.Vendor{ID: purchase.VendorID}, nil)
	s.purchaseRepo.On("Create", s.ctx, purchase).Return(nil)
	s.taskRepo.On("Create", s.ctx, mock.MatchedBy(func(task *models.ReconcileTask) bool {
		return task.SourceKind == models.SourceThreadPurchase && task.SourceID == purchase.ID
	})).Return(nil)

	// Inline apply: the purchase turns out to already have a ledger line, so
	// the task is marked done without a second application.
	s.purchaseRepo.On("GetByID", s.ctx, mock.Anything).Return(purchase, nil)
	s.txnRepo.On("ExistsForSource", s.ctx, models.SourceThreadPurchase, mock.Anything).Return(true, nil)
	s.taskRepo.On("MarkDone", s.ctx, mock.Anything).Return(nil)

	err := s.service.Create(s.ctx, purchase, true)

	s.NoError(err)
	s.NotNil(purchase.ReceivedAt)
}

func (s *ThreadPurchaseServiceTestSuite) TestCreateReceivedWithoutOptIn() {
	purchase := s.purchase(true)
	s.vendorRepo.On("GetByID", s.ctx, purchase.VendorID).Return(&models.Vendor{ID: purchase.VendorID}, nil)
	s.purchaseRepo.On("Create", s.ctx, purchase).Return(nil)

	err := s.service.Create(s.ctx, purchase, false)

	s.NoError(err)
	s.taskRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ThreadPurchaseServiceTestSuite) TestCreateUnknownVendor() {
	purchase := s.purchase(false)
	s.vendorRepo.On("GetByID", s.ctx, purchase.VendorID).Return(nil, models.ErrNotFound)

	err := s.service.Create(s.ctx, purchase, false)

	s.ErrorIs(err, models.ErrInvalidInput)
}

func (s *ThreadPurchaseServiceTestSuite) TestCreateRejectsZeroQuantity() {
	purchase := s.purchase(false)
	purchase.Quantity = decimal.Zero

	err := s.service.Create(s.ctx, purchase, false)

	s.ErrorIs(err, models.ErrInvalidInput)
}

func (s *ThreadPurchaseServiceTestSuite) TestUpdateTransitionToReceivedEnqueues() {
	purchase := s.purchase(true)
	purchase.ID = uuid.New()
	prev := s.purchase(false)
	prev.ID = purchase.ID

	s.purchaseRepo.On("GetByID", s.ctx, purchase.ID).Return(prev, nil).Once()
	s.purchaseRepo.On("Update", s.ctx, purchase).Return(nil)
	s.taskRepo.On("Create", s.ctx, mock.MatchedBy(func(task *models.ReconcileTask) bool {
		return task.SourceKind == models.SourceThreadPurchase && task.SourceID == purchase.ID
	})).Return(nil)

	s.purchaseRepo.On("GetByID", s.ctx, purchase.ID).Return(purchase, nil)
	s.txnRepo.On("ExistsForSource", s.ctx, models.SourceThreadPurchase, purchase.ID).Return(true, nil)
	s.taskRepo.On("MarkDone", s.ctx, mock.Anything).Return(nil)

	err := s.service.Update(s.ctx, purchase, true)

	s.NoError(err)
	s.NotNil(purchase.ReceivedAt)
}

func (s *ThreadPurchaseServiceTestSuite) TestUpdateAlreadyReceivedDoesNotReenqueue() {
	purchase := s.purchase(true)
	purchase.ID = uuid.New()
	prev := s.purchase(true)
	prev.ID = purchase.ID
	prev.InventoryStatus = models.InventoryStatusAdded

	s.purchaseRepo.On("GetByID", s.ctx, purchase.ID).Return(prev, nil)
	s.purchaseRepo.On("Update", s.ctx, purchase).Return(nil)

	err := s.service.Update(s.ctx, purchase, true)

	s.NoError(err)
	s.Equal(models.InventoryStatusAdded, purchase.InventoryStatus)
	s.taskRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ThreadPurchaseServiceTestSuite) TestDeleteBlockedAfterInventoryAdded() {
	id := uuid.New()
	purchase := s.purchase(true)
	purchase.ID = id
	purchase.InventoryStatus = models.InventoryStatusAdded
	s.purchaseRepo.On("GetByID", s.ctx, id).Return(purchase, nil)

	err := s.service.Delete(s.ctx, id)

	s.ErrorIs(err, models.ErrHasDependents)
	s.purchaseRepo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *ThreadPurchaseServiceTestSuite) TestDeletePendingPurchase() {
	id := uuid.New()
	purchase := s.purchase(false)
	purchase.ID = id
	s.purchaseRepo.On("GetByID", s.ctx, id).Return(purchase, nil)
	s.purchaseRepo.On("Delete", s.ctx, id).Return(nil)

	err := s.service.Delete(s.ctx, id)

	s.NoError(err)
}

func TestThreadPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ThreadPurchaseServiceTestSuite))
}
