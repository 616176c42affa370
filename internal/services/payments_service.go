package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

type PaymentsService interface {
	RecordPayment(ctx context.Context, payment *models.Payment) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.Payment, error)
}

type paymentsService struct {
	paymentRepo repositories.PaymentRepository
	salesRepo   repositories.SalesOrderRepository
	txRunner    repositories.TxRunner
}

func NewPaymentsService(
	paymentRepo repositories.PaymentRepository,
	salesRepo repositories.SalesOrderRepository,
	txRunner repositories.TxRunner,
) PaymentsService {
	return &paymentsService{
		paymentRepo: paymentRepo,
		salesRepo:   salesRepo,
		txRunner:    txRunner,
	}
}

// RecordPayment stores the payment and recalculates the order's payment
// status from the cumulative amount paid, in one transaction.
func (s *paymentsService) RecordPayment(ctx context.Context, payment *models.Payment) error {
	if !payment.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive", models.ErrInvalidInput)
	}
	switch payment.Mode {
	case models.PaymentModeCash, models.PaymentModeCheque, models.PaymentModeOnline:
	default:
		return fmt.Errorf("%w: unknown payment mode %q", models.ErrInvalidInput, payment.Mode)
	}

	order, err := s.salesRepo.GetByID(ctx, payment.SalesOrderID)
	if err != nil {
		return err
	}

	payment.ID = uuid.New()
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}

	return s.txRunner.Run(ctx, func(repos repositories.TxRepos) error {
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return err
		}

		totalPaid, err := repos.Payments.TotalPaid(ctx, order.ID)
		if err != nil {
			return err
		}
		status := models.PaymentStatusPending
		switch {
		case totalPaid.GreaterThanOrEqual(order.TotalAmount):
			status = models.PaymentStatusPaid
		case totalPaid.IsPositive():
			status = models.PaymentStatusPartial
		}
		return repos.SalesOrders.SetPaymentStatus(ctx, order.ID, status)
	})
}

func (s *paymentsService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.Payment, error) {
	if _, err := s.salesRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByOrder(ctx, orderID)
}
