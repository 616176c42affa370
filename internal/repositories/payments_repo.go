package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.Payment, error)
	TotalPaid(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)
}

type paymentRepo struct {
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (id, sales_order_id, amount, mode, reference, remarks, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.db.Exec(ctx, query, payment.ID, payment.SalesOrderID, payment.Amount, payment.Mode, payment.Reference, payment.Remarks, payment.PaymentDate)
	return err
}

func (r *paymentRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.Payment, error) {
	query := `
		SELECT id, sales_order_id, amount, mode, reference, remarks, payment_date, created_at
		FROM payments
		WHERE sales_order_id = $1
		ORDER BY payment_date DESC
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(&payment.ID, &payment.SalesOrderID, &payment.Amount, &payment.Mode, &payment.Reference, &payment.Remarks, &payment.PaymentDate, &payment.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *paymentRepo) TotalPaid(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE sales_order_id = $1`
	err := r.db.QueryRow(ctx, query, orderID).Scan(&total)
	return total, err
}
