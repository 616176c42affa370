package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type SalesOrderRepository interface {
	Create(ctx context.Context, order *models.SalesOrder) error
	CreateItem(ctx context.Context, item *models.SalesOrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SalesOrder, error)
	ListItems(ctx context.Context, orderID uuid.UUID) ([]*models.SalesOrderItem, error)
	List(ctx context.Context, customerID *uuid.UUID, limit, offset int) ([]*models.SalesOrder, error)
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) error
}

type salesOrderRepo struct {
	db DB
}

func NewSalesOrderRepository(db DB) SalesOrderRepository {
	return &salesOrderRepo{db: db}
}

const salesOrderColumns = `id, order_number, customer_id, order_date, total_amount, discount, payment_status, delivery_address, delivery_date, remarks, created_at, updated_at`

func scanSalesOrder(row interface{ Scan(...any) error }) (*models.SalesOrder, error) {
	order := &models.SalesOrder{}
	err := row.Scan(&order.ID, &order.OrderNumber, &order.CustomerID, &order.OrderDate, &order.TotalAmount, &order.Discount, &order.PaymentStatus, &order.DeliveryAddress, &order.DeliveryDate, &order.Remarks, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return order, nil
}

func (r *salesOrderRepo) Create(ctx context.Context, order *models.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (id, order_number, customer_id, order_date, total_amount, discount, payment_status, delivery_address, delivery_date, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, order.ID, order.OrderNumber, order.CustomerID, order.OrderDate, order.TotalAmount, order.Discount, order.PaymentStatus, order.DeliveryAddress, order.DeliveryDate, order.Remarks)
	return err
}

func (r *salesOrderRepo) CreateItem(ctx context.Context, item *models.SalesOrderItem) error {
	query := `
		INSERT INTO sales_order_items (id, sales_order_id, item_id, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.SalesOrderID, item.ItemID, item.Quantity, item.UnitPrice, item.Subtotal)
	return err
}

func (r *salesOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1`
	return scanSalesOrder(r.db.QueryRow(ctx, query, id))
}

func (r *salesOrderRepo) ListItems(ctx context.Context, orderID uuid.UUID) ([]*models.SalesOrderItem, error) {
	query := `
		SELECT id, sales_order_id, item_id, quantity, unit_price, subtotal, created_at
		FROM sales_order_items
		WHERE sales_order_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.SalesOrderItem
	for rows.Next() {
		item := &models.SalesOrderItem{}
		if err := rows.Scan(&item.ID, &item.SalesOrderID, &item.ItemID, &item.Quantity, &item.UnitPrice, &item.Subtotal, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *salesOrderRepo) List(ctx context.Context, customerID *uuid.UUID, limit, offset int) ([]*models.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders`
	args := []any{}
	if customerID != nil {
		query += ` WHERE customer_id = $1 ORDER BY order_date DESC LIMIT $2 OFFSET $3`
		args = append(args, *customerID, limit, offset)
	} else {
		query += ` ORDER BY order_date DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.SalesOrder
	for rows.Next() {
		order, err := scanSalesOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *salesOrderRepo) SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE sales_orders SET payment_status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}
