package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type ThreadPurchaseRepository interface {
	Create(ctx context.Context, purchase *models.ThreadPurchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ThreadPurchase, error)
	Update(ctx context.Context, purchase *models.ThreadPurchase) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, vendorID *uuid.UUID, limit, offset int) ([]*models.ThreadPurchase, error)
	SetInventoryStatus(ctx context.Context, id uuid.UUID, status models.InventoryStatus) error
}

type threadPurchaseRepo struct {
	db DB
}

func NewThreadPurchaseRepository(db DB) ThreadPurchaseRepository {
	return &threadPurchaseRepo{db: db}
}

const threadPurchaseColumns = `id, vendor_id, thread_type_name, color, color_status, quantity, unit_price, unit_of_measure, received, delivery_date, received_at, inventory_status, created_at, updated_at`

func scanThreadPurchase(row interface{ Scan(...any) error }) (*models.ThreadPurchase, error) {
	p := &models.ThreadPurchase{}
	err := row.Scan(&p.ID, &p.VendorID, &p.ThreadTypeName, &p.Color, &p.ColorStatus, &p.Quantity, &p.UnitPrice, &p.UnitOfMeasure, &p.Received, &p.DeliveryDate, &p.ReceivedAt, &p.InventoryStatus, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return p, nil
}

func (r *threadPurchaseRepo) Create(ctx context.Context, purchase *models.ThreadPurchase) error {
	query := `
		INSERT INTO thread_purchases (id, vendor_id, thread_type_name, color, color_status, quantity, unit_price, unit_of_measure, received, delivery_date, received_at, inventory_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, purchase.ID, purchase.VendorID, purchase.ThreadTypeName, purchase.Color, purchase.ColorStatus, purchase.Quantity, purchase.UnitPrice, purchase.UnitOfMeasure, purchase.Received, purchase.DeliveryDate, purchase.ReceivedAt, purchase.InventoryStatus)
	return err
}

func (r *threadPurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ThreadPurchase, error) {
	query := `SELECT ` + threadPurchaseColumns + ` FROM thread_purchases WHERE id = $1`
	return scanThreadPurchase(r.db.QueryRow(ctx, query, id))
}

func (r *threadPurchaseRepo) Update(ctx context.Context, purchase *models.ThreadPurchase) error {
	query := `
		UPDATE thread_purchases
		SET vendor_id = $1, thread_type_name = $2, color = $3, color_status = $4, quantity = $5, unit_price = $6, unit_of_measure = $7, received = $8, delivery_date = $9, received_at = $10, inventory_status = $11, updated_at = NOW()
		WHERE id = $12
	`
	_, err := r.db.Exec(ctx, query, purchase.VendorID, purchase.ThreadTypeName, purchase.Color, purchase.ColorStatus, purchase.Quantity, purchase.UnitPrice, purchase.UnitOfMeasure, purchase.Received, purchase.DeliveryDate, purchase.ReceivedAt, purchase.InventoryStatus, purchase.ID)
	return err
}

func (r *threadPurchaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM thread_purchases WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *threadPurchaseRepo) List(ctx context.Context, vendorID *uuid.UUID, limit, offset int) ([]*models.ThreadPurchase, error) {
	query := `SELECT ` + threadPurchaseColumns + ` FROM thread_purchases`
	args := []any{}
	if vendorID != nil {
		query += ` WHERE vendor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, *vendorID, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*models.ThreadPurchase
	for rows.Next() {
		purchase, err := scanThreadPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	return purchases, rows.Err()
}

func (r *threadPurchaseRepo) SetInventoryStatus(ctx context.Context, id uuid.UUID, status models.InventoryStatus) error {
	query := `UPDATE thread_purchases SET inventory_status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}
