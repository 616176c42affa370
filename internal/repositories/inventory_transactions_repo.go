package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type InventoryTransactionRepository interface {
	Create(ctx context.Context, txn *models.InventoryTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryTransaction, error)
	ListByItem(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*models.InventoryTransaction, error)
	CountByItem(ctx context.Context, itemID uuid.UUID) (int, error)
	// ExistsForSource reports whether any ledger line already references the
	// given source event. This is the duplicate-application guard.
	ExistsForSource(ctx context.Context, sourceKind string, sourceID uuid.UUID) (bool, error)
}

type inventoryTransactionRepo struct {
	db DB
}

func NewInventoryTransactionRepository(db DB) InventoryTransactionRepository {
	return &inventoryTransactionRepo{db: db}
}

const transactionColumns = `id, item_id, type, quantity, remaining_quantity, unit_cost, total_cost, thread_purchase_id, dyeing_process_id, fabric_production_id, sales_order_id, notes, transaction_date, created_at`

func scanTransaction(row interface{ Scan(...any) error }) (*models.InventoryTransaction, error) {
	txn := &models.InventoryTransaction{}
	err := row.Scan(&txn.ID, &txn.ItemID, &txn.Type, &txn.Quantity, &txn.RemainingQuantity, &txn.UnitCost, &txn.TotalCost, &txn.ThreadPurchaseID, &txn.DyeingProcessID, &txn.FabricProductionID, &txn.SalesOrderID, &txn.Notes, &txn.TransactionDate, &txn.CreatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return txn, nil
}

func (r *inventoryTransactionRepo) Create(ctx context.Context, txn *models.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, item_id, type, quantity, remaining_quantity, unit_cost, total_cost, thread_purchase_id, dyeing_process_id, fabric_production_id, sales_order_id, notes, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
	`
	_, err := r.db.Exec(ctx, query, txn.ID, txn.ItemID, txn.Type, txn.Quantity, txn.RemainingQuantity, txn.UnitCost, txn.TotalCost, txn.ThreadPurchaseID, txn.DyeingProcessID, txn.FabricProductionID, txn.SalesOrderID, txn.Notes, txn.TransactionDate)
	return err
}

func (r *inventoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM inventory_transactions WHERE id = $1`
	return scanTransaction(r.db.QueryRow(ctx, query, id))
}

func (r *inventoryTransactionRepo) ListByItem(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*models.InventoryTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM inventory_transactions
		WHERE item_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*models.InventoryTransaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

func (r *inventoryTransactionRepo) CountByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM inventory_transactions WHERE item_id = $1`
	err := r.db.QueryRow(ctx, query, itemID).Scan(&count)
	return count, err
}

func (r *inventoryTransactionRepo) ExistsForSource(ctx context.Context, sourceKind string, sourceID uuid.UUID) (bool, error) {
	var column string
	switch sourceKind {
	case models.SourceThreadPurchase:
		column = "thread_purchase_id"
	case models.SourceDyeingProcess:
		column = "dyeing_process_id"
	case models.SourceFabricProduction:
		column = "fabric_production_id"
	default:
		return false, models.ErrInvalidInput
	}
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM inventory_transactions WHERE ` + column + ` = $1)`
	err := r.db.QueryRow(ctx, query, sourceID).Scan(&exists)
	return exists, err
}
