package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zeeshankeerio/texstock/internal/models"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	GetByItemCode(ctx context.Context, itemCode string) (*models.InventoryItem, error)
	// GetForUpdate locks the item row for the remainder of the surrounding
	// transaction. Only meaningful when the repository is bound to a tx.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	FindByDescription(ctx context.Context, category models.ProductCategory, typeID *uuid.UUID, description string) (*models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.InventoryItem, error)
	LowStock(ctx context.Context) ([]*models.InventoryItem, error)
	AdvancedSearch(ctx context.Context, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error)
}

type inventoryRepo struct {
	db DB
}

func NewInventoryRepository(db DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

const inventoryColumns = `id, item_code, category, thread_type_id, fabric_type_id, description, current_quantity, unit_of_measure, cost_per_unit, sale_price, min_stock_level, location, last_restocked, created_at, updated_at`

func scanInventoryItem(row interface{ Scan(...any) error }) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := row.Scan(&item.ID, &item.ItemCode, &item.Category, &item.ThreadTypeID, &item.FabricTypeID, &item.Description, &item.CurrentQuantity, &item.UnitOfMeasure, &item.CostPerUnit, &item.SalePrice, &item.MinStockLevel, &item.Location, &item.LastRestocked, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return item, nil
}

func (r *inventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, item_code, category, thread_type_id, fabric_type_id, description, current_quantity, unit_of_measure, cost_per_unit, sale_price, min_stock_level, location, last_restocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.ItemCode, item.Category, item.ThreadTypeID, item.FabricTypeID, item.Description, item.CurrentQuantity, item.UnitOfMeasure, item.CostPerUnit, item.SalePrice, item.MinStockLevel, item.Location, item.LastRestocked)
	return err
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	return scanInventoryItem(r.db.QueryRow(ctx, query, id))
}

func (r *inventoryRepo) GetByItemCode(ctx context.Context, itemCode string) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE item_code = $1`
	return scanInventoryItem(r.db.QueryRow(ctx, query, itemCode))
}

func (r *inventoryRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return scanInventoryItem(r.db.QueryRow(ctx, query, id))
}

// FindByDescription matches the resolver heuristic: case-insensitive
// description equality scoped to category and, when known, the type id.
func (r *inventoryRepo) FindByDescription(ctx context.Context, category models.ProductCategory, typeID *uuid.UUID, description string) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE category = $1 AND LOWER(description) = LOWER($2)`
	args := []any{category, description}
	if typeID != nil {
		if category == models.CategoryThread {
			query += ` AND thread_type_id = $3`
		} else {
			query += ` AND fabric_type_id = $3`
		}
		args = append(args, *typeID)
	}
	query += ` ORDER BY created_at LIMIT 1`
	return scanInventoryItem(r.db.QueryRow(ctx, query, args...))
}

func (r *inventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET item_code = $1, category = $2, thread_type_id = $3, fabric_type_id = $4, description = $5, current_quantity = $6, unit_of_measure = $7, cost_per_unit = $8, sale_price = $9, min_stock_level = $10, location = $11, last_restocked = $12, updated_at = NOW()
		WHERE id = $13
	`
	_, err := r.db.Exec(ctx, query, item.ItemCode, item.Category, item.ThreadTypeID, item.FabricTypeID, item.Description, item.CurrentQuantity, item.UnitOfMeasure, item.CostPerUnit, item.SalePrice, item.MinStockLevel, item.Location, item.LastRestocked, item.ID)
	return err
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM inventory_items WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *inventoryRepo) List(ctx context.Context, limit, offset int) ([]*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	return r.queryItems(ctx, query, limit, offset)
}

func (r *inventoryRepo) LowStock(ctx context.Context) ([]*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE current_quantity <= min_stock_level ORDER BY current_quantity`
	return r.queryItems(ctx, query)
}

// AdvancedSearch builds the filtered listing query dynamically.
func (r *inventoryRepo) AdvancedSearch(ctx context.Context, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error) {
	if filter.Limit == 0 {
		filter.Limit = 50
	}

	queryBase := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE 1=1`
	args := []any{}
	n := 0

	if filter.Query != "" {
		n++
		queryBase += fmt.Sprintf(` AND (item_code ILIKE $%d OR description ILIKE $%d)`, n, n)
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.Category != nil {
		n++
		queryBase += fmt.Sprintf(` AND category = $%d`, n)
		args = append(args, *filter.Category)
	}
	if filter.ThreadTypeID != nil {
		n++
		queryBase += fmt.Sprintf(` AND thread_type_id = $%d`, n)
		args = append(args, *filter.ThreadTypeID)
	}
	if filter.FabricTypeID != nil {
		n++
		queryBase += fmt.Sprintf(` AND fabric_type_id = $%d`, n)
		args = append(args, *filter.FabricTypeID)
	}
	if filter.MinQuantity != nil {
		n++
		queryBase += fmt.Sprintf(` AND current_quantity >= $%d`, n)
		args = append(args, *filter.MinQuantity)
	}
	if filter.MaxQuantity != nil {
		n++
		queryBase += fmt.Sprintf(` AND current_quantity <= $%d`, n)
		args = append(args, *filter.MaxQuantity)
	}
	if filter.LowStockOnly {
		queryBase += ` AND current_quantity <= min_stock_level`
	}

	sortField := "updated_at"
	switch filter.SortBy {
	case "quantity":
		sortField = "current_quantity"
	case "item_code":
		sortField = "item_code"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}
	queryBase += fmt.Sprintf(` ORDER BY %s %s`, sortField, sortOrder)

	n++
	queryBase += fmt.Sprintf(` LIMIT $%d`, n)
	args = append(args, filter.Limit)
	if filter.Offset > 0 {
		n++
		queryBase += fmt.Sprintf(` OFFSET $%d`, n)
		args = append(args, filter.Offset)
	}

	return r.queryItems(ctx, queryBase, args...)
}

func (r *inventoryRepo) queryItems(ctx context.Context, query string, args ...any) ([]*models.InventoryItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
