package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCategory of a stockable line.
type ProductCategory string

const (
	CategoryThread ProductCategory = "THREAD"
	CategoryFabric ProductCategory = "FABRIC"
)

// Valid reports whether the category is one of the known values.
func (c ProductCategory) Valid() bool {
	return c == CategoryThread || c == CategoryFabric
}

// TransactionType of a ledger line.
type TransactionType string

const (
	TransactionPurchase   TransactionType = "PURCHASE"
	TransactionProduction TransactionType = "PRODUCTION"
	TransactionSales      TransactionType = "SALES"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
	TransactionTransfer   TransactionType = "TRANSFER"
)

// Valid reports whether the transaction type is one of the known values.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionPurchase, TransactionProduction, TransactionSales,
		TransactionAdjustment, TransactionTransfer:
		return true
	}
	return false
}

// InventoryItem is one stockable line. CurrentQuantity never goes negative;
// CostPerUnit is the weighted average of all inbound transactions to date.
type InventoryItem struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	ItemCode        string          `json:"item_code" db:"item_code"`
	Category        ProductCategory `json:"category" db:"category"`
	ThreadTypeID    *uuid.UUID      `json:"thread_type_id" db:"thread_type_id"`
	FabricTypeID    *uuid.UUID      `json:"fabric_type_id" db:"fabric_type_id"`
	Description     string          `json:"description" db:"description"`
	CurrentQuantity decimal.Decimal `json:"current_quantity" db:"current_quantity"`
	UnitOfMeasure   string          `json:"unit_of_measure" db:"unit_of_measure"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit" db:"cost_per_unit"`
	SalePrice       decimal.Decimal `json:"sale_price" db:"sale_price"`
	MinStockLevel   decimal.Decimal `json:"min_stock_level" db:"min_stock_level"`
	Location        *string         `json:"location" db:"location"`
	LastRestocked   *time.Time      `json:"last_restocked" db:"last_restocked"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// InventoryTransaction is an immutable ledger line. RemainingQuantity is the
// item's quantity at the moment the transaction committed, a point-in-time
// snapshot rather than an independently maintained running balance.
type InventoryTransaction struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	ItemID             uuid.UUID       `json:"item_id" db:"item_id"`
	Type               TransactionType `json:"type" db:"type"`
	Quantity           decimal.Decimal `json:"quantity" db:"quantity"` // signed effect
	RemainingQuantity  decimal.Decimal `json:"remaining_quantity" db:"remaining_quantity"`
	UnitCost           decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	TotalCost          decimal.Decimal `json:"total_cost" db:"total_cost"`
	ThreadPurchaseID   *uuid.UUID      `json:"thread_purchase_id" db:"thread_purchase_id"`
	DyeingProcessID    *uuid.UUID      `json:"dyeing_process_id" db:"dyeing_process_id"`
	FabricProductionID *uuid.UUID      `json:"fabric_production_id" db:"fabric_production_id"`
	SalesOrderID       *uuid.UUID      `json:"sales_order_id" db:"sales_order_id"`
	Notes              *string         `json:"notes" db:"notes"`
	TransactionDate    time.Time       `json:"transaction_date" db:"transaction_date"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
}

// InventorySearchFilter holds search and filter criteria for inventory queries.
type InventorySearchFilter struct {
	Query        string           `json:"query,omitempty"`
	Category     *ProductCategory `json:"category,omitempty"`
	ThreadTypeID *uuid.UUID       `json:"thread_type_id,omitempty"`
	FabricTypeID *uuid.UUID       `json:"fabric_type_id,omitempty"`
	MinQuantity  *decimal.Decimal `json:"min_quantity,omitempty"`
	MaxQuantity  *decimal.Decimal `json:"max_quantity,omitempty"`
	LowStockOnly bool             `json:"low_stock_only,omitempty"`
	SortBy       string           `json:"sort_by,omitempty"`    // quantity, item_code, updated_at
	SortOrder    string           `json:"sort_order,omitempty"` // asc, desc
	Limit        int              `json:"limit,omitempty"`
	Offset       int              `json:"offset,omitempty"`
}
