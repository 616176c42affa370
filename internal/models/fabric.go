package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FabricProduction statuses. COMPLETED triggers FABRIC inventory creation.
const (
	FabricStatusPending    = "PENDING"
	FabricStatusInProgress = "IN_PROGRESS"
	FabricStatusCompleted  = "COMPLETED"
	FabricStatusCancelled  = "CANCELLED"
)

// FabricType classifies produced fabric (e.g. poplin, lawn, latha).
type FabricType struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Units       string    `json:"units" db:"units"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// FabricProduction records weaving of dyed thread into fabric. Either the
// source thread purchase or the dyeing process (or both) may be referenced.
type FabricProduction struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	ThreadPurchaseID *uuid.UUID       `json:"thread_purchase_id" db:"thread_purchase_id"`
	DyeingProcessID  *uuid.UUID       `json:"dyeing_process_id" db:"dyeing_process_id"`
	FabricTypeName   string           `json:"fabric_type_name" db:"fabric_type_name"`
	Color            *string          `json:"color" db:"color"`
	Dimensions       *string          `json:"dimensions" db:"dimensions"`
	QuantityProduced decimal.Decimal  `json:"quantity_produced" db:"quantity_produced"`
	ThreadUsed       decimal.Decimal  `json:"thread_used" db:"thread_used"`
	UnitOfMeasure    string           `json:"unit_of_measure" db:"unit_of_measure"`
	ProductionCost   decimal.Decimal  `json:"production_cost" db:"production_cost"`
	LaborCost        *decimal.Decimal `json:"labor_cost" db:"labor_cost"`
	TotalCost        decimal.Decimal  `json:"total_cost" db:"total_cost"`
	Status           string           `json:"status" db:"status"`
	CompletionDate   *time.Time       `json:"completion_date" db:"completion_date"`
	InventoryStatus  InventoryStatus  `json:"inventory_status" db:"inventory_status"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// UnitCost derives the per-unit cost of the produced fabric.
func (f *FabricProduction) UnitCost() decimal.Decimal {
	if !f.QuantityProduced.IsPositive() {
		return decimal.Zero
	}
	return f.TotalCost.Div(f.QuantityProduced)
}
