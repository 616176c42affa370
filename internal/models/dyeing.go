package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DyeingProcess result statuses. COMPLETED is the completion state that can
// trigger inventory creation.
const (
	DyeingResultPending   = "PENDING"
	DyeingResultPartial   = "PARTIAL"
	DyeingResultCompleted = "COMPLETED"
	DyeingResultFailed    = "FAILED"
)

// DyeingProcess records dyeing of a received thread purchase. A COMPLETED
// result with the add-to-inventory opt-in mints COLORED thread inventory.
type DyeingProcess struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	ThreadPurchaseID uuid.UUID        `json:"thread_purchase_id" db:"thread_purchase_id"`
	ColorName        string           `json:"color_name" db:"color_name"`
	ColorCode        *string          `json:"color_code" db:"color_code"`
	DyeQuantity      decimal.Decimal  `json:"dye_quantity" db:"dye_quantity"`
	OutputQuantity   decimal.Decimal  `json:"output_quantity" db:"output_quantity"`
	LaborCost        *decimal.Decimal `json:"labor_cost" db:"labor_cost"`
	DyeMaterialCost  *decimal.Decimal `json:"dye_material_cost" db:"dye_material_cost"`
	TotalCost        *decimal.Decimal `json:"total_cost" db:"total_cost"`
	ResultStatus     string           `json:"result_status" db:"result_status"`
	CompletionDate   *time.Time       `json:"completion_date" db:"completion_date"`
	InventoryStatus  InventoryStatus  `json:"inventory_status" db:"inventory_status"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// UnitCost derives the per-unit cost of the dyed output. Falls back to zero
// when the output quantity is not positive.
func (d *DyeingProcess) UnitCost() decimal.Decimal {
	if d.TotalCost == nil || !d.OutputQuantity.IsPositive() {
		return decimal.Zero
	}
	return d.TotalCost.Div(d.OutputQuantity)
}
