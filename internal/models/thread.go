package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryStatus marks whether a source event (purchase receipt, dyeing
// completion, fabric production completion) has already minted inventory.
// ADDED is terminal; there is no transition back to PENDING.
type InventoryStatus string

const (
	InventoryStatusPending InventoryStatus = "PENDING"
	InventoryStatusAdded   InventoryStatus = "ADDED"
)

// ThreadType classifies thread purchases (e.g. cotton 40s, polyester 150D).
// Types may be auto-created by the inventory resolver when a purchase or
// dyeing result names a type that does not exist yet.
type ThreadType struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Units       string    `json:"units" db:"units"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ThreadPurchase is a vendor order for raw or dyed thread. Receiving it is
// the source event that mints THREAD inventory.
type ThreadPurchase struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	VendorID        uuid.UUID       `json:"vendor_id" db:"vendor_id"`
	ThreadTypeName  string          `json:"thread_type_name" db:"thread_type_name"`
	Color           *string         `json:"color" db:"color"`
	ColorStatus     string          `json:"color_status" db:"color_status"` // RAW or COLORED
	Quantity        decimal.Decimal `json:"quantity" db:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price" db:"unit_price"`
	UnitOfMeasure   string          `json:"unit_of_measure" db:"unit_of_measure"`
	Received        bool            `json:"received" db:"received"`
	DeliveryDate    *time.Time      `json:"delivery_date" db:"delivery_date"`
	ReceivedAt      *time.Time      `json:"received_at" db:"received_at"`
	InventoryStatus InventoryStatus `json:"inventory_status" db:"inventory_status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

const (
	ColorStatusRaw     = "RAW"
	ColorStatusColored = "COLORED"
)

// TotalCost is the purchase line total.
func (p *ThreadPurchase) TotalCost() decimal.Decimal {
	return p.Quantity.Mul(p.UnitPrice)
}
