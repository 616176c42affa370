package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment status of a sales order, recalculated after every recorded payment.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPartial = "PARTIAL"
	PaymentStatusPaid    = "PAID"
)

// Payment modes accepted at the counter.
const (
	PaymentModeCash   = "CASH"
	PaymentModeCheque = "CHEQUE"
	PaymentModeOnline = "ONLINE"
)

// SalesOrder is a customer sale. Creating one writes outbound SALES ledger
// lines for every item in the same database transaction as the order itself.
type SalesOrder struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	OrderNumber     string            `json:"order_number" db:"order_number"`
	CustomerID      uuid.UUID         `json:"customer_id" db:"customer_id"`
	OrderDate       time.Time         `json:"order_date" db:"order_date"`
	TotalAmount     decimal.Decimal   `json:"total_amount" db:"total_amount"`
	Discount        *decimal.Decimal  `json:"discount" db:"discount"`
	PaymentStatus   string            `json:"payment_status" db:"payment_status"`
	DeliveryAddress *string           `json:"delivery_address" db:"delivery_address"`
	DeliveryDate    *time.Time        `json:"delivery_date" db:"delivery_date"`
	Remarks         *string           `json:"remarks" db:"remarks"`
	Items           []*SalesOrderItem `json:"items,omitempty" db:"-"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
}

// SalesOrderItem is one sold inventory line.
type SalesOrderItem struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	SalesOrderID uuid.UUID       `json:"sales_order_id" db:"sales_order_id"`
	ItemID       uuid.UUID       `json:"item_id" db:"item_id"`
	Quantity     decimal.Decimal `json:"quantity" db:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price" db:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal" db:"subtotal"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// Payment is money received against a sales order.
type Payment struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	SalesOrderID uuid.UUID       `json:"sales_order_id" db:"sales_order_id"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Mode         string          `json:"mode" db:"mode"`
	Reference    *string         `json:"reference" db:"reference"`
	Remarks      *string         `json:"remarks" db:"remarks"`
	PaymentDate  time.Time       `json:"payment_date" db:"payment_date"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
