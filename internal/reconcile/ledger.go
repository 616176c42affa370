package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

// Markups holds the sale-price multipliers applied on top of the weighted
// average cost, per product category.
type Markups struct {
	Thread decimal.Decimal
	Fabric decimal.Decimal
}

// DefaultMarkups matches the historical call sites: thread 1.2, fabric 1.3.
func DefaultMarkups() Markups {
	return Markups{
		Thread: decimal.NewFromFloat(1.2),
		Fabric: decimal.NewFromFloat(1.3),
	}
}

func (m Markups) For(category models.ProductCategory) decimal.Decimal {
	if category == models.CategoryFabric {
		return m.Fabric
	}
	return m.Thread
}

// LedgerEntry is one requested mutation against an inventory item. Quantity
// is signed: positive inbound, negative outbound.
type LedgerEntry struct {
	Item               *models.InventoryItem // locked row, or a new unpersisted item
	ItemIsNew          bool
	Type               models.TransactionType
	Quantity           decimal.Decimal
	UnitCost           decimal.Decimal // ignored for outbound; item cost is used
	ThreadPurchaseID   *uuid.UUID
	DyeingProcessID    *uuid.UUID
	FabricProductionID *uuid.UUID
	SalesOrderID       *uuid.UUID
	Notes              *string
	Date               time.Time
}

// LedgerWriter appends one immutable transaction and mutates the running
// quantity/cost fields on the item. It must be called with transaction-bound
// repositories; there is deliberately no non-atomic code path.
type LedgerWriter struct {
	markups Markups
}

func NewLedgerWriter(markups Markups) *LedgerWriter {
	return &LedgerWriter{markups: markups}
}

// Apply validates the entry, enforces the no-negative-stock invariant,
// recomputes the weighted average on inbound stock and writes both rows.
// The returned transaction carries the post-commit quantity snapshot.
func (w *LedgerWriter) Apply(ctx context.Context, repos repositories.TxRepos, entry LedgerEntry) (*models.InventoryTransaction, error) {
	if !entry.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", models.ErrInvalidInput, entry.Type)
	}
	if entry.Quantity.IsZero() {
		return nil, fmt.Errorf("%w: quantity must be non-zero", models.ErrInvalidInput)
	}

	item := entry.Item
	now := entry.Date
	if now.IsZero() {
		now = nowFunc()
	}

	newQty := item.CurrentQuantity.Add(entry.Quantity)
	unitCost := entry.UnitCost

	if entry.Quantity.IsPositive() {
		item.CostPerUnit = WeightedAverageCost(item.CurrentQuantity, item.CostPerUnit, entry.Quantity, entry.UnitCost)
		item.SalePrice = item.CostPerUnit.Mul(w.markups.For(item.Category)).Round(2)
		item.LastRestocked = &now
	} else {
		if newQty.IsNegative() {
			return nil, fmt.Errorf("%w: have %s, requested %s", models.ErrInsufficientStock,
				item.CurrentQuantity.String(), entry.Quantity.Neg().String())
		}
		// Outbound moves out at the current weighted average.
		unitCost = item.CostPerUnit
	}
	item.CurrentQuantity = newQty

	if entry.ItemIsNew {
		if err := repos.Inventory.Create(ctx, item); err != nil {
			return nil, err
		}
	} else {
		if err := repos.Inventory.Update(ctx, item); err != nil {
			return nil, err
		}
	}

	txn := &models.InventoryTransaction{
		ID:                 uuid.New(),
		ItemID:             item.ID,
		Type:               entry.Type,
		Quantity:           entry.Quantity,
		RemainingQuantity:  newQty,
		UnitCost:           unitCost,
		TotalCost:          entry.Quantity.Abs().Mul(unitCost).Round(2),
		ThreadPurchaseID:   entry.ThreadPurchaseID,
		DyeingProcessID:    entry.DyeingProcessID,
		FabricProductionID: entry.FabricProductionID,
		SalesOrderID:       entry.SalesOrderID,
		Notes:              entry.Notes,
		TransactionDate:    now,
	}
	if err := repos.Transactions.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}
