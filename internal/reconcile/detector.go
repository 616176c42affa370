package reconcile

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/models"
)

// SourceEvent is the normalized view of a domain event that can mint
// inventory: a received thread purchase, a completed dyeing process, or a
// completed fabric production.
type SourceEvent struct {
	Kind          string // models.SourceThreadPurchase etc.
	ID            uuid.UUID
	Category      models.ProductCategory
	TypeName      string
	Color         string
	ColorStatus   string
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	UnitOfMeasure string
	TxnType       models.TransactionType
}

// Description synthesizes the matching key the resolver uses to find an
// existing inventory line: color, type name and color status, whitespace
// collapsed. Matching against it is case-insensitive.
func (e SourceEvent) Description() string {
	parts := []string{e.Color, e.TypeName}
	if e.Category == models.CategoryThread && e.ColorStatus != "" {
		parts = append(parts, e.ColorStatus)
	}
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// itemCodePrefix per source kind for generated item codes.
func (e SourceEvent) itemCodePrefix() string {
	switch e.Kind {
	case models.SourceDyeingProcess:
		return "DYE"
	case models.SourceFabricProduction:
		return "FAB"
	default:
		return "THR"
	}
}

// Detector decides whether a source-event update should trigger the
// inventory side effect. It performs no writes; the duplicate-application
// guard against the ledger itself runs later, inside the writer's
// transaction.
type Detector struct{}

// ShouldApply fires only on a transition into the completion state, gated by
// the client opt-in flag and the source's inventory-status marker.
func (Detector) ShouldApply(prevCompleted, nextCompleted, addToInventory bool, status models.InventoryStatus) bool {
	if !addToInventory {
		return false
	}
	if status == models.InventoryStatusAdded {
		return false
	}
	return !prevCompleted && nextCompleted
}

// EventFromThreadPurchase maps a received purchase to its inventory event.
func EventFromThreadPurchase(p *models.ThreadPurchase) SourceEvent {
	color := ""
	if p.Color != nil {
		color = *p.Color
	}
	return SourceEvent{
		Kind:          models.SourceThreadPurchase,
		ID:            p.ID,
		Category:      models.CategoryThread,
		TypeName:      p.ThreadTypeName,
		Color:         color,
		ColorStatus:   p.ColorStatus,
		Quantity:      p.Quantity,
		UnitCost:      p.UnitPrice,
		UnitOfMeasure: p.UnitOfMeasure,
		TxnType:       models.TransactionPurchase,
	}
}

// EventFromDyeingProcess maps a completed dyeing process to its inventory
// event. The thread type comes from the originating purchase; the output is
// always COLORED stock.
func EventFromDyeingProcess(d *models.DyeingProcess, purchase *models.ThreadPurchase) SourceEvent {
	unit := "kg"
	typeName := ""
	if purchase != nil {
		unit = purchase.UnitOfMeasure
		typeName = purchase.ThreadTypeName
	}
	return SourceEvent{
		Kind:          models.SourceDyeingProcess,
		ID:            d.ID,
		Category:      models.CategoryThread,
		TypeName:      typeName,
		Color:         d.ColorName,
		ColorStatus:   models.ColorStatusColored,
		Quantity:      d.OutputQuantity,
		UnitCost:      d.UnitCost(),
		UnitOfMeasure: unit,
		TxnType:       models.TransactionProduction,
	}
}

// EventFromFabricProduction maps a completed fabric production to its
// inventory event.
func EventFromFabricProduction(f *models.FabricProduction) SourceEvent {
	color := ""
	if f.Color != nil {
		color = *f.Color
	}
	return SourceEvent{
		Kind:          models.SourceFabricProduction,
		ID:            f.ID,
		Category:      models.CategoryFabric,
		TypeName:      f.FabricTypeName,
		Color:         color,
		Quantity:      f.QuantityProduced,
		UnitCost:      f.UnitCost(),
		UnitOfMeasure: f.UnitOfMeasure,
		TxnType:       models.TransactionProduction,
	}
}

// nowFunc is swapped in tests that assert generated item codes.
var nowFunc = time.Now
