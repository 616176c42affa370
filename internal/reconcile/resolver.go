package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

// Resolver finds the inventory line a source event should restock, or
// constructs a new one. It runs inside the writer's transaction so a
// concurrently created item cannot be missed or duplicated mid-flight.
type Resolver struct{}

// Resolve returns the target item and whether it is brand new. New items are
// not yet persisted; the ledger writer creates them together with the first
// transaction. Missing thread/fabric types are created on the fly, tagged
// with the originating event id.
func (Resolver) Resolve(ctx context.Context, repos repositories.TxRepos, ev SourceEvent) (*models.InventoryItem, bool, error) {
	if !ev.Category.Valid() {
		return nil, false, fmt.Errorf("%w: unknown product category %q", models.ErrInvalidInput, ev.Category)
	}
	if strings.TrimSpace(ev.TypeName) == "" {
		return nil, false, fmt.Errorf("%w: type name is required", models.ErrInvalidInput)
	}

	typeID, err := resolveTypeID(ctx, repos, ev)
	if err != nil {
		return nil, false, err
	}

	description := ev.Description()
	item, err := repos.Inventory.FindByDescription(ctx, ev.Category, typeID, description)
	if err == nil {
		return item, false, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, false, err
	}

	item = &models.InventoryItem{
		ID:              uuid.New(),
		ItemCode:        generateItemCode(ev),
		Category:        ev.Category,
		Description:     description,
		CurrentQuantity: decimal.Zero,
		UnitOfMeasure:   ev.UnitOfMeasure,
		CostPerUnit:     decimal.Zero,
		SalePrice:       decimal.Zero,
		MinStockLevel:   decimal.Zero,
	}
	if ev.Category == models.CategoryThread {
		item.ThreadTypeID = typeID
	} else {
		item.FabricTypeID = typeID
	}
	return item, true, nil
}

// resolveTypeID looks up the classification record by name, creating it when
// absent (auto-vivification).
func resolveTypeID(ctx context.Context, repos repositories.TxRepos, ev SourceEvent) (*uuid.UUID, error) {
	vivifyNote := fmt.Sprintf("auto-created from %s %s", strings.ToLower(ev.Kind), ev.ID)

	if ev.Category == models.CategoryThread {
		threadType, err := repos.ThreadTypes.GetByName(ctx, ev.TypeName)
		if err == nil {
			return &threadType.ID, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		threadType = &models.ThreadType{
			ID:          uuid.New(),
			Name:        ev.TypeName,
			Units:       ev.UnitOfMeasure,
			Description: &vivifyNote,
		}
		if err := repos.ThreadTypes.Create(ctx, threadType); err != nil {
			return nil, err
		}
		return &threadType.ID, nil
	}

	fabricType, err := repos.FabricTypes.GetByName(ctx, ev.TypeName)
	if err == nil {
		return &fabricType.ID, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	fabricType = &models.FabricType{
		ID:          uuid.New(),
		Name:        ev.TypeName,
		Units:       ev.UnitOfMeasure,
		Description: &vivifyNote,
	}
	if err := repos.FabricTypes.Create(ctx, fabricType); err != nil {
		return nil, err
	}
	return &fabricType.ID, nil
}

// generateItemCode builds "<PREFIX>-<source id fragment>-<timestamp suffix>",
// unique enough for a human-facing code without a dedicated sequence.
func generateItemCode(ev SourceEvent) string {
	idFragment := strings.SplitN(ev.ID.String(), "-", 2)[0]
	suffix := nowFunc().UnixMilli() % 100000
	return fmt.Sprintf("%s-%s-%05d", ev.itemCodePrefix(), strings.ToUpper(idFragment), suffix)
}
