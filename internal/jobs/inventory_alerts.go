package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/zeeshankeerio/texstock/internal/caching"
	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/repositories"
)

// InventoryAlertService sweeps for items at or below their minimum stock
// level and logs alerts. The sweep result also refreshes the low-stock
// cache so dashboard reads stay warm.
type InventoryAlertService struct {
	inventoryRepo repositories.InventoryRepository
	cache         caching.CacheService
	log           zerolog.Logger
}

func NewInventoryAlertService(
	inventoryRepo repositories.InventoryRepository,
	cache caching.CacheService,
	log zerolog.Logger,
) *InventoryAlertService {
	return &InventoryAlertService{
		inventoryRepo: inventoryRepo,
		cache:         cache,
		log:           log,
	}
}

// CheckLowStock returns every item at or below its own minimum stock level.
func (a *InventoryAlertService) CheckLowStock(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := a.inventoryRepo.LowStock(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("low-stock sweep query failed")
		return nil, err
	}
	return items, nil
}

// Sweep runs one low-stock pass: query, log alerts, refresh the cache.
func (a *InventoryAlertService) Sweep(ctx context.Context) {
	items, err := a.CheckLowStock(ctx)
	if err != nil {
		return
	}

	for _, item := range items {
		a.log.Warn().
			Str("item_code", item.ItemCode).
			Str("description", item.Description).
			Str("current_quantity", item.CurrentQuantity.String()).
			Str("min_stock_level", item.MinStockLevel.String()).
			Msg("item at or below minimum stock level")
	}
	if len(items) == 0 {
		a.log.Debug().Msg("low-stock sweep found no items below threshold")
	}

	if err := a.cache.SetLowStock(ctx, items, 35*time.Minute); err != nil {
		a.log.Warn().Err(err).Msg("low-stock cache refresh failed")
	}
}
