package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/zeeshankeerio/texstock/internal/models"
)

// CacheService is a read-through cache in front of hot inventory reads.
// Errors are surfaced so callers can log-and-continue; a broken cache must
// never fail a request.
type CacheService interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*models.InventoryItem, error)
	SetItem(ctx context.Context, item *models.InventoryItem, ttl time.Duration) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	GetLowStock(ctx context.Context) ([]*models.InventoryItem, error)
	SetLowStock(ctx context.Context, items []*models.InventoryItem, ttl time.Duration) error
	InvalidateLowStock(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedisCacheService(addr, password string, db int, log zerolog.Logger) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis ping failed on initialization")
	}

	return &redisCacheService{client: client, log: log}
}

const lowStockKey = "texstock:inventory:low-stock"

func itemKey(itemID uuid.UUID) string {
	return fmt.Sprintf("texstock:inventory:item:%s", itemID.String())
}

func (r *redisCacheService) GetItem(ctx context.Context, itemID uuid.UUID) (*models.InventoryItem, error) {
	data, err := r.client.Get(ctx, itemKey(itemID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var item models.InventoryItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *redisCacheService) SetItem(ctx context.Context, item *models.InventoryItem, ttl time.Duration) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, itemKey(item.ID), data, ttl).Err()
}

func (r *redisCacheService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return r.client.Del(ctx, itemKey(itemID)).Err()
}

func (r *redisCacheService) GetLowStock(ctx context.Context) ([]*models.InventoryItem, error) {
	data, err := r.client.Get(ctx, lowStockKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var items []*models.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *redisCacheService) SetLowStock(ctx context.Context, items []*models.InventoryItem, ttl time.Duration) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, lowStockKey, data, ttl).Err()
}

func (r *redisCacheService) InvalidateLowStock(ctx context.Context) error {
	return r.client.Del(ctx, lowStockKey).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
