package handlers

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/zeeshankeerio/texstock/internal/caching"
)

type HealthHandlers struct {
	db    *pgxpool.Pool
	cache caching.CacheService
}

func NewHealthHandlers(db *pgxpool.Pool, cache caching.CacheService) *HealthHandlers {
	return &HealthHandlers{db: db, cache: cache}
}

type healthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthCheck handles GET /health. The service is degraded but alive when
// redis is down; dead when the database is unreachable.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()
	health := &healthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
	}

	if err := h.db.Ping(ctx); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "unhealthy"
	} else {
		health.Services["database"] = "healthy"
	}

	if err := h.cache.Ping(ctx); err != nil {
		health.Services["redis"] = "unhealthy"
		if health.Status == "healthy" {
			health.Status = "degraded"
		}
	} else {
		health.Services["redis"] = "healthy"
	}

	statusCode := http.StatusOK
	if health.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	return c.JSON(statusCode, health)
}
