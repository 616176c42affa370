package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/services"
)

// ReconcileTaskHandlers exposes the reconciliation outbox for inspection
// and manual retry.
type ReconcileTaskHandlers struct {
	tasksService services.ReconcileTasksService
}

func NewReconcileTaskHandlers(tasksService services.ReconcileTasksService) *ReconcileTaskHandlers {
	return &ReconcileTaskHandlers{tasksService: tasksService}
}

// List handles GET /reconcile-tasks?status=PENDING
func (h *ReconcileTaskHandlers) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = models.ReconcileStatusPending
	}
	limit, offset := parsePagination(c)

	tasks, err := h.tasksService.ListByStatus(c.Request().Context(), status, limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tasks":  tasks,
		"status": status,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles GET /reconcile-tasks/:id
func (h *ReconcileTaskHandlers) GetByID(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	task, err := h.tasksService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// Retry handles POST /reconcile-tasks/:id/retry
func (h *ReconcileTaskHandlers) Retry(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	task, err := h.tasksService.Retry(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}
