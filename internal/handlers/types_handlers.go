package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/services"
)

type TypeHandlers struct {
	typesService services.TypesService
}

func NewTypeHandlers(typesService services.TypesService) *TypeHandlers {
	return &TypeHandlers{typesService: typesService}
}

type typeRequest struct {
	Name        string  `json:"name"`
	Units       string  `json:"units"`
	Description *string `json:"description"`
}

// CreateThreadType handles POST /thread-types
func (h *TypeHandlers) CreateThreadType(c echo.Context) error {
	var req typeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	threadType := &models.ThreadType{
		Name:        req.Name,
		Units:       req.Units,
		Description: req.Description,
	}
	if err := h.typesService.CreateThreadType(c.Request().Context(), threadType); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, threadType)
}

// GetThreadType handles GET /thread-types/:id
func (h *TypeHandlers) GetThreadType(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	threadType, err := h.typesService.GetThreadType(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, threadType)
}

// ListThreadTypes handles GET /thread-types
func (h *TypeHandlers) ListThreadTypes(c echo.Context) error {
	limit, offset := parsePagination(c)
	types, err := h.typesService.ListThreadTypes(c.Request().Context(), limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"thread_types": types,
		"limit":        limit,
		"offset":       offset,
	})
}

// CreateFabricType handles POST /fabric-types
func (h *TypeHandlers) CreateFabricType(c echo.Context) error {
	var req typeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	fabricType := &models.FabricType{
		Name:        req.Name,
		Units:       req.Units,
		Description: req.Description,
	}
	if err := h.typesService.CreateFabricType(c.Request().Context(), fabricType); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, fabricType)
}

// GetFabricType handles GET /fabric-types/:id
func (h *TypeHandlers) GetFabricType(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	fabricType, err := h.typesService.GetFabricType(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fabricType)
}

// ListFabricTypes handles GET /fabric-types
func (h *TypeHandlers) ListFabricTypes(c echo.Context) error {
	limit, offset := parsePagination(c)
	types, err := h.typesService.ListFabricTypes(c.Request().Context(), limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"fabric_types": types,
		"limit":        limit,
		"offset":       offset,
	})
}
