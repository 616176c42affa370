package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/services"
)

type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

type inventoryItemRequest struct {
	ItemCode      string           `json:"item_code"`
	Category      string           `json:"category"`
	ThreadTypeID  *string          `json:"thread_type_id"`
	FabricTypeID  *string          `json:"fabric_type_id"`
	Description   string           `json:"description"`
	UnitOfMeasure string           `json:"unit_of_measure"`
	CostPerUnit   decimal.Decimal  `json:"cost_per_unit"`
	SalePrice     decimal.Decimal  `json:"sale_price"`
	MinStockLevel decimal.Decimal  `json:"min_stock_level"`
	Location      *string          `json:"location"`
	Quantity      *decimal.Decimal `json:"current_quantity"`
}

func (req *inventoryItemRequest) apply(item *models.InventoryItem) error {
	item.ItemCode = req.ItemCode
	item.Category = models.ProductCategory(req.Category)
	item.Description = req.Description
	item.UnitOfMeasure = req.UnitOfMeasure
	item.CostPerUnit = req.CostPerUnit
	item.SalePrice = req.SalePrice
	item.MinStockLevel = req.MinStockLevel
	item.Location = req.Location
	if req.Quantity != nil {
		item.CurrentQuantity = *req.Quantity
	}

	item.ThreadTypeID = nil
	item.FabricTypeID = nil
	if req.ThreadTypeID != nil && *req.ThreadTypeID != "" {
		id, err := parseUUID(*req.ThreadTypeID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid thread type ID")
		}
		item.ThreadTypeID = &id
	}
	if req.FabricTypeID != nil && *req.FabricTypeID != "" {
		id, err := parseUUID(*req.FabricTypeID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid fabric type ID")
		}
		item.FabricTypeID = &id
	}
	return nil
}

// CreateItem handles POST /inventory
func (h *InventoryHandlers) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req inventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	item := &models.InventoryItem{}
	if err := req.apply(item); err != nil {
		return err
	}
	if err := h.inventoryService.CreateItem(ctx, item); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// GetItem handles GET /inventory/:id
func (h *InventoryHandlers) GetItem(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	item, err := h.inventoryService.GetItem(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// GetItemByCode handles GET /inventory/code/:code
func (h *InventoryHandlers) GetItemByCode(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Item code is required")
	}
	item, err := h.inventoryService.GetItemByCode(c.Request().Context(), code)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT /inventory/:id. Quantity and cost fields move
// through transactions, not through this endpoint; only descriptive fields
// and the stock threshold change here.
func (h *InventoryHandlers) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req inventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	item, err := h.inventoryService.GetItem(ctx, id)
	if err != nil {
		return httpError(err)
	}
	quantity := item.CurrentQuantity
	costPerUnit := item.CostPerUnit
	if err := req.apply(item); err != nil {
		return err
	}
	item.CurrentQuantity = quantity
	item.CostPerUnit = costPerUnit

	if err := h.inventoryService.UpdateItem(ctx, item); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /inventory/:id
func (h *InventoryHandlers) DeleteItem(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.inventoryService.DeleteItem(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListItems handles GET /inventory
func (h *InventoryHandlers) ListItems(c echo.Context) error {
	limit, offset := parsePagination(c)
	items, err := h.inventoryService.ListItems(c.Request().Context(), limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// LowStock handles GET /inventory/low-stock
func (h *InventoryHandlers) LowStock(c echo.Context) error {
	items, err := h.inventoryService.LowStock(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// Search handles GET /inventory/search with query-string filters.
func (h *InventoryHandlers) Search(c echo.Context) error {
	filter := &models.InventorySearchFilter{
		Query:     c.QueryParam("q"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}
	filter.Limit, filter.Offset = parsePagination(c)

	if category := c.QueryParam("category"); category != "" {
		pc := models.ProductCategory(category)
		if !pc.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "Category must be THREAD or FABRIC")
		}
		filter.Category = &pc
	}
	var err error
	if filter.ThreadTypeID, err = optionalUUIDParam(c, "thread_type_id"); err != nil {
		return err
	}
	if filter.FabricTypeID, err = optionalUUIDParam(c, "fabric_type_id"); err != nil {
		return err
	}
	if raw := c.QueryParam("min_quantity"); raw != "" {
		q, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid min_quantity")
		}
		filter.MinQuantity = &q
	}
	if raw := c.QueryParam("max_quantity"); raw != "" {
		q, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid max_quantity")
		}
		filter.MaxQuantity = &q
	}
	if raw := c.QueryParam("low_stock_only"); raw != "" {
		filter.LowStockOnly, _ = strconv.ParseBool(raw)
	}

	items, err := h.inventoryService.Search(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}

// ListTransactions handles GET /inventory/:id/transactions
func (h *InventoryHandlers) ListTransactions(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	limit, offset := parsePagination(c)
	transactions, err := h.inventoryService.ListTransactions(c.Request().Context(), id, limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"limit":        limit,
		"offset":       offset,
	})
}

// RecordTransaction handles POST /inventory/:id/transactions for manual
// adjustments and transfers.
func (h *InventoryHandlers) RecordTransaction(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req struct {
		Type     string          `json:"type"`
		Quantity decimal.Decimal `json:"quantity"`
		UnitCost decimal.Decimal `json:"unit_cost"`
		Notes    *string         `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	txn, err := h.inventoryService.RecordTransaction(ctx, id, models.TransactionType(req.Type), req.Quantity, req.UnitCost, req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, txn)
}

// AddDyeingToInventory handles POST /inventory/add-dyeing/:id
func (h *InventoryHandlers) AddDyeingToInventory(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	txn, err := h.inventoryService.AddDyeingToInventory(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, txn)
}

// AddFabricToInventory handles POST /inventory/add-fabric/:id
func (h *InventoryHandlers) AddFabricToInventory(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	txn, err := h.inventoryService.AddFabricToInventory(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, txn)
}
