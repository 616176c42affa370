package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/services"
)

type ThreadPurchaseHandlers struct {
	purchaseService services.ThreadPurchaseService
}

func NewThreadPurchaseHandlers(purchaseService services.ThreadPurchaseService) *ThreadPurchaseHandlers {
	return &ThreadPurchaseHandlers{purchaseService: purchaseService}
}

type threadPurchaseRequest struct {
	VendorID       string          `json:"vendor_id"`
	ThreadTypeName string          `json:"thread_type_name"`
	Color          *string         `json:"color"`
	ColorStatus    string          `json:"color_status"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	UnitOfMeasure  string          `json:"unit_of_measure"`
	Received       bool            `json:"received"`
	DeliveryDate   *time.Time      `json:"delivery_date"`
	AddToInventory bool            `json:"add_to_inventory"`
}

func (req *threadPurchaseRequest) apply(purchase *models.ThreadPurchase) error {
	vendorID, err := parseUUID(req.VendorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid vendor ID")
	}
	purchase.VendorID = vendorID
	purchase.ThreadTypeName = req.ThreadTypeName
	purchase.Color = req.Color
	purchase.ColorStatus = req.ColorStatus
	purchase.Quantity = req.Quantity
	purchase.UnitPrice = req.UnitPrice
	purchase.UnitOfMeasure = req.UnitOfMeasure
	purchase.Received = req.Received
	purchase.DeliveryDate = req.DeliveryDate
	if purchase.ColorStatus == "" {
		purchase.ColorStatus = models.ColorStatusRaw
	}
	if purchase.UnitOfMeasure == "" {
		purchase.UnitOfMeasure = "kg"
	}
	return nil
}

// Create handles POST /thread-purchases
func (h *ThreadPurchaseHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req threadPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	purchase := &models.ThreadPurchase{}
	if err := req.apply(purchase); err != nil {
		return err
	}
	if err := h.purchaseService.Create(ctx, purchase, req.AddToInventory); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, purchase)
}

// GetByID handles GET /thread-purchases/:id
func (h *ThreadPurchaseHandlers) GetByID(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	purchase, err := h.purchaseService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, purchase)
}

// Update handles PUT /thread-purchases/:id. Setting received=true with
// add_to_inventory=true triggers the inventory side effect.
func (h *ThreadPurchaseHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req threadPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	purchase, err := h.purchaseService.GetByID(ctx, id)
	if err != nil {
		return httpError(err)
	}
	if err := req.apply(purchase); err != nil {
		return err
	}
	if err := h.purchaseService.Update(ctx, purchase, req.AddToInventory); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, purchase)
}

// Receive handles PATCH /thread-purchases/:id/receive, the common shortcut
// for marking a purchase received and minting inventory in one call.
func (h *ThreadPurchaseHandlers) Receive(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req struct {
		AddToInventory bool `json:"add_to_inventory"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	purchase, err := h.purchaseService.GetByID(ctx, id)
	if err != nil {
		return httpError(err)
	}
	purchase.Received = true

	if err := h.purchaseService.Update(ctx, purchase, req.AddToInventory); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, purchase)
}

// Delete handles DELETE /thread-purchases/:id
func (h *ThreadPurchaseHandlers) Delete(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.purchaseService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /thread-purchases
func (h *ThreadPurchaseHandlers) List(c echo.Context) error {
	limit, offset := parsePagination(c)
	vendorID, err := optionalUUIDParam(c, "vendor_id")
	if err != nil {
		return err
	}
	purchases, err := h.purchaseService.List(c.Request().Context(), vendorID, limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"thread_purchases": purchases,
		"limit":            limit,
		"offset":           offset,
	})
}
