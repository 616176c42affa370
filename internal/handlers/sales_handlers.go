package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/services"
)

type SalesHandlers struct {
	salesService    services.SalesService
	paymentsService services.PaymentsService
}

func NewSalesHandlers(salesService services.SalesService, paymentsService services.PaymentsService) *SalesHandlers {
	return &SalesHandlers{
		salesService:    salesService,
		paymentsService: paymentsService,
	}
}

type salesOrderRequest struct {
	CustomerID      string           `json:"customer_id"`
	OrderDate       *time.Time       `json:"order_date"`
	Discount        *decimal.Decimal `json:"discount"`
	DeliveryAddress *string          `json:"delivery_address"`
	DeliveryDate    *time.Time       `json:"delivery_date"`
	Remarks         *string          `json:"remarks"`
	Items           []struct {
		ItemID    string          `json:"item_id"`
		Quantity  decimal.Decimal `json:"quantity"`
		UnitPrice decimal.Decimal `json:"unit_price"`
	} `json:"items"`
}

// CreateOrder handles POST /sales. Stock for every line is decremented in
// the same transaction; an order with any short line is rejected whole.
func (h *SalesHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req salesOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	customerID, err := parseUUID(req.CustomerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid customer ID")
	}

	order := &models.SalesOrder{
		CustomerID:      customerID,
		Discount:        req.Discount,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
		Remarks:         req.Remarks,
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	for _, line := range req.Items {
		itemID, err := parseUUID(line.ItemID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid item ID in order line")
		}
		order.Items = append(order.Items, &models.SalesOrderItem{
			ItemID:    itemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	if err := h.salesService.CreateOrder(ctx, order); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

// GetOrder handles GET /sales/:id
func (h *SalesHandlers) GetOrder(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	order, err := h.salesService.GetOrder(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// ListOrders handles GET /sales
func (h *SalesHandlers) ListOrders(c echo.Context) error {
	limit, offset := parsePagination(c)
	customerID, err := optionalUUIDParam(c, "customer_id")
	if err != nil {
		return err
	}
	orders, err := h.salesService.ListOrders(c.Request().Context(), customerID, limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"limit":  limit,
		"offset": offset,
	})
}

// RecordPayment handles POST /sales/:id/payments
func (h *SalesHandlers) RecordPayment(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req struct {
		Amount      decimal.Decimal `json:"amount"`
		Mode        string          `json:"mode"`
		Reference   *string         `json:"reference"`
		Remarks     *string         `json:"remarks"`
		PaymentDate *time.Time      `json:"payment_date"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	payment := &models.Payment{
		SalesOrderID: orderID,
		Amount:       req.Amount,
		Mode:         req.Mode,
		Reference:    req.Reference,
		Remarks:      req.Remarks,
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}

	if err := h.paymentsService.RecordPayment(ctx, payment); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /sales/:id/payments
func (h *SalesHandlers) ListPayments(c echo.Context) error {
	orderID, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	payments, err := h.paymentsService.ListByOrder(c.Request().Context(), orderID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"payments": payments,
		"count":    len(payments),
	})
}
