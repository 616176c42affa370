package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/services"
)

type CustomerHandlers struct {
	customerService services.CustomerService
}

func NewCustomerHandlers(customerService services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerService: customerService}
}

type customerRequest struct {
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Notes        *string `json:"notes"`
}

// Create handles POST /customers
func (h *CustomerHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	customer := &models.Customer{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		City:         req.City,
		Notes:        req.Notes,
	}
	if err := h.customerService.Create(ctx, customer); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, customer)
}

// GetByID handles GET /customers/:id
func (h *CustomerHandlers) GetByID(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	customer, err := h.customerService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Update handles PUT /customers/:id
func (h *CustomerHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	customer, err := h.customerService.GetByID(ctx, id)
	if err != nil {
		return httpError(err)
	}
	customer.Name = req.Name
	customer.ContactName = req.ContactName
	customer.ContactEmail = req.ContactEmail
	customer.ContactPhone = req.ContactPhone
	customer.Address = req.Address
	customer.City = req.City
	customer.Notes = req.Notes

	if err := h.customerService.Update(ctx, customer); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandlers) Delete(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.customerService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /customers
func (h *CustomerHandlers) List(c echo.Context) error {
	limit, offset := parsePagination(c)
	customers, err := h.customerService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"customers": customers,
		"limit":     limit,
		"offset":    offset,
	})
}
