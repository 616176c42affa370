package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/services"
)

type VendorHandlers struct {
	vendorService services.VendorService
}

func NewVendorHandlers(vendorService services.VendorService) *VendorHandlers {
	return &VendorHandlers{vendorService: vendorService}
}

type vendorRequest struct {
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Notes        *string `json:"notes"`
}

// Create handles POST /vendors
func (h *VendorHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req vendorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	vendor := &models.Vendor{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		City:         req.City,
		Notes:        req.Notes,
	}
	if err := h.vendorService.Create(ctx, vendor); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, vendor)
}

// GetByID handles GET /vendors/:id
func (h *VendorHandlers) GetByID(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	vendor, err := h.vendorService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vendor)
}

// Update handles PUT /vendors/:id
func (h *VendorHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req vendorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	vendor, err := h.vendorService.GetByID(ctx, id)
	if err != nil {
		return httpError(err)
	}
	vendor.Name = req.Name
	vendor.ContactName = req.ContactName
	vendor.ContactEmail = req.ContactEmail
	vendor.ContactPhone = req.ContactPhone
	vendor.Address = req.Address
	vendor.City = req.City
	vendor.Notes = req.Notes

	if err := h.vendorService.Update(ctx, vendor); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vendor)
}

// Delete handles DELETE /vendors/:id
func (h *VendorHandlers) Delete(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.vendorService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /vendors
func (h *VendorHandlers) List(c echo.Context) error {
	limit, offset := parsePagination(c)
	vendors, err := h.vendorService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"vendors": vendors,
		"limit":   limit,
		"offset":  offset,
	})
}
