package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/services"
)

type FabricProductionHandlers struct {
	fabricService services.FabricProductionService
}

func NewFabricProductionHandlers(fabricService services.FabricProductionService) *FabricProductionHandlers {
	return &FabricProductionHandlers{fabricService: fabricService}
}

type fabricProductionRequest struct {
	ThreadPurchaseID *string          `json:"thread_purchase_id"`
	DyeingProcessID  *string          `json:"dyeing_process_id"`
	FabricTypeName   string           `json:"fabric_type_name"`
	Color            *string          `json:"color"`
	Dimensions       *string          `json:"dimensions"`
	QuantityProduced decimal.Decimal  `json:"quantity_produced"`
	ThreadUsed       decimal.Decimal  `json:"thread_used"`
	UnitOfMeasure    string           `json:"unit_of_measure"`
	ProductionCost   decimal.Decimal  `json:"production_cost"`
	LaborCost        *decimal.Decimal `json:"labor_cost"`
	TotalCost        decimal.Decimal  `json:"total_cost"`
	Status           string           `json:"status"`
	AddToInventory   bool             `json:"add_to_inventory"`
}

func (req *fabricProductionRequest) apply(production *models.FabricProduction) error {
	production.ThreadPurchaseID = nil
	production.DyeingProcessID = nil
	if req.ThreadPurchaseID != nil && *req.ThreadPurchaseID != "" {
		id, err := parseUUID(*req.ThreadPurchaseID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid thread purchase ID")
		}
		production.ThreadPurchaseID = &id
	}
	if req.DyeingProcessID != nil && *req.DyeingProcessID != "" {
		id, err := parseUUID(*req.DyeingProcessID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid dyeing process ID")
		}
		production.DyeingProcessID = &id
	}
	production.FabricTypeName = req.FabricTypeName
	production.Color = req.Color
	production.Dimensions = req.Dimensions
	production.QuantityProduced = req.QuantityProduced
	production.ThreadUsed = req.ThreadUsed
	production.UnitOfMeasure = req.UnitOfMeasure
	production.ProductionCost = req.ProductionCost
	production.LaborCost = req.LaborCost
	production.TotalCost = req.TotalCost
	production.Status = req.Status
	if production.Status == "" {
		production.Status = models.FabricStatusPending
	}
	if production.UnitOfMeasure == "" {
		production.UnitOfMeasure = "meters"
	}
	return nil
}

// Create handles POST /fabric-productions
func (h *FabricProductionHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req fabricProductionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	production := &models.FabricProduction{}
	if err := req.apply(production); err != nil {
		return err
	}
	if err := h.fabricService.Create(ctx, production, req.AddToInventory); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, production)
}

// GetByID handles GET /fabric-productions/:id
func (h *FabricProductionHandlers) GetByID(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	production, err := h.fabricService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, production)
}

// Update handles PUT /fabric-productions/:id. A transition to COMPLETED with
// add_to_inventory=true mints the fabric inventory.
func (h *FabricProductionHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req fabricProductionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	production, err := h.fabricService.GetByID(ctx, id)
	if err != nil {
		return httpError(err)
	}
	if err := req.apply(production); err != nil {
		return err
	}
	if err := h.fabricService.Update(ctx, production, req.AddToInventory); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, production)
}

// Delete handles DELETE /fabric-productions/:id
func (h *FabricProductionHandlers) Delete(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.fabricService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /fabric-productions
func (h *FabricProductionHandlers) List(c echo.Context) error {
	limit, offset := parsePagination(c)
	productions, err := h.fabricService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"fabric_productions": productions,
		"limit":              limit,
		"offset":             offset,
	})
}
