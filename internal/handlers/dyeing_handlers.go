package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/zeeshankeerio/texstock/internal/models"
	"github.com/zeeshankeerio/texstock/internal/services"
)

type DyeingHandlers struct {
	dyeingService services.DyeingService
}

func NewDyeingHandlers(dyeingService services.DyeingService) *DyeingHandlers {
	return &DyeingHandlers{dyeingService: dyeingService}
}

type dyeingRequest struct {
	ThreadPurchaseID string           `json:"thread_purchase_id"`
	ColorName        string           `json:"color_name"`
	ColorCode        *string          `json:"color_code"`
	DyeQuantity      decimal.Decimal  `json:"dye_quantity"`
	OutputQuantity   decimal.Decimal  `json:"output_quantity"`
	LaborCost        *decimal.Decimal `json:"labor_cost"`
	DyeMaterialCost  *decimal.Decimal `json:"dye_material_cost"`
	TotalCost        *decimal.Decimal `json:"total_cost"`
	ResultStatus     string           `json:"result_status"`
	AddToInventory   bool             `json:"add_to_inventory"`
}

func (req *dyeingRequest) apply(process *models.DyeingProcess) error {
	purchaseID, err := parseUUID(req.ThreadPurchaseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid thread purchase ID")
	}
	process.ThreadPurchaseID = purchaseID
	process.ColorName = req.ColorName
	process.ColorCode = req.ColorCode
	process.DyeQuantity = req.DyeQuantity
	process.OutputQuantity = req.OutputQuantity
	process.LaborCost = req.LaborCost
	process.DyeMaterialCost = req.DyeMaterialCost
	process.TotalCost = req.TotalCost
	process.ResultStatus = req.ResultStatus
	if process.ResultStatus == "" {
		process.ResultStatus = models.DyeingResultPending
	}
	return nil
}

// Create handles POST /dyeing-processes
func (h *DyeingHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dyeingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	process := &models.DyeingProcess{}
	if err := req.apply(process); err != nil {
		return err
	}
	if err := h.dyeingService.Create(ctx, process, req.AddToInventory); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, process)
}

// GetByID handles GET /dyeing-processes/:id
func (h *DyeingHandlers) GetByID(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	process, err := h.dyeingService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, process)
}

// Update handles PUT /dyeing-processes/:id. A transition to COMPLETED with
// add_to_inventory=true mints the colored thread inventory.
func (h *DyeingHandlers) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}

	var req dyeingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	process, err := h.dyeingService.GetByID(ctx, id)
	if err != nil {
		return httpError(err)
	}
	if err := req.apply(process); err != nil {
		return err
	}
	if err := h.dyeingService.Update(ctx, process, req.AddToInventory); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, process)
}

// Delete handles DELETE /dyeing-processes/:id
func (h *DyeingHandlers) Delete(c echo.Context) error {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.dyeingService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /dyeing-processes
func (h *DyeingHandlers) List(c echo.Context) error {
	limit, offset := parsePagination(c)
	purchaseID, err := optionalUUIDParam(c, "thread_purchase_id")
	if err != nil {
		return err
	}
	processes, err := h.dyeingService.List(c.Request().Context(), purchaseID, limit, offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"dyeing_processes": processes,
		"limit":            limit,
		"offset":           offset,
	})
}
