package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers bundles every handler group for route registration.
type Handlers struct {
	Health           *HealthHandlers
	Vendors          *VendorHandlers
	Customers        *CustomerHandlers
	Types            *TypeHandlers
	ThreadPurchases  *ThreadPurchaseHandlers
	Dyeing           *DyeingHandlers
	FabricProduction *FabricProductionHandlers
	Inventory        *InventoryHandlers
	Sales            *SalesHandlers
	ReconcileTasks   *ReconcileTaskHandlers
}

// RegisterRoutes mounts every endpoint under /api, plus the bare /health.
func (h *Handlers) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api")

	vendors := api.Group("/vendors")
	vendors.POST("", h.Vendors.Create)
	vendors.GET("", h.Vendors.List)
	vendors.GET("/:id", h.Vendors.GetByID)
	vendors.PUT("/:id", h.Vendors.Update)
	vendors.DELETE("/:id", h.Vendors.Delete)

	customers := api.Group("/customers")
	customers.POST("", h.Customers.Create)
	customers.GET("", h.Customers.List)
	customers.GET("/:id", h.Customers.GetByID)
	customers.PUT("/:id", h.Customers.Update)
	customers.DELETE("/:id", h.Customers.Delete)

	threadTypes := api.Group("/thread-types")
	threadTypes.POST("", h.Types.CreateThreadType)
	threadTypes.GET("", h.Types.ListThreadTypes)
	threadTypes.GET("/:id", h.Types.GetThreadType)

	fabricTypes := api.Group("/fabric-types")
	fabricTypes.POST("", h.Types.CreateFabricType)
	fabricTypes.GET("", h.Types.ListFabricTypes)
	fabricTypes.GET("/:id", h.Types.GetFabricType)

	purchases := api.Group("/thread-purchases")
	purchases.POST("", h.ThreadPurchases.Create)
	purchases.GET("", h.ThreadPurchases.List)
	purchases.GET("/:id", h.ThreadPurchases.GetByID)
	purchases.PUT("/:id", h.ThreadPurchases.Update)
	purchases.PATCH("/:id/receive", h.ThreadPurchases.Receive)
	purchases.DELETE("/:id", h.ThreadPurchases.Delete)

	dyeing := api.Group("/dyeing-processes")
	dyeing.POST("", h.Dyeing.Create)
	dyeing.GET("", h.Dyeing.List)
	dyeing.GET("/:id", h.Dyeing.GetByID)
	dyeing.PUT("/:id", h.Dyeing.Update)
	dyeing.DELETE("/:id", h.Dyeing.Delete)

	fabric := api.Group("/fabric-productions")
	fabric.POST("", h.FabricProduction.Create)
	fabric.GET("", h.FabricProduction.List)
	fabric.GET("/:id", h.FabricProduction.GetByID)
	fabric.PUT("/:id", h.FabricProduction.Update)
	fabric.DELETE("/:id", h.FabricProduction.Delete)

	inventory := api.Group("/inventory")
	inventory.POST("", h.Inventory.CreateItem)
	inventory.GET("", h.Inventory.ListItems)
	inventory.GET("/low-stock", h.Inventory.LowStock)
	inventory.GET("/search", h.Inventory.Search)
	inventory.GET("/code/:code", h.Inventory.GetItemByCode)
	inventory.POST("/add-dyeing/:id", h.Inventory.AddDyeingToInventory)
	inventory.POST("/add-fabric/:id", h.Inventory.AddFabricToInventory)
	inventory.GET("/:id", h.Inventory.GetItem)
	inventory.PUT("/:id", h.Inventory.UpdateItem)
	inventory.DELETE("/:id", h.Inventory.DeleteItem)
	inventory.GET("/:id/transactions", h.Inventory.ListTransactions)
	inventory.POST("/:id/transactions", h.Inventory.RecordTransaction)

	sales := api.Group("/sales")
	sales.POST("", h.Sales.CreateOrder)
	sales.GET("", h.Sales.ListOrders)
	sales.GET("/:id", h.Sales.GetOrder)
	sales.POST("/:id/payments", h.Sales.RecordPayment)
	sales.GET("/:id/payments", h.Sales.ListPayments)

	tasks := api.Group("/reconcile-tasks")
	tasks.GET("", h.ReconcileTasks.List)
	tasks.GET("/:id", h.ReconcileTasks.GetByID)
	tasks.POST("/:id/retry", h.ReconcileTasks.Retry)
}
