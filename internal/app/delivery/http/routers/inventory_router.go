package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/inventory"

	"github.com/go-chi/chi/v5"
)

func attachInventoryRoutes(router chi.Router, middlewares *middlewares.Middlewares, inventoryController *inventory.InventoryController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", inventoryController.CreateItem)
	router.Get("/", inventoryController.GetItems)
	router.Get("/{itemID}", inventoryController.GetItemByID)
	router.Put("/{itemID}", inventoryController.UpdateItem)
	router.Post("/{itemID}/adjust", inventoryController.AdjustStock)
}
