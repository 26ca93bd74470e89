package routes

import (
	"github.com/gofiber/fiber/v2"

	"sanjijikfarm/handlers"
	"sanjijikfarm/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Localfood Map ---
	localfood := api.Group("/localfood")
	localfood.Get("/shops", handlers.HandleSearchShops)

	// --- Receipts ---
	receipts := api.Group("/receipts", middleware.JWTMiddleware)
	receipts.Get("/:receiptId", handlers.HandleGetReceiptDetail)

	// --- Carbon Report ---
	report := api.Group("/report", middleware.JWTMiddleware)
	report.Get("/", handlers.HandleGetReport)
}
