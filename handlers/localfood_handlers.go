package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"sanjijikfarm/pages"
)

// HandleSearchShops runs the localfood search workflow: fetch shops for
// the keyword, geocode their addresses and center the map.
// GET /api/v1/localfood/shops?keyword=
func HandleSearchShops(c *fiber.Ctx) error {
	page := pages.NewLocalfoodPage(deps.Shops, deps.Geocoder, deps.GeocodeLimit, deps.Log)
	page.SetInput(c.Query("keyword"))

	if err := page.Search(context.Background()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "Failed to search shops"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"shops":     page.VisibleShops(),
		"center":    page.Center(),
		"filter":    page.Filter(),
		"sheetOpen": page.SheetOpen(),
	}})
}
