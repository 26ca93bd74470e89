package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"sanjijikfarm/middleware"
	"sanjijikfarm/pages"
	"sanjijikfarm/utils"
)

// HandleGetReceiptDetail returns one receipt with every line item merged
// against the review list.
// GET /api/v1/receipts/:receiptId
func HandleGetReceiptDetail(c *fiber.Ctx) error {
	username, err := middleware.ExtractUsername(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Unauthorized"})
	}
	receiptID := c.Params("receiptId")

	page := pages.NewReceiptDetailPage(deps.Receipts, username, receiptID, deps.Log)
	if err := page.Load(context.Background()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "Failed to load receipt"})
	}

	receipt := page.Receipt()
	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"receipt":        receipt,
		"totalFormatted": utils.FormatWon(receipt.TotalAmount),
	}})
}
