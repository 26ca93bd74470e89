package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sanjijikfarm/models"
	"sanjijikfarm/pages"
)

// HandleGetReport returns one month's carbon report: the purchase summary,
// the weekly reduction chart and the date-grouped purchase history.
// Months after the current real month are rejected.
// GET /api/v1/report?year=&month=
func HandleGetReport(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid month"})
	}

	ym := models.YearMonth{Year: year, Month: time.Month(month)}
	if ym.After(models.YearMonthOf(now)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Report month cannot be in the future"})
	}

	data, err := deps.Reports.Load(context.Background(), ym)
	if err != nil {
		deps.Log.Error("carbon report load failed",
			zap.Int("year", ym.Year), zap.Int("month", int(ym.Month)), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "Failed to load carbon report"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"month":           ym,
		"summary":         data.Monthly,
		"weeklyReduction": pages.BuildWeeklyReduction(data.Weekly),
		"purchaseHistory": pages.GroupPurchaseHistory(data.Products),
	}})
}
