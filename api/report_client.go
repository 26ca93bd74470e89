package api

import (
	"context"
	"net/url"
	"strconv"

	"sanjijikfarm/models"
)

func monthQuery(ym models.YearMonth) url.Values {
	return url.Values{
		"year":  {strconv.Itoa(ym.Year)},
		"month": {strconv.Itoa(int(ym.Month))},
	}
}

// WeeklyCarbon fetches the weekly saved-CO2 buckets for a month.
func (c *Client) WeeklyCarbon(ctx context.Context, ym models.YearMonth) ([]models.WeeklyCarbon, error) {
	var weeks []models.WeeklyCarbon
	if err := c.getJSON(ctx, "/api/report/weekly", monthQuery(ym), &weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}

// MonthlyCarbon fetches a month's purchase-count/saved-CO2 aggregate.
func (c *Client) MonthlyCarbon(ctx context.Context, ym models.YearMonth) (models.MonthlyCarbon, error) {
	var monthly models.MonthlyCarbon
	if err := c.getJSON(ctx, "/api/report/monthly", monthQuery(ym), &monthly); err != nil {
		return models.MonthlyCarbon{}, err
	}
	return monthly, nil
}

// ProductCarbon fetches a month's per-product saved-CO2 rows.
func (c *Client) ProductCarbon(ctx context.Context, ym models.YearMonth) ([]models.ProductCarbon, error) {
	var products []models.ProductCarbon
	if err := c.getJSON(ctx, "/api/report/products", monthQuery(ym), &products); err != nil {
		return nil, err
	}
	return products, nil
}
