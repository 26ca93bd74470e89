package api

import (
	"context"
	"net/url"

	"sanjijikfarm/models"
)

// ShopList fetches the unfiltered shop list.
func (c *Client) ShopList(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	if err := c.getJSON(ctx, "/api/shops", nil, &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

// SearchShops fetches the shops matching a keyword.
func (c *Client) SearchShops(ctx context.Context, keyword string) ([]models.Shop, error) {
	query := url.Values{"keyword": {keyword}}
	var shops []models.Shop
	if err := c.getJSON(ctx, "/api/shops/search", query, &shops); err != nil {
		return nil, err
	}
	return shops, nil
}
