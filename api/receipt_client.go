package api

import (
	"context"
	"fmt"
	"net/url"

	"sanjijikfarm/models"
)

// ReceiptDetail fetches one receipt, line items included, for a user.
func (c *Client) ReceiptDetail(ctx context.Context, username, receiptID string) (models.Receipt, error) {
	path := fmt.Sprintf("/api/users/%s/receipts/%s", url.PathEscape(username), url.PathEscape(receiptID))
	var receipt models.Receipt
	if err := c.getJSON(ctx, path, nil, &receipt); err != nil {
		return models.Receipt{}, err
	}
	return receipt, nil
}

// ReviewList fetches the full review list.
func (c *Client) ReviewList(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.getJSON(ctx, "/api/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
