package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

type PlaceOrderParams struct {
	AddressID   int64   `json:"addressId"`
	CartItemIDs []int64 `json:"cartItemIds"`
}

// PlaceOrder creates an order from the selected cart items. The result
// carries the external payment URL to redirect the buyer to.
func (c *Client) PlaceOrder(ctx context.Context, token string, params PlaceOrderParams) (models.Order, error) {
	return call[models.Order](ctx, c, http.MethodPost, "/orders", token, params)
}

func (c *Client) Orders(ctx context.Context, token string, page int) (models.Page[models.Order], error) {
	return call[models.Page[models.Order]](ctx, c, http.MethodGet, fmt.Sprintf("/orders?page=%d", page), token, nil)
}

func (c *Client) Order(ctx context.Context, token string, id int64) (*models.Order, error) {
	order, err := call[models.Order](ctx, c, http.MethodGet, fmt.Sprintf("/orders/%d", id), token, nil)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ReportPaymentResult relays the gateway callback verdict so the
// backend can settle or release the order.
func (c *Client) ReportPaymentResult(ctx context.Context, token string, orderID int64, success bool, gatewayCode string) error {
	body := map[string]any{"success": success, "gatewayCode": gatewayCode}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/payment-result", orderID), token, body, nil)
}
