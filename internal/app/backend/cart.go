package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

func (c *Client) Cart(ctx context.Context, token string) (models.Cart, error) {
	return call[models.Cart](ctx, c, http.MethodGet, "/cart", token, nil)
}

func (c *Client) AddToCart(ctx context.Context, token string, bookID int64) (models.Cart, error) {
	body := map[string]int64{"bookId": bookID}
	return call[models.Cart](ctx, c, http.MethodPost, "/cart/items", token, body)
}

func (c *Client) RemoveCartItem(ctx context.Context, token string, itemID int64) (models.Cart, error) {
	return call[models.Cart](ctx, c, http.MethodDelete, fmt.Sprintf("/cart/items/%d", itemID), token, nil)
}

// SelectCartItem toggles an item's participation in checkout.
func (c *Client) SelectCartItem(ctx context.Context, token string, itemID int64, selected bool) (models.Cart, error) {
	body := map[string]bool{"selected": selected}
	return call[models.Cart](ctx, c, http.MethodPut, fmt.Sprintf("/cart/items/%d/selection", itemID), token, body)
}
