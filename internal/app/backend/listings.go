package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

type ListingParams struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       int64   `json:"price"`
	Condition   string  `json:"condition,omitempty"`
	CategoryID  int64   `json:"categoryId,omitempty"`
	AuthorIDs   []int64 `json:"authorIds,omitempty"`
	Images      []string `json:"images,omitempty"`
}

func (c *Client) MyListings(ctx context.Context, token string, page int) (models.Page[models.Listing], error) {
	return call[models.Page[models.Listing]](ctx, c, http.MethodGet, fmt.Sprintf("/listings/mine?page=%d", page), token, nil)
}

func (c *Client) CreateListing(ctx context.Context, token string, params ListingParams) (models.Listing, error) {
	return call[models.Listing](ctx, c, http.MethodPost, "/listings", token, params)
}

// SubmitListing moves a draft into the admin approval queue.
func (c *Client) SubmitListing(ctx context.Context, token string, id int64) (models.Listing, error) {
	return call[models.Listing](ctx, c, http.MethodPost, fmt.Sprintf("/listings/%d/submit", id), token, nil)
}

func (c *Client) DeleteListing(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/listings/%d", id), token, nil, nil)
}
