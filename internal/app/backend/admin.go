package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

// Admin-only endpoints. The backend enforces authorization on its side
// as well; the route guard here only shapes navigation.

func (c *Client) AdminUsers(ctx context.Context, token string, page int) (models.Page[models.UserProfile], error) {
	return call[models.Page[models.UserProfile]](ctx, c, http.MethodGet, fmt.Sprintf("/admin/users?page=%d", page), token, nil)
}

func (c *Client) AdminSetUserRoles(ctx context.Context, token, userID string, roles []models.RoleName) error {
	body := map[string]any{"roles": roles}
	return c.do(ctx, http.MethodPut, "/admin/users/"+userID+"/roles", token, body, nil)
}

func (c *Client) AdminDeleteUser(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+userID, token, nil, nil)
}

type AuthorParams struct {
	Name   string `json:"name"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func (c *Client) AdminCreateAuthor(ctx context.Context, token string, params AuthorParams) (models.Author, error) {
	return call[models.Author](ctx, c, http.MethodPost, "/admin/authors", token, params)
}

func (c *Client) AdminUpdateAuthor(ctx context.Context, token string, id int64, params AuthorParams) (models.Author, error) {
	return call[models.Author](ctx, c, http.MethodPut, fmt.Sprintf("/admin/authors/%d", id), token, params)
}

func (c *Client) AdminDeleteAuthor(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/authors/%d", id), token, nil, nil)
}

type BookParams struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       int64   `json:"price"`
	Condition   string  `json:"condition,omitempty"`
	CategoryID  int64   `json:"categoryId,omitempty"`
	AuthorIDs   []int64 `json:"authorIds,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
}

func (c *Client) AdminCreateBook(ctx context.Context, token string, params BookParams) (models.Book, error) {
	return call[models.Book](ctx, c, http.MethodPost, "/admin/books", token, params)
}

func (c *Client) AdminUpdateBook(ctx context.Context, token string, id int64, params BookParams) (models.Book, error) {
	return call[models.Book](ctx, c, http.MethodPut, fmt.Sprintf("/admin/books/%d", id), token, params)
}

func (c *Client) AdminDeleteBook(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/books/%d", id), token, nil, nil)
}

type SlideParams struct {
	Title    string `json:"title,omitempty"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl,omitempty"`
	Ordinal  int    `json:"ordinal,omitempty"`
	Active   bool   `json:"active"`
}

func (c *Client) AdminSlides(ctx context.Context, token string) ([]models.Slide, error) {
	return call[[]models.Slide](ctx, c, http.MethodGet, "/admin/slides", token, nil)
}

func (c *Client) AdminCreateSlide(ctx context.Context, token string, params SlideParams) (models.Slide, error) {
	return call[models.Slide](ctx, c, http.MethodPost, "/admin/slides", token, params)
}

func (c *Client) AdminUpdateSlide(ctx context.Context, token string, id int64, params SlideParams) (models.Slide, error) {
	return call[models.Slide](ctx, c, http.MethodPut, fmt.Sprintf("/admin/slides/%d", id), token, params)
}

func (c *Client) AdminDeleteSlide(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/slides/%d", id), token, nil, nil)
}

func (c *Client) AdminPendingListings(ctx context.Context, token string, page int) (models.Page[models.Listing], error) {
	path := fmt.Sprintf("/admin/listings?status=PENDING&page=%d", page)
	return call[models.Page[models.Listing]](ctx, c, http.MethodGet, path, token, nil)
}

func (c *Client) AdminReviewListing(ctx context.Context, token string, id int64, approve bool, note string) error {
	body := map[string]any{"approve": approve, "note": note}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/listings/%d/review", id), token, body, nil)
}
