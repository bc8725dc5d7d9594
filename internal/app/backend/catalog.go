package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

// BookQuery narrows the public catalog listing.
type BookQuery struct {
	Page       int
	Size       int
	Search     string
	CategoryID int64
	AuthorID   int64
	SchoolID   int64
}

func (q BookQuery) encode() string {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		values.Set("size", strconv.Itoa(q.Size))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.CategoryID > 0 {
		values.Set("categoryId", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.AuthorID > 0 {
		values.Set("authorId", strconv.FormatInt(q.AuthorID, 10))
	}
	if q.SchoolID > 0 {
		values.Set("schoolId", strconv.FormatInt(q.SchoolID, 10))
	}
	return values.Encode()
}

func (c *Client) Books(ctx context.Context, query BookQuery) (models.Page[models.Book], error) {
	return call[models.Page[models.Book]](ctx, c, http.MethodGet, "/books?"+query.encode(), "", nil)
}

func (c *Client) Book(ctx context.Context, id int64) (*models.Book, error) {
	book, err := call[models.Book](ctx, c, http.MethodGet, fmt.Sprintf("/books/%d", id), "", nil)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) BookReviews(ctx context.Context, bookID int64) ([]models.Review, error) {
	return call[[]models.Review](ctx, c, http.MethodGet, fmt.Sprintf("/books/%d/reviews", bookID), "", nil)
}

func (c *Client) CreateReview(ctx context.Context, token string, bookID int64, rating int, comment string) error {
	body := map[string]any{"rating": rating, "comment": comment}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/books/%d/reviews", bookID), token, body, nil)
}

func (c *Client) Authors(ctx context.Context, page, size int) (models.Page[models.Author], error) {
	path := fmt.Sprintf("/authors?page=%d&size=%d", page, size)
	return call[models.Page[models.Author]](ctx, c, http.MethodGet, path, "", nil)
}

func (c *Client) Author(ctx context.Context, id int64) (*models.Author, error) {
	author, err := call[models.Author](ctx, c, http.MethodGet, fmt.Sprintf("/authors/%d", id), "", nil)
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	return call[[]models.Category](ctx, c, http.MethodGet, "/categories", "", nil)
}

func (c *Client) Schools(ctx context.Context) ([]models.School, error) {
	return call[[]models.School](ctx, c, http.MethodGet, "/schools", "", nil)
}

func (c *Client) Slides(ctx context.Context) ([]models.Slide, error) {
	return call[[]models.Slide](ctx, c, http.MethodGet, "/slides", "", nil)
}
