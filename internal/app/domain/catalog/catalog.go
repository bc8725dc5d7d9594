package catalog

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/backend"
	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/models"
)

const pageSize = 20

type CatalogAPI interface {
	Books(ctx context.Context, query backend.BookQuery) (models.Page[models.Book], error)
	Book(ctx context.Context, id int64) (*models.Book, error)
	BookReviews(ctx context.Context, bookID int64) ([]models.Review, error)
	Authors(ctx context.Context, page, size int) (models.Page[models.Author], error)
	Author(ctx context.Context, id int64) (*models.Author, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Schools(ctx context.Context) ([]models.School, error)
}

type CatalogHandlers struct {
	*domain.BaseHandler
	api    CatalogAPI
	logger *zap.Logger
}

func NewCatalogHandlers(base *domain.BaseHandler, api CatalogAPI, logger *zap.Logger) *CatalogHandlers {
	return &CatalogHandlers{BaseHandler: base, api: api, logger: logger}
}

// ShowBooks lists the catalog with search and pagination. Requested
// pages are clamped so no out-of-range page is ever issued.
func (h *CatalogHandlers) ShowBooks(c *gin.Context) {
	query := backend.BookQuery{
		Page:   parsePage(c.Query("page")),
		Size:   pageSize,
		Search: c.Query("q"),
	}
	if categoryID, err := strconv.ParseInt(c.Query("category"), 10, 64); err == nil {
		query.CategoryID = categoryID
	}
	if schoolID, err := strconv.ParseInt(c.Query("school"), 10, 64); err == nil {
		query.SchoolID = schoolID
	}

	books, err := h.api.Books(c.Request.Context(), query)
	if err != nil {
		h.logger.Warn("Failed to load books", zap.Error(err))
		books = models.Page[models.Book]{}
	}

	if clamped := models.ClampPage(query.Page, books.TotalPages); clamped != query.Page {
		query.Page = clamped
		if books, err = h.api.Books(c.Request.Context(), query); err != nil {
			books = models.Page[models.Book]{}
		}
	}

	categories, err := h.api.Categories(c.Request.Context())
	if err != nil {
		h.logger.Warn("Failed to load categories", zap.Error(err))
	}
	schools, err := h.api.Schools(c.Request.Context())
	if err != nil {
		h.logger.Warn("Failed to load schools", zap.Error(err))
	}

	h.RenderPage(c, "Sách - Trạm Sách Cũ", "Sách", BooksPage(books, categories, schools, query.Search))
}

func (h *CatalogHandlers) ShowBookDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(302, "/books")
		return
	}

	book, err := h.api.Book(c.Request.Context(), id)
	if err != nil || book == nil {
		h.logger.Warn("Failed to load book", zap.Int64("id", id), zap.Error(err))
		c.Redirect(302, "/books")
		return
	}

	reviews, err := h.api.BookReviews(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("Failed to load reviews", zap.Int64("book_id", id), zap.Error(err))
	}

	h.RenderPage(c, book.Title+" - Trạm Sách Cũ", "Sách", BookDetailPage(*book, reviews))
}

func (h *CatalogHandlers) ShowAuthors(c *gin.Context) {
	page := parsePage(c.Query("page"))
	authors, err := h.api.Authors(c.Request.Context(), page, pageSize)
	if err != nil {
		h.logger.Warn("Failed to load authors", zap.Error(err))
		authors = models.Page[models.Author]{}
	}
	h.RenderPage(c, "Tác giả - Trạm Sách Cũ", "Tác giả", AuthorsPage(authors))
}

func (h *CatalogHandlers) ShowAuthorDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(302, "/authors")
		return
	}
	author, err := h.api.Author(c.Request.Context(), id)
	if err != nil || author == nil {
		c.Redirect(302, "/authors")
		return
	}
	books, err := h.api.Books(c.Request.Context(), backend.BookQuery{AuthorID: id, Size: pageSize})
	if err != nil {
		books = models.Page[models.Book]{}
	}
	h.RenderPage(c, author.Name+" - Trạm Sách Cũ", "Tác giả", AuthorDetailPage(*author, books))
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0
	}
	return page
}
