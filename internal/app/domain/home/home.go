package home

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/backend"
	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/models"
)

type CatalogAPI interface {
	Slides(ctx context.Context) ([]models.Slide, error)
	Books(ctx context.Context, query backend.BookQuery) (models.Page[models.Book], error)
}

type HomeHandlers struct {
	*domain.BaseHandler
	api    CatalogAPI
	cache  *gocache.Cache
	logger *zap.Logger
}

func NewHomeHandlers(base *domain.BaseHandler, api CatalogAPI, logger *zap.Logger) *HomeHandlers {
	return &HomeHandlers{
		BaseHandler: base,
		api:         api,
		cache:       gocache.New(5*time.Minute, 10*time.Minute),
		logger:      logger,
	}
}

// ShowHomePage renders slides plus the newest books. Backend failures
// degrade to empty sections; the home page always renders.
func (h *HomeHandlers) ShowHomePage(c *gin.Context) {
	slides := h.slides(c.Request.Context())

	books, err := h.api.Books(c.Request.Context(), backend.BookQuery{Page: 0, Size: 12})
	if err != nil {
		h.logger.Warn("Failed to load featured books", zap.Error(err))
		books = models.Page[models.Book]{}
	}

	h.RenderPage(c, "Trạm Sách Cũ - Mua bán sách đã qua sử dụng", "", HomePage(slides, books))
}

func (h *HomeHandlers) slides(ctx context.Context) []models.Slide {
	if cached, ok := h.cache.Get("slides"); ok {
		return cached.([]models.Slide)
	}
	slides, err := h.api.Slides(ctx)
	if err != nil {
		h.logger.Warn("Failed to load slides", zap.Error(err))
		return nil
	}
	h.cache.SetDefault("slides", slides)
	return slides
}
