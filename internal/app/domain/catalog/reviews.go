package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/session"
)

type ReviewAPI interface {
	CreateReview(ctx context.Context, token string, bookID int64, rating int, comment string) error
}

type ReviewHandlers struct {
	*domain.BaseHandler
	api    ReviewAPI
	store  *session.Store
	bus    *notify.Bus
	logger *zap.Logger
}

func NewReviewHandlers(base *domain.BaseHandler, api ReviewAPI, store *session.Store, bus *notify.Bus, logger *zap.Logger) *ReviewHandlers {
	return &ReviewHandlers{
		BaseHandler: base,
		api:         api,
		store:       store,
		bus:         bus,
		logger:      logger,
	}
}

// PostReview lives under the public /books prefix, so it checks the
// session itself instead of relying on the route guard.
func (h *ReviewHandlers) PostReview(c *gin.Context) {
	if !h.store.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/auth/signin")
		return
	}
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/books")
		return
	}
	detail := fmt.Sprintf("/books/%d", bookID)

	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil || rating < 1 || rating > 5 {
		h.bus.Publish(h.store.ID(c), "Điểm đánh giá phải từ 1 đến 5", notify.Warning)
		c.Redirect(http.StatusFound, detail)
		return
	}
	comment := strings.TrimSpace(c.PostForm("comment"))

	if err := h.api.CreateReview(c.Request.Context(), h.store.Token(c), bookID, rating, comment); err != nil {
		h.logger.Warn("Failed to create review", zap.Int64("book_id", bookID), zap.Error(err))
		h.bus.Publish(h.store.ID(c), "Gửi đánh giá thất bại", notify.Error)
	} else {
		h.bus.Publish(h.store.ID(c), "Cảm ơn bạn đã đánh giá", notify.Success)
	}
	c.Redirect(http.StatusFound, detail)
}
