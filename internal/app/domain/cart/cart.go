package cart

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/session"
	"github.com/bangg2309/book-exchange/internal/app/signal"
)

type CartAPI interface {
	Cart(ctx context.Context, token string) (models.Cart, error)
	AddToCart(ctx context.Context, token string, bookID int64) (models.Cart, error)
	RemoveCartItem(ctx context.Context, token string, itemID int64) (models.Cart, error)
	SelectCartItem(ctx context.Context, token string, itemID int64, selected bool) (models.Cart, error)
}

type CartHandlers struct {
	*domain.BaseHandler
	api     CartAPI
	store   *session.Store
	signals *signal.Hub
	bus     *notify.Bus
	logger  *zap.Logger
}

func NewCartHandlers(base *domain.BaseHandler, api CartAPI, store *session.Store, signals *signal.Hub, bus *notify.Bus, logger *zap.Logger) *CartHandlers {
	return &CartHandlers{
		BaseHandler: base,
		api:         api,
		store:       store,
		signals:     signals,
		bus:         bus,
		logger:      logger,
	}
}

func (h *CartHandlers) ShowCart(c *gin.Context) {
	cart, err := h.api.Cart(c.Request.Context(), h.store.Token(c))
	if err != nil {
		h.logger.Warn("Failed to load cart", zap.Error(err))
		cart = models.Cart{}
	}
	h.RenderPage(c, "Giỏ hàng - Trạm Sách Cũ", "Giỏ hàng", CartPage(cart))
}

func (h *CartHandlers) AddItem(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.PostForm("bookId"), 10, 64)
	if err != nil {
		c.Status(400)
		return
	}

	sid := h.store.ID(c)
	if _, err := h.api.AddToCart(c.Request.Context(), h.store.Token(c), bookID); err != nil {
		h.logger.Warn("Failed to add to cart", zap.Int64("book_id", bookID), zap.Error(err))
		h.bus.Publish(sid, "Không thêm được vào giỏ hàng", notify.Error)
		c.Status(502)
		return
	}

	h.signals.Publish(signal.CartUpdated, sid)
	h.bus.Publish(sid, "Đã thêm vào giỏ hàng", notify.Success)
	c.Status(200)
}

func (h *CartHandlers) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(400)
		return
	}

	sid := h.store.ID(c)
	cart, err := h.api.RemoveCartItem(c.Request.Context(), h.store.Token(c), itemID)
	if err != nil {
		h.logger.Warn("Failed to remove cart item", zap.Int64("item_id", itemID), zap.Error(err))
		h.bus.Publish(sid, "Không xoá được sản phẩm", notify.Error)
		c.Status(502)
		return
	}

	h.signals.Publish(signal.CartUpdated, sid)
	h.RenderFragment(c, 200, CartContents(cart))
}

// ToggleItem flips an item's checkout selection and re-renders the
// cart with the recomputed selected-only subtotal.
func (h *CartHandlers) ToggleItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(400)
		return
	}
	selected := c.PostForm("selected") == "true" || c.PostForm("selected") == "on"

	sid := h.store.ID(c)
	cart, err := h.api.SelectCartItem(c.Request.Context(), h.store.Token(c), itemID, selected)
	if err != nil {
		h.logger.Warn("Failed to toggle cart item", zap.Int64("item_id", itemID), zap.Error(err))
		c.Status(502)
		return
	}

	h.signals.Publish(signal.CartUpdated, sid)
	h.RenderFragment(c, 200, CartContents(cart))
}
