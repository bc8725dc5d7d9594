package checkout

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/backend"
	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/session"
	"github.com/bangg2309/book-exchange/internal/app/signal"
)

type CheckoutAPI interface {
	Cart(ctx context.Context, token string) (models.Cart, error)
	Addresses(ctx context.Context, token string) ([]models.Address, error)
	PlaceOrder(ctx context.Context, token string, params backend.PlaceOrderParams) (models.Order, error)
	Order(ctx context.Context, token string, id int64) (*models.Order, error)
	Orders(ctx context.Context, token string, page int) (models.Page[models.Order], error)
	ReportPaymentResult(ctx context.Context, token string, orderID int64, success bool, gatewayCode string) error
}

type CheckoutHandlers struct {
	*domain.BaseHandler
	api     CheckoutAPI
	store   *session.Store
	signals *signal.Hub
	bus     *notify.Bus
	logger  *zap.Logger
}

func NewCheckoutHandlers(base *domain.BaseHandler, api CheckoutAPI, store *session.Store, signals *signal.Hub, bus *notify.Bus, logger *zap.Logger) *CheckoutHandlers {
	return &CheckoutHandlers{
		BaseHandler: base,
		api:         api,
		store:       store,
		signals:     signals,
		bus:         bus,
		logger:      logger,
	}
}

func (h *CheckoutHandlers) ShowCheckout(c *gin.Context) {
	token := h.store.Token(c)
	cart, err := h.api.Cart(c.Request.Context(), token)
	if err != nil {
		h.logger.Warn("Failed to load cart for checkout", zap.Error(err))
		cart = models.Cart{}
	}
	if cart.SelectedCount() == 0 {
		h.bus.Publish(h.store.ID(c), "Chọn ít nhất một sản phẩm để thanh toán", notify.Warning)
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	addresses, err := h.api.Addresses(c.Request.Context(), token)
	if err != nil {
		h.logger.Warn("Failed to load addresses for checkout", zap.Error(err))
	}

	h.RenderPage(c, "Thanh toán - Trạm Sách Cũ", "", CheckoutPage(cart, addresses))
}

// PlaceOrder creates the order and hands the buyer to the external
// payment page. The gateway owns everything between here and the
// return redirect.
func (h *CheckoutHandlers) PlaceOrder(c *gin.Context) {
	addressID, err := strconv.ParseInt(c.PostForm("addressId"), 10, 64)
	if err != nil {
		h.bus.Publish(h.store.ID(c), "Vui lòng chọn địa chỉ giao hàng", notify.Warning)
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	token := h.store.Token(c)
	cart, err := h.api.Cart(c.Request.Context(), token)
	if err != nil {
		h.bus.Publish(h.store.ID(c), "Không tải được giỏ hàng, thử lại sau", notify.Error)
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	var itemIDs []int64
	for _, item := range cart.Items {
		if item.Selected {
			itemIDs = append(itemIDs, item.ID)
		}
	}

	order, err := h.api.PlaceOrder(c.Request.Context(), token, backend.PlaceOrderParams{
		AddressID:   addressID,
		CartItemIDs: itemIDs,
	})
	if err != nil {
		h.logger.Warn("Failed to place order", zap.Error(err))
		h.bus.Publish(h.store.ID(c), "Đặt hàng thất bại, thử lại sau", notify.Error)
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	h.signals.Publish(signal.CartUpdated, h.store.ID(c))
	if order.PaymentURL != "" {
		c.Redirect(http.StatusFound, order.PaymentURL)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/orders/%d", order.ID))
}

// PaymentReturn handles the gateway's return redirect. Callback flows
// always toast an explanation, success or not.
func (h *CheckoutHandlers) PaymentReturn(c *gin.Context) {
	sid := h.store.ID(c)

	result, err := ParsePaymentReturn(c.Request.URL.Query())
	if err != nil {
		h.logger.Warn("Malformed payment return", zap.Error(err))
		h.bus.Publish(sid, "Kết quả thanh toán không hợp lệ", notify.Error)
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	token := h.store.Token(c)
	if err := h.api.ReportPaymentResult(c.Request.Context(), token, result.OrderID, result.Success(), result.Code); err != nil {
		h.logger.Warn("Failed to report payment result", zap.Int64("order_id", result.OrderID), zap.Error(err))
	}

	if result.Success() {
		h.bus.Publish(sid, "Thanh toán thành công", notify.Success)
	} else {
		h.bus.Publish(sid, "Thanh toán không thành công (mã "+result.Code+")", notify.Error)
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/orders/%d", result.OrderID))
}

func (h *CheckoutHandlers) ShowOrders(c *gin.Context) {
	page := 0
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed > 0 {
		page = parsed
	}
	orders, err := h.api.Orders(c.Request.Context(), h.store.Token(c), page)
	if err != nil {
		h.logger.Warn("Failed to load orders", zap.Error(err))
		orders = models.Page[models.Order]{}
	}
	h.RenderPage(c, "Đơn hàng - Trạm Sách Cũ", "", OrdersPage(orders))
}

func (h *CheckoutHandlers) ShowOrderDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/orders")
		return
	}
	order, err := h.api.Order(c.Request.Context(), h.store.Token(c), id)
	if err != nil || order == nil {
		h.logger.Warn("Failed to load order", zap.Int64("id", id), zap.Error(err))
		c.Redirect(http.StatusFound, "/orders")
		return
	}
	h.RenderPage(c, fmt.Sprintf("Đơn hàng #%d - Trạm Sách Cũ", id), "", OrderDetailPage(*order))
}
