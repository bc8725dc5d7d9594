package domain

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/observability/metrics"
	"github.com/bangg2309/book-exchange/internal/app/pages"
	"github.com/bangg2309/book-exchange/internal/app/session"
)

var mainNav = models.Navigation{
	Items: []models.NavItem{
		{Name: "Sách", URL: "/books"},
		{Name: "Tác giả", URL: "/authors"},
		{Name: "Giỏ hàng", URL: "/cart"},
		{Name: "Tin đăng của tôi", URL: "/listings"},
	},
}

type BaseHandler struct {
	Logger *zap.Logger
	Store  *session.Store
}

func NewBaseHandler(logger *zap.Logger, store *session.Store) *BaseHandler {
	return &BaseHandler{Logger: logger, Store: store}
}

func (h *BaseHandler) render(c *gin.Context, status int, component templ.Component) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.Logger.Error("Failed to render component", zap.Error(err))
	}
}

// RenderPage renders content inside the layout for full navigations and
// bare for HTMX fragment swaps.
func (h *BaseHandler) RenderPage(c *gin.Context, title, activeNav string, content templ.Component) {
	metrics.RecordPageRender(c.Request.Context(), c.FullPath())
	if c.GetHeader("HX-Request") == "true" {
		h.render(c, 200, content)
		return
	}
	h.render(c, 200, pages.LayoutPage(models.LayoutTempl{
		Title:     title,
		Content:   content,
		Nav:       mainNav,
		ActiveNav: activeNav,
		User:      h.Store.CurrentUser(c),
	}))
}

// RenderFragment renders a bare component regardless of request kind.
func (h *BaseHandler) RenderFragment(c *gin.Context, status int, component templ.Component) {
	h.render(c, status, component)
}
