package listings

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/backend"
	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/session"
)

type ListingAPI interface {
	MyListings(ctx context.Context, token string, page int) (models.Page[models.Listing], error)
	CreateListing(ctx context.Context, token string, params backend.ListingParams) (models.Listing, error)
	SubmitListing(ctx context.Context, token string, id int64) (models.Listing, error)
	DeleteListing(ctx context.Context, token string, id int64) error
	Categories(ctx context.Context) ([]models.Category, error)
}

type ListingHandlers struct {
	*domain.BaseHandler
	api    ListingAPI
	store  *session.Store
	bus    *notify.Bus
	logger *zap.Logger
}

func NewListingHandlers(base *domain.BaseHandler, api ListingAPI, store *session.Store, bus *notify.Bus, logger *zap.Logger) *ListingHandlers {
	return &ListingHandlers{
		BaseHandler: base,
		api:         api,
		store:       store,
		bus:         bus,
		logger:      logger,
	}
}

func (h *ListingHandlers) ShowMyListings(c *gin.Context) {
	page := 0
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed > 0 {
		page = parsed
	}
	listings, err := h.api.MyListings(c.Request.Context(), h.store.Token(c), page)
	if err != nil {
		h.logger.Warn("Failed to load listings", zap.Error(err))
		listings = models.Page[models.Listing]{}
	}
	h.RenderPage(c, "Tin đăng của tôi - Trạm Sách Cũ", "Tin đăng của tôi", MyListingsPage(listings))
}

func (h *ListingHandlers) ShowNewListing(c *gin.Context) {
	categories, err := h.api.Categories(c.Request.Context())
	if err != nil {
		h.logger.Warn("Failed to load categories", zap.Error(err))
	}
	h.RenderPage(c, "Đăng bán sách - Trạm Sách Cũ", "Tin đăng của tôi", NewListingPage(categories))
}

func (h *ListingHandlers) CreateListing(c *gin.Context) {
	price, err := strconv.ParseInt(c.PostForm("price"), 10, 64)
	if err != nil || price <= 0 {
		h.bus.Publish(h.store.ID(c), "Giá bán không hợp lệ", notify.Warning)
		c.Redirect(http.StatusFound, "/listings/new")
		return
	}
	params := backend.ListingParams{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: c.PostForm("description"),
		Price:       price,
		Condition:   c.PostForm("condition"),
	}
	if params.Title == "" {
		h.bus.Publish(h.store.ID(c), "Tiêu đề không được để trống", notify.Warning)
		c.Redirect(http.StatusFound, "/listings/new")
		return
	}
	if categoryID, err := strconv.ParseInt(c.PostForm("categoryId"), 10, 64); err == nil {
		params.CategoryID = categoryID
	}
	for _, raw := range c.PostFormArray("images") {
		if raw = strings.TrimSpace(raw); raw != "" {
			params.Images = append(params.Images, raw)
		}
	}

	listing, err := h.api.CreateListing(c.Request.Context(), h.store.Token(c), params)
	if err != nil {
		h.logger.Warn("Failed to create listing", zap.Error(err))
		message := "Đăng tin thất bại"
		if apiErr, ok := backend.IsAPIError(err); ok && apiErr.Message != "" {
			message = apiErr.Message
		}
		h.bus.Publish(h.store.ID(c), message, notify.Error)
		c.Redirect(http.StatusFound, "/listings/new")
		return
	}

	h.bus.Publish(h.store.ID(c), "Đã lưu tin đăng nháp", notify.Success)
	h.logger.Info("Listing created", zap.Int64("id", listing.ID))
	c.Redirect(http.StatusFound, "/listings")
}

// SubmitListing moves a draft into the approval queue; only drafts can
// be submitted, the backend rejects anything else.
func (h *ListingHandlers) SubmitListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/listings")
		return
	}
	if _, err := h.api.SubmitListing(c.Request.Context(), h.store.Token(c), id); err != nil {
		h.logger.Warn("Failed to submit listing", zap.Int64("id", id), zap.Error(err))
		h.bus.Publish(h.store.ID(c), "Gửi duyệt thất bại", notify.Error)
	} else {
		h.bus.Publish(h.store.ID(c), "Đã gửi tin đăng chờ duyệt", notify.Success)
	}
	h.redirectOrRefresh(c)
}

func (h *ListingHandlers) DeleteListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/listings")
		return
	}
	if err := h.api.DeleteListing(c.Request.Context(), h.store.Token(c), id); err != nil {
		h.logger.Warn("Failed to delete listing", zap.Int64("id", id), zap.Error(err))
		h.bus.Publish(h.store.ID(c), "Xoá tin đăng thất bại", notify.Error)
	} else {
		h.bus.Publish(h.store.ID(c), "Đã xoá tin đăng", notify.Success)
	}
	h.redirectOrRefresh(c)
}

func (h *ListingHandlers) redirectOrRefresh(c *gin.Context) {
	if c.GetHeader("HX-Request") == "true" {
		listings, err := h.api.MyListings(c.Request.Context(), h.store.Token(c), 0)
		if err != nil {
			h.logger.Warn("Failed to reload listings", zap.Error(err))
			listings = models.Page[models.Listing]{}
		}
		h.RenderFragment(c, 200, ListingList(listings))
		return
	}
	c.Redirect(http.StatusFound, "/listings")
}
