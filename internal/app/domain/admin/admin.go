package admin

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

// AdminAPI is the slice of the backend client the console needs.
type AdminAPI interface {
	Books(ctx context.Context, query backend.BookQuery) (models.Page[models.Book], error)
	Authors(ctx context.Context, page, size int) (models.Page[models.Author], error)
	Categories(ctx context.Context) ([]models.Category, error)

	AdminUsers(ctx context.Context, token string, page int) (models.Page[models.UserProfile], error)
	AdminSetUserRoles(ctx context.Context, token, userID string, roles []models.RoleName) error
	AdminDeleteUser(ctx context.Context, token, userID string) error

	AdminCreateAuthor(ctx context.Context, token string, params backend.AuthorParams) (models.Author, error)
	AdminUpdateAuthor(ctx context.Context, token string, id int64, params backend.AuthorParams) (models.Author, error)
	AdminDeleteAuthor(ctx context.Context, token string, id int64) error

	AdminCreateBook(ctx context.Context, token string, params backend.BookParams) (models.Book, error)
	AdminUpdateBook(ctx context.Context, token string, id int64, params backend.BookParams) (models.Book, error)
	AdminDeleteBook(ctx context.Context, token string, id int64) error

	AdminSlides(ctx context.Context, token string) ([]models.Slide, error)
	AdminCreateSlide(ctx context.Context, token string, params backend.SlideParams) (models.Slide, error)
	AdminUpdateSlide(ctx context.Context, token string, id int64, params backend.SlideParams) (models.Slide, error)
	AdminDeleteSlide(ctx context.Context, token string, id int64) error

	AdminPendingListings(ctx context.Context, token string, page int) (models.Page[models.Listing], error)
	AdminReviewListing(ctx context.Context, token string, id int64, approve bool, note string) error
}

type AdminHandlers struct {
	*domain.BaseHandler
	api    AdminAPI
	store  *session.Store
	bus    *notify.Bus
	logger *zap.Logger
}

func NewAdminHandlers(base *domain.BaseHandler, api AdminAPI, store *session.Store, bus *notify.Bus, logger *zap.Logger) *AdminHandlers {
	return &AdminHandlers{
		BaseHandler: base,
		api:         api,
		store:       store,
		bus:         bus,
		logger:      logger,
	}
}

func pageParam(c *gin.Context) int {
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed > 0 {
		return parsed
	}
	return 0
}

func (h *AdminHandlers) ShowDashboard(c *gin.Context) {
	pending, err := h.api.AdminPendingListings(c.Request.Context(), h.store.Token(c), 0)
	if err != nil {
		h.logger.Warn("Failed to load pending listings", zap.Error(err))
	}
	h.RenderPage(c, "Quản trị - Trạm Sách Cũ", "", DashboardPage(pending.TotalItems))
}

// --- Authors ---

func (h *AdminHandlers) ShowAuthors(c *gin.Context) {
	authors, err := h.api.Authors(c.Request.Context(), pageParam(c), 20)
	if err != nil {
		h.logger.Warn("Failed to load authors", zap.Error(err))
		authors = models.Page[models.Author]{}
	}
	h.RenderPage(c, "Quản lý tác giả - Trạm Sách Cũ", "", AuthorsPage(authors))
}

func (h *AdminHandlers) CreateAuthor(c *gin.Context) {
	params := backend.AuthorParams{
		Name:   strings.TrimSpace(c.PostForm("name")),
		Bio:    c.PostForm("bio"),
		Avatar: c.PostForm("avatar"),
	}
	if params.Name == "" {
		h.bus.Publish(h.store.ID(c), "Tên tác giả không được để trống", notify.Warning)
		c.Redirect(http.StatusFound, "/admin/authors")
		return
	}
	if _, err := h.api.AdminCreateAuthor(c.Request.Context(), h.store.Token(c), params); err != nil {
		h.adminError(c, err, "Thêm tác giả thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Thêm tác giả thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/authors")
}

func (h *AdminHandlers) UpdateAuthor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/authors")
		return
	}
	params := backend.AuthorParams{
		Name:   strings.TrimSpace(c.PostForm("name")),
		Bio:    c.PostForm("bio"),
		Avatar: c.PostForm("avatar"),
	}
	if _, err := h.api.AdminUpdateAuthor(c.Request.Context(), h.store.Token(c), id, params); err != nil {
		h.adminError(c, err, "Cập nhật tác giả thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Cập nhật tác giả thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/authors")
}

func (h *AdminHandlers) DeleteAuthor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/authors")
		return
	}
	if err := h.api.AdminDeleteAuthor(c.Request.Context(), h.store.Token(c), id); err != nil {
		h.adminError(c, err, "Xóa tác giả thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Xóa tác giả thành công", notify.Success)
	}
	h.refreshAuthors(c)
}

func (h *AdminHandlers) refreshAuthors(c *gin.Context) {
	if c.GetHeader("HX-Request") != "true" {
		c.Redirect(http.StatusFound, "/admin/authors")
		return
	}
	authors, err := h.api.Authors(c.Request.Context(), 0, 20)
	if err != nil {
		h.logger.Warn("Failed to reload authors", zap.Error(err))
		authors = models.Page[models.Author]{}
	}
	h.RenderFragment(c, 200, AuthorTable(authors))
}

// --- Books ---

func (h *AdminHandlers) ShowBooks(c *gin.Context) {
	books, err := h.api.Books(c.Request.Context(), backend.BookQuery{Page: pageParam(c), Size: 20, Search: c.Query("q")})
	if err != nil {
		h.logger.Warn("Failed to load books", zap.Error(err))
		books = models.Page[models.Book]{}
	}
	categories, err := h.api.Categories(c.Request.Context())
	if err != nil {
		h.logger.Warn("Failed to load categories", zap.Error(err))
	}
	h.RenderPage(c, "Quản lý sách - Trạm Sách Cũ", "", BooksPage(books, categories))
}

func bookParamsFromForm(c *gin.Context) backend.BookParams {
	params := backend.BookParams{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: c.PostForm("description"),
		Condition:   c.PostForm("condition"),
		Thumbnail:   c.PostForm("thumbnail"),
	}
	if price, err := strconv.ParseInt(c.PostForm("price"), 10, 64); err == nil {
		params.Price = price
	}
	if categoryID, err := strconv.ParseInt(c.PostForm("categoryId"), 10, 64); err == nil {
		params.CategoryID = categoryID
	}
	for _, raw := range c.PostFormArray("authorIds") {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			params.AuthorIDs = append(params.AuthorIDs, id)
		}
	}
	return params
}

func (h *AdminHandlers) CreateBook(c *gin.Context) {
	params := bookParamsFromForm(c)
	if params.Title == "" || params.Price <= 0 {
		h.bus.Publish(h.store.ID(c), "Tiêu đề và giá bán là bắt buộc", notify.Warning)
		c.Redirect(http.StatusFound, "/admin/books")
		return
	}
	if _, err := h.api.AdminCreateBook(c.Request.Context(), h.store.Token(c), params); err != nil {
		h.adminError(c, err, "Thêm sách thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Thêm sách thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/books")
}

func (h *AdminHandlers) UpdateBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/books")
		return
	}
	if _, err := h.api.AdminUpdateBook(c.Request.Context(), h.store.Token(c), id, bookParamsFromForm(c)); err != nil {
		h.adminError(c, err, "Cập nhật sách thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Cập nhật sách thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/books")
}

func (h *AdminHandlers) DeleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/books")
		return
	}
	if err := h.api.AdminDeleteBook(c.Request.Context(), h.store.Token(c), id); err != nil {
		h.adminError(c, err, "Xóa sách thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Xóa sách thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/books")
}

// --- Users ---

func (h *AdminHandlers) ShowUsers(c *gin.Context) {
	users, err := h.api.AdminUsers(c.Request.Context(), h.store.Token(c), pageParam(c))
	if err != nil {
		h.logger.Warn("Failed to load users", zap.Error(err))
		users = models.Page[models.UserProfile]{}
	}
	h.RenderPage(c, "Quản lý người dùng - Trạm Sách Cũ", "", UsersPage(users))
}

func (h *AdminHandlers) SetUserRoles(c *gin.Context) {
	userID := c.Param("id")
	var roles []models.RoleName
	for _, raw := range c.PostFormArray("roles") {
		switch models.RoleName(strings.ToUpper(raw)) {
		case models.RoleAdmin:
			roles = append(roles, models.RoleAdmin)
		case models.RoleSeller:
			roles = append(roles, models.RoleSeller)
		case models.RoleUser:
			roles = append(roles, models.RoleUser)
		}
	}
	if len(roles) == 0 {
		roles = []models.RoleName{models.RoleUser}
	}
	if err := h.api.AdminSetUserRoles(c.Request.Context(), h.store.Token(c), userID, roles); err != nil {
		h.adminError(c, err, "Cập nhật vai trò thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Cập nhật vai trò thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/users")
}

func (h *AdminHandlers) DeleteUser(c *gin.Context) {
	if err := h.api.AdminDeleteUser(c.Request.Context(), h.store.Token(c), c.Param("id")); err != nil {
		h.adminError(c, err, "Xóa người dùng thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Xóa người dùng thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/users")
}

// --- Slides ---

func (h *AdminHandlers) ShowSlides(c *gin.Context) {
	slides, err := h.api.AdminSlides(c.Request.Context(), h.store.Token(c))
	if err != nil {
		h.logger.Warn("Failed to load slides", zap.Error(err))
	}
	h.RenderPage(c, "Quản lý banner - Trạm Sách Cũ", "", SlidesPage(slides))
}

func slideParamsFromForm(c *gin.Context) backend.SlideParams {
	params := backend.SlideParams{
		Title:    c.PostForm("title"),
		ImageURL: strings.TrimSpace(c.PostForm("imageUrl")),
		LinkURL:  c.PostForm("linkUrl"),
		Active:   c.PostForm("active") == "true",
	}
	if ordinal, err := strconv.Atoi(c.PostForm("ordinal")); err == nil {
		params.Ordinal = ordinal
	}
	return params
}

func (h *AdminHandlers) CreateSlide(c *gin.Context) {
	params := slideParamsFromForm(c)
	if params.ImageURL == "" {
		h.bus.Publish(h.store.ID(c), "Ảnh banner là bắt buộc", notify.Warning)
		c.Redirect(http.StatusFound, "/admin/slides")
		return
	}
	if _, err := h.api.AdminCreateSlide(c.Request.Context(), h.store.Token(c), params); err != nil {
		h.adminError(c, err, "Thêm banner thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Thêm banner thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/slides")
}

func (h *AdminHandlers) UpdateSlide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/slides")
		return
	}
	if _, err := h.api.AdminUpdateSlide(c.Request.Context(), h.store.Token(c), id, slideParamsFromForm(c)); err != nil {
		h.adminError(c, err, "Cập nhật banner thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Cập nhật banner thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/slides")
}

func (h *AdminHandlers) DeleteSlide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/slides")
		return
	}
	if err := h.api.AdminDeleteSlide(c.Request.Context(), h.store.Token(c), id); err != nil {
		h.adminError(c, err, "Xóa banner thất bại")
	} else {
		h.bus.Publish(h.store.ID(c), "Xóa banner thành công", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/slides")
}

// --- Listing approvals ---

func (h *AdminHandlers) ShowPendingListings(c *gin.Context) {
	pending, err := h.api.AdminPendingListings(c.Request.Context(), h.store.Token(c), pageParam(c))
	if err != nil {
		h.logger.Warn("Failed to load pending listings", zap.Error(err))
		pending = models.Page[models.Listing]{}
	}
	h.RenderPage(c, "Duyệt tin đăng - Trạm Sách Cũ", "", PendingListingsPage(pending))
}

func (h *AdminHandlers) ReviewListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/listings")
		return
	}
	approve := c.PostForm("decision") == "approve"
	note := c.PostForm("note")
	if !approve && strings.TrimSpace(note) == "" {
		h.bus.Publish(h.store.ID(c), "Cần ghi chú lý do khi từ chối", notify.Warning)
		c.Redirect(http.StatusFound, "/admin/listings")
		return
	}
	if err := h.api.AdminReviewListing(c.Request.Context(), h.store.Token(c), id, approve, note); err != nil {
		h.adminError(c, err, "Duyệt tin đăng thất bại")
	} else if approve {
		h.bus.Publish(h.store.ID(c), "Đã duyệt tin đăng", notify.Success)
	} else {
		h.bus.Publish(h.store.ID(c), "Đã từ chối tin đăng", notify.Success)
	}
	c.Redirect(http.StatusFound, "/admin/listings")
}

// adminError prefers the backend's own message when it returned one.
func (h *AdminHandlers) adminError(c *gin.Context, err error, fallback string) {
	h.logger.Warn("Admin operation failed", zap.Error(err))
	message := fallback
	if apiErr, ok := backend.IsAPIError(err); ok && apiErr.Message != "" {
		message = apiErr.Message
	}
	h.bus.Publish(h.store.ID(c), message, notify.Error)
}
