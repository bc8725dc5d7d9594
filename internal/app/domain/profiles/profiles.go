package profiles

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/backend"
	"github.com/bangg2309/book-exchange/internal/app/components/banner"
	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/session"
	"github.com/bangg2309/book-exchange/internal/app/signal"
)

type ProfileAPI interface {
	Profile(ctx context.Context, token string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, params backend.UpdateProfileParams) (*models.UserProfile, error)
	ChangePassword(ctx context.Context, token string, params backend.ChangePasswordParams) error
}

type ProfileHandlers struct {
	*domain.BaseHandler
	api     ProfileAPI
	store   *session.Store
	signals *signal.Hub
	bus     *notify.Bus
	logger  *zap.Logger
}

func NewProfileHandlers(base *domain.BaseHandler, api ProfileAPI, store *session.Store, signals *signal.Hub, bus *notify.Bus, logger *zap.Logger) *ProfileHandlers {
	return &ProfileHandlers{
		BaseHandler: base,
		api:         api,
		store:       store,
		signals:     signals,
		bus:         bus,
		logger:      logger,
	}
}

func (h *ProfileHandlers) ShowProfile(c *gin.Context) {
	profile := h.store.CurrentUser(c)
	if profile == nil {
		// Token-only session; try the backend once before rendering.
		fetched, err := h.api.Profile(c.Request.Context(), h.store.Token(c))
		if err != nil {
			h.logger.Warn("Failed to fetch profile", zap.Error(err))
		} else {
			h.store.SetProfile(c, fetched)
			profile = fetched
		}
	}
	h.RenderPage(c, "Hồ sơ - Trạm Sách Cũ", "", ProfilePage(profile))
}

func (h *ProfileHandlers) UpdateProfile(c *gin.Context) {
	params := backend.UpdateProfileParams{
		FullName: c.PostForm("fullName"),
		Phone:    c.PostForm("phone"),
		Avatar:   c.PostForm("avatar"),
	}
	updated, err := h.api.UpdateProfile(c.Request.Context(), h.store.Token(c), params)
	if err != nil {
		h.logger.Warn("Failed to update profile", zap.Error(err))
		h.bus.Publish(h.store.ID(c), "Cập nhật hồ sơ thất bại", notify.Error)
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	h.store.SetProfile(c, updated)
	h.signals.Publish(signal.AuthChanged, h.store.ID(c))
	h.bus.Publish(h.store.ID(c), "Đã cập nhật hồ sơ", notify.Success)
	c.Redirect(http.StatusFound, "/profile")
}

// ChangePassword renders its failure inline in the form instead of
// toasting, so the message stays next to the fields that caused it.
func (h *ProfileHandlers) ChangePassword(c *gin.Context) {
	current := c.PostForm("currentPassword")
	next := c.PostForm("newPassword")
	confirm := c.PostForm("confirmPassword")

	if next == "" || next != confirm {
		h.passwordError(c, "Mật khẩu mới không khớp")
		return
	}

	err := h.api.ChangePassword(c.Request.Context(), h.store.Token(c), backend.ChangePasswordParams{
		CurrentPassword: current,
		NewPassword:     next,
	})
	if err != nil {
		message := "Đổi mật khẩu thất bại"
		if apiErr, ok := backend.IsAPIError(err); ok && apiErr.Message != "" {
			message = apiErr.Message
		}
		h.passwordError(c, message)
		return
	}

	h.bus.Publish(h.store.ID(c), "Đã đổi mật khẩu", notify.Success)
	c.Header("HX-Redirect", "/profile")
	c.Status(http.StatusOK)
}

func (h *ProfileHandlers) passwordError(c *gin.Context, message string) {
	c.Header("HX-Retarget", "#password-feedback")
	c.Header("HX-Reswap", "innerHTML")
	h.RenderFragment(c, http.StatusUnprocessableEntity, banner.Banner(banner.BannerProps{
		Type:    banner.BannerError,
		Message: message,
	}))
}
