package auth

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
	"github.com/bangg2309/book-exchange/internal/app/observability/metrics"
	"github.com/bangg2309/book-exchange/internal/app/session"
	"github.com/bangg2309/book-exchange/internal/app/signal"
)

// AuthAPI is the backend surface the auth handlers consume.
type AuthAPI interface {
	Login(ctx context.Context, params backend.LoginParams) (models.AuthResult, error)
	Register(ctx context.Context, params backend.RegisterParams) (models.UserProfile, error)
	Profile(ctx context.Context, token string) (*models.UserProfile, error)
	Logout(ctx context.Context, refreshToken string) error
}

type AuthHandlers struct {
	*domain.BaseHandler
	api       AuthAPI
	store     *session.Store
	refresher *session.Refresher
	signals   *signal.Hub
	bus       *notify.Bus
	logger    *zap.Logger
	// googleAuthURL is the backend endpoint that starts the Google
	// authorization flow; the provider redirects back to our callback.
	googleAuthURL string
}

func NewAuthHandlers(base *domain.BaseHandler, api AuthAPI, store *session.Store, refresher *session.Refresher, signals *signal.Hub, bus *notify.Bus, googleAuthURL string, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		BaseHandler:   base,
		api:           api,
		store:         store,
		refresher:     refresher,
		signals:       signals,
		bus:           bus,
		logger:        logger,
		googleAuthURL: googleAuthURL,
	}
}

func (h *AuthHandlers) ShowSignIn(c *gin.Context) {
	h.RenderPage(c, "Đăng nhập - Trạm Sách Cũ", "", SignIn())
}

func (h *AuthHandlers) ShowSignUp(c *gin.Context) {
	h.RenderPage(c, "Đăng ký - Trạm Sách Cũ", "", SignUp())
}

func (h *AuthHandlers) formError(c *gin.Context, status int, id, message, description string) {
	c.Header("HX-Retarget", "#auth-feedback")
	c.Header("HX-Reswap", "innerHTML")
	h.RenderFragment(c, status, banner.Banner(banner.BannerProps{
		Type:        banner.BannerError,
		Message:     message,
		Description: description,
		Dismissable: true,
		ID:          id,
		AutoDismiss: 5,
	}))
}

// LoginHandler exchanges credentials for tokens, caches the profile and
// redirects by role.
func (h *AuthHandlers) LoginHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		h.formError(c, http.StatusBadRequest, "login-missing", "Vui lòng nhập tên đăng nhập và mật khẩu", "")
		return
	}

	result, err := h.api.Login(c.Request.Context(), backend.LoginParams{Username: username, Password: password})
	if err != nil {
		metrics.RecordAuthRequest(c.Request.Context(), "login", false)
		h.logger.Warn("Login failed", zap.String("username", username), zap.Error(err))
		h.formError(c, http.StatusUnauthorized, "login-invalid",
			"Sai tên đăng nhập hoặc mật khẩu", "Kiểm tra lại thông tin và thử lại")
		return
	}

	if err := h.store.SetSession(c, result.TokenPair, nil); err != nil {
		h.logger.Error("Failed to persist session", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	// Best effort: a profile failure leaves a degraded token-only
	// session that the bootstrapper retries on the next page.
	profile, err := h.api.Profile(c.Request.Context(), result.AccessToken)
	if err != nil {
		h.logger.Warn("Profile fetch after login failed", zap.Error(err))
	} else if profile != nil {
		if err := h.store.SetProfile(c, profile); err != nil {
			h.logger.Warn("Failed to cache profile", zap.Error(err))
		}
	}

	if err := h.store.SetRefreshDue(c, h.refresher.DeadlineFor(result.AccessToken)); err != nil {
		h.logger.Warn("Failed to arm refresh schedule", zap.Error(err))
	}

	sid := h.store.ID(c)
	h.signals.Publish(signal.AuthChanged, sid)
	metrics.RecordAuthRequest(c.Request.Context(), "login", true)
	h.logger.Info("Successful login", zap.String("username", username))

	target := "/"
	if profile.IsAdmin() {
		target = "/admin"
	}
	c.Header("HX-Redirect", target)
	c.Status(http.StatusOK)
}

func (h *AuthHandlers) RegisterHandler(c *gin.Context) {
	params := backend.RegisterParams{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		FullName: c.PostForm("full_name"),
	}
	confirm := c.PostForm("confirm_password")

	if params.Username == "" || params.Email == "" || params.Password == "" {
		h.formError(c, http.StatusBadRequest, "register-missing", "Vui lòng điền đủ thông tin bắt buộc", "")
		return
	}
	if params.Password != confirm {
		h.formError(c, http.StatusBadRequest, "register-mismatch", "Mật khẩu nhập lại không khớp", "")
		return
	}

	if _, err := h.api.Register(c.Request.Context(), params); err != nil {
		metrics.RecordAuthRequest(c.Request.Context(), "register", false)
		h.logger.Warn("Registration failed", zap.String("username", params.Username), zap.Error(err))
		description := "Thử lại sau"
		if apiErr, ok := backend.IsAPIError(err); ok && apiErr.Message != "" {
			description = apiErr.Message
		}
		h.formError(c, http.StatusUnprocessableEntity, "register-failed", "Đăng ký thất bại", description)
		return
	}

	metrics.RecordAuthRequest(c.Request.Context(), "register", true)
	h.bus.Publish(h.store.ID(c), "Đăng ký thành công, mời bạn đăng nhập", notify.Success)
	c.Header("HX-Redirect", "/auth/signin")
	c.Status(http.StatusOK)
}

// LogoutHandler clears the session and lands on the public home page.
// Backend-side refresh token invalidation is best effort.
func (h *AuthHandlers) LogoutHandler(c *gin.Context) {
	sid := h.store.ID(c)
	if refreshToken := h.store.RefreshTokenValue(c); refreshToken != "" {
		if err := h.api.Logout(c.Request.Context(), refreshToken); err != nil {
			h.logger.Warn("Backend logout failed", zap.Error(err))
		}
	}
	if err := h.store.Clear(c); err != nil {
		h.logger.Error("Failed to clear session", zap.Error(err))
	}
	h.signals.Publish(signal.AuthChanged, sid)
	metrics.RecordAuthRequest(c.Request.Context(), "logout", true)

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", "/")
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
