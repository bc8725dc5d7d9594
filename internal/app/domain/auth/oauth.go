package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/observability/metrics"
	"github.com/bangg2309/book-exchange/internal/app/signal"
)

// OAuthGoogleRedirect hands the visitor to the backend, which owns the
// provider handshake end to end.
func (h *AuthHandlers) OAuthGoogleRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.googleAuthURL)
}

// OAuthCallbackHandler ingests the provider redirect. The flow is a
// one-shot state machine: Loading, then Success or Failure, never
// re-entered for the same navigation.
//
// Tokens are persisted before the profile fetch on purpose: a profile
// failure leaves the visitor holding valid tokens, so a retry does not
// require re-authenticating with the provider. The cost is a known
// intermediate state (tokens, no cached profile) that the bootstrapper
// and the route guard both tolerate.
func (h *AuthHandlers) OAuthCallbackHandler(c *gin.Context) {
	sid := h.store.ID(c)

	accessToken := c.Query("token")
	refreshToken := c.Query("refreshToken")
	if accessToken == "" || refreshToken == "" {
		metrics.RecordAuthRequest(c.Request.Context(), "oauth_callback", false)
		h.logger.Warn("OAuth callback missing tokens",
			zap.Bool("has_token", accessToken != ""),
			zap.Bool("has_refresh", refreshToken != ""))
		h.bus.Publish(sid, "Đăng nhập thất bại: thiếu mã xác thực từ nhà cung cấp", notify.Error)
		c.Redirect(http.StatusFound, "/auth/signin")
		return
	}

	pair := models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}
	if err := h.store.SetSession(c, pair, nil); err != nil {
		h.logger.Error("Failed to persist provider tokens", zap.Error(err))
		h.bus.Publish(sid, "Đăng nhập thất bại, vui lòng thử lại", notify.Error)
		c.Redirect(http.StatusFound, "/auth/signin")
		return
	}

	profile, err := h.api.Profile(c.Request.Context(), accessToken)
	if err != nil || profile == nil {
		metrics.RecordAuthRequest(c.Request.Context(), "oauth_callback", false)
		h.logger.Warn("Profile fetch in OAuth callback failed", zap.Error(err))
		// Tokens stay persisted for retry.
		h.bus.Publish(sid, "Không lấy được thông tin tài khoản, vui lòng đăng nhập lại", notify.Error)
		c.Redirect(http.StatusFound, "/auth/signin")
		return
	}

	if err := h.store.SetProfile(c, profile); err != nil {
		h.logger.Warn("Failed to cache profile after OAuth", zap.Error(err))
	}
	if err := h.store.SetRefreshDue(c, h.refresher.DeadlineFor(accessToken)); err != nil {
		h.logger.Warn("Failed to arm refresh schedule after OAuth", zap.Error(err))
	}

	h.signals.Publish(signal.AuthChanged, sid)
	metrics.RecordAuthRequest(c.Request.Context(), "oauth_callback", true)
	h.bus.Publish(sid, "Đăng nhập thành công", notify.Success)

	if profile.Roles.HasAdmin() {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/")
}
