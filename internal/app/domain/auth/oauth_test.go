package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/backend"
	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/session"
	"github.com/bangg2309/book-exchange/internal/app/signal"
)

type fakeAuthAPI struct {
	profile      *models.UserProfile
	profileErr   error
	profileCalls atomic.Int64
	lastToken    string
}

func (f *fakeAuthAPI) Login(ctx context.Context, params backend.LoginParams) (models.AuthResult, error) {
	return models.AuthResult{}, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, params backend.RegisterParams) (models.UserProfile, error) {
	return models.UserProfile{}, nil
}

func (f *fakeAuthAPI) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	f.profileCalls.Add(1)
	f.lastToken = token
	return f.profile, f.profileErr
}

func (f *fakeAuthAPI) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

type callbackFixture struct {
	router *gin.Engine
	api    *fakeAuthAPI
	bus    *notify.Bus

	// Session state captured by the /state inspection route.
	token   string
	sid     string
	hasUser bool
	isAdmin bool
}

func newCallbackFixture(t *testing.T, api *fakeAuthAPI) *callbackFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	store := session.NewStore(logger)
	refresher := session.NewRefresher(nil, 2*time.Minute, logger)
	signals := signal.NewHub()
	bus := notify.NewBus()

	h := NewAuthHandlers(domain.NewBaseHandler(logger, store), api, store, refresher, signals, bus, "http://backend.test/auth/google", logger)

	fx := &callbackFixture{api: api, bus: bus}
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.GET("/auth/oauth/callback", h.OAuthCallbackHandler)
	r.GET("/state", func(c *gin.Context) {
		fx.sid = store.ID(c)
		fx.token = store.Token(c)
		fx.hasUser = store.CurrentUser(c) != nil
		fx.isAdmin = store.IsAdmin(c)
		c.Status(http.StatusOK)
	})
	fx.router = r
	return fx
}

func (fx *callbackFixture) get(t *testing.T, path string, prior *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if prior != nil {
		for _, c := range prior.Result().Cookies() {
			req.AddCookie(c)
		}
	}
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	return w
}

func TestCallbackMissingRefreshTokenSkipsProfileFetch(t *testing.T) {
	api := &fakeAuthAPI{}
	fx := newCallbackFixture(t, api)

	w := fx.get(t, "/auth/oauth/callback?token=abc", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/signin", w.Header().Get("Location"))
	assert.Zero(t, api.profileCalls.Load())

	// Nothing was persisted either.
	fx.get(t, "/state", w)
	assert.Empty(t, fx.token)
}

func TestCallbackAdminLandsOnAdminConsole(t *testing.T) {
	api := &fakeAuthAPI{profile: &models.UserProfile{
		ID:       "u-9",
		Username: "quantri",
		Roles:    models.Roles{{Name: "ADMIN"}},
	}}
	fx := newCallbackFixture(t, api)

	w := fx.get(t, "/auth/oauth/callback?token=abc&refreshToken=def", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, int64(1), api.profileCalls.Load())
	assert.Equal(t, "abc", api.lastToken)

	fx.get(t, "/state", w)
	assert.Equal(t, "abc", fx.token)
	assert.True(t, fx.hasUser)
	assert.True(t, fx.isAdmin)

	visible := fx.bus.Visible(fx.sid)
	require.Len(t, visible, 1)
	assert.Equal(t, "Đăng nhập thành công", visible[0].Message)
	assert.Equal(t, notify.Success, visible[0].Kind)
}

func TestCallbackProfileFailureKeepsTokensForRetry(t *testing.T) {
	api := &fakeAuthAPI{profileErr: assert.AnError}
	fx := newCallbackFixture(t, api)

	w := fx.get(t, "/auth/oauth/callback?token=abc&refreshToken=def", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/signin", w.Header().Get("Location"))

	fx.get(t, "/state", w)
	assert.Equal(t, "abc", fx.token)
	assert.False(t, fx.hasUser)
	assert.False(t, fx.isAdmin)
}

func TestCallbackRegularUserLandsOnStorefront(t *testing.T) {
	api := &fakeAuthAPI{profile: &models.UserProfile{
		ID:       "u-2",
		Username: "docgia",
		Roles:    models.Roles{{Name: "USER"}},
	}}
	fx := newCallbackFixture(t, api)

	w := fx.get(t, "/auth/oauth/callback?token=abc&refreshToken=def", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	fx.get(t, "/state", w)
	assert.True(t, fx.hasUser)
	assert.False(t, fx.isAdmin)
}
