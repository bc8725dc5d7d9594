package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/session"
)

func testGuardConfig() GuardConfig {
	return GuardConfig{
		PublicPaths:    []string{"/", "/auth/signin"},
		PublicPrefixes: []string{"/books", "/assets"},
		AdminPrefix:    "/admin",
		SigninPath:     "/auth/signin",
		LandingPath:    "/",
	}
}

type guardFixture struct {
	router *gin.Engine
	store  *session.Store
	// cookies is a minimal jar so session state survives across
	// requests within one test.
	cookies map[string]*http.Cookie
}

func newGuardFixture(t *testing.T, cfg GuardConfig) *guardFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := session.NewStore(zap.NewNop())
	guard := NewRouteGuard(cfg, store, zap.NewNop())

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	// Seeding endpoints sit outside the guard.
	r.GET("/seed/token", func(c *gin.Context) {
		require.NoError(t, store.SetTokens(c, models.TokenPair{AccessToken: "a", RefreshToken: "r"}))
		c.Status(http.StatusOK)
	})
	r.GET("/seed/admin", func(c *gin.Context) {
		pair := models.TokenPair{AccessToken: "a", RefreshToken: "r"}
		require.NoError(t, store.SetSession(c, pair, &models.UserProfile{
			ID: "u-1", Username: "quan.tri", Roles: models.Roles{{Name: "Admin"}},
		}))
		c.Status(http.StatusOK)
	})
	r.GET("/seed/buyer", func(c *gin.Context) {
		pair := models.TokenPair{AccessToken: "a", RefreshToken: "r"}
		require.NoError(t, store.SetSession(c, pair, &models.UserProfile{
			ID: "u-2", Username: "nguoi.mua", Roles: models.Roles{{Name: models.RoleUser}},
		}))
		c.Status(http.StatusOK)
	})

	guarded := r.Group("/")
	guarded.Use(guard.Middleware())
	for _, path := range []string{"/", "/books", "/cart", "/admin", "/admin/authors"} {
		guarded.GET(path, func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	}

	return &guardFixture{router: r, store: store, cookies: map[string]*http.Cookie{}}
}

func (f *guardFixture) get(t *testing.T, path string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range f.cookies {
		req.AddCookie(c)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		f.cookies[c.Name] = c
	}
	return w
}

func TestClassify(t *testing.T) {
	guard := NewRouteGuard(testGuardConfig(), session.NewStore(zap.NewNop()), zap.NewNop())

	assert.Equal(t, Public, guard.Classify("/"))
	assert.Equal(t, Public, guard.Classify("/auth/signin"))
	assert.Equal(t, Public, guard.Classify("/books/42"))
	assert.Equal(t, Public, guard.Classify("/assets/css/app.css"))
	assert.Equal(t, AdminRequired, guard.Classify("/admin"))
	assert.Equal(t, AdminRequired, guard.Classify("/admin/authors"))
	assert.Equal(t, AuthenticatedRequired, guard.Classify("/cart"))
	assert.Equal(t, AuthenticatedRequired, guard.Classify("/checkout"))
}

func TestPublicNeverRedirects(t *testing.T) {
	f := newGuardFixture(t, testGuardConfig())

	for _, path := range []string{"/", "/books"} {
		resp := f.get(t, path, false)
		assert.Equal(t, http.StatusOK, resp.Code, path)
	}
}

func TestAnonymousProtectedRedirectsToSignin(t *testing.T) {
	f := newGuardFixture(t, testGuardConfig())

	resp := f.get(t, "/cart", false)
	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/auth/signin", resp.Header().Get("Location"))
}

func TestAnonymousHTMXGetsHXRedirect(t *testing.T) {
	f := newGuardFixture(t, testGuardConfig())

	resp := f.get(t, "/cart", true)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "/auth/signin", resp.Header().Get("HX-Redirect"))
}

func TestAdminFailsClosedWithoutProfile(t *testing.T) {
	f := newGuardFixture(t, testGuardConfig())

	// Token present, profile hydration never happened.
	f.get(t, "/seed/token", false)
	resp := f.get(t, "/admin", false)
	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/auth/signin", resp.Header().Get("Location"))
}

func TestAdminRejectsNonAdmin(t *testing.T) {
	f := newGuardFixture(t, testGuardConfig())

	f.get(t, "/seed/buyer", false)
	resp := f.get(t, "/admin", false)
	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/", resp.Header().Get("Location"))

	// The same session still reaches plain protected pages.
	resp = f.get(t, "/cart", false)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAdminPassesCaseInsensitively(t *testing.T) {
	// The seeded role is "Admin", mixed case on purpose.
	f := newGuardFixture(t, testGuardConfig())

	f.get(t, "/seed/admin", false)
	resp := f.get(t, "/admin", false)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = f.get(t, "/admin/authors", false)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRedirectVerdictsAreNotCached(t *testing.T) {
	cfg := testGuardConfig()
	cfg.DecisionTTL = time.Minute
	f := newGuardFixture(t, cfg)

	// Anonymous hit redirects.
	anonymous := f.get(t, "/cart", false)
	assert.Equal(t, http.StatusFound, anonymous.Code)

	// Sign in with the same cookie jar; the earlier redirect must not
	// be replayed from a cache.
	f.get(t, "/seed/buyer", false)
	resp := f.get(t, "/cart", false)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestPassVerdictIsCached(t *testing.T) {
	cfg := testGuardConfig()
	cfg.DecisionTTL = time.Minute
	f := newGuardFixture(t, cfg)

	f.get(t, "/seed/admin", false)
	first := f.get(t, "/admin", false)
	require.Equal(t, http.StatusOK, first.Code)

	// Second hit inside the TTL rides the cached pass verdict even if
	// the profile were being rewritten concurrently.
	second := f.get(t, "/admin", false)
	assert.Equal(t, http.StatusOK, second.Code)
}
