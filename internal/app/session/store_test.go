package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

func newSessionRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	return r
}

// perform runs a request, carrying over cookies from a previous
// response so session state persists across requests.
func perform(t *testing.T, r *gin.Engine, method, path string, prior *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if prior != nil {
		for _, c := range prior.Result().Cookies() {
			req.AddCookie(c)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminProfile() *models.UserProfile {
	return &models.UserProfile{
		ID:       "u-1",
		Username: "an.nguyen",
		Email:    "an@example.com",
		Roles:    models.Roles{{Name: "admin"}},
	}
}

func TestSetSessionRoundTrip(t *testing.T) {
	store := NewStore(zap.NewNop())
	r := newSessionRouter(t)

	r.GET("/login", func(c *gin.Context) {
		pair := models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
		require.NoError(t, store.SetSession(c, pair, adminProfile()))
		c.Status(http.StatusOK)
	})
	r.GET("/check", func(c *gin.Context) {
		assert.True(t, store.IsAuthenticated(c))
		assert.Equal(t, "access", store.Token(c))
		assert.Equal(t, "refresh", store.RefreshTokenValue(c))
		assert.True(t, store.IsAdmin(c))

		user := store.CurrentUser(c)
		require.NotNil(t, user)
		assert.Equal(t, "an.nguyen", user.Username)
		c.Status(http.StatusOK)
	})

	login := perform(t, r, http.MethodGet, "/login", nil)
	perform(t, r, http.MethodGet, "/check", login)
}

func TestClearDestroysEverything(t *testing.T) {
	store := NewStore(zap.NewNop())
	r := newSessionRouter(t)

	r.GET("/login", func(c *gin.Context) {
		pair := models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
		require.NoError(t, store.SetSession(c, pair, adminProfile()))
		c.Status(http.StatusOK)
	})
	r.GET("/logout", func(c *gin.Context) {
		require.NoError(t, store.Clear(c))
		c.Status(http.StatusOK)
	})
	r.GET("/check", func(c *gin.Context) {
		assert.False(t, store.IsAuthenticated(c))
		assert.Empty(t, store.Token(c))
		assert.Nil(t, store.CurrentUser(c))
		assert.False(t, store.IsAdmin(c))
		assert.True(t, store.RefreshDue(c).IsZero())
		c.Status(http.StatusOK)
	})

	login := perform(t, r, http.MethodGet, "/login", nil)
	logout := perform(t, r, http.MethodGet, "/logout", login)
	perform(t, r, http.MethodGet, "/check", logout)
}

func TestSetProfileRecomputesAdminFlag(t *testing.T) {
	store := NewStore(zap.NewNop())
	r := newSessionRouter(t)

	r.GET("/promote", func(c *gin.Context) {
		require.NoError(t, store.SetProfile(c, adminProfile()))
		assert.True(t, store.IsAdmin(c))

		// Re-caching the same profile leaves the flag unchanged.
		require.NoError(t, store.SetProfile(c, adminProfile()))
		assert.True(t, store.IsAdmin(c))

		// Dropping the admin role drops the flag.
		demoted := adminProfile()
		demoted.Roles = models.Roles{{Name: models.RoleUser}}
		require.NoError(t, store.SetProfile(c, demoted))
		assert.False(t, store.IsAdmin(c))

		// Clearing the profile clears the flag too.
		require.NoError(t, store.SetProfile(c, nil))
		assert.False(t, store.IsAdmin(c))
		assert.Nil(t, store.CurrentUser(c))
		c.Status(http.StatusOK)
	})

	perform(t, r, http.MethodGet, "/promote", nil)
}

func TestCurrentUserDiscardsGarbage(t *testing.T) {
	store := NewStore(zap.NewNop())
	r := newSessionRouter(t)

	r.GET("/corrupt", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("user", "{not json")
		require.NoError(t, sess.Save())
		assert.Nil(t, store.CurrentUser(c))
		c.Status(http.StatusOK)
	})

	perform(t, r, http.MethodGet, "/corrupt", nil)
}

func TestIDIsStableAcrossRequests(t *testing.T) {
	store := NewStore(zap.NewNop())
	r := newSessionRouter(t)

	var first, second string
	r.GET("/a", func(c *gin.Context) {
		first = store.ID(c)
		c.Status(http.StatusOK)
	})
	r.GET("/b", func(c *gin.Context) {
		second = store.ID(c)
		c.Status(http.StatusOK)
	})

	resp := perform(t, r, http.MethodGet, "/a", nil)
	perform(t, r, http.MethodGet, "/b", resp)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}
