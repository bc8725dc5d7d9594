package session

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/signal"
)

type fakeProfileAPI struct {
	calls   atomic.Int64
	profile *models.UserProfile
	err     error
}

func (f *fakeProfileAPI) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	f.calls.Add(1)
	return f.profile, f.err
}

func newBootstrapRouter(t *testing.T, store *Store, b *Bootstrapper, probe gin.HandlerFunc) *gin.Engine {
	t.Helper()
	r := newSessionRouter(t)
	r.Use(b.Middleware())
	r.GET("/page", probe)
	return r
}

func TestBootstrapHydratesMissingProfile(t *testing.T) {
	store := NewStore(zap.NewNop())
	api := &fakeProfileAPI{profile: adminProfile()}
	refresher := NewRefresher(&fakeRefreshAPI{}, 5*time.Minute, zap.NewNop())
	signals := signal.NewHub()
	bootstrapper := NewBootstrapper(store, api, refresher, signals, zap.NewNop())

	sub := signals.Subscribe()
	defer sub.Close()

	r := newSessionRouter(t)
	r.GET("/login", func(c *gin.Context) {
		pair := models.TokenPair{AccessToken: signedToken(t, time.Now().Add(time.Hour)), RefreshToken: "r"}
		require.NoError(t, store.SetTokens(c, pair))
		c.Status(http.StatusOK)
	})
	page := r.Group("/")
	page.Use(bootstrapper.Middleware())
	page.GET("/page", func(c *gin.Context) {
		user := store.CurrentUser(c)
		require.NotNil(t, user)
		assert.Equal(t, "an.nguyen", user.Username)
		assert.True(t, store.IsAdmin(c))
		c.Status(http.StatusOK)
	})

	login := perform(t, r, http.MethodGet, "/login", nil)
	perform(t, r, http.MethodGet, "/page", login)

	assert.Equal(t, int64(1), api.calls.Load())
	select {
	case event := <-sub.C():
		assert.Equal(t, signal.AuthChanged, event.Topic)
	case <-time.After(time.Second):
		t.Fatal("expected an AuthChanged event")
	}
}

func TestBootstrapToleratesProfileFailure(t *testing.T) {
	store := NewStore(zap.NewNop())
	api := &fakeProfileAPI{err: errors.New("backend down")}
	refresher := NewRefresher(&fakeRefreshAPI{}, 5*time.Minute, zap.NewNop())
	bootstrapper := NewBootstrapper(store, api, refresher, signal.NewHub(), zap.NewNop())

	r := newSessionRouter(t)
	r.GET("/login", func(c *gin.Context) {
		pair := models.TokenPair{AccessToken: signedToken(t, time.Now().Add(time.Hour)), RefreshToken: "r"}
		require.NoError(t, store.SetTokens(c, pair))
		c.Status(http.StatusOK)
	})
	page := r.Group("/")
	page.Use(bootstrapper.Middleware())
	page.GET("/page", func(c *gin.Context) {
		// Degraded token-only state: authenticated, no profile.
		assert.True(t, store.IsAuthenticated(c))
		assert.Nil(t, store.CurrentUser(c))
		assert.False(t, store.IsAdmin(c))
		c.Status(http.StatusOK)
	})

	login := perform(t, r, http.MethodGet, "/login", nil)
	resp := perform(t, r, http.MethodGet, "/page", login)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestBootstrapSkipsAnonymous(t *testing.T) {
	store := NewStore(zap.NewNop())
	api := &fakeProfileAPI{}
	refresher := NewRefresher(&fakeRefreshAPI{}, 5*time.Minute, zap.NewNop())
	bootstrapper := NewBootstrapper(store, api, refresher, signal.NewHub(), zap.NewNop())

	r := newBootstrapRouter(t, store, bootstrapper, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	resp := perform(t, r, http.MethodGet, "/page", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(0), api.calls.Load())
}
