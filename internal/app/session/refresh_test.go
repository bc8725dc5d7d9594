package session

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

type fakeRefreshAPI struct {
	calls atomic.Int64
	pair  models.TokenPair
	err   error
}

func (f *fakeRefreshAPI) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	f.calls.Add(1)
	return f.pair, f.err
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	})
	raw, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return raw
}

func TestDeadlineFor(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	refresher := NewRefresher(nil, 5*time.Minute, zap.NewNop())
	refresher.now = func() time.Time { return now }

	t.Run("exp minus margin", func(t *testing.T) {
		exp := now.Add(time.Hour)
		deadline := refresher.DeadlineFor(signedToken(t, exp))
		assert.Equal(t, exp.Add(-5*time.Minute).Unix(), deadline.Unix())
	})

	t.Run("unparsable token falls back", func(t *testing.T) {
		deadline := refresher.DeadlineFor("not-a-jwt")
		assert.Equal(t, now.Add(fallbackInterval), deadline)
	})

	t.Run("inside the margin retries in a minute", func(t *testing.T) {
		deadline := refresher.DeadlineFor(signedToken(t, now.Add(2*time.Minute)))
		assert.Equal(t, now.Add(time.Minute), deadline)
	})
}

func TestRefreshIfDueArmsScheduleFirst(t *testing.T) {
	api := &fakeRefreshAPI{}
	refresher := NewRefresher(api, 5*time.Minute, zap.NewNop())
	store := NewStore(zap.NewNop())
	r := newSessionRouter(t)

	r.GET("/bootstrap", func(c *gin.Context) {
		pair := models.TokenPair{
			AccessToken:  signedToken(t, time.Now().Add(time.Hour)),
			RefreshToken: "refresh",
		}
		require.NoError(t, store.SetTokens(c, pair))

		// First sighting stores a deadline without refreshing.
		refreshed, err := refresher.RefreshIfDue(c, store)
		require.NoError(t, err)
		assert.False(t, refreshed)
		assert.False(t, store.RefreshDue(c).IsZero())
		assert.Equal(t, int64(0), api.calls.Load())

		// Deadline not reached yet, still no refresh.
		refreshed, err = refresher.RefreshIfDue(c, store)
		require.NoError(t, err)
		assert.False(t, refreshed)
		c.Status(http.StatusOK)
	})

	perform(t, r, http.MethodGet, "/bootstrap", nil)
}

func TestRefreshIfDueReplacesTokens(t *testing.T) {
	newAccess := ""
	api := &fakeRefreshAPI{}
	refresher := NewRefresher(api, 5*time.Minute, zap.NewNop())
	store := NewStore(zap.NewNop())
	r := newSessionRouter(t)

	r.GET("/bootstrap", func(c *gin.Context) {
		newAccess = signedToken(t, time.Now().Add(time.Hour))
		api.pair = models.TokenPair{AccessToken: newAccess, RefreshToken: "refresh-2"}

		require.NoError(t, store.SetTokens(c, models.TokenPair{
			AccessToken:  signedToken(t, time.Now().Add(time.Minute)),
			RefreshToken: "refresh-1",
		}))
		require.NoError(t, store.SetRefreshDue(c, time.Now().Add(-time.Second)))

		refreshed, err := refresher.RefreshIfDue(c, store)
		require.NoError(t, err)
		assert.True(t, refreshed)
		assert.Equal(t, int64(1), api.calls.Load())
		assert.Equal(t, newAccess, store.Token(c))
		assert.Equal(t, "refresh-2", store.RefreshTokenValue(c))
		// The next deadline is re-armed from the new token.
		assert.True(t, store.RefreshDue(c).After(time.Now()))
		c.Status(http.StatusOK)
	})

	perform(t, r, http.MethodGet, "/bootstrap", nil)
}

func TestRefreshIfDueAnonymousIsNoop(t *testing.T) {
	api := &fakeRefreshAPI{}
	refresher := NewRefresher(api, 5*time.Minute, zap.NewNop())
	store := NewStore(zap.NewNop())
	r := newSessionRouter(t)

	r.GET("/bootstrap", func(c *gin.Context) {
		refreshed, err := refresher.RefreshIfDue(c, store)
		require.NoError(t, err)
		assert.False(t, refreshed)
		assert.Equal(t, int64(0), api.calls.Load())
		c.Status(http.StatusOK)
	})

	perform(t, r, http.MethodGet, "/bootstrap", nil)
}
