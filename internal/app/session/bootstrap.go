package session

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/signal"
)

// ProfileAPI is the backend surface the bootstrapper needs.
type ProfileAPI interface {
	Profile(ctx context.Context, token string) (*models.UserProfile, error)
}

// Bootstrapper hydrates auth state at the start of every page request:
// recompute the cached admin flag, lazily fetch a missing profile, and
// run the proactive refresh schedule. Failures are logged and
// swallowed; the page always renders, possibly anonymously or in the
// degraded token-only state.
type Bootstrapper struct {
	store     *Store
	api       ProfileAPI
	refresher *Refresher
	signals   *signal.Hub
	logger    *zap.Logger
	group     singleflight.Group
}

func NewBootstrapper(store *Store, api ProfileAPI, refresher *Refresher, signals *signal.Hub, logger *zap.Logger) *Bootstrapper {
	return &Bootstrapper{
		store:     store,
		api:       api,
		refresher: refresher,
		signals:   signals,
		logger:    logger,
	}
}

func (b *Bootstrapper) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := b.store.Token(c)
		if token == "" {
			// Anonymous session: nothing to hydrate.
			c.Next()
			return
		}

		sid := b.store.ID(c)

		if user := b.store.CurrentUser(c); user != nil {
			// Profile already cached: recompute and persist the admin
			// flag from roles so the cache cannot go stale.
			if err := b.store.SetProfile(c, user); err != nil {
				b.logger.Warn("Failed to persist recomputed admin flag", zap.Error(err))
			}
			b.signals.Publish(signal.AuthChanged, sid)
		} else {
			b.hydrateProfile(c, sid, token)
		}

		refreshed, err := b.refresher.RefreshIfDue(c, b.store)
		if err != nil {
			b.logger.Warn("Proactive token refresh failed",
				zap.String("sid", sid), zap.Error(err))
		} else if refreshed {
			b.signals.Publish(signal.AuthChanged, sid)
		}

		c.Next()
	}
}

// hydrateProfile fetches the profile for a token-only session.
// Concurrent requests for the same session collapse to one backend
// call. On failure the session stays token-only, which the UI must
// tolerate.
func (b *Bootstrapper) hydrateProfile(c *gin.Context, sid, token string) {
	result, err, _ := b.group.Do(sid, func() (any, error) {
		return b.api.Profile(c.Request.Context(), token)
	})
	if err != nil {
		b.logger.Warn("Profile hydration failed, session stays token-only",
			zap.String("sid", sid), zap.Error(err))
		return
	}
	profile, _ := result.(*models.UserProfile)
	if profile == nil {
		return
	}
	if err := b.store.SetProfile(c, profile); err != nil {
		b.logger.Warn("Failed to cache hydrated profile", zap.Error(err))
		return
	}
	b.signals.Publish(signal.AuthChanged, sid)
}
