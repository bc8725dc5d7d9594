package session

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

// fallbackInterval spaces refreshes when the access token carries no
// readable exp claim.
const fallbackInterval = 10 * time.Minute

// RefreshAPI is the backend surface the refresher needs.
type RefreshAPI interface {
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
}

// Refresher performs proactive token refreshes ahead of expiry. The
// browser-timer model of the original flow becomes a deadline stored in
// the session and checked on every bootstrap; a successful refresh
// computes the next deadline, which makes the schedule recurring.
// Concurrent triggers for one session collapse through singleflight.
type Refresher struct {
	api    RefreshAPI
	margin time.Duration
	group  singleflight.Group
	logger *zap.Logger
	now    func() time.Time
}

func NewRefresher(api RefreshAPI, margin time.Duration, logger *zap.Logger) *Refresher {
	return &Refresher{
		api:    api,
		margin: margin,
		logger: logger,
		now:    time.Now,
	}
}

// RefreshIfDue refreshes the session's tokens when the stored deadline
// has passed. Returns true when tokens were replaced. Errors are
// returned for logging but must never block rendering.
func (r *Refresher) RefreshIfDue(c *gin.Context, store *Store) (bool, error) {
	token := store.Token(c)
	if token == "" {
		return false, nil
	}

	due := store.RefreshDue(c)
	if due.IsZero() {
		// First sighting of this token: arm the schedule, refresh next
		// time around.
		if err := store.SetRefreshDue(c, r.DeadlineFor(token)); err != nil {
			return false, err
		}
		return false, nil
	}
	if r.now().Before(due) {
		return false, nil
	}

	refreshToken := store.RefreshTokenValue(c)
	if refreshToken == "" {
		return false, nil
	}

	sid := store.ID(c)
	result, err, _ := r.group.Do(sid, func() (any, error) {
		return r.api.Refresh(c.Request.Context(), refreshToken)
	})
	if err != nil {
		return false, err
	}

	pair := result.(models.TokenPair)
	if err := store.SetTokens(c, pair); err != nil {
		return false, err
	}
	if err := store.SetRefreshDue(c, r.DeadlineFor(pair.AccessToken)); err != nil {
		return false, err
	}
	r.logger.Debug("Refreshed session tokens", zap.String("sid", sid))
	return true, nil
}

// DeadlineFor derives the next refresh deadline from the access
// token's exp claim, read without signature verification (verification
// is the backend's job; a forged token only schedules a refresh that
// the backend will reject).
func (r *Refresher) DeadlineFor(accessToken string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return r.now().Add(fallbackInterval)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return r.now().Add(fallbackInterval)
	}
	deadline := exp.Add(-r.margin)
	if !deadline.After(r.now()) {
		// Already inside the margin; retry on the next bootstrap rather
		// than hot-looping.
		return r.now().Add(time.Minute)
	}
	return deadline
}
