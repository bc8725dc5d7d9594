// Package session owns the visitor's auth state: token persistence,
// profile cache, per-request bootstrap and proactive token refresh.
// The cookie session is the only shared mutable resource; writes are
// last-writer-wins and concurrent tabs are not synchronized.
package session

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

// Storage keys. The profile is JSON-serialized; isAdmin is a serialized
// boolean string kept redundantly for fast synchronous reads and
// recomputed from roles whenever they change.
const (
	keyToken        = "token"
	keyRefreshToken = "refreshToken"
	keyUser         = "user"
	keyIsAdmin      = "isAdmin"
	keyRefreshDue   = "refreshDue"
	keySessionID    = "sid"
)

// Store reads and writes the visitor session. It never performs
// network I/O and never broadcasts; callers publish AuthChanged after
// mutating.
type Store struct {
	logger *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// ID returns the stable per-visitor session id, assigning one on first
// use. It keys signals, toast routing and guard decision caching.
func (s *Store) ID(c *gin.Context) string {
	sess := sessions.Default(c)
	if id, ok := sess.Get(keySessionID).(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	sess.Set(keySessionID, id)
	if err := sess.Save(); err != nil {
		s.logger.Warn("Failed to persist session id", zap.Error(err))
	}
	return id
}

func (s *Store) Token(c *gin.Context) string {
	token, _ := sessions.Default(c).Get(keyToken).(string)
	return token
}

func (s *Store) RefreshTokenValue(c *gin.Context) string {
	token, _ := sessions.Default(c).Get(keyRefreshToken).(string)
	return token
}

// IsAuthenticated is true iff an access token is present. The token is
// not verified locally; a stale token stays "authenticated" until the
// backend rejects it.
func (s *Store) IsAuthenticated(c *gin.Context) bool {
	return s.Token(c) != ""
}

// CurrentUser returns the cached profile or nil. Never triggers a
// fetch.
func (s *Store) CurrentUser(c *gin.Context) *models.UserProfile {
	raw, ok := sessions.Default(c).Get(keyUser).(string)
	if !ok || raw == "" {
		return nil
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		s.logger.Warn("Discarding undecodable cached profile", zap.Error(err))
		return nil
	}
	return &profile
}

// IsAdmin is the fast synchronous read of the cached admin flag.
func (s *Store) IsAdmin(c *gin.Context) bool {
	flag, _ := sessions.Default(c).Get(keyIsAdmin).(string)
	return flag == "true"
}

// SetSession overwrites tokens, profile and the recomputed admin flag.
// No broadcast happens here; the caller publishes AuthChanged.
func (s *Store) SetSession(c *gin.Context, tokens models.TokenPair, profile *models.UserProfile) error {
	sess := sessions.Default(c)
	sess.Set(keyToken, tokens.AccessToken)
	sess.Set(keyRefreshToken, tokens.RefreshToken)
	writeProfile(sess, profile)
	return sess.Save()
}

// SetTokens replaces the token pair, leaving the cached profile alone.
func (s *Store) SetTokens(c *gin.Context, tokens models.TokenPair) error {
	sess := sessions.Default(c)
	sess.Set(keyToken, tokens.AccessToken)
	sess.Set(keyRefreshToken, tokens.RefreshToken)
	return sess.Save()
}

// SetProfile caches the profile and recomputes the admin flag from its
// roles. Recomputation is idempotent.
func (s *Store) SetProfile(c *gin.Context, profile *models.UserProfile) error {
	sess := sessions.Default(c)
	writeProfile(sess, profile)
	return sess.Save()
}

func writeProfile(sess sessions.Session, profile *models.UserProfile) {
	if profile == nil {
		sess.Delete(keyUser)
		sess.Set(keyIsAdmin, "false")
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		// A profile that cannot round-trip JSON never came from the
		// backend; treat as absent.
		sess.Delete(keyUser)
		sess.Set(keyIsAdmin, "false")
		return
	}
	sess.Set(keyUser, string(raw))
	sess.Set(keyIsAdmin, strconv.FormatBool(profile.Roles.HasAdmin()))
}

// RefreshDue returns the proactive-refresh deadline, zero when unset.
func (s *Store) RefreshDue(c *gin.Context) time.Time {
	raw, ok := sessions.Default(c).Get(keyRefreshDue).(string)
	if !ok || raw == "" {
		return time.Time{}
	}
	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}

func (s *Store) SetRefreshDue(c *gin.Context, due time.Time) error {
	sess := sessions.Default(c)
	sess.Set(keyRefreshDue, strconv.FormatInt(due.Unix(), 10))
	return sess.Save()
}

// Clear removes all session keys. Used by logout; destroys tokens,
// profile and derived flags in one write.
func (s *Store) Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	for _, key := range []string{keyToken, keyRefreshToken, keyUser, keyIsAdmin, keyRefreshDue} {
		sess.Delete(key)
	}
	return sess.Save()
}
