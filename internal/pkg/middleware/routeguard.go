package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/observability/metrics"
	"github.com/bangg2309/book-exchange/internal/app/session"
)

// Access classifies what a path demands from the visitor.
type Access int

const (
	Public Access = iota
	AuthenticatedRequired
	AdminRequired
)

type GuardConfig struct {
	// PublicPaths match exactly; PublicPrefixes match by prefix.
	PublicPaths    []string
	PublicPrefixes []string
	// AdminPrefix namespaces the back office.
	AdminPrefix string
	SigninPath  string
	LandingPath string
	// DecisionTTL is how long a pass verdict for (session, path) is
	// reused before re-evaluating. Redirect verdicts are never cached,
	// so the guard fails closed.
	DecisionTTL time.Duration
}

// RouteGuard gates navigation: public paths always pass, everything
// else needs a token, and the admin namespace additionally needs a
// hydrated profile whose roles include ADMIN.
type RouteGuard struct {
	cfg       GuardConfig
	store     *session.Store
	decisions *gocache.Cache
	logger    *zap.Logger
}

func NewRouteGuard(cfg GuardConfig, store *session.Store, logger *zap.Logger) *RouteGuard {
	if cfg.DecisionTTL <= 0 {
		cfg.DecisionTTL = 2 * time.Second
	}
	return &RouteGuard{
		cfg:       cfg,
		store:     store,
		decisions: gocache.New(cfg.DecisionTTL, time.Minute),
		logger:    logger,
	}
}

// Classify maps a path to its access class. The public allow-list wins
// over the admin prefix, so an explicitly public page under /admin
// (none today) would stay public.
func (g *RouteGuard) Classify(path string) Access {
	for _, public := range g.cfg.PublicPaths {
		if path == public {
			return Public
		}
	}
	for _, prefix := range g.cfg.PublicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return Public
		}
	}
	if g.cfg.AdminPrefix != "" && strings.HasPrefix(path, g.cfg.AdminPrefix) {
		return AdminRequired
	}
	return AuthenticatedRequired
}

func (g *RouteGuard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		access := g.Classify(path)
		if access == Public {
			metrics.RecordGuardDecision(c.Request.Context(), "public")
			c.Next()
			return
		}

		// Rapid successive triggers for one navigation (mount, path
		// change, AuthChanged all at once) collapse onto the cached
		// pass verdict instead of racing through redirects.
		sid := g.store.ID(c)
		decisionKey := sid + "|" + path
		if _, ok := g.decisions.Get(decisionKey); ok {
			metrics.RecordGuardDecision(c.Request.Context(), "skipped")
			c.Next()
			return
		}

		if !g.store.IsAuthenticated(c) {
			g.redirect(c, g.cfg.SigninPath, "redirect_signin")
			return
		}

		if access == AdminRequired {
			profile := g.store.CurrentUser(c)
			if profile == nil {
				// Fails closed: a profile-fetch failure during
				// bootstrap blocks admin access even with a token.
				g.redirect(c, g.cfg.SigninPath, "redirect_signin")
				return
			}
			if !profile.Roles.HasAdmin() {
				g.redirect(c, g.cfg.LandingPath, "redirect_landing")
				return
			}
		}

		g.decisions.SetDefault(decisionKey, struct{}{})
		metrics.RecordGuardDecision(c.Request.Context(), "pass")
		c.Next()
	}
}

// redirect is HTMX-aware: HX requests get an HX-Redirect header, plain
// navigations get an HTTP redirect. Authorization failures never toast.
func (g *RouteGuard) redirect(c *gin.Context, target, outcome string) {
	metrics.RecordGuardDecision(c.Request.Context(), outcome)
	g.logger.Debug("Route guard redirect",
		zap.String("path", c.Request.URL.Path),
		zap.String("target", target))
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", target)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}
