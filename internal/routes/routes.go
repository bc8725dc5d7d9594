package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/backend"
	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/domain/addresses"
	"github.com/bangg2309/book-exchange/internal/app/domain/admin"
	"github.com/bangg2309/book-exchange/internal/app/domain/auth"
	"github.com/bangg2309/book-exchange/internal/app/domain/cart"
	"github.com/bangg2309/book-exchange/internal/app/domain/catalog"
	"github.com/bangg2309/book-exchange/internal/app/domain/checkout"
	"github.com/bangg2309/book-exchange/internal/app/domain/home"
	"github.com/bangg2309/book-exchange/internal/app/domain/listings"
	"github.com/bangg2309/book-exchange/internal/app/domain/media"
	"github.com/bangg2309/book-exchange/internal/app/domain/notifications"
	"github.com/bangg2309/book-exchange/internal/app/domain/profiles"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/session"
	"github.com/bangg2309/book-exchange/internal/app/signal"
	"github.com/bangg2309/book-exchange/internal/pkg/config"
	"github.com/bangg2309/book-exchange/internal/pkg/middleware"
)

type AppHandlers struct {
	Home          *home.HomeHandlers
	Catalog       *catalog.CatalogHandlers
	Reviews       *catalog.ReviewHandlers
	Cart          *cart.CartHandlers
	Checkout      *checkout.CheckoutHandlers
	Addresses     *addresses.AddressHandlers
	Profiles      *profiles.ProfileHandlers
	Listings      *listings.ListingHandlers
	Admin         *admin.AdminHandlers
	Auth          *auth.AuthHandlers
	Notifications *notifications.Handlers
	Media         *media.MediaHandlers

	Bootstrapper *session.Bootstrapper
	Guard        *middleware.RouteGuard
}

func Setup(r *gin.Engine, cfg *config.Config, client *backend.Client, log *zap.Logger) {
	handlers := setupDependencies(cfg, client, log)
	setupRouter(r, handlers)
}

func setupDependencies(cfg *config.Config, client *backend.Client, log *zap.Logger) *AppHandlers {
	store := session.NewStore(log)
	signals := signal.NewHub()
	bus := notify.NewBus()

	refresher := session.NewRefresher(client, cfg.RefreshMargin, log)
	bootstrapper := session.NewBootstrapper(store, client, refresher, signals, log)

	guard := middleware.NewRouteGuard(middleware.GuardConfig{
		PublicPaths: []string{"/", "/auth/signin", "/auth/signup", "/payment/vnpay-return"},
		PublicPrefixes: []string{
			"/books", "/authors", "/auth/oauth",
			"/assets", "/events", "/debug/pprof",
		},
		AdminPrefix: "/admin",
		SigninPath:  "/auth/signin",
		LandingPath: "/",
	}, store, log)

	baseHandler := domain.NewBaseHandler(log, store)
	cloudinary := media.NewCloudinary(cfg.Cloudinary, log)

	return &AppHandlers{
		Home:          home.NewHomeHandlers(baseHandler, client, log),
		Catalog:       catalog.NewCatalogHandlers(baseHandler, client, log),
		Reviews:       catalog.NewReviewHandlers(baseHandler, client, store, bus, log),
		Cart:          cart.NewCartHandlers(baseHandler, client, store, signals, bus, log),
		Checkout:      checkout.NewCheckoutHandlers(baseHandler, client, store, signals, bus, log),
		Addresses:     addresses.NewAddressHandlers(baseHandler, client, store, bus, log),
		Profiles:      profiles.NewProfileHandlers(baseHandler, client, store, signals, bus, log),
		Listings:      listings.NewListingHandlers(baseHandler, client, store, bus, log),
		Admin:         admin.NewAdminHandlers(baseHandler, client, store, bus, log),
		Auth:          auth.NewAuthHandlers(baseHandler, client, store, refresher, signals, bus, cfg.Backend.BaseURL+"/auth/google", log),
		Notifications: notifications.NewHandlers(bus, store, log),
		Media:         media.NewMediaHandlers(cloudinary, log),
		Bootstrapper:  bootstrapper,
		Guard:         guard,
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	// Session bootstrap first so every handler behind the guard sees a
	// hydrated (or deliberately degraded) session.
	r.Use(h.Bootstrapper.Middleware())
	r.Use(h.Guard.Middleware())

	r.GET("/", h.Home.ShowHomePage)
	r.GET("/books", h.Catalog.ShowBooks)
	r.GET("/books/:id", h.Catalog.ShowBookDetail)
	r.GET("/authors", h.Catalog.ShowAuthors)
	r.GET("/authors/:id", h.Catalog.ShowAuthorDetail)

	authGroup := r.Group("/auth")
	{
		authGroup.GET("/signin", h.Auth.ShowSignIn)
		authGroup.GET("/signup", h.Auth.ShowSignUp)
		authGroup.POST("/signin", h.Auth.LoginHandler)
		authGroup.POST("/signup", h.Auth.RegisterHandler)
		authGroup.POST("/logout", h.Auth.LogoutHandler)
		authGroup.GET("/oauth/google", h.Auth.OAuthGoogleRedirect)
		authGroup.GET("/oauth/callback", h.Auth.OAuthCallbackHandler)
	}

	// Toast stream; replayed on connect, pushed afterwards.
	r.GET("/events/notifications", h.Notifications.Stream)
	r.POST("/events/notifications/dismiss", h.Notifications.Dismiss)

	r.GET("/payment/vnpay-return", h.Checkout.PaymentReturn)

	protected := r.Group("/")
	{
		protected.GET("/cart", h.Cart.ShowCart)
		protected.POST("/cart/items", h.Cart.AddItem)
		protected.DELETE("/cart/items/:id", h.Cart.RemoveItem)
		protected.PUT("/cart/items/:id/selection", h.Cart.ToggleItem)

		protected.GET("/checkout", h.Checkout.ShowCheckout)
		protected.POST("/checkout", h.Checkout.PlaceOrder)
		protected.GET("/orders", h.Checkout.ShowOrders)
		protected.GET("/orders/:id", h.Checkout.ShowOrderDetail)

		protected.POST("/books/:id/reviews", h.Reviews.PostReview)

		protected.GET("/profile", h.Profiles.ShowProfile)
		protected.POST("/profile", h.Profiles.UpdateProfile)
		protected.PUT("/profile/password", h.Profiles.ChangePassword)

		protected.GET("/addresses", h.Addresses.ShowAddresses)
		protected.POST("/addresses", h.Addresses.CreateAddress)
		protected.POST("/addresses/:id", h.Addresses.UpdateAddress)
		protected.DELETE("/addresses/:id", h.Addresses.DeleteAddress)
		protected.GET("/addresses/districts", h.Addresses.DistrictOptions)
		protected.GET("/addresses/wards", h.Addresses.WardOptions)

		protected.GET("/listings", h.Listings.ShowMyListings)
		protected.GET("/listings/new", h.Listings.ShowNewListing)
		protected.POST("/listings", h.Listings.CreateListing)
		protected.POST("/listings/:id/submit", h.Listings.SubmitListing)
		protected.DELETE("/listings/:id", h.Listings.DeleteListing)
	}

	adminGroup := r.Group("/admin")
	{
		adminGroup.GET("", h.Admin.ShowDashboard)
		adminGroup.GET("/authors", h.Admin.ShowAuthors)
		adminGroup.POST("/authors", h.Admin.CreateAuthor)
		adminGroup.POST("/authors/:id", h.Admin.UpdateAuthor)
		adminGroup.DELETE("/authors/:id", h.Admin.DeleteAuthor)

		adminGroup.GET("/books", h.Admin.ShowBooks)
		adminGroup.POST("/books", h.Admin.CreateBook)
		adminGroup.POST("/books/:id", h.Admin.UpdateBook)
		adminGroup.POST("/books/:id/delete", h.Admin.DeleteBook)

		adminGroup.GET("/users", h.Admin.ShowUsers)
		adminGroup.POST("/users/:id/roles", h.Admin.SetUserRoles)
		adminGroup.POST("/users/:id/delete", h.Admin.DeleteUser)

		adminGroup.GET("/slides", h.Admin.ShowSlides)
		adminGroup.POST("/slides", h.Admin.CreateSlide)
		adminGroup.POST("/slides/:id", h.Admin.UpdateSlide)
		adminGroup.POST("/slides/:id/delete", h.Admin.DeleteSlide)

		adminGroup.GET("/listings", h.Admin.ShowPendingListings)
		adminGroup.POST("/listings/:id/review", h.Admin.ReviewListing)

		adminGroup.POST("/media/delete", h.Media.DeleteImage)
	}
}
