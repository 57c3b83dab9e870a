package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sarayacafe/menu-backend/api/controllers"
	"github.com/sarayacafe/menu-backend/api/middleware"
	"github.com/sarayacafe/menu-backend/internal/auth"
	category "github.com/sarayacafe/menu-backend/internal/categories"
	product "github.com/sarayacafe/menu-backend/internal/products"
	variation "github.com/sarayacafe/menu-backend/internal/variations"
	"github.com/sarayacafe/menu-backend/pkg/config"
	"github.com/sarayacafe/menu-backend/pkg/enums"
	"github.com/sarayacafe/menu-backend/pkg/logger"
	"github.com/sarayacafe/menu-backend/pkg/metrics"
	"github.com/sarayacafe/menu-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Redis       *redis.Client
	Users       middleware.UserLoader
	Auth        auth.Service
	Categories  category.Service
	Products    product.Service
	Variations  variation.Service
	HTTPMetrics *metrics.HTTPMetrics
	Registry    *prometheus.Registry
}

// NewRouter builds the chi tree. Public menu routes stay outside the auth
// group; everything that mutates menu data sits behind Auth + RequireRoles.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	authenticate := middleware.Auth(cfg.JWT, deps.Users, logg)
	adminTier := middleware.RequireRoles(logg, enums.AdminTier()...)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.Health())

		r.Route("/auth", func(r chi.Router) {
			r.With(loginThrottle(deps.Redis, loginPolicy, logg)).
				Post("/login", controllers.Login(deps.Auth, logg))
			r.Post("/refresh-token", controllers.RefreshToken(deps.Auth, logg))

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/me", controllers.Me(deps.Auth, logg))
				r.Post("/change-password", controllers.ChangePassword(deps.Auth, logg))
				r.Post("/logout", controllers.Logout())

				r.Group(func(r chi.Router) {
					r.Use(adminTier)
					r.Get("/users", controllers.ListUsers(deps.Auth, logg))
					r.Post("/users", controllers.CreateUser(deps.Auth, logg))
					r.Post("/users/reset-password", controllers.ResetUserPassword(deps.Auth, logg))
					r.Patch("/users/{userId}/deactivate", controllers.DeactivateUser(deps.Auth, logg))
				})
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/public", controllers.CategoriesPublic(deps.Categories, logg))

			r.Group(func(r chi.Router) {
				r.Use(authenticate, adminTier)
				r.Get("/", controllers.CategoriesList(deps.Categories, logg))
				r.Post("/", controllers.CategoryCreate(deps.Categories, logg))
				r.Get("/{id}", controllers.CategoryGet(deps.Categories, logg))
				r.Put("/{id}", controllers.CategoryUpdate(deps.Categories, logg))
				r.Delete("/{id}", controllers.CategoryDelete(deps.Categories, logg))
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/featured", controllers.ProductsFeatured(deps.Products, logg))

			r.Group(func(r chi.Router) {
				r.Use(authenticate, adminTier)
				r.Get("/", controllers.ProductsList(deps.Products, logg))
				r.Post("/", controllers.ProductCreate(deps.Products, logg))
				r.Get("/{id}", controllers.ProductGet(deps.Products, logg))
				r.Put("/{id}", controllers.ProductUpdate(deps.Products, logg))
				r.Delete("/{id}", controllers.ProductDelete(deps.Products, logg))
			})
		})

		r.Route("/variations", func(r chi.Router) {
			r.Use(authenticate, adminTier)
			r.Get("/", controllers.VariationsList(deps.Variations, logg))
			r.Post("/", controllers.VariationCreate(deps.Variations, logg))
			r.Get("/{id}", controllers.VariationGet(deps.Variations, logg))
			r.Put("/{id}", controllers.VariationUpdate(deps.Variations, logg))
			r.Delete("/{id}", controllers.VariationDelete(deps.Variations, logg))
		})
	})

	return r
}

// loginThrottle resolves to a no-op when Redis is not configured. Passing
// a nil *redis.Client into the middleware would read as a non-nil store.
func loginThrottle(client *redis.Client, policy middleware.AuthRateLimitPolicy, logg *logger.Logger) func(http.Handler) http.Handler {
	if client == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.AuthRateLimit(policy, client, logg)
}
