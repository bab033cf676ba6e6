package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahaxtrex/Scolay/api/controllers"
	"github.com/tahaxtrex/Scolay/api/middleware"
	internalauth "github.com/tahaxtrex/Scolay/internal/auth"
	"github.com/tahaxtrex/Scolay/internal/cart"
	"github.com/tahaxtrex/Scolay/internal/catalog"
	"github.com/tahaxtrex/Scolay/internal/orders"
	"github.com/tahaxtrex/Scolay/pkg/auth/session"
	"github.com/tahaxtrex/Scolay/pkg/config"
	"github.com/tahaxtrex/Scolay/pkg/enums"
	"github.com/tahaxtrex/Scolay/pkg/logger"
	"github.com/tahaxtrex/Scolay/pkg/metrics"
	pkgredis "github.com/tahaxtrex/Scolay/pkg/redis"
)

// Deps bundles everything the router wires into its handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             controllers.Pinger
	Redis          controllers.Pinger
	IdempotencyDB  pkgredis.IdempotencyStore
	SessionChecker session.Checker
	AuthService    internalauth.Service
	CatalogService catalog.Service
	CartStore      *cart.Store
	OrdersService  orders.Service
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	idem := middleware.Idempotency(deps.IdempotencyDB, cfg.Checkout, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(idem).Post("/register", controllers.Register(deps.AuthService, logg))
		r.Post("/login", controllers.Login(deps.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionChecker, logg)).
			Post("/logout", controllers.Logout(deps.AuthService, logg))
	})

	// catalog browsing is public; guardians pick a school before signing in
	r.Route("/api/v1/schools", func(r chi.Router) {
		r.Get("/", controllers.ListSchools(deps.CatalogService, logg))
		r.Get("/{schoolId}", controllers.GetSchool(deps.CatalogService, logg))
		r.Get("/{schoolId}/grade-levels", controllers.ListGradeLevels(deps.CatalogService, logg))
	})
	r.Get("/api/v1/grade-levels/{gradeLevelId}/supply-lists", controllers.ListSupplyLists(deps.CatalogService, logg))
	r.Get("/api/v1/supply-lists/{listId}", controllers.SupplyListDetail(deps.CatalogService, logg))
	r.Route("/api/v1/suppliers", func(r chi.Router) {
		r.Get("/", controllers.ListSuppliers(deps.CatalogService, logg))
		r.Get("/{supplierId}", controllers.GetSupplier(deps.CatalogService, logg))
		r.Get("/{supplierId}/products", controllers.SupplierProducts(deps.CatalogService, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
		r.Use(idem)

		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.CartStore, logg))
			r.Delete("/", controllers.ClearCart(deps.CartStore, logg))
			r.Post("/items", controllers.AddCartItem(deps.CartStore, deps.CatalogService, logg))
			r.Patch("/items/{productId}", controllers.UpdateCartItem(deps.CartStore, logg))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(deps.CartStore, logg))
		})

		r.Post("/api/v1/checkout", controllers.Checkout(deps.CartStore, deps.OrdersService, logg))

		r.Route("/api/v1/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(deps.OrdersService, logg))
			r.Get("/{orderId}", controllers.OrderDetail(deps.OrdersService, logg))
		})

		r.Route("/api/v1/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAnyRole(logg, string(enums.UserRoleAdmin), string(enums.UserRoleSchoolAdmin)))
				r.Post("/schools", controllers.CreateSchool(deps.CatalogService, logg))
				r.Patch("/schools/{schoolId}", controllers.UpdateSchool(deps.CatalogService, logg))
				r.Post("/grade-levels", controllers.CreateGradeLevel(deps.CatalogService, logg))
				r.Post("/supply-lists", controllers.CreateSupplyList(deps.CatalogService, logg))
				r.Post("/supply-lists/{listId}/items", controllers.CreateSupplyListItem(deps.CatalogService, logg))
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAnyRole(logg, string(enums.UserRoleAdmin), string(enums.UserRoleSupplierAdmin)))
				r.Patch("/suppliers/{supplierId}", controllers.UpdateSupplier(deps.CatalogService, logg))
				r.Post("/products", controllers.CreateProduct(deps.CatalogService, logg))
			})
		})
	})

	return r
}
