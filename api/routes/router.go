package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rdelacruz/stocktrail-backend/api/controllers"
	"github.com/rdelacruz/stocktrail-backend/api/middleware"
	"github.com/rdelacruz/stocktrail-backend/internal/activity"
	"github.com/rdelacruz/stocktrail-backend/internal/auth"
	"github.com/rdelacruz/stocktrail-backend/internal/items"
	"github.com/rdelacruz/stocktrail-backend/internal/masteritems"
	"github.com/rdelacruz/stocktrail-backend/internal/stores"
	"github.com/rdelacruz/stocktrail-backend/internal/users"
	"github.com/rdelacruz/stocktrail-backend/pkg/config"
	"github.com/rdelacruz/stocktrail-backend/pkg/logger"
	"github.com/rdelacruz/stocktrail-backend/pkg/metrics"
	"github.com/rdelacruz/stocktrail-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database controllers.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	registry prometheus.Gatherer,
	authService auth.Service,
	userService users.Service,
	storeService stores.Service,
	itemService items.Service,
	masterItemService masteritems.Service,
	activityService activity.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	var cache controllers.Pinger
	if redisClient != nil {
		cache = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, database, cache, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		login := controllers.AuthLogin(authService, logg)
		register := controllers.AuthRegister(authService, logg)
		if redisClient != nil {
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", login)
			r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", register)
		} else {
			r.Post("/login", login)
			r.Post("/register", register)
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, userService, logg))

		r.Route("/items", func(r chi.Router) {
			r.Get("/", controllers.ItemList(itemService, logg))
			r.Post("/", controllers.ItemCreate(itemService, logg))
			r.Get("/{itemId}", controllers.ItemGet(itemService, logg))
			r.Put("/{itemId}", controllers.ItemUpdate(itemService, logg))
			r.Delete("/{itemId}", controllers.ItemDelete(itemService, logg))
			r.Patch("/{itemId}/quantity", controllers.ItemQuantity(itemService, logg))
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", controllers.StoreList(storeService, logg))
			r.Post("/", controllers.StoreCreate(storeService, logg))
			r.Get("/{storeId}", controllers.StoreGet(storeService, logg))
			r.Put("/{storeId}", controllers.StoreUpdate(storeService, logg))
			r.Delete("/{storeId}", controllers.StoreDelete(storeService, logg))
		})

		r.Route("/master-items", func(r chi.Router) {
			r.Get("/", controllers.MasterItemList(masterItemService, logg))
			r.Post("/", controllers.MasterItemCreate(masterItemService, logg))
			r.Put("/{masterItemId}", controllers.MasterItemUpdate(masterItemService, logg))
			r.Delete("/{masterItemId}", controllers.MasterItemDelete(masterItemService, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.UserList(userService, logg))
			r.Post("/", controllers.UserCreate(userService, logg))
			r.Get("/managed", controllers.UserListManaged(userService, logg))
			r.Put("/{userId}", controllers.UserUpdate(userService, logg))
			r.Delete("/{userId}", controllers.UserDelete(userService, logg))
		})

		r.Route("/logs", func(r chi.Router) {
			r.Get("/", controllers.LogList(activityService, logg))
			r.Post("/", controllers.LogAppend(activityService, logg))
		})
	})

	return r
}
