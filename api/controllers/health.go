package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/rdelacruz/stocktrail-backend/api/responses"
	"github.com/rdelacruz/stocktrail-backend/pkg/config"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-StockTrail-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and, when configured, redis. Either pinger
// may be nil for deployments that run without the dependency.
func HealthReady(cfg *config.Config, database Pinger, cache Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-StockTrail-Env", cfg.App.Env)

		var errs error
		if database != nil {
			errs = multierr.Append(errs, database.Ping(r.Context()))
		}
		if cache != nil {
			errs = multierr.Append(errs, cache.Ping(r.Context()))
		}
		if errs != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "dependency unreachable"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
