package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"linkbio-service/internal/handler"
	"linkbio-service/internal/middleware"
)

func SetupRoutes(
	r chi.Router,
	profileHandler *handler.ProfileHandler,
	rdb *redis.Client,
	logger *zap.Logger,
) chi.Router {

	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.RequestLogger(logger))

	if rdb != nil {
		r.Use(middleware.RateLimiter(rdb, 300, time.Minute, 10*time.Minute, "linkbio"))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Link bio service is running"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Public profile surface
	r.Get("/p/{extension}", profileHandler.PublicProfile)
	r.Get("/api/p/{extension}", profileHandler.PreviewAPI)

	return r
}
