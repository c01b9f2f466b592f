package server

import (
	"context"
	"net/http"
	"time"

	"linkbio-service/internal/cache"
	"linkbio-service/internal/config"
	"linkbio-service/internal/handler"
	"linkbio-service/internal/repository"
	"linkbio-service/internal/router"
	"linkbio-service/internal/service/preview"
	"linkbio-service/internal/service/render"
	"linkbio-service/internal/service/resolver"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Rdb    *redis.Client
	Logger *zap.Logger

	httpServer *http.Server
}

// NewServer wires the resolution pipeline: pgx pool -> repository ->
// resolver -> renderers -> HTTP handler, with redis backing the rate limiter
// and the preview cache. Redis being down degrades those two concerns but
// never the service.
func NewServer(cfg config.Config, logger *zap.Logger) (*Server, error) {
	dbpool, err := pgxpool.New(context.Background(), cfg.DBConnString)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr, Password: cfg.RedisPass,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("failed to connect to Redis, rate limiting and preview cache disabled", zap.Error(err))
		rdb = nil
	}

	profileRepo := repository.NewProfileRepository(dbpool, repository.DefaultRetryPolicy(), logger)
	res := resolver.NewResolver(profileRepo, logger)

	previewRenderer := preview.NewRenderer(cfg.SiteName, cfg.SiteURL, cfg.StorageBaseURL)
	pageRenderer := render.NewRenderer(cfg.SiteName, cfg.StorageBaseURL)

	var previews *cache.PreviewCache
	if rdb != nil {
		previews = cache.NewPreviewCache(rdb, time.Hour)
	}

	profileHandler := handler.NewProfileHandler(
		res,
		previewRenderer,
		pageRenderer,
		previews,
		cfg.SiteURL,
		cfg.ResolveTimeout,
		logger,
	)

	mux := router.SetupRoutes(chi.NewRouter(), profileHandler, rdb, logger)

	return &Server{
		Cfg:    cfg,
		DB:     dbpool,
		Rdb:    rdb,
		Logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           mux,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func (s *Server) Start() error {
	s.Logger.Info("starting http server", zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
	if s.Rdb != nil {
		_ = s.Rdb.Close()
	}
}
