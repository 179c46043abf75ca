package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"oncologyassistant/internal/app/config"
	"oncologyassistant/internal/app/handler"
	"oncologyassistant/internal/app/middleware"
	"oncologyassistant/internal/app/repository"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const metricsNamespace = "oncology"

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg    *config.Config
	engine *gin.Engine
}

// NewServer собирает middleware, метрики и маршруты API вокруг repo.
func NewServer(cfg *config.Config, repo *repository.Repository) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.CORS())

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics(metricsNamespace)
		router.Use(metrics.Instrument())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	}

	if cfg.GzipEnabled {
		router.Use(gzip.Gzip(gzip.BestSpeed,
			gzip.WithExcludedPaths([]string{"/metrics"}),
			gzip.WithExcludedExtensions([]string{".xlsx"}),
		))
	}

	h := handler.NewHandler(repo, metrics)
	h.RegisterHandler(router)

	return &Server{cfg: cfg, engine: router}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run обслуживает HTTP до отмены ctx, затем корректно останавливает сервер.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.ServiceHost, s.cfg.ServicePort),
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("server start up")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server down")
	return nil
}
