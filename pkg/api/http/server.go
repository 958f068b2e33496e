package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/nijouzu/nijouzu-api/docs"
	"github.com/nijouzu/nijouzu-api/internal/config"
	metrics "github.com/nijouzu/nijouzu-api/pkg/adapters/metrics/prometheus"
)

const docsIndexPath = "/docs/index.html"

// Server represents the HTTP API server
type Server struct {
	router   *gin.Engine
	server   *http.Server
	listener net.Listener
	cfg      *config.Config
	metrics  *metrics.Collector
	logger   *zap.Logger

	root   RootResponse
	health HealthResponse
}

// Config holds HTTP server dependencies
type Config struct {
	App     *config.Config
	Metrics *metrics.Collector
	// Gatherer backs /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	if cfg.Metrics != nil {
		router.Use(metricsMiddleware(cfg.Metrics))
	}
	router.Use(corsMiddleware(cfg.App.CORS))

	s := &Server{
		router:  router,
		cfg:     cfg.App,
		metrics: cfg.Metrics,
		logger:  logger,
		root: RootResponse{
			Message: "Welcome to " + cfg.App.Service.Title,
			Status:  "running",
		},
		health: HealthResponse{
			Status:  "healthy",
			Service: cfg.App.Service.Name,
		},
	}

	s.setupRoutes(cfg.Gatherer)

	s.server = &http.Server{
		Addr:    cfg.App.GetHTTPAddr(),
		Handler: router,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/health", s.handleHealth)

	if s.cfg.MetricsEnabled {
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if s.cfg.DocsEnabled {
		// GET /docs reaches here as /docs/ through gin's trailing slash redirect
		swagger := ginSwagger.WrapHandler(swaggerFiles.Handler)
		s.router.GET("/docs/*any", func(c *gin.Context) {
			if c.Param("any") == "/" {
				c.Redirect(http.StatusMovedPermanently, docsIndexPath)
				return
			}
			swagger(c)
		})
	}

	s.router.NoRoute(s.handleNotFound)
	s.router.NoMethod(s.handleMethodNotAllowed)
}

// Handler returns the root handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the listener so that startup failures surface before serving
func (s *Server) Listen() error {
	if s.listener != nil {
		return nil
	}

	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	s.listener = listener

	s.logger.Info("HTTP server listening", zap.String("addr", listener.Addr().String()))
	return nil
}

// Addr returns the bound address, or the configured one before Listen
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Start binds the listener if needed and serves until Shutdown
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.SetServiceInfo(s.cfg.Service.Name, s.cfg.Service.Version)
	}

	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
