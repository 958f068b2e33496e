package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nijouzu/nijouzu-api/internal/config"
	metrics "github.com/nijouzu/nijouzu-api/pkg/adapters/metrics/prometheus"
)

const (
	requestIDHeader   = "X-Request-ID"
	requestIDKey      = "request_id"
	maxRequestIDLen   = 128
	unmatchedRouteTag = "unmatched"
)

var allMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// corsMiddleware applies the cross-origin policy. Listed origins get the
// permissive headers. Other origins are served without them, and their
// preflights are rejected.
func corsMiddleware(policy config.CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(policy.AllowOrigins))
	for _, origin := range policy.AllowOrigins {
		allowed[origin] = struct{}{}
	}

	permissive := cors.New(cors.Config{
		AllowOrigins:     policy.AllowOrigins,
		AllowMethods:     allMethods,
		AllowHeaders:     []string{"*"},
		AllowCredentials: policy.AllowCredentials,
	})

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if _, ok := allowed[origin]; ok {
			// a plain OPTIONS request is routed like any other method
			if c.Request.Method == http.MethodOptions && !isPreflight(c.Request) {
				c.Next()
				return
			}
			if isPreflight(c.Request) {
				c.Writer = &allowHeadersWriter{
					ResponseWriter: c.Writer,
					headers:        c.GetHeader("Access-Control-Request-Headers"),
				}
			}
			permissive(c)
			return
		}

		if isPreflight(c.Request) {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
				Error: ErrorDetail{
					Code:    "ORIGIN_NOT_ALLOWED",
					Message: "Disallowed CORS origin",
				},
			})
			return
		}

		c.Next()
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}

// allowHeadersWriter echoes the requested headers on the preflight response.
// Credentialed preflights need the header names, "*" is not honoured, so the
// header is dropped when nothing was requested.
type allowHeadersWriter struct {
	gin.ResponseWriter
	headers string
}

func (w *allowHeadersWriter) WriteHeader(code int) {
	if w.headers == "" {
		w.Header().Del("Access-Control-Allow-Headers")
	} else {
		w.Header().Set("Access-Control-Allow-Headers", w.headers)
	}
	w.ResponseWriter.WriteHeader(code)
}

// requestID propagates or generates the request ID
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}

// requestLogger is a middleware for request logging
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(requestIDKey)))
	}
}

// metricsMiddleware records request counts and latencies per route
func metricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		collector.IncInFlight()
		defer collector.DecInFlight()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRouteTag
		}
		collector.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
