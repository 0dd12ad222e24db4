package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ykatyhoney/sunflower-land/internal/catalog"
	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
	"github.com/ykatyhoney/sunflower-land/internal/handler"
	"github.com/ykatyhoney/sunflower-land/internal/logger"
	"github.com/ykatyhoney/sunflower-land/internal/metrics"
	"github.com/ykatyhoney/sunflower-land/internal/repository"
	"github.com/ykatyhoney/sunflower-land/internal/session"
	"github.com/ykatyhoney/sunflower-land/internal/sse"
)

// Options holds the HTTP surface settings
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Dependencies are the services the routes are served from
type Dependencies struct {
	Store    repository.Pinger
	Sessions session.Service
	History  eventlog.Service
	Catalog  *catalog.Catalog
	Stream   *sse.Hub // optional; nil leaves the stream route unmounted
}

type Server struct {
	httpServer *http.Server
	router     http.Handler
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBytes))
	r.Use(compressMiddleware)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))

	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	farms := handler.NewFarmHandler(deps.Sessions, deps.History)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/farms", func(r chi.Router) {
			r.Post("/", farms.HandleCreateFarm)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", farms.HandleGetFarm)
				r.Post("/events", farms.HandleApplyEvent)
				r.Get("/events", farms.HandleGetHistory)
				if deps.Stream != nil {
					r.With(farms.RequireFarm).Get("/stream", sse.Handler(deps.Stream))
				}

				r.With(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector)).
					Put("/onchain", farms.HandleSettle)
			})
		})

		r.Get("/shop/seeds", handler.HandleGetSeedPrices(deps.Catalog))

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
			r.Get("/cache/stats", farms.HandleGetCacheStats)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the routed handler, mainly for in-process tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets streaming handlers see through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// compressMiddleware gzips responses except event streams, which must reach
// the client unbuffered
func compressMiddleware(next http.Handler) http.Handler {
	gz := gzhttp.GzipHandler(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, streamPathSuffix) {
			next.ServeHTTP(w, r)
			return
		}
		gz.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// HasPrefix also catches variations such as /healthz/
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		w.Header().Set(HeaderRequestID, requestID)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
