package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pokecode-app/pokecode/internal/achievement"
	"github.com/pokecode-app/pokecode/internal/capture"
	"github.com/pokecode-app/pokecode/internal/database"
	"github.com/pokecode-app/pokecode/internal/encounter"
	"github.com/pokecode-app/pokecode/internal/handler"
	"github.com/pokecode-app/pokecode/internal/hatchery"
	"github.com/pokecode-app/pokecode/internal/logger"
	"github.com/pokecode-app/pokecode/internal/metrics"
	"github.com/pokecode-app/pokecode/internal/repository"
	"github.com/pokecode-app/pokecode/internal/shop"
)

// Services bundles everything the router depends on
type Services struct {
	Users       repository.User
	Inventory   repository.Inventory
	Encounter   encounter.Service
	Capture     capture.Service
	Achievement achievement.Service
	Shop        shop.Service
	Hatchery    hatchery.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		userHandler := handler.NewUserHandler(svcs.Users)
		r.Route("/user", func(r chi.Router) {
			r.Get("/", userHandler.HandleGetUser)
			r.Post("/register", userHandler.HandleRegisterUser)
		})

		solveHandler := handler.NewSolveHandler(svcs.Encounter)
		r.Post("/solve", solveHandler.HandleSolve)

		pokemonHandler := handler.NewPokemonHandler(svcs.Encounter)
		r.Route("/pokemon", func(r chi.Router) {
			r.Get("/queue", pokemonHandler.HandleGetQueue)
			r.Get("/collection", pokemonHandler.HandleGetCollection)
		})

		captureHandler := handler.NewCaptureHandler(svcs.Capture)
		r.Post("/capture", captureHandler.HandleThrowBall)

		inventoryHandler := handler.NewInventoryHandler(svcs.Inventory, svcs.Hatchery)
		r.Get("/inventory", inventoryHandler.HandleGetInventory)

		shopHandler := handler.NewShopHandler(svcs.Shop)
		r.Route("/shop", func(r chi.Router) {
			r.Get("/", shopHandler.HandleGetItems)
			r.Post("/purchase", shopHandler.HandlePurchase)
		})

		achievementHandler := handler.NewAchievementHandler(svcs.Achievement)
		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", achievementHandler.HandleGetAchievements)
			r.Post("/claim", achievementHandler.HandleClaimReward)
		})

		hatcheryHandler := handler.NewHatcheryHandler(svcs.Hatchery)
		r.Route("/hatchery", func(r chi.Router) {
			r.Get("/eggs", hatcheryHandler.HandleGetEggs)
			r.Post("/hatch", hatcheryHandler.HandleHatchEgg)
			r.Post("/incubate", hatcheryHandler.HandleUseIncubator)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
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
		statusCode:     http.StatusOK, // default status
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
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

		// Sanitize headers for logging
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
