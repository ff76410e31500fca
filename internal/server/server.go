package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/HoneyNutz/AI-Job-Coach/internal/config"
	"github.com/HoneyNutz/AI-Job-Coach/internal/db"
	"github.com/HoneyNutz/AI-Job-Coach/internal/server/middleware"
	"github.com/HoneyNutz/AI-Job-Coach/internal/server/ratelimit"
	"github.com/HoneyNutz/AI-Job-Coach/internal/types"
)

// Analyzer runs the semantic requirement analysis.
type Analyzer interface {
	Analyze(ctx context.Context, resume *types.Resume, job *types.JobDescription) (*types.AnalysisReport, error)
}

// GapAnalyzer runs the skill coverage analysis.
type GapAnalyzer interface {
	Analyze(ctx context.Context, resume *types.Resume, job *types.JobDescription) (*types.SkillGapReport, error)
}

// BlueprintBuilder generates the coaching blueprint and cover letter.
type BlueprintBuilder interface {
	Generate(ctx context.Context, resume *types.Resume, job *types.JobDescription) *types.Blueprint
	CoverLetter(ctx context.Context, resume *types.Resume, job *types.JobDescription, recipient string) (string, error)
}

// Store is the slice of the db layer the handlers need.
type Store interface {
	UserStore

	CreateAnalysis(ctx context.Context, input *db.AnalysisInput) (uuid.UUID, error)
	SaveReport(ctx context.Context, analysisID uuid.UUID, kind string, content any) error
	SaveTextReport(ctx context.Context, analysisID uuid.UUID, kind, text string) error
	GetAnalysis(ctx context.Context, id uuid.UUID) (*db.Analysis, error)
	GetReport(ctx context.Context, analysisID uuid.UUID, kind string) ([]byte, error)
	GetTextReport(ctx context.Context, analysisID uuid.UUID, kind string) (string, error)
	ListAnalyses(ctx context.Context, filters db.AnalysisFilters) ([]db.Analysis, error)

	CreateApplication(ctx context.Context, input *db.ApplicationInput) (*db.Application, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*db.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*db.Application, error)
	UpdateApplicationNotes(ctx context.Context, id uuid.UUID, notes string) error
	ListApplications(ctx context.Context, filters db.ApplicationFilters) ([]db.Application, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error
}

// Deps carries the services the server exposes over HTTP.
type Deps struct {
	Store     Store
	Analyzer  Analyzer
	Gap       GapAnalyzer
	Blueprint BlueprintBuilder
}

// Config holds server configuration
type Config struct {
	Port int
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	deps        Deps
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
}

// New creates a new server instance. Auth settings come from the
// environment.
func New(cfg Config, deps Deps) (*Server, error) {
	s := &Server{deps: deps}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	userService := NewUserService(deps.Store, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // blueprint generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Everything except health and the auth entry
// points requires a bearer token.
func (s *Server) routes() http.Handler {
	authed := middleware.Auth(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /v1/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", s.authHandler.Login)
	mux.Handle("PUT /v1/auth/password", authed(http.HandlerFunc(s.authHandler.UpdatePassword)))

	mux.Handle("POST /v1/analyze", authed(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("POST /v1/skill-gap", authed(http.HandlerFunc(s.handleSkillGap)))
	mux.Handle("POST /v1/blueprint", authed(http.HandlerFunc(s.handleBlueprint)))
	mux.Handle("POST /v1/cover-letter", authed(http.HandlerFunc(s.handleCoverLetter)))

	mux.Handle("GET /v1/analyses", authed(http.HandlerFunc(s.handleListAnalyses)))
	mux.Handle("GET /v1/analyses/{id}", authed(http.HandlerFunc(s.handleGetAnalysis)))
	mux.Handle("GET /v1/analyses/{id}/reports/{kind}", authed(http.HandlerFunc(s.handleGetReport)))

	mux.Handle("POST /v1/applications", authed(http.HandlerFunc(s.handleCreateApplication)))
	mux.Handle("GET /v1/applications", authed(http.HandlerFunc(s.handleListApplications)))
	mux.Handle("GET /v1/applications/{id}", authed(http.HandlerFunc(s.handleGetApplication)))
	mux.Handle("PATCH /v1/applications/{id}/status", authed(http.HandlerFunc(s.handleUpdateApplicationStatus)))
	mux.Handle("PUT /v1/applications/{id}/notes", authed(http.HandlerFunc(s.handleUpdateApplicationNotes)))
	mux.Handle("DELETE /v1/applications/{id}", authed(http.HandlerFunc(s.handleDeleteApplication)))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID identifies the client by IP address.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
