// Package server provides the HTTP REST API for the resume builder.
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
	"github.com/jonathan/resume-builder/internal/ai"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/store"
)

// StoreClient is the persistence surface the server needs. *store.Store
// satisfies it; tests substitute mocks.
type StoreClient interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*store.User, error)
	GetUserByEmail(ctx context.Context, email string) (*store.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	FetchLatestOrByID(ctx context.Context, userID uuid.UUID, resumeID *uuid.UUID) (*store.ResumeRecord, error)
	Upsert(ctx context.Context, rec *store.ResumeRecord) (*store.ResumeRecord, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]store.ResumeSummary, error)
	DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) error
}

// AIService is the content generation surface used by the AI endpoint.
type AIService interface {
	GenerateSummary(ctx context.Context, in ai.SummaryInput) (string, error)
	SuggestSkills(ctx context.Context, jobDescription string) ([]string, error)
	SuggestCourses(ctx context.Context, degree, jobDescription string) ([]string, error)
	EnhanceText(ctx context.Context, text string) (string, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       StoreClient
	closeStore  func()
	ai          AIService
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler

	useBrowser    bool
	interestAlign export.Alignment
}

// Config holds server configuration.
type Config struct {
	Port              int
	DatabaseURL       string
	GeminiAPIKey      string
	GeminiModel       string
	UseBrowser        bool
	InterestAlignment string
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	database, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	authCfg, err := config.NewAuthConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create auth config: %w", err)
	}

	s := &Server{
		store:      database,
		closeStore: database.Close,
		useBrowser: cfg.UseBrowser,
	}

	s.interestAlign = export.ParseAlignment(cfg.InterestAlignment)

	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		s.ai = ai.NewService(client)
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())
	s.jwtService = NewJWTService(authCfg)
	s.userService = NewUserService(database, authCfg)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // exports and AI calls take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Resume and AI endpoints require a valid
// bearer token; auth and health endpoints do not.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("GET /health", s.handleHealth)

	authed := middleware.Auth(s.jwtService.AsTokenValidator())

	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, authed(h))
	}

	protected("GET /api/resumes", s.handleListResumes)
	protected("POST /api/resumes", s.handleCreateResume)
	protected("POST /api/resumes/import", s.handleImportResume)
	protected("GET /api/resumes/{id}", s.handleGetResume)
	protected("PUT /api/resumes/{id}", s.handleUpdateResume)
	protected("DELETE /api/resumes/{id}", s.handleDeleteResume)
	protected("POST /api/resumes/{id}/export", s.handleExportResume)
	protected("GET /api/resumes/{id}/preview", s.handlePreviewResume)
	protected("POST /api/ai/generate", s.handleGenerate)

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
	if s.closeStore != nil {
		s.closeStore()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
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

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For would only be
// safe behind a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
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

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
