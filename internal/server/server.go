// Package server provides the HTTP REST API for the job application agent.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Kcheesee/JApplication-Tracker/internal/analyzer"
	"github.com/Kcheesee/JApplication-Tracker/internal/config"
	"github.com/Kcheesee/JApplication-Tracker/internal/db"
	"github.com/Kcheesee/JApplication-Tracker/internal/fetch"
	"github.com/Kcheesee/JApplication-Tracker/internal/llm"
	"github.com/Kcheesee/JApplication-Tracker/internal/server/middleware"
	"github.com/Kcheesee/JApplication-Tracker/internal/types"
)

// Store is the persistence surface the handlers need. *db.DB satisfies it;
// handler tests substitute a fake.
type Store interface {
	UserStore
	SavePosting(ctx context.Context, userID uuid.UUID, posting *types.JobPosting) (uuid.UUID, error)
	GetPosting(ctx context.Context, userID, postingID uuid.UUID) (*db.PostingRecord, error)
	ListPostings(ctx context.Context, userID uuid.UUID, filters db.PostingFilters) ([]db.PostingRecord, error)
	DeletePosting(ctx context.Context, userID, postingID uuid.UUID) error
	SaveAnalysis(ctx context.Context, postingID uuid.UUID, kind string, content any) (uuid.UUID, error)
	GetAnalysis(ctx context.Context, analysisID uuid.UUID) (*db.AnalysisRecord, error)
}

// Config holds server configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	APIKey      string
	UseBrowser  bool
	Verbose     bool
}

// Server is the HTTP server and its wiring.
type Server struct {
	httpServer  *http.Server
	store       Store
	dbConn      *db.DB
	deep        *analyzer.DeepAnalyzer
	llmClient   llm.Client
	fetchOpts   *fetch.Options
	jwtService  *JWTService
	userService *UserService
}

// New creates a server instance and connects its dependencies.
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	// The LLM client is optional. Without a key the deep analyzer degrades
	// to the rule-based result.
	var llmClient llm.Client
	if cfg.APIKey != "" {
		llmClient, err = llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			log.Printf("[SERVER] LLM client unavailable, deep analysis will use fallback: %v", err)
		}
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowserFallback = cfg.UseBrowser
	fetchOpts.Verbose = cfg.Verbose

	s := &Server{
		store:       database,
		dbConn:      database,
		deep:        analyzer.NewDeepAnalyzer(llmClient),
		llmClient:   llmClient,
		fetchOpts:   fetchOpts,
		jwtService:  NewJWTService(jwtConfig),
		userService: NewUserService(database, passwordConfig),
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // browser-rendered fetches can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the ServeMux. Exported indirectly through New; tests build
// a Server by hand and call it directly.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.Auth(s.jwtService.AsTokenValidator())

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.Handle("POST /postings", auth(http.HandlerFunc(s.handleCreatePosting)))
	mux.Handle("GET /postings", auth(http.HandlerFunc(s.handleListPostings)))
	mux.Handle("GET /postings/{id}", auth(http.HandlerFunc(s.handleGetPosting)))
	mux.Handle("DELETE /postings/{id}", auth(http.HandlerFunc(s.handleDeletePosting)))
	mux.Handle("POST /postings/{id}/analyze", auth(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("POST /postings/{id}/tailor", auth(http.HandlerFunc(s.handleTailor)))
	mux.Handle("GET /analyses/{id}", auth(http.HandlerFunc(s.handleGetAnalysis)))

	return mux
}

// Start listens until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[SERVER] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[SERVER] error: %v", err)
		}
	}()

	<-stop
	log.Println("[SERVER] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("[SERVER] failed to close LLM client: %v", err)
		}
	}
	s.dbConn.Close()
	log.Println("[SERVER] stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[SERVER] error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
