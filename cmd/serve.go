package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/advisor-cli/internal/engine"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/orchestrator"
	"github.com/sells-group/advisor-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for analysis requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		var st store.Store
		if cfg.Store.DatabaseURL != "" {
			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close() //nolint:errcheck
			if err := s.Migrate(ctx); err != nil {
				return err
			}
			st = s
		}

		api := &apiServer{
			orch:  buildOrchestrator(),
			store: st,
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: api.routes(rate.Limit(cfg.Server.RatePerSecond), cfg.Server.RateBurst),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// apiServer bundles the handler dependencies.
type apiServer struct {
	orch  *orchestrator.Orchestrator
	store store.Store
}

func (s *apiServer) routes(limit rate.Limit, burst int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(rateLimit(rate.NewLimiter(limit, burst)))

	r.Get("/health", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/engines", s.handleEngines)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/compare", s.handleCompare)
		r.Get("/runs/{id}", s.handleGetRun)
	})
	return r
}

// rateLimit applies a global token-bucket limit to all requests.
func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *apiServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *apiServer) handleEngines(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.orch.ListEngines())
}

type analyzeRequest struct {
	Engine     string            `json:"engine"`
	Submission *model.Submission `json:"submission"`
}

func (s *apiServer) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Submission == nil {
		writeError(w, http.StatusBadRequest, "submission is required")
		return
	}
	if req.Engine == "" {
		req.Engine = cfg.Engines.Default
	}

	var runID string
	if s.store != nil {
		run, err := s.store.CreateRun(r.Context(), req.Engine, req.Submission)
		if err != nil {
			zap.L().Error("create run failed", zap.Error(err))
		} else {
			runID = run.ID
		}
	}

	result, err := s.orch.RunOne(r.Context(), req.Engine, req.Submission)
	if err != nil {
		if runID != "" {
			_ = s.store.FailRun(r.Context(), runID, err.Error())
		}
		writeAnalysisError(w, err)
		return
	}
	if runID != "" {
		_ = s.store.CompleteRun(r.Context(), runID, result)
	}

	writeJSON(w, http.StatusOK, struct {
		RunID  string                `json:"run_id,omitempty"`
		Result *model.AnalysisResult `json:"result"`
	}{RunID: runID, Result: result})
}

type compareRequest struct {
	Engines    []string          `json:"engines"`
	Submission *model.Submission `json:"submission"`
}

func (s *apiServer) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Submission == nil {
		writeError(w, http.StatusBadRequest, "submission is required")
		return
	}

	results, errs := s.orch.RunMany(r.Context(), req.Engines, req.Submission)

	out := struct {
		Results    map[string]*model.AnalysisResult `json:"results"`
		Errors     map[string]string                `json:"errors,omitempty"`
		Comparison *model.EngineComparison          `json:"comparison,omitempty"`
	}{Results: results}

	if len(errs) > 0 {
		out.Errors = make(map[string]string, len(errs))
		for id, err := range errs {
			out.Errors[id] = err.Error()
		}
	}
	if len(results) >= 2 {
		cmp, err := orchestrator.Compare(results)
		if err == nil {
			out.Comparison = cmp
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *apiServer) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotImplemented, "run history is not configured")
		return
	}

	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// writeAnalysisError maps engine error types to HTTP statuses.
func writeAnalysisError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	var uerr *engine.EngineUnavailableError
	var oerr *orchestrator.OrchestrationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    "validation failed",
			"problems": verr.Problems,
		})
	case errors.As(err, &uerr):
		writeError(w, http.StatusServiceUnavailable, uerr.Error())
	case errors.As(err, &oerr):
		writeError(w, http.StatusBadRequest, oerr.Error())
	default:
		zap.L().Error("analysis failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "analysis failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
