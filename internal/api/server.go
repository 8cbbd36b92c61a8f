package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"rawdago/pkg/logging"
	"rawdago/pkg/version"
)

// NewServer creates and configures the HTTP server.
// shutdown is invoked by the shutdown endpoint for graceful exit.
func NewServer(addr string, gen *GenerateHandler, tools *ToolsHandler, stats *StatsHandler, shutdown func()) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /api/version", handleVersion)
	mux.HandleFunc("GET /api/log/latest", handleLatestLog)

	mux.HandleFunc("GET /api/tools", tools.HandleList)
	mux.HandleFunc("POST /api/generate", gen.HandleGenerate)
	mux.Handle("GET /api/stats", stats)

	mux.HandleFunc("POST /api/shutdown", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		// Call shutdown in a goroutine to allow the response to flush
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	})

	// No WriteTimeout: generation holds the response open for the full
	// provider round-trip.
	return &http.Server{
		Addr:        addr,
		Handler:     LoggingMiddleware(mux),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
}

// LoggingMiddleware records every processed request in the requests log.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if logging.RequestLogger != nil {
			logging.RequestLogger.Info("Request Processed",
				"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
		}
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}

// handleLatestLog returns the last captured server log line.
func handleLatestLog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"log": logging.GlobalLogCapture.GetLastLine(),
	}); err != nil {
		slog.Error("Failed to write log response", "error", err)
	}
}
