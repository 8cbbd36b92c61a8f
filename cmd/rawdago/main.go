package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rawdago/internal/api"
	"rawdago/pkg/assistant"
	"rawdago/pkg/config"
	"rawdago/pkg/llm/gemini"
	"rawdago/pkg/logging"
	"rawdago/pkg/tracker"
	"rawdago/pkg/tts"
	geminitts "rawdago/pkg/tts/gemini"
	"rawdago/pkg/version"
)

var (
	configPath = flag.String("config", "configs/rawda.yaml", "Path to config file")
	initConfig = flag.Bool("init-config", false, "Generate default config file and exit")
)

func main() {
	flag.Parse()

	if *initConfig {
		if err := config.GenerateDefault(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated:", *configPath)
		return
	}

	if err := run(context.Background(), *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// .env is optional; the config file or environment may carry the key.
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded environment from .env")
	}

	appCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&appCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	tts.SetLogPath(appCfg.Log.TTS.Path)

	slog.Info("RawdaGo Started", "version", version.Version)

	tr := tracker.New()

	llmClient, err := gemini.NewClient(ctx, appCfg.LLM, appCfg.Log.Gemini.Path, tr)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	healthCtx, healthCancel := context.WithTimeout(ctx, 5*time.Second)
	err = llmClient.HealthCheck(healthCtx)
	healthCancel()
	if err != nil {
		return fmt.Errorf("LLM health check failed: %w", err)
	}

	ttsProv, err := geminitts.NewProvider(ctx, appCfg.TTS, appCfg.LLM.Key, tr)
	if err != nil {
		return fmt.Errorf("failed to initialize TTS provider: %w", err)
	}

	svc, err := assistant.New(llmClient, ttsProv, appCfg.TTS.ArabicVoice, appCfg.TTS.FrenchVoice)
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w", err)
	}

	return runServer(ctx, appCfg, svc, tr)
}

func runServer(ctx context.Context, cfg *config.Config, svc *assistant.Service, tr *tracker.Tracker) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	shutdownFunc := func() { quit <- syscall.SIGTERM }

	srv := api.NewServer(cfg.Server.Address,
		api.NewGenerateHandler(svc),
		api.NewToolsHandler(),
		api.NewStatsHandler(tr),
		shutdownFunc,
	)

	return runServerLifecycle(ctx, srv, quit)
}

func runServerLifecycle(ctx context.Context, srv *http.Server, quit chan os.Signal) error {
	slog.Info("Starting server", "addr", srv.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()
	select {
	case <-quit:
		slog.Info("Shutting down server...")
	case <-ctx.Done():
		slog.Info("Context cancelled, shutting down...")
	case err := <-serverErrors:
		return fmt.Errorf("server failed: %w", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
