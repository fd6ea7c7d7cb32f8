package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webadmin-core/internal/config"
	"webadmin-core/internal/httpservice"
	"webadmin-core/internal/log"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to configuration file")
		appEnv     = flag.String("env", "", "Application environment (e.g. production)")
		logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		logFormat  = flag.String("log-format", "json", "Log format (json, text)")
	)
	flag.Parse()

	if err := log.Init(log.Config{Level: *logLevel, Format: *logFormat}); err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}

	manager := config.NewManager(config.ManagerOptions{
		ConfigFile:   *configPath,
		EnableDotEnv: true,
		AppEnv:       *appEnv,
	})
	if err := manager.Load(); err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	cfg := manager.Get()

	// OAuth mode without its secrets cannot authenticate anyone; refuse
	// to start rather than run an unreachable console
	if result := manager.Validate(); !result.Valid {
		log.Fatalf("%s", result.Error())
	}

	if !cfg.Enabled {
		log.Warn("local bypass is disabled; every request will go through standard authentication")
	}

	// Session and OAuth authentication live in the surrounding
	// deployment; standing alone, denied requests fail closed
	run(httpservice.NewServer(manager, nil))
}

// run starts the HTTP service and blocks until SIGINT/SIGTERM, then
// drains with a bounded shutdown window
func run(srv *httpservice.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("admin http service failed: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Fatalf("shutdown failed: %v", err)
		}
	}

	log.Info("admin console server exited gracefully")
}
