package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"centerwin/backend"
	"centerwin/config"
	"centerwin/window"

	// Import backend packages for side-effect registration
	_ "centerwin/backend/fynewin"
	_ "centerwin/backend/glfwwin"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func init() {
	// GLFW and Fyne must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	if err := config.Validate(cfg, backend.List()); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation failed:\n  %v\n", err)
		return 1
	}

	logger := setupLogging(cfg)
	slog.SetDefault(logger)

	logger.Info("Starting",
		"app", cfg.App.Name,
		"version", version,
		"build_time", buildTime,
		"backend", cfg.Window.Backend,
	)
	logBackends(logger)

	b, err := backend.Get(cfg.Window.Backend)
	if err != nil {
		logger.Error("Failed to resolve backend", "error", err)
		return 1
	}

	ctrl := window.NewController(b, window.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	}, logger)

	if err := ctrl.Run(); err != nil {
		logger.Error("Window failed", "error", err)
		return 1
	}
	return 0
}

// logBackends records every registered backend at debug level
func logBackends(logger *slog.Logger) {
	backend.ForEach(func(name string, b backend.Backend) {
		logger.Debug("Backend available", "name", name, "description", b.Description())
	})
}

func setupLogging(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler

	// If base path is set, use file logging with rotation
	if cfg.Logging.BasePath != "" {
		logPath := filepath.Join(cfg.Logging.BasePath, cfg.Logging.Filename)
		writer := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			Compress:   cfg.Logging.Compress,
		}
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
