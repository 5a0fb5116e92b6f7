// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mynameistito/screenshotgun-app-v2/internal/auth"
	"github.com/mynameistito/screenshotgun-app-v2/internal/capture"
	"github.com/mynameistito/screenshotgun-app-v2/internal/config"
	"github.com/mynameistito/screenshotgun-app-v2/internal/export"
	"github.com/mynameistito/screenshotgun-app-v2/internal/prefs"
	"github.com/mynameistito/screenshotgun-app-v2/internal/tile"
	"github.com/mynameistito/screenshotgun-app-v2/internal/ui"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands.
// Use Close() to ensure proper resource cleanup on shutdown.
type Application struct {
	Config    *config.Config
	Logger    *zerolog.Logger
	Prefs     prefs.Store
	Theme     ui.Theme
	Session   *capture.Session
	Remote    *capture.RemoteEngine
	Local     *capture.LocalEngine
	Splitter  *tile.Splitter
	Exporter  *export.Exporter
	startTime time.Time
}

// New creates and initializes a new Application with all dependencies.
//
// It performs the following initialization steps:
//   - Configures logging based on the provided config
//   - Opens the preference store and applies the appearance setting
//   - Resolves the capture service access key (flag > env > keyring > built-in)
//   - Creates the remote and local capture engines
//   - Creates the splitter and exporter for the output pipeline
//
// If any step fails, an error is returned and no resources are allocated.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Initialize logger based on config
	logLevel := zerolog.ErrorLevel // default: suppress non-verbose info logs
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	// Treat "info" as non-verbose (don't display info logs unless -v is used)
	default:
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		// JSON logs to stderr
		logWriter = os.Stderr
	} else {
		// Human-friendly console output otherwise
		logWriter = zerolog.NewConsoleWriter()
	}

	logger := log.Output(logWriter).With().Timestamp().Logger()

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	// Open the preference store; fall back to in-memory settings when no
	// config directory is available (read-only containers)
	var store prefs.Store
	if fileStore, err := prefs.NewFileStore(""); err != nil {
		logger.Warn().Err(err).Msg("Preference store unavailable, using in-memory settings")
		store = prefs.NewMemStore()
	} else {
		store = fileStore
	}

	// Apply the appearance preference; absence means follow the terminal
	pref, err := store.Get(prefs.KeyTheme)
	if err != nil && !errors.Is(err, prefs.ErrNotFound) {
		logger.Warn().Err(err).Msg("Failed to read appearance preference")
	}
	theme := ui.Use(pref)
	logger.Debug().Str("theme", string(theme)).Msg("Appearance applied")

	// Resolve the access key: flag and environment are already in cfg,
	// then the keyring, then the build-time fallback
	accessKey := cfg.AccessKey
	if accessKey == "" {
		stored, err := auth.LoadAccessKey()
		switch {
		case err == nil:
			accessKey = stored
			logger.Debug().Msg("Using stored access key")
		case errors.Is(err, auth.ErrNotStored):
			accessKey = config.DefaultAccessKey
		default:
			logger.Warn().Err(err).Msg("Failed to read stored access key")
			accessKey = config.DefaultAccessKey
		}
	}

	remote := capture.NewRemoteEngine(cfg.Endpoint, accessKey)
	local := capture.NewLocalEngine(capture.LocalOptions{
		Headless:   cfg.Headless,
		UserAgent:  cfg.UserAgent,
		Proxy:      cfg.Proxy,
		ChromePath: cfg.ChromePath,
	})
	logger.Debug().
		Str("endpoint", cfg.Endpoint).
		Msg("Capture engines initialized")

	app := &Application{
		Config:    cfg,
		Logger:    &logger,
		Prefs:     store,
		Theme:     theme,
		Session:   capture.NewSession(),
		Remote:    remote,
		Local:     local,
		Splitter:  tile.NewSplitter(),
		Exporter:  export.NewExporter(cfg.OutputDir),
		startTime: time.Now(),
	}

	logger.Info().Msg("Application initialized successfully")
	return app, nil
}

// Engine selects a capture engine by name: "remote" (the default) or
// "local" for the in-process headless Chrome renderer.
func (a *Application) Engine(name string) (capture.Capturer, error) {
	switch name {
	case "", "remote":
		return a.Remote, nil
	case "local":
		return a.Local, nil
	}
	return nil, fmt.Errorf("unknown engine %q (expected remote or local)", name)
}

// Close gracefully shuts down the application and all its resources.
//
// Any errors during shutdown are logged but do not prevent other
// shutdown steps.
func (a *Application) Close(ctx context.Context) error {
	a.Logger.Info().Msg("Shutting down application")

	// Close HTTP client (connection pooling cleanup)
	if a.Remote != nil {
		a.Remote.CloseIdleConnections()
	}

	uptime := time.Since(a.startTime)
	a.Logger.Info().Dur("uptime", uptime).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
