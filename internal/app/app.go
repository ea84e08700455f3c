package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
	"github.com/five82/roster/internal/users"
)

// Options configure the roster application. Empty fields fall back to the
// config file, then to built-in defaults.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	Endpoint   string
	LogFile    string
	LogLevel   string
	LogFormat  string
}

// runtime holds the wired components for one program run.
type runtime struct {
	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
	loader *directory.Loader
	store  *state.Store
	theme  string
}

// Run boots the roster TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.closer.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	// Runs before cancel, so a fetch finishing during teardown is dropped.
	defer rt.store.Close()

	rt.logger.Info("roster starting", "endpoint", rt.cfg.Endpoint, "timeout", rt.cfg.Timeout)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Loader:    rt.loader,
		Store:     rt.store,
		Logger:    rt.logger,
		ThemeName: rt.theme,
		PrefsPath: opts.PrefsPath,
	})
	if err != nil {
		rt.logger.Error("ui exited with error", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}
	rt.logger.Info("roster stopped")
	return nil
}

// setup loads configuration and wires the logger, client, loader and store.
func setup(opts Options) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return nil, err
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return nil, err
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs failed, using defaults", "error", err)
	}

	client, err := users.NewClient(cfg.Endpoint,
		users.WithTimeout(cfg.Timeout),
		users.WithLogger(logger),
	)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init users client: %w", err)
	}
	cfg.Endpoint = client.Endpoint()

	return &runtime{
		cfg:    cfg,
		logger: logger,
		closer: closer,
		loader: directory.NewLoader(client, logger),
		store:  state.NewStore(),
		theme:  userPrefs.Theme,
	}, nil
}

// applyOverrides layers command-line values over the loaded config.
func applyOverrides(cfg *config.Config, opts Options) error {
	if v := strings.TrimSpace(opts.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(opts.LogFile); v != "" {
		path, err := config.ExpandPath(v)
		if err != nil {
			return fmt.Errorf("resolve log file: %w", err)
		}
		cfg.LogFile = path
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(opts.LogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	return nil
}

// openLogger opens the log file unless logging is off.
func openLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	level := logging.ParseLevel(cfg.LogLevel)
	if level >= logging.LevelOff {
		return logging.Nop(), io.NopCloser(nil), nil
	}
	file, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: file,
	})
	return logger, file, nil
}
