package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/h0rv/widgets/internal/config"
	"github.com/h0rv/widgets/internal/kv"
	"github.com/h0rv/widgets/internal/logutils"
	"github.com/h0rv/widgets/internal/store"
)

type flags struct {
	ConfigPath string
	DataDir    string
	LogLevel   string
	Storage    string
	Screen     string
}

func (f *flags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.ConfigPath, "config", config.DefaultConfigPath(), "Path to the config file.")
	pf.StringVar(&f.DataDir, "data-dir", config.DefaultDataDir(), "Directory for saved data, logs and exports.")
	pf.StringVar(&f.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error. Overrides the config file.")
	pf.StringVar(&f.Storage, "storage", "", "Storage driver: file, sqlite or memory. Overrides the config file.")
}

// env is everything a command needs once configuration is resolved.
type env struct {
	cfg      *config.Config
	log      zerolog.Logger
	closeLog func()
	kv       kv.Store
	store    *store.Store
}

// setup loads configuration, opens the log file and storage, and loads the
// todo list.
func setup(f *flags) (*env, error) {
	cfg, err := config.LoadWith(f.ConfigPath, f.DataDir, config.Overrides{
		LogLevel: f.LogLevel,
		Storage:  f.Storage,
	})
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logutils.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	backend, err := kv.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	log.Debug().
		Str("driver", cfg.Storage.Driver).
		Str("path", cfg.Storage.Path).
		Msg("storage opened")

	s := store.New(backend,
		store.WithKey(cfg.Todo.Key),
		store.WithLogger(logutils.Component(log, "store")),
	)
	// Corrupt data is logged and the list starts empty
	_ = s.Load()

	return &env{
		cfg:      cfg,
		log:      log,
		closeLog: closeLog,
		kv:       backend,
		store:    s,
	}, nil
}

// Close releases storage and the log file.
func (e *env) Close() {
	if err := e.kv.Close(); err != nil {
		e.log.Warn().Err(err).Msg("failed to close storage")
	}
	e.closeLog()
}
