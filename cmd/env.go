package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hanzi/internal/config"
	"github.com/abhisek/hanzi/internal/dataset"
	"github.com/abhisek/hanzi/internal/logger"
	"github.com/abhisek/hanzi/internal/quiz"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/session"
	"github.com/abhisek/hanzi/internal/store"
	"github.com/abhisek/hanzi/internal/tracker"
)

// envOptions select what setupEnv builds.
type envOptions struct {
	// LogToFile sends log output to the log file so a TUI owns the terminal.
	LogToFile bool

	// NoData skips loading the dictionary and schedule.
	NoData bool
}

// env holds everything a command runs against.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Store
	pg     *store.PostgresKV
	data   *dataset.Dataset
	svc    *screen.Services
	closed bool
}

// loadConfig reads the configuration with the persistent flags applied as
// overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]any{}
	if p, _ := cmd.Flags().GetString("dict"); p != "" {
		overrides["data.dictionary"] = p
	}
	if p, _ := cmd.Flags().GetString("schedule"); p != "" {
		overrides["data.schedule"] = p
	}
	file, _ := cmd.Flags().GetString("config")
	return config.Load(config.LoadOptions{ConfigFile: file, Overrides: overrides})
}

// setupEnv loads config, opens the stores and loads the dataset. The caller
// must call close.
func setupEnv(cmd *cobra.Command, opts envOptions) (*env, error) {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logFile := ""
	if opts.LogToFile {
		logFile, err = resolveLogFile(cfg.Log.File)
		if err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
	}
	log, err := logger.New(cfg.Env, cfg.Log.Level, logFile)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	e := &env{cfg: cfg, log: log}

	dsn := cfg.Store.DSN
	if cfg.Store.Driver == config.DriverPostgres {
		dsn = ""
	}
	dbPath, err := resolveDBPath(cmd, dsn)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	e.store, err = store.Open(dbPath)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	var kv store.KV = e.store.KV()
	if cfg.Store.Driver == config.DriverPostgres {
		e.pg, err = store.OpenPostgresKV(ctx, cfg.Store.DSN)
		if err != nil {
			e.close()
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		kv = e.pg
	}
	log.Debug("store opened",
		zap.String("driver", cfg.Store.Driver),
		zap.String("path", dbPath))

	t := tracker.New(kv)
	attempts := e.store.AttemptRepo()
	e.svc = &screen.Services{
		Tracker:  t,
		Recorder: session.NewRecorder(t, attempts),
		Attempts: attempts,
		Logger:   log,
	}

	if opts.NoData {
		return e, nil
	}

	e.data, err = dataset.Load(ctx, dataset.Paths{
		Dictionary: cfg.Data.Dictionary,
		Schedule:   cfg.Data.Schedule,
	})
	if err != nil {
		e.close()
		return nil, err
	}
	e.svc.Data = e.data
	e.svc.Generator = quiz.NewGenerator(e.data.Dictionary,
		quiz.WithSize(cfg.Quiz.Size),
		quiz.WithLogger(log))

	log.Info("dataset loaded",
		zap.Int("characters", e.data.Dictionary.Len()),
		zap.Int("dates", e.data.Schedule.Len()))
	return e, nil
}

func (e *env) close() {
	if e.closed {
		return
	}
	e.closed = true
	if e.pg != nil {
		e.pg.Close()
	}
	if e.store != nil {
		_ = e.store.Close()
	}
	_ = e.log.Sync()
}

// resolveLogFile returns configured, or hanzi.log in the data directory.
func resolveLogFile(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hanzi.log"), nil
}

// reportLoadError prints a dataset failure naming the document that could
// not be read. It reports whether err was one.
func reportLoadError(err error) bool {
	var le *dataset.LoadError
	if !errors.As(err, &le) {
		return false
	}
	fmt.Fprintf(os.Stderr, "Could not load the %s from %s:\n  %v\n", le.Source, le.Path, le.Err)
	return true
}

// requireDate checks that date is on the schedule.
func (e *env) requireDate(date string) error {
	if !e.data.Schedule.Has(date) {
		return fmt.Errorf("%s is not on the schedule", date)
	}
	return nil
}
