// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/config"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

const version = "0.2.0"

var (
	// Global flags
	configFile string
	verbose    bool

	// cfg is resolved before every command runs.
	cfg *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Layer-by-layer Rubik's Cube solver",
	Long: `cubesolver - scramble, solve and analyse a 3x3x3 Rubik's Cube with the
beginner's layer-by-layer method.

Solves can be saved to a local SQLite history, benchmarked in parallel and
replayed move by move in the terminal.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database file path (default: ~/.cubesolver/history.db)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.cubesolver/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(config.New(), configFile, cmd.Flags())
	if err != nil {
		return err
	}
	cfg = c

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

// openDB opens the configured history database.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if cfg.DBPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(cfg.DBPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log.Debug().Str("path", db.Path()).Msg("database-open")
	return db, nil
}
