package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sergdemc/y-lab-1/internal/config"
	"github.com/sergdemc/y-lab-1/pkg/logger"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

var (
	cfg       *config.Config
	log       *slog.Logger
	logCloser io.Closer
)

// rootCmd runs the API server when called without a subcommand
var rootCmd = &cobra.Command{
	Use:           "menu-api",
	Short:         "Restaurant menu REST API",
	Long:          `Serve the menu, submenu and dish catalog over HTTP, backed by PostgreSQL with a read-through cache.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log, logCloser, err = logger.NewWithOptions(logger.Options{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			File:   cfg.LogFile,
		})
		if err != nil {
			return err
		}
		slog.SetDefault(log)
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
