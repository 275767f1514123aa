package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/wavshift/internal/config"
	"github.com/nguyentantai21042004/wavshift/internal/logger"
	"github.com/nguyentantai21042004/wavshift/internal/media"
	"github.com/nguyentantai21042004/wavshift/pkg/executor"
)

const defaultConfigPath = "config.yaml"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "wavshift",
	Short:         "Change the speed and direction of audio files with ffmpeg",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
}

// app bundles the dependencies every subcommand needs
type app struct {
	cfg    *config.Config
	log    logger.Logger
	runner media.Runner
}

// loadConfig reads --config. A missing default config falls back to built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	return nil, fmt.Errorf("load config: %w", err)
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log := logger.NewWithOptions(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSize:    cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAgeDays,
	})
	exec := executor.New(executor.WithTimeout(cfg.FFmpeg.Timeout))

	return &app{
		cfg:    cfg,
		log:    log,
		runner: media.New(cfg, exec, log),
	}, nil
}

// withApp adapts a handler that needs the app into a cobra RunE
func withApp(run func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync(a.log)
		return run(cmd.Context(), cmd, a, args)
	}
}
