package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/wavshift/internal/fsutil"
	"github.com/nguyentantai21042004/wavshift/internal/processor"
	"github.com/nguyentantai21042004/wavshift/internal/watcher"
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Apply the configured job to every WAV in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		dir := a.cfg.Paths.Input
		if len(args) == 1 {
			dir = args[0]
		}
		return processor.New(a.cfg, a.runner, a.log).ProcessDir(ctx, dir)
	}),
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Apply the configured job to WAV files as they appear in paths.input",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		for _, dir := range []string{a.cfg.Paths.Input, a.cfg.Paths.Output} {
			if err := fsutil.EnsureDir(dir); err != nil {
				return err
			}
		}

		proc := processor.New(a.cfg, a.runner, a.log)
		w, err := watcher.New(a.cfg.Paths.Input, proc.Process, a.log, a.cfg.Watch.SettleDelay)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a.log.Info(ctx, "Job: %s (amount %.2f), output: %s", a.cfg.Job.Operation, a.cfg.Job.Amount, a.cfg.Paths.Output)
		a.log.Info(ctx, "Press Ctrl+C to stop")

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		a.log.Info(ctx, "Shutting down gracefully...")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(batchCmd, watchCmd)
}
