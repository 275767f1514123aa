package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var amount float64

var compressCmd = &cobra.Command{
	Use:   "compress <input> <output>",
	Short: "Change playback speed; --amount 0.5 plays twice as fast",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		value := a.cfg.Job.Amount
		// An explicit --amount is passed through as is, so 0 is rejected
		if cmd.Flags().Changed("amount") {
			value = amount
		}
		return a.runner.Compress(ctx, args[0], args[1], value)
	}),
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <input> <output>",
	Short: "Reverse the audio of a file",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		return a.runner.Reverse(ctx, args[0], args[1])
	}),
}

var durationCmd = &cobra.Command{
	Use:   "duration <file>",
	Short: "Print the duration of a file in seconds",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		seconds, err := a.runner.Duration(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(seconds)
		return nil
	}),
}

func init() {
	compressCmd.Flags().Float64VarP(&amount, "amount", "a", 0, "duration ratio (default job.amount from config)")

	rootCmd.AddCommand(compressCmd, reverseCmd, durationCmd)

	compressCmd.Example = `  # twice as fast
  wavshift compress in.wav out.wav -a 0.5

  # ten times as fast (chains four atempo stages)
  wavshift compress in.wav out.wav -a 0.1`
}
