package media

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/wavshift/internal/logger"
)

// Compress changes the playback speed of input by amount via chained atempo filters
func (r *implRunner) Compress(ctx context.Context, input, output string, amount float64) error {
	cmd, err := CompressCommand(input, output, amount)
	if err != nil {
		return fmt.Errorf("compress %s: %w", input, err)
	}

	if err := r.run(ctx, cmd); err != nil {
		return fmt.Errorf("compress %s: %w", input, err)
	}

	r.logger.Info(ctx, "Compressed (%.2f): %s -> %s", amount, input, output)
	return nil
}

// Reverse plays input backwards into output
func (r *implRunner) Reverse(ctx context.Context, input, output string) error {
	cmd, err := ReverseCommand(input, output)
	if err != nil {
		return fmt.Errorf("reverse %s: %w", input, err)
	}

	if err := r.run(ctx, cmd); err != nil {
		return fmt.Errorf("reverse %s: %w", input, err)
	}

	r.logger.Info(ctx, "Reversed: %s -> %s", input, output)
	return nil
}

func (r *implRunner) run(ctx context.Context, cmd Command) error {
	r.logger.Info(ctx, "Executing: %s", cmd.Line(r.ffmpegPath))
	if logger.Enabled(r.logger, "debug") {
		r.logger.Debug(ctx, "argv: %q", append([]string{r.ffmpegPath}, cmd.Argv()...))
	}

	// ToolError already carries the full command line
	if _, err := r.executor.Execute(ctx, r.ffmpegPath, cmd.Argv()...); err != nil {
		return err
	}
	return nil
}
