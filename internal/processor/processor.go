package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/wavshift/internal/config"
	"github.com/nguyentantai21042004/wavshift/internal/corpus"
)

// Process runs the configured job on one file and writes it to the output folder
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	job := p.cfg.Job

	p.logger.Info(ctx, "Processing %s (%s)", path, job.Operation)

	outputPath, err := p.prepareOutput(ctx, path)
	if err != nil {
		return fmt.Errorf("prepare output: %w", err)
	}

	p.logDuration(ctx, "Input", path)

	switch job.Operation {
	case config.OperationReverse:
		err = p.runner.Reverse(ctx, path, outputPath)
	case config.OperationCompress:
		err = p.runner.Compress(ctx, path, outputPath, job.Amount)
	default:
		err = fmt.Errorf("unknown operation %q", job.Operation)
	}
	if err != nil {
		return err
	}

	p.logDuration(ctx, "Output", outputPath)

	p.logger.Info(ctx, "Done: %s -> %s in %s", path, outputPath, time.Since(startTime))
	return nil
}

// ProcessDir processes every WAV file in dir in name order, stopping at the first failure
func (p *implProcessor) ProcessDir(ctx context.Context, dir string) error {
	names, err := corpus.FindWAVs(dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		p.logger.Info(ctx, "No WAV files found in %s", dir)
		return nil
	}

	p.logger.Info(ctx, "Found %d WAV files in %s", len(names), dir)
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.logger.Info(ctx, "[%d/%d] %s", i+1, len(names), name)
		if err := p.Process(ctx, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("process %s: %w", name, err)
		}
	}
	return nil
}
