package processor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/wavshift/internal/corpus"
	"github.com/nguyentantai21042004/wavshift/internal/fsutil"
)

// prepareOutput returns the output path for input and clears any stale result
func (p *implProcessor) prepareOutput(ctx context.Context, input string) (string, error) {
	if err := fsutil.EnsureDir(p.cfg.Paths.Output); err != nil {
		return "", err
	}

	outputPath := filepath.Join(p.cfg.Paths.Output, corpus.Label(input)+corpus.Extension)
	if abs(outputPath) == abs(input) {
		return "", fmt.Errorf("output %s would overwrite the input", outputPath)
	}

	if fsutil.Exists(outputPath) {
		p.logger.Debug(ctx, "Removing previous output: %s", outputPath)
	}
	if err := fsutil.RemoveIfExists(outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

func abs(path string) string {
	a, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return a
}

// logDuration logs the probed length of path, warns if the probe fails
func (p *implProcessor) logDuration(ctx context.Context, label, path string) {
	seconds, err := p.runner.Duration(ctx, path)
	if err != nil {
		p.logger.Warn(ctx, "Failed to probe %s duration: %v", label, err)
		return
	}
	p.logger.Info(ctx, "%s duration: %.3fs", label, seconds)
}
