package media

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/wavshift/internal/config"
)

// probeArgs returns the arguments printing only the duration in seconds.
func probeArgs(tool, path string) []string {
	if tool == config.ProbeFFprobe {
		return []string{
			"-v", "error",
			"-show_entries", "format=duration",
			"-of", "default=noprint_wrappers=1:nokey=1",
			path,
		}
	}
	return []string{"-D", path}
}

// Duration asks the configured probe (soxi -D by default) for the length of path
func (r *implRunner) Duration(ctx context.Context, path string) (float64, error) {
	if path == "" {
		return 0, fmt.Errorf("probe duration: %w: path is empty", ErrInvalidArgument)
	}

	out, err := r.executor.Execute(ctx, r.probe.BinaryPath, probeArgs(r.probe.Tool, path)...)
	if err != nil {
		return 0, fmt.Errorf("probe duration %s: %w", path, err)
	}

	seconds, err := ParseDuration(out)
	if err != nil {
		return 0, fmt.Errorf("probe duration %s: %w", path, err)
	}

	r.logger.Debug(ctx, "Duration of %s: %.3fs", path, seconds)
	return seconds, nil
}

// ParseDuration parses probe output such as "3.250000\n".
func ParseDuration(out string) (float64, error) {
	trimmed := strings.TrimSpace(out)
	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrProbeParse, trimmed)
	}
	return seconds, nil
}
