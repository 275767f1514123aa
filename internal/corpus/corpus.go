package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/nguyentantai21042004/wavshift/internal/fsutil"
	"github.com/nguyentantai21042004/wavshift/internal/logger"
)

// Corpus maps a label (file name without extension) to its decoded clip.
type Corpus map[string]*Clip

// FindWAVs returns the names of the WAV files directly inside dir
func FindWAVs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", fsutil.ErrFileSystem, dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsWAV(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}

	sort.Strings(names)
	return names, nil
}

// Load decodes every WAV file in dir. The result is built fresh on each call.
func Load(dir string) (Corpus, error) {
	names, err := FindWAVs(dir)
	if err != nil {
		return nil, err
	}

	c := make(Corpus, len(names))
	for _, name := range names {
		clip, err := LoadClip(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		c[clip.Label] = clip
	}
	return c, nil
}

// Labels returns the corpus labels in sorted order.
func (c Corpus) Labels() []string {
	labels := make([]string, 0, len(c))
	for label := range c {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func Lengths(c Corpus) map[string]time.Duration {
	out := make(map[string]time.Duration, len(c))
	for label, clip := range c {
		out[label] = clip.Duration()
	}
	return out
}

// LogLengths logs one line per clip with its duration
func LogLengths(ctx context.Context, log logger.Logger, c Corpus) {
	for _, label := range c.Labels() {
		log.Info(ctx, "%s %s", label, c[label].Duration())
	}
}
