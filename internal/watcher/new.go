package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/wavshift/internal/logger"
)

// New creates a Watcher on inputDir. settleDelay is how long to wait after a
// file appears before handing it to handler.
func New(inputDir string, handler EventHandler, log logger.Logger, settleDelay time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir:    inputDir,
		handler:     handler,
		logger:      log,
		watcher:     watcher,
		settleDelay: settleDelay,
	}, nil
}
