package watcher

import "context"

// Watcher reports WAV files created in a directory
type Watcher interface {
	// Start blocks until ctx is done, calling the handler for each new file
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler receives the path of each new WAV file. A returned error is
// logged and does not stop the watcher.
type EventHandler func(ctx context.Context, filePath string) error
