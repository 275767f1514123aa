package processor

import "context"

// Processor applies the configured job to audio files
type Processor interface {
	Process(ctx context.Context, path string) error
	ProcessDir(ctx context.Context, dir string) error
}
