package media

import "context"

// Runner drives the external media engine and duration probe.
type Runner interface {
	// Compress rewrites input to output with its duration scaled by amount.
	// amount=0.5 plays twice as fast.
	Compress(ctx context.Context, input, output string, amount float64) error
	// Reverse writes input to output played backwards. Video streams are copied.
	Reverse(ctx context.Context, input, output string) error
	// Duration probes the length of path in seconds.
	Duration(ctx context.Context, path string) (float64, error)
}
