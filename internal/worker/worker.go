package worker

import (
	"context"
)

// Worker is the interface all background workers implement
type Worker interface {
	// Start runs the worker loop
	Start(ctx context.Context) error

	// Stop signals the worker to stop
	Stop() error

	// Name returns the worker name
	Name() string
}
