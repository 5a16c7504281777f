package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command described by args and returns when it
	// completes.
	Run(ctx context.Context, args []string) error
}
