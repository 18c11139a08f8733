package shortcontext

import (
	"context"
	"os/signal"
	"syscall"
)

// New returns a root context cancelled on SIGINT or SIGTERM, so the HTTP
// server shuts down gracefully on both.
func New() (context.Context, func()) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx, stop
}
