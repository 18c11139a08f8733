package http_server

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

// New returns an http.Server that shuts down gracefully when ctx is
// cancelled.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      handler,
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
		IdleTimeout:  time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return srv
}
