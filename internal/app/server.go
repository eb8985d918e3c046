package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/transport/middleware"
	"github.com/heartmarshall/wordlookup/internal/transport/rest"
)

// Handler builds the HTTP handler behind middleware.Stack. The
// returned stop function releases the rate limiter.
func (a *App) Handler() (http.Handler, func()) {
	rl := middleware.NewRateLimiter(a.Config.RateLimit.CleanupInterval)

	sessionHandler := rest.NewSessionHandler(a.Session, a.Theme, a.Log)
	healthHandler := rest.NewHealthHandler(a.Store, a.Config.Storage.Driver, BuildVersion())
	mux := rest.NewRouter(sessionHandler, healthHandler, rl.Limit(a.Config.RateLimit.SearchPerMinute))

	handler := middleware.Stack(a.Log, a.Config.CORS)(mux)

	return handler, rl.Stop
}

// Serve runs the HTTP surface on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	handler, stop := a.Handler()
	defer stop()

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: a.Config.Server.ReadTimeout,
		ReadTimeout:       a.Config.Server.ReadTimeout,
		WriteTimeout:      a.Config.Server.WriteTimeout,
		IdleTimeout:       a.Config.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.Config.Server.ShutdownTimeout)
		defer cancel()
		a.Log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.watchStates(gctx)
		return nil
	})

	return g.Wait()
}

// ListenAndServe listens on the configured address and calls Serve.
func (a *App) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.Config.Server.Addr())
	if err != nil {
		return fmt.Errorf("app: listen %s: %w", a.Config.Server.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

func (a *App) watchStates(ctx context.Context) {
	states, unsubscribe := a.Session.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-states:
			if !ok {
				return
			}
			a.Log.DebugContext(ctx, "search state changed", slog.String("status", domain.StateName(st)))
		}
	}
}
