package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/aethersight/internal/pkg/logger"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// serveCommand returns a CLI command that serves the HTTP API.
//
// Usage example:
//
//	aethersight serve
//
// The server runs until it receives an interrupt (SIGINT or SIGTERM), then
// drains in-flight requests before exiting.
func serveCommand(addr string, handler http.Handler) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Serves the block and range edge endpoints over HTTP.",
		Usage:       "Runs the HTTP API. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Address to listen on",
				Value: addr,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, c.String("addr"), handler)
		},
	}
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(ctx, "http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		logger.Info(ctx, "http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
