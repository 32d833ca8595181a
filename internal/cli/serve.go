package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldo/make-expr-answer/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	workers int    // solver parallelism
	noCache bool   // bypass the count cache
}

// serveCommand creates the serve command: run the JSON HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr: ":8484",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve runs a JSON HTTP API around the solver:

  GET  /healthz  liveness probe
  POST /solve    find all expressions for one target
  POST /count    count solutions across a target range

The server shuts down cleanly on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := c.newRunner(opts.workers, opts.noCache)
			srv := server.New(runner, c.solver(opts.workers), c.Logger)

			httpSrv := &http.Server{
				Addr:              opts.addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", opts.addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			c.Logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "worker goroutines per request (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the solution-count cache")

	return cmd
}
