package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/transitrank/pkg/api"
	"github.com/matzehuels/transitrank/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	collapse bool
	refresh  bool
}

// newServeCmd creates the serve command. The server is read-only: every
// request is answered through the cached pipeline.
func newServeCmd(configPath *string) *cobra.Command {
	src := &sourceOpts{}
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the read-only HTTP API",
		Long: `Serve rank vectors, shortest paths and the network document over
HTTP. Endpoints:

  GET /healthz
  GET /network
  GET /rank
  GET /path?from=<stop>&to=<stop>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, src, &opts, *configPath)
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.collapse, "collapse", false, "merge transfer clusters before answering queries")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")

	return cmd
}

func runServe(cmd *cobra.Command, src *sourceOpts, opts *serveOpts, configPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := src.validate(); err != nil {
		return err
	}

	runner, err := newRunner(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		NetworkPath: src.networkPath,
		FeedDir:     src.feedDir,
		Collapse:    opts.collapse,
		Damping:     cfg.Rank.Damping,
		Iterations:  cfg.Rank.Iterations,
		Refresh:     opts.refresh,
	}

	// Warm the cache so the first request doesn't pay for the full
	// computation.
	prog := newProgress(logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("Analyzed network")
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RankHit)

	server := &http.Server{
		Addr:              opts.addr,
		Handler:           api.NewServer(runner, popts, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", opts.addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
