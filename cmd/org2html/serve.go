package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	org2html "github.com/alnah/go-org2html"
	"github.com/alnah/go-org2html/internal/server"
)

// DefaultAddr is the serve listen address when none is configured.
const DefaultAddr = ":8080"

// HTTP server timeouts.
const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 120 * time.Second // PDF rendering is slow
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// runServe starts the HTTP API and blocks until ctx is cancelled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg, err := loadEffectiveConfig(flags.common.config, envCfg)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	mergeHTMLFlags(&flags.html, flags.set, cfg)
	mergeStyleFlags(&flags.style, flags.set, cfg)
	if flags.set["addr"] {
		cfg.Server.Addr = flags.addr
	}
	if flags.set["timeout"] {
		cfg.PDF.Timeout = flags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts, err := converterOptions(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := checkOptions(opts); err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	pool := env.NewPool(org2html.ResolvePoolSize(workers), opts...)
	defer pool.Close()

	level := slog.LevelInfo
	if flags.common.verbose {
		level = slog.LevelDebug
	} else if flags.common.quiet {
		level = slog.LevelWarn
	}
	log := slog.New(slog.NewJSONHandler(env.Stderr, &slog.HandlerOptions{Level: level}))

	handler := server.New(pool, log, server.Options{
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		DumpOptions:  dumpOptions(cfg),
	})

	addr := cfg.Server.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	log.Info("starting org2html server", "addr", ln.Addr().String(), "workers", pool.Size())
	return serve(ctx, ln, handler, log)
}

// serve runs an HTTP server on ln until ctx is done, then shuts it down
// gracefully.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, log *slog.Logger) error {
	httpServer := &http.Server{
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
