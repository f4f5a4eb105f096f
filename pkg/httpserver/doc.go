// Package httpserver wraps net/http with configurable timeouts, structured
// lifecycle logging and context-driven graceful shutdown.
//
// Run (or Serve, for an existing listener) blocks until the context is
// cancelled, then shuts the server down within the configured deadline:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Signal handling is left to the caller so that the server can run alongside
// other goroutines under one errgroup.
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
