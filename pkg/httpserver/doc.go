// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run listens on Config.Addr and serves until the context is
// cancelled, SIGINT or SIGTERM arrives, or the listener fails. Shutdown
// waits up to Config.ShutdownTimeout for in-flight requests. Failures are
// joined with the ErrStart and ErrShutdown sentinels for errors.Is checks.
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" or
// 503 "NOT_READY") checks.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
