// Package httpserver runs an http.Handler with configured timeouts and shuts
// it down gracefully when the context passed to Run is cancelled.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Ready is closed and Addr becomes available once the listener is bound,
// which lets tests use ":0" addresses.
//
// HealthHandler serves a JSON liveness or readiness probe built from named
// Check functions.
//
// Errors wrap ErrStart, ErrShutdown or ErrAlreadyRunning.
package httpserver
