package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Registers the CloudEvent function with the functions framework.
	_ "github.com/cernym46/testys-firebase"

	"github.com/cernym46/testys-firebase/internal/config"
	"github.com/cernym46/testys-firebase/internal/health"
	"github.com/cernym46/testys-firebase/internal/logging"
	"github.com/cernym46/testys-firebase/internal/metrics"
	"github.com/cernym46/testys-firebase/internal/tracing"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	ctx := context.Background()

	logger := logging.New(cfg.AppName + "-notifier")

	shutdown, err := tracing.InitTracing(ctx, cfg.AppName+"-notifier")
	if err != nil {
		logger.Plain().WithError(err).Fatal("Failed to initialize tracing")
	}
	defer shutdown()

	if err := cfg.ValidateTarget(); err != nil {
		logger.Plain().WithError(err).Warn("webhook target not configured; deliveries will fail")
	}

	reg := prometheus.NewRegistry()
	metrics.MustRegister(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", health.HTTPHandler(cfg))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	httpSrv := &http.Server{Addr: cfg.Notifier.HTTPPort, Handler: mux}
	go func() {
		logger.Plain().WithField("addr", httpSrv.Addr).Info("notifier HTTP server starting")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Plain().WithError(err).Fatal("notifier HTTP server failed")
		}
	}()

	go func() {
		logger.Plain().WithField("port", cfg.Notifier.FuncPort).Info("functions framework starting")
		if err := funcframework.Start(cfg.Notifier.FuncPort); err != nil {
			logger.Plain().WithError(err).Fatal("funcframework start failed")
		}
	}()

	logger.Plain().Info("notifier service started")

	// Graceful stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	logger.Plain().Info("Shutting down notifier service")
	_ = httpSrv.Shutdown(context.Background())
	logger.Plain().Info("notifier service stopped")
}
