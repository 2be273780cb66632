package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"advocates/internal/config"
	"advocates/internal/httpserver"
	"advocates/internal/logging"
	"advocates/internal/observability"
	"advocates/internal/source"
	"advocates/internal/view"
)

func main() {
	cfg := config.LoadWeb()
	logging.Init("web", cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	observability.Register(prometheus.DefaultRegisterer)

	dir := view.NewDirectory()
	src := &source.Client{BaseURL: cfg.APIBaseURL, HTTP: &http.Client{}}

	// the single startup read; the page serves "loading" until it lands
	go func() {
		start := time.Now()
		if err := dir.Load(ctx, src); err != nil {
			observability.DirectoryLoads.WithLabelValues("error").Inc()
			slog.Error("advocate directory load failed", "err", err, "api_base_url", cfg.APIBaseURL)
			return
		}
		observability.DirectoryLoads.WithLabelValues("ok").Inc()
		observability.DirectoryRecords.Set(float64(dir.Len()))
		slog.Info("advocate directory ready", "records", dir.Len(), "duration", time.Since(start))
	}()

	s := httpserver.New(observability.HTTPRequests)
	(&httpserver.View{Dir: dir}).Register(s.Mux)
	s.RegisterHealth(func(context.Context) error {
		if st := dir.Status(); st != view.StatusReady {
			return errors.New("directory " + st.String())
		}
		return nil
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: s.Mux, ReadHeaderTimeout: 5 * time.Second}
	metricsSrv := &http.Server{Addr: ":" + cfg.MetricsPort, Handler: promhttp.Handler()}

	errCh := make(chan error, 2)
	go func() {
		slog.Info("web listening", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()
	go func() {
		slog.Info("web metrics listening", "port", cfg.MetricsPort)
		errCh <- metricsSrv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("web server failed", "err", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		slog.Info("web shutdown", "signal", sig.String())
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	_ = metricsSrv.Shutdown(shutdownCtx)
}
