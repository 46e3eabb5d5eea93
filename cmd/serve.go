package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/metrics"
	"github.com/abhisek/wellcheck/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, reg, err := setup(cmd)
		if err != nil {
			return err
		}
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			cfg.Addr = a
		}

		logger, closeLog, err := cliLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		metricsHandler, scoring := setupScoringMetrics()
		handler := server.NewRouter(server.Config{
			Registry:       reg,
			Logger:         logger,
			Metrics:        scoring,
			MetricsHandler: metricsHandler,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("starting wellcheck api", "catalogs", reg.Len(), "version", version)
		if err := server.Run(ctx, cfg.Addr, handler, logger); err != nil {
			logger.Error("server stopped with error", "error", err)
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides WELLCHECK_ADDR)")
}

// setupScoringMetrics builds a private registry with runtime collectors and
// the scoring metrics, and the handler that exposes it.
func setupScoringMetrics() (http.Handler, *metrics.ScoringMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	scoring := metrics.NewScoringMetrics(reg)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), scoring
}
