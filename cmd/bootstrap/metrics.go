package bootstrap

import (
	"lab-reservation/internal/handler"
	"lab-reservation/internal/pkg/config"
	"lab-reservation/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

// NewMetrics returns a no-op recorder and no handler when metrics are disabled.
func NewMetrics(cfg config.Config) (metrics.AdmissionRecorder, handler.MetricsHandler) {
	if !cfg.Metrics.Enabled {
		return metrics.NopRecorder{}, nil
	}
	reg := metrics.NewRegistry()
	return reg, reg.Handler()
}
