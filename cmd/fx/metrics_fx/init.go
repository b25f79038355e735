package metrics_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"factcheck/internal/infra"
)

var Module = fx.Provide(provideRegistry, provideMetrics)

func provideRegistry() (*prometheus.Registry, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, reg
}

func provideMetrics(reg *prometheus.Registry) *infra.Metrics {
	return infra.NewMetrics(reg)
}
