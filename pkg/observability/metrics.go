package observability

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	// ServiceName becomes the Prometheus namespace prefix on every metric,
	// normalised to a valid identifier ("finance-engine" -> "finance_engine").
	ServiceName string
}

// InitMetrics wires the otel metric pipeline into a Prometheus exporter.
// Returns the MeterProvider for instrumenting code and an HTTP handler for
// the /metrics endpoint.
func InitMetrics(cfg MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	var opts []promexporter.Option
	if ns := metricNamespace(cfg.ServiceName); ns != "" {
		opts = append(opts, promexporter.WithNamespace(ns))
	}

	exporter, err := promexporter.New(opts...)
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}

// metricNamespace maps a service name onto the Prometheus identifier
// alphabet.
func metricNamespace(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
