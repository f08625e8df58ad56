package metrics

import (
	"bytes"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

const namespace = "purposebot"

// ContentType is the text exposition format produced by Render.
const ContentType = "text/plain; version=0.0.4; charset=utf-8"

// Registry holds the bot's metrics on a private Prometheus registry.
type Registry struct {
	registry          *prometheus.Registry
	interactions      prometheus.Counter
	providerErrors    prometheus.Counter
	commandErrors     *prometheus.CounterVec
	generalExceptions prometheus.Counter
	latency           prometheus.Summary
	uptime            prometheus.Gauge
}

// NewRegistry creates the metric set. Commands listed in tracked get their
// command error series exported from zero.
func NewRegistry(tracked ...string) *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		interactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interactions_total",
			Help:      "Total number of commands answered successfully",
		}),

		providerErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "openai_errors_total",
			Help:      "Total number of completion requests rejected by the provider",
		}),

		commandErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_errors_total",
			Help:      "Provider errors per command with dedicated error tracking",
		}, []string{"command"}),

		generalExceptions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "general_exceptions_total",
			Help:      "Total number of unexpected failures while handling commands",
		}),

		latency: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace:  namespace,
			Name:       "response_latency_seconds",
			Help:       "Wall-clock time spent handling a command",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),

		uptime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_minutes",
			Help:      "Minutes elapsed since the process started",
		}),
	}

	for _, command := range tracked {
		r.commandErrors.WithLabelValues(command)
	}

	r.registry.MustRegister(
		r.interactions,
		r.providerErrors,
		r.commandErrors,
		r.generalExceptions,
		r.latency,
		r.uptime,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// IncInteractions counts a successfully answered command.
func (r *Registry) IncInteractions() {
	r.interactions.Inc()
}

// IncProviderErrors counts a provider-classified completion failure.
func (r *Registry) IncProviderErrors() {
	r.providerErrors.Inc()
}

// IncCommandErrors counts a provider failure against a specific command.
func (r *Registry) IncCommandErrors(command string) {
	r.commandErrors.WithLabelValues(command).Inc()
}

// IncGeneralExceptions counts an unexpected handler or dispatch failure.
func (r *Registry) IncGeneralExceptions() {
	r.generalExceptions.Inc()
}

// ObserveLatency records the duration of one command invocation.
func (r *Registry) ObserveLatency(d time.Duration) {
	r.latency.Observe(d.Seconds())
}

// SetUptime sets the uptime gauge in minutes.
func (r *Registry) SetUptime(minutes float64) {
	r.uptime.Set(minutes)
}

// Render gathers all metrics and encodes them in the text exposition format.
func (r *Registry) Render() ([]byte, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	for _, family := range families {
		if _, encodeErr := expfmt.MetricFamilyToText(&buf, family); encodeErr != nil {
			return nil, fmt.Errorf("failed to encode metric %s: %w", family.GetName(), encodeErr)
		}
	}

	return buf.Bytes(), nil
}
