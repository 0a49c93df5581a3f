// Package metrics exports custom element lifecycle telemetry to Prometheus.
//
// A Collector implements element.Observer. Pass it in element.Options and
// the following series are maintained:
//
//   - wcbridge_element_transitions_total{tag,to}: lifecycle transitions
//   - wcbridge_elements_connected{tag}: instances currently connected
//   - wcbridge_element_renders_total{tag}: renders handed to a root
//   - wcbridge_element_render_duration_seconds{tag}: time spent rendering
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/wcbridge/pkg/element"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "wcbridge").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) { c.Subsystem = subsystem }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) { c.ConstLabels = labels }
}

// WithBuckets sets the render duration buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = registry }
}

func defaultConfig() Config {
	return Config{
		Namespace: "wcbridge",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records element lifecycle metrics.
type Collector struct {
	transitions    *prometheus.CounterVec
	connected      *prometheus.GaugeVec
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

var _ element.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics. It panics if the
// metrics are already registered with the chosen registry.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "element_transitions_total",
			Help:        "Custom element lifecycle transitions by target state",
			ConstLabels: config.ConstLabels,
		}, []string{"tag", "to"}),

		connected: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "elements_connected",
			Help:        "Custom element instances currently connected",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "element_renders_total",
			Help:        "Renders handed to a render root",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "element_render_duration_seconds",
			Help:        "Time spent producing and committing a render",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"tag"}),
	}
}

// Transition implements element.Observer.
func (c *Collector) Transition(tag string, from, to element.State) {
	c.transitions.WithLabelValues(tag, to.String()).Inc()
	if from == element.StateConnected {
		c.connected.WithLabelValues(tag).Dec()
	}
	if to == element.StateConnected {
		c.connected.WithLabelValues(tag).Inc()
	}
}

// Rendered implements element.Observer.
func (c *Collector) Rendered(tag string, elapsed time.Duration) {
	c.renders.WithLabelValues(tag).Inc()
	c.renderDuration.WithLabelValues(tag).Observe(elapsed.Seconds())
}
