// Package obs provides OpenTelemetry metrics and tracing for govel.
package obs

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// MetricsConfig holds configuration for the OpenTelemetry metrics.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active. Default: false (no-op).
	Enabled bool

	// ServiceName attributes metrics to the emitting VNF component.
	ServiceName string

	// ServiceVersion is the version of that component.
	ServiceVersion string

	// ExporterType specifies which exporter to use.
	ExporterType ExporterType

	// OTLPEndpoint is the endpoint for OTLP exporters (e.g., "localhost:4317").
	OTLPEndpoint string

	// OTLPInsecure disables TLS for OTLP connections.
	OTLPInsecure bool

	// Attributes are additional attributes to add to all metrics.
	Attributes map[string]string
}

// DefaultMetricsConfig returns a default configuration with metrics disabled.
func DefaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		Enabled:      false,
		ServiceName:  "govel",
		ExporterType: ExporterNone,
	}
}

// Metrics wraps OpenTelemetry metrics functionality with govel-specific
// instruments for the event encode/post pipeline (§5, §7).
type Metrics struct {
	config        *MetricsConfig
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	shutdown      func(context.Context) error
	mu            sync.RWMutex

	depthSource   func() int64
	depthGauge    metric.Int64ObservableGauge
	depthGaugeReg metric.Registration

	eventsPosted     metric.Int64Counter
	eventsFailed     metric.Int64Counter
	eventsSuppressed metric.Int64Counter
	postLatency      metric.Float64Histogram
	postRetries      metric.Int64Counter
}

var (
	globalMetrics   *Metrics
	globalMetricsMu sync.RWMutex
)

// NewMetrics creates a new Metrics instance, sourcing the ring-buffer
// depth gauge from depthSource (nil is treated as always-zero).
func NewMetrics(ctx context.Context, cfg *MetricsConfig, depthSource func() int64) (*Metrics, error) {
	if cfg == nil {
		cfg = DefaultMetricsConfig()
	}
	if depthSource == nil {
		depthSource = func() int64 { return 0 }
	}

	m := &Metrics{config: cfg, depthSource: depthSource}

	if !cfg.Enabled || cfg.ExporterType == ExporterNone {
		m.meterProvider = sdkmetric.NewMeterProvider()
		m.meter = m.meterProvider.Meter(cfg.ServiceName)
		m.shutdown = func(context.Context) error { return nil }
		return m, nil
	}

	exporter, err := m.createExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create metrics exporter: %w", err)
	}

	res, err := m.createResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("create metrics resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	m.meterProvider = mp
	m.meter = mp.Meter(cfg.ServiceName)
	m.shutdown = mp.Shutdown

	if err := m.registerInstruments(); err != nil {
		return nil, fmt.Errorf("register metric instruments: %w", err)
	}

	return m, nil
}

func (m *Metrics) createExporter(ctx context.Context, cfg *MetricsConfig) (sdkmetric.Exporter, error) {
	switch cfg.ExporterType {
	case ExporterStdout:
		return stdoutmetric.New()

	case ExporterOTLPGRPC:
		opts := []otlpmetricgrpc.Option{}
		if cfg.OTLPEndpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint))
		}
		if cfg.OTLPInsecure {
			opts = append(opts, otlpmetricgrpc.WithInsecure())
		}
		return otlpmetricgrpc.New(ctx, opts...)

	case ExporterOTLPHTTP:
		opts := []otlpmetrichttp.Option{}
		if cfg.OTLPEndpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(cfg.OTLPEndpoint))
		}
		if cfg.OTLPInsecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)

	default:
		return nil, fmt.Errorf("unknown exporter type: %s", cfg.ExporterType)
	}
}

func (m *Metrics) createResource(cfg *MetricsConfig) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(cfg.ServiceName)}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.ServiceVersion))
	}
	for k, v := range cfg.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	return resource.Merge(resource.Default(), resource.NewWithAttributes("", attrs...))
}

func (m *Metrics) registerInstruments() error {
	var err error

	m.eventsPosted, err = m.meter.Int64Counter(
		"govel.events.posted",
		metric.WithDescription("Events successfully delivered to the collector"),
	)
	if err != nil {
		return fmt.Errorf("events.posted counter: %w", err)
	}

	m.eventsFailed, err = m.meter.Int64Counter(
		"govel.events.failed",
		metric.WithDescription("Events dropped without delivery (encode or transport failure)"),
	)
	if err != nil {
		return fmt.Errorf("events.failed counter: %w", err)
	}

	m.eventsSuppressed, err = m.meter.Int64Counter(
		"govel.fields.suppressed",
		metric.WithDescription("Fields and name/value pairs omitted by throttling"),
	)
	if err != nil {
		return fmt.Errorf("fields.suppressed counter: %w", err)
	}

	m.postLatency, err = m.meter.Float64Histogram(
		"govel.post.latency",
		metric.WithDescription("Latency of a collector POST, including retries"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("post.latency histogram: %w", err)
	}

	m.postRetries, err = m.meter.Int64Counter(
		"govel.post.retries",
		metric.WithDescription("Retry attempts made against the collector"),
	)
	if err != nil {
		return fmt.Errorf("post.retries counter: %w", err)
	}

	m.depthGauge, err = m.meter.Int64ObservableGauge(
		"govel.ringbuffer.depth",
		metric.WithDescription("Events currently queued in the ring buffer"),
	)
	if err != nil {
		return fmt.Errorf("ringbuffer.depth gauge: %w", err)
	}
	m.depthGaugeReg, err = m.meter.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(m.depthGauge, m.depthSource())
			return nil
		},
		m.depthGauge,
	)
	if err != nil {
		return fmt.Errorf("register ringbuffer.depth callback: %w", err)
	}

	return nil
}

// RecordPosted records one event successfully delivered for domain.
func (m *Metrics) RecordPosted(ctx context.Context, domain string) {
	if m.eventsPosted == nil {
		return
	}
	m.eventsPosted.Add(ctx, 1, metric.WithAttributes(attribute.String("domain", domain)))
}

// RecordFailed records one event dropped without delivery: it failed to
// encode, or the transport returned an error (retries exhausted or a
// non-retryable response).
func (m *Metrics) RecordFailed(ctx context.Context, domain string) {
	if m.eventsFailed == nil {
		return
	}
	m.eventsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("domain", domain)))
}

// RecordSuppressed records count fields or name/value pairs omitted
// from domain's wire output by throttling.
func (m *Metrics) RecordSuppressed(ctx context.Context, domain string, count int64) {
	if m.eventsSuppressed == nil || count == 0 {
		return
	}
	m.eventsSuppressed.Add(ctx, count, metric.WithAttributes(attribute.String("domain", domain)))
}

// RecordPostLatency records the latency, in milliseconds, of a
// collector POST attempt sequence.
func (m *Metrics) RecordPostLatency(ctx context.Context, domain string, latencyMs float64, success bool) {
	if m.postLatency == nil {
		return
	}
	m.postLatency.Record(ctx, latencyMs, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.Bool("success", success),
	))
}

// RecordRetry increments the retry counter for a collector POST.
func (m *Metrics) RecordRetry(ctx context.Context, domain string) {
	if m.postRetries == nil {
		return
	}
	m.postRetries.Add(ctx, 1, metric.WithAttributes(attribute.String("domain", domain)))
}

// Shutdown flushes and releases metrics resources.
func (m *Metrics) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.depthGaugeReg != nil {
		if err := m.depthGaugeReg.Unregister(); err != nil {
			return fmt.Errorf("unregister ringbuffer.depth callback: %w", err)
		}
	}
	if m.shutdown != nil {
		return m.shutdown(ctx)
	}
	return nil
}

// Enabled reports whether metrics collection is active.
func (m *Metrics) Enabled() bool {
	return m.config.Enabled && m.config.ExporterType != ExporterNone
}

// SetGlobalMetrics installs m as the process-wide meter provider.
func SetGlobalMetrics(m *Metrics) {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	globalMetrics = m
	if m != nil && m.Enabled() {
		otel.SetMeterProvider(m.meterProvider)
	}
}

// NoopMetrics returns a Metrics that records nothing.
func NoopMetrics() *Metrics {
	cfg := DefaultMetricsConfig()
	mp := sdkmetric.NewMeterProvider()
	return &Metrics{
		config:        cfg,
		meterProvider: mp,
		meter:         mp.Meter(cfg.ServiceName),
		shutdown:      func(context.Context) error { return nil },
		depthSource:   func() int64 { return 0 },
	}
}
