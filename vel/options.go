package vel

import (
	"net/http"
	"time"

	"github.com/bc-dunia/govel/internal/config"
)

// clientConfig collects every Option's effect before Initialize wires
// the ring buffer, throttle registry, transport, and handler together.
type clientConfig struct {
	ringBufferCapacity int
	logger             Logger
	httpClient         *http.Client
	credentials        Credentials
	retryMaxAttempts   uint64
	retryInitial       time.Duration
	retryMax           time.Duration

	metrics *MetricsConfig
	tracing *TracingConfig

	sysStatsEnabled  bool
	sysStatsInterval time.Duration
	sysStatsPaths    []string
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		ringBufferCapacity: config.DefaultRingBufferCapacity,
		logger:             NoopLogger(),
		retryMaxAttempts:   uint64(config.DefaultMaxRetries),
		retryInitial:       config.DefaultRetryBackoff,
		retryMax:           config.DefaultMaxRetryBackoff,
	}
}

// Option configures a Client at Initialize time.
type Option func(*clientConfig)

// WithRingBufferCapacity overrides the default ring buffer size (§4.5:
// "Capacity is a configuration input (default small, e.g. 100)").
func WithRingBufferCapacity(n int) Option {
	return func(c *clientConfig) { c.ringBufferCapacity = n }
}

// WithLogger supplies the leveled logger the handler and producers log
// through (§1 "Logging subsystem: consumed as an opaque leveled
// logger").
func WithLogger(l Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}

// WithHTTPClient overrides the default *http.Client used by the
// transport adapter, e.g. to set TLS config or a custom round tripper.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithCredentials enables HTTP basic auth on every POST (§6.1).
func WithCredentials(creds Credentials) Option {
	return func(c *clientConfig) { c.credentials = creds }
}

// WithRetryPolicy overrides the transport's retry count and backoff
// bounds for a single POST (§5, §7 "Transport error").
func WithRetryPolicy(maxAttempts uint64, initialBackoff, maxBackoff time.Duration) Option {
	return func(c *clientConfig) {
		c.retryMaxAttempts = maxAttempts
		c.retryInitial = initialBackoff
		c.retryMax = maxBackoff
	}
}

// WithObservability enables the optional OpenTelemetry metrics/tracing
// layer (A1). Either config may be left at its zero value to leave that
// half disabled.
func WithObservability(metrics MetricsConfig, tracing TracingConfig) Option {
	return func(c *clientConfig) {
		c.metrics = &metrics
		c.tracing = &tracing
	}
}

// WithSystemStatsSampler enables the gopsutil-backed CPU/memory/
// filesystem sampler (A2): every Measurement event posted through
// PostEvent is sampled inside PostEvent, before it is queued. Aggregate
// CPU usage and memory are set only if the caller left them unset; one
// filesystem-usage entry per sampled path is appended after any entries
// the caller added. The per-CPU usage array is not filled. interval is currently
// informational — sampling happens per-event, not on a ticker, since
// Measurement events are posted by the caller rather than generated
// internally (§4.10). filesystemPaths defaults to ["/"] when omitted.
func WithSystemStatsSampler(interval time.Duration, filesystemPaths ...string) Option {
	return func(c *clientConfig) {
		c.sysStatsEnabled = true
		c.sysStatsInterval = interval
		c.sysStatsPaths = filesystemPaths
	}
}
