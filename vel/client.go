package vel

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bc-dunia/govel/internal/config"
	"github.com/bc-dunia/govel/internal/eventmodel"
	"github.com/bc-dunia/govel/internal/handler"
	"github.com/bc-dunia/govel/internal/obs"
	"github.com/bc-dunia/govel/internal/ringbuffer"
	"github.com/bc-dunia/govel/internal/sysstats"
	"github.com/bc-dunia/govel/internal/throttle"
	"github.com/bc-dunia/govel/internal/transport"
	"github.com/bc-dunia/govel/internal/velencode"
)

// Client is a running VEL library instance: one Context, one ring
// buffer, one throttle registry, and the single consumer goroutine that
// drains it (§4.8 "Library lifecycle"). A process may run more than one
// Client to speak as more than one VNF identity concurrently — the
// source library's global state is modeled here as fields on Client
// instead (§9 "Shared mutable state... model them as an explicit
// context object passed to factories rather than globals").
type Client struct {
	ctx       *eventmodel.Context
	queue     *ringbuffer.RingBuffer[eventmodel.Event]
	registry  *throttle.Registry
	transport transport.Transport
	handler   *handler.Handler
	logger    Logger
	metrics   *obs.Metrics
	tracer    *obs.Tracer
	sampler   *sysstats.Sampler

	paths handler.Paths

	mu           sync.Mutex
	terminating  bool
	terminated   bool
}

// Initialize builds the event and throttle-state URLs from the given
// collector address (§4.8), starts the consumer goroutine, and returns
// a ready Client. secure selects https over http. path and topic are
// optional URL segments; pass "" to omit either.
func Initialize(
	fqdn string,
	port int,
	secure bool,
	path, topic string,
	functionalRole string,
	sourceType SourceType,
	reportingEntityName, reportingEntityID, sourceName, sourceID string,
	opts ...Option,
) (*Client, error) {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	eventPath, throttlePath := buildPaths(path, topic)
	baseURL := buildBaseURL(fqdn, port, secure)

	transportOpts := []transport.Option{
		transport.WithCredentials(cfg.credentials),
		transport.WithLogger(cfg.logger),
		transport.WithRetryPolicy(cfg.retryMaxAttempts, cfg.retryInitial, cfg.retryMax),
	}
	if cfg.httpClient != nil {
		transportOpts = append(transportOpts, transport.WithHTTPClient(cfg.httpClient))
	}
	tr := transport.NewHTTPTransport(baseURL, transportOpts...)

	return newClient(tr, handler.Paths{Event: eventPath, Batch: eventPath, Throttle: throttlePath},
		functionalRole, sourceType, reportingEntityName, reportingEntityID, sourceName, sourceID, cfg)
}

// newClient wires an already-constructed transport.Transport (the real
// HTTPTransport from Initialize, or a transport.Fake in tests) into a
// running Client. Kept separate from Initialize so tests can inject a
// Fake without a real listener (§8 end-to-end scenarios).
func newClient(
	tr transport.Transport,
	paths handler.Paths,
	functionalRole string,
	sourceType SourceType,
	reportingEntityName, reportingEntityID, sourceName, sourceID string,
	cfg *clientConfig,
) (*Client, error) {
	ectx := eventmodel.NewContext(functionalRole, sourceType, reportingEntityName, reportingEntityID, sourceName, sourceID)
	registry := throttle.NewRegistry()
	queue := ringbuffer.New[eventmodel.Event](cfg.ringBufferCapacity)

	ctx := context.Background()
	metrics := obs.NoopMetrics()
	tracer := obs.NoopTracer()
	if cfg.metrics != nil {
		m, err := obs.NewMetrics(ctx, cfg.metrics, func() int64 { return int64(queue.Len()) })
		if err != nil {
			return nil, fmt.Errorf("vel: initialize metrics: %w", err)
		}
		metrics = m
	}
	if cfg.tracing != nil {
		t, err := obs.NewTracer(ctx, cfg.tracing)
		if err != nil {
			return nil, fmt.Errorf("vel: initialize tracer: %w", err)
		}
		tracer = t
	}

	var sampler *sysstats.Sampler
	if cfg.sysStatsEnabled {
		sampler = sysstats.NewSampler(cfg.logger, cfg.sysStatsPaths...)
	}

	h := handler.New(queue, tr, registry, paths, cfg.logger, metrics, tracer)
	h.Start(context.Background())

	return &Client{
		ctx:       ectx,
		queue:     queue,
		registry:  registry,
		transport: tr,
		handler:   h,
		logger:    cfg.logger,
		metrics:   metrics,
		tracer:    tracer,
		sampler:   sampler,
		paths:     paths,
	}, nil
}

func buildBaseURL(fqdn string, port int, secure bool) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	return scheme + "://" + fqdn + ":" + strconv.Itoa(port)
}

// buildPaths returns the event and throttle-state paths per §4.8: the
// event path is "[/path]/eventListener/v{major}[.{minor}][/topic]" and
// the throttle-state path is that event path followed by
// "/clientThrottlingState".
func buildPaths(path, topic string) (eventPath, throttlePath string) {
	var b strings.Builder
	if path != "" {
		b.WriteByte('/')
		b.WriteString(strings.Trim(path, "/"))
	}
	b.WriteString("/eventListener/v")
	b.WriteString(strconv.Itoa(config.DefaultSchemaMajorVersion))
	if config.DefaultSchemaMinorVersion != 0 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(config.DefaultSchemaMinorVersion))
	}
	if topic != "" {
		b.WriteByte('/')
		b.WriteString(strings.Trim(topic, "/"))
	}
	eventPath = b.String()
	return eventPath, eventPath + "/clientThrottlingState"
}

// Context returns the Client's event factory context, passed to every
// New<Domain> factory call (§4.2, §9).
func (c *Client) Context() *Context { return c.ctx }

// PostEvent enqueues ev for the consumer to encode and POST (§4.6
// "post_event(event)"). On success the Client owns ev and the caller
// must not touch it again. On ErrQueueFull or ErrTerminating the caller
// retains ownership (§3.3 "Ownership", §5).
func (c *Client) PostEvent(ev *Event) error {
	c.mu.Lock()
	terminating := c.terminating
	c.mu.Unlock()
	if terminating {
		return ErrTerminating
	}

	if m, ok := ev.Payload.(*Measurement); ok && c.sampler != nil {
		c.sampler.Populate(context.Background(), m)
	}

	if !c.queue.Write(ev) {
		return ErrQueueFull
	}
	return nil
}

// PostBatch encodes and POSTs batch directly against the transport,
// bypassing the ring buffer/handler: a Batch is a transport-time
// wrapper around already-constructed events (§3.3), not itself an
// Event, so it cannot be queued through RingBuffer[Event]. PostBatch is
// therefore synchronous and blocks for the duration of one POST, unlike
// the fire-and-forget PostEvent.
func (c *Client) PostBatch(ctx context.Context, batch *Batch) error {
	body, err := velencode.EncodeBatch(batch, c.registry)
	if err != nil {
		return fmt.Errorf("vel: encode batch: %w", err)
	}
	_, err = c.transport.Post(ctx, c.paths.Batch, body)
	return err
}

// Terminated reports whether Terminate has completed.
func (c *Client) Terminated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terminated
}

// GetMeasurementInterval returns the collector-directed measurement
// interval in seconds, and false if the collector has never sent a
// measurementIntervalChange command (§6.3, §8 scenario S4).
func (c *Client) GetMeasurementInterval() (seconds int64, ok bool) {
	return c.registry.MeasurementInterval()
}

// Terminate posts the internal-terminate sentinel, waits for the
// consumer to drain the ring buffer and exit, then tears down
// observability (§4.6 "terminate() constructs and posts an
// internal-terminate event; it then joins the consumer thread with a
// bounded wait").
func (c *Client) Terminate(ctx context.Context) error {
	c.mu.Lock()
	if c.terminating {
		c.mu.Unlock()
		return ErrAlreadyTerminating
	}
	c.terminating = true
	c.mu.Unlock()

	joinCtx, cancel := context.WithTimeout(ctx, config.DefaultHandlerJoinTimeout)
	err := c.handler.RequestTerminate(joinCtx, c.ctx)
	cancel()

	c.mu.Lock()
	c.terminated = true
	c.mu.Unlock()

	if shutdownErr := c.metrics.Shutdown(ctx); shutdownErr != nil {
		c.logger.Warn("vel: metrics shutdown failed", "error", shutdownErr)
	}
	if shutdownErr := c.tracer.Shutdown(ctx); shutdownErr != nil {
		c.logger.Warn("vel: tracer shutdown failed", "error", shutdownErr)
	}
	return err
}
