// Package handler implements the single-consumer event handler (C6):
// it dequeues events from the ring buffer, encodes and POSTs them to the
// collector, parses any inbound command body, and dispatches commands
// against the throttle registry (§4.6).
//
// Uses a cancelable-context plus done-channel start/stop shape with
// drain-on-shutdown discipline, but with a ticker-driven batch loop
// replaced by one goroutine blocking on RingBuffer.Read — govel posts
// each event as it is dequeued rather than on a flush interval,
// matching §4.6's one-event-per-POST model. Batches never pass through
// the handler.
package handler

import (
	"context"
	"sync"
	"time"

	"github.com/bc-dunia/govel/internal/commandparser"
	"github.com/bc-dunia/govel/internal/eventmodel"
	"github.com/bc-dunia/govel/internal/logging"
	"github.com/bc-dunia/govel/internal/obs"
	"github.com/bc-dunia/govel/internal/ringbuffer"
	"github.com/bc-dunia/govel/internal/throttle"
	"github.com/bc-dunia/govel/internal/transport"
	"github.com/bc-dunia/govel/internal/velencode"
)

// State is the handler's lifecycle (§4.6 glossary "Lifecycle state").
type State int

const (
	StateUninitialized State = iota
	StateInactive
	StateActive
	StateRequestTerminate
	StateTerminating
	StateTerminated
)

// Paths names the collector endpoints an event, batch, or throttle-state
// reply is POSTed to (§4.8 builds Event/Throttle from the same base URL;
// Batch is used only by the facade's direct, non-queued batch post).
type Paths struct {
	Event    string
	Batch    string
	Throttle string
}

// Handler is the single consumer draining the ring buffer, encoding and
// posting events, and applying inbound throttle commands.
type Handler struct {
	queue      *ringbuffer.RingBuffer[eventmodel.Event]
	transport  transport.Transport
	registry   *throttle.Registry
	paths      Paths
	logger     logging.Logger
	metrics    *obs.Metrics
	tracer     *obs.Tracer

	mu    sync.Mutex
	state State

	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a Handler. metrics/tracer may be obs.NoopMetrics()/
// obs.NoopTracer() when observability is disabled.
func New(
	queue *ringbuffer.RingBuffer[eventmodel.Event],
	tr transport.Transport,
	registry *throttle.Registry,
	paths Paths,
	logger logging.Logger,
	metrics *obs.Metrics,
	tracer *obs.Tracer,
) *Handler {
	if logger == nil {
		logger = logging.Noop()
	}
	if metrics == nil {
		metrics = obs.NoopMetrics()
	}
	if tracer == nil {
		tracer = obs.NoopTracer()
	}
	return &Handler{
		queue:     queue,
		transport: tr,
		registry:  registry,
		paths:     paths,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		state:     StateInactive,
		done:      make(chan struct{}),
	}
}

// Start launches the consumer goroutine. Calling Start more than once
// is a no-op.
func (h *Handler) Start(ctx context.Context) {
	h.mu.Lock()
	if h.state != StateInactive {
		h.mu.Unlock()
		return
	}
	h.state = StateActive
	runCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.mu.Unlock()

	go h.run(runCtx)
}

// RequestTerminate signals the consumer to drain remaining events and
// stop, then blocks until it has (or until ctx expires). It enqueues the
// internal-terminate sentinel (§4.6) so the consumer observes an
// explicit terminate event at the head of the queue when there's room
// for one, then closes the ring buffer so Read unblocks even if the
// sentinel could not be enqueued because the buffer was full.
func (h *Handler) RequestTerminate(ctx context.Context, sentinelCtx *eventmodel.Context) error {
	h.mu.Lock()
	if h.state == StateActive {
		h.state = StateRequestTerminate
	}
	h.mu.Unlock()

	if sentinelCtx != nil {
		h.queue.Write(eventmodel.NewInternalEvent(sentinelCtx, eventmodel.CommandTerminate))
	}
	h.queue.Close()

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the handler's current lifecycle state.
func (h *Handler) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *Handler) setState(s State) {
	h.mu.Lock()
	h.state = s
	h.mu.Unlock()
}

func (h *Handler) run(ctx context.Context) {
	defer close(h.done)
	defer h.setState(StateTerminated)

	for {
		ev, ok := h.queue.Read()
		if !ok {
			return
		}
		if ev.Command == eventmodel.CommandTerminate {
			h.setState(StateTerminating)
			h.drain()
			return
		}
		h.deliver(ctx, ev)
	}
}

// drain flushes any events still buffered after a terminate sentinel,
// without blocking for more (§4.6 "request_terminate ... drains the
// ring buffer of any events already enqueued").
func (h *Handler) drain() {
	for {
		ev, ok := h.queue.Read()
		if !ok {
			return
		}
		if ev.Command == eventmodel.CommandTerminate {
			continue
		}
		h.deliver(context.Background(), ev)
	}
}

func (h *Handler) deliver(ctx context.Context, ev *eventmodel.Event) {
	domain := string(ev.Header.Domain)

	ctx, span := h.tracer.StartPostSpan(ctx, obs.PostSpanOptions{
		Domain:   domain,
		EventID:  ev.Header.EventID,
		Sequence: ev.Header.Sequence,
	})
	defer span.End()

	body, err := velencode.Encode(ev, h.registry)
	if err != nil {
		h.logger.Error("handler: encode failed, dropping event", "domain", domain, "error", err)
		obs.RecordError(span, err, false)
		h.metrics.RecordFailed(ctx, domain)
		return
	}

	start := time.Now()
	resp, err := h.transport.Post(ctx, h.paths.Event, body)
	latencyMs := float64(time.Since(start)) / float64(time.Millisecond)

	if err != nil {
		h.logger.Warn("handler: transport error, event dropped", "domain", domain, "error", err)
		obs.RecordError(span, err, !transport.ErrPermanent(err))
		h.metrics.RecordPostLatency(ctx, domain, latencyMs, false)
		h.metrics.RecordFailed(ctx, domain)
		return
	}

	h.metrics.RecordPostLatency(ctx, domain, latencyMs, true)
	h.metrics.RecordPosted(ctx, domain)

	if len(resp) == 0 {
		return
	}
	if reply := commandparser.HandleCommandList(resp, h.registry); reply != nil {
		if _, err := h.transport.Post(ctx, h.paths.Throttle, reply); err != nil {
			h.logger.Warn("handler: failed to post throttling state reply", "error", err)
		}
	}
}
