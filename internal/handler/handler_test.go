package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bc-dunia/govel/internal/eventmodel"
	"github.com/bc-dunia/govel/internal/obs"
	"github.com/bc-dunia/govel/internal/ringbuffer"
	"github.com/bc-dunia/govel/internal/throttle"
	"github.com/bc-dunia/govel/internal/transport"
)

func waitForCount(t *testing.T, fake *transport.Fake, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if fake.Count() >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d posts, got %d", want, fake.Count())
}

func TestFiveHeartbeatsThenTerminateInOrder(t *testing.T) {
	queue := ringbuffer.New[eventmodel.Event](10)
	registry := throttle.NewRegistry()
	fake := &transport.Fake{}

	h := New(queue, fake, registry, Paths{Event: "/eventListener/v7", Batch: "/eventListener/v7/eventBatch"},
		nil, obs.NoopMetrics(), obs.NoopTracer())
	h.Start(context.Background())

	ctx := eventmodel.NewContext("UNIT TEST", eventmodel.SourceVirtualNetworkFunction, "vm", "", "vm", "")
	ctx.SetNextSequence(1)

	for i := 0; i < 5; i++ {
		ev := eventmodel.NewHeartbeat(ctx, eventmodel.PriorityNormal)
		if !queue.Write(ev) {
			t.Fatalf("write %d: queue full", i)
		}
	}

	waitForCount(t, fake, 5)

	if err := h.RequestTerminate(context.Background(), ctx); err != nil {
		t.Fatalf("RequestTerminate: %v", err)
	}
	if h.State() != StateTerminated {
		t.Fatalf("state = %v, want StateTerminated", h.State())
	}

	posts := fake.PostsSnapshot()
	if len(posts) != 5 {
		t.Fatalf("got %d posts, want 5", len(posts))
	}
	for i, p := range posts {
		var decoded struct {
			Event struct {
				CommonEventHeader struct {
					Sequence int64 `json:"sequence"`
				} `json:"commonEventHeader"`
			} `json:"event"`
		}
		if err := json.Unmarshal(p.Body, &decoded); err != nil {
			t.Fatalf("post %d: invalid JSON: %v", i, err)
		}
		if want := int64(i + 1); decoded.Event.CommonEventHeader.Sequence != want {
			t.Fatalf("post %d: sequence = %d, want %d (POST order must match enqueue order)",
				i, decoded.Event.CommonEventHeader.Sequence, want)
		}
	}
}

func TestTerminateDrainsQueuedEventsBeforeStopping(t *testing.T) {
	queue := ringbuffer.New[eventmodel.Event](10)
	registry := throttle.NewRegistry()
	fake := &transport.Fake{}

	h := New(queue, fake, registry, Paths{Event: "/eventListener/v7"}, nil, obs.NoopMetrics(), obs.NoopTracer())

	ctx := eventmodel.NewContext("UNIT TEST", eventmodel.SourceVirtualNetworkFunction, "vm", "", "vm", "")
	for i := 0; i < 3; i++ {
		queue.Write(eventmodel.NewHeartbeat(ctx, eventmodel.PriorityNormal))
	}

	h.Start(context.Background())

	if err := h.RequestTerminate(context.Background(), ctx); err != nil {
		t.Fatalf("RequestTerminate: %v", err)
	}
	if fake.Count() != 3 {
		t.Fatalf("got %d posts, want 3 (all queued events drained before stop)", fake.Count())
	}
}

func TestTransportErrorDropsEventWithoutRetryQueue(t *testing.T) {
	queue := ringbuffer.New[eventmodel.Event](10)
	registry := throttle.NewRegistry()
	fake := &transport.Fake{DefaultErr: context.DeadlineExceeded}

	h := New(queue, fake, registry, Paths{Event: "/eventListener/v7"}, nil, obs.NoopMetrics(), obs.NoopTracer())
	h.Start(context.Background())

	ctx := eventmodel.NewContext("UNIT TEST", eventmodel.SourceVirtualNetworkFunction, "vm", "", "vm", "")
	queue.Write(eventmodel.NewHeartbeat(ctx, eventmodel.PriorityNormal))

	waitForCount(t, fake, 1)

	if err := h.RequestTerminate(context.Background(), ctx); err != nil {
		t.Fatalf("RequestTerminate: %v", err)
	}
	if fake.Count() != 1 {
		t.Fatalf("got %d posts, want exactly 1 attempt (no re-enqueue after failure)", fake.Count())
	}
}
