package vel

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bc-dunia/govel/internal/handler"
	"github.com/bc-dunia/govel/internal/throttle"
	"github.com/bc-dunia/govel/internal/transport"
)

// newTestClient builds a Client against an in-process transport.Fake,
// standing in for the collector across the §8 end-to-end scenarios.
func newTestClient(t *testing.T, fake *transport.Fake) *Client {
	t.Helper()
	cfg := defaultClientConfig()
	cfg.ringBufferCapacity = 16
	c, err := newClient(fake, testPaths(), "UNIT TEST", SourceVirtualMachine, "vm-name", "vm-uuid", "vm-name", "vm-uuid", cfg)
	if err != nil {
		t.Fatalf("newClient: %v", err)
	}
	t.Cleanup(func() { c.Terminate(context.Background()) })
	return c
}

func testPaths() handler.Paths {
	return handler.Paths{Event: "/eventListener/v1.2", Batch: "/eventListener/v1.2/eventBatch", Throttle: "/eventListener/v1.2/clientThrottlingState"}
}

func waitForPosts(t *testing.T, fake *transport.Fake, want int) {
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

// TestS1HeartbeatBaseline grounds on spec scenario S1.
func TestS1HeartbeatBaseline(t *testing.T) {
	fake := &transport.Fake{}
	c := newTestClient(t, fake)
	c.Context().SetNextSequence(121)

	if err := c.PostEvent(NewHeartbeat(c.Context(), PriorityNormal)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	waitForPosts(t, fake, 1)

	var decoded struct {
		Event struct {
			CommonEventHeader struct {
				Domain              string `json:"domain"`
				EventID             string `json:"eventId"`
				FunctionalRole      string `json:"functionalRole"`
				Priority            string `json:"priority"`
				ReportingEntityName string `json:"reportingEntityName"`
				Sequence            int64  `json:"sequence"`
				SourceName          string `json:"sourceName"`
				EventType           string `json:"eventType"`
			} `json:"commonEventHeader"`
		} `json:"event"`
	}
	if err := json.Unmarshal(fake.PostsSnapshot()[0].Body, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	h := decoded.Event.CommonEventHeader
	if h.Domain != "heartbeat" || h.EventID != "121" || h.FunctionalRole != "UNIT TEST" ||
		h.Priority != "Normal" || h.Sequence != 121 || h.SourceName != "vm-name" ||
		h.EventType != "Autonomous heartbeat" || h.ReportingEntityName != "vm-name" {
		t.Fatalf("unexpected header: %+v", h)
	}
}

// TestS2FaultAdditionalInfoThrottling grounds on spec scenario S2.
func TestS2FaultAdditionalInfoThrottling(t *testing.T) {
	fake := &transport.Fake{}
	c := newTestClient(t, fake)

	spec := throttle.NewSpec()
	spec.SuppressField("alarmInterfaceA")
	spec.SuppressField("eventType")
	spec.SuppressNVPair("alarmAdditionalInformation", "name3")
	spec.SuppressNVPair("alarmAdditionalInformation", "name4")
	c.registry.Apply(DomainFault, spec)

	ev := NewFault(c.Context(), "condition", "problem", PriorityNormal, SeverityMajor, SourceVirtualMachine, VFStatusActive)
	fault := ev.Payload.(*Fault)
	fault.SetInterface("eth0", c.logger)
	fault.AddAdditionalInfo("name1", "value1")
	fault.AddAdditionalInfo("name2", "value2")
	fault.AddAdditionalInfo("name3", "value3")
	fault.AddAdditionalInfo("name4", "value4")

	if err := c.PostEvent(ev); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	waitForPosts(t, fake, 1)

	var decoded struct {
		Event struct {
			FaultFields struct {
				AlarmAdditionalInformation []struct {
					Name  string `json:"name"`
					Value string `json:"value"`
				} `json:"alarmAdditionalInformation"`
			} `json:"faultFields"`
		} `json:"event"`
	}
	body := fake.PostsSnapshot()[0].Body
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	info := decoded.Event.FaultFields.AlarmAdditionalInformation
	if len(info) != 2 || info[0].Name != "name1" || info[1].Name != "name2" {
		t.Fatalf("alarmAdditionalInformation = %+v, want exactly name1, name2", info)
	}

	var raw map[string]any
	json.Unmarshal(body, &raw)
	faultFields := raw["event"].(map[string]any)["faultFields"].(map[string]any)
	if _, present := faultFields["alarmInterfaceA"]; present {
		t.Fatal("alarmInterfaceA should be suppressed")
	}
}

// TestS3MeasurementThrottlingEmptiesContainer grounds on spec scenario S3.
func TestS3MeasurementThrottlingEmptiesContainer(t *testing.T) {
	fake := &transport.Fake{}
	c := newTestClient(t, fake)

	spec := throttle.NewSpec()
	spec.SuppressNVPair("cpuUsageArray", "cpu0")
	spec.SuppressNVPair("cpuUsageArray", "cpu1")
	c.registry.Apply(DomainMeasurement, spec)

	ev := NewMeasurement(c.Context(), 20, PriorityNormal)
	m := ev.Payload.(*Measurement)
	m.AddCPUUsage(CPUUsage{ID: "cpu0"})
	m.AddCPUUsage(CPUUsage{ID: "cpu1"})

	if err := c.PostEvent(ev); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	waitForPosts(t, fake, 1)

	var raw map[string]any
	json.Unmarshal(fake.PostsSnapshot()[0].Body, &raw)
	measurementFields := raw["event"].(map[string]any)["measurementsForVfScalingFields"].(map[string]any)
	if _, present := measurementFields["cpuUsageArray"]; present {
		t.Fatal("cpuUsageArray should be rewound away entirely once every identifier is suppressed")
	}
}

// TestS4CommandIngestion grounds on spec scenario S4.
func TestS4CommandIngestion(t *testing.T) {
	fake := &transport.Fake{
		Responses: []transport.FakeResponse{
			{Body: []byte(`{"commandList":[{"command":{"commandType":"measurementIntervalChange","measurementInterval":60}}]}`)},
		},
	}
	c := newTestClient(t, fake)

	if err := c.PostEvent(NewHeartbeat(c.Context(), PriorityNormal)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	waitForPosts(t, fake, 1)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if seconds, ok := c.GetMeasurementInterval(); ok {
			if seconds != 60 {
				t.Fatalf("GetMeasurementInterval = %d, want 60", seconds)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("measurement interval was never applied")
}

// TestS5ProvideThrottlingState grounds on spec scenario S5.
func TestS5ProvideThrottlingState(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		fake := &transport.Fake{
			Responses: []transport.FakeResponse{
				{Body: []byte(`{"commandList":[{"command":{"commandType":"provideThrottlingState"}}]}`)},
			},
		}
		c := newTestClient(t, fake)
		if err := c.PostEvent(NewHeartbeat(c.Context(), PriorityNormal)); err != nil {
			t.Fatalf("PostEvent: %v", err)
		}
		waitForPosts(t, fake, 2)

		reply := fake.PostsSnapshot()[1]
		if reply.Path != testPaths().Throttle {
			t.Fatalf("throttle reply posted to %q, want %q", reply.Path, testPaths().Throttle)
		}
		if string(reply.Body) != `{"eventThrottlingState":{"eventThrottlingMode":"normal"}}` {
			t.Fatalf("reply = %s", reply.Body)
		}
	})

	t.Run("throttled", func(t *testing.T) {
		fake := &transport.Fake{
			Responses: []transport.FakeResponse{
				{Body: []byte(`{"commandList":[{"command":{"commandType":"provideThrottlingState"}}]}`)},
			},
		}
		c := newTestClient(t, fake)
		spec := throttle.NewSpec()
		spec.SuppressField("alarmInterfaceA")
		c.registry.Apply(DomainFault, spec)

		if err := c.PostEvent(NewHeartbeat(c.Context(), PriorityNormal)); err != nil {
			t.Fatalf("PostEvent: %v", err)
		}
		waitForPosts(t, fake, 2)

		reply := fake.PostsSnapshot()[1]
		want := `{"eventThrottlingState":{"eventThrottlingMode":"throttled","eventDomainThrottleSpecificationList":[{"eventDomain":"fault","suppressedFieldNames":["alarmInterfaceA"]}]}}`
		if string(reply.Body) != want {
			t.Fatalf("reply = %s, want %s", reply.Body, want)
		}
	})
}

// TestS6OrderedShutdown grounds on spec scenario S6.
func TestS6OrderedShutdown(t *testing.T) {
	fake := &transport.Fake{}
	c := newTestClient(t, fake)
	c.Context().SetNextSequence(1)

	for i := 0; i < 5; i++ {
		if err := c.PostEvent(NewHeartbeat(c.Context(), PriorityNormal)); err != nil {
			t.Fatalf("PostEvent %d: %v", i, err)
		}
	}
	waitForPosts(t, fake, 5)

	if err := c.Terminate(context.Background()); err != nil {
		t.Fatalf("Terminate: %v", err)
	}
	if !c.Terminated() {
		t.Fatal("client should report Terminated() after Terminate returns")
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
		json.Unmarshal(p.Body, &decoded)
		if want := int64(i + 1); decoded.Event.CommonEventHeader.Sequence != want {
			t.Fatalf("post %d: sequence = %d, want %d", i, decoded.Event.CommonEventHeader.Sequence, want)
		}
	}
}

// TestPostEventAfterTerminateIsRejected exercises §5's terminating-state
// shutdown error for producers.
func TestPostEventAfterTerminateIsRejected(t *testing.T) {
	fake := &transport.Fake{}
	c := newTestClient(t, fake)
	if err := c.Terminate(context.Background()); err != nil {
		t.Fatalf("Terminate: %v", err)
	}
	if err := c.PostEvent(NewHeartbeat(c.Context(), PriorityNormal)); err != ErrTerminating {
		t.Fatalf("PostEvent after Terminate = %v, want ErrTerminating", err)
	}
}

// TestPostBatchBypassesRingBuffer confirms Batch posting goes straight
// to the transport rather than through PostEvent/the ring buffer.
func TestPostBatchBypassesRingBuffer(t *testing.T) {
	fake := &transport.Fake{}
	c := newTestClient(t, fake)

	batch := NewBatch()
	batch.Add(NewHeartbeat(c.Context(), PriorityNormal))
	batch.Add(NewHeartbeat(c.Context(), PriorityNormal))

	if err := c.PostBatch(context.Background(), batch); err != nil {
		t.Fatalf("PostBatch: %v", err)
	}
	if fake.Count() != 1 {
		t.Fatalf("got %d posts, want exactly 1 (one POST for the whole batch)", fake.Count())
	}

	var decoded struct {
		EventList []json.RawMessage `json:"eventList"`
	}
	if err := json.Unmarshal(fake.PostsSnapshot()[0].Body, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.EventList) != 2 {
		t.Fatalf("eventList has %d entries, want 2", len(decoded.EventList))
	}
}
