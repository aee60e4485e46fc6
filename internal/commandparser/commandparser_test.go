package commandparser

import (
	"encoding/json"
	"testing"

	"github.com/bc-dunia/govel/internal/eventmodel"
	"github.com/bc-dunia/govel/internal/throttle"
)

func TestJunkBodyIsIgnored(t *testing.T) {
	r := throttle.NewRegistry()
	reply := HandleCommandList([]byte(`{"junk1":["1","2"],"junk2":["1","2"]}`), r)
	if reply != nil {
		t.Fatalf("expected no reply for a non-commandList body, got %s", reply)
	}
	if len(r.State()) != 0 {
		t.Fatal("expected no domain to be throttled")
	}
}

func TestMalformedBodyIsIgnored(t *testing.T) {
	r := throttle.NewRegistry()
	reply := HandleCommandList([]byte(`{not json`), r)
	if reply != nil {
		t.Fatalf("expected no reply for malformed JSON, got %s", reply)
	}
}

func TestMeasurementIntervalRequiresCommandType(t *testing.T) {
	r := throttle.NewRegistry()
	if _, ok := r.MeasurementInterval(); ok {
		t.Fatal("expected no interval set initially")
	}

	HandleCommandList([]byte(`{"commandList":[{"command":{"measurementInterval":60}}]}`), r)
	if _, ok := r.MeasurementInterval(); ok {
		t.Fatal("a bare measurementInterval with no commandType must not be applied")
	}
}

func TestMeasurementIntervalOrderIndependent(t *testing.T) {
	r := throttle.NewRegistry()

	HandleCommandList([]byte(`{"commandList":[{"command":{"measurementInterval":30,"commandType":"measurementIntervalChange"}}]}`), r)
	if got, ok := r.MeasurementInterval(); !ok || got != 30 {
		t.Fatalf("interval-before-type: got %d, ok=%v, want 30", got, ok)
	}

	HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"measurementIntervalChange","measurementInterval":60}}]}`), r)
	if got, ok := r.MeasurementInterval(); !ok || got != 60 {
		t.Fatalf("type-before-interval: got %d, ok=%v, want 60", got, ok)
	}
}

func TestProvideThrottlingStateNormal(t *testing.T) {
	r := throttle.NewRegistry()
	reply := HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"provideThrottlingState"}}]}`), r)
	if reply == nil {
		t.Fatal("expected a reply")
	}
	assertJSONEqual(t, reply, `{"eventThrottlingState":{"eventThrottlingMode":"normal"}}`)
}

func TestThrottleSpecFieldSuppressionSingleAndDouble(t *testing.T) {
	r := throttle.NewRegistry()

	HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"throttlingSpecification","eventDomainThrottleSpecification":{"eventDomain":"fault","suppressedFieldNames":["alarmInterfaceA"]}}}]}`), r)
	reply := HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"provideThrottlingState"}}]}`), r)
	assertJSONEqual(t, reply, `{"eventThrottlingState":{"eventThrottlingMode":"throttled","eventDomainThrottleSpecificationList":[{"eventDomain":"fault","suppressedFieldNames":["alarmInterfaceA"]}]}}`)

	HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"throttlingSpecification","eventDomainThrottleSpecification":{"eventDomain":"fault","suppressedFieldNames":["alarmInterfaceA","alarmAdditionalInformation"]}}}]}`), r)
	reply = HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"provideThrottlingState"}}]}`), r)
	assertJSONEqual(t, reply, `{"eventThrottlingState":{"eventThrottlingMode":"throttled","eventDomainThrottleSpecificationList":[{"eventDomain":"fault","suppressedFieldNames":["alarmAdditionalInformation","alarmInterfaceA"]}]}}`)

	HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"throttlingSpecification","eventDomainThrottleSpecification":{"eventDomain":"fault"}}}]}`), r)
	if r.Get(eventmodel.DomainFault) != nil {
		t.Fatal("expected clearing fault's spec when suppressedFieldNames/suppressedNvPairsList are both absent")
	}
}

func TestThrottleSpecNvPairSuppression(t *testing.T) {
	r := throttle.NewRegistry()
	HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"throttlingSpecification","eventDomainThrottleSpecification":{"eventDomain":"fault","suppressedNvPairsList":[{"nvPairFieldName":"alarmAdditionalInformation","suppressedNvPairNames":["name1"]}]}}}]}`), r)
	reply := HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"provideThrottlingState"}}]}`), r)
	assertJSONEqual(t, reply, `{"eventThrottlingState":{"eventThrottlingMode":"throttled","eventDomainThrottleSpecificationList":[{"eventDomain":"fault","suppressedNvPairsList":[{"nvPairFieldName":"alarmAdditionalInformation","suppressedNvPairNames":["name1"]}]}]}}`)
}

func TestThrottlingSpecificationAndIntervalChangeProduceNoReply(t *testing.T) {
	r := throttle.NewRegistry()
	reply := HandleCommandList([]byte(`{"commandList":[{"command":{"commandType":"throttlingSpecification","eventDomainThrottleSpecification":{"eventDomain":"fault","suppressedFieldNames":["alarmInterfaceA"]}}},{"command":{"commandType":"measurementIntervalChange","measurementInterval":60}}]}`), r)
	if reply != nil {
		t.Fatalf("expected no reply, got %s", reply)
	}
}

func assertJSONEqual(t *testing.T, got []byte, want string) {
	t.Helper()
	var gotVal, wantVal any
	if err := json.Unmarshal(got, &gotVal); err != nil {
		t.Fatalf("got is not valid JSON: %v (%s)", err, got)
	}
	if err := json.Unmarshal([]byte(want), &wantVal); err != nil {
		t.Fatalf("want is not valid JSON: %v", err)
	}
	gotNorm, _ := json.Marshal(gotVal)
	wantNorm, _ := json.Marshal(wantVal)
	if string(gotNorm) != string(wantNorm) {
		t.Fatalf("got %s, want %s", gotNorm, wantNorm)
	}
}
