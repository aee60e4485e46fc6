// Package commandparser decodes the collector's inbound command
// channel (§4.7) and applies it to a throttle registry.
//
// Grounded on evel_throttle.h's EVEL_JSON_COMMAND_STATE walk, but
// expressed the idiomatic Go way: encoding/json already tolerates
// unknown keys and out-of-order keys within an object, which is all
// the original's hand-rolled JSMN token-stack state machine exists to
// provide, so the wire shape is decoded straight into a small struct
// tree rather than ported as a literal state machine. A "commandType"
// key may appear before or after its siblings within a command object
// (the original library's own unit tests exercise both orders), and a
// bare "measurementInterval" with no commandType is not acted on.
package commandparser

import (
	"encoding/json"
	"sort"

	"github.com/bc-dunia/govel/internal/eventmodel"
	"github.com/bc-dunia/govel/internal/throttle"
)

const (
	commandMeasurementIntervalChange = "measurementIntervalChange"
	commandThrottlingSpecification   = "throttlingSpecification"
	commandProvideThrottlingState    = "provideThrottlingState"
)

type commandListEnvelope struct {
	CommandList []commandWrapper `json:"commandList"`
}

type commandWrapper struct {
	Command rawCommand `json:"command"`
}

type rawCommand struct {
	CommandType                      string      `json:"commandType"`
	MeasurementInterval               *int64      `json:"measurementInterval"`
	EventDomainThrottleSpecification *domainSpec `json:"eventDomainThrottleSpecification"`
}

type domainSpec struct {
	EventDomain           string       `json:"eventDomain"`
	SuppressedFieldNames  []string     `json:"suppressedFieldNames"`
	SuppressedNvPairsList []nvPairSpec `json:"suppressedNvPairsList"`
}

type nvPairSpec struct {
	NvPairFieldName       string   `json:"nvPairFieldName"`
	SuppressedNvPairNames []string `json:"suppressedNvPairNames"`
}

// HandleCommandList applies every command in an inbound commandList
// body to registry and returns the reply body for a
// provideThrottlingState request, or nil when the body carried no such
// request. A body that isn't a recognizable commandList — malformed
// JSON, or JSON with unrelated keys — is silently ignored and yields a
// nil reply, matching the collector's tolerance for responses it
// doesn't recognize (§8 S5).
func HandleCommandList(body []byte, registry *throttle.Registry) []byte {
	var env commandListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}

	var reply []byte
	for _, item := range env.CommandList {
		cmd := item.Command
		switch cmd.CommandType {
		case commandMeasurementIntervalChange:
			if cmd.MeasurementInterval != nil {
				registry.SetMeasurementInterval(*cmd.MeasurementInterval)
			}
		case commandThrottlingSpecification:
			applyThrottleSpec(registry, cmd.EventDomainThrottleSpecification)
		case commandProvideThrottlingState:
			reply = buildThrottleStateReply(registry)
		}
	}
	return reply
}

func applyThrottleSpec(registry *throttle.Registry, spec *domainSpec) {
	if spec == nil {
		return
	}
	domain := eventmodel.DomainFromWireName(spec.EventDomain)
	if domain == "" {
		return
	}
	if len(spec.SuppressedFieldNames) == 0 && len(spec.SuppressedNvPairsList) == 0 {
		registry.Clear(domain)
		return
	}

	out := throttle.NewSpec()
	for _, name := range spec.SuppressedFieldNames {
		out.SuppressField(name)
	}
	for _, pair := range spec.SuppressedNvPairsList {
		for _, name := range pair.SuppressedNvPairNames {
			out.SuppressNVPair(pair.NvPairFieldName, name)
		}
	}
	registry.Apply(domain, out)
}

type throttleStateReply struct {
	EventThrottlingState eventThrottlingState `json:"eventThrottlingState"`
}

type eventThrottlingState struct {
	EventThrottlingMode                  string                `json:"eventThrottlingMode"`
	EventDomainThrottleSpecificationList []domainThrottleEntry `json:"eventDomainThrottleSpecificationList,omitempty"`
}

type domainThrottleEntry struct {
	EventDomain           string       `json:"eventDomain"`
	SuppressedFieldNames  []string     `json:"suppressedFieldNames,omitempty"`
	SuppressedNvPairsList []nvPairSpec `json:"suppressedNvPairsList,omitempty"`
}

// buildThrottleStateReply renders the registry's current state as a
// provideThrottlingState reply: "normal" with no list when nothing is
// throttled, otherwise "throttled" with one entry per throttled domain
// naming only the suppression kinds actually in effect for it.
func buildThrottleStateReply(registry *throttle.Registry) []byte {
	snapshots := registry.State()

	resp := throttleStateReply{
		EventThrottlingState: eventThrottlingState{EventThrottlingMode: "normal"},
	}
	if len(snapshots) > 0 {
		resp.EventThrottlingState.EventThrottlingMode = "throttled"
		for _, snap := range snapshots {
			entry := domainThrottleEntry{EventDomain: snap.Domain.WireName()}
			if len(snap.SuppressedFields) > 0 {
				entry.SuppressedFieldNames = snap.SuppressedFields
			}
			for _, container := range sortedKeys(snap.SuppressedPairs) {
				entry.SuppressedNvPairsList = append(entry.SuppressedNvPairsList, nvPairSpec{
					NvPairFieldName:       container,
					SuppressedNvPairNames: snap.SuppressedPairs[container],
				})
			}
			resp.EventThrottlingState.EventDomainThrottleSpecificationList = append(
				resp.EventThrottlingState.EventDomainThrottleSpecificationList, entry)
		}
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return nil
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
