package eventmodel

// EntityState is the new/old state enum for StateChange events (§3.3).
type EntityState string

const (
	EntityStateInService    EntityState = "inService"
	EntityStateMaintenance  EntityState = "maintenance"
	EntityStateOutOfService EntityState = "outOfService"
)

// StateChange is the stateChange domain payload (§3.3).
type StateChange struct {
	NewState EntityState
	OldState EntityState
	StateInterface string

	AdditionalFields NameValuePairList
}

// NewStateChange builds a StateChange event with its mandatory fields
// set.
func NewStateChange(ctx *Context, newState, oldState EntityState, stateInterface string, priority Priority) *Event {
	h := ctx.newHeader(DomainStateChange, "stateChange", priority, 1, 0)
	return &Event{
		Header: h,
		Payload: &StateChange{
			NewState:       newState,
			OldState:       oldState,
			StateInterface: stateInterface,
		},
	}
}

func (s *StateChange) AddAdditionalField(name, value string) { s.AdditionalFields.Push(name, value) }
