package velencode

import "github.com/bc-dunia/govel/internal/eventmodel"

// encodeStateChangeFields writes stateChangeFields: the new/old state
// pair, the interface name, additional fields, then the fixed schema
// version last.
func encodeStateChangeFields(b *Buffer, ev *eventmodel.Event) {
	s := ev.Payload.(*eventmodel.StateChange)

	b.OpenNamedObject("stateChangeFields")
	b.KVString("newState", string(s.NewState))
	b.KVString("oldState", string(s.OldState))
	b.KVString("stateInterface", s.StateInterface)
	b.WriteNameValuePairList("additionalFields", s.AdditionalFields.Items())
	b.KVVersion("stateChangeFieldsVersion", 1, 1)
	b.CloseObject()
}
