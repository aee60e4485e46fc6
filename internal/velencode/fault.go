package velencode

import "github.com/bc-dunia/govel/internal/eventmodel"

// encodeFaultFields writes faultFields, key order and names matching
// the collector schema exactly (§8 scenario S2): mandatory fields
// first, then the optional eventCategory, vfStatus, the fixed
// faultFieldsVersion, the optional alarmAdditionalInformation array,
// then the optional alarmInterfaceA.
func encodeFaultFields(b *Buffer, ev *eventmodel.Event) {
	f := ev.Payload.(*eventmodel.Fault)

	b.OpenNamedObject("faultFields")
	b.KVString("alarmCondition", f.AlarmCondition)
	b.KVString("eventSeverity", string(f.EventSeverity))
	b.KVString("eventSourceType", string(f.EventSourceType))
	b.KVString("specificProblem", f.SpecificProblem)
	b.KVOptString("eventCategory", &f.Category)
	b.KVString("vfStatus", string(f.VFStatus))
	b.KVVersion("faultFieldsVersion", 1, 1)
	b.WriteNameValuePairList("alarmAdditionalInformation", f.AdditionalInfo.Items())
	b.KVOptString("alarmInterfaceA", &f.Interface)
	b.CloseObject()
}
