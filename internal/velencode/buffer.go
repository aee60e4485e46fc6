// Package velencode implements the streaming JSON encoder (C3) that
// turns an eventmodel.Event into the collector's wire envelope,
// applying throttle suppression as it goes (§4.3, §4.4).
//
// The encoder is grounded on the original EVEL_JSON_BUFFER design
// (offset/depth tracked incrementally, checkpoint/rewind for
// suppressing an entire container once every item inside it is
// suppressed) but is expressed as a Go bytes.Buffer wrapper rather than
// a fixed-size char array, and delegates value escaping to
// encoding/json rather than hand-rolled quote escaping.
package velencode

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/bc-dunia/govel/internal/eventmodel"
)

// throttleFieldDepth is the nesting depth at which field/container
// suppression applies: depth 1 is the outer envelope object, depth 2 is
// "event"/"eventList" element, depth 3 is the commonEventHeader or
// "<domain>Fields" object itself — exactly the level the collector's
// throttle specs name fields and containers at.
const throttleFieldDepth = 3

// Suppressor answers whether a field or a named-value-pair container
// item should be omitted for a given domain. The throttle registry (C4)
// implements this; velencode only depends on the interface so the two
// packages don't need to import each other.
type Suppressor interface {
	SuppressField(domain eventmodel.Domain, key string) bool
	SuppressNVPair(domain eventmodel.Domain, container, name string) bool
}

// noopSuppressor suppresses nothing, used when no throttle spec applies
// to a domain.
type noopSuppressor struct{}

func (noopSuppressor) SuppressField(eventmodel.Domain, string) bool         { return false }
func (noopSuppressor) SuppressNVPair(eventmodel.Domain, string, string) bool { return false }

// NoSuppression is the Suppressor used when encoding without a throttle
// registry attached (e.g. in tests).
var NoSuppression Suppressor = noopSuppressor{}

// Buffer is the streaming JSON writer used by every per-domain encoder.
// It is not safe for concurrent use; one Buffer belongs to exactly one
// encode call.
type Buffer struct {
	buf        bytes.Buffer
	depth      int
	checkpoint int
	domain     eventmodel.Domain
	suppressor Suppressor
}

// NewBuffer returns a Buffer that will apply suppressor's rules for
// domain as it encodes. A nil suppressor is treated as NoSuppression.
func NewBuffer(domain eventmodel.Domain, suppressor Suppressor) *Buffer {
	if suppressor == nil {
		suppressor = NoSuppression
	}
	return &Buffer{checkpoint: -1, domain: domain, suppressor: suppressor}
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// lastByte returns the last byte written, or 0 if the buffer is empty.
func (b *Buffer) lastByte() byte {
	if b.buf.Len() == 0 {
		return 0
	}
	return b.buf.Bytes()[b.buf.Len()-1]
}

// kvComma writes a separating comma unless we're at the start of an
// object or list.
func (b *Buffer) kvComma() {
	last := b.lastByte()
	if last == 0 || last == '{' || last == '[' {
		return
	}
	b.buf.WriteString(", ")
}

// OpenObject writes an unnamed opening brace, used only for the
// outermost envelope object.
func (b *Buffer) OpenObject() {
	if b.lastByte() == '}' {
		b.buf.WriteString(", ")
	}
	b.buf.WriteByte('{')
	b.depth++
}

// CloseObject writes a closing brace.
func (b *Buffer) CloseObject() {
	b.buf.WriteByte('}')
	b.depth--
}

// OpenNamedObject writes `"key": {` unconditionally.
func (b *Buffer) OpenNamedObject(key string) {
	b.kvComma()
	b.writeKey(key)
	b.buf.WriteString(": {")
	b.depth++
}

// OpenOptNamedObject writes `"key": {` unless key is suppressed for the
// buffer's domain at the current depth, returning whether it opened.
// Callers must pair a true result with a later CloseObject, and should
// use Checkpoint/Rewind around the contents so an entirely-suppressed
// object can be dropped rather than emitted empty.
func (b *Buffer) OpenOptNamedObject(key string) bool {
	if b.suppressField(key) {
		return false
	}
	b.OpenNamedObject(key)
	return true
}

// OpenNamedList writes `"key": [` unconditionally.
func (b *Buffer) OpenNamedList(key string) {
	b.kvComma()
	b.writeKey(key)
	b.buf.WriteString(": [")
	b.depth++
}

// OpenOptNamedList is the list analogue of OpenOptNamedObject.
func (b *Buffer) OpenOptNamedList(key string) bool {
	if b.suppressField(key) {
		return false
	}
	b.OpenNamedList(key)
	return true
}

// CloseList writes a closing bracket.
func (b *Buffer) CloseList() {
	b.buf.WriteByte(']')
	b.depth--
}

// Checkpoint records the current offset so a later Rewind can discard
// everything written since, used to drop a container whose every item
// ended up suppressed (§4.3, §8 scenario S3).
func (b *Buffer) Checkpoint() {
	b.checkpoint = b.buf.Len()
}

// Rewind truncates the buffer back to the last Checkpoint.
func (b *Buffer) Rewind() {
	b.buf.Truncate(b.checkpoint)
	b.checkpoint = -1
}

// suppressField reports whether key should be suppressed at the
// current depth for the buffer's domain.
func (b *Buffer) suppressField(key string) bool {
	return b.depth == throttleFieldDepth && b.suppressor.SuppressField(b.domain, key)
}

func (b *Buffer) writeKey(key string) {
	k, _ := json.Marshal(key)
	b.buf.Write(k)
}

func (b *Buffer) writeJSONString(v string) {
	s, _ := json.Marshal(v)
	b.buf.Write(s)
}

// KVString writes `"key": "value"` unconditionally.
func (b *Buffer) KVString(key, value string) {
	b.kvComma()
	b.writeKey(key)
	b.buf.WriteString(": ")
	b.writeJSONString(value)
}

// KVOptString writes key/value only if opt is set and not suppressed,
// returning whether it was added.
func (b *Buffer) KVOptString(key string, opt *eventmodel.Option[string]) bool {
	v, ok := opt.Get()
	if !ok {
		return false
	}
	if b.suppressField(key) {
		return false
	}
	b.KVString(key, v)
	return true
}

// KVInt writes `"key": value` for an integer, unconditionally.
func (b *Buffer) KVInt(key string, value int64) {
	b.kvComma()
	b.writeKey(key)
	b.buf.WriteString(": ")
	b.buf.WriteString(strconv.FormatInt(value, 10))
}

// KVOptInt is the Option analogue of KVInt.
func (b *Buffer) KVOptInt(key string, opt *eventmodel.Option[int64]) bool {
	v, ok := opt.Get()
	if !ok {
		return false
	}
	if b.suppressField(key) {
		return false
	}
	b.KVInt(key, v)
	return true
}

// KVDouble writes `"key": value` for a float64, unconditionally.
func (b *Buffer) KVDouble(key string, value float64) {
	b.kvComma()
	b.writeKey(key)
	b.buf.WriteString(": ")
	b.buf.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
}

// KVOptDouble is the Option analogue of KVDouble.
func (b *Buffer) KVOptDouble(key string, opt *eventmodel.Option[float64]) bool {
	v, ok := opt.Get()
	if !ok {
		return false
	}
	if b.suppressField(key) {
		return false
	}
	b.KVDouble(key, v)
	return true
}

// KVUint writes `"key": value` for a uint64, unconditionally.
func (b *Buffer) KVUint(key string, value uint64) {
	b.kvComma()
	b.writeKey(key)
	b.buf.WriteString(": ")
	b.buf.WriteString(strconv.FormatUint(value, 10))
}

// KVOptUint is the Option analogue of KVUint.
func (b *Buffer) KVOptUint(key string, opt *eventmodel.Option[uint64]) bool {
	v, ok := opt.Get()
	if !ok {
		return false
	}
	if b.suppressField(key) {
		return false
	}
	b.KVUint(key, v)
	return true
}

// KVBool writes `"key": true/false` unconditionally.
func (b *Buffer) KVBool(key string, value bool) {
	b.kvComma()
	b.writeKey(key)
	if value {
		b.buf.WriteString(": true")
	} else {
		b.buf.WriteString(": false")
	}
}

// KVTime writes a key/value pair with value formatted per RFC1123
// (matching the original library's use of asctime-style timestamps for
// the few string-time fields the schema defines).
func (b *Buffer) KVTime(key string, value time.Time) {
	b.KVString(key, value.UTC().Format(time.RFC1123))
}

// KVVersion writes `"key": major.minor` when minor is non-zero and
// `"key": major` when it is zero, matching evel_enc_version's behavior
// of omitting a bare ".0" suffix. This applies to every key it is used
// for, the header's "version" and each "<domain>FieldsVersion" alike.
func (b *Buffer) KVVersion(key string, major, minor int) {
	b.kvComma()
	b.writeKey(key)
	if minor == 0 {
		b.buf.WriteString(": ")
		b.buf.WriteString(strconv.Itoa(major))
	} else {
		b.buf.WriteString(": ")
		b.buf.WriteString(strconv.Itoa(major))
		b.buf.WriteByte('.')
		b.buf.WriteString(strconv.Itoa(minor))
	}
}

// ListItem writes one raw, already-JSON-encoded value into the
// currently open list, separating it from the previous entry with a
// comma.
func (b *Buffer) ListItem(raw string) {
	if b.lastByte() != '[' {
		b.buf.WriteString(", ")
	}
	b.buf.WriteString(raw)
}

// ListItemString writes one string value into the currently open list.
func (b *Buffer) ListItemString(value string) {
	if b.lastByte() != '[' {
		b.buf.WriteString(", ")
	}
	b.writeJSONString(value)
}

// suppressNVPair reports whether (container, name) should be dropped,
// delegating to the suppressor regardless of depth — NV-pair
// suppression is keyed by container name, not buffer nesting (§4.3).
func (b *Buffer) suppressNVPair(container, name string) bool {
	return b.suppressor.SuppressNVPair(b.domain, container, name)
}

// WriteNameValuePairList encodes an optional named array of
// {"name":..., "value":...} objects, applying per-item suppression and
// rewinding (omitting the key entirely) if every item was suppressed or
// the list was empty to begin with (§8 scenario S2, S3).
func (b *Buffer) WriteNameValuePairList(key string, items []eventmodel.NameValuePair) {
	if len(items) == 0 {
		return
	}
	b.Checkpoint()
	if !b.OpenOptNamedList(key) {
		b.Rewind()
		return
	}
	wrote := false
	for _, item := range items {
		if b.suppressNVPair(key, item.Name) {
			continue
		}
		b.kvComma()
		b.buf.WriteByte('{')
		b.KVString("name", item.Name)
		b.KVString("value", item.Value)
		b.buf.WriteByte('}')
		wrote = true
	}
	b.CloseList()
	if !wrote {
		b.Rewind()
	}
}
