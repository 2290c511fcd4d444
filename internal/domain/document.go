package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotObject is returned when a document payload is not a JSON object.
var ErrNotObject = errors.New("document must be a JSON object")

// Attributes holds document fields that have no typed counterpart.
// Values are kept as raw JSON so they are persisted exactly as received.
type Attributes map[string]json.RawMessage

// fieldSet is a decoded JSON object whose known keys are consumed one by one.
// Whatever is left once all known keys are taken becomes the document's Attributes.
type fieldSet map[string]json.RawMessage

func decodeObject(data []byte) (fieldSet, error) {
	var fs fieldSet
	if err := json.Unmarshal(data, &fs); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotObject
		}
		return nil, err
	}
	if fs == nil {
		return nil, ErrNotObject
	}
	return fs, nil
}

// take decodes key into a T and removes it from the set.
// null values and values of the wrong JSON type stay in the set untouched.
func take[T any](fs fieldSet, key string) (T, bool) {
	var zero T
	raw, ok := fs[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, false
	}
	delete(fs, key)
	return v, true
}

func takeString(fs fieldSet, key string) *string {
	if v, ok := take[string](fs, key); ok {
		return &v
	}
	return nil
}

func (fs fieldSet) attributes() Attributes {
	if len(fs) == 0 {
		return nil
	}
	return Attributes(fs)
}

// object is the encoding side of fieldSet: extras first, typed fields on top.
type object map[string]any

func newObject(extra Attributes) object {
	o := make(object, len(extra)+10)
	for k, v := range extra {
		o[k] = v
	}
	return o
}

func (o object) str(key string, v *string) {
	if v != nil {
		o[key] = *v
	}
}

func (o object) nonEmpty(key, v string) {
	if v != "" {
		o[key] = v
	}
}

func (o object) strings(key string, v []string) {
	if v != nil {
		o[key] = v
	}
}

func (o object) millis(key string, v int64) {
	if v != 0 {
		o[key] = v
	}
}

// stamp drops caller-supplied copies of server-owned keys.
func (a Attributes) stamp(keys ...string) {
	for _, k := range keys {
		delete(a, k)
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StringPtr is a convenience for building documents in code.
func StringPtr(s string) *string { return &s }
