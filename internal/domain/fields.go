package domain

import (
	"encoding/json"
	"strings"
)

// Fields holds the passthrough keys of a document that have no typed field.
// They are flattened into the JSON and BSON representations of the record.
type Fields map[string]any

// reserved keys can never be smuggled in through the passthrough map.
var reserved = map[string]bool{"_id": true}

// MarshalFlat encodes known (a struct without custom marshalers) and merges
// extra into the same JSON object. Typed fields win over passthrough keys.
func MarshalFlat(known any, extra Fields) ([]byte, error) {
	b, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return b, nil
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, exists := merged[k]; exists {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		merged[k] = raw
	}
	return json.Marshal(merged)
}

// UnmarshalFlat decodes data into known and returns every key that is not
// listed in knownKeys as passthrough Fields.
func UnmarshalFlat(data []byte, known any, knownKeys ...string) (Fields, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range knownKeys {
		delete(all, k)
	}
	for k := range all {
		if reserved[k] {
			delete(all, k)
		}
	}
	if len(all) == 0 {
		return nil, nil
	}
	return Fields(all), nil
}

// Without returns a copy of f minus the given keys and any reserved key.
func (f Fields) Without(keys ...string) Fields {
	out := Fields{}
	for k, v := range f {
		if reserved[k] {
			continue
		}
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// String returns the trimmed string value at key, or "" when absent or not a string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return strings.TrimSpace(s)
}
