package steam

import "encoding/json"

// Payload is a raw, weakly-typed app details payload as decoded from JSON.
// Every accessor below tolerates missing or mistyped keys and reports
// success through its second return value instead of panicking.
type Payload = map[string]any

// objectValue returns a nested object under key.
func objectValue(payload Payload, key string) (Payload, bool) {
	if payload == nil {
		return nil, false
	}
	obj, ok := payload[key].(map[string]any)
	return obj, ok
}

// stringValue returns a string under key.
func stringValue(payload Payload, key string) (string, bool) {
	if payload == nil {
		return "", false
	}
	s, ok := payload[key].(string)
	return s, ok
}

// listValue returns a list under key.
func listValue(payload Payload, key string) ([]any, bool) {
	if payload == nil {
		return nil, false
	}
	list, ok := payload[key].([]any)
	return list, ok
}

// intValue returns an integral number under key. encoding/json decodes
// numbers as float64, so whole floats are accepted; fractional values are
// rejected the same way non-numbers are.
func intValue(payload Payload, key string) (int64, bool) {
	if payload == nil {
		return 0, false
	}
	switch v := payload[key].(type) {
	case float64:
		n := int64(v)
		if float64(n) == v {
			return n, true
		}
		return 0, false
	case int:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// boolValue returns a bool under key.
func boolValue(payload Payload, key string) (bool, bool) {
	if payload == nil {
		return false, false
	}
	b, ok := payload[key].(bool)
	return b, ok
}
