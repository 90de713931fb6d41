package envelope

// Unwrap peels known backend envelopes off a decoded JSON value and returns
// the real payload. Priority order is fixed: {results: array} first, then
// {data: array|object}, then bare array, then bare object. A value matching
// none of these comes back unchanged; Unwrap never fails.
//
// The backend's envelope shape varies by endpoint and pagination state, so
// every caller goes through here instead of guessing.
func Unwrap(raw interface{}) interface{} {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		// Bare array or scalar, nothing to peel.
		return raw
	}

	if results, ok := obj["results"]; ok {
		switch v := results.(type) {
		case []interface{}, map[string]interface{}:
			return v
		}
	}
	if data, ok := obj["data"]; ok {
		switch v := data.(type) {
		case []interface{}, map[string]interface{}:
			return v
		}
	}
	return obj
}

// UnwrapList unwraps and coerces to a list: a single object becomes a
// one-element list, anything unusable becomes an empty list.
func UnwrapList(raw interface{}) []interface{} {
	switch v := Unwrap(raw).(type) {
	case []interface{}:
		return v
	case map[string]interface{}:
		return []interface{}{v}
	default:
		return []interface{}{}
	}
}

// UnwrapObject unwraps and returns the payload as an object. A one-element
// list collapses to its element; anything else yields nil.
func UnwrapObject(raw interface{}) map[string]interface{} {
	switch v := Unwrap(raw).(type) {
	case map[string]interface{}:
		return v
	case []interface{}:
		if len(v) == 1 {
			if obj, ok := v[0].(map[string]interface{}); ok {
				return obj
			}
		}
	}
	return nil
}
