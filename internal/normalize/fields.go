// Package normalize maps raw backend payloads onto the canonical entities.
// Every normalizer is total: for each canonical field an ordered list of
// candidate raw keys is tried, first hit wins, and a documented default is
// used when none is present. Normalizers never fail; a malformed payload
// degrades to defaults instead of an error so the callers never crash on a
// backend field rename.
package normalize

import (
	"strconv"

	"github.com/google/uuid"
)

// pickStr returns the first candidate key holding a usable string. Numbers
// are stringified because the backend flips between the two for prices and
// phone numbers. Default is "".
func pickStr(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return val
			}
		case float64:
			return formatNumber(val)
		case bool:
			return strconv.FormatBool(val)
		}
	}
	return ""
}

// pickStrDefault is pickStr with an explicit fallback value.
func pickStrDefault(raw map[string]interface{}, def string, keys ...string) string {
	if v := pickStr(raw, keys...); v != "" {
		return v
	}
	return def
}

// pickInt returns the first candidate key holding a usable integer, accepting
// JSON numbers and numeric strings. Default is 0.
func pickInt(raw map[string]interface{}, keys ...string) int {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case float64:
			return int(val)
		case string:
			if n, err := strconv.Atoi(val); err == nil {
				return n
			}
		}
	}
	return 0
}

// pickFloat is pickInt for fractional values. Default is 0.
func pickFloat(raw map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case float64:
			return val
		case string:
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// pickStrList coerces the first present candidate into a string list: an
// array keeps its string elements, a bare string becomes a one-element list,
// anything else becomes empty.
func pickStrList(raw map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case []interface{}:
			out := make([]string, 0, len(val))
			for _, item := range val {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		case string:
			if val != "" {
				return []string{val}
			}
		}
	}
	return []string{}
}

// pickObjList returns the first present candidate as a list of objects; a
// bare object becomes a one-element list, anything else becomes empty.
func pickObjList(raw map[string]interface{}, keys ...string) []map[string]interface{} {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case []interface{}:
			out := make([]map[string]interface{}, 0, len(val))
			for _, item := range val {
				if obj, ok := item.(map[string]interface{}); ok {
					out = append(out, obj)
				}
			}
			return out
		case map[string]interface{}:
			return []map[string]interface{}{val}
		}
	}
	return []map[string]interface{}{}
}

// pickObj returns the first present candidate that is an object, nil if none.
func pickObj(raw map[string]interface{}, keys ...string) map[string]interface{} {
	for _, key := range keys {
		if obj, ok := raw[key].(map[string]interface{}); ok {
			return obj
		}
	}
	return nil
}

// pickID is pickStr with a freshly generated identifier as the default, for
// entities that must always be addressable (list row keys).
func pickID(raw map[string]interface{}, keys ...string) string {
	if v := pickStr(raw, keys...); v != "" {
		return v
	}
	return uuid.NewString()
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func asObject(raw interface{}) map[string]interface{} {
	obj, _ := raw.(map[string]interface{})
	return obj
}
