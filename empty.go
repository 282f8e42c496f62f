package validkit

import "reflect"

// IsEmpty is the default emptiness predicate: nil, an empty string, an empty
// slice/map/array, or a nil pointer/interface. Whitespace-only strings are
// not empty; trim first with a filter rule if that matters. Individual rules
// can override the predicate via Rule.IsEmpty.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	default:
		return false
	}
}
