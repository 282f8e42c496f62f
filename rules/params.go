package rules

import (
	"fmt"
	"reflect"
	"strconv"
)

// Float returns a pointer to v, for the optional bound fields.
func Float(v float64) *float64 { return &v }

// floatValue coerces numeric kinds and numeric strings to float64.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// intValue coerces integer kinds, integral floats and base-10 strings.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	case float32:
		if float32(int64(n)) == n {
			return int64(n), true
		}
		return 0, false
	case float64:
		if float64(int64(n)) == n {
			return int64(n), true
		}
		return 0, false
	default:
		f, ok := floatValue(v)
		if !ok || float64(int64(f)) != f {
			return 0, false
		}
		return int64(f), true
	}
}

func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}

// equalValues compares loosely by printed representation, or strictly by
// type-aware deep equality.
func equalValues(a, b any, strict bool) bool {
	if strict {
		return reflect.DeepEqual(a, b)
	}
	if af, aok := floatValue(a); aok {
		if bf, bok := floatValue(b); bok {
			return af == bf
		}
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// Parameter accessors for alias factories. YAML and JSON decode numbers into
// assorted Go types, so everything goes through the coercions above.

func paramString(p map[string]any, key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func paramBool(p map[string]any, key string) (bool, bool) {
	v, ok := p[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func paramFloat(p map[string]any, key string) (*float64, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}
	f, ok := floatValue(v)
	if !ok {
		return nil, fmt.Errorf("parameter %q: expected number, got %T", key, v)
	}
	return &f, nil
}

func paramInt(p map[string]any, key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, nil
	}
	i, ok := intValue(v)
	if !ok {
		return 0, fmt.Errorf("parameter %q: expected integer, got %T", key, v)
	}
	return int(i), nil
}

func paramStrings(p map[string]any, key string) []string {
	v, ok := p[key]
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}

func paramValues(p map[string]any, key string) []any {
	v, ok := p[key]
	if !ok {
		return nil
	}
	if list, ok := v.([]any); ok {
		return list
	}
	return nil
}

func paramMessage(p map[string]any) string {
	s, _ := paramString(p, "message")
	return s
}
