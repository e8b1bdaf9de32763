package config

import (
	"fmt"
	"strconv"
	"strings"
)

// decoder reads typed values from a nested map, collecting type errors.
// Strings are converted where the environment layer supplies them.
type decoder struct {
	m    map[string]any
	errs []error
}

func (d *decoder) mismatch(path, expected string, v any) {
	d.errs = append(d.errs, &TypeError{Path: path, Expected: expected, Actual: typeName(v)})
}

func (d *decoder) getString(path string) string {
	v, ok := getPath(d.m, path)
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case int, int64, float64, bool:
		return fmt.Sprint(val)
	default:
		d.mismatch(path, "string", v)
		return ""
	}
}

func (d *decoder) getInt(path string) int {
	v, ok := getPath(d.m, path)
	if !ok || v == nil {
		return 0
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	d.mismatch(path, "int", v)
	return 0
}

func (d *decoder) getBool(path string) bool {
	v, ok := getPath(d.m, path)
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return b
		}
	}
	d.mismatch(path, "bool", v)
	return false
}

// stringSlice accepts a list or a comma-separated string.
func (d *decoder) getStringSlice(path string) []string {
	v, ok := getPath(d.m, path)
	if !ok || v == nil {
		return nil
	}
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				d.mismatch(path, "[]string", v)
				return nil
			}
			out = append(out, s)
		}
		return out
	case string:
		var out []string
		for _, s := range strings.Split(val, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		d.mismatch(path, "[]string", v)
		return nil
	}
}

func (d *decoder) getStringMap(path string) map[string]string {
	v, ok := getPath(d.m, path)
	if !ok || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		d.mismatch(path, "map", v)
		return nil
	}
	out := make(map[string]string, len(m))
	for k, item := range m {
		s, ok := item.(string)
		if !ok {
			d.mismatch(path+"."+k, "string", item)
			continue
		}
		out[k] = s
	}
	return out
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	current := any(m)
	for _, part := range strings.Split(path, ".") {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = cm[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
