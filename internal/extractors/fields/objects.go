package fields

import "encoding/json"

// Objects decodes a structured-format candidate into its object list.
// Both a single JSON object and an array of objects are accepted;
// non-object array elements are skipped. Invalid syntax yields nil —
// a malformed candidate simply produces nothing.
func Objects(raw string) []map[string]any {
	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		objs := make([]map[string]any, 0, len(arr))
		for _, el := range arr {
			var obj map[string]any
			if err := json.Unmarshal(el, &obj); err == nil && obj != nil {
				objs = append(objs, obj)
			}
		}
		if len(objs) == 0 {
			return nil
		}
		return objs
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil && obj != nil {
		return []map[string]any{obj}
	}
	return nil
}

// ObjectList resolves an alias chain to a slice of objects, for nested
// collections like customer cases.
func ObjectList(obj map[string]any, keys ...string) []map[string]any {
	v, ok := Resolve(obj, keys...)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, el := range arr {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// StringList resolves an alias chain to a list of strings. A plain
// string value is split on the list delimiters; an array value keeps
// its elements in order.
func StringList(obj map[string]any, keys ...string) []string {
	v, ok := Resolve(obj, keys...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		return SplitList(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, el := range t {
			if s := Stringify(el); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// StringMap resolves an alias chain to a string-to-string mapping, for
// fields like product specifications.
func StringMap(obj map[string]any, keys ...string) map[string]string {
	v, ok := Resolve(obj, keys...)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, el := range m {
		if s := Stringify(el); s != "" {
			out[k] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
