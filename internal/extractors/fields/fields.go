// Package fields provides the shared low-level helpers of the extraction
// strategies: alias-table field resolution, lenient amount parsing,
// delimiter splitting and fenced-block scanning.
package fields

import (
	"regexp"
	"strconv"
	"strings"
)

// decimalRe matches the first decimal-number substring of a price string.
var decimalRe = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// listDelims are the delimiters a multi-value source field may use:
// ASCII comma, full-width comma and ideographic comma. These are
// behaviour, not style — do not extend the set casually.
const listDelims = ",，、"

// Resolve returns the value of the first present key in obj, in the
// given priority order. A key mapped to nil counts as absent, but zero
// values (0, "") are present: absence is explicit here, never inferred
// from falsiness.
func Resolve(obj map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// ResolveString resolves an alias chain to a trimmed string. Numeric
// values are formatted; other types yield an empty string.
func ResolveString(obj map[string]any, keys ...string) string {
	v, ok := Resolve(obj, keys...)
	if !ok {
		return ""
	}
	return Stringify(v)
}

// Stringify converts a decoded JSON value to its string form.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Amount parses a price field that may be numeric or a string with
// currency decoration ("¥199.50", "199元"). String values yield the
// first decimal-number substring; a string without digits yields 0
// rather than an error.
func Amount(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		m := decimalRe.FindString(t)
		if m == "" {
			return 0
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// SplitList splits a delimiter-separated source field on ASCII comma,
// full-width comma and ideographic comma, dropping blank entries.
func SplitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(listDelims, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// fencedRe matches one fenced code block, optionally tagged json.
// Non-greedy so repeated blocks within one message each match.
var fencedRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)```")

// FencedBlocks returns the contents of every fenced code block in text,
// in source order. Returns nil when the text has no fenced block.
func FencedBlocks(text string) []string {
	matches := fencedRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		if body := strings.TrimSpace(m[1]); body != "" {
			blocks = append(blocks, body)
		}
	}
	return blocks
}
