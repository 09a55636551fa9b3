package ui

import (
	"sort"
	"strings"

	"github.com/shawn-sandy/acss/internal/errors"
)

// Styles is a flat mapping of style property to value. Values are scalar
// strings; there is no nesting and no array forms.
type Styles map[string]string

// MergeStyles combines a default style configuration with an override
// configuration. The result is a flat, single-level union: a key present in
// exactly one input passes through unchanged, and on collision the override
// value wins. Nil inputs are treated as empty.
func MergeStyles(defaults, overrides Styles) Styles {
	merged := make(Styles, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// styleString serializes a style mapping into a deterministic inline style
// value, keys sorted.
func styleString(s Styles) string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
	}
	return b.String()
}

// coerceStyles validates the shape of a styles value from a property bag.
// Accepted shapes are Styles, map[string]string, map[string]any with string
// values, and nil. Anything else (nested maps, slices, non-string scalars)
// is a MalformedStyles error, rejected rather than coerced.
func coerceStyles(key string, value any) (Styles, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Styles:
		return v, nil
	case map[string]string:
		return Styles(v), nil
	case map[string]any:
		out := make(Styles, len(v))
		for name, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return nil, errors.New(errors.CodeMalformedStyles).
					WithDetailf("%s[%q] has unsupported shape %T; style values must be strings", key, name, raw)
			}
			out[name] = s
		}
		return out, nil
	default:
		return nil, errors.New(errors.CodeMalformedStyles).
			WithDetailf("%s must be a flat string map, got %T", key, value)
	}
}
