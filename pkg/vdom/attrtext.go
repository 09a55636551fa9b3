package vdom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// booleanAttrs render as bare attribute names when true and disappear when
// false.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if the attribute renders as a bare name.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// IsEventProp returns true for "on"-prefixed handler keys.
func IsEventProp(key string) bool {
	return strings.HasPrefix(key, "on") && len(key) > 2
}

// AttrText converts a prop value to its attribute text. The second return
// is false when the prop produces no attribute at all: nil values, false
// booleans on boolean attributes, event handlers, and other function
// values. Non-boolean attributes with bool values render "true"/"false"
// (aria-* state attributes rely on this).
func AttrText(key string, value any) (string, bool) {
	if value == nil || IsEventProp(key) {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if booleanAttrs[key] {
			if v {
				return "", true
			}
			return "", false
		}
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		// Pass-through values of other shapes are stringified; functions
		// never become attributes.
		if reflect.ValueOf(value).Kind() == reflect.Func {
			return "", false
		}
		return fmt.Sprintf("%v", value), true
	}
}
