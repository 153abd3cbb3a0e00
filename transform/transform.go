package transform

import (
	"maps"
	"strings"

	v "github.com/Gobd/fieldvalidation"
)

// TrimSpace runs [strings.TrimSpace] on every string value.
func TrimSpace(values v.Values) v.Values {
	return StringFunc(values, strings.TrimSpace)
}

// ToLower runs [strings.ToLower] on every string value.
func ToLower(values v.Values) v.Values {
	return StringFunc(values, strings.ToLower)
}

// StripSpaces removes all whitespace from the named string fields, for
// input such as card numbers typed in groups.
func StripSpaces(fields ...string) func(v.Values) v.Values {
	return func(values v.Values) v.Values {
		out := maps.Clone(values)
		for _, name := range fields {
			if s, ok := out[name].(string); ok {
				out[name] = strings.Join(strings.Fields(s), "")
			}
		}
		return out
	}
}

// StringFunc applies f to every string value. Other values are copied as is.
func StringFunc(values v.Values, f func(string) string) v.Values {
	out := make(v.Values, len(values))
	for k, val := range values {
		if s, ok := val.(string); ok {
			out[k] = f(s)
			continue
		}
		out[k] = val
	}
	return out
}

// Multi runs fns in order, feeding each the previous result.
func Multi(values v.Values, fns ...func(v.Values) v.Values) v.Values {
	out := maps.Clone(values)
	if out == nil {
		out = v.Values{}
	}
	for _, f := range fns {
		out = f(out)
	}
	return out
}
