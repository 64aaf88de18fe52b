// Package envexpand substitutes environment variable references in strings of
// arbitrarily nested JSON-like values.
//
// Both ${NAME} and bare $NAME forms are recognized, where NAME matches
// [A-Z_][A-Z0-9_]*. A single alternation handles both forms so they never
// overlap in what they consume; "${FOO}BAR" expands FOO without a bare-form
// partial match corrupting it.
//
// References to unset variables are left in place as literal text rather than
// failing or expanding to an empty string. A deployed config containing a
// literal ${VAR} token is visibly diagnosable by the consuming assistant,
// whereas a silently emptied value is not.
package envexpand

import (
	"os"
	"regexp"
	"strings"
)

// tokenPattern matches ${NAME} or bare $NAME. The braced alternative comes
// first so it consumes the whole token before the bare form can see it.
var tokenPattern = regexp.MustCompile(`\$\{([A-Z_][A-Z0-9_]*)\}|\$([A-Z_][A-Z0-9_]*)`)

// LookupFunc reports the value of an environment variable and whether it is set.
// It has the signature of os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// String expands environment variable references in s using the process
// environment. Unset variables leave their token unchanged.
func String(s string) string {
	return StringWith(s, os.LookupEnv)
}

// StringWith expands environment variable references in s using the given
// lookup function.
func StringWith(s string, lookup LookupFunc) string {
	if !strings.ContainsRune(s, '$') {
		return s
	}

	return tokenPattern.ReplaceAllStringFunc(s, func(token string) string {
		name := token[1:]
		if strings.HasPrefix(name, "{") {
			name = name[1 : len(name)-1]
		}
		if value, ok := lookup(name); ok {
			return value
		}
		return token
	})
}

// Value recursively expands environment variable references in every string
// contained in v, using the process environment.
//
// Strings are expanded, sequences and mappings are walked element-wise, and
// all other values pass through unchanged. The input is never mutated; the
// result is a new value tree structurally isomorphic to the input.
func Value(v any) any {
	return ValueWith(v, os.LookupEnv)
}

// ValueWith is Value with an explicit lookup function.
func ValueWith(v any, lookup LookupFunc) any {
	switch val := v.(type) {
	case string:
		return StringWith(val, lookup)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ValueWith(elem, lookup)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = ValueWith(elem, lookup)
		}
		return out
	case []string:
		out := make([]string, len(val))
		for i, s := range val {
			out[i] = StringWith(s, lookup)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, s := range val {
			out[k] = StringWith(s, lookup)
		}
		return out
	default:
		return v
	}
}

// Strings returns a copy of the slice with every element expanded.
// Returns nil for a nil input so field absence survives expansion.
func Strings(ss []string, lookup LookupFunc) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = StringWith(s, lookup)
	}
	return out
}

// StringMap returns a copy of the map with every value expanded.
// Returns nil for a nil input so field absence survives expansion.
func StringMap(m map[string]string, lookup LookupFunc) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = StringWith(v, lookup)
	}
	return out
}
