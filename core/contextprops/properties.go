package contextprops

import (
	"sort"
	"strings"
)

// Prefix marks environment variables that are projected into context properties.
const Prefix = "CONTEXT_"

// Properties maps property names to values.
type Properties map[string]string

// Project returns the CONTEXT_ prefixed entries of environ (as returned by os.Environ)
// with the prefix stripped. Keys and values are not validated.
func Project(environ []string) Properties {
	props := Properties{}
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, Prefix) {
			continue
		}
		props[strings.TrimPrefix(key, Prefix)] = value
	}
	return props
}

// Set stores value under key and reports whether an existing, different value was replaced.
func (p Properties) Set(key, value string) bool {
	old, exists := p[key]
	p[key] = value
	return exists && old != value
}

// Merge copies every entry of other into p. Entries of other win; the keys whose
// value changed are returned sorted.
func (p Properties) Merge(other Properties) []string {
	var replaced []string
	for k, v := range other {
		if p.Set(k, v) {
			replaced = append(replaced, k)
		}
	}
	sort.Strings(replaced)
	return replaced
}

// Names returns the sorted property names.
func (p Properties) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Expand replaces every ${name} in s with the value of name.
// References to unknown names and unterminated references are kept verbatim.
func (p Properties) Expand(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}

	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.IndexByte(s[start+2:], '}')
		if end < 0 {
			b.WriteString(s)
			break
		}
		end += start + 2

		b.WriteString(s[:start])
		name := s[start+2 : end]
		if value, ok := p[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(s[start : end+1])
		}
		s = s[end+1:]
	}
	return b.String()
}
