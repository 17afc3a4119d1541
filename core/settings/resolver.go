package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Resolver looks up settings in the override tier first and the environment second.
type Resolver struct {
	v         *viper.Viper
	overrides map[string]string
}

// New creates a Resolver seeded with the given overrides.
func New(overrides map[string]string) *Resolver {
	v := viper.New()
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	r := &Resolver{v: v, overrides: make(map[string]string, len(overrides))}
	for name, value := range overrides {
		r.Set(name, value)
	}
	return r
}

// Set registers an override for name. Lookups ignore case, so a later Set of the
// same name in any spelling replaces it; Overrides reports the latest spelling.
func (r *Resolver) Set(name, value string) {
	for existing := range r.overrides {
		if strings.EqualFold(existing, name) {
			delete(r.overrides, existing)
		}
	}
	r.overrides[name] = value
	r.v.Set(name, value)
}

// Lookup returns the value of name and whether it was set in either tier.
func (r *Resolver) Lookup(name string) (string, bool) {
	if !r.v.IsSet(name) {
		return "", false
	}
	return r.v.GetString(name), true
}

// LookupInt resolves name and parses it as a decimal integer.
// An unset setting returns ok=false and no error.
func (r *Resolver) LookupInt(name string) (int, bool, error) {
	raw, ok := r.Lookup(name)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("setting %s: %q is not an integer: %w", name, raw, err)
	}
	return n, true, nil
}

// Overrides returns a copy of the override tier, keyed by name as it was set.
func (r *Resolver) Overrides() map[string]string {
	out := make(map[string]string, len(r.overrides))
	for k, v := range r.overrides {
		out[k] = v
	}
	return out
}

// ParseDefines turns KEY=VALUE arguments into an override map.
// The value may itself contain '='; an argument without '=' defines an empty value.
func ParseDefines(defines []string) (map[string]string, error) {
	out := make(map[string]string, len(defines))
	for _, d := range defines {
		key, value, _ := strings.Cut(d, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid define %q: empty name", d)
		}
		out[key] = value
	}
	return out, nil
}
