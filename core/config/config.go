package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"

	"webapp-standalone/core/logger"
	"webapp-standalone/core/server"
	"webapp-standalone/core/settings"
	"webapp-standalone/core/storage"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds the listener and deployment configuration.
	Server server.Config
	// Log holds configuration for the logger.
	Log logger.Config
	// Storage holds configuration for bucket deployments.
	Storage storage.Config
}

// LoadConfig loads the .env file found in path, then resolves every field of Config.
func LoadConfig(path string, r *settings.Resolver) (*Config, error) {
	// Missing .env is the normal case in production.
	_ = godotenv.Load(filepath.Join(path, ".env"))

	var cfg Config
	if err := resolveValues(r, reflect.ValueOf(&cfg).Elem()); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Setting is a resolved setting as reported by Describe.
type Setting struct {
	Name  string
	Value string
	Set   bool
}

// Describe lists every setting Config knows about with its resolved raw value.
func Describe(r *settings.Resolver) []Setting {
	var out []Setting
	walkTags(reflect.TypeOf(Config{}), func(name, def string) {
		value, ok := r.Lookup(name)
		if !ok {
			value = def
		}
		out = append(out, Setting{Name: name, Value: value, Set: ok})
	})
	return out
}

func walkTags(t reflect.Type, fn func(name, def string)) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type.Kind() == reflect.Struct {
			walkTags(field.Type, fn)
			continue
		}
		if name := field.Tag.Get("setting"); name != "" {
			fn(name, field.Tag.Get("default"))
		}
	}
}

// resolveValues uses reflection to iterate over the struct and fill each field tagged
// with 'setting' from the resolver, falling back to its 'default' tag.
func resolveValues(r *settings.Resolver, v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := v.Field(i)

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			if err := resolveValues(r, fv); err != nil {
				return err
			}
			continue
		}

		name := field.Tag.Get("setting")
		if name == "" {
			continue
		}

		def, hasDefault := field.Tag.Lookup("default")

		if field.Type.Kind() == reflect.Int {
			n, ok, err := r.LookupInt(name)
			if err != nil {
				return err
			}
			if !ok {
				if !hasDefault {
					continue
				}
				if n, err = strconv.Atoi(def); err != nil {
					return fmt.Errorf("setting %s: invalid default %q: %w", name, def, err)
				}
			}
			fv.SetInt(int64(n))
			continue
		}

		raw, ok := r.Lookup(name)
		if !ok {
			if !hasDefault {
				continue
			}
			raw = def
		}

		switch field.Type.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("setting %s: %q is not a boolean: %w", name, raw, err)
			}
			fv.SetBool(b)
		default:
			return fmt.Errorf("setting %s: unsupported field type %s", name, field.Type)
		}
	}

	return nil
}
