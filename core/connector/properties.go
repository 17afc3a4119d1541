package connector

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

const (
	propertiesDelimiter = ";"
	keyValueDelimiter   = ":"
)

// Property is a single key/value listener setting.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParseProperties splits raw into key/value pairs. Entries that do not split into
// exactly a non-empty key and a value are returned in malformed. Empty entries are skipped.
// Trailing empty parts do not count, so "port:" is malformed and "maxThreads:200:" is not.
func ParseProperties(raw string) (props []Property, malformed []string) {
	for _, entry := range strings.Split(raw, propertiesDelimiter) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := splitTrimmed(entry, keyValueDelimiter)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			malformed = append(malformed, entry)
			continue
		}
		props = append(props, Property{
			Key:   strings.TrimSpace(parts[0]),
			Value: strings.TrimSpace(parts[1]),
		})
	}
	return props, malformed
}

// splitTrimmed splits s around sep and drops trailing empty parts.
func splitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Apply parses raw and sets every well-formed pair on c. Malformed pairs and rejected
// values are logged and skipped. It returns the number of pairs applied.
func Apply(c *Connector, raw string, log *zap.Logger) int {
	props, malformed := ParseProperties(raw)

	for _, entry := range malformed {
		log.Warn("Ignoring connector property, incorrect number of elements",
			zap.String("property", entry))
	}

	for _, p := range props {
		if previous, ok := c.Property(p.Key); ok {
			log.Warn("Connector property set more than once, last value wins",
				zap.String("key", p.Key), zap.String("previous", previous))
		}
		err := c.SetProperty(p.Key, p.Value)
		switch {
		case errors.Is(err, ErrUnsupported):
			log.Warn("Connector property has no listener equivalent, kept as is",
				zap.String("key", p.Key), zap.String("value", p.Value))
		case err != nil:
			log.Warn("Connector property value rejected", zap.String("key", p.Key), zap.Error(err))
		default:
			log.Info("Setting connector property", zap.String("key", p.Key), zap.String("value", p.Value))
		}
	}

	return len(props)
}
