package connector_test

import (
	"testing"

	"webapp-standalone/core/connector"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseProperties(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		props     []connector.Property
		malformed []string
	}{
		{
			name: "TwoPairs",
			raw:  "maxThreads:200;acceptCount:50",
			props: []connector.Property{
				{Key: "maxThreads", Value: "200"},
				{Key: "acceptCount", Value: "50"},
			},
		},
		{
			name:      "MissingDelimiter",
			raw:       "badentry;key:val",
			props:     []connector.Property{{Key: "key", Value: "val"}},
			malformed: []string{"badentry"},
		},
		{
			name:      "TooManyParts",
			raw:       "a:b:c;server:test",
			props:     []connector.Property{{Key: "server", Value: "test"}},
			malformed: []string{"a:b:c"},
		},
		{
			name:      "EmptyKey",
			raw:       ":value",
			malformed: []string{":value"},
		},
		{
			name:  "EmptyEntriesAndSpaces",
			raw:   " maxThreads : 10 ;;",
			props: []connector.Property{{Key: "maxThreads", Value: "10"}},
		},
		{
			name:      "EmptyValue",
			raw:       "port:;server:test",
			props:     []connector.Property{{Key: "server", Value: "test"}},
			malformed: []string{"port:"},
		},
		{
			name:  "TrailingDelimiter",
			raw:   "maxThreads:200:",
			props: []connector.Property{{Key: "maxThreads", Value: "200"}},
		},
		{
			name: "Empty",
			raw:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, malformed := connector.ParseProperties(tt.raw)
			assert.Equal(t, tt.props, props)
			assert.Equal(t, tt.malformed, malformed)
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("AppliesEveryWellFormedPair", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		c := connector.New(8080)

		applied := connector.Apply(c, "maxThreads:200;acceptCount:50", zap.New(core))

		assert.Equal(t, 2, applied)
		assert.Len(t, c.Properties(), 2)
		assert.Equal(t, 200, c.FiberConfig().Concurrency)
		assert.Equal(t, 1, logs.FilterMessage("Connector property has no listener equivalent, kept as is").Len())
	})

	t.Run("SkipsMalformed", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		c := connector.New(8080)

		applied := connector.Apply(c, "badentry;key:val", zap.New(core))

		assert.Equal(t, 1, applied)
		assert.Equal(t, []connector.Property{{Key: "key", Value: "val"}}, c.Properties())
		assert.Equal(t, 1, logs.FilterMessage("Ignoring connector property, incorrect number of elements").Len())
	})

	t.Run("RejectedValueIsStillRecorded", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		c := connector.New(8080)

		applied := connector.Apply(c, "connectionTimeout:soon", zap.New(core))

		assert.Equal(t, 1, applied)
		value, ok := c.Property("connectionTimeout")
		assert.True(t, ok)
		assert.Equal(t, "soon", value)
		assert.Equal(t, 1, logs.FilterMessage("Connector property value rejected").Len())
	})
	t.Run("EmptyValueKeepsPort", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		c := connector.New(8080)

		applied := connector.Apply(c, "port:;maxThreads:200:", zap.New(core))

		assert.Equal(t, 1, applied)
		assert.Equal(t, ":8080", c.Addr())
		assert.Equal(t, 200, c.FiberConfig().Concurrency)
		assert.Equal(t, []connector.Property{{Key: "maxThreads", Value: "200"}}, c.Properties())
		assert.Equal(t, 1, logs.FilterMessage("Ignoring connector property, incorrect number of elements").Len())
	})

	t.Run("RepeatedKey", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		c := connector.New(8080)

		applied := connector.Apply(c, "server:a;server:b", zap.New(core))

		assert.Equal(t, 2, applied)
		assert.Equal(t, "b", c.FiberConfig().ServerHeader)
		assert.Equal(t, 1, logs.FilterMessage("Connector property set more than once, last value wins").Len())
	})
}
