package server_test

import (
	"testing"
	"time"

	"webapp-standalone/core/server"

	"github.com/stretchr/testify/assert"
)

func TestStandaloneConfig_ShutdownTimeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"Default", 10, 10 * time.Second},
		{"Immediate", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.StandaloneConfig{ShutdownTimeoutSeconds: tt.seconds}
			assert.Equal(t, tt.want, c.ShutdownTimeout())
		})
	}
}
