package connector

import (
	"errors"
	"fmt"
	"math"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
)

// Protocol is the only protocol the listener speaks.
const Protocol = "HTTP/1.1"

// ErrUnsupported is returned by SetProperty for keys without a listener equivalent.
var ErrUnsupported = errors.New("unsupported connector property")

// Connector holds the listener address, the Fiber configuration derived from it,
// and every property that was set on it.
type Connector struct {
	Address     string
	Port        int
	Compression bool

	config     fiber.Config
	properties []Property
}

// New creates a connector bound to port on all interfaces.
func New(port int) *Connector {
	return &Connector{
		Port: port,
		config: fiber.Config{
			DisableStartupMessage: true,
		},
	}
}

// SetProperty records key=value and translates it onto the listener configuration.
// The property is recorded even when an error is returned.
func (c *Connector) SetProperty(key, value string) error {
	c.record(key, value)

	var err error
	switch strings.ToLower(key) {
	case "port":
		var n int
		if n, err = toInt(value); err == nil {
			c.Port = n
		}
	case "address":
		c.Address = value
	case "maxthreads", "maxconnections":
		var n int
		if n, err = toInt(value); err == nil {
			if n <= 0 {
				n = fiber.DefaultConcurrency
			}
			c.config.Concurrency = n
		}
	case "connectiontimeout":
		c.config.ReadTimeout, err = millis(value)
	case "keepalivetimeout":
		c.config.IdleTimeout, err = millis(value)
	case "writetimeout":
		c.config.WriteTimeout, err = millis(value)
	case "maxkeepaliverequests":
		var n int
		if n, err = toInt(value); err == nil {
			c.config.DisableKeepalive = n == 1
		}
	case "maxpostsize":
		var n int
		if n, err = toInt(value); err == nil {
			if n < 0 {
				n = math.MaxInt32
			}
			c.config.BodyLimit = n
		}
	case "maxhttpheadersize":
		c.config.ReadBufferSize, err = toInt(value)
	case "server":
		c.config.ServerHeader = value
	case "compression":
		c.Compression, err = compression(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, key)
	}

	if err != nil {
		return fmt.Errorf("connector property %s=%q: %w", key, value, err)
	}
	return nil
}

// Property returns the last value set for key.
func (c *Connector) Property(key string) (string, bool) {
	for i := len(c.properties) - 1; i >= 0; i-- {
		if c.properties[i].Key == key {
			return c.properties[i].Value, true
		}
	}
	return "", false
}

// Properties returns the properties in the order they were first set.
func (c *Connector) Properties() []Property {
	out := make([]Property, len(c.properties))
	copy(out, c.properties)
	return out
}

// FiberConfig returns the Fiber configuration for the listener.
func (c *Connector) FiberConfig() fiber.Config {
	return c.config
}

// Addr returns the host:port the listener binds to.
func (c *Connector) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

func (c *Connector) String() string {
	if c.Address != "" {
		return fmt.Sprintf("Connector[%s-%s-%d]", Protocol, c.Address, c.Port)
	}
	return fmt.Sprintf("Connector[%s-%d]", Protocol, c.Port)
}

func (c *Connector) record(key, value string) {
	for i := range c.properties {
		if c.properties[i].Key == key {
			c.properties[i].Value = value
			return
		}
	}
	c.properties = append(c.properties, Property{Key: key, Value: value})
}

// toInt converts value to an int. Unlike cast, blank text is an error rather than 0.
func toInt(value string) (int, error) {
	if strings.TrimSpace(value) == "" {
		return 0, errors.New("empty value")
	}
	return cast.ToIntE(value)
}

// millis converts a millisecond count to a duration. Negative values mean no timeout.
func millis(value string) (time.Duration, error) {
	n, err := toInt(value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, nil
	}
	return time.Duration(n) * time.Millisecond, nil
}

func compression(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "force", "true":
		return true, nil
	case "off", "false":
		return false, nil
	}
	// A number is the minimum response size to compress, which enables compression.
	if _, err := toInt(value); err != nil {
		return false, fmt.Errorf("expected on, off, force or a size: %w", err)
	}
	return true, nil
}
