package server

import "time"

// Config holds configuration for the listener and the deployed application.
type Config struct {
	Standalone StandaloneConfig
	Connector  ConnectorConfig
}

// StandaloneConfig holds the TOMCAT_STANDALONE_* settings.
type StandaloneConfig struct {
	// Port is the port where the listener binds.
	Port int `setting:"TOMCAT_STANDALONE_PORT" default:"8080" validate:"min=0,max=65535"`
	// AppBase is the parent directory of the private staging directory. Empty means the working directory.
	AppBase string `setting:"TOMCAT_STANDALONE_APP_BASE" default:""`
	// ContextPath is the URL prefix of the deployed application.
	ContextPath string `setting:"TOMCAT_STANDALONE_CONTEXT_PATH" default:"/"`
	// ContextDirectory is an external application to deploy instead of the embedded one.
	ContextDirectory string `setting:"TOMCAT_STANDALONE_CONTEXT_DIRECTORY" default:""`
	// StatusPath is the prefix of the status and metrics endpoints. Empty disables them.
	StatusPath string `setting:"TOMCAT_STANDALONE_STATUS_PATH" default:"/_standalone"`
	// StatusAPIKey protects the status endpoints when set.
	StatusAPIKey string `setting:"TOMCAT_STANDALONE_STATUS_API_KEY" default:""`
	// Metrics enables the Prometheus endpoint under StatusPath.
	Metrics bool `setting:"TOMCAT_STANDALONE_METRICS" default:"true"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `setting:"TOMCAT_STANDALONE_SHUTDOWN_TIMEOUT" default:"10" validate:"min=0"`
}

// ConnectorConfig holds the TOMCAT_CONNECTOR_* settings.
type ConnectorConfig struct {
	// Properties is a ';' separated list of 'key:value' listener properties.
	Properties string `setting:"TOMCAT_CONNECTOR_PROPERTIES" default:""`
}

// ShutdownTimeout returns the graceful shutdown bound as a duration.
func (c StandaloneConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
