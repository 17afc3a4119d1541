// Package database binds the datasources a deployed application declares in its descriptor.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to open MySQL or
// SQLite connections from a descriptor Resource, and a Registry that keeps them by name
// for the lifetime of the process.
//
// # Connect
//
// Connect opens a resource, applies pool settings and pings it with a timeout.
//
// # Registry
//
// Resources that fail to open are kept as unhealthy entries rather than stopping the
// deployment; Ping reports the state of every entry for the status endpoint.
//
// # Usage
//
//	reg := database.NewRegistry(database.Connect)
//	if err := reg.Bind(res); err != nil {
//	    log.Warn("Resource unavailable", zap.Error(err))
//	}
//	defer reg.Close()
package database
