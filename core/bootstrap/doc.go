// Package bootstrap assembles a standalone host from resolved configuration:
// it creates the staging directory, projects context properties, configures the
// connector, deploys the application, binds its datasources and mounts the features
// on the listener.
package bootstrap
