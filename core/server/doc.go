// Package server runs the embedded listener that hosts the deployed application.
//
// The listener is a Fiber application configured from a connector.Connector. Global
// middleware (RayID, request logging, metrics and optional compression) is installed
// when the Server is created; features then register their routes on App().
//
// # Lifecycle
//
// Run binds the TCP listener and blocks until its context is cancelled or the listener
// fails. The state moves forward only:
//
//	new -> starting -> running -> stopped
//	                \-> failed
//
// # Configuration
//
// The Config struct holds the TOMCAT_STANDALONE_* and TOMCAT_CONNECTOR_* settings.
package server
