// Package connector models the network listener of the standalone host.
//
// Listener settings are injected as a single string of the form
//
//	key1:value1;key2:value2
//
// (TOMCAT_CONNECTOR_PROPERTIES). Each well-formed pair is recorded on the Connector.
// Pairs named after a Tomcat HTTP connector attribute that has a Fiber equivalent are
// translated onto the Fiber configuration:
//
//	port, address                  bind address
//	maxThreads, maxConnections     Concurrency
//	connectionTimeout (ms)         ReadTimeout
//	keepAliveTimeout (ms)          IdleTimeout
//	writeTimeout (ms)              WriteTimeout
//	maxKeepAliveRequests           1 disables keep-alive
//	maxPostSize (bytes)            BodyLimit, negative is unlimited
//	maxHttpHeaderSize (bytes)      ReadBufferSize
//	server                         ServerHeader
//	compression                    on, force, off or a minimum size
//
// Other keys are kept and reported as unsupported; they never stop startup.
package connector
