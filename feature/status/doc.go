// Package status reports the state of the standalone host.
//
// # HTTP Endpoints
//
//   - GET <status path>/status : lifecycle state, deployment, connector properties,
//     context property names and datasource health. Responds 503 unless the server is
//     running and every datasource is healthy.
//   - GET <status path>/metrics : Prometheus exposition (when metrics are enabled).
//
// Both are protected by the status API key when one is configured. Context property
// values are never reported, only their names.
package status
