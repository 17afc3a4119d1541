// Package logger builds the zap logger shared by the standalone host.
//
// LOG_LEVEL picks the minimum level and LOG_FORMAT the encoding (json for log shippers,
// console for a terminal). Startup messages such as "Going to use appBase" and
// "Going to deploy" are written through it, as are per-request lines.
//
// Request handlers pass their logger through WithRayID so every line about one
// request carries the same ray_id as the X-Ray-ID response header.
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Rejected private path", zap.String("path", c.Path()))
package logger
