// Package webapp serves the deployed application.
//
// The application is mounted under its context path. Files are served from the
// deployment's document base with Fiber's filesystem middleware, using the descriptor's
// welcome file for directories and its notFound file (if any) for unknown paths.
//
// # HTTP Endpoints
//
//   - GET <context>/<parametersPath> : the expanded descriptor parameters as JSON.
//   - GET <context>/* : static content.
//
// META-INF and WEB-INF are never served.
package webapp
