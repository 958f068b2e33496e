// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - The service welcome message
//   - Health checks
//   - Prometheus metrics
//   - The API description page
//
// A cross-origin policy is applied to every request.
package http
