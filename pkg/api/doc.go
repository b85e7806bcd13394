// Package api provides the HTTP API layer for the semvercmp service.
//
// This package is a thin wrapper around pkg/server. It configures structured
// logging, builds a comparison.Service and registers its handlers; lifecycle,
// middleware, health probes and metrics are left to pkg/server.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/compare?a=1.0.0&b=2.0.0 - Compare two versions
//   - POST /v1/compare - Compare two versions from a {"a", "b"} body (JSON/YAML)
//   - GET /v1/validate?version=1.0.0&version=1.0 - Validate one or more versions
//   - POST /v1/validate - Validate a {"versions": [...]} body (JSON/YAML)
//
// System endpoints:
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl 'http://localhost:8080/v1/compare?a=1.0.0-alpha&b=1.0.0'
//
// returns a Comparison document whose "result" field is -1.
//
// # Configuration
//
// The server reads PORT, SHUTDOWN_TIMEOUT_SECONDS, MAX_BULK_REQUESTS and
// LOG_LEVEL from the environment. Version information is set at build time:
//
//	go build -ldflags="-X 'github.com/NVIDIA/semvercmp/pkg/api.version=1.0.0'"
package api
