// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides a reusable HTTP server with the operational
// plumbing shared by semvercmp services.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id, UUID)
//   - API version negotiation via vendor media types
//   - Panic recovery
//   - Prometheus RED metrics and a /metrics endpoint
//   - Health and readiness probes
//   - Graceful shutdown on SIGINT and SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("semvercmpd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/compare": svc.HandleCompare,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Handlers registered through WithHandler run behind the middleware chain
// (metrics, version, request ID, panic recovery, rate limit, logging).
// /health, /ready and /metrics are served without rate limiting. A root
// handler listing the routes is added unless "/" is supplied.
//
// # Configuration
//
// NewConfig applies defaults from pkg/defaults and these environment overrides:
//
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window (default 30)
//   - MAX_BULK_REQUESTS: items accepted by bulk endpoints
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr, which
// render an ErrorResponse:
//
//	{
//	  "code": "INVALID_FORMAT",
//	  "message": "invalid version for argument a",
//	  "details": {"argument": "a", "value": "1.01.0", "reason": "leading zero in numeric identifier"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
//
// HTTPStatusFromCode maps error codes from pkg/errors to HTTP statuses.
package server
