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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// CompareHandlerTimeout is the timeout for a single comparison request.
	CompareHandlerTimeout = 5 * time.Second

	// ValidateHandlerTimeout is the timeout for bulk validation requests.
	ValidateHandlerTimeout = 15 * time.Second
)

// Request limits.
const (
	// MaxBulkVersions is the maximum number of versions accepted by one
	// validation request.
	MaxBulkVersions = 1000

	// MaxRequestBodyBytes caps the size of POST bodies read by handlers.
	MaxRequestBodyBytes = 1 << 20

	// ValidateConcurrency bounds the number of versions validated in parallel.
	ValidateConcurrency = 8
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server rate limiting.
const (
	// ServerRateLimit is the sustained number of requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket size.
	ServerRateLimitBurst = 200

	// ServerMaxHeaderBytes limits request header size.
	ServerMaxHeaderBytes = 1 << 20
)

// HTTP client settings for fetching remote version lists.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPMaxResponseBytes caps the size of a downloaded document.
	HTTPMaxResponseBytes = 10 << 20
)
