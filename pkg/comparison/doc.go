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

// Package comparison exposes version comparison and validation as a service
// shared by the semvercmp CLI and the semvercmpd API server.
//
// A Service wraps the semver package: Compare parses two strings and returns
// a Comparison document, and Validate checks a batch of strings concurrently
// and returns a ValidationResult with one entry per input in input order.
// Both documents carry a header.Header so they serialize with kind,
// apiVersion and metadata fields.
//
// Usage:
//
//	svc := comparison.New(comparison.WithVersion(version))
//	c, err := svc.Compare(ctx, "1.0.0-alpha", "1.0.0")
//	if err != nil {
//	    // err carries ErrCodeInvalidFormat and names the offending argument
//	}
//	fmt.Println(c.Result) // -1
//
// HTTP handlers:
//
//	GET  /v1/compare?a=1.0.0&b=2.0.0
//	POST /v1/compare          {"a": "1.0.0", "b": "2.0.0"}
//	GET  /v1/validate?version=1.0.0&version=1.0
//	POST /v1/validate         {"versions": ["1.0.0", "1.0"]}
//
// POST bodies may be JSON or YAML, selected by Content-Type. Responses are
// always JSON. An invalid version in a comparison yields 400 with code
// INVALID_FORMAT; invalid versions in a validation batch are reported per
// entry with 200.
//
// Metrics:
//
//	semvercmp_comparisons_total{result}
//	semvercmp_validations_total{outcome}
//	semvercmp_invalid_versions_total{reason}
//	semvercmp_validation_batch_size
package comparison
