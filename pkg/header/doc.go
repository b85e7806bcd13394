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

// Package header provides the common envelope for documents emitted by the
// CLI and the API server.
//
// # Header Structure
//
//	type Header struct {
//	    Kind       Kind              `json:"kind" yaml:"kind"`             // "Comparison" or "ValidationResult"
//	    APIVersion string            `json:"apiVersion" yaml:"apiVersion"` // semvercmp.nvidia.com/v1
//	    Metadata   map[string]string `json:"metadata" yaml:"metadata"`     // timestamp, version
//	}
//
// Documents embed Header inline:
//
//	type Comparison struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    ...
//	}
//
//	c := &Comparison{}
//	c.Init(header.KindComparison, version)
//
// Serialized:
//
//	kind: Comparison
//	apiVersion: semvercmp.nvidia.com/v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// Timestamps use RFC3339 in UTC.
package header
