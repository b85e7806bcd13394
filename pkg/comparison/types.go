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

package comparison

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/semvercmp/pkg/header"
	"github.com/NVIDIA/semvercmp/pkg/semver"
)

// ValidationStatus is the overall outcome of a validation request.
type ValidationStatus string

const (
	// ValidationStatusPass indicates every version was valid.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates at least one version was invalid.
	ValidationStatusFail ValidationStatus = "fail"
)

// CompareRequest is the POST body of a comparison request.
type CompareRequest struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// VersionList is the POST body of a validation request and the document
// format accepted by the CLI --file flag.
type VersionList struct {
	Versions []string `json:"versions" yaml:"versions" toml:"versions"`
}

// VersionInfo is the decomposed form of a valid version.
type VersionInfo struct {
	// Version is the canonical text of the version.
	Version semver.Version `json:"version" yaml:"version"`

	Major uint64 `json:"major" yaml:"major"`
	Minor uint64 `json:"minor" yaml:"minor"`
	Patch uint64 `json:"patch" yaml:"patch"`

	// Prerelease lists the pre-release identifiers in order.
	Prerelease []string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`

	// Build lists the build metadata identifiers. Never used for precedence.
	Build []string `json:"build,omitempty" yaml:"build,omitempty"`
}

// NewVersionInfo decomposes v.
func NewVersionInfo(v semver.Version) VersionInfo {
	info := VersionInfo{
		Version: v,
		Major:   v.Major(),
		Minor:   v.Minor(),
		Patch:   v.Patch(),
		Build:   v.Build(),
	}
	for _, id := range v.Prerelease() {
		info.Prerelease = append(info.Prerelease, id.String())
	}
	return info
}

// Comparison is the document produced by comparing two versions.
type Comparison struct {
	header.Header `json:",inline" yaml:",inline"`

	A VersionInfo `json:"a" yaml:"a"`
	B VersionInfo `json:"b" yaml:"b"`

	// Result is -1, 0 or 1.
	Result semver.Result `json:"result" yaml:"result"`

	// Relation is the word form of Result: less, equal or greater.
	Relation string `json:"relation" yaml:"relation"`
}

// String returns the numeric result, which is what the CLI prints by default.
func (c *Comparison) String() string {
	return c.Result.String()
}

// ValidationResult is the document produced by validating a list of versions.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Summary contains aggregate validation statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Results holds one entry per input, in input order.
	Results []VersionValidation `json:"results" yaml:"results"`
}

// ValidationSummary contains aggregate statistics about the validation.
type ValidationSummary struct {
	Total   int              `json:"total" yaml:"total"`
	Valid   int              `json:"valid" yaml:"valid"`
	Invalid int              `json:"invalid" yaml:"invalid"`
	Status  ValidationStatus `json:"status" yaml:"status"`
}

// VersionValidation is the outcome for a single input string.
type VersionValidation struct {
	// Value is the input exactly as supplied.
	Value string `json:"value" yaml:"value"`

	Valid bool `json:"valid" yaml:"valid"`

	// Version is set for valid inputs.
	Version *VersionInfo `json:"version,omitempty" yaml:"version,omitempty"`

	// Reason and Offset describe the first grammar violation of an invalid input.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Offset *int   `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// NewValidationResult creates a new ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Results: make([]VersionValidation, 0),
	}
}

// String renders one line per input: "valid" or "invalid", the value and,
// for invalid input, the reason.
func (v *ValidationResult) String() string {
	var b strings.Builder
	for i, r := range v.Results {
		if i > 0 {
			b.WriteByte('\n')
		}
		if r.Valid {
			fmt.Fprintf(&b, "valid\t%s", r.Value)
			continue
		}
		fmt.Fprintf(&b, "invalid\t%q\t%s", r.Value, r.Reason)
		if r.Offset != nil {
			fmt.Fprintf(&b, " at offset %d", *r.Offset)
		}
	}
	return b.String()
}

// HasInvalid reports whether any input failed validation.
func (v *ValidationResult) HasInvalid() bool {
	return v.Summary.Invalid > 0
}
