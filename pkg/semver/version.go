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

package semver

import (
	"slices"
	"strconv"
	"strings"
)

// IdentifierKind tags a pre-release identifier as numeric or alphanumeric.
type IdentifierKind uint8

const (
	// Numeric identifiers consist of ASCII digits only.
	Numeric IdentifierKind = iota + 1
	// Alphanumeric identifiers contain at least one letter or hyphen.
	Alphanumeric
)

// String returns the kind name.
func (k IdentifierKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	default:
		return "unknown"
	}
}

// Identifier is a single dot-separated pre-release identifier.
// Numeric identifiers have no length limit; num is set only when the value
// fits in 64 bits.
type Identifier struct {
	text string
	num  uint64
	fits bool
	kind IdentifierKind
}

// Kind returns whether the identifier is Numeric or Alphanumeric.
func (id Identifier) Kind() IdentifierKind {
	return id.kind
}

// Numeric returns the numeric value and true for Numeric identifiers whose
// value fits in a uint64. Larger numeric identifiers return false; use
// String for their digits.
func (id Identifier) Numeric() (uint64, bool) {
	if id.kind != Numeric || !id.fits {
		return 0, false
	}
	return id.num, true
}

// String returns the identifier text as it appeared in the source.
func (id Identifier) String() string {
	return id.text
}

// Version is a parsed Semantic Versioning 2.0.0 version.
// Values are immutable; accessors return copies of the identifier lists.
// The zero Version is 0.0.0.
type Version struct {
	major uint64
	minor uint64
	patch uint64
	pre   []Identifier
	build []string
}

// Major returns the major version number.
func (v Version) Major() uint64 {
	return v.major
}

// Minor returns the minor version number.
func (v Version) Minor() uint64 {
	return v.minor
}

// Patch returns the patch version number.
func (v Version) Patch() uint64 {
	return v.patch
}

// Prerelease returns the pre-release identifiers in source order.
func (v Version) Prerelease() []Identifier {
	return slices.Clone(v.pre)
}

// Build returns the build metadata identifiers in source order.
func (v Version) Build() []string {
	return slices.Clone(v.build)
}

// IsPrerelease reports whether the version carries a pre-release section.
func (v Version) IsPrerelease() bool {
	return len(v.pre) > 0
}

// Core returns the version with pre-release and build metadata removed.
func (v Version) Core() Version {
	return Version{major: v.major, minor: v.minor, patch: v.patch}
}

// String returns the canonical text form. For a parsed Version this is
// identical to the input that produced it.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.patch, 10))
	for i, id := range v.pre {
		if i == 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(id.text)
	}
	if len(v.build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.build, "."))
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using strict parsing.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
