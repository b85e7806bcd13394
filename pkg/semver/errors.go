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
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched by every error returned from Parse.
var ErrInvalidFormat = errors.New("invalid semantic version")

// Reason classifies why a string failed validation.
type Reason string

const (
	// ReasonEmpty indicates the input string was empty.
	ReasonEmpty Reason = "empty version string"
	// ReasonMissingComponent indicates the input ended before major, minor and patch were all present.
	ReasonMissingComponent Reason = "missing version component"
	// ReasonLeadingZero indicates a numeric identifier with a leading zero.
	ReasonLeadingZero Reason = "leading zero in numeric identifier"
	// ReasonEmptyIdentifier indicates an empty pre-release or build identifier.
	ReasonEmptyIdentifier Reason = "empty identifier"
	// ReasonInvalidCharacter indicates a character outside [0-9A-Za-z.+-].
	ReasonInvalidCharacter Reason = "invalid character"
	// ReasonUnexpectedCharacter indicates a valid character in a position the grammar does not allow.
	ReasonUnexpectedCharacter Reason = "unexpected character"
	// ReasonOverflow indicates a major, minor or patch number that does not fit in 64 bits.
	ReasonOverflow Reason = "version number overflows uint64"
)

// String returns the human-readable reason.
func (r Reason) String() string {
	return string(r)
}

// InvalidFormatError is returned when a string does not match the
// Semantic Versioning 2.0.0 grammar.
type InvalidFormatError struct {
	// Value is the offending input, unmodified.
	Value string
	// Reason describes the first grammar violation found.
	Reason Reason
	// Offset is the byte offset in Value where the violation was detected.
	Offset int
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s %q: %s at offset %d", ErrInvalidFormat, e.Value, e.Reason, e.Offset)
}

// Is reports whether target is ErrInvalidFormat.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
