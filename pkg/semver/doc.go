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

// Package semver provides strict Semantic Versioning 2.0.0 parsing and
// precedence comparison.
//
// # Overview
//
// Parse validates a string against the full SemVer 2.0.0 grammar and
// decomposes it into a Version. Matching is anchored at both ends: no
// whitespace trimming, no "v" prefix and no partial matches are accepted.
//
//	MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]
//
// Compare orders two Versions by precedence and returns a Result
// (Less, Equal or Greater).
//
// # Usage
//
// Parse and compare:
//
//	a, err := semver.Parse("1.0.0-alpha.1")
//	if err != nil {
//	    // err wraps semver.ErrInvalidFormat
//	}
//	b := semver.MustParse("1.0.0-alpha.beta")
//	fmt.Println(semver.Compare(a, b)) // Output: -1
//
// Compare raw strings in one call:
//
//	r, err := semver.CompareStrings("1.0.0-rc.1", "1.0.0")
//	if err != nil {
//	    var ife *semver.InvalidFormatError
//	    if errors.As(err, &ife) {
//	        fmt.Println("bad version:", ife.Value)
//	    }
//	}
//	fmt.Println(r.Word()) // Output: less
//
// # Precedence Rules
//
// Precedence is decided by the first rule that distinguishes the two versions:
//
//  1. Major, minor and patch are compared numerically.
//  2. A version with a pre-release has lower precedence than the same
//     version without one.
//  3. Pre-release identifiers are compared left to right. Numeric identifiers
//     compare numerically, alphanumeric identifiers compare lexically in ASCII
//     order, and a numeric identifier always ranks below an alphanumeric one.
//     When one list is a prefix of the other, the shorter list ranks lower.
//  4. Build metadata is ignored.
//
// So the following chain holds:
//
//	1.0.0-alpha < 1.0.0-alpha.1 < 1.0.0-alpha.beta < 1.0.0-beta
//	  < 1.0.0-beta.2 < 1.0.0-beta.11 < 1.0.0-rc.1 < 1.0.0
//
// # Identifier Kinds
//
// Each pre-release identifier is classified once during parsing as Numeric or
// Alphanumeric, so comparison never re-inspects identifier text. The major,
// minor and patch components are stored as uint64 and values that do not fit
// fail validation. Numeric pre-release identifiers have no size limit: they
// compare by digit count, then digit by digit.
//
// # Error Handling
//
// Parse returns an *InvalidFormatError carrying the offending input, the byte
// offset of the failure and a Reason. Every such error matches
// ErrInvalidFormat with errors.Is.
//
// # Concurrency
//
// Version and Identifier are immutable values. All functions in this package
// are safe for concurrent use.
package semver
