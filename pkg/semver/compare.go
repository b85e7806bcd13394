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
	"fmt"
	"strconv"
	"strings"
)

// Result is the outcome of a precedence comparison.
type Result int

const (
	// Less means the left version has lower precedence.
	Less Result = -1
	// Equal means both versions have the same precedence.
	Equal Result = 0
	// Greater means the left version has higher precedence.
	Greater Result = 1
)

// String returns the printable encoding "-1", "0" or "1".
func (r Result) String() string {
	return strconv.Itoa(int(r))
}

// Word returns "less", "equal" or "greater".
func (r Result) Word() string {
	switch r {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Symbol returns "<", "=" or ">".
func (r Result) Symbol() string {
	switch r {
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	default:
		return "?"
	}
}

// Invert returns the result of the comparison with operands swapped.
func (r Result) Invert() Result {
	return -r
}

// IsValid reports whether r is one of Less, Equal or Greater.
func (r Result) IsValid() bool {
	return r == Less || r == Equal || r == Greater
}

// ParseResult accepts the numeric ("-1", "0", "1"), word ("less", "equal",
// "greater", case-insensitive) and symbol ("<", "=", ">") encodings.
func ParseResult(s string) (Result, error) {
	switch strings.ToLower(s) {
	case "-1", "less", "lt", "<":
		return Less, nil
	case "0", "equal", "eq", "=", "==":
		return Equal, nil
	case "1", "+1", "greater", "gt", ">":
		return Greater, nil
	default:
		return Equal, fmt.Errorf("unknown comparison result: %q", s)
	}
}

// Compare returns the precedence of a relative to b. Build metadata is ignored.
func Compare(a, b Version) Result {
	if r := compareUint(a.major, b.major); r != Equal {
		return r
	}
	if r := compareUint(a.minor, b.minor); r != Equal {
		return r
	}
	if r := compareUint(a.patch, b.patch); r != Equal {
		return r
	}
	return comparePrerelease(a.pre, b.pre)
}

// CompareStrings parses both inputs and compares them. The returned error
// names the side that failed and wraps the *InvalidFormatError.
func CompareStrings(a, b string) (Result, error) {
	va, err := Parse(a)
	if err != nil {
		return Equal, fmt.Errorf("first version: %w", err)
	}
	vb, err := Parse(b)
	if err != nil {
		return Equal, fmt.Errorf("second version: %w", err)
	}
	return Compare(va, vb), nil
}

// Compare returns the precedence of v relative to o.
func (v Version) Compare(o Version) Result {
	return Compare(v, o)
}

// LessThan reports whether v has lower precedence than o.
func (v Version) LessThan(o Version) bool {
	return Compare(v, o) == Less
}

// GreaterThan reports whether v has higher precedence than o.
func (v Version) GreaterThan(o Version) bool {
	return Compare(v, o) == Greater
}

// Equal reports whether v and o have the same precedence. Versions that
// differ only in build metadata are Equal.
func (v Version) Equal(o Version) bool {
	return Compare(v, o) == Equal
}

// Compare returns the precedence of id relative to o within a pre-release.
func (id Identifier) Compare(o Identifier) Result {
	switch {
	case id.kind == Numeric && o.kind == Numeric:
		return compareDigits(id.text, o.text)
	case id.kind == Numeric:
		return Less
	case o.kind == Numeric:
		return Greater
	default:
		return Result(strings.Compare(id.text, o.text))
	}
}

func compareUint(a, b uint64) Result {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// compareDigits orders two numeric identifiers of any length. Leading zeros
// are rejected at parse time, so more digits means a larger value.
func compareDigits(a, b string) Result {
	if r := compareUint(uint64(len(a)), uint64(len(b))); r != Equal {
		return r
	}
	return Result(strings.Compare(a, b))
}

func comparePrerelease(a, b []Identifier) Result {
	// a release outranks any of its pre-releases
	switch {
	case len(a) == 0 && len(b) == 0:
		return Equal
	case len(a) == 0:
		return Greater
	case len(b) == 0:
		return Less
	}

	for i := 0; ; i++ {
		switch {
		case i == len(a) && i == len(b):
			return Equal
		case i == len(a):
			return Less
		case i == len(b):
			return Greater
		}
		if r := a[i].Compare(b[i]); r != Equal {
			return r
		}
	}
}
