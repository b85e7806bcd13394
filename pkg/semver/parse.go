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
)

// Parse validates raw against the Semantic Versioning 2.0.0 grammar and
// returns its decomposed form.
//
// The whole string must match: surrounding whitespace, a "v" prefix, leading
// zeros in numeric identifiers and empty identifiers are all rejected with an
// *InvalidFormatError.
func Parse(raw string) (Version, error) {
	if raw == "" {
		return Version{}, &InvalidFormatError{Value: raw, Reason: ReasonEmpty}
	}

	p := &parser{input: raw}
	var v Version
	var err error

	if v.major, err = p.coreNumber(); err != nil {
		return Version{}, err
	}
	if err = p.dot(); err != nil {
		return Version{}, err
	}
	if v.minor, err = p.coreNumber(); err != nil {
		return Version{}, err
	}
	if err = p.dot(); err != nil {
		return Version{}, err
	}
	if v.patch, err = p.coreNumber(); err != nil {
		return Version{}, err
	}

	if p.consume('-') {
		if v.pre, err = p.prerelease(); err != nil {
			return Version{}, err
		}
	}
	if p.consume('+') {
		if v.build, err = p.buildMetadata(); err != nil {
			return Version{}, err
		}
	}

	if !p.done() {
		return Version{}, p.unexpected()
	}
	return v, nil
}

// MustParse is like Parse but panics if raw is not a valid version.
// It simplifies safe initialization of package-level variables.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("semver: MustParse(%q): %v", raw, err))
	}
	return v
}

// IsValid reports whether raw is a valid Semantic Versioning 2.0.0 string.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// parser is a single-pass cursor over the input.
type parser struct {
	input string
	pos   int
}

func (p *parser) done() bool {
	return p.pos >= len(p.input)
}

func (p *parser) fail(reason Reason) error {
	return &InvalidFormatError{Value: p.input, Reason: reason, Offset: p.pos}
}

// unexpected reports the byte at the cursor, or a missing component at end of input.
func (p *parser) unexpected() error {
	if p.done() {
		return p.fail(ReasonMissingComponent)
	}
	c := p.input[p.pos]
	if isIdentChar(c) || c == '.' || c == '+' {
		return p.fail(ReasonUnexpectedCharacter)
	}
	return p.fail(ReasonInvalidCharacter)
}

func (p *parser) consume(c byte) bool {
	if !p.done() && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) dot() error {
	if p.consume('.') {
		return nil
	}
	return p.unexpected()
}

// coreNumber reads one of major, minor or patch.
func (p *parser) coreNumber() (uint64, error) {
	start := p.pos
	for !p.done() && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		if p.done() || p.input[p.pos] == '.' {
			return 0, p.fail(ReasonMissingComponent)
		}
		return 0, p.unexpected()
	}
	return p.number(start)
}

// number converts input[start:pos], which must be all digits.
func (p *parser) number(start int) (uint64, error) {
	digits := p.input[start:p.pos]
	if len(digits) > 1 && digits[0] == '0' {
		return 0, &InvalidFormatError{Value: p.input, Reason: ReasonLeadingZero, Offset: start}
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, &InvalidFormatError{Value: p.input, Reason: ReasonOverflow, Offset: start}
	}
	return n, nil
}

// identifier reads a run of [0-9A-Za-z-] and reports whether it was all digits.
func (p *parser) identifier() (start int, numeric bool, err error) {
	start = p.pos
	numeric = true
	for !p.done() && isIdentChar(p.input[p.pos]) {
		if !isDigit(p.input[p.pos]) {
			numeric = false
		}
		p.pos++
	}
	if p.pos == start {
		if p.done() || p.input[p.pos] == '.' || p.input[p.pos] == '+' {
			return start, false, p.fail(ReasonEmptyIdentifier)
		}
		return start, false, p.unexpected()
	}
	return start, numeric, nil
}

func (p *parser) prerelease() ([]Identifier, error) {
	var ids []Identifier
	for {
		start, numeric, err := p.identifier()
		if err != nil {
			return nil, err
		}
		id := Identifier{text: p.input[start:p.pos], kind: Alphanumeric}
		if numeric {
			if len(id.text) > 1 && id.text[0] == '0' {
				return nil, &InvalidFormatError{Value: p.input, Reason: ReasonLeadingZero, Offset: start}
			}
			id.kind = Numeric
			n, convErr := strconv.ParseUint(id.text, 10, 64)
			id.num, id.fits = n, convErr == nil
		}
		ids = append(ids, id)
		if !p.consume('.') {
			return ids, nil
		}
	}
}

func (p *parser) buildMetadata() ([]string, error) {
	var ids []string
	for {
		start, _, err := p.identifier()
		if err != nil {
			return nil, err
		}
		ids = append(ids, p.input[start:p.pos])
		if !p.consume('.') {
			return ids, nil
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentChar(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-'
}
