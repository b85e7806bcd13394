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
	"testing"

	modsemver "golang.org/x/mod/semver"
	"pgregory.net/rapid"
)

// Small value ranges keep collisions frequent so equal prefixes get exercised.

func numericIdentGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return strconv.FormatUint(rapid.Uint64Range(0, 12).Draw(t, "n"), 10)
	})
}

func alnumIdentGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[0-9]?[a-cA-C-][0-9a-c]?`)
}

func buildIdentGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[0-9A-Za-z-]{1,5}`)
}

type versionParts struct {
	core  string
	pre   []string
	build []string
}

func (p versionParts) String() string {
	s := p.core
	if len(p.pre) > 0 {
		s += "-" + strings.Join(p.pre, ".")
	}
	if len(p.build) > 0 {
		s += "+" + strings.Join(p.build, ".")
	}
	return s
}

func versionPartsGen() *rapid.Generator[versionParts] {
	return rapid.Custom(func(t *rapid.T) versionParts {
		n := rapid.Uint64Range(0, 2)
		core := strings.Join([]string{
			strconv.FormatUint(n.Draw(t, "major"), 10),
			strconv.FormatUint(n.Draw(t, "minor"), 10),
			strconv.FormatUint(n.Draw(t, "patch"), 10),
		}, ".")
		return versionParts{
			core:  core,
			pre:   rapid.SliceOfN(rapid.OneOf(numericIdentGen(), alnumIdentGen()), 0, 3).Draw(t, "pre"),
			build: rapid.SliceOfN(buildIdentGen(), 0, 2).Draw(t, "build"),
		}
	})
}

func versionGen() *rapid.Generator[Version] {
	return rapid.Custom(func(t *rapid.T) Version {
		s := versionPartsGen().Draw(t, "parts").String()
		v, err := Parse(s)
		if err != nil {
			t.Fatalf("generated version %q failed to parse: %v", s, err)
		}
		return v
	})
}

func TestProperty_GrammarAcceptanceRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parts := versionPartsGen().Draw(t, "parts")
		s := parts.String()

		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if v.String() != s {
			t.Fatalf("String() = %q, want %q", v.String(), s)
		}
		if len(v.Prerelease()) != len(parts.pre) {
			t.Fatalf("pre-release length %d, want %d", len(v.Prerelease()), len(parts.pre))
		}
		for i, id := range v.Prerelease() {
			numeric := id.Kind() == Numeric
			allDigits := strings.Trim(parts.pre[i], "0123456789") == ""
			if numeric != allDigits {
				t.Fatalf("identifier %q tagged numeric=%v", parts.pre[i], numeric)
			}
		}
		if !slices.Equal(v.Build(), parts.build) {
			t.Fatalf("build = %v, want %v", v.Build(), parts.build)
		}
	})
}

func TestProperty_Reflexive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := versionGen().Draw(t, "v")
		if r := Compare(v, v); r != Equal {
			t.Fatalf("Compare(%s, %s) = %s", v, v, r)
		}
	})
}

func TestProperty_Antisymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := versionGen().Draw(t, "a")
		b := versionGen().Draw(t, "b")
		if ab, ba := Compare(a, b), Compare(b, a); ab != ba.Invert() {
			t.Fatalf("Compare(%s, %s) = %s but Compare(%s, %s) = %s", a, b, ab, b, a, ba)
		}
	})
}

func TestProperty_Transitive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := versionGen().Draw(t, "a")
		b := versionGen().Draw(t, "b")
		c := versionGen().Draw(t, "c")
		if Compare(a, b) == Less && Compare(b, c) == Less && Compare(a, c) != Less {
			t.Fatalf("%s < %s < %s but Compare(%s, %s) = %s", a, b, c, a, c, Compare(a, c))
		}
		if Compare(a, b) == Equal && Compare(b, c) == Equal && Compare(a, c) != Equal {
			t.Fatalf("%s = %s = %s but Compare(%s, %s) = %s", a, b, c, a, c, Compare(a, c))
		}
	})
}

func TestProperty_SortedOrderIsConsistent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOfN(versionGen(), 2, 12).Draw(t, "versions")
		slices.SortStableFunc(vs, func(a, b Version) int { return int(Compare(a, b)) })
		for i := range vs {
			for j := i + 1; j < len(vs); j++ {
				if Compare(vs[i], vs[j]) == Greater {
					t.Fatalf("sorted order violated: %s > %s", vs[i], vs[j])
				}
			}
		}
	})
}

func TestProperty_BuildMetadataIrrelevant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parts := versionPartsGen().Draw(t, "parts")
		other := parts
		other.build = rapid.SliceOfN(buildIdentGen(), 0, 3).Draw(t, "otherBuild")

		a := MustParse(parts.String())
		b := MustParse(other.String())
		if r := Compare(a, b); r != Equal {
			t.Fatalf("Compare(%s, %s) = %s, want 0", a, b, r)
		}
	})
}

func TestProperty_AgreesWithModSemver(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := versionGen().Draw(t, "a")
		b := versionGen().Draw(t, "b")

		want := modsemver.Compare("v"+a.String(), "v"+b.String())
		if got := int(Compare(a, b)); got != want {
			t.Fatalf("Compare(%s, %s) = %d, golang.org/x/mod/semver says %d", a, b, got, want)
		}
	})
}

func TestProperty_RejectsLeadingZeros(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parts := versionPartsGen().Draw(t, "parts")
		n := rapid.Uint64Range(0, 99).Draw(t, "n")
		bad := "0" + strconv.FormatUint(n, 10)

		switch rapid.IntRange(0, 1).Draw(t, "where") {
		case 0:
			parts.core = bad + parts.core[strings.IndexByte(parts.core, '.'):]
		default:
			parts.pre = append(parts.pre, bad)
		}

		if IsValid(parts.String()) {
			t.Fatalf("expected %q to be rejected", parts.String())
		}
	})
}
