package semver

import (
	"testing"
)

func BenchmarkParse(b *testing.B) {
	tests := []string{
		"1.2.3",
		"1.0.0-alpha.1",
		"1.0.0-beta+exp.sha.5114f85",
		"10.20.30-rc.1.2.3+build.001",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(tests[i%len(tests)])
	}
}

func BenchmarkParseInvalid(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("1.01.0")
	}
}

func BenchmarkCompareCore(b *testing.B) {
	v1 := MustParse("1.2.3")
	v2 := MustParse("1.2.4")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(v1, v2)
	}
}

func BenchmarkComparePrerelease(b *testing.B) {
	v1 := MustParse("1.0.0-alpha.beta.11")
	v2 := MustParse("1.0.0-alpha.beta.2")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(v1, v2)
	}
}

func BenchmarkCompareStrings(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CompareStrings("1.0.0-rc.1", "1.0.0")
	}
}

func BenchmarkVersionString(b *testing.B) {
	v := MustParse("1.0.0-beta.11+exp.sha.5114f85")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}
