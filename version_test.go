package chipset

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionTag_PrefixesV(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestParseSemver(t *testing.T) {
	cases := []struct {
		version string
		want    Semver
		ok      bool
	}{
		{version: "0.1.0", want: Semver{Minor: 1}, ok: true},
		{version: "1.2.3-alpha.1", want: Semver{Major: 1, Minor: 2, Patch: 3, Pre: "alpha.1"}, ok: true},
		{version: "2.0.0+build.7", want: Semver{Major: 2, Build: "build.7"}, ok: true},
		{version: "v1.2.3"},
		{version: "1.2"},
		{version: "01.2.3"},
	}

	for _, tc := range cases {
		got, ok := ParseSemver(tc.version)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseSemver(%q): got %+v %v, want %+v %v", tc.version, got, ok, tc.want, tc.ok)
		}
		if ok && got.String() != tc.version {
			t.Fatalf("String(): got %q, want %q", got.String(), tc.version)
		}
	}
}
