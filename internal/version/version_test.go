package version

import (
	"strings"
	"testing"
)

func TestPlain(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		in, want string
	}{
		{"1.2.3", "1.2.3"},
		{"  0.1.0-dev \n", "0.1.0-dev"},
		{"", "dev"},
	}
	for _, tt := range tests {
		Version = tt.in
		if got := Plain(); got != tt.want {
			t.Errorf("Plain() with %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColored(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3-rc.1+build.5"
	if got := Colored(false); got != Version {
		t.Errorf("Colored(false) = %q", got)
	}
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Colored(true) has no escape codes: %q", got)
	}
	if !strings.HasSuffix(got, "-rc.1+build.5") {
		t.Errorf("suffix lost: %q", got)
	}

	Version = "nightly"
	if got := Colored(true); got != "nightly" {
		t.Errorf("non-semver = %q", got)
	}
}
