package style

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestBadge(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusCompatible, "COMPATIBLE"},
		{StatusIncompatible, "INCOMPATIBLE"},
		{StatusError, "ERROR"},
		{Status("bogus"), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := pterm.RemoveColorFromString(Badge(tt.status))
			if got != " "+tt.want+" " {
				t.Errorf("Badge(%q) = %q, want %q", tt.status, got, " "+tt.want+" ")
			}
		})
	}
}

func TestIndicator(t *testing.T) {
	if got := pterm.RemoveColorFromString(Indicator(StatusCompatible)); got != "✓" {
		t.Errorf("compatible indicator = %q", got)
	}
	if got := pterm.RemoveColorFromString(Indicator(StatusError)); got != "✗" {
		t.Errorf("error indicator = %q", got)
	}
}

func TestStatusStyle(t *testing.T) {
	for _, s := range []Status{StatusCompatible, StatusIncompatible, StatusError, "other"} {
		if StatusStyle(s) == nil {
			t.Errorf("StatusStyle(%q) returned nil", s)
		}
	}
}

func TestIndent(t *testing.T) {
	got := Indent("x", 2)
	if !strings.HasPrefix(got, "    ") || !strings.Contains(got, "x") {
		t.Errorf("Indent = %q", got)
	}
	if !strings.Contains(Bold("y"), "y") {
		t.Error("Bold lost its text")
	}
}
