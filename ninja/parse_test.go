package ninja

import (
	"testing"

	"github.com/datrise/farm"
)

func TestParseCompactNumber(t *testing.T) {
	tests := []struct {
		in   string
		want farm.Amount
	}{
		{"12", farm.AmountOf(12)},
		{"0.5", farm.AmountOf(0.5)},
		{"1,2", farm.AmountOf(1.2)},
		{"3.4k", farm.AmountOf(3400)},
		{"2K", farm.AmountOf(2000)},
		{"1.5m", farm.AmountOf(1500000)},
		{"  7  ", farm.AmountOf(7)},
		{"", farm.Missing},
		{"abc", farm.Missing},
		{"1.2.3", farm.Missing},
		{"-4", farm.Missing},
		{"k", farm.Missing},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseCompactNumber(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("ParseCompactNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Divine Orb", "Divine Orb"},
		{"Divine Orb WIKI", "Divine Orb"},
		{"Divine Orb wiki", "Divine Orb"},
		{"  Exalted Orb \n", "Exalted Orb"},
		{"Wikipedia Scroll", "Wikipedia Scroll"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanName(tt.in); got != tt.want {
			t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"https://cdn.example/icon.png", "https://cdn.example/icon.png"},
		{"//cdn.example/icon.png", "https://cdn.example/icon.png"},
		{"/images/icon.png", baseURL + "/images/icon.png"},
		{"icon.png", "icon.png"},
	}
	for _, tt := range tests {
		if got := normalizeURL(tt.in); got != tt.want {
			t.Errorf("normalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
