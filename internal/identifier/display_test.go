package identifier_test

import (
	"testing"

	"cardpress/internal/identifier"
)

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"short letter digit split", "ABC123", "ABC 123"},
		{"short split keeps raw groups", "xyz0012", "xyz 0012"},
		{"long form delegates to normalize", "AL001GLD12345678901", "AL001/GLD-1234567/8901"},
		{"carrier delegates to normalize", "STE12345690123", "AL001/STE-1234569/0123"},
		{"unmatched string passes through", "membership pending", "membership pending"},
		{"four letters do not split", "ABCD123", "ABCD123"},
		{"embedded space defeats the short pattern", "ABC 123", "ABC 123"},
		{"empty string passes through", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := identifier.DisplayText(tc.raw)
			if got != tc.want {
				t.Fatalf("DisplayText(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want identifier.Class
	}{
		{"AL001GLD123", identifier.ClassScheme},
		{"al001", identifier.ClassDefault},
		{"STE 12345", identifier.ClassCarrier},
		{"STEAK", identifier.ClassCarrier},
		{"ABC123", identifier.ClassDefault},
		{"", identifier.ClassDefault},
	}
	for _, tc := range tests {
		if got := identifier.Classify(tc.raw); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}
