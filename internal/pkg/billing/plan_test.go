package billing

import "testing"

func TestValidPlanKind(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "subscription", want: true},
		{in: "self_hosted", want: true},
		{in: "SUBSCRIPTION", want: false},
		{in: "trial", want: false},
		{in: "", want: false},
	}

	for _, tt := range tests {
		if got := validPlanKind(tt.in); got != tt.want {
			t.Fatalf("validPlanKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCRMType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Sales CRM", want: "sales_crm"},
		{in: "  Support CRM  ", want: "support_crm"},
		{in: "general", want: "general"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := normalizeCRMType(tt.in); got != tt.want {
			t.Fatalf("normalizeCRMType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStringOrDefault(t *testing.T) {
	if got := stringOrDefault("", "fallback"); got != "fallback" {
		t.Fatalf("stringOrDefault(\"\") = %q, want fallback", got)
	}
	if got := stringOrDefault("   ", "fallback"); got != "fallback" {
		t.Fatalf("stringOrDefault(blank) = %q, want fallback", got)
	}
	if got := stringOrDefault("value", "fallback"); got != "value" {
		t.Fatalf("stringOrDefault(value) = %q, want value", got)
	}
}
