package services

import "testing"

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"+91 (981)-234-5678", "9812345678"},
		{"Phone: 098 123 45678", "9812345678"},
		{"123", "123"},
		{"", ""},
		{"no digits here", ""},
		{"00919812345678", "9812345678"},
	}

	for _, tt := range tests {
		got := SanitizePhone(tt.raw)
		if got != tt.want {
			t.Errorf("SanitizePhone(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}
