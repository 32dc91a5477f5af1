package config

import "testing"

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty means allow-all", "", nil},
		{"single origin", "https://admin.example.edu", []string{"https://admin.example.edu"}},
		{"multiple with spaces", "http://localhost:3000, https://admin.example.edu", []string{"http://localhost:3000", "https://admin.example.edu"}},
		{"trailing comma ignored", "http://localhost:3000,", []string{"http://localhost:3000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOrigins(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("parseOrigins(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("origin %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
