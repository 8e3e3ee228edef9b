package capdata

import "testing"

func TestParseDollars(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"$1,234", 1234, false},
		{"$12,345,678", 12345678, false},
		{"$0", 0, false},
		{"$5,000,000", 5000000, false},
		{" $750,000 ", 750000, false},
		{"-$1,000", -1000, false},
		{"$-1,000", -1000, false},
		{"1234", 1234, false},
		{"", 0, true},
		{"$", 0, true},
		{"abc", 0, true},
		{"$1.5M", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDollars(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDollars(%q) = %d, expected error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDollars(%q) failed: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDollars(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
