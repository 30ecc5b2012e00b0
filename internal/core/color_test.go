package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		wantErr  bool
	}{
		{"green", ColorGreen, false},
		{"Bright_Cyan", ColorBrightCyan, false},
		{" red ", ColorRed, false},
		{"black", ColorBlack, false},
		{"default", ColorDefault, false},
		{"chartreuse", ColorDefault, true},
		{"", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if c != tc.expected {
				t.Errorf("ParseColor(%q) = %d, expected %d", tc.name, c, tc.expected)
			}
		})
	}
}
