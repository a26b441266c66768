package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
	}{
		{"purple", ColorPurple},
		{"Orange", ColorOrange},
		{" white ", ColorWhite},
		{"bright-magenta", ColorBrightMagenta},
		{"Bright Cyan", ColorBrightCyan},
		{"grey", ColorGray},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.name)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.name, err)
			}
			if c != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, c, tc.expected)
			}
		})
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}
