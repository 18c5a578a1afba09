package core

import "testing"

func TestColorCodes(t *testing.T) {
	tests := []struct {
		c    Color
		code string
		name string
	}{
		{ColorDefault, "", "default"},
		{ColorRed, "1", "red"},
		{ColorBrightWhite, "15", "bright-white"},
		{ColorOrange, "208", "orange"},
		{ColorFrame, "245", "gray"},
		{Color(200), "", "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.Code(); got != tt.code {
			t.Errorf("%v.Code() = %q, want %q", tt.c, got, tt.code)
		}
		if got := tt.c.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestColorsHaveCodes(t *testing.T) {
	all := Colors()
	if len(all) != int(numColors)-1 {
		t.Fatalf("Colors() returned %d entries", len(all))
	}
	for _, c := range all {
		if c.Code() == "" {
			t.Errorf("%v has no code", c)
		}
	}
}
