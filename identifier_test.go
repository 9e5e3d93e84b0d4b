package svg2font

import "testing"

func TestNameFromFilename(t *testing.T) {
	tests := []struct {
		name   string
		stem   string
		expect string
	}{
		{"camel case with suffix", "arrowDown-filled", "arrow_down_filled"},
		{"capitalized with suffix", "Appliance-stroke", "appliance_stroke"},
		{"simple with suffix", "Bank-filled", "bank_filled"},
		{"outline suffix", "home-outline", "home_outline"},
		{"leading digit", "123icon", "icon_123icon"},
		{"dashes and spaces", "arrow-down left", "arrow_down_left"},
		{"already snake", "arrow_down", "arrow_down"},
		{"empty", "", "icon_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameFromFilename(tt.stem); got != tt.expect {
				t.Errorf("NameFromFilename(%q) = %q, want %q", tt.stem, got, tt.expect)
			}
		})
	}
}
