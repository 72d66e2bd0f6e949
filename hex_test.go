package cconv_test

import (
	"errors"
	"testing"

	"fortio.org/cconv"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		input    string
		expected string // empty means invalid
	}{
		{"FFF", "#ffffff"},
		{"fff", "#ffffff"},
		{"#AbC", "#aabbcc"},
		{"ff0000", "#ff0000"},
		{"#FF0000", "#ff0000"},
		{"ff 00 00", "#ff0000"}, // separators anywhere are fine, only digit count matters
		{"#a-b-c", "#aabbcc"},
		{"12345", ""},     // 5 digits
		{"#ab#c#d", ""},   // 4 digits
		{"", ""},          // 0 digits
		{"zzz", ""},       // 0 digits after stripping
		{"1234567", ""},   // 7 digits
		{"ffffffx", "#ffffff"}, // stray char stripped before the count check
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			hex, err := cconv.NormalizeHex(test.input)
			if test.expected == "" {
				if err == nil {
					t.Errorf("Expected error for %q, got %q", test.input, hex)
				} else if !errors.Is(err, cconv.ErrInvalidHex) {
					t.Errorf("Expected ErrInvalidHex for %q, got %v", test.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for %q: %v", test.input, err)
				return
			}
			if hex != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, hex)
			}
		})
	}
}

func TestExtractHex(t *testing.T) {
	tests := []struct {
		token    string
		expected string // empty means no color found
	}{
		{"ffffff", "#ffffff"},
		{"#ff0000", "#ff0000"},
		{";;#ff0000", "#ff0000"},
		{"|:ff0000", "#ff0000"},
		{"#ff0000Name", "#ff0000"}, // 6 digit run preferred over 3 digit prefix
		{"fffRed", "#ffffff"},      // 3 digit shorthand when no longer run matches
		{"ffffffx", "#ffffff"},     // known sharp edge: stray char inside the 7 char window
		{"fffff", "#ffffff"},       // 5 digits: falls back to the 3 digit prefix "fff"
		{"#", ""},
		{"", ""},
		{"# a", ""},
		{"nope", ""},
	}
	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			hex, err := cconv.ExtractHex(test.token)
			if test.expected == "" {
				if err == nil {
					t.Errorf("Expected error for %q, got %q", test.token, hex)
				} else if !errors.Is(err, cconv.ErrNoHexColor) {
					t.Errorf("Expected ErrNoHexColor for %q, got %v", test.token, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for %q: %v", test.token, err)
				return
			}
			if hex != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, hex)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex      string
		expected cconv.RGBColor
	}{
		{"#000000", cconv.RGBColor{R: 0, G: 0, B: 0}},
		{"#ffffff", cconv.RGBColor{R: 255, G: 255, B: 255}},
		{"#FF5733", cconv.RGBColor{R: 255, G: 87, B: 51}},
		{"ff5733", cconv.RGBColor{R: 255, G: 87, B: 51}},
		{"#abc", cconv.RGBColor{R: 170, G: 187, B: 204}},
	}
	for _, test := range tests {
		t.Run(test.hex, func(t *testing.T) {
			rgb, err := cconv.HexToRGB(test.hex)
			if err != nil {
				t.Errorf("Unexpected error for %q: %v", test.hex, err)
				return
			}
			if rgb != test.expected {
				t.Errorf("Expected %v, got %v", test.expected, rgb)
			}
		})
	}
	for _, bad := range []string{"", "#12345", "#zzzzzz", "#ffff"} {
		if rgb, err := cconv.HexToRGB(bad); err == nil {
			t.Errorf("Expected error for %q, got %v", bad, rgb)
		}
	}
}

// Every color must survive the round-trip through its canonical hex.
func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				rgb := cconv.RGBColor{R: uint8(r), G: uint8(g), B: uint8(b)} //nolint:gosec // loop bounds
				back, err := cconv.HexToRGB(rgb.Hex())
				if err != nil {
					t.Fatalf("Unexpected error for %v (%q): %v", rgb, rgb.Hex(), err)
				}
				if back != rgb {
					t.Fatalf("Round trip %v -> %q -> %v", rgb, rgb.Hex(), back)
				}
			}
		}
	}
}
