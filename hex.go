package cconv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// ErrInvalidHex is wrapped by NormalizeHex and HexToRGB for inputs that don't
// hold exactly 3 or 6 hex digits.
var ErrInvalidHex = errors.New("invalid hex color")

// ErrNoHexColor is wrapped by ExtractHex when no prefix of the token
// normalizes to a color.
var ErrNoHexColor = errors.New("no hex color")

const hexDigits = "0123456789abcdefABCDEF"

// Drops every rune that is not a hex digit.
func stripNonHex(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(hexDigits, r) {
			return r
		}
		return -1
	}, s)
}

// NormalizeHex canonicalizes an arbitrary string into "#rrggbb" (lowercase).
// Everything that isn't a hex digit is stripped first, so stray separators
// anywhere in the input are tolerated; validity depends only on the remaining
// digit count: 3 digits expand by duplication ("abc" -> "aabbcc"), 6 are kept,
// anything else is an error.
func NormalizeHex(s string) (string, error) {
	digits := stripNonHex(s)
	switch len(digits) {
	case 3:
		var sb strings.Builder
		sb.Grow(6)
		for _, r := range digits {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		digits = sb.String()
	case 6:
	default:
		return "", fmt.Errorf("%w %q: %d hex digits, need 3 or 6", ErrInvalidHex, s, len(digits))
	}
	return "#" + strings.ToLower(digits), nil
}

// Separators commonly found in front of palette colors.
const leadingSeparators = ";#|: \t"

// ExtractHex finds a color at the start of a single whitespace-free token.
// Leading separators are stripped, then prefixes from length min(7,len) down
// to 1 go through NormalizeHex and the first success wins. Longest-first means
// "ff0000Name" consumes the full 6 digit run while "fffRed" still matches the
// 3 digit shorthand. A 7 character prefix with a single stray non-hex
// character (e.g. "ffffffx") also normalizes, since the stray is stripped
// before the digit count check; accepted behavior.
func ExtractHex(token string) (string, error) {
	token = strings.TrimLeft(token, leadingSeparators)
	for i := min(7, len(token)); i > 0; i-- {
		if hex, err := NormalizeHex(token[:i]); err == nil {
			return hex, nil
		}
	}
	return "", fmt.Errorf("%w in %q", ErrNoHexColor, token)
}

// HexToRGB parses a canonical or shorthand hex color ("#rrggbb", "rrggbb" or
// "#rgb") into its channels.
func HexToRGB(hex string) (RGBColor, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGBColor{}, fmt.Errorf("%w %q: need 6 digits", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w %q: %w", ErrInvalidHex, hex, err)
	}
	return RGBColor{
		R: safecast.MustConvert[uint8](v >> 16 & 0xFF),
		G: safecast.MustConvert[uint8](v >> 8 & 0xFF),
		B: safecast.MustConvert[uint8](v & 0xFF),
	}, nil
}

// Hex returns the canonical "#rrggbb" form, byte for byte what NormalizeHex
// would produce for this color.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
