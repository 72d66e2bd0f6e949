package cconv

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/rivo/uniseg"
)

// To256 maps the color to the closest 256 color palette index: the grayscale
// ramp when all channels roughly match, the 6x6x6 cube otherwise.
func (c RGBColor) To256() uint8 {
	const shift = 4
	if (c.R>>shift) == (c.G>>shift) && (c.G>>shift) == (c.B>>shift) {
		lum := (uint16(c.R) + uint16(c.G) + uint16(c.B)) / 3
		if lum < 9 { // 0-8, 9 levels
			return 16 // -> black
		}
		if lum > 247 { // 248-255 (incl), 8 levels
			return 231 // -> white
		}
		return safecast.MustConvert[uint8](min(255, 232+((lum-9)*(256-232))/(247-9)))
	}
	return 16 + 36*(c.R/51) + 6*(c.G/51) + c.B/51
}

// Background escape sequence for the color, 24 bit when trueColor, 256 color
// fallback otherwise.
func background(c RGBColor, trueColor bool) string {
	if trueColor {
		return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
	}
	return fmt.Sprintf("\033[48;5;%dm", c.To256())
}

// WritePreview renders one line per color: the name over a swatch of the
// color itself (dark text on light swatches), then hex and HSL. Names are
// padded to the widest one by display width, not bytes, so palettes with wide
// characters still line up.
func WritePreview(w io.Writer, colors []EnrichedColor, trueColor bool) {
	width := 0
	for i := range colors {
		width = max(width, uniseg.StringWidth(colors[i].Name))
	}
	for i := range colors {
		c := &colors[i]
		rgb := RGBColor{
			R: safecast.MustConvert[uint8](c.RGB[0]),
			G: safecast.MustConvert[uint8](c.RGB[1]),
			B: safecast.MustConvert[uint8](c.RGB[2]),
		}
		fg := "\033[38;5;231m" // white text
		if rgb.IsLight() {
			fg = "\033[38;5;16m" // black text
		}
		pad := strings.Repeat(" ", width-uniseg.StringWidth(c.Name))
		fmt.Fprintf(w, "%s %s%s %s%s \033[0m %s  hsl(%g, %g%%, %g%%)\n",
			c.ID, background(rgb, trueColor), fg, c.Name, pad, c.Hex, c.HSL.H, c.HSL.S, c.HSL.L)
	}
}
