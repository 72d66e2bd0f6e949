// Package cconv converts color palettes: it parses loosely formatted palette
// sources (JSON records or plain text, one color per line) into canonical hex
// colors and enriches each one with RGB, HSL, HSV, CIELAB, CMYK and luminance
// representations.
package cconv // import "fortio.org/cconv"

import (
	"math"
)

// RGBColor is a color as 3 8-bit channels, the pivot representation every
// conversion starts from.
type RGBColor struct {
	R, G, B uint8
}

// HSL is hue [0,360), saturation and lightness [0,100].
type HSL struct {
	H, S, L float64
}

// HSV is hue [0,360), saturation and value [0,100].
type HSV struct {
	H, S, V float64
}

// Lab is a CIELAB color under D65: lightness L [0,100+] and the a/b
// chromaticity axes (roughly [-128,127]).
type Lab struct {
	L, A, B float64
}

// CMYK is cyan, magenta, yellow and key (black), each [0,100].
type CMYK struct {
	C, M, Y, K float64
}

func roundN(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func (c RGBColor) norm() (r, g, b float64) {
	return float64(c.R) / 255., float64(c.G) / 255., float64(c.B) / 255.
}

// HSL converts to hue/saturation/lightness, H in [0,360), S and L in [0,100],
// all rounded to 1 decimal. Achromatic colors (max==min) get H=0, S=0.
func (c RGBColor) HSL() HSL {
	r, g, b := c.norm()
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	l := (mx + mn) / 2
	var h, s float64
	if mx != mn {
		d := mx - mn
		if l > 0.5 {
			s = d / (2 - mx - mn)
		} else {
			s = d / (mx + mn)
		}
		switch mx {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}
	return HSL{H: roundN(h*360, 1), S: roundN(s*100, 1), L: roundN(l*100, 1)}
}

// HSV converts to hue/saturation/value, same ranges and rounding as HSL.
func (c RGBColor) HSV() HSV {
	r, g, b := c.norm()
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	d := mx - mn
	v := mx * 100
	var s float64
	if mx != 0 {
		s = d / mx * 100
	}
	var h float64
	if d != 0 {
		switch mx {
		case r:
			h = (g - b) / d * 60
			if h < 0 {
				h += 360
			}
		case g:
			h = ((b-r)/d + 2) * 60
		default:
			h = ((r-g)/d + 4) * 60
		}
	}
	return HSV{H: roundN(h, 1), S: roundN(s, 1), V: roundN(v, 1)}
}

// sRGB transfer function (gamma decode), linear segment below 0.04045.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// CIELAB nonlinearity.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16./116.
}

// Lab converts through linear sRGB and CIE XYZ (sRGB matrix, D65 reference
// white) to CIELAB, rounded to 2 decimals. L is clamped at 0.
func (c RGBColor) Lab() Lab {
	rn, gn, bn := c.norm()
	r := srgbToLinear(rn)
	g := srgbToLinear(gn)
	b := srgbToLinear(bn)
	x := r*0.4124564 + g*0.3575761 + b*0.1804375
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	z := r*0.0193339 + g*0.1191920 + b*0.9503041
	// D65 white point; Y is already relative to it.
	fx := labF(x / 0.95047)
	fy := labF(y)
	fz := labF(z / 1.08883)
	l := math.Max(0, 116*fy-16)
	return Lab{L: roundN(l, 2), A: roundN(500*(fx-fy), 2), B: roundN(200*(fy-fz), 2)}
}

// CMYK converts to cyan/magenta/yellow/key percentages rounded to 1 decimal.
// Pure black short-circuits to (0,0,0,100).
func (c RGBColor) CMYK() CMYK {
	if c == (RGBColor{}) {
		return CMYK{K: 100}
	}
	r, g, b := c.norm()
	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 { // can't happen after the black short-circuit, guard anyway
		return CMYK{K: 100}
	}
	return CMYK{
		C: roundN((1-r-k)/(1-k)*100, 1),
		M: roundN((1-g-k)/(1-k)*100, 1),
		Y: roundN((1-b-k)/(1-k)*100, 1),
		K: roundN(k*100, 1),
	}
}

// Luminance is the ITU-R BT.709 weighted sum on the raw (not linearized)
// channel values, unrounded: 0 for black, 255 for white.
func (c RGBColor) Luminance() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// IsLight is true when the (unrounded) luminance is strictly above 128.
func (c RGBColor) IsLight() bool {
	return c.Luminance() > 128
}
