package cconv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
)

// OutputMode selects the field set emitted for each color.
type OutputMode uint8

const (
	// Full emits every representation.
	Full OutputMode = iota
	// Cut emits only hex, rgb, rgb_norm and hsl.
	Cut
)

func (m OutputMode) String() string {
	if m == Cut {
		return "cut"
	}
	return "full"
}

// DefaultOutput is the output file used when none is given.
const DefaultOutput = "cconv_output.json"

// ErrNoColors is returned when a palette source yields zero valid colors.
var ErrNoColors = errors.New("no colors found")

// EnrichedColor is one fully converted palette entry. The extended fields
// (HSV and later) are only set in Full mode and omitted from the JSON
// otherwise; field order is fixed.
type EnrichedColor struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Hex       string     `json:"hex"`
	RGB       [3]int     `json:"rgb"`
	RGBNorm   [3]float64 `json:"rgb_norm"`
	HSL       HSL        `json:"hsl"`
	HSV       *HSV       `json:"hsv,omitempty"`
	Lab       *Lab       `json:"lab,omitempty"`
	CMYK      *CMYK      `json:"cmyk,omitempty"`
	Luminance *float64   `json:"luminance,omitempty"`
	IsLight   *bool      `json:"is_light,omitempty"`
}

// The value structs serialize as plain arrays, the palette output shape.

func (h HSL) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{h.H, h.S, h.L})
}

func (h HSV) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{h.H, h.S, h.V})
}

func (l Lab) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{l.L, l.A, l.B})
}

func (c CMYK) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{c.C, c.M, c.Y, c.K})
}

// Enrich converts one record into its full (or cut) representation set.
func Enrich(rec ColorRecord, mode OutputMode) (EnrichedColor, error) {
	rgb, err := HexToRGB(rec.Hex)
	if err != nil {
		return EnrichedColor{}, err
	}
	ec := EnrichedColor{
		ID:   rec.ID,
		Name: rec.Name,
		Hex:  rec.Hex,
		RGB:  [3]int{int(rgb.R), int(rgb.G), int(rgb.B)},
		RGBNorm: [3]float64{
			roundN(float64(rgb.R)/255., 4),
			roundN(float64(rgb.G)/255., 4),
			roundN(float64(rgb.B)/255., 4),
		},
		HSL: rgb.HSL(),
	}
	if mode == Cut {
		return ec, nil
	}
	hsv := rgb.HSV()
	lab := rgb.Lab()
	cmyk := rgb.CMYK()
	lum := roundN(rgb.Luminance(), 1)
	isLight := rgb.IsLight() // on the unrounded luminance
	ec.HSV = &hsv
	ec.Lab = &lab
	ec.CMYK = &cmyk
	ec.Luminance = &lum
	ec.IsLight = &isLight
	return ec, nil
}

// Convert enriches every record in input order. Records that fail to convert
// are dropped and collected as warnings; an individual failure never aborts
// the batch.
func Convert(records []ColorRecord, mode OutputMode) ([]EnrichedColor, []error) {
	colors := make([]EnrichedColor, 0, len(records))
	var warnings []error
	for _, rec := range records {
		ec, err := Enrich(rec, mode)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("color %q: %w", rec.Name, err))
			continue
		}
		colors = append(colors, ec)
	}
	return colors, warnings
}

// ParseFile reads the whole source into memory and picks the parser by shape:
// JSON for a .json extension (case insensitive), line oriented text otherwise.
func ParseFile(inputFile string) ([]ColorRecord, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(inputFile), ".json") {
		return ParseJSON(data)
	}
	return ParseText(data), nil
}

// ConvertFile runs the whole pipeline: parse inputFile, enrich every color
// and write the resulting array, indented, to outputFile. Zero parsed colors
// is an error and nothing is written; per-color conversion failures are
// logged as warnings and dropped. Returns the converted colors.
func ConvertFile(inputFile, outputFile string, mode OutputMode) ([]EnrichedColor, error) {
	records, err := ParseFile(inputFile)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoColors, inputFile)
	}
	colors, warnings := Convert(records, mode)
	for _, w := range warnings {
		log.Warnf("Skipped %v", w)
	}
	out, err := json.MarshalIndent(colors, "", "  ")
	if err != nil {
		return nil, err
	}
	out = append(out, '\n')
	if err := os.WriteFile(outputFile, out, 0o644); err != nil { //nolint:gosec // palette output is not sensitive
		return nil, fmt.Errorf("writing %s: %w", outputFile, err)
	}
	log.Infof("Converted: %d colors", len(colors))
	log.Infof("Saved to: %s (%s)", outputFile, mode)
	return colors, nil
}
