package cconv

import (
	"encoding/json"
	"fmt"
	"strings"

	"fortio.org/log"
)

// ColorRecord is one parsed palette entry, before enrichment. Hex is always
// the canonical form produced by NormalizeHex, never any other shape.
type ColorRecord struct {
	ID   string
	Name string
	Hex  string
}

// Candidate field names for the color value of a structured item, consulted
// in this priority order, first present key wins.
var colorKeys = [...]string{"color", "hex", "value"}

// ParseItems builds records from a structured palette: a sequence of items
// each optionally carrying "id", "name" and one of the colorKeys fields.
// Items that aren't objects, have no usable color field, or whose color
// doesn't normalize are skipped; the batch never fails. Missing ids default to
// the zero padded 1-based item position (skipped items still count), missing
// names to the canonical hex.
func ParseItems(items []any) []ColorRecord {
	colors := make([]ColorRecord, 0, len(items))
	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		var colorValue string
		for _, key := range colorKeys {
			if v, found := item[key]; found && v != nil {
				colorValue = fmt.Sprint(v)
				break
			}
		}
		if colorValue == "" {
			continue
		}
		hex, err := NormalizeHex(colorValue)
		if err != nil {
			log.LogVf("Skipping item %d: %v", i+1, err)
			continue
		}
		rec := ColorRecord{ID: fmt.Sprintf("%03d", i+1), Name: hex, Hex: hex}
		if v, found := item["id"]; found && v != nil {
			rec.ID = fmt.Sprint(v)
		}
		if v, found := item["name"]; found && v != nil {
			rec.Name = fmt.Sprint(v)
		}
		colors = append(colors, rec)
	}
	return colors
}

// ParseJSON parses a structured palette out of a JSON array. A malformed
// container is a fatal error; malformed individual items are merely skipped
// (see ParseItems).
func ParseJSON(data []byte) ([]ColorRecord, error) {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing palette JSON: %w", err)
	}
	return ParseItems(items), nil
}

// ParseText builds records from a line oriented palette: one color per line,
// hex token first, the rest of the line is the name (single space joined).
// Blank lines and comment lines (no hex in the first token, e.g. "# note")
// are skipped but still counted: ids are the zero padded raw 1-based line
// number, not an index into the accepted records.
func ParseText(data []byte) []ColorRecord {
	lines := strings.Split(string(data), "\n")
	colors := make([]ColorRecord, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		hex, err := ExtractHex(parts[0])
		if err != nil {
			log.LogVf("Skipping line %d: %v", i+1, err)
			continue
		}
		name := hex
		if len(parts) > 1 {
			name = strings.Join(parts[1:], " ")
		}
		colors = append(colors, ColorRecord{ID: fmt.Sprintf("%03d", i+1), Name: name, Hex: hex})
	}
	return colors
}
