package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Rendering defaults
const (
	DefaultMetric     = "word-freq"
	DefaultScheme     = "red-blue"
	DefaultBackground = "#000000"
)

// Cell scaling bounds. Scale 1 keeps one pixel per token; 64 turns a
// thousand-word text into a two-megapixel poster, which is plenty.
const (
	MinScale = 1
	MaxScale = 64
)

// OutputExtension is appended to derived output filenames.
const OutputExtension = ".png"

// ParseHexColor parses an RRGGBB colour, with or without a leading
// hash, into its three channels. Parsing is case-insensitive. Anything
// that is not exactly six hex digits after the optional hash is
// rejected.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hexStr := strings.TrimPrefix(s, "#")
	if len(hexStr) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: expected RRGGBB or #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: expected six hex digits", s)
	}

	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
