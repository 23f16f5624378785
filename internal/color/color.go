package color

import (
	"fmt"
	"math"
	"strconv"
)

// MinContrast is the contrast ratio a candidate secondary color must exceed to be kept.
const MinContrast = 3.5

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{}
)

// HexParseError reports a color string that is not six hex digits.
type HexParseError struct {
	Value string
	Err   error
}

func (e *HexParseError) Error() string {
	return fmt.Sprintf("parse color %q: %v", e.Value, e.Err)
}

func (e *HexParseError) Unwrap() error { return e.Err }

// ParseHex parses a six digit hex color such as "de3129". A leading '#' is not accepted.
func ParseHex(value string) (RGB, error) {
	if len(value) != 6 {
		return RGB{}, &HexParseError{Value: value, Err: fmt.Errorf("expected 6 hex digits, got %d characters", len(value))}
	}
	channels := [3]uint8{}
	for i := range channels {
		n, err := strconv.ParseUint(value[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, &HexParseError{Value: value, Err: err}
		}
		channels[i] = uint8(n)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex formats the color as six lowercase hex digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of c in [0, 1].
func Luminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// Contrast returns the contrast ratio between a and b, from 1 to 21.
func Contrast(a, b RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// ResolveSecondary keeps candidate when it contrasts with primary by more than
// MinContrast. Otherwise it falls back to white or black, whichever reads better.
func ResolveSecondary(primaryHex, candidateHex string) (RGB, error) {
	primary, err := ParseHex(primaryHex)
	if err != nil {
		return RGB{}, err
	}
	candidate, err := ParseHex(candidateHex)
	if err != nil {
		return RGB{}, err
	}
	if Contrast(primary, candidate) > MinContrast {
		return candidate, nil
	}
	if Contrast(primary, White) > Contrast(primary, Black) {
		return White, nil
	}
	return Black, nil
}
