package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a concrete 24-bit color
type RGB struct {
	R, G, B uint8
}

// ColorKind discriminates the Color variants
type ColorKind uint8

const (
	ColorUnset   ColorKind = iota // No color set; patch target keeps its value
	ColorReset                    // Terminal/theme default, resolved by the caller
	ColorNamed                    // ANSI-16 color by name, overridable by outer styling layers
	ColorIndexed                  // xterm 256-palette index, always wins
	ColorRGBKind                  // 24-bit truecolor, always wins
)

// Color is a tagged union over the ways a cell color can be specified.
// The zero value is the unset color.
type Color struct {
	Kind  ColorKind
	Name  string // ColorNamed only
	Index uint8  // ColorIndexed only
	R     uint8  // ColorRGBKind only
	G     uint8
	B     uint8
}

// Reset is the terminal-default color
var Reset = Color{Kind: ColorReset}

// Named returns a color referencing an ANSI-16 palette entry by name.
// Unknown names resolve to white in ToRGB.
func Named(name string) Color {
	return Color{Kind: ColorNamed, Name: name}
}

// Indexed returns an xterm 256-palette color
func Indexed(i uint8) Color {
	return Color{Kind: ColorIndexed, Index: i}
}

// FromRGB returns a 24-bit color
func FromRGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGBKind, R: r, G: g, B: b}
}

// FromHex parses "#rrggbb" (or "rrggbb") into a 24-bit color
func FromHex(s string) (Color, error) {
	if len(s) == 6 {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return FromRGB(r, g, b), nil
}

// IsSet returns false for the zero (unset) color
func (c Color) IsSet() bool {
	return c.Kind != ColorUnset
}

// ansi16 is the fixed fallback palette for named colors (xterm defaults)
var ansi16 = map[string]RGB{
	"black":          {0, 0, 0},
	"red":            {205, 0, 0},
	"green":          {0, 205, 0},
	"yellow":         {205, 205, 0},
	"blue":           {0, 0, 238},
	"magenta":        {205, 0, 205},
	"cyan":           {0, 205, 205},
	"white":          {229, 229, 229},
	"bright-black":   {127, 127, 127},
	"bright-red":     {255, 0, 0},
	"bright-green":   {0, 255, 0},
	"bright-yellow":  {255, 255, 0},
	"bright-blue":    {92, 92, 255},
	"bright-magenta": {255, 0, 255},
	"bright-cyan":    {0, 255, 255},
	"bright-white":   {255, 255, 255},
}

// cubeLevels are the channel values of the 6x6x6 color cube (indices 16-231)
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first index of the 24-step grayscale ramp
const grayscaleStart = 232

// indexedRGB resolves a 256-palette index to its concrete color
func indexedRGB(i uint8) RGB {
	switch {
	case i < 16:
		// First 16 indices alias the named ANSI palette
		return ansi16[indexNames[i]]
	case i >= grayscaleStart:
		level := 8 + 10*(i-grayscaleStart)
		return RGB{level, level, level}
	default:
		c := i - 16
		return RGB{
			R: cubeLevels[c/36],
			G: cubeLevels[c/6%6],
			B: cubeLevels[c%6],
		}
	}
}

// indexNames maps palette indices 0-15 to their ANSI names
var indexNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// ToRGB resolves any color variant to a concrete RGB triple.
// Reset and unset colors resolve to the caller-supplied theme default;
// unknown names resolve to white. Total over all inputs.
func (c Color) ToRGB(theme RGB) RGB {
	switch c.Kind {
	case ColorNamed:
		if rgb, ok := ansi16[c.Name]; ok {
			return rgb
		}
		return ansi16["white"]
	case ColorIndexed:
		return indexedRGB(c.Index)
	case ColorRGBKind:
		return RGB{c.R, c.G, c.B}
	default:
		return theme
	}
}

// NearestIndexed returns the 256-palette index closest to rgb.
// Search is done in Lab space; indices 0-15 are skipped since their
// values are terminal-configurable.
func NearestIndexed(rgb RGB) uint8 {
	target := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
	best := uint8(16)
	bestDist := -1.0
	for i := 16; i < 256; i++ {
		p := indexedRGB(uint8(i))
		c := colorful.Color{
			R: float64(p.R) / 255,
			G: float64(p.G) / 255,
			B: float64(p.B) / 255,
		}
		d := target.DistanceLab(c)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}
