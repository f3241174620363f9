package border

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryBidirectional(t *testing.T) {
	// Every row must round-trip through both maps
	for _, row := range registry {
		sym, ok := Decode(row.glyph)
		require.True(t, ok, "glyph %q must decode", row.glyph)
		require.Equal(t, row.glyph, sym.String(), "glyph %q must re-encode to itself", row.glyph)
	}
}

func TestRegistryUnique(t *testing.T) {
	// No two glyphs may share a decomposition, or the inverse map would
	// silently lose entries
	seen := make(map[Symbol]string, len(registry))
	for _, row := range registry {
		sym := Symbol{Right: row.right, Up: row.up, Left: row.left, Down: row.down}
		prev, dup := seen[sym]
		require.False(t, dup, "glyphs %q and %q share decomposition %+v", prev, row.glyph, sym)
		seen[sym] = row.glyph
	}
	require.Len(t, registry, 125)
}

func TestDecodeKnownGlyphs(t *testing.T) {
	cases := []struct {
		glyph string
		want  Symbol
	}{
		{"─", Symbol{Right: Plain, Left: Plain}},
		{"│", Symbol{Up: Plain, Down: Plain}},
		{"┐", Symbol{Left: Plain, Down: Plain}},
		{"└", Symbol{Right: Plain, Up: Plain}},
		{"┼", Symbol{Right: Plain, Up: Plain, Left: Plain, Down: Plain}},
		{"╋", Symbol{Right: Thick, Up: Thick, Left: Thick, Down: Thick}},
		{"╬", Symbol{Right: Double, Up: Double, Left: Double, Down: Double}},
		{"╭", Symbol{Right: Rounded, Down: Rounded}},
		{"╟", Symbol{Right: Plain, Up: Double, Down: Double}},
		{"╼", Symbol{Right: Thick, Left: Plain}},
		{"┄", Symbol{Right: TripleDash, Left: TripleDash}},
		{"╏", Symbol{Up: DoubleDashThick, Down: DoubleDashThick}},
		{"╷", Symbol{Down: Plain}},
	}
	for _, tc := range cases {
		got, ok := Decode(tc.glyph)
		require.True(t, ok, "glyph %q", tc.glyph)
		require.Equal(t, tc.want, got, "glyph %q", tc.glyph)
	}
}

func TestDecodeNonBorder(t *testing.T) {
	for _, s := range []string{"", " ", "x", "あ", "──", "█", "╳"} {
		_, ok := Decode(s)
		require.False(t, ok, "%q must not decode as a border", s)
	}
}

func TestUnrepresentableSentinel(t *testing.T) {
	// A combination absent from the table encodes to the space sentinel
	odd := Symbol{Right: Rounded, Up: Thick}
	require.Equal(t, " ", odd.String())

	// The all-nothing symbol has no glyph either
	require.Equal(t, " ", Symbol{}.String())
}
