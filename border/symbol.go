package border

// Symbol is the four-edge decomposition of a box-drawing glyph: one line
// style per outgoing direction from the cell center
type Symbol struct {
	Right, Up, Left, Down LineStyle
}

// Decode looks up a glyph's edge decomposition. ok is false for anything
// that is not a registered box-drawing character, including empty and
// multi-column strings.
func Decode(glyph string) (Symbol, bool) {
	s, ok := glyphToSymbol[glyph]
	return s, ok
}

// String re-encodes the symbol to its Unicode glyph. Combinations with
// no single-character representation return " ", the unrepresentable
// sentinel; callers must treat that as a failed encode, not a blank
// border cell.
func (s Symbol) String() string {
	if g, ok := symbolToGlyph[s]; ok {
		return g
	}
	return " "
}

// merge combines two symbols edge by edge, the stronger style winning
func (s Symbol) merge(other Symbol) Symbol {
	return Symbol{
		Right: stronger(s.Right, other.Right),
		Up:    stronger(s.Up, other.Up),
		Left:  stronger(s.Left, other.Left),
		Down:  stronger(s.Down, other.Down),
	}
}

// simplify coerces all four edges via LineStyle.simplify
func (s Symbol) simplify() Symbol {
	return Symbol{
		Right: s.Right.simplify(),
		Up:    s.Up.simplify(),
		Left:  s.Left.simplify(),
		Down:  s.Down.simplify(),
	}
}
