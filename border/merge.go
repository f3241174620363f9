// Package border decomposes Unicode box-drawing glyphs into four edge
// line styles and merges overlapping glyphs so adjacent bordered regions
// join instead of overwriting each other.
package border

// MergeStrategy selects how two overlapping border glyphs combine
type MergeStrategy uint8

const (
	// Replace never merges: the newer glyph wins unconditionally
	Replace MergeStrategy = iota
	// Exact merges edge-by-edge and gives up (keeps the newer glyph)
	// when the result has no single-glyph representation
	Exact
	// Fuzzy merges like Exact but substitutes the nearest representable
	// combination before giving up
	Fuzzy
)

// Merge resolves the glyph occupying a cell after next is drawn over
// prev. Inputs that are not registered box-drawing glyphs are treated as
// ordinary content: a border draws over text, text never erases a
// border. Total over arbitrary strings; never fails.
func Merge(prev, next string, strategy MergeStrategy) string {
	if strategy == Replace {
		return next
	}

	prevSym, prevIsBorder := Decode(prev)
	nextSym, nextIsBorder := Decode(next)

	switch {
	case !prevIsBorder && !nextIsBorder:
		return next
	case !prevIsBorder:
		return next
	case !nextIsBorder:
		return prev
	}

	merged := prevSym.merge(nextSym)
	if g, ok := symbolToGlyph[merged]; ok {
		return g
	}

	if strategy == Fuzzy {
		if g, ok := symbolToGlyph[merged.simplify()]; ok {
			return g
		}
	}

	// Unrepresentable combination: prefer the latest write
	return next
}
