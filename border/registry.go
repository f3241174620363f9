package border

// registryRow pairs a glyph with its four-edge decomposition.
// The whole registry is generated from this one list so the forward and
// inverse maps cannot drift apart.
type registryRow struct {
	glyph                 string
	right, up, left, down LineStyle
}

// registry enumerates every representable box-drawing glyph: the Unicode
// Box Drawing block U+2500-U+257F except the three diagonals, with the
// light arc corners carrying the rounded edge style. The table is fixed
// wire data; partial transcriptions silently mis-merge uncommon
// junctions, so every row is present.
var registry = []registryRow{
	// Straight lines
	{"─", Plain, Nothing, Plain, Nothing},
	{"━", Thick, Nothing, Thick, Nothing},
	{"│", Nothing, Plain, Nothing, Plain},
	{"┃", Nothing, Thick, Nothing, Thick},

	// Dashed lines
	{"┄", TripleDash, Nothing, TripleDash, Nothing},
	{"┅", TripleDashThick, Nothing, TripleDashThick, Nothing},
	{"┆", Nothing, TripleDash, Nothing, TripleDash},
	{"┇", Nothing, TripleDashThick, Nothing, TripleDashThick},
	{"┈", QuadrupleDash, Nothing, QuadrupleDash, Nothing},
	{"┉", QuadrupleDashThick, Nothing, QuadrupleDashThick, Nothing},
	{"┊", Nothing, QuadrupleDash, Nothing, QuadrupleDash},
	{"┋", Nothing, QuadrupleDashThick, Nothing, QuadrupleDashThick},
	{"╌", DoubleDash, Nothing, DoubleDash, Nothing},
	{"╍", DoubleDashThick, Nothing, DoubleDashThick, Nothing},
	{"╎", Nothing, DoubleDash, Nothing, DoubleDash},
	{"╏", Nothing, DoubleDashThick, Nothing, DoubleDashThick},

	// Light and heavy corners
	{"┌", Plain, Nothing, Nothing, Plain},
	{"┍", Thick, Nothing, Nothing, Plain},
	{"┎", Plain, Nothing, Nothing, Thick},
	{"┏", Thick, Nothing, Nothing, Thick},
	{"┐", Nothing, Nothing, Plain, Plain},
	{"┑", Nothing, Nothing, Thick, Plain},
	{"┒", Nothing, Nothing, Plain, Thick},
	{"┓", Nothing, Nothing, Thick, Thick},
	{"└", Plain, Plain, Nothing, Nothing},
	{"┕", Thick, Plain, Nothing, Nothing},
	{"┖", Plain, Thick, Nothing, Nothing},
	{"┗", Thick, Thick, Nothing, Nothing},
	{"┘", Nothing, Plain, Plain, Nothing},
	{"┙", Nothing, Plain, Thick, Nothing},
	{"┚", Nothing, Thick, Plain, Nothing},
	{"┛", Nothing, Thick, Thick, Nothing},

	// Vertical-and-right tees
	{"├", Plain, Plain, Nothing, Plain},
	{"┝", Thick, Plain, Nothing, Plain},
	{"┞", Plain, Thick, Nothing, Plain},
	{"┟", Plain, Plain, Nothing, Thick},
	{"┠", Plain, Thick, Nothing, Thick},
	{"┡", Thick, Thick, Nothing, Plain},
	{"┢", Thick, Plain, Nothing, Thick},
	{"┣", Thick, Thick, Nothing, Thick},

	// Vertical-and-left tees
	{"┤", Nothing, Plain, Plain, Plain},
	{"┥", Nothing, Plain, Thick, Plain},
	{"┦", Nothing, Thick, Plain, Plain},
	{"┧", Nothing, Plain, Plain, Thick},
	{"┨", Nothing, Thick, Plain, Thick},
	{"┩", Nothing, Thick, Thick, Plain},
	{"┪", Nothing, Plain, Thick, Thick},
	{"┫", Nothing, Thick, Thick, Thick},

	// Down-and-horizontal tees
	{"┬", Plain, Nothing, Plain, Plain},
	{"┭", Plain, Nothing, Thick, Plain},
	{"┮", Thick, Nothing, Plain, Plain},
	{"┯", Thick, Nothing, Thick, Plain},
	{"┰", Plain, Nothing, Plain, Thick},
	{"┱", Plain, Nothing, Thick, Thick},
	{"┲", Thick, Nothing, Plain, Thick},
	{"┳", Thick, Nothing, Thick, Thick},

	// Up-and-horizontal tees
	{"┴", Plain, Plain, Plain, Nothing},
	{"┵", Plain, Plain, Thick, Nothing},
	{"┶", Thick, Plain, Plain, Nothing},
	{"┷", Thick, Plain, Thick, Nothing},
	{"┸", Plain, Thick, Plain, Nothing},
	{"┹", Plain, Thick, Thick, Nothing},
	{"┺", Thick, Thick, Plain, Nothing},
	{"┻", Thick, Thick, Thick, Nothing},

	// Crosses
	{"┼", Plain, Plain, Plain, Plain},
	{"┽", Plain, Plain, Thick, Plain},
	{"┾", Thick, Plain, Plain, Plain},
	{"┿", Thick, Plain, Thick, Plain},
	{"╀", Plain, Thick, Plain, Plain},
	{"╁", Plain, Plain, Plain, Thick},
	{"╂", Plain, Thick, Plain, Thick},
	{"╃", Plain, Thick, Thick, Plain},
	{"╄", Thick, Thick, Plain, Plain},
	{"╅", Plain, Plain, Thick, Thick},
	{"╆", Thick, Plain, Plain, Thick},
	{"╇", Thick, Thick, Thick, Plain},
	{"╈", Thick, Plain, Thick, Thick},
	{"╉", Plain, Thick, Thick, Thick},
	{"╊", Thick, Thick, Plain, Thick},
	{"╋", Thick, Thick, Thick, Thick},

	// Double lines and single/double junctions
	{"═", Double, Nothing, Double, Nothing},
	{"║", Nothing, Double, Nothing, Double},
	{"╒", Double, Nothing, Nothing, Plain},
	{"╓", Plain, Nothing, Nothing, Double},
	{"╔", Double, Nothing, Nothing, Double},
	{"╕", Nothing, Nothing, Double, Plain},
	{"╖", Nothing, Nothing, Plain, Double},
	{"╗", Nothing, Nothing, Double, Double},
	{"╘", Double, Plain, Nothing, Nothing},
	{"╙", Plain, Double, Nothing, Nothing},
	{"╚", Double, Double, Nothing, Nothing},
	{"╛", Nothing, Plain, Double, Nothing},
	{"╜", Nothing, Double, Plain, Nothing},
	{"╝", Nothing, Double, Double, Nothing},
	{"╞", Double, Plain, Nothing, Plain},
	{"╟", Plain, Double, Nothing, Double},
	{"╠", Double, Double, Nothing, Double},
	{"╡", Nothing, Plain, Double, Plain},
	{"╢", Nothing, Double, Plain, Double},
	{"╣", Nothing, Double, Double, Double},
	{"╤", Double, Nothing, Double, Plain},
	{"╥", Plain, Nothing, Plain, Double},
	{"╦", Double, Nothing, Double, Double},
	{"╧", Double, Plain, Double, Nothing},
	{"╨", Plain, Double, Plain, Nothing},
	{"╩", Double, Double, Double, Nothing},
	{"╪", Double, Plain, Double, Plain},
	{"╫", Plain, Double, Plain, Double},
	{"╬", Double, Double, Double, Double},

	// Arc corners
	{"╭", Rounded, Nothing, Nothing, Rounded},
	{"╮", Nothing, Nothing, Rounded, Rounded},
	{"╯", Nothing, Rounded, Rounded, Nothing},
	{"╰", Rounded, Rounded, Nothing, Nothing},

	// Half lines
	{"╴", Nothing, Nothing, Plain, Nothing},
	{"╵", Nothing, Plain, Nothing, Nothing},
	{"╶", Plain, Nothing, Nothing, Nothing},
	{"╷", Nothing, Nothing, Nothing, Plain},
	{"╸", Nothing, Nothing, Thick, Nothing},
	{"╹", Nothing, Thick, Nothing, Nothing},
	{"╺", Thick, Nothing, Nothing, Nothing},
	{"╻", Nothing, Nothing, Nothing, Thick},

	// Mixed-weight transitions
	{"╼", Thick, Nothing, Plain, Nothing},
	{"╽", Nothing, Plain, Nothing, Thick},
	{"╾", Plain, Nothing, Thick, Nothing},
	{"╿", Nothing, Thick, Nothing, Plain},
}

var (
	glyphToSymbol map[string]Symbol
	symbolToGlyph map[Symbol]string
)

func init() {
	glyphToSymbol = make(map[string]Symbol, len(registry))
	symbolToGlyph = make(map[Symbol]string, len(registry))
	for _, row := range registry {
		s := Symbol{Right: row.right, Up: row.up, Left: row.left, Down: row.down}
		glyphToSymbol[row.glyph] = s
		symbolToGlyph[s] = row.glyph
	}
}
