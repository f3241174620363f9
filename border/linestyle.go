package border

// LineStyle classifies one edge of a box-drawing glyph by thickness and
// dash pattern
type LineStyle uint8

const (
	Nothing LineStyle = iota
	Plain
	Thick
	Double
	Rounded
	DoubleDash
	DoubleDashThick
	TripleDash
	TripleDashThick
	QuadrupleDash
	QuadrupleDashThick
)

// precedence orders line styles for edge merging: when two different
// styles meet at one edge the higher-ranked one wins.
// Order: nothing < dashed variants < plain < double < rounded < thick.
var precedence = [...]uint8{
	Nothing:            0,
	DoubleDash:         1,
	TripleDash:         2,
	QuadrupleDash:      3,
	DoubleDashThick:    4,
	TripleDashThick:    5,
	QuadrupleDashThick: 6,
	Plain:              7,
	Double:             8,
	Rounded:            9,
	Thick:              10,
}

// stronger returns the higher-precedence of two line styles
func stronger(a, b LineStyle) LineStyle {
	if precedence[b] > precedence[a] {
		return b
	}
	return a
}

// simplify coerces a style to its nearest plainly-representable form:
// rounding and dash patterns drop to the solid line of matching weight.
// Used by the fuzzy re-encode fallback.
func (s LineStyle) simplify() LineStyle {
	switch s {
	case Rounded, DoubleDash, TripleDash, QuadrupleDash:
		return Plain
	case DoubleDashThick, TripleDashThick, QuadrupleDashThick:
		return Thick
	default:
		return s
	}
}

func (s LineStyle) String() string {
	switch s {
	case Nothing:
		return "nothing"
	case Plain:
		return "plain"
	case Thick:
		return "thick"
	case Double:
		return "double"
	case Rounded:
		return "rounded"
	case DoubleDash:
		return "double-dash"
	case DoubleDashThick:
		return "double-dash-thick"
	case TripleDash:
		return "triple-dash"
	case TripleDashThick:
		return "triple-dash-thick"
	case QuadrupleDash:
		return "quadruple-dash"
	case QuadrupleDashThick:
		return "quadruple-dash-thick"
	default:
		return "invalid"
	}
}
