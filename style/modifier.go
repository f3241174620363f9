package style

// Modifier is a bitmask of text attributes
type Modifier uint16

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderlined
	ModSlowBlink
	ModRapidBlink
	ModReversed
	ModHidden
	ModCrossedOut
	ModNone Modifier = 0
)

// Contains returns true if every bit of other is set in m
func (m Modifier) Contains(other Modifier) bool {
	return m&other == other
}
