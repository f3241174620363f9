// Package style provides immutable cell styling values: colors, text
// attribute modifiers, and the patch-composition rules for overlaying one
// style on another.
package style

// Style describes how a cell is rendered. The zero value is the empty
// style: no colors, no modifiers. Styles are immutable values; every
// method returns a modified copy.
//
// Add and Sub track modifiers explicitly enabled and explicitly cleared,
// which lets styles compose as patches: an inner widget can clear an
// inherited attribute without knowing what the ambient style set.
type Style struct {
	FG        Color
	BG        Color
	Underline Color
	Add       Modifier
	Sub       Modifier
}

// Empty is the identity style for Patch
var Empty = Style{}

// Fg returns a copy with the foreground color replaced.
// Passing the zero Color clears the field.
func (s Style) Fg(c Color) Style {
	s.FG = c
	return s
}

// Bg returns a copy with the background color replaced
func (s Style) Bg(c Color) Style {
	s.BG = c
	return s
}

// UnderlineColor returns a copy with the underline color replaced
func (s Style) UnderlineColor(c Color) Style {
	s.Underline = c
	return s
}

// AddModifier returns a copy with m enabled. m is removed from the
// cleared set so Add and Sub stay disjoint.
func (s Style) AddModifier(m Modifier) Style {
	s.Add |= m
	s.Sub &^= m
	return s
}

// RemoveModifier returns a copy with m explicitly cleared
func (s Style) RemoveModifier(m Modifier) Style {
	s.Sub |= m
	s.Add &^= m
	return s
}

// EffectiveModifiers returns the modifiers that actually apply
func (s Style) EffectiveModifiers() Modifier {
	return s.Add &^ s.Sub
}

// Patch overlays other on s: every field set in other wins, unset fields
// keep s's value. Modifier sets merge with other taking precedence on
// conflicts. Patch(Empty) is the identity.
func (s Style) Patch(other Style) Style {
	if other.FG.IsSet() {
		s.FG = other.FG
	}
	if other.BG.IsSet() {
		s.BG = other.BG
	}
	if other.Underline.IsSet() {
		s.Underline = other.Underline
	}
	s.Add = (s.Add &^ other.Sub) | other.Add
	s.Sub = (s.Sub &^ other.Add) | other.Sub
	return s
}
