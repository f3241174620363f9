package flush

import "github.com/tamboui/tamboui/style"

// Backend receives the ordered write operations produced by a Flusher
// and turns them into real terminal output (cursor escapes, SGR codes,
// UTF-8 bytes). The escape encoding itself lives entirely behind this
// interface.
type Backend interface {
	// MoveTo positions the cursor at an absolute cell coordinate
	MoveTo(x, y int)

	// SetStyle switches the style applied to subsequent writes. Called
	// only when the style actually differs from the previous write.
	SetStyle(st style.Style)

	// Write emits one grapheme cluster at the cursor; the terminal
	// advances the cursor by the cluster's display width
	Write(symbol string)
}
