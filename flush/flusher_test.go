package flush

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamboui/tamboui/buffer"
	"github.com/tamboui/tamboui/style"
)

// recorder captures backend calls as readable op strings
type recorder struct {
	ops []string
}

func (r *recorder) MoveTo(x, y int) {
	r.ops = append(r.ops, fmt.Sprintf("move(%d,%d)", x, y))
}

func (r *recorder) SetStyle(st style.Style) {
	r.ops = append(r.ops, fmt.Sprintf("style(%v)", st))
}

func (r *recorder) Write(symbol string) {
	r.ops = append(r.ops, "write("+symbol+")")
}

func (r *recorder) reset() {
	r.ops = nil
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func TestFirstFlushRepaints(t *testing.T) {
	rec := &recorder{}
	f := NewFlusher(rec)

	next := buffer.Empty(buffer.NewRect(0, 0, 4, 2))
	f.Flush(next)

	require.Equal(t, 8, rec.count("write("), "every cell painted on first flush")
}

func TestSecondFlushMinimal(t *testing.T) {
	rec := &recorder{}
	f := NewFlusher(rec)
	area := buffer.NewRect(0, 0, 10, 3)

	f.Flush(buffer.Empty(area))
	rec.reset()

	next := buffer.Empty(area)
	next.SetString(2, 1, "ab", style.Empty)
	f.Flush(next)

	// The repaint left the backend already in the empty style, so the
	// run needs one cursor move and no style change
	require.Equal(t, []string{
		"move(2,1)",
		"write(a)",
		"write(b)",
	}, rec.ops)

	// Unchanged frame produces no output at all
	rec.reset()
	same := buffer.Empty(area)
	same.SetString(2, 1, "ab", style.Empty)
	f.Flush(same)
	require.Empty(t, rec.ops)
}

func TestSequentialRunSingleMove(t *testing.T) {
	rec := &recorder{}
	f := NewFlusher(rec)
	area := buffer.NewRect(0, 0, 20, 2)

	f.Flush(buffer.Empty(area))
	rec.reset()

	next := buffer.Empty(area)
	next.SetString(3, 0, "hello", style.Empty)
	next.SetString(12, 0, "world", style.Empty)
	f.Flush(next)

	require.Equal(t, 2, rec.count("move("), "one cursor move per dirty run")
	require.Equal(t, 10, rec.count("write("))
}

func TestStyleCoalescing(t *testing.T) {
	rec := &recorder{}
	f := NewFlusher(rec)
	area := buffer.NewRect(0, 0, 20, 1)

	f.Flush(buffer.Empty(area))
	rec.reset()

	red := style.Empty.Fg(style.Named("red"))
	next := buffer.Empty(area)
	next.SetString(0, 0, "aaa", red)
	next.SetString(3, 0, "bbb", style.Empty.Fg(style.Named("blue")))
	next.SetString(6, 0, "ccc", red)
	f.Flush(next)

	require.Equal(t, 3, rec.count("style("), "style emitted only on transitions")
	require.Equal(t, 9, rec.count("write("))
}

func TestContinuationSkipped(t *testing.T) {
	rec := &recorder{}
	f := NewFlusher(rec)
	area := buffer.NewRect(0, 0, 10, 1)

	f.Flush(buffer.Empty(area))
	rec.reset()

	next := buffer.Empty(area)
	next.SetString(0, 0, "あい", style.Empty)
	f.Flush(next)

	require.Equal(t, 2, rec.count("write("), "continuation cells never reach the backend")
	require.Equal(t, 1, rec.count("move("), "wide writes advance the cursor by display width")
}

func TestWideAdvanceKeepsRunSequential(t *testing.T) {
	rec := &recorder{}
	f := NewFlusher(rec)
	area := buffer.NewRect(0, 0, 10, 1)

	f.Flush(buffer.Empty(area))
	rec.reset()

	// Narrow cell directly after a wide one: cursor already there
	next := buffer.Empty(area)
	next.SetString(0, 0, "あx", style.Empty)
	f.Flush(next)

	require.Equal(t, 1, rec.count("move("))
}

func TestInvalidateRepaints(t *testing.T) {
	rec := &recorder{}
	f := NewFlusher(rec)
	area := buffer.NewRect(0, 0, 3, 2)

	next := buffer.Empty(area)
	next.SetString(0, 0, "ab", style.Empty)
	f.Flush(next)
	rec.reset()

	f.Invalidate()
	f.Flush(next)
	require.Equal(t, 6, rec.count("write("), "invalidate repaints the full frame")
}

func TestResizeRepaints(t *testing.T) {
	rec := &recorder{}
	f := NewFlusher(rec)

	f.Flush(buffer.Empty(buffer.NewRect(0, 0, 4, 1)))
	rec.reset()

	f.Flush(buffer.Empty(buffer.NewRect(0, 0, 6, 1)))
	require.Equal(t, 6, rec.count("write("), "area change forces a repaint")
}
