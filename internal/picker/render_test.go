package picker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, blob string, mode Mode, rows, cols int, hideNumbers bool) (*Renderer, *Selection, *Viewport, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	store := NewStore(blob)
	sel := NewSelection(store, mode)
	view := NewViewport(store, rows)
	r := NewRenderer(&out, store, sel, view, cols, hideNumbers, "\x1b[s", "\x1b[u")
	return r, sel, view, &out
}

func TestFormatLine(t *testing.T) {
	t.Run("pads to terminal width", func(t *testing.T) {
		r, _, _, _ := newTestRenderer(t, "hi\nother", Positional, 5, 8, false)
		// Line 1 is neither cursor nor selected: no style prefix.
		assert.Equal(t, "1 other \x1b[0m", r.FormatLine(1))
	})

	t.Run("truncates to terminal width", func(t *testing.T) {
		r, _, _, _ := newTestRenderer(t, "zz\nabcdefghij", Positional, 5, 6, false)
		got := r.FormatLine(1)
		assert.Equal(t, "1 abcd\x1b[0m", got)
	})

	t.Run("cursor line gets the highlight style", func(t *testing.T) {
		r, _, _, _ := newTestRenderer(t, "a\nb", Positional, 5, 4, false)
		assert.Equal(t, "\x1b[30;103m0 a \x1b[0m", r.FormatLine(0))
	})

	t.Run("selected line gets the selected style", func(t *testing.T) {
		r, sel, _, _ := newTestRenderer(t, "a\nb", Positional, 5, 4, false)
		sel.Toggle(1)
		assert.Equal(t, "\x1b[35m1 b \x1b[0m", r.FormatLine(1))
	})

	t.Run("cursor wins combined with selection", func(t *testing.T) {
		r, sel, _, _ := newTestRenderer(t, "a\nb", Positional, 5, 4, false)
		sel.Toggle(0)
		assert.Equal(t, "\x1b[30;105m0 a \x1b[0m", r.FormatLine(0))
	})

	t.Run("unselectable line is faint", func(t *testing.T) {
		r, _, _, _ := newTestRenderer(t, "a\n\nb", Positional, 5, 4, false)
		assert.Equal(t, "\x1b[2m1   \x1b[0m", r.FormatLine(1))
	})

	t.Run("preserve-order badge", func(t *testing.T) {
		r, sel, _, _ := newTestRenderer(t, "x\ny\nz", PreserveOrder, 5, 10, false)
		sel.Toggle(2)
		sel.Toggle(1)
		assert.Equal(t, "\x1b[35m2 (1) z   \x1b[0m", r.FormatLine(2))
		assert.Equal(t, "\x1b[35m1 (2) y   \x1b[0m", r.FormatLine(1))
	})

	t.Run("no-numbers drops the index but keeps the badge", func(t *testing.T) {
		r, sel, _, _ := newTestRenderer(t, "x\ny", PreserveOrder, 5, 8, true)
		sel.Toggle(1)
		assert.Equal(t, "\x1b[35m(1) y   \x1b[0m", r.FormatLine(1))
	})

	t.Run("trailing whitespace never widens a line", func(t *testing.T) {
		r, _, _, _ := newTestRenderer(t, "zz\nab   ", Positional, 5, 6, false)
		assert.Equal(t, "1 ab  \x1b[0m", r.FormatLine(1))
	})
}

func TestWriteScreen(t *testing.T) {
	r, _, view, out := newTestRenderer(t, "a\nb\nc\nd", Positional, 2, 4, false)

	require.NoError(t, r.WriteScreen())
	got := out.String()

	lines := strings.Split(got, "\r\n")
	require.Len(t, lines, 2, "only the visible slice is drawn")
	assert.Contains(t, lines[0], "0 a")
	assert.Contains(t, lines[1], "1 b")

	// Scroll and repaint: the slice follows the offset.
	out.Reset()
	view.Move(1, true)
	view.Move(1, true)
	require.NoError(t, r.WriteScreen())
	assert.Contains(t, out.String(), "2 c")
	assert.NotContains(t, out.String(), "0 a")
}

func TestWriteScreenShortList(t *testing.T) {
	r, _, _, out := newTestRenderer(t, "only", Positional, 10, 6, false)
	require.NoError(t, r.WriteScreen())
	assert.Equal(t, 1, strings.Count(out.String(), "only"))
	assert.NotContains(t, out.String(), "\r\n")
}

func TestClearScreen(t *testing.T) {
	r, _, _, out := newTestRenderer(t, "a\nb\nc\nd", Positional, 2, 4, false)
	require.NoError(t, r.ClearScreen())
	assert.Equal(t, "    \r\n    ", out.String())

	// Fewer lines than viewport rows: only overwrite what was drawn.
	r2, _, _, out2 := newTestRenderer(t, "a", Positional, 5, 3, false)
	require.NoError(t, r2.ClearScreen())
	assert.Equal(t, "   ", out2.String())
}

func TestMarkSequences(t *testing.T) {
	r, _, _, out := newTestRenderer(t, "a", Positional, 2, 4, false)
	require.NoError(t, r.Mark())
	require.NoError(t, r.ReturnToMark())
	assert.Equal(t, "\x1b[s\x1b[u", out.String())
}
