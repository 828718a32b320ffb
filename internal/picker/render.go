package picker

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ANSI SGR fragments. These are a fixed wire contract; every styled
// line ends with sgrReset so a truncated line never leaks style into
// the next row.
const (
	sgrReset          = "\x1b[0m"
	sgrFaint          = "\x1b[2m"
	sgrSelected       = "\x1b[35m"
	sgrCursor         = "\x1b[30;103m"
	sgrCursorSelected = "\x1b[30;105m"
)

// Renderer maps picker state to terminal bytes. Each redraw restores
// the cursor to a saved mark and repaints the visible slice in a
// single write, so there is no full-screen clear and no flicker.
type Renderer struct {
	out   io.Writer
	store *Store
	sel   *Selection
	view  *Viewport

	cols        int
	hideNumbers bool

	// Cursor save/restore pair; terminal-variant dependent.
	markSeq   string
	unmarkSeq string
}

// NewRenderer returns a renderer writing to out, padding and
// truncating every row to cols terminal cells.
func NewRenderer(out io.Writer, store *Store, sel *Selection, view *Viewport, cols int, hideNumbers bool, markSeq, unmarkSeq string) *Renderer {
	return &Renderer{
		out:         out,
		store:       store,
		sel:         sel,
		view:        view,
		cols:        cols,
		hideNumbers: hideNumbers,
		markSeq:     markSeq,
		unmarkSeq:   unmarkSeq,
	}
}

// lineStyle picks exactly one style by priority:
// cursor+selected > cursor > selected > unselectable > plain.
func (r *Renderer) lineStyle(i int) string {
	cursor := i == r.view.Cursor
	selected := r.sel.IsSelected(i)

	switch {
	case cursor && selected:
		return sgrCursorSelected
	case cursor:
		return sgrCursor
	case selected:
		return sgrSelected
	case r.store.Unselectable(i):
		return sgrFaint
	default:
		return ""
	}
}

// FormatLine renders the viewport row at position row (0 is the top
// visible row): line number prefix, selection badge in preserve-order
// mode, then the line text truncated and space-padded to exactly the
// terminal width.
func (r *Renderer) FormatLine(row int) string {
	i := r.view.Offset + row

	var b strings.Builder
	if !r.hideNumbers {
		fmt.Fprintf(&b, "%d ", i)
	}
	if r.sel.Mode() == PreserveOrder {
		if seq, ok := r.sel.Sequence(i); ok {
			fmt.Fprintf(&b, "(%d) ", seq+1)
		}
	}
	b.WriteString(r.store.Display(i))

	text := runewidth.FillRight(runewidth.Truncate(b.String(), r.cols, ""), r.cols)

	return r.lineStyle(i) + text + sgrReset
}

// WriteScreen paints the visible slice of lines as one batched write.
func (r *Renderer) WriteScreen() error {
	end := r.view.Offset + r.view.Rows
	if end > r.store.Len() {
		end = r.store.Len()
	}

	var b strings.Builder
	for i := r.view.Offset; i < end; i++ {
		if i > r.view.Offset {
			b.WriteString("\r\n")
		}
		b.WriteString(r.FormatLine(i - r.view.Offset))
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// ClearScreen overwrites every row the picker drew with blanks. Used
// once at session end so the interactive UI disappears cleanly.
func (r *Renderer) ClearScreen() error {
	rows := r.view.Rows
	if r.store.Len() < rows {
		rows = r.store.Len()
	}

	blank := strings.Repeat(" ", r.cols)
	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(blank)
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Mark saves the cursor position as the redraw anchor. Issued once,
// immediately before the first WriteScreen.
func (r *Renderer) Mark() error {
	_, err := io.WriteString(r.out, r.markSeq)
	return err
}

// ReturnToMark moves the cursor back to the saved anchor so the next
// write repaints in place.
func (r *Renderer) ReturnToMark() error {
	_, err := io.WriteString(r.out, r.unmarkSeq)
	return err
}
