// Package picker implements the interactive line selector: the line
// store, selection model, viewport, input decoding, rendering, and the
// session loop that ties them together.
package picker

import (
	"strings"
	"unicode"
)

// Store holds the ordered input lines. Lines are identified by their
// zero-based position and are immutable after load.
type Store struct {
	raw     []string
	display []string
	blank   []bool
}

// NewStore splits the input blob on newlines. The raw content is what
// gets emitted on confirmation; the display form is right-trimmed so
// trailing whitespace never affects rendering width. An empty blob
// yields a single empty (unselectable) line.
func NewStore(blob string) *Store {
	raw := strings.Split(blob, "\n")

	s := &Store{
		raw:     raw,
		display: make([]string, len(raw)),
		blank:   make([]bool, len(raw)),
	}
	for i, line := range raw {
		s.display[i] = strings.TrimRightFunc(line, unicode.IsSpace)
		s.blank[i] = strings.TrimSpace(line) == ""
	}

	return s
}

// Len returns the number of lines.
func (s *Store) Len() int { return len(s.raw) }

// Line returns the original, untrimmed content of line i.
func (s *Store) Line(i int) string { return s.raw[i] }

// Display returns the right-trimmed content of line i used for rendering.
func (s *Store) Display(i int) string { return s.display[i] }

// Unselectable reports whether line i is blank and therefore cannot be
// selected or rested on by the cursor.
func (s *Store) Unselectable(i int) bool { return s.blank[i] }

// FirstSelectable returns the index of the first selectable line, or 0
// when every line is unselectable.
func (s *Store) FirstSelectable() int {
	for i := range s.blank {
		if !s.blank[i] {
			return i
		}
	}
	return 0
}
