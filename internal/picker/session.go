package picker

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Session runs the interactive loop: block on the next keystroke,
// decode it, mutate state, repaint, repeat. Single-threaded by
// construction; the read is the only suspension point and every action
// is processed to completion in arrival order.
type Session struct {
	store *Store
	sel   *Selection
	view  *Viewport
	r     *Renderer

	in        io.Reader
	multiline bool
	log       zerolog.Logger
}

// NewSession assembles a session over an already-raw terminal input
// stream. In multiline mode enter toggles and 'c' confirms; otherwise
// the first completed selection confirms immediately.
func NewSession(store *Store, sel *Selection, view *Viewport, r *Renderer, in io.Reader, multiline bool, log zerolog.Logger) *Session {
	return &Session{
		store:     store,
		sel:       sel,
		view:      view,
		r:         r,
		in:        in,
		multiline: multiline,
		log:       log,
	}
}

// Run drives the loop until a terminating action. It returns the
// newline-joined selection and whether the user confirmed; quit,
// ctrl-c, and end-of-input all return ok=false with no output.
func (s *Session) Run() (out string, ok bool, err error) {
	if err := s.r.Mark(); err != nil {
		return "", false, err
	}
	if err := s.r.WriteScreen(); err != nil {
		return "", false, err
	}

	for {
		act, err := ReadAction(s.in)
		if err != nil {
			// Exhausted or broken input stream is a cancel, not a failure.
			s.log.Debug().Err(err).Msg("input stream ended")
			return "", false, nil
		}

		switch act {
		case ActionQuit, "q":
			return "", false, nil

		case ActionUp:
			s.view.Move(-1, true)
			if err := s.redraw(); err != nil {
				return "", false, err
			}

		case ActionDown:
			s.view.Move(1, true)
			if err := s.redraw(); err != nil {
				return "", false, err
			}

		case ActionEnter, "s":
			s.sel.Toggle(s.view.Cursor)
			if !s.multiline && s.sel.Count() > 0 {
				return s.finish()
			}
			if err := s.redraw(); err != nil {
				return "", false, err
			}

		case "c":
			if s.sel.Count() == 0 {
				continue
			}
			return s.finish()
		}
	}
}

func (s *Session) redraw() error {
	if err := s.r.ReturnToMark(); err != nil {
		return err
	}
	return s.r.WriteScreen()
}

// finish erases the picker UI and snapshots the selection in emission
// order.
func (s *Session) finish() (string, bool, error) {
	if err := s.r.ReturnToMark(); err != nil {
		return "", false, err
	}
	if err := s.r.ClearScreen(); err != nil {
		return "", false, err
	}
	if err := s.r.ReturnToMark(); err != nil {
		return "", false, err
	}

	idxs := s.sel.Ordered()
	lines := make([]string, len(idxs))
	for i, idx := range idxs {
		lines[i] = s.store.Line(idx)
	}

	s.log.Debug().Ints("indices", idxs).Msg("selection confirmed")
	return strings.Join(lines, "\n"), true, nil
}
