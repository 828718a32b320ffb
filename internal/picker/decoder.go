package picker

import "io"

// Action is a decoded logical input. The named constants cover the
// control bytes and arrow sequences; any other printable key decodes
// to itself as a one-character action and is ignored by the session
// unless it matches a binding.
type Action string

const (
	ActionNone  Action = ""
	ActionQuit  Action = "quit"
	ActionEnter Action = "enter"
	ActionUp    Action = "up"
	ActionDown  Action = "down"
)

// readSize matches the longest recognized sequence (ESC [ A/B).
const readSize = 3

// Decode classifies the first n bytes of buf. Escape-prefixed
// sequences other than the up/down arrows decode to ActionNone so a
// stray escape tail never triggers a binding.
func Decode(buf []byte, n int) Action {
	if n < 1 {
		return ActionNone
	}

	switch buf[0] {
	case 0x03:
		return ActionQuit
	case 0x0d:
		return ActionEnter
	case 0x1b:
		if n == 3 && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return ActionUp
			case 'B':
				return ActionDown
			}
		}
		return ActionNone
	}

	return Action(buf[:1])
}

// ReadAction blocks on a single fixed-size read and decodes it. A read
// error or zero-length read is end-of-input; the caller treats it like
// quit.
func ReadAction(r io.Reader) (Action, error) {
	buf := make([]byte, readSize)
	n, err := r.Read(buf)
	if err != nil {
		return ActionNone, err
	}
	if n == 0 {
		return ActionNone, io.EOF
	}
	return Decode(buf, n), nil
}
