package picker

// Viewport tracks the cursor and the visible window over the line
// store. Move is the only mutator; it keeps the cursor inside
// [Offset, Offset+Rows) after every call.
type Viewport struct {
	store *Store

	Cursor int
	Offset int
	Rows   int
}

// NewViewport places the cursor on the first selectable line and
// scrolls just enough to make it visible.
func NewViewport(store *Store, rows int) *Viewport {
	if rows < 1 {
		rows = 1
	}
	v := &Viewport{store: store, Rows: rows}
	v.Cursor = store.FirstSelectable()
	if v.Cursor >= v.Rows {
		v.Offset = v.Cursor - v.Rows + 1
	}
	return v
}

// Move shifts the cursor by delta. Targets outside the list are
// no-ops. When skip is true, unselectable targets extend the move one
// line at a time in the same direction until a selectable line or the
// list boundary is reached; when false, an unselectable target is a
// no-op.
func (v *Viewport) Move(delta int, skip bool) {
	step := 1
	if delta < 0 {
		step = -1
	}

	target := v.Cursor + delta
	for {
		if target < 0 || target >= v.store.Len() {
			return
		}
		if !v.store.Unselectable(target) {
			break
		}
		if !skip {
			return
		}
		target += step
	}

	if target == v.Cursor {
		return
	}

	if target < v.Offset {
		v.Offset = target
	} else if target >= v.Offset+v.Rows {
		v.Offset = target - v.Rows + 1
	}
	v.Cursor = target
}
