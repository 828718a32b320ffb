package picker

import "slices"

// Mode controls the order in which selected lines are emitted.
type Mode int

const (
	// Positional emits selected lines in document order.
	Positional Mode = iota
	// PreserveOrder emits selected lines in the order they were selected.
	PreserveOrder
)

// Selection tracks the set of selected line indices and the sequence
// number assigned to each. The sequence numbers of the current
// selection are always dense: deselecting renumbers everything that
// was selected after the removed entry.
type Selection struct {
	store *Store
	mode  Mode
	order map[int]int
	next  int
}

// NewSelection returns an empty selection over store.
func NewSelection(store *Store, mode Mode) *Selection {
	return &Selection{
		store: store,
		mode:  mode,
		order: map[int]int{},
	}
}

// Mode returns the ordering policy.
func (s *Selection) Mode() Mode { return s.mode }

// Toggle flips the selection state of line i. Unselectable and
// out-of-range targets are no-ops.
func (s *Selection) Toggle(i int) {
	if i < 0 || i >= s.store.Len() || s.store.Unselectable(i) {
		return
	}

	if seq, ok := s.order[i]; ok {
		delete(s.order, i)
		if s.mode == PreserveOrder {
			// Close the gap so the remaining badges stay dense.
			for j, n := range s.order {
				if n > seq {
					s.order[j] = n - 1
				}
			}
			s.next--
		}
		return
	}

	if s.mode == PreserveOrder {
		s.order[i] = s.next
		s.next++
	} else {
		s.order[i] = i
	}
}

// IsSelected reports whether line i is currently selected.
func (s *Selection) IsSelected(i int) bool {
	_, ok := s.order[i]
	return ok
}

// Sequence returns the sequence number assigned to line i, if selected.
func (s *Selection) Sequence(i int) (int, bool) {
	n, ok := s.order[i]
	return n, ok
}

// Count returns the number of selected lines.
func (s *Selection) Count() int { return len(s.order) }

// Ordered returns the selected indices sorted by sequence number. This
// is the emission order on confirmation.
func (s *Selection) Ordered() []int {
	idxs := make([]int, 0, len(s.order))
	for i := range s.order {
		idxs = append(idxs, i)
	}
	slices.SortFunc(idxs, func(a, b int) int {
		return s.order[a] - s.order[b]
	})
	return idxs
}
