package session

import "math"

// pastEnd marks a selection that was decremented below index zero;
// reconcile maps it to the last index, completing the wraparound.
const pastEnd = math.MaxInt

// selection is the NoSelection / Selected(index) state machine used for
// both the misspelling list and the suggestion list.
type selection struct {
	active bool
	index  int
}

// Index returns the selected index, ok=false when nothing is selected.
func (s selection) Index() (int, bool) {
	if !s.active {
		return 0, false
	}
	return s.index, true
}

func (s *selection) clear() { *s = selection{} }

func (s *selection) set(index int) { *s = selection{active: true, index: index} }

// next advances with wraparound. With no current selection the first entry
// is selected.
func (s *selection) next(count int) {
	if count == 0 {
		s.clear()
		return
	}
	if !s.active {
		s.set(0)
	} else {
		s.index++
	}
	s.reconcile(count)
}

// prev retreats with wraparound to the last entry. With no current
// selection the first entry is selected, mirroring next.
func (s *selection) prev(count int) {
	if count == 0 {
		s.clear()
		return
	}
	switch {
	case !s.active:
		s.set(0)
	case s.index == 0:
		s.index = pastEnd
	default:
		s.index--
	}
	s.reconcile(count)
}

// reconcile re-validates the selection after the entry count changed: an
// empty list clears the selection, the past-end sentinel lands on the last
// entry, and an index beyond the end re-wraps to the start.
func (s *selection) reconcile(count int) {
	if !s.active {
		return
	}
	if count == 0 {
		s.clear()
		return
	}
	if s.index == pastEnd {
		s.index = count - 1
		return
	}
	if s.index > count-1 {
		s.index = 0
	}
}
