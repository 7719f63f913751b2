package spell

// Misspelling is one misspelled span in the buffer. Start and End are
// inclusive rune offsets into the buffer at the time of the scan; Word is
// the literal text as found, case preserved. Suggestions is empty until
// computed, ordered best first.
type Misspelling struct {
	Word        string
	Start       int
	End         int
	Suggestions []string
}

// NextSuggestionIndex advances the suggestion cursor with wraparound.
// ok=false means no suggestion is currently selected; with no suggestions
// the cursor stays unselected.
func (m *Misspelling) NextSuggestionIndex(current int, ok bool) (int, bool) {
	if len(m.Suggestions) == 0 {
		return 0, false
	}
	if !ok {
		return 0, true
	}
	next := current + 1
	if next >= len(m.Suggestions) {
		next = 0
	}
	return next, true
}

// PreviousSuggestionIndex is the mirror of NextSuggestionIndex: an
// unselected cursor moves to the last suggestion, and decrementing past
// zero wraps to the last suggestion.
func (m *Misspelling) PreviousSuggestionIndex(current int, ok bool) (int, bool) {
	if len(m.Suggestions) == 0 {
		return 0, false
	}
	last := len(m.Suggestions) - 1
	if !ok || current == 0 {
		return last, true
	}
	return current - 1, true
}
