package spell

import "testing"

func TestSuggestionCursor_NoSuggestions(t *testing.T) {
	m := &Misspelling{Word: "thsi"}
	if _, ok := m.NextSuggestionIndex(0, false); ok {
		t.Fatalf("next on empty list selected something")
	}
	if _, ok := m.PreviousSuggestionIndex(0, false); ok {
		t.Fatalf("previous on empty list selected something")
	}
}

func TestSuggestionCursor_NextWraps(t *testing.T) {
	m := &Misspelling{Word: "thsi", Suggestions: []string{"this", "the", "thai"}}

	idx, ok := m.NextSuggestionIndex(0, false)
	if !ok || idx != 0 {
		t.Fatalf("first next=(%d,%v), want (0,true)", idx, ok)
	}
	idx, ok = m.NextSuggestionIndex(idx, ok)
	if !ok || idx != 1 {
		t.Fatalf("second next=(%d,%v), want (1,true)", idx, ok)
	}
	idx, _ = m.NextSuggestionIndex(1, true)
	if idx != 2 {
		t.Fatalf("next=%d, want 2", idx)
	}
	idx, _ = m.NextSuggestionIndex(2, true)
	if idx != 0 {
		t.Fatalf("wrap next=%d, want 0", idx)
	}
}

func TestSuggestionCursor_PreviousWraps(t *testing.T) {
	m := &Misspelling{Word: "thsi", Suggestions: []string{"this", "the", "thai"}}

	idx, ok := m.PreviousSuggestionIndex(0, false)
	if !ok || idx != 2 {
		t.Fatalf("first previous=(%d,%v), want (2,true)", idx, ok)
	}
	idx, _ = m.PreviousSuggestionIndex(2, true)
	if idx != 1 {
		t.Fatalf("previous=%d, want 1", idx)
	}
	idx, _ = m.PreviousSuggestionIndex(0, true)
	if idx != 2 {
		t.Fatalf("wrap previous=%d, want 2", idx)
	}
}

func TestSuggestionCursor_RoundTrip(t *testing.T) {
	m := &Misspelling{Word: "thsi", Suggestions: []string{"a", "b", "c", "d"}}
	idx, ok := m.NextSuggestionIndex(0, false)
	for i := 0; i < len(m.Suggestions); i++ {
		idx, ok = m.NextSuggestionIndex(idx, ok)
	}
	if !ok || idx != 0 {
		t.Fatalf("after N+0 steps idx=(%d,%v), want (0,true)", idx, ok)
	}
}
