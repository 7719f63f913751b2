package buffer

import "testing"

func TestBuffer_Splice_SameLength(t *testing.T) {
	b := New("Hello world")
	delta := b.Splice(0, 4, "Howdy")
	if got, want := b.Text(), "Howdy world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if delta != 0 {
		t.Fatalf("delta=%d, want 0", delta)
	}
}

func TestBuffer_Splice_Shorter(t *testing.T) {
	b := New("one two three")
	delta := b.Splice(4, 6, "2")
	if got, want := b.Text(), "one 2 three"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if delta != -2 {
		t.Fatalf("delta=%d, want -2", delta)
	}
}

func TestBuffer_Splice_Longer(t *testing.T) {
	b := New("a b c")
	before := b.Len()
	delta := b.Splice(2, 2, "bravo")
	if got, want := b.Text(), "a bravo c"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := delta, 4; got != want {
		t.Fatalf("delta=%d, want %d", got, want)
	}
	if got, want := b.Len(), before+delta; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
}

func TestBuffer_Splice_WholeBuffer(t *testing.T) {
	b := New("mispeled")
	delta := b.Splice(0, b.Len()-1, "misspelled")
	if got, want := b.Text(), "misspelled"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if delta != 2 {
		t.Fatalf("delta=%d, want 2", delta)
	}
}

func TestBuffer_Splice_RuneOffsets(t *testing.T) {
	b := New("naïve café")
	delta := b.Splice(6, 9, "tea")
	if got, want := b.Text(), "naïve tea"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if delta != -1 {
		t.Fatalf("delta=%d, want -1", delta)
	}
}

func TestBuffer_Slice(t *testing.T) {
	b := New("Hello world")
	if got, want := b.Slice(6, 10), "world"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
}

func TestBuffer_Splice_OutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	b := New("abc")
	b.Splice(1, 3, "x")
}
