package spell

import "testing"

func testChecker() *Checker {
	dict := NewDictionary([]string{
		"a", "apple", "example", "hello", "is", "some", "text", "this",
		"why", "word", "world", "yellow",
	})
	corpus := NewCorpus([]CorpusEntry{
		{Word: "this", Popularity: 3400000000},
		{Word: "the", Popularity: 23135851162},
		{Word: "hello", Popularity: 144038419},
		{Word: "world", Popularity: 660924206},
	})
	return NewChecker(dict, corpus, CheckerOptions{})
}

func TestChecker_Check(t *testing.T) {
	c := testChecker()
	c.Check([]rune("Ths word aple yelow soem . ? ;"))
	if got, want := c.Count(), 4; got != want {
		t.Fatalf("count=%d, want %d", got, want)
	}
}

func TestChecker_CheckReplacesList(t *testing.T) {
	c := testChecker()
	c.Check([]rune("thsi word"))
	c.Check([]rune("hello world"))
	if got, want := c.Count(), 0; got != want {
		t.Fatalf("count=%d, want %d", got, want)
	}
}

func TestChecker_SortedDisjointRanges(t *testing.T) {
	c := testChecker()
	c.Check([]rune("wrog text, wrogg and wroggg here"))
	list := c.Misspellings()
	for i, m := range list {
		if m.Start > m.End {
			t.Fatalf("entry %d: start %d > end %d", i, m.Start, m.End)
		}
		if i > 0 && list[i-1].End >= m.Start {
			t.Fatalf("entries %d and %d overlap: %+v %+v", i-1, i, list[i-1], m)
		}
	}
}

func TestChecker_CasePreservedInWord(t *testing.T) {
	c := testChecker()
	c.Check([]rune("MiSpELed"))
	m := c.Misspellings()[0]
	if m.Word != "MiSpELed" || m.Start != 0 || m.End != 7 {
		t.Fatalf("misspelling=%+v", m)
	}
}

func TestChecker_ImproperTokensNeverFlagged(t *testing.T) {
	c := testChecker()
	c.Check([]rune("....................a. 12dadf apple3 aple3"))
	if got := c.Count(); got != 0 {
		t.Fatalf("count=%d, want 0 (%+v)", got, c.Misspellings())
	}
}

func TestChecker_SuggestIdempotent(t *testing.T) {
	c := testChecker()
	c.Check([]rune("thsi"))
	c.Suggest(0)
	first := c.Misspellings()[0].Suggestions
	if len(first) == 0 {
		t.Fatalf("no suggestions computed")
	}
	c.Suggest(0)
	second := c.Misspellings()[0].Suggestions
	if len(first) != len(second) {
		t.Fatalf("suggest not idempotent: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("suggest not idempotent: %v vs %v", first, second)
		}
	}
}

func TestChecker_SuggestOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	c := testChecker()
	c.Check([]rune("thsi"))
	c.Suggest(1)
}

func TestChecker_Remove(t *testing.T) {
	c := testChecker()
	c.Check([]rune("aaa bbb ccc"))
	m := c.Remove(1)
	if m.Word != "bbb" {
		t.Fatalf("removed=%+v, want bbb", m)
	}
	if got, want := c.Count(), 2; got != want {
		t.Fatalf("count=%d, want %d", got, want)
	}
	if c.Misspellings()[1].Word != "ccc" {
		t.Fatalf("list after remove: %+v", c.Misspellings())
	}
}

func TestChecker_ShiftFrom(t *testing.T) {
	c := testChecker()
	c.Check([]rune("aaa bbb ccc"))
	before := append([]Misspelling(nil), c.Misspellings()...)

	c.ShiftFrom(1, 3)
	list := c.Misspellings()
	if list[0].Start != before[0].Start || list[0].End != before[0].End {
		t.Fatalf("entry before shift point changed: %+v", list[0])
	}
	for i := 1; i < len(list); i++ {
		if list[i].Start != before[i].Start+3 || list[i].End != before[i].End+3 {
			t.Fatalf("entry %d not shifted by 3: %+v", i, list[i])
		}
	}

	c.ShiftFrom(1, -3)
	for i, m := range c.Misspellings() {
		if m.Start != before[i].Start || m.End != before[i].End {
			t.Fatalf("negative shift did not restore entry %d: %+v", i, m)
		}
	}
}
