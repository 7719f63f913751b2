package spell

import "fmt"

// Checker runs full-buffer checks and owns the resulting misspelling list.
// It is not safe for concurrent use; the surrounding event loop serializes
// all calls.
type Checker struct {
	dict   *Dictionary
	corpus *Corpus
	limit  int

	misspellings []Misspelling
}

type CheckerOptions struct {
	SuggestionCount int // default: DefaultSuggestionCount
}

func NewChecker(dict *Dictionary, corpus *Corpus, opt CheckerOptions) *Checker {
	if opt.SuggestionCount <= 0 {
		opt.SuggestionCount = DefaultSuggestionCount
	}
	return &Checker{dict: dict, corpus: corpus, limit: opt.SuggestionCount}
}

// Check re-scans the whole buffer and replaces the misspelling list. The
// resulting list is ordered ascending by Start with pairwise disjoint
// ranges, because tokens never overlap.
func (c *Checker) Check(buf []rune) {
	c.misspellings = c.misspellings[:0]
	for _, tok := range Tokenize(buf) {
		if c.dict.Contains(tok.Word) {
			continue
		}
		c.misspellings = append(c.misspellings, Misspelling{
			Word:  tok.Word,
			Start: tok.Start,
			End:   tok.End,
		})
	}
}

// Misspellings returns the current list. The slice is owned by the checker
// and is invalidated by Check, Remove and ShiftFrom.
func (c *Checker) Misspellings() []Misspelling { return c.misspellings }

// Count returns the number of current misspellings.
func (c *Checker) Count() int { return len(c.misspellings) }

// Suggest populates the suggestion list for the misspelling at index i.
// It is idempotent: an already-populated list is left alone. An index that
// does not refer to an existing misspelling is a caller bug and panics.
func (c *Checker) Suggest(i int) {
	c.mustIndex(i)
	m := &c.misspellings[i]
	if len(m.Suggestions) > 0 {
		return
	}
	m.Suggestions = Rank(m.Word, c.corpus, c.limit)
}

// Remove excises the misspelling at index i and returns it.
func (c *Checker) Remove(i int) Misspelling {
	c.mustIndex(i)
	m := c.misspellings[i]
	c.misspellings = append(c.misspellings[:i], c.misspellings[i+1:]...)
	return m
}

// ShiftFrom adds delta to the Start and End of every misspelling from
// index i onward. Entries before i are untouched. This is the single
// offset-propagation operation run after a buffer edit changes its length.
func (c *Checker) ShiftFrom(i, delta int) {
	for j := i; j < len(c.misspellings); j++ {
		c.misspellings[j].Start += delta
		c.misspellings[j].End += delta
	}
}

func (c *Checker) mustIndex(i int) {
	if i < 0 || i >= len(c.misspellings) {
		panic(fmt.Sprintf("spell: misspelling index %d out of range (count %d)", i, len(c.misspellings)))
	}
}
