package spell

import (
	"container/heap"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultSuggestionCount bounds the suggestion list for one misspelling.
const DefaultSuggestionCount = 8

// editDistance is the unit-cost Levenshtein distance in runes: minimum
// insertions, deletions and substitutions transforming a into b.
func editDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// priority is the composite ranking key for a correction candidate: fewer
// edits is strictly better, and among equal edit counts the more popular
// word wins.
type priority struct {
	distance   int
	popularity int64
}

// worse reports whether p ranks strictly worse than q.
func (p priority) worse(q priority) bool {
	if p.distance != q.distance {
		return p.distance > q.distance
	}
	return p.popularity < q.popularity
}

type rankedWord struct {
	word string
	pri  priority
}

// worstHeap holds the current top candidates with the worst at the root,
// so one eviction after every insert keeps peak size at K+1.
type worstHeap []rankedWord

func (h worstHeap) Len() int           { return len(h) }
func (h worstHeap) Less(i, j int) bool { return h[i].pri.worse(h[j].pri) }
func (h worstHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *worstHeap) Push(x any) { *h = append(*h, x.(rankedWord)) }

func (h *worstHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Rank scans the whole corpus and returns the top k corrections for word,
// best first. The misspelled word is lowercased for the comparison; each
// corpus entry is compared in its original casing.
func Rank(word string, corpus *Corpus, k int) []string {
	if k <= 0 || corpus == nil || len(corpus.entries) == 0 {
		return nil
	}
	lower := strings.ToLower(word)

	h := make(worstHeap, 0, k+1)
	for _, entry := range corpus.entries {
		heap.Push(&h, rankedWord{
			word: entry.Word,
			pri: priority{
				distance:   editDistance(lower, entry.Word),
				popularity: entry.Popularity,
			},
		})
		if h.Len() > k {
			heap.Pop(&h)
		}
	}

	out := make([]string, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(rankedWord).word
	}
	return out
}
