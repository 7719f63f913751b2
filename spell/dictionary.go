package spell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Dictionary is an immutable sorted list of known-correct words. It is used
// only for set-membership testing, never for suggestions.
type Dictionary struct {
	words []string
}

// NewDictionary builds a dictionary from words. Input is trimmed,
// lowercased, sorted and deduplicated; order of the input does not matter.
func NewDictionary(words []string) *Dictionary {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return &Dictionary{words: out}
}

// LoadDictionary reads a dictionary resource: one word per line, blank
// lines skipped. An empty resource is an error.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if len(words) == 0 {
		return nil, errors.New("dictionary is empty")
	}
	return NewDictionary(words), nil
}

// LoadDictionaryFile loads a dictionary from a file on disk.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	d, err := LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Size returns the number of dictionary words.
func (d *Dictionary) Size() int { return len(d.words) }

// Contains reports whether word is a known-correct word. The test is
// case-insensitive and fails closed: the empty string and anything
// containing a space are never correct.
func (d *Dictionary) Contains(word string) bool {
	if word == "" || strings.Contains(word, " ") {
		return false
	}
	if len(d.words) == 0 {
		return false
	}
	w := strings.ToLower(word)

	// The bounds converge to a narrow window rather than to a guaranteed
	// match, so both ends are probed after the loop.
	left, right := 0, len(d.words)-1
	for left != right {
		middle := (left + right + 1) / 2
		if d.words[middle] > w {
			right = middle - 1
		} else {
			left = middle
		}
	}
	return d.words[left] == w || d.words[right] == w
}
