package spell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CorpusEntry pairs a suggestion word with its popularity count.
type CorpusEntry struct {
	Word       string
	Popularity int64
}

// Corpus is the immutable word+popularity list used to rank correction
// candidates. It is distinct from the correctness Dictionary: entries keep
// their original casing and a corpus word need not be a dictionary word.
type Corpus struct {
	entries []CorpusEntry
}

func NewCorpus(entries []CorpusEntry) *Corpus {
	out := make([]CorpusEntry, len(entries))
	copy(out, entries)
	return &Corpus{entries: out}
}

// LoadCorpus reads a corpus resource: one entry per line in the form
// "<word> <popularity>", blank lines skipped. Malformed lines are errors.
func LoadCorpus(r io.Reader) (*Corpus, error) {
	var entries []CorpusEntry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("corpus line %d: want \"word popularity\", got %q", line, text)
		}
		pop, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corpus line %d: bad popularity %q: %w", line, fields[1], err)
		}
		entries = append(entries, CorpusEntry{Word: fields[0], Popularity: pop})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return NewCorpus(entries), nil
}

// LoadCorpusFile loads a suggestion corpus from a file on disk.
func LoadCorpusFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	c, err := LoadCorpus(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Size returns the number of corpus entries.
func (c *Corpus) Size() int { return len(c.entries) }
