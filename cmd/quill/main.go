// Command quill opens a text file in a terminal spellchecker: misspellings
// are highlighted, corrections are ranked against a word-popularity corpus,
// and accepted corrections are written back to the file on save.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillspell/quill/session"
	"github.com/quillspell/quill/spell"
	"github.com/quillspell/quill/tui"
)

type appModel struct {
	checker tui.Model
}

func (a appModel) Init() tea.Cmd { return a.checker.Init() }

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.checker, cmd = a.checker.Update(msg)
	return a, cmd
}

func (a appModel) View() string { return a.checker.View() }

func main() {
	log.SetFlags(0)

	dictPath := flag.String("dict", "dict.txt", "correctness dictionary, one word per line")
	corpusPath := flag.String("corpus", "suggestion_dict.txt", "suggestion corpus, word and popularity per line")
	count := flag.Int("suggestions", spell.DefaultSuggestionCount, "suggestions per misspelling")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: quill [flags] file")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	dict, err := spell.LoadDictionaryFile(*dictPath)
	if err != nil {
		log.Fatalf("quill: %v", err)
	}
	corpus, err := spell.LoadCorpusFile(*corpusPath)
	if err != nil {
		log.Fatalf("quill: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("quill: %v", err)
	}

	checker := spell.NewChecker(dict, corpus, spell.CheckerOptions{SuggestionCount: *count})
	sess := session.New(string(data), checker)
	sess.CheckSpelling()

	cfg := tui.Config{
		Save: func(text string) error {
			return os.WriteFile(path, []byte(text), 0o644)
		},
		DictSize:   dict.Size(),
		CorpusSize: corpus.Size(),
	}

	p := tea.NewProgram(appModel{checker: tui.New(sess, cfg)}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("quill: %v", err)
	}
}
