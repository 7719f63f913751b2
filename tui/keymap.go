package tui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the spellcheck session.
type KeyMap struct {
	NextMisspelling key.Binding
	PrevMisspelling key.Binding
	NextSuggestion  key.Binding
	PrevSuggestion  key.Binding
	Accept          key.Binding
	Save            key.Binding
	Quit            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextMisspelling: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next misspelling")),
		PrevMisspelling: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev misspelling")),
		NextSuggestion:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next suggestion")),
		PrevSuggestion:  key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev suggestion")),
		Accept:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Save:            key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c", "ctrl+d"), key.WithHelp("q", "quit")),
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
