package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.viewport.View())
	sb.WriteByte('\n')
	sb.WriteString(m.renderPanes())
	sb.WriteByte('\n')
	sb.WriteString(m.renderStatus())
	return sb.String()
}

// renderBuffer renders the whole buffer with every misspelled span styled
// and the selected span emphasized. Misspellings are ordered and disjoint,
// so one left-to-right walk is enough.
func (m Model) renderBuffer() string {
	runes := []rune(m.sess.Text())
	selIdx, selOK := m.sess.SelectedMisspellingIndex()

	var sb strings.Builder
	last := 0
	for i, ms := range m.sess.Misspellings() {
		if ms.Start > last {
			sb.WriteString(m.cfg.Style.Text.Render(string(runes[last:ms.Start])))
		}
		st := m.cfg.Style.Misspelled
		if selOK && i == selIdx {
			st = m.cfg.Style.SelectedMisspelled
		}
		sb.WriteString(st.Render(string(runes[ms.Start : ms.End+1])))
		last = ms.End + 1
	}
	if last < len(runes) {
		sb.WriteString(m.cfg.Style.Text.Render(string(runes[last:])))
	}
	return sb.String()
}

func (m Model) renderPanes() string {
	paneWidth := m.width / 2
	if paneWidth < 10 {
		paneWidth = 10
	}

	var words []string
	for _, ms := range m.sess.Misspellings() {
		words = append(words, ms.Word)
	}
	selMis, selMisOK := m.sess.SelectedMisspellingIndex()
	selSug, selSugOK := m.sess.SelectedSuggestionIndex()

	left := m.renderPane("Misspellings", words, selMis, selMisOK, paneWidth)
	right := m.renderPane("Suggestions", m.sess.Suggestions(), selSug, selSugOK, paneWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderPane renders a fixed-height list with the selection kept visible.
func (m Model) renderPane(title string, items []string, selected int, selOK bool, width int) string {
	lines := make([]string, 0, paneRows+1)
	lines = append(lines, m.cfg.Style.PaneTitle.Render(runewidth.Truncate(title, width, "…")))

	offset := 0
	if selOK && selected >= paneRows {
		offset = selected - paneRows + 1
	}
	for row := 0; row < paneRows; row++ {
		i := offset + row
		if i >= len(items) {
			lines = append(lines, "")
			continue
		}
		item := runewidth.Truncate(items[i], width-2, "…")
		if selOK && i == selected {
			lines = append(lines, m.cfg.Style.ListSelected.Render("> "+item))
		} else {
			lines = append(lines, m.cfg.Style.ListItem.Render("  "+item))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	counts := fmt.Sprintf("%s words · %s corpus entries · %d misspellings",
		humanize.Comma(int64(m.cfg.DictSize)),
		humanize.Comma(int64(m.cfg.CorpusSize)),
		len(m.sess.Misspellings()))
	line := counts + "  " + m.helpLine()
	if m.status != "" {
		line = m.status + "  " + line
	}
	if m.width > 0 {
		line = runewidth.Truncate(line, m.width, "")
	}
	return m.cfg.Style.Status.Render(line)
}

func (m Model) helpLine() string {
	km := m.cfg.KeyMap
	parts := make([]string, 0, 5)
	for _, b := range []struct{ k, d string }{
		{km.NextMisspelling.Help().Key, km.NextMisspelling.Help().Desc},
		{km.NextSuggestion.Help().Key, km.NextSuggestion.Help().Desc},
		{km.Accept.Help().Key, km.Accept.Help().Desc},
		{km.Save.Help().Key, km.Save.Help().Desc},
		{km.Quit.Help().Key, km.Quit.Help().Desc},
	} {
		parts = append(parts, b.k+" "+b.d)
	}
	return strings.Join(parts, "  ")
}
