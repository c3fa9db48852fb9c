// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/wordtree/tokenize"
)

// wordItem represents a word in the words list
type wordItem struct {
	stat *WordStat
}

func (i wordItem) FilterValue() string { return i.stat.Word }
func (i wordItem) Title() string       { return i.stat.Word }
func (i wordItem) Description() string { return fmt.Sprintf("frequency %d", i.stat.Frequency) }

// BrowserModel represents the word browser state
type BrowserModel struct {
	ready bool

	searchInput    textinput.Model
	wordsList      list.Model
	detailViewport viewport.Model

	comp        *Comparison
	lookupCache *cache.Cache
	caseMode    tokenize.CaseMode
	// words holds every stored word in key order
	words []*WordStat

	focusIndex int // 0: search, 1: words list
	lastQuery  string
	detail     string
	summary    string
	status     string

	styles *Styles

	width  int
	height int
}

// NewBrowserModel builds the browser over an ingested comparison
func NewBrowserModel(comp *Comparison, lc *cache.Cache, mode tokenize.CaseMode) BrowserModel {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "Type a word prefix..."
	ti.PromptStyle = styles.InputPrompt
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	var words []*WordStat
	comp.Tree(KindAVL).Traverse(func(w *WordStat) {
		words = append(words, w)
	})

	wordsList := list.New(wordItems(words), list.NewDefaultDelegate(), 0, 0)
	wordsList.SetShowTitle(false)
	wordsList.SetShowHelp(false)
	wordsList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)

	m := BrowserModel{
		searchInput:    ti,
		wordsList:      wordsList,
		detailViewport: detailViewport,
		comp:           comp,
		lookupCache:    lc,
		caseMode:       mode,
		words:          words,
		styles:         styles,
		summary:        summarize(comp),
	}
	m.showSelected()
	return m
}

func wordItems(words []*WordStat) []list.Item {
	items := make([]list.Item, len(words))
	for i, w := range words {
		items[i] = wordItem{stat: w}
	}
	return items
}

// filterWords returns the words starting with prefix. words must be sorted
// by key, so the matches form one contiguous run.
func filterWords(words []*WordStat, prefix string) []*WordStat {
	if prefix == "" {
		return words
	}
	start := sort.Search(len(words), func(i int) bool { return words[i].Word >= prefix })
	end := start
	for end < len(words) && strings.HasPrefix(words[end].Word, prefix) {
		end++
	}
	return words[start:end]
}

// Init is called when the program starts
func (m BrowserModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.focusIndex == 0 {
				m.focusIndex = 1
				m.searchInput.Blur()
			} else {
				m.focusIndex = 0
				m.searchInput.Focus()
			}
			return m, nil
		case "ctrl+y":
			if m.detail == "" {
				return m, nil
			}
			if err := clipboard.WriteAll(m.detail); err != nil {
				m.status = m.styles.ErrorMessage.Render("Copy failed: " + err.Error())
			} else {
				m.status = m.styles.SuccessMessage.Render("📋 Copied to clipboard")
			}
			return m, nil
		case "enter":
			// Exact lookup of the typed word, even when it is not stored
			if m.focusIndex == 0 {
				if word := m.normalizedQuery(); word != "" {
					m.setDetail(word)
				}
				return m, nil
			}
		case "up", "k":
			if m.focusIndex == 1 {
				m.wordsList.CursorUp()
				m.showSelected()
				return m, nil
			}
		case "down", "j":
			if m.focusIndex == 1 {
				m.wordsList.CursorDown()
				m.showSelected()
				return m, nil
			}
		case "pgup":
			m.detailViewport.LineUp(m.detailViewport.Height)
			return m, nil
		case "pgdown":
			m.detailViewport.LineDown(m.detailViewport.Height)
			return m, nil
		}

		if m.focusIndex == 0 {
			m.searchInput, cmd = m.searchInput.Update(msg)
			if query := m.normalizedQuery(); query != m.lastQuery {
				m.lastQuery = query
				m.wordsList.SetItems(wordItems(filterWords(m.words, query)))
				m.wordsList.ResetSelected()
				m.showSelected()
			}
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, cmd
}

// normalizedQuery applies the case mode used at ingestion so typed words
// match stored keys.
func (m BrowserModel) normalizedQuery() string {
	return m.caseMode.Normalize(strings.TrimSpace(m.searchInput.Value()))
}

func (m *BrowserModel) showSelected() {
	item, ok := m.wordsList.SelectedItem().(wordItem)
	if !ok {
		m.detail = ""
		m.detailViewport.SetContent("No matching words.")
		return
	}
	m.setDetail(item.stat.Word)
}

func (m *BrowserModel) setDetail(word string) {
	m.detail = GetOrFillLookup(m.lookupCache, m.comp, word)
	m.status = ""

	m.detailViewport.SetContent(m.detail + "\n\n" + m.summary)
}

// summarize lists the per tree statistics shown under every detail
func summarize(comp *Comparison) string {
	stats, err := comp.Stats()
	if err != nil {
		return "Statistics unavailable: " + err.Error()
	}
	var b strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&b, "%s: %d nodes, height %d, %d nodes accessed\n", s.Kind, s.Nodes, s.Height, s.NodesAccessed)
	}
	return b.String()
}

// updateLayout updates component dimensions
func (m *BrowserModel) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.searchInput.Width = leftWidth - 4
	m.wordsList.SetSize(leftWidth-2, listHeight-2)
	m.detailViewport.Width = rightWidth - 2
	m.detailViewport.Height = inputHeight + listHeight
}

// View renders the program's UI
func (m BrowserModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputStyle, inputTitle := m.styles.BorderBlurred, " 🔍 Search Words\n"
	listStyle, listTitle := m.styles.BorderBlurred, fmt.Sprintf(" 🌳 Words (%d) ", len(m.wordsList.Items()))
	if m.focusIndex == 0 {
		inputStyle, inputTitle = m.styles.BorderFocused, " 🔍 Search Words (Active)\n"
	} else {
		listStyle = m.styles.BorderFocused
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.searchInput.View(),
		))

	listBox := listStyle.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(listTitle),
			m.wordsList.View(),
		))

	detailBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(fmt.Sprintf(" 📊 %s ", m.comp.Source)),
			m.detailViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		detailBox,
	)

	footer := m.renderHelp()
	if m.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, footer, "  "+m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, footer)
}

func (m BrowserModel) renderHelp() string {
	keys := []string{"enter", "tab", "↑/↓", "pgup/pgdown", "ctrl+y", "esc"}
	descs := []string{"look up typed word", "switch focus", "select word", "scroll details", "copy details", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %d bytes to clipboard.\n", len(text))
	return nil
}

func runBrowser(comp *Comparison, lc *cache.Cache, mode tokenize.CaseMode) error {
	program := tea.NewProgram(
		NewBrowserModel(comp, lc, mode),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
