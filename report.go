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
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Format selects how report tables are rendered
type Format string

const (
	FormatPlain    Format = "plain"
	FormatStyled   Format = "styled"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPlain, nil
	case FormatPlain, FormatStyled, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want plain, styled or markdown)", s)
	}
}

// Traversal selects which traversal tables a report contains
type Traversal string

const (
	TraversalAll        Traversal = "all"
	TraversalInOrder    Traversal = "inorder"
	TraversalLevelOrder Traversal = "levelorder"
	TraversalNone       Traversal = "none"
)

func ParseTraversal(s string) (Traversal, error) {
	switch t := Traversal(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TraversalAll, nil
	case TraversalAll, TraversalInOrder, TraversalLevelOrder, TraversalNone:
		return t, nil
	default:
		return "", fmt.Errorf("unknown traversal %q (want all, inorder, levelorder or none)", s)
	}
}

func (t Traversal) includes(other Traversal) bool {
	return t == TraversalAll || t == other
}

// Table is one numbered table of the comparison report
type Table struct {
	Number  int
	Title   string
	Caption string
	Headers []string
	Rows    [][]string
	// WordColumn marks tables whose first column holds words and is padded
	// to the configured word width.
	WordColumn bool
}

var frequencyHeaders = []string{"Word", "Frequency"}

// buildReport lays out the six comparison tables.
// Tables keep their numbers (1-4 traversals, 5 and 6 statistics) even when
// some are left out.
func buildReport(c *Comparison, traversal Traversal, withStats bool) ([]Table, error) {
	var tables []Table
	number := 1

	passes := []struct {
		kind    Traversal
		caption string
		walk    func(WordTree, func(*WordStat))
	}{
		{TraversalInOrder, "In-order Traversal", WordTree.Traverse},
		{TraversalLevelOrder, "Level-order Traversal", WordTree.LevelTraverse},
	}

	for _, pass := range passes {
		for _, kind := range c.Kinds() {
			if traversal.includes(pass.kind) {
				var rows [][]string
				pass.walk(c.Tree(kind), func(w *WordStat) {
					rows = append(rows, []string{w.Word, strconv.Itoa(w.Frequency)})
				})
				tables = append(tables, Table{
					Number:     number,
					Title:      fmt.Sprintf("%s [%s]", kind.Title(), c.Source),
					Caption:    pass.caption,
					Headers:    frequencyHeaders,
					Rows:       rows,
					WordColumn: true,
				})
			}
			number++
		}
	}

	if !withStats {
		return tables, nil
	}

	stats, err := c.Stats()
	if err != nil {
		return nil, err
	}

	heights := Table{
		Number:  5,
		Title:   "Number of Nodes vs Height",
		Caption: fmt.Sprintf("Using Data in [%s]", c.Source),
		Headers: []string{"Tree", "# Nodes", "Height"},
	}
	accessed := Table{
		Number:  6,
		Title:   "Total Number of Nodes Accessed",
		Caption: fmt.Sprintf("Searching for all the Words in [%s]", c.Source),
		Headers: []string{"Tree", "# Nodes"},
	}
	for _, s := range stats {
		heights.Rows = append(heights.Rows, []string{s.Kind.String(), strconv.Itoa(s.Nodes), strconv.Itoa(s.Height)})
		accessed.Rows = append(accessed.Rows, []string{s.Kind.String(), strconv.Itoa(s.NodesAccessed)})
	}
	return append(tables, heights, accessed), nil
}

// renderReport writes tables to w in the requested format
func renderReport(w io.Writer, tables []Table, format Format, wordWidth int) error {
	switch format {
	case FormatStyled:
		return renderStyled(w, tables, NewStyles())
	case FormatMarkdown:
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		out, err := renderer.Render(markdownReport(tables))
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := io.WriteString(w, plainReport(tables, wordWidth))
		return err
	}
}

// plainReport renders tables as fixed width text
func plainReport(tables []Table, wordWidth int) string {
	var b strings.Builder
	for _, t := range tables {
		widths := columnWidths(t, wordWidth)
		total := len(widths) - 1
		for _, w := range widths {
			total += w
		}
		total = max(total, 35)

		fmt.Fprintf(&b, "Table %d: %s\n", t.Number, t.Title)
		fmt.Fprintf(&b, "%s\n", t.Caption)
		fmt.Fprintf(&b, "%s\n", strings.Repeat("=", total))
		b.WriteString(formatRow(t.Headers, widths))
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", total))
		for _, row := range t.Rows {
			b.WriteString(formatRow(row, widths))
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Repeat("-", total))
	}
	return b.String()
}

func columnWidths(t Table, wordWidth int) []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	if t.WordColumn && len(widths) > 0 {
		widths[0] = max(widths[0], wordWidth)
	}
	// Tree names are short; keep the statistics tables readable.
	if !t.WordColumn && len(widths) > 0 {
		widths[0] = max(widths[0], 14)
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := 0
		if i < len(widths) {
			pad = widths[i] - lipgloss.Width(cell)
		}
		if i == len(cells)-1 {
			pad = 0
		}
		parts[i] = cell + strings.Repeat(" ", max(pad, 0))
	}
	return strings.Join(parts, " ") + "\n"
}

func renderStyled(w io.Writer, tables []Table, styles *Styles) error {
	for _, t := range tables {
		tbl := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
			Headers(t.Headers...).
			Rows(t.Rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return styles.Header
				}
				return styles.Cell
			})

		block := lipgloss.JoinVertical(lipgloss.Left,
			styles.Title.Render(fmt.Sprintf("Table %d: %s", t.Number, t.Title)),
			styles.Subtitle.Render(t.Caption),
			tbl.String(),
		)
		if _, err := fmt.Fprintf(w, "%s\n\n", block); err != nil {
			return err
		}
	}
	return nil
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`")

// markdownReport renders tables as GitHub flavoured markdown
func markdownReport(tables []Table) string {
	var b strings.Builder
	for _, t := range tables {
		fmt.Fprintf(&b, "### Table %d: %s\n\n", t.Number, markdownEscaper.Replace(t.Title))
		fmt.Fprintf(&b, "_%s_\n\n", markdownEscaper.Replace(t.Caption))
		fmt.Fprintf(&b, "| %s |\n", strings.Join(t.Headers, " | "))
		fmt.Fprintf(&b, "|%s\n", strings.Repeat(" --- |", len(t.Headers)))
		for _, row := range t.Rows {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = markdownEscaper.Replace(cell)
			}
			fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
