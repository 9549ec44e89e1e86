package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/unipick/internal/picker"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// statusReserve is the blank spacer plus the status line kept below the grid.
const statusReserve = 2

// View implements tea.Model. The screen is a fixed header (title bar, mode
// instruction, prompt, chosen line, optional key help), the candidate grid
// in the remaining rows, and a status line at the bottom.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.titleBar(), raw: true})
	lines = append(lines, styledLine{text: instructionFor(m.mode), style: styles.Subtitle})
	lines = append(lines, styledLine{text: m.promptLine(), raw: true})
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.choiceLine(), raw: true})
	if help := helpFor(m.mode); help != "" {
		lines = append(lines, styledLine{text: help, style: styles.Help})
	}

	gridRows := m.height - len(lines) - statusReserve
	if grid := m.table.Layout(gridRows, m.width); grid != "" {
		for _, row := range strings.Split(grid, "\n") {
			lines = append(lines, styledLine{text: row, raw: true})
		}
	}
	for m.height > 0 && len(lines) < m.height-1 {
		lines = append(lines, styledLine{})
	}
	lines = append(lines, styledLine{text: m.statusLine(), style: styles.Status})

	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

var titleSegments = []struct {
	mode picker.Mode
	key  string
}{
	{picker.ModeHex, "F1"},
	{picker.ModeName, "F2"},
	{picker.ModeEmoticon, "F3"},
}

// titleBar renders the reverse-video mode-switch bar. The active mode's
// segment drops the reverse attribute so it reads as highlighted.
func (m *Model) titleBar() string {
	var b strings.Builder
	b.WriteString(styles.TitleBar.Render("Search by: "))
	width := len("Search by: ")
	for i, seg := range titleSegments {
		text := fmt.Sprintf("%s (%s)", seg.mode.Label(), seg.key)
		style := styles.TitleBar
		if seg.mode == m.mode {
			style = styles.TitleActive
		}
		b.WriteString(style.Render(text))
		width += len(text)
		if i < len(titleSegments)-1 {
			b.WriteString(styles.TitleBar.Render("  "))
			width += 2
		}
	}
	if pad := m.width - width; pad > 0 {
		b.WriteString(styles.TitleBar.Render(strings.Repeat(" ", pad)))
	}
	return b.String()
}

func instructionFor(mode picker.Mode) string {
	switch mode {
	case picker.ModeName:
		return "Enter words from the name of the character"
	case picker.ModeEmoticon:
		return "Enter the index for the character you want from the list below"
	default:
		return "Enter the hex code for the character"
	}
}

func helpFor(mode picker.Mode) string {
	switch mode {
	case picker.ModeHex:
		return "Type r followed by the index for the recent entries below"
	case picker.ModeName:
		return "Use Tab or the arrow keys to choose a character from below"
	default:
		return ""
	}
}

// promptLine shows the resolved character (or a red placeholder) in front of
// the text input.
func (m *Model) promptLine() string {
	glyph := styles.PromptInvalid.Render("??")
	if m.hasCurrent {
		glyph = styles.PromptChar.Render(string(m.current))
	}
	return glyph + "> " + m.input.View()
}

func (m *Model) choiceLine() string {
	if !m.hasCurrent {
		return ""
	}
	line := "Chosen: " + styles.ChoiceGlyph.Render(string(m.current)) + fmt.Sprintf(" U+%x", m.current)
	if name := m.names.NameOf(m.current); name != "" {
		line += " " + styles.ChoiceName.Render(name)
	}
	return line
}

func (m *Model) statusLine() string {
	if m.mode == picker.ModeName && m.table.Len() == 0 && strings.TrimSpace(m.input.Value()) != "" {
		if m.suggestion != "" {
			return fmt.Sprintf("No matches. Did you mean %q?", m.suggestion)
		}
		return "No matches."
	}
	if n := m.table.Len(); n > 0 {
		return fmt.Sprintf("%s candidates", humanize.Comma(int64(n)))
	}
	return ""
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if !line.raw && line.style != nil && line.text != "" {
			out[i] = line.style.Render(line.text)
			continue
		}
		out[i] = line.text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
