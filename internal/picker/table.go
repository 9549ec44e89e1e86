package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/unipick/internal/hint"
	"github.com/atomicstack/unipick/internal/theme"
	"github.com/mattn/go-runewidth"
)

// ErrHintOutOfRange reports a well-formed hint that points past the end of
// the current candidate list.
var ErrHintOutOfRange = errors.New("hint beyond candidate range")

// maxCellWidth caps a column at 40 terminal cells so one long name cannot
// starve the grid of columns.
const maxCellWidth = 40

// Table lays candidates out as a hinted grid. Every candidate gets a base-36
// hint label; in name mode each cell also carries the character's display
// name and one cell is the current selection. The rendered text is cached
// and only rebuilt when the candidates, mode, selection or dimensions
// change.
type Table struct {
	codepoints []rune
	mode       Mode
	current    int
	nameOf     func(rune) string
	styles     *theme.Styles

	numCols    int
	numRows    int
	lastRows   int
	lastCols   int
	dirty      bool
	text       string
	recomputes int
}

// NewTable returns an empty table. nameOf supplies display names for name
// mode cells.
func NewTable(nameOf func(rune) string, styles *theme.Styles) *Table {
	return &Table{
		nameOf:   nameOf,
		styles:   styles,
		lastRows: -1,
		lastCols: -1,
	}
}

// SetCandidates replaces the candidate list wholesale and resets the
// selection to the first entry. The table shares the slice with the caller
// and never mutates it.
func (t *Table) SetCandidates(codepoints []rune, mode Mode) {
	t.codepoints = codepoints
	t.mode = mode
	t.current = 0
	t.dirty = true
}

// Len reports the number of candidates.
func (t *Table) Len() int { return len(t.codepoints) }

// Current returns the selected candidate, if any.
func (t *Table) Current() (rune, bool) {
	if len(t.codepoints) == 0 {
		return 0, false
	}
	return t.codepoints[t.current], true
}

// CodepointAtHint resolves a typed hint label to its candidate. It returns
// hint.ErrInvalidHint for malformed labels and ErrHintOutOfRange for labels
// past the end of the list.
func (t *Table) CodepointAtHint(label string) (rune, error) {
	idx, err := hint.Decode(label)
	if err != nil {
		return 0, err
	}
	if idx >= len(t.codepoints) {
		return 0, fmt.Errorf("%w: %q", ErrHintOutOfRange, label)
	}
	return t.codepoints[idx], nil
}

// MoveBy moves the selection by whole rows and single cells. Cell movement
// wraps circularly around the candidate list; row movement clamps at the
// ends.
func (t *Table) MoveBy(rowDelta, colDelta int) {
	n := len(t.codepoints)
	if n == 0 {
		return
	}
	if colDelta != 0 {
		t.current = ((t.current+colDelta)%n + n) % n
		t.dirty = true
	}
	if rowDelta != 0 {
		t.current += rowDelta * t.numCols
		if t.current < 0 {
			t.current = 0
		}
		if t.current > n-1 {
			t.current = n - 1
		}
		t.dirty = true
	}
}

// Recomputes reports how many times the layout has actually been rebuilt,
// as opposed to served from cache.
func (t *Table) Recomputes() int { return t.recomputes }

type cell struct {
	label string
	glyph rune
	desc  string
}

// Layout renders the grid for a viewport of rows lines and cols cells,
// row-major, truncated to the rows that fit. The result is cached until the
// table changes or the viewport dimensions do.
func (t *Table) Layout(rows, cols int) string {
	if !t.dirty && rows == t.lastRows && cols == t.lastCols {
		return t.text
	}
	t.lastRows, t.lastCols = rows, cols
	t.dirty = false
	t.recomputes++
	t.text = ""
	t.numCols, t.numRows = 0, 0

	n := len(t.codepoints)
	if n == 0 || rows < 1 {
		return t.text
	}

	hintWidth := hint.Width(n)
	cells := make([]cell, n)
	longest := 0
	for i, cp := range t.codepoints {
		c := cell{label: hint.Pad(hint.Encode(i), hintWidth), glyph: cp}
		size := hintWidth + 3
		if t.mode == ModeName {
			c.desc = t.nameOf(cp)
			size = hintWidth + 2 + len([]rune(c.desc)) + 2
		}
		if size > longest {
			longest = size
		}
		cells[i] = c
	}

	colWidth := longest + 2
	if colWidth > maxCellWidth {
		colWidth = maxCellWidth
	}
	spaceForDesc := colWidth - 2 - hintWidth - 4
	numCols := cols / colWidth
	if numCols < 1 {
		return t.text
	}
	t.numCols = numCols
	t.numRows = rows

	var b strings.Builder
	rowsLeft := rows
	for i, c := range cells {
		if i > 0 && i%numCols == 0 {
			rowsLeft--
			if rowsLeft <= 0 {
				break
			}
			b.WriteByte('\n')
		}
		t.writeCell(&b, i, c, spaceForDesc)
		b.WriteString("  ")
	}
	t.text = b.String()
	return t.text
}

// writeCell renders one candidate: hint label, glyph padded to two cells,
// and in name mode the description truncated to the per-cell budget. The
// selected cell in name mode gets the highlight background on every part
// but the trailing separator.
func (t *Table) writeCell(b *strings.Builder, i int, c cell, spaceForDesc int) {
	hintStyle := t.styles.CellHint
	glyphStyle := t.styles.CellGlyph
	descStyle := t.styles.CellDesc
	fillStyle := t.styles.CellFill
	if t.mode == ModeName && i == t.current {
		hintStyle = t.styles.SelectedHint
		glyphStyle = t.styles.SelectedGlyph
		descStyle = t.styles.SelectedDesc
		fillStyle = t.styles.SelectedFill
	}

	b.WriteString(hintStyle.Render(c.label))
	b.WriteString(fillStyle.Render(" "))
	b.WriteString(glyphStyle.Render(string(c.glyph)))
	if pad := 2 - runewidth.RuneWidth(c.glyph); pad > 0 {
		b.WriteString(fillStyle.Render(strings.Repeat(" ", pad)))
	}
	if t.mode != ModeName {
		return
	}
	b.WriteString(fillStyle.Render(" "))
	desc := []rune(c.desc)
	if len(desc) > spaceForDesc {
		keep := spaceForDesc - 1
		if keep < 0 {
			keep = 0
		}
		desc = append(desc[:keep], '…')
	}
	b.WriteString(descStyle.Render(string(desc)))
	if extra := spaceForDesc - len(desc); extra > 0 {
		b.WriteString(fillStyle.Render(strings.Repeat(" ", extra)))
	}
}
