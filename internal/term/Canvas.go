package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var blankCell = Glyph{Text: " "}

// Canvas is an in-memory Screen. Writes land in a back buffer and Flush
// publishes them, so readers only ever see complete frames.
type Canvas struct {
	width   int
	height  int
	cursorX int
	cursorY int
	back    [][]Glyph
	front   [][]Glyph
	flushes int
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		back:   newCellGrid(width, height),
		front:  newCellGrid(width, height),
	}
}

func newCellGrid(width, height int) [][]Glyph {
	grid := make([][]Glyph, height)
	for row := range grid {
		grid[row] = make([]Glyph, width)
		for col := range grid[row] {
			grid[row][col] = blankCell
		}
	}
	return grid
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) MoveCursor(x, y int) error {
	c.cursorX, c.cursorY = x, y
	return nil
}

// WriteGlyph puts each rune of the glyph into its own cell starting at the
// cursor and advances the cursor by the rune's display width. Cells outside
// the canvas are clipped.
func (c *Canvas) WriteGlyph(glyph Glyph) error {
	for _, r := range glyph.Text {
		if c.inBounds(c.cursorX, c.cursorY) {
			c.back[c.cursorY][c.cursorX] = Glyph{Text: string(r), Fg: glyph.Fg}
		}
		c.cursorX += max(1, runewidth.RuneWidth(r))
	}
	return nil
}

func (c *Canvas) Flush() error {
	for row := range c.back {
		copy(c.front[row], c.back[row])
	}
	c.flushes++
	return nil
}

// Cell returns the published content at x, y.
func (c *Canvas) Cell(x, y int) Glyph {
	if !c.inBounds(x, y) {
		return blankCell
	}
	return c.front[y][x]
}

func (c *Canvas) Flushes() int {
	return c.flushes
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// String returns the published frame as plain text.
func (c *Canvas) String() string {
	lines := make([]string, 0, c.height)
	for _, row := range c.front {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(cell.Text)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// Render returns the published frame with cell colours applied. Runs of
// cells sharing a colour are styled together.
func (c *Canvas) Render() string {
	lines := make([]string, 0, c.height)
	for _, row := range c.front {
		var line strings.Builder
		var run strings.Builder
		runFg := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runFg == "" {
				line.WriteString(run.String())
			} else {
				line.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runFg)).Render(run.String()))
			}
			run.Reset()
		}
		for _, cell := range row {
			if cell.Fg != runFg {
				flush()
				runFg = cell.Fg
			}
			run.WriteString(cell.Text)
		}
		flush()
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
