package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/katalvlaran/navgrid/spatial"
)

// Glyphs.
const (
	GlyphWalkable = '.'
	GlyphBlocked  = '#'
	GlyphPath     = '*'
	GlyphStart    = 'S'
	GlyphTarget   = 'T'
)

// DefaultWidth is the width assumed when the terminal size is unknown.
const DefaultWidth = 80

// ErrNilGrid indicates Render was called without a grid.
var ErrNilGrid = errors.New("render: grid is nil")

// Styles.
var (
	StyleWalkable = color.Style{color.FgGray}
	StyleBlocked  = color.Style{color.FgRed, color.OpBold}
	StylePath     = color.Style{color.FgGreen, color.OpBold}
	StyleMark     = color.Style{color.FgYellow, color.BgBlack, color.OpBold}
)

// Mark overrides the glyph of one cell.
type Mark struct {
	Cell  spatial.Cell
	Glyph rune
}

// Start marks c as the start cell.
func Start(c spatial.Cell) Mark { return Mark{Cell: c, Glyph: GlyphStart} }

// Target marks c as the target cell.
func Target(c spatial.Cell) Mark { return Mark{Cell: c, Glyph: GlyphTarget} }

// Renderer writes grids to Out. MaxWidth clips each row to that many
// columns; zero means no limit.
type Renderer struct {
	Out      io.Writer
	Plain    bool
	MaxWidth int
}

// New returns a colour renderer on stdout clipped to the terminal width.
func New() *Renderer {
	return &Renderer{Out: os.Stdout, MaxWidth: TerminalWidth()}
}

// Render draws g with path and marks laid over it. Marks win over the
// path, the path wins over the base glyph. Cells outside g are ignored.
func (r *Renderer) Render(g *spatial.Grid, path []spatial.Cell, marks ...Mark) error {
	if g == nil {
		return ErrNilGrid
	}

	glyphs := make([]rune, g.MaxSize())
	for i := range glyphs {
		if g.At(i).Walkable {
			glyphs[i] = GlyphWalkable
		} else {
			glyphs[i] = GlyphBlocked
		}
	}
	for _, c := range path {
		if g.InBounds(c.X, c.Y) {
			glyphs[g.Index(c.X, c.Y)] = GlyphPath
		}
	}
	for _, m := range marks {
		if g.InBounds(m.Cell.X, m.Cell.Y) {
			glyphs[g.Index(m.Cell.X, m.Cell.Y)] = m.Glyph
		}
	}

	cols := g.Columns()
	if r.MaxWidth > 0 && r.MaxWidth < cols {
		cols = r.MaxWidth
	}

	var sb strings.Builder
	for y := g.Rows() - 1; y >= 0; y-- {
		sb.Reset()
		row := glyphs[g.Index(0, y) : g.Index(0, y)+cols]
		r.writeRow(&sb, row)
		if _, err := fmt.Fprintln(r.out(), sb.String()); err != nil {
			return err
		}
	}

	return nil
}

// writeRow emits runs of equal glyphs under one style.
func (r *Renderer) writeRow(sb *strings.Builder, row []rune) {
	for i := 0; i < len(row); {
		j := i + 1
		for j < len(row) && row[j] == row[i] {
			j++
		}
		run := string(row[i:j])
		if r.Plain {
			sb.WriteString(run)
		} else {
			sb.WriteString(styleOf(row[i]).Sprint(run))
		}
		i = j
	}
}

func (r *Renderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func styleOf(glyph rune) color.Style {
	switch glyph {
	case GlyphWalkable:
		return StyleWalkable
	case GlyphBlocked:
		return StyleBlocked
	case GlyphPath:
		return StylePath
	default:
		return StyleMark
	}
}

// TerminalWidth returns the width of the terminal on stdout, or
// DefaultWidth when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
