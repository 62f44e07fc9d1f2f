package term

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
)

// Terminal is the output side of the rendering boundary: it answers geometry
// queries and turns write operations into buffered ANSI output. One flush
// per frame keeps partially drawn cells off the wire.
type Terminal struct {
	out *os.File
	w   *bufio.Writer

	// fg colour state within one Apply batch, so runs of same-coloured
	// cells cost one SGR sequence.
	fg    ascii.RGB
	fgSet bool
}

// New wraps an output tty, normally os.Stdout.
func New(out *os.File) *Terminal {
	return &Terminal{
		out: out,
		w:   bufio.NewWriterSize(out, 32*1024),
	}
}

// IsTTY reports whether the output is an interactive terminal.
func (t *Terminal) IsTTY() bool {
	return term.IsTerminal(int(t.out.Fd()))
}

// Geometry queries the current terminal size. Queried once per cycle; the
// result is the single source of truth for that cycle's buffers.
func (t *Terminal) Geometry(cellAspect float64) (ascii.Geometry, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return ascii.Geometry{}, fmt.Errorf("querying terminal size: %w", err)
	}
	return ascii.Geometry{Cols: cols, Rows: rows, CellAspect: cellAspect}, nil
}

// Enter switches to the alternate screen and hides the cursor.
func (t *Terminal) Enter() error {
	t.w.WriteString(smcup)
	t.w.WriteString(civis)
	t.w.WriteString(cls)
	return t.w.Flush()
}

// Leave restores the cursor and primary screen. Safe to call on a terminal
// that was never entered.
func (t *Terminal) Leave() error {
	t.w.WriteString(sgrReset)
	t.w.WriteString(cnorm)
	t.w.WriteString(rmcup)
	return t.w.Flush()
}

// Clear erases the whole screen. Used on first paint and explicit
// full-repaint requests only; per-frame updates go through Apply.
func (t *Terminal) Clear() error {
	t.w.WriteString(cls)
	t.w.WriteString(home)
	return t.w.Flush()
}

// Apply draws one frame's write operations and flushes them as a single
// batch.
func (t *Terminal) Apply(ops []WriteOp) error {
	if len(ops) == 0 {
		return nil
	}
	t.fgSet = false
	for _, op := range ops {
		fmt.Fprintf(t.w, cup, op.Row+1, op.Col+1)
		for _, cell := range op.Cells {
			if !t.fgSet || cell.Color != t.fg {
				fmt.Fprintf(t.w, fgRGBSet, cell.Color.R, cell.Color.G, cell.Color.B)
				t.fg = cell.Color
				t.fgSet = true
			}
			t.w.WriteRune(cell.Glyph)
		}
	}
	t.w.WriteString(sgrReset)
	return t.w.Flush()
}

// WriteLine places a pre-styled string (status bar, overlay line) at a row,
// erasing the remainder of the line. The string carries its own SGR state.
func (t *Terminal) WriteLine(row int, s string) error {
	fmt.Fprintf(t.w, cup, row+1, 1)
	t.w.WriteString(sgrReset)
	t.w.WriteString(s)
	t.w.WriteString(sgrReset)
	t.w.WriteString(el)
	return t.w.Flush()
}

// WriteAt places a pre-styled string at an arbitrary position without
// erasing the rest of the line. Used for the help overlay box.
func (t *Terminal) WriteAt(row, col int, s string) error {
	fmt.Fprintf(t.w, cup, row+1, col+1)
	t.w.WriteString(s)
	t.w.WriteString(sgrReset)
	return t.w.Flush()
}
