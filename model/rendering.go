package model

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"os/exec"

	"github.com/sheikhrachel/gol-window/rules"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// Canvas is the drawing surface a frame is rendered onto
type Canvas interface {
	Clear(clr color.Color)
	FillRect(x, y, width, height int, clr color.Color)
}

// Palette maps cell states to colors
type Palette struct {
	Background color.Color
	Dead       color.Color
	Alive      color.Color
}

// DefaultPalette draws live cells white and dead cells black over a red background
var DefaultPalette = Palette{
	Background: color.RGBA{R: 0xff, A: 0xff},
	Dead:       color.Black,
	Alive:      color.White,
}

// Color returns the color used for a cell state
func (p Palette) Color(cell rules.Cell) color.Color {
	if cell == rules.Alive {
		return p.Alive
	}
	return p.Dead
}

// DrawGrid clears the canvas and draws one cellSize square per cell
func DrawGrid(canvas Canvas, g *Grid, cellSize int, palette Palette) {
	canvas.Clear(palette.Background)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.columns; col++ {
			canvas.FillRect(col*cellSize, row*cellSize, cellSize, cellSize, palette.Color(g.Get(row, col)))
		}
	}
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.columns; col++ {
			if g.Get(row, col) == rules.Alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
