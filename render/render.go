// Package render projects notes and the drag preview onto grid cells.
// Render keeps no state: callers redraw the whole frame after every change.
package render

import (
	"strings"

	"github.com/jsphweid/synchro/model"
)

type State uint8

const (
	Active State = 1 << iota
	Hold
)

func (s State) Active() bool { return s&Active != 0 }
func (s State) Hold() bool   { return s&Hold != 0 }

type Cell struct {
	Row    int
	Column int
	State  State
}

type Frame struct {
	rows    int
	columns int
	cells   []State
}

func Render(rows, columns int, notes []model.Note, preview *model.Preview) Frame {
	f := Frame{rows: rows, columns: columns, cells: make([]State, rows*columns)}
	for _, n := range notes {
		switch n.Type {
		case model.Tap:
			f.mark(n.Column, n.StartRow, Active)
		case model.Hold:
			for r := n.StartRow; r <= n.EndRow; r++ {
				f.mark(n.Column, r, Active|Hold)
			}
		}
	}
	if preview != nil {
		for r := preview.StartRow; r <= preview.EndRow; r++ {
			f.mark(preview.Column, r, Active|Hold)
		}
	}
	return f
}

// mark ignores cells outside the frame, like a lookup for a missing tile.
func (f *Frame) mark(col, row int, s State) {
	if col < 0 || col >= f.columns || row < 0 || row >= f.rows {
		return
	}
	f.cells[row*f.columns+col] |= s
}

func (f Frame) Rows() int    { return f.rows }
func (f Frame) Columns() int { return f.columns }

func (f Frame) At(row, col int) State {
	if col < 0 || col >= f.columns || row < 0 || row >= f.rows {
		return 0
	}
	return f.cells[row*f.columns+col]
}

// Cells lists every non-empty cell, top row first.
func (f Frame) Cells() []Cell {
	var res []Cell
	for row := f.rows - 1; row >= 0; row-- {
		for col := 0; col < f.columns; col++ {
			if s := f.At(row, col); s != 0 {
				res = append(res, Cell{Row: row, Column: col, State: s})
			}
		}
	}
	return res
}

// String draws the frame with the earliest row on top: '.' empty, 'o' tap,
// '|' hold.
func (f Frame) String() string {
	var b strings.Builder
	for row := f.rows - 1; row >= 0; row-- {
		for col := 0; col < f.columns; col++ {
			b.WriteByte(Glyph(f.At(row, col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func Glyph(s State) byte {
	switch {
	case s.Hold():
		return '|'
	case s.Active():
		return 'o'
	}
	return '.'
}
