// Package grid maps the editor's rows and lanes onto song time.
//
// Row 0 is the bottom of the editor and the latest moment of the song;
// row Rows-1 is time zero. Everything that needs a timestamp goes through
// TimeOf so the inversion lives in one place.
package grid

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/synchro/constants"
)

type Grid struct {
	columns       int
	rows          int
	lengthSeconds float64
}

// New sizes a grid for a song. Lengths that are not a positive finite
// number fall back to the default song length.
func New(lengthSeconds float64) *Grid {
	lengthSeconds = NormalizeLength(lengthSeconds)
	lengthMs := lengthSeconds * 1000
	rows := int(math.Ceil(lengthMs / constants.TimePerRow))
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		columns:       constants.Columns,
		rows:          rows,
		lengthSeconds: lengthSeconds,
	}
}

func NormalizeLength(lengthSeconds float64) float64 {
	if math.IsNaN(lengthSeconds) || math.IsInf(lengthSeconds, 0) || lengthSeconds <= 0 {
		return constants.DefaultSongLengthSeconds
	}
	return lengthSeconds
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseLength reads a song length form value. Like a browser number parse it
// uses the longest numeric prefix, so "12.5s" is 12.5; anything without one
// is the default length.
func ParseLength(s string) float64 {
	prefix := leadingNumber.FindString(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return constants.DefaultSongLengthSeconds
	}
	return NormalizeLength(v)
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Columns() int {
	return g.columns
}

func (g *Grid) LengthSeconds() float64 {
	return g.lengthSeconds
}

// TimeOf returns the millisecond timestamp of a row. It strictly decreases
// as row grows and TimeOf(Rows-1) == 0.
func (g *Grid) TimeOf(row int) int {
	return (g.rows - row - 1) * constants.TimePerRow
}

// RowAt is the inverse of TimeOf, rounding to the nearest row. ok is false
// when the time falls outside the grid.
func (g *Grid) RowAt(ms int) (row int, ok bool) {
	steps := int(math.Round(float64(ms) / constants.TimePerRow))
	row = g.rows - steps - 1
	return row, g.ContainsRow(row)
}

func (g *Grid) ContainsRow(row int) bool {
	return row >= 0 && row < g.rows
}

func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.columns && g.ContainsRow(row)
}
