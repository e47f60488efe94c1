// Package editor turns press / enter / release gestures over grid cells into
// note store changes. An Editor is single-threaded; adapters that share one
// across goroutines must serialize access themselves.
package editor

import (
	"log/slog"
	"math"

	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/constants"
	"github.com/jsphweid/synchro/grid"
	"github.com/jsphweid/synchro/model"
	"github.com/jsphweid/synchro/render"
	"github.com/jsphweid/synchro/store"
	"github.com/jsphweid/synchro/util"
)

type drag struct {
	startRow int
	preview  model.Preview
}

type Editor struct {
	grid     *grid.Grid
	store    *store.Store
	mode     model.Mode
	drag     *drag
	frame    render.Frame
	revision int
	logger   *slog.Logger
}

func New(lengthSeconds float64, logger *slog.Logger) *Editor {
	e := &Editor{mode: model.TapMode, logger: logger}
	e.reset(lengthSeconds)
	return e
}

func (e *Editor) reset(lengthSeconds float64) {
	e.grid = grid.New(lengthSeconds)
	e.store = store.New(e.grid)
	e.drag = nil
	e.redraw()
}

// redraw re-projects every cell; it runs after anything that changes what
// the grid shows.
func (e *Editor) redraw() {
	var preview *model.Preview
	if e.drag != nil {
		p := e.drag.preview
		preview = &p
	}
	e.frame = render.Render(e.grid.Rows(), e.grid.Columns(), e.store.Notes(), preview)
	e.revision++
}

func (e *Editor) Mode() model.Mode {
	return e.mode
}

// SetMode switches the tool. A drag already in flight is not committed if
// the mode no longer matches on release.
func (e *Editor) SetMode(mode model.Mode) {
	e.mode = mode
}

func (e *Editor) Press(col, row int) {
	if e.drag != nil {
		e.logger.Debug("abandoning stale drag", "column", e.drag.preview.Column, "startRow", e.drag.startRow)
		e.drag = nil
		e.redraw()
	}
	if !e.grid.Contains(col, row) {
		return
	}

	switch e.mode {
	case model.TapMode:
		res := e.store.PlaceTap(col, row)
		e.logger.Debug(res.String(), "column", col, "row", row)
		e.redraw()
	case model.HoldMode:
		e.drag = &drag{
			startRow: row,
			preview:  model.Preview{Column: col, StartRow: row, EndRow: row},
		}
		e.redraw()
	}
}

// Enter stretches the preview while a hold drag is in flight. Cells in other
// lanes are ignored since holds never change lane.
func (e *Editor) Enter(col, row int) {
	if e.drag == nil || e.mode != model.HoldMode {
		return
	}
	if col != e.drag.preview.Column || !e.grid.ContainsRow(row) {
		return
	}
	start, end := util.Min(e.drag.startRow, row), util.Max(e.drag.startRow, row)
	if start == e.drag.preview.StartRow && end == e.drag.preview.EndRow {
		return
	}
	e.drag.preview.StartRow = start
	e.drag.preview.EndRow = end
	e.redraw()
}

// Release commits the previewed hold. Without a matching drag it only clears
// gesture state, which also covers a mouseup the adapter never delivered.
func (e *Editor) Release() {
	d := e.drag
	e.drag = nil
	if d == nil {
		return
	}
	if e.mode != model.HoldMode {
		e.redraw()
		return
	}
	if hold, ok := e.store.CommitHold(d.preview.Column, d.preview.StartRow, d.preview.EndRow); ok {
		e.logger.Debug("hold committed", "column", hold.Column, "startRow", hold.StartRow, "endRow", hold.EndRow)
	}
	e.redraw()
}

// Resize rebuilds the grid for a new song length and discards every note.
func (e *Editor) Resize(lengthSeconds float64) {
	dropped := e.store.Len()
	e.reset(lengthSeconds)
	e.logger.Info("grid resized", "length", e.grid.LengthSeconds(), "rows", e.grid.Rows(), "droppedNotes", dropped)
}

// Load resizes the grid to fit the chart and places its tiles. Stored
// lengths are whole seconds, so the grid grows past c.Length when the last
// tile would not fit. It returns how many tiles did not fit.
func (e *Editor) Load(c model.Chart) int {
	e.reset(loadLength(c))
	notes, skipped := chart.Notes(c, e.grid)
	e.store.Load(notes)
	e.redraw()
	e.logger.Info("chart loaded", "songName", c.SongName, "notes", e.store.Len(), "skipped", skipped)
	return skipped
}

// loadLength is the chart length in seconds, rounded up to hold one row past
// the latest press or release.
func loadLength(c model.Chart) float64 {
	last := -1
	for _, t := range c.Tiles {
		last = util.Max(last, t.Press)
		if t.Release != nil {
			last = util.Max(last, *t.Release)
		}
	}
	length := float64(c.Length)
	if last < 0 {
		return length
	}
	return math.Max(length, math.Ceil(float64(last+constants.TimePerRow)/1000))
}

func (e *Editor) Export(meta model.ChartMeta) model.Chart {
	return chart.Export(e.store.Notes(), meta)
}

// Metadata builds export metadata using the grid's song length.
func (e *Editor) Metadata(songName, artist string) model.ChartMeta {
	return model.ChartMeta{SongName: songName, Artist: artist, Length: int(e.grid.LengthSeconds())}
}

func (e *Editor) Frame() render.Frame {
	return e.frame
}

// Revision increases every time the frame is redrawn.
func (e *Editor) Revision() int {
	return e.revision
}

func (e *Editor) Preview() (model.Preview, bool) {
	if e.drag == nil {
		return model.Preview{}, false
	}
	return e.drag.preview, true
}

func (e *Editor) Dragging() bool {
	return e.drag != nil
}

func (e *Editor) Notes() []model.Note {
	return e.store.Notes()
}

func (e *Editor) NumNotes() int {
	return e.store.Len()
}

func (e *Editor) Rows() int {
	return e.grid.Rows()
}

func (e *Editor) Columns() int {
	return e.grid.Columns()
}

func (e *Editor) LengthSeconds() float64 {
	return e.grid.LengthSeconds()
}

func (e *Editor) TimeOf(row int) int {
	return e.grid.TimeOf(row)
}
