package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/jsphweid/synchro/constants"
	"github.com/jsphweid/synchro/grid"
	"github.com/jsphweid/synchro/model"
	"github.com/jsphweid/synchro/util"
)

// Export snapshots notes into the chart the device plays, ordered by press
// time. Notes with equal press times keep their placement order.
func Export(notes []model.Note, meta model.ChartMeta) model.Chart {
	sorted := make([]model.Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Press < sorted[j].Press
	})

	tiles := make([]model.Tile, 0, len(sorted))
	for _, n := range sorted {
		tile := model.Tile{Type: n.Type, Press: n.Press, Slot: n.Column + 1}
		if n.Type == model.Hold {
			release := n.Release
			tile.Release = &release
		}
		tiles = append(tiles, tile)
	}

	return model.Chart{
		SongName: orUnknown(meta.SongName),
		Artist:   orUnknown(meta.Artist),
		Length:   util.Max(meta.Length, 0),
		Tiles:    tiles,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return constants.UnknownMetadata
	}
	return s
}

// Marshal encodes with two-space indentation, the layout the device site
// stores charts in.
func Marshal(c model.Chart) ([]byte, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("could not encode chart"))
	}
	return b, nil
}

func Write(w io.Writer, c model.Chart) error {
	b, err := Marshal(c)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fault.Wrap(err, fmsg.With("could not write chart"))
	}
	return nil
}

func Decode(r io.Reader) (model.Chart, error) {
	var c model.Chart
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return model.Chart{}, fault.Wrap(err,
			fmsg.WithDesc("could not decode chart", "The chart is not valid JSON."),
			ftag.With(ftag.InvalidArgument))
	}
	if err := Validate(c); err != nil {
		return model.Chart{}, err
	}
	return c, nil
}

func Unmarshal(b []byte) (model.Chart, error) {
	return Decode(bytes.NewReader(b))
}

// Validate checks the fields the device firmware relies on.
func Validate(c model.Chart) error {
	for i, t := range c.Tiles {
		var problem string
		switch {
		case t.Type != model.Tap && t.Type != model.Hold:
			problem = fmt.Sprintf("unknown type %q", t.Type)
		case t.Slot < 1 || t.Slot > constants.Columns:
			problem = fmt.Sprintf("slot %d is not between 1 and %d", t.Slot, constants.Columns)
		case t.Press < 0:
			problem = fmt.Sprintf("negative press %d", t.Press)
		case t.Type == model.Tap && t.Release != nil:
			problem = "tap with a release time"
		case t.Type == model.Hold && t.Release == nil:
			problem = "hold without a release time"
		case t.Type == model.Hold && *t.Release < t.Press:
			problem = fmt.Sprintf("hold released at %d before its press at %d", *t.Release, t.Press)
		}
		if problem != "" {
			msg := fmt.Sprintf("tile %d: %s", i, problem)
			return fault.New(msg, fmsg.WithDesc(msg, "The chart has an invalid tile."), ftag.With(ftag.InvalidArgument))
		}
	}
	return nil
}

// Notes maps a chart back onto a grid for editing. Tiles whose times fall
// outside the grid are dropped and counted in skipped.
func Notes(c model.Chart, g *grid.Grid) (notes []model.Note, skipped int) {
	for _, t := range c.Tiles {
		col := t.Slot - 1
		endRow, ok := g.RowAt(t.Press)
		if !ok || col < 0 || col >= g.Columns() {
			skipped++
			continue
		}
		n := model.Note{Type: model.Tap, Column: col, StartRow: endRow, EndRow: endRow, Press: g.TimeOf(endRow)}
		if t.Type == model.Hold && t.Release != nil {
			startRow, ok := g.RowAt(*t.Release)
			if !ok {
				skipped++
				continue
			}
			n = model.Note{
				Type:     model.Hold,
				Column:   col,
				StartRow: startRow,
				EndRow:   endRow,
				Press:    g.TimeOf(endRow),
				Release:  g.TimeOf(startRow),
			}
		}
		notes = append(notes, n)
	}
	return notes, skipped
}
