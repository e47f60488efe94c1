// Package store holds the placed notes of one chart and keeps them
// consistent: one note per cell, holds in a lane never overlap, and taps
// never sit under a hold.
package store

import (
	"github.com/jsphweid/synchro/model"
	"github.com/jsphweid/synchro/util"
)

// Timeline converts a row into its timestamp in milliseconds.
type Timeline interface {
	TimeOf(row int) int
}

type TapResult int

const (
	TapAdded TapResult = iota
	TapRemoved
	// HoldRemoved means the tap landed on a hold and deleted the whole hold.
	HoldRemoved
)

func (r TapResult) String() string {
	switch r {
	case TapAdded:
		return "tap added"
	case TapRemoved:
		return "tap removed"
	case HoldRemoved:
		return "hold removed"
	}
	return "unknown"
}

type Store struct {
	notes    []model.Note
	timeline Timeline
}

func New(timeline Timeline) *Store {
	return &Store{timeline: timeline}
}

// PlaceTap toggles a tap at (col, row). A hold covering the cell is removed
// entirely instead, and no tap is placed.
func (s *Store) PlaceTap(col, row int) TapResult {
	if i := s.find(func(n model.Note) bool { return n.Type == model.Hold && n.Covers(col, row) }); i != -1 {
		s.removeAt(i)
		return HoldRemoved
	}
	if i := s.find(func(n model.Note) bool { return n.Type == model.Tap && n.Column == col && n.StartRow == row }); i != -1 {
		s.removeAt(i)
		return TapRemoved
	}
	s.notes = append(s.notes, s.tap(col, row))
	return TapAdded
}

// CommitHold places a hold spanning fromRow..toRow in col. Holds in the
// same lane that intersect the range are absorbed into it, repeatedly, until
// nothing else intersects; taps inside the final range are dropped. A drag
// that never left its row commits nothing.
func (s *Store) CommitHold(col, fromRow, toRow int) (model.Note, bool) {
	if fromRow == toRow {
		return model.Note{}, false
	}
	start, end := util.Min(fromRow, toRow), util.Max(fromRow, toRow)

	for {
		absorbed := false
		kept := make([]model.Note, 0, len(s.notes))
		for _, n := range s.notes {
			if n.Type == model.Hold && n.Column == col && n.Overlaps(start, end) {
				start = util.Min(start, n.StartRow)
				end = util.Max(end, n.EndRow)
				absorbed = true
				continue
			}
			kept = append(kept, n)
		}
		s.notes = kept
		if !absorbed {
			break
		}
	}

	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.Type == model.Tap && n.Column == col && n.StartRow >= start && n.StartRow <= end {
			continue
		}
		kept = append(kept, n)
	}
	s.notes = kept

	hold := model.Note{
		Type:     model.Hold,
		Column:   col,
		StartRow: start,
		EndRow:   end,
		Press:    s.timeline.TimeOf(end),
		Release:  s.timeline.TimeOf(start),
	}
	s.notes = append(s.notes, hold)
	return hold, true
}

// Load adds notes from a saved chart through the same rules the editor
// uses. Taps on occupied cells are skipped and single-row holds become taps.
func (s *Store) Load(notes []model.Note) {
	for _, n := range notes {
		if n.Type == model.Hold && n.StartRow != n.EndRow {
			s.CommitHold(n.Column, n.StartRow, n.EndRow)
			continue
		}
		if _, taken := s.At(n.Column, n.StartRow); !taken {
			s.notes = append(s.notes, s.tap(n.Column, n.StartRow))
		}
	}
}

// At returns the note occupying a cell.
func (s *Store) At(col, row int) (model.Note, bool) {
	if i := s.find(func(n model.Note) bool { return n.Covers(col, row) }); i != -1 {
		return s.notes[i], true
	}
	return model.Note{}, false
}

// Notes returns a copy in insertion order.
func (s *Store) Notes() []model.Note {
	res := make([]model.Note, len(s.notes))
	copy(res, s.notes)
	return res
}

func (s *Store) Len() int {
	return len(s.notes)
}

func (s *Store) Clear() {
	s.notes = nil
}

func (s *Store) tap(col, row int) model.Note {
	return model.Note{
		Type:     model.Tap,
		Column:   col,
		StartRow: row,
		EndRow:   row,
		Press:    s.timeline.TimeOf(row),
	}
}

func (s *Store) find(match func(model.Note) bool) int {
	for i, n := range s.notes {
		if match(n) {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) {
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
}
