package midi

import (
	"math"
	"sort"

	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/constants"
	"github.com/jsphweid/synchro/grid"
	"github.com/jsphweid/synchro/model"
	"github.com/jsphweid/synchro/store"
	"github.com/jsphweid/synchro/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type ReducedEvent struct {
	Offset    int64 // microseconds
	IsNoteOff bool
	Note      uint8
}

// Span is one sounded note, in milliseconds from the start of the file.
type Span struct {
	Note  uint8
	Start int
	End   int
}

type Options struct {
	// LengthSeconds sizes the grid; 0 derives it from the last note.
	LengthSeconds float64
	// OffsetMs skips the start of the file, e.g. a long intro.
	OffsetMs int
	SongName string
	Artist   string
}

type Stats struct {
	Spans   int
	Taps    int
	Holds   int
	Skipped int
}

func reduce(s *smf.SMF) []ReducedEvent {
	var reducedEvents []ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})
	return reducedEvents
}

// Spans pairs note on/off events. A retriggered key restarts its note and a
// key never released is dropped.
func Spans(s *smf.SMF) []Span {
	var res []Span
	pressed := make(map[uint8]int64)
	for _, evt := range reduce(s) {
		start, isPressed := pressed[evt.Note]
		if evt.IsNoteOff {
			if isPressed {
				res = append(res, Span{Note: evt.Note, Start: int(start / 1000), End: int(evt.Offset / 1000)})
				delete(pressed, evt.Note)
			}
			continue
		}
		pressed[evt.Note] = evt.Offset
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Start < res[j].Start
	})
	return res
}

// Convert lays the notes of a MIDI file onto an editor grid: lane is pitch
// mod the column count, notes lasting two rows or more become holds. Notes
// go through the store rules, so overlaps resolve the way they would in the
// editor.
func Convert(s *smf.SMF, opts Options) (model.Chart, Stats) {
	spans := Spans(s)
	stats := Stats{Spans: len(spans)}

	length := opts.LengthSeconds
	if length <= 0 {
		var lastEnd int
		for _, sp := range spans {
			lastEnd = util.Max(lastEnd, sp.End-opts.OffsetMs)
		}
		// the last release must land on a row, so round past it
		length = math.Floor(float64(lastEnd)/1000) + 1
	}
	g := grid.New(length)

	var notes []model.Note
	for _, sp := range spans {
		pressMs := sp.Start - opts.OffsetMs
		releaseMs := sp.End - opts.OffsetMs
		pressRow, ok := g.RowAt(pressMs)
		if pressMs < 0 || !ok {
			stats.Skipped++
			continue
		}
		col := int(sp.Note) % constants.Columns

		releaseRow := pressRow
		if releaseMs-pressMs >= 2*constants.TimePerRow {
			r, inside := g.RowAt(releaseMs)
			if !inside {
				r = 0
			}
			releaseRow = r
		}

		if releaseRow == pressRow {
			notes = append(notes, model.Note{Type: model.Tap, Column: col, StartRow: pressRow, EndRow: pressRow})
			continue
		}
		notes = append(notes, model.Note{Type: model.Hold, Column: col, StartRow: releaseRow, EndRow: pressRow})
	}

	st := store.New(g)
	st.Load(notes)
	placed := st.Notes()
	for _, n := range placed {
		if n.Type == model.Hold {
			stats.Holds++
		} else {
			stats.Taps++
		}
	}

	meta := model.ChartMeta{SongName: opts.SongName, Artist: opts.Artist, Length: int(math.Ceil(g.LengthSeconds()))}
	return chart.Export(placed, meta), stats
}
