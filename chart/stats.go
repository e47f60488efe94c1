package chart

import (
	"github.com/jsphweid/synchro/constants"
	"github.com/jsphweid/synchro/model"
	"github.com/jsphweid/synchro/util"
)

type Stats struct {
	NumTaps  int
	NumHolds int
	// PerSlot is indexed by slot-1.
	PerSlot   [constants.Columns]int
	FirstMs   int
	LastMs    int
	HoldMs    int
	Unordered bool
}

// Summarize counts tiles and reports whether they are in press order.
func Summarize(c model.Chart) Stats {
	var s Stats
	for i, t := range c.Tiles {
		if t.Type == model.Hold {
			s.NumHolds++
			if t.Release != nil {
				s.HoldMs += *t.Release - t.Press
			}
		} else {
			s.NumTaps++
		}
		if t.Slot >= 1 && t.Slot <= constants.Columns {
			s.PerSlot[t.Slot-1]++
		}

		end := t.Press
		if t.Release != nil {
			end = util.Max(end, *t.Release)
		}
		if i == 0 {
			s.FirstMs, s.LastMs = t.Press, end
			continue
		}
		if t.Press < c.Tiles[i-1].Press {
			s.Unordered = true
		}
		s.FirstMs = util.Min(s.FirstMs, t.Press)
		s.LastMs = util.Max(s.LastMs, end)
	}
	return s
}
