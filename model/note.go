package model

import (
	"fmt"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

type TileType string

const (
	Tap  TileType = "tap"
	Hold TileType = "hold"
)

// Mode is the editor tool; it decides what a press means.
type Mode = TileType

const (
	TapMode  Mode = Tap
	HoldMode Mode = Hold
)

func ParseMode(s string) (Mode, error) {
	switch TileType(strings.ToLower(strings.TrimSpace(s))) {
	case Tap:
		return TapMode, nil
	case Hold:
		return HoldMode, nil
	}
	msg := fmt.Sprintf("unknown mode %q", s)
	return "", fault.New(msg, fmsg.WithDesc(msg, `Mode must be "tap" or "hold".`), ftag.With(ftag.InvalidArgument))
}

// Note is a placed tile. Taps have StartRow == EndRow and no Release.
// Rows grow backwards in time, so a hold's Press comes from EndRow and its
// Release from StartRow.
type Note struct {
	Type     TileType
	Column   int
	StartRow int
	EndRow   int
	Press    int
	Release  int
}

func (n Note) Covers(col, row int) bool {
	return n.Column == col && row >= n.StartRow && row <= n.EndRow
}

// Overlaps reports whether the note's inclusive row range intersects [start, end].
func (n Note) Overlaps(start, end int) bool {
	return n.EndRow >= start && n.StartRow <= end
}

func (n Note) String() string {
	if n.Type == Hold {
		return fmt.Sprintf("hold(col=%d rows=%d-%d press=%d release=%d)", n.Column, n.StartRow, n.EndRow, n.Press, n.Release)
	}
	return fmt.Sprintf("tap(col=%d row=%d press=%d)", n.Column, n.StartRow, n.Press)
}

// Preview is the uncommitted hold shown while dragging.
type Preview struct {
	Column   int
	StartRow int
	EndRow   int
}
