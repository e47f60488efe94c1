package model

import (
	"bytes"
	"encoding/json"

	"github.com/jsphweid/synchro/grid"
)

// SongLength is a length in seconds that may arrive as a JSON number or as
// the raw text of the page's length input.
type SongLength float64

func (l *SongLength) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*l = SongLength(grid.ParseLength(text))
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*l = SongLength(v)
	return nil
}

type CreateEditorRequestBody struct {
	Length SongLength `json:"length"`
}

type LengthRequestBody struct {
	Length SongLength `json:"length"`
}

type ModeRequestBody struct {
	Mode string `json:"mode"`
}

type CellRequestBody struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

type SaveRequestBody struct {
	SongName string `json:"songName"`
	Artist   string `json:"artist"`
}

type CellState struct {
	Row    int  `json:"row"`
	Column int  `json:"column"`
	Active bool `json:"active"`
	Hold   bool `json:"hold"`
}

type EditorResponse struct {
	Id       string      `json:"id"`
	Rows     int         `json:"rows"`
	Columns  int         `json:"columns"`
	Length   float64     `json:"length"`
	Mode     Mode        `json:"mode"`
	Dragging bool        `json:"dragging"`
	NumNotes int         `json:"numNotes"`
	Cells    []CellState `json:"cells"`
}

type SaveResponse struct {
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
