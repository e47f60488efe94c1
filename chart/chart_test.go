package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Southclaws/fault/ftag"
	"github.com/jsphweid/synchro/grid"
	"github.com/jsphweid/synchro/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

// rows=10: TimeOf(9)=0, TimeOf(4)=1000, TimeOf(2)=1400
func exampleNotes() []model.Note {
	return []model.Note{
		{Type: model.Hold, Column: 1, StartRow: 2, EndRow: 4, Press: 1000, Release: 1400},
		{Type: model.Tap, Column: 0, StartRow: 9, EndRow: 9, Press: 0},
	}
}

func TestExportOrderAndFields(t *testing.T) {
	c := Export(exampleNotes(), model.ChartMeta{SongName: "Song", Artist: "Band", Length: 2})

	assert := assert.New(t)
	assert.Equal("Song", c.SongName)
	assert.Equal("Band", c.Artist)
	assert.Equal(2, c.Length)
	assert.Equal([]model.Tile{
		{Type: model.Tap, Press: 0, Slot: 1, Release: nil},
		{Type: model.Hold, Press: 1000, Slot: 2, Release: intPtr(1400)},
	}, c.Tiles)
}

func TestExportDoesNotMutateInput(t *testing.T) {
	notes := exampleNotes()
	Export(notes, model.ChartMeta{})
	assert.Equal(t, exampleNotes(), notes)
}

func TestExportStableForEqualPress(t *testing.T) {
	notes := []model.Note{
		{Type: model.Tap, Column: 3, StartRow: 0, EndRow: 0, Press: 400},
		{Type: model.Tap, Column: 1, StartRow: 0, EndRow: 0, Press: 400},
	}
	c := Export(notes, model.ChartMeta{})
	assert.Equal(t, 4, c.Tiles[0].Slot)
	assert.Equal(t, 2, c.Tiles[1].Slot)
}

func TestExportDefaults(t *testing.T) {
	c := Export(nil, model.ChartMeta{Length: -2})

	assert := assert.New(t)
	assert.Equal("Unknown", c.SongName)
	assert.Equal("Unknown", c.Artist)
	assert.Equal(0, c.Length)
	assert.NotNil(c.Tiles)
	assert.Empty(c.Tiles)
}

func TestExportKeepsBlankButNonEmptyNames(t *testing.T) {
	c := Export(nil, model.ChartMeta{SongName: " ", Artist: "\t"})
	assert.Equal(t, " ", c.SongName)
	assert.Equal(t, "\t", c.Artist)
}

func TestMarshalFormat(t *testing.T) {
	c := Export(exampleNotes(), model.ChartMeta{SongName: "Song", Artist: "Band", Length: 2})
	b, err := Marshal(c)
	require.NoError(t, err)

	expected := `{
  "songName": "Song",
  "artist": "Band",
  "length": 2,
  "tiles": [
    {
      "type": "tap",
      "press": 0,
      "slot": 1,
      "release": null
    },
    {
      "type": "hold",
      "press": 1000,
      "slot": 2,
      "release": 1400
    }
  ]
}`
	assert.Equal(t, expected, string(b))
}

func TestEmptyChartMarshalsEmptyTiles(t *testing.T) {
	b, err := Marshal(Export(nil, model.ChartMeta{}))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"tiles": []`)
}

func TestDecodeRejectsBadTiles(t *testing.T) {
	cases := map[string]string{
		"bad json":        `{"tiles": [`,
		"unknown type":    `{"tiles": [{"type": "slide", "press": 0, "slot": 1, "release": null}]}`,
		"slot too high":   `{"tiles": [{"type": "tap", "press": 0, "slot": 5, "release": null}]}`,
		"slot zero":       `{"tiles": [{"type": "tap", "press": 0, "slot": 0, "release": null}]}`,
		"tap release":     `{"tiles": [{"type": "tap", "press": 0, "slot": 1, "release": 200}]}`,
		"hold no release": `{"tiles": [{"type": "hold", "press": 0, "slot": 1, "release": null}]}`,
		"hold backwards":  `{"tiles": [{"type": "hold", "press": 800, "slot": 1, "release": 200}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(body))
			require.Error(t, err)
			assert.Equal(t, ftag.InvalidArgument, ftag.Get(err))
		})
	}
}

func TestWriteThenDecode(t *testing.T) {
	c := Export(exampleNotes(), model.ChartMeta{SongName: "Song", Artist: "Band", Length: 2})
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestNotesMapsBackOntoGrid(t *testing.T) {
	c := Export(exampleNotes(), model.ChartMeta{Length: 2})
	notes, skipped := Notes(c, grid.New(2))

	assert.Equal(t, 0, skipped)
	assert.ElementsMatch(t, exampleNotes(), notes)
}

func TestNotesSkipsTilesOutsideGrid(t *testing.T) {
	c := model.Chart{Tiles: []model.Tile{
		{Type: model.Tap, Press: 200, Slot: 2},
		{Type: model.Tap, Press: 9000, Slot: 1},
		{Type: model.Hold, Press: 1600, Slot: 3, Release: intPtr(5000)},
	}}
	notes, skipped := Notes(c, grid.New(2))

	assert.Equal(t, 2, skipped)
	assert.Equal(t, []model.Note{{Type: model.Tap, Column: 1, StartRow: 8, EndRow: 8, Press: 200}}, notes)
}
