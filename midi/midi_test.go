package midi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Southclaws/fault/ftag"
	"github.com/jsphweid/synchro/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteEvent struct {
	tick uint32
	on   bool
	key  uint8
}

// writeSMF builds a single track file where one tick is one millisecond
// (60 bpm, 1000 ticks per quarter) and parses it back.
func writeSMF(t *testing.T, events []noteEvent) *smf.SMF {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(60))
	var last uint32
	for _, e := range events {
		if e.on {
			tr.Add(e.tick-last, gomidi.NoteOn(0, e.key, 100))
		} else {
			tr.Add(e.tick-last, gomidi.NoteOff(0, e.key))
		}
		last = e.tick
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(1000)
	require.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	parsed, err := Read(&buf)
	require.NoError(t, err)
	return parsed
}

func exampleEvents() []noteEvent {
	return []noteEvent{
		{0, true, 60},
		{100, false, 60},
		{400, true, 61},
		{1000, true, 66},
		{1100, false, 66},
		{1400, false, 61},
		{2000, true, 64},
		{2050, false, 64},
	}
}

func TestSpans(t *testing.T) {
	spans := Spans(writeSMF(t, exampleEvents()))
	assert.Equal(t, []Span{
		{Note: 60, Start: 0, End: 100},
		{Note: 61, Start: 400, End: 1400},
		{Note: 66, Start: 1000, End: 1100},
		{Note: 64, Start: 2000, End: 2050},
	}, spans)
}

func TestSpansDropsUnreleasedNotes(t *testing.T) {
	spans := Spans(writeSMF(t, []noteEvent{
		{0, true, 60},
		{200, true, 62},
		{300, false, 62},
	}))
	assert.Equal(t, []Span{{Note: 62, Start: 200, End: 300}}, spans)
}

func TestConvert(t *testing.T) {
	c, stats := Convert(writeSMF(t, exampleEvents()), Options{SongName: "Etude"})
	release := 1400

	assert := assert.New(t)
	assert.Equal("Etude", c.SongName)
	assert.Equal("Unknown", c.Artist)
	assert.Equal(3, c.Length)
	assert.Equal([]model.Tile{
		{Type: model.Tap, Press: 0, Slot: 1},
		{Type: model.Hold, Press: 400, Slot: 2, Release: &release},
		{Type: model.Tap, Press: 1000, Slot: 3},
		{Type: model.Tap, Press: 2000, Slot: 1},
	}, c.Tiles)
	assert.Equal(Stats{Spans: 4, Taps: 3, Holds: 1}, stats)
}

func TestConvertWithOffset(t *testing.T) {
	c, stats := Convert(writeSMF(t, exampleEvents()), Options{OffsetMs: 400})
	release := 1000

	assert := assert.New(t)
	assert.Equal(2, c.Length)
	assert.Equal([]model.Tile{
		{Type: model.Hold, Press: 0, Slot: 2, Release: &release},
		{Type: model.Tap, Press: 600, Slot: 3},
		{Type: model.Tap, Press: 1600, Slot: 1},
	}, c.Tiles)
	assert.Equal(1, stats.Skipped)
}

func TestConvertClampsToGivenLength(t *testing.T) {
	c, stats := Convert(writeSMF(t, exampleEvents()), Options{LengthSeconds: 1})
	release := 800

	assert := assert.New(t)
	assert.Equal(1, c.Length)
	// the hold runs past the end of the grid and is cut at the last row
	assert.Equal([]model.Tile{
		{Type: model.Tap, Press: 0, Slot: 1},
		{Type: model.Hold, Press: 400, Slot: 2, Release: &release},
	}, c.Tiles)
	assert.Equal(2, stats.Skipped)
}

func TestConvertOverlappingNotesMerge(t *testing.T) {
	// 60 and 64 share lane 0
	c, stats := Convert(writeSMF(t, []noteEvent{
		{0, true, 60},
		{600, true, 64},
		{800, false, 60},
		{1400, false, 64},
	}), Options{})

	require.Len(t, c.Tiles, 1)
	assert.Equal(t, 0, c.Tiles[0].Press)
	assert.Equal(t, 1400, *c.Tiles[0].Release)
	assert.Equal(t, 1, stats.Holds)
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(strings.NewReader("definitely not midi"))
	require.Error(t, err)
	assert.Equal(t, ftag.InvalidArgument, ftag.Get(err))

	_, err = Read(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile("does/not/exist.mid")
	assert.Error(t, err)
}
