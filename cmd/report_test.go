package cmd

import (
	"testing"

	"github.com/jsphweid/synchro/db"
	"github.com/jsphweid/synchro/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeLibrary(t *testing.T) {
	lib, err := db.NewFileLibrary(t.TempDir())
	require.NoError(t, err)

	release := 600
	require.NoError(t, lib.Save("first", model.Chart{SongName: "First", Artist: "A", Length: 2, Tiles: []model.Tile{
		{Type: model.Tap, Press: 0, Slot: 1},
		{Type: model.Hold, Press: 200, Slot: 2, Release: &release},
	}}))
	require.NoError(t, lib.Save("second", model.Chart{SongName: "Second", Artist: "B", Length: 4, Tiles: []model.Tile{
		{Type: model.Tap, Press: 800, Slot: 3},
		{Type: model.Tap, Press: 400, Slot: 4},
	}}))

	r, err := analyzeLibrary(lib)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(2, r.numCharts)
	assert.Equal(3, r.numTaps)
	assert.Equal(1, r.numHolds)
	assert.Equal(6, r.totalLength)
	assert.Equal([]float32{1, 0.5}, r.tilesPerSec)
	assert.Equal([]string{"second"}, r.unordered)
}

func TestAnalyzeEmptyLibrary(t *testing.T) {
	lib, err := db.NewFileLibrary(t.TempDir())
	require.NoError(t, err)

	r, err := analyzeLibrary(lib)
	require.NoError(t, err)
	assert.Equal(t, libraryReport{}, r)
}
