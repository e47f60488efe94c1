package render

import (
	"testing"

	"github.com/jsphweid/synchro/model"
	"github.com/stretchr/testify/assert"
)

func TestEmptyFrame(t *testing.T) {
	f := Render(3, 4, nil, nil)
	assert.Empty(t, f.Cells())
	assert.Equal(t, "....\n....\n....\n", f.String())
}

func TestRenderNotesAndPreview(t *testing.T) {
	notes := []model.Note{
		{Type: model.Tap, Column: 0, StartRow: 4, EndRow: 4},
		{Type: model.Hold, Column: 1, StartRow: 1, EndRow: 3},
	}
	preview := &model.Preview{Column: 3, StartRow: 0, EndRow: 1}
	f := Render(5, 4, notes, preview)

	assert := assert.New(t)
	assert.Equal(Active, f.At(4, 0))
	assert.Equal(Active|Hold, f.At(2, 1))
	assert.Equal(Active|Hold, f.At(0, 3))
	assert.Equal(State(0), f.At(0, 1))
	assert.Equal("o...\n.|..\n.|..\n.|.|\n...|\n", f.String())
	assert.Equal([]Cell{
		{Row: 4, Column: 0, State: Active},
		{Row: 3, Column: 1, State: Active | Hold},
		{Row: 2, Column: 1, State: Active | Hold},
		{Row: 1, Column: 1, State: Active | Hold},
		{Row: 1, Column: 3, State: Active | Hold},
		{Row: 0, Column: 3, State: Active | Hold},
	}, f.Cells())
}

func TestRenderIsIdempotentAndStateless(t *testing.T) {
	notes := []model.Note{{Type: model.Tap, Column: 2, StartRow: 1, EndRow: 1}}
	first := Render(3, 4, notes, &model.Preview{Column: 0, StartRow: 0, EndRow: 2})
	second := Render(3, 4, notes, nil)

	assert.Equal(t, first.At(1, 2), second.At(1, 2))
	assert.Equal(t, State(0), second.At(0, 0))
	assert.Equal(t, Render(3, 4, notes, nil), second)
}

func TestOutOfRangeIsIgnored(t *testing.T) {
	notes := []model.Note{
		{Type: model.Tap, Column: 7, StartRow: 0, EndRow: 0},
		{Type: model.Hold, Column: 0, StartRow: 1, EndRow: 9},
	}
	f := Render(3, 4, notes, nil)
	assert.Len(t, f.Cells(), 2)
	assert.Equal(t, State(0), f.At(-1, 0))
}
