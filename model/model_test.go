package model

import (
	"encoding/json"
	"testing"

	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	assert := assert.New(t)
	mode, err := ParseMode(" Hold ")
	assert.NoError(err)
	assert.Equal(HoldMode, mode)

	mode, err = ParseMode("tap")
	assert.NoError(err)
	assert.Equal(TapMode, mode)

	_, err = ParseMode("slide")
	require.Error(t, err)
	assert.Equal(ftag.InvalidArgument, ftag.Get(err))
	assert.Equal(`Mode must be "tap" or "hold".`, fmsg.GetIssue(err))
}

func TestSongLengthAcceptsNumbersAndText(t *testing.T) {
	cases := []struct {
		body string
		want SongLength
	}{
		{`{"length": 12.5}`, 12.5},
		{`{"length": "12.5"}`, 12.5},
		{`{"length": "12abc"}`, 12},
		{`{"length": "abc"}`, 10},
		{`{"length": ""}`, 10},
	}
	for _, c := range cases {
		t.Run(c.body, func(t *testing.T) {
			var input LengthRequestBody
			require.NoError(t, json.Unmarshal([]byte(c.body), &input))
			assert.Equal(t, c.want, input.Length)
		})
	}
}

func TestSongLengthKeepsDefaultOnNull(t *testing.T) {
	input := CreateEditorRequestBody{Length: 7}
	require.NoError(t, json.Unmarshal([]byte(`{"length": null}`), &input))
	assert.Equal(t, SongLength(7), input.Length)
}

func TestSongLengthRejectsOtherTypes(t *testing.T) {
	var input LengthRequestBody
	assert.Error(t, json.Unmarshal([]byte(`{"length": true}`), &input))
}
