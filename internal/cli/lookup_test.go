package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Text(t *testing.T) {
	out, err := execute(t, "lookup", quartetPath, "1", "99", "8")
	require.NoError(t, err)

	assert.Equal(t,
		"1\tpitch\tC4\t[0, 1/4] anna/violin/v1\n"+
			"99\tnot found\n"+
			"8\trest\trest\t[1, 2] ben/viola/v1\n",
		out)
}

func TestLookup_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "lookup", quartetPath, "7", "42", "6")
	require.NoError(t, err)

	resp := decodeResponse[LookupResult](t, out)
	require.Len(t, resp.Data.Entities, 3)

	lyric := resp.Data.Entities[0]
	assert.True(t, lyric.Found)
	assert.Equal(t, "lyric", lyric.Kind)
	assert.Equal(t, "la", lyric.Value)
	require.NotNil(t, lyric.Context)
	assert.Equal(t, ContextInfo{Start: "1/2", End: "1", Performer: "cara", Instrument: "voice", Voice: 1}, *lyric.Context)
	assert.Nil(t, lyric.MIDI, "only pitches carry a MIDI number")

	missing := resp.Data.Entities[1]
	assert.Equal(t, uint32(42), missing.ID)
	assert.False(t, missing.Found)
	assert.Nil(t, missing.Context)

	pitch := resp.Data.Entities[2]
	assert.Equal(t, "D4", pitch.Value)
	require.NotNil(t, pitch.MIDI)
	assert.Equal(t, 62, *pitch.MIDI)
}

func TestLookup_InvalidID(t *testing.T) {
	for _, id := range []string{"1.5", "x", "4294967296"} {
		t.Run(id, func(t *testing.T) {
			out, err := execute(t, "lookup", quartetPath, id)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [E002]")
		})
	}
}

func TestLookup_RequiresID(t *testing.T) {
	_, err := execute(t, "lookup", quartetPath)
	require.Error(t, err)
}
