package work_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scoredb/internal/work"
)

func TestDecode_YAML(t *testing.T) {
	data, err := os.ReadFile("testdata/quartet.yaml")
	require.NoError(t, err)

	doc, err := work.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "Quartet", doc.Title)
	assert.Empty(t, doc.ID)
	assert.Equal(t, []string{"4/4", "4/4"}, doc.Meter)
	require.Len(t, doc.Entities, 8)
	assert.Equal(t, work.EntityDocument{
		ID: 5, Kind: "articulation", Value: "staccato",
		Start: "1/4", End: "1/2",
		Performer: "ben", Instrument: "viola", Voice: 1,
	}, doc.Entities[4])
	assert.Equal(t, []work.EventDocument{{ID: 100, Members: []uint32{1, 2, 3}}}, doc.Events)
}

func TestDecode_JSON(t *testing.T) {
	data, err := os.ReadFile("testdata/duet.json")
	require.NoError(t, err)

	doc, err := work.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "Duet", doc.Title)
	require.Len(t, doc.Entities, 2)
	// Integer and string times decode to the same text.
	assert.Equal(t, work.Time("1"), doc.Entities[0].End)
	assert.Equal(t, work.Time("1"), doc.Entities[1].Start)
}

func TestDecode_ParseError(t *testing.T) {
	_, err := work.Decode([]byte("title: [unterminated"))
	require.Error(t, err)
	assert.Equal(t, work.ErrCodeParse, work.ErrorCode(err))
}

func TestDecode_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"not a mapping", "- 1\n- 2\n"},
		{"missing title", "entities: []\n"},
		{"empty title", "title: \"\"\nentities: []\n"},
		{"missing entities", "title: x\n"},
		{"unknown top-level field", "title: x\ntempo: 120\nentities: []\n"},
		{"unknown entity field", "title: x\nentities:\n  - {id: 1, kind: rest, start: 0, end: 1, color: red}\n"},
		{"unknown kind", "title: x\nentities:\n  - {id: 1, kind: harmony, start: 0, end: 1}\n"},
		{"negative id", "title: x\nentities:\n  - {id: -1, kind: rest, start: 0, end: 1}\n"},
		{"id out of range", "title: x\nentities:\n  - {id: 4294967296, kind: rest, start: 0, end: 1}\n"},
		{"malformed time", "title: x\nentities:\n  - {id: 1, kind: rest, start: one, end: 1}\n"},
		{"missing end", "title: x\nentities:\n  - {id: 1, kind: rest, start: 0}\n"},
		{"malformed meter", "title: x\nmeter: [common]\nentities: []\n"},
		{"event without members", "title: x\nentities: []\nevents:\n  - {id: 9}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := work.Decode([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, work.ErrCodeSchema, work.ErrorCode(err), "got %v", err)
		})
	}
}

func TestLoadError_Format(t *testing.T) {
	err := &work.LoadError{
		Code:    work.ErrCodeInvalidValue,
		Path:    "score.yaml",
		Field:   "entities.0.value",
		Message: "invalid value",
	}
	assert.Equal(t, "E203: score.yaml: entities.0.value: invalid value", err.Error())

	err = &work.LoadError{Code: work.ErrCodeSchema, Message: "document is empty"}
	assert.Equal(t, "E201: document is empty", err.Error())
}
