package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeSealed(t *testing.T) {
	// Compile-time check via assignment
	var _ Attribute = Pitch{}
	var _ Attribute = Dynamics{}
	var _ Attribute = Articulation{}
	var _ Attribute = Lyric{}
	var _ Attribute = Rest{}
}

func TestAttributeKindDiscriminant(t *testing.T) {
	cases := []struct {
		attr Attribute
		kind AttributeKind
	}{
		{Pitch{Step: 'C', Octave: 4}, KindPitch},
		{Dynamics{Marking: "mf"}, KindDynamics},
		{Articulation{Marking: "staccato"}, KindArticulation},
		{Lyric{Text: "la"}, KindLyric},
		{Rest{}, KindRest},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.attr.Kind())
			assert.True(t, tc.attr.Kind().Valid())
		})
	}
}

func TestParsePitch(t *testing.T) {
	cases := []struct {
		in   string
		want Pitch
		midi int
	}{
		{"C4", Pitch{Step: 'C', Octave: 4}, 60},
		{"A4", Pitch{Step: 'A', Octave: 4}, 69},
		{"C#4", Pitch{Step: 'C', Alter: 1, Octave: 4}, 61},
		{"Bb3", Pitch{Step: 'B', Alter: -1, Octave: 3}, 58},
		{"F##5", Pitch{Step: 'F', Alter: 2, Octave: 5}, 79},
		{"Ebb2", Pitch{Step: 'E', Alter: -2, Octave: 2}, 38},
		{"C-1", Pitch{Step: 'C', Octave: -1}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParsePitch(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
			assert.Equal(t, tc.midi, p.MIDI())
			assert.Equal(t, tc.in, p.String())
		})
	}
}

func TestParsePitch_Invalid(t *testing.T) {
	for _, in := range []string{"", "C", "H4", "c4", "C#b4", "Cx", "C4.5"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePitch(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAttribute)
		})
	}
}

func TestParseAttribute_RoundTrip(t *testing.T) {
	cases := []struct {
		kind AttributeKind
		text string
	}{
		{KindPitch, "G5"},
		{KindDynamics, "pp"},
		{KindDynamics, "sfz"},
		{KindArticulation, "tenuto"},
		{KindLyric, "Ah"},
		{KindRest, "rest"},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind)+"/"+tc.text, func(t *testing.T) {
			attr, err := ParseAttribute(tc.kind, tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, attr.Kind())
			assert.Equal(t, tc.text, attr.String())
		})
	}
}

func TestParseAttribute_RestAcceptsEmpty(t *testing.T) {
	attr, err := ParseAttribute(KindRest, "")
	require.NoError(t, err)
	assert.Equal(t, Rest{}, attr)
}

func TestParseAttribute_Errors(t *testing.T) {
	cases := []struct {
		desc string
		kind AttributeKind
		text string
		want error
	}{
		{"unknown kind", AttributeKind("tempo"), "120", ErrUnknownKind},
		{"unknown dynamic", KindDynamics, "loud", ErrInvalidAttribute},
		{"unknown articulation", KindArticulation, "wobble", ErrInvalidAttribute},
		{"blank lyric", KindLyric, "  ", ErrInvalidAttribute},
		{"rest with value", KindRest, "C4", ErrInvalidAttribute},
		{"bad pitch", KindPitch, "X9", ErrInvalidAttribute},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			attr, err := ParseAttribute(tc.kind, tc.text)
			require.Error(t, err)
			assert.Nil(t, attr)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
