package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownKind is returned when an attribute kind is not one of KnownKinds.
	ErrUnknownKind = errors.New("unknown attribute kind")

	// ErrInvalidAttribute is returned when an attribute's textual form cannot be parsed.
	ErrInvalidAttribute = errors.New("invalid attribute")
)

// Attribute is a sealed interface over the known attribute kinds.
// Only Pitch, Dynamics, Articulation, Lyric and Rest implement it.
// Callers switch on the concrete type (or on Kind) instead of asserting
// on untyped values.
type Attribute interface {
	// Kind is the union discriminant.
	Kind() AttributeKind

	// String renders the attribute in the same textual form ParseAttribute accepts.
	String() string

	attribute() // Sealed
}

// Pitch is a spelled pitch in scientific pitch notation.
type Pitch struct {
	Step   byte // 'A'..'G'
	Alter  int  // semitones: +1 sharp, -1 flat
	Octave int  // middle C is C4
}

func (Pitch) attribute() {}

// Kind returns KindPitch.
func (Pitch) Kind() AttributeKind { return KindPitch }

// String returns the spelling, e.g. "C#4" or "Bb3".
func (p Pitch) String() string {
	var b strings.Builder
	b.WriteByte(p.Step)
	switch {
	case p.Alter > 0:
		b.WriteString(strings.Repeat("#", p.Alter))
	case p.Alter < 0:
		b.WriteString(strings.Repeat("b", -p.Alter))
	}
	b.WriteString(strconv.Itoa(p.Octave))
	return b.String()
}

// stepSemitones maps a diatonic step to its offset from C.
var stepSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// MIDI returns the MIDI note number (C4 = 60).
func (p Pitch) MIDI() int {
	return (p.Octave+1)*12 + stepSemitones[p.Step] + p.Alter
}

// Dynamics is a dynamic marking such as "mf" or "sfz".
type Dynamics struct {
	Marking string
}

func (Dynamics) attribute() {}

// Kind returns KindDynamics.
func (Dynamics) Kind() AttributeKind { return KindDynamics }

func (d Dynamics) String() string { return d.Marking }

// Articulation is an articulation marking such as "staccato".
type Articulation struct {
	Marking string
}

func (Articulation) attribute() {}

// Kind returns KindArticulation.
func (Articulation) Kind() AttributeKind { return KindArticulation }

func (a Articulation) String() string { return a.Marking }

// Lyric is a sung syllable.
type Lyric struct {
	Text string
}

func (Lyric) attribute() {}

// Kind returns KindLyric.
func (Lyric) Kind() AttributeKind { return KindLyric }

func (l Lyric) String() string { return l.Text }

// Rest marks an entity as silence. It carries no value.
type Rest struct{}

func (Rest) attribute() {}

// Kind returns KindRest.
func (Rest) Kind() AttributeKind { return KindRest }

func (Rest) String() string { return "rest" }

var validDynamics = map[string]bool{
	"pppp": true, "ppp": true, "pp": true, "p": true, "mp": true,
	"mf": true, "f": true, "ff": true, "fff": true, "ffff": true,
	"sf": true, "sfz": true, "sffz": true, "fp": true, "rfz": true,
}

var validArticulations = map[string]bool{
	"accent":        true,
	"marcato":       true,
	"staccato":      true,
	"staccatissimo": true,
	"tenuto":        true,
	"portato":       true,
	"fermata":       true,
}

// ParseAttribute builds an Attribute of the given kind from its textual form.
// The text for KindRest must be empty or "rest".
func ParseAttribute(kind AttributeKind, text string) (Attribute, error) {
	switch kind {
	case KindPitch:
		return ParsePitch(text)
	case KindDynamics:
		if !validDynamics[text] {
			return nil, fmt.Errorf("%w: dynamics %q", ErrInvalidAttribute, text)
		}
		return Dynamics{Marking: text}, nil
	case KindArticulation:
		if !validArticulations[text] {
			return nil, fmt.Errorf("%w: articulation %q", ErrInvalidAttribute, text)
		}
		return Articulation{Marking: text}, nil
	case KindLyric:
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: lyric text is empty", ErrInvalidAttribute)
		}
		return Lyric{Text: text}, nil
	case KindRest:
		if text != "" && text != "rest" {
			return nil, fmt.Errorf("%w: rest takes no value, got %q", ErrInvalidAttribute, text)
		}
		return Rest{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ParsePitch parses scientific pitch notation: a step letter, any number of
// '#' or 'b' accidentals (not mixed), and a possibly negative octave.
func ParsePitch(text string) (Pitch, error) {
	if len(text) < 2 {
		return Pitch{}, fmt.Errorf("%w: pitch %q", ErrInvalidAttribute, text)
	}

	step := text[0]
	if _, ok := stepSemitones[step]; !ok {
		return Pitch{}, fmt.Errorf("%w: pitch %q: step must be A-G", ErrInvalidAttribute, text)
	}

	rest := text[1:]
	alter := 0
	switch {
	case strings.HasPrefix(rest, "#"):
		n := len(rest) - len(strings.TrimLeft(rest, "#"))
		alter = n
		rest = rest[n:]
	case strings.HasPrefix(rest, "b"):
		n := len(rest) - len(strings.TrimLeft(rest, "b"))
		alter = -n
		rest = rest[n:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: pitch %q: bad octave", ErrInvalidAttribute, text)
	}

	return Pitch{Step: step, Alter: alter, Octave: octave}, nil
}
