// Package performance identifies who plays an entity: performer, instrument
// and voice, plus the partial Scope used to filter by them.
package performance

import (
	"fmt"
	"strconv"
	"strings"
)

// Context names the performer, the instrument they play, and the voice on
// that instrument. Voices are numbered from 1; 0 means unassigned.
type Context struct {
	Performer  string
	Instrument string
	Voice      int
}

// String renders "performer/instrument/voice", leaving unset parts out.
func (c Context) String() string {
	parts := make([]string, 0, 3)
	if c.Performer != "" {
		parts = append(parts, c.Performer)
	}
	if c.Instrument != "" {
		parts = append(parts, c.Instrument)
	}
	if c.Voice != 0 {
		parts = append(parts, "v"+strconv.Itoa(c.Voice))
	}
	if len(parts) == 0 {
		return "(unassigned)"
	}
	return strings.Join(parts, "/")
}

// Scope is a possibly partial Context. An empty Performer or Instrument and
// a zero Voice match anything.
type Scope struct {
	Performer  string
	Instrument string
	Voice      int
}

// Any returns the scope that matches every Context.
func Any() Scope {
	return Scope{}
}

// ByPerformer returns the scope of everything performer plays.
func ByPerformer(performer string) Scope {
	return Scope{Performer: performer}
}

// Contains reports whether c matches every field s specifies.
func (s Scope) Contains(c Context) bool {
	if s.Performer != "" && s.Performer != c.Performer {
		return false
	}
	if s.Instrument != "" && s.Instrument != c.Instrument {
		return false
	}
	if s.Voice != 0 && s.Voice != c.Voice {
		return false
	}
	return true
}

// String renders the specified fields, "*" for the rest.
func (s Scope) String() string {
	field := func(v string) string {
		if v == "" {
			return "*"
		}
		return v
	}
	voice := "*"
	if s.Voice != 0 {
		voice = strconv.Itoa(s.Voice)
	}
	return fmt.Sprintf("performer=%s instrument=%s voice=%s", field(s.Performer), field(s.Instrument), voice)
}
