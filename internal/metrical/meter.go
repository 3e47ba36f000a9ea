package metrical

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMeter is returned when a meter cannot be parsed.
var ErrInvalidMeter = errors.New("invalid meter")

// Meter is a time signature such as 3/4: Beats beats of 1/Subdivision each.
type Meter struct {
	Beats       int64
	Subdivision int64
}

// ParseMeter parses "beats/subdivision". The subdivision must be a power of two.
func ParseMeter(s string) (Meter, error) {
	beatsStr, subStr, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Meter{}, fmt.Errorf("%w: %q", ErrInvalidMeter, s)
	}
	beats, err := strconv.ParseInt(beatsStr, 10, 64)
	if err != nil || beats <= 0 {
		return Meter{}, fmt.Errorf("%w: %q: beats must be a positive integer", ErrInvalidMeter, s)
	}
	sub, err := strconv.ParseInt(subStr, 10, 64)
	if err != nil || sub <= 0 || sub&(sub-1) != 0 {
		return Meter{}, fmt.Errorf("%w: %q: subdivision must be a power of two", ErrInvalidMeter, s)
	}
	return Meter{Beats: beats, Subdivision: sub}, nil
}

// Length returns the duration of one bar.
func (m Meter) Length() Duration {
	return MustDuration(m.Beats, m.Subdivision)
}

func (m Meter) String() string {
	return fmt.Sprintf("%d/%d", m.Beats, m.Subdivision)
}

// Structure is the ordered bar layout of a work: one Meter per bar.
type Structure struct {
	Meters []Meter
}

// NewStructure returns a Structure over a copy of meters.
func NewStructure(meters ...Meter) Structure {
	return Structure{Meters: append([]Meter(nil), meters...)}
}

// Bars returns the number of bars.
func (s Structure) Bars() int {
	return len(s.Meters)
}

// Length returns the total duration of all bars.
func (s Structure) Length() (Duration, error) {
	var total Duration
	for i, m := range s.Meters {
		next, err := total.Add(m.Length())
		if err != nil {
			return Duration{}, fmt.Errorf("bar %d: %w", i+1, err)
		}
		total = next
	}
	return total, nil
}

// Offsets returns the start offset of every bar.
func (s Structure) Offsets() ([]Duration, error) {
	offsets := make([]Duration, len(s.Meters))
	var at Duration
	for i, m := range s.Meters {
		offsets[i] = at
		if i == len(s.Meters)-1 {
			break
		}
		next, err := at.Add(m.Length())
		if err != nil {
			return nil, fmt.Errorf("bar %d: %w", i+2, err)
		}
		at = next
	}
	return offsets, nil
}

// String renders the meters separated by bar lines, e.g. "4/4 | 3/4".
// Runs of the same meter are compressed as "4/4 x3".
func (s Structure) String() string {
	if len(s.Meters) == 0 {
		return "(empty)"
	}
	var parts []string
	for i := 0; i < len(s.Meters); {
		j := i
		for j < len(s.Meters) && s.Meters[j] == s.Meters[i] {
			j++
		}
		part := s.Meters[i].String()
		if n := j - i; n > 1 {
			part += fmt.Sprintf(" x%d", n)
		}
		parts = append(parts, part)
		i = j
	}
	return strings.Join(parts, " | ")
}
