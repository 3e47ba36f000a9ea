// Package metrical provides musical-time value types.
//
// Duration is an exact rational (no floats), always kept in lowest terms so
// that two equal durations compare equal with ==. Interval is a closed range
// of Durations with Allen's interval algebra on top. Meter and Structure
// describe the bar layout of a work and exist for descriptive output only.
package metrical
