package work

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the serialized form of a work before it is built.
type Document struct {
	ID       string           `yaml:"id,omitempty" json:"id,omitempty"`
	Title    string           `yaml:"title" json:"title"`
	Meter    []string         `yaml:"meter,omitempty" json:"meter,omitempty"`
	Entities []EntityDocument `yaml:"entities" json:"entities"`
	Events   []EventDocument  `yaml:"events,omitempty" json:"events,omitempty"`
}

// EntityDocument describes one entity: its attribute and its context.
type EntityDocument struct {
	ID         uint32 `yaml:"id" json:"id"`
	Kind       string `yaml:"kind" json:"kind"`
	Value      string `yaml:"value,omitempty" json:"value,omitempty"`
	Start      Time   `yaml:"start" json:"start"`
	End        Time   `yaml:"end" json:"end"`
	Performer  string `yaml:"performer,omitempty" json:"performer,omitempty"`
	Instrument string `yaml:"instrument,omitempty" json:"instrument,omitempty"`
	Voice      int    `yaml:"voice,omitempty" json:"voice,omitempty"`
}

// EventDocument groups member entities under an event id.
type EventDocument struct {
	ID      uint32   `yaml:"id" json:"id"`
	Members []uint32 `yaml:"members" json:"members"`
}

// Time is the textual form of a metrical.Duration ("3", "1/4").
// In YAML it may be written as a bare integer or a string.
type Time string

// UnmarshalYAML accepts any scalar and keeps its literal text.
func (t *Time) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: time must be a scalar", node.Line)
	}
	*t = Time(node.Value)
	return nil
}
