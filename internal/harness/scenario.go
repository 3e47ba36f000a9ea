package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/scoredb/internal/work"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Work is the path of the work to load. LoadScenario resolves it
	// relative to the scenario file.
	Work string `yaml:"work"`

	// Queries run Model.Entities and compare the ids returned.
	Queries []QueryStep `yaml:"queries,omitempty"`

	// Lookups run Model.Lookup on single entities.
	Lookups []LookupStep `yaml:"lookups,omitempty"`

	// Events check event membership.
	Events []EventStep `yaml:"events,omitempty"`

	// Assertions validate whole-Model properties.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// QueryStep is one Entities call and its expected result.
type QueryStep struct {
	From       work.Time `yaml:"from"`
	To         work.Time `yaml:"to"`
	Performer  string    `yaml:"performer,omitempty"`
	Instrument string    `yaml:"instrument,omitempty"`
	Voice      int       `yaml:"voice,omitempty"`

	// Kinds restricts the query. Absent means every kind; an explicit
	// empty list requests none.
	Kinds []string `yaml:"kinds"`

	// Expect lists the ids the query must return, in any order.
	Expect []uint32 `yaml:"expect"`
}

// LookupStep checks one entity.
type LookupStep struct {
	ID uint32 `yaml:"id"`

	// Found defaults to true.
	Found *bool `yaml:"found,omitempty"`

	// Kind, Value and Context are compared when set. Context uses the
	// model.Context String form.
	Kind    string `yaml:"kind,omitempty"`
	Value   string `yaml:"value,omitempty"`
	Context string `yaml:"context,omitempty"`
}

// EventStep checks the members of one event.
type EventStep struct {
	ID      uint32   `yaml:"id"`
	Members []uint32 `yaml:"members"`
}

// Assertion validates a whole-Model property.
type Assertion struct {
	// Type specifies the assertion type:
	// - "entity_count": Model.Len equals Count
	// - "kinds": Model.Kinds equals Kinds
	// - "meter": meter structure renders as Meter
	Type string `yaml:"type"`

	Count int      `yaml:"count,omitempty"`
	Kinds []string `yaml:"kinds,omitempty"`
	Meter string   `yaml:"meter,omitempty"`
}

// Assertion type constants.
const (
	AssertEntityCount = "entity_count"
	AssertKinds       = "kinds"
	AssertMeter       = "meter"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "lookup:" vs "lookups:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Work != "" && !filepath.IsAbs(scenario.Work) {
		scenario.Work = filepath.Join(filepath.Dir(path), scenario.Work)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Work == "" {
		return fmt.Errorf("work is required")
	}

	if len(s.Queries)+len(s.Lookups)+len(s.Events)+len(s.Assertions) == 0 {
		return fmt.Errorf("at least one query, lookup, event or assertion is required")
	}

	for i, q := range s.Queries {
		if q.From == "" || q.To == "" {
			return fmt.Errorf("queries[%d]: from and to are required", i)
		}
		if q.Expect == nil {
			return fmt.Errorf("queries[%d]: expect is required (use [] for no entities)", i)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertEntityCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for entity_count", index)
		}
	case AssertKinds:
		// An empty list asserts a Model with no attributes.
	case AssertMeter:
		if a.Meter == "" {
			return fmt.Errorf("assertions[%d]: meter is required for meter", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
