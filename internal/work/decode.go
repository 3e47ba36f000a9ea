package work

import (
	"gopkg.in/yaml.v3"
)

// Decode parses a YAML or JSON work document and checks it against #Work.
//
// Syntax errors are reported with ErrCodeParse and schema violations with
// ErrCodeSchema. Attribute text, times and meters are only checked for shape
// here; Build parses them.
func Decode(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: "failed to parse document", Err: err}
	}
	if raw == nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: "document is empty"}
	}

	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: "failed to decode document", Err: err}
	}
	return &doc, nil
}
