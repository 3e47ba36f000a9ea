package work

import (
	"errors"
	"fmt"
)

// Error code constants.
const (
	ErrCodeSchema       = "E201" // Document does not satisfy #Work
	ErrCodeParse        = "E202" // YAML/JSON syntax error
	ErrCodeInvalidValue = "E203" // Attribute, time or meter text rejected
	ErrCodeConstruction = "E204" // Model construction refused the entities
	ErrCodeNotFound     = "E205" // File missing or unreadable
	ErrCodeFormat       = "E206" // Unsupported file extension
	ErrCodeCatalog      = "E207" // SQLite catalog could not be read
)

// LoadError reports why a work could not be loaded.
type LoadError struct {
	Code    string
	Path    string // file path, empty for in-memory documents
	Field   string // document path such as "entities.3.kind", if known
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the LoadError code carried by err, or "" if there is none.
func ErrorCode(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}

// withPath stamps path on a LoadError that does not have one yet.
func withPath(err error, path string) error {
	var le *LoadError
	if errors.As(err, &le) && le.Path == "" {
		le.Path = path
	}
	return err
}
