package work

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// validateSchema unifies a decoded document with #Work and requires the
// result to be concrete. A fresh cue.Context is used per call because
// contexts are not safe for concurrent use.
func validateSchema(raw any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to compile work schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Work"))

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return formatCUEError(err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError reduces a CUE error list to its first entry, keeping the
// document path it refers to.
func formatCUEError(err error) *LoadError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: ErrCodeSchema, Message: err.Error()}
	}

	first := errs[0]
	format, args := first.Msg()
	return &LoadError{
		Code:    ErrCodeSchema,
		Field:   strings.Join(first.Path(), "."),
		Message: fmt.Sprintf(format, args...),
	}
}
