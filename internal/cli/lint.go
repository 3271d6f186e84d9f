package cli

import (
	"fmt"
	"io"

	"github.com/nicocarlier/safe-env-lite/internal/validator"
)

// Lint checks the schema document itself, without reading any values.
func Lint(opts Options, w io.Writer) error {
	s, err := LoadSchema(opts.SchemaPath)
	if err != nil {
		return err
	}
	if err := validator.ValidateSchema(s); err != nil {
		return err
	}
	fmt.Fprintf(w, "Schema is valid (%d variables)\n", len(s.Names()))
	return nil
}
