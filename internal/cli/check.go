package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	safeenv "github.com/nicocarlier/safe-env-lite"
	"github.com/nicocarlier/safe-env-lite/internal/presentation/tui"
	"github.com/nicocarlier/safe-env-lite/pkg/schema"
)

// ErrInvalidEnvironment is returned by Check after the report has been
// written, so callers only need to pick an exit code.
var ErrInvalidEnvironment = errors.New("environment is invalid")

type checkReport struct {
	Valid    bool             `json:"valid"`
	Env      *schema.Env      `json:"env,omitempty"`
	Problems []schema.Problem `json:"problems"`
}

// Check validates the configured source against the schema and writes a
// report to w.
func Check(ctx context.Context, opts Options, w io.Writer) error {
	s, err := LoadSchema(opts.SchemaPath)
	if err != nil {
		return err
	}
	logger, err := createLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	src, closeSource, err := openSource(ctx, opts)
	if err != nil {
		return err
	}
	defer closeSource()

	env, err := safeenv.Load(ctx, s, safeenv.WithSource(src), safeenv.WithLogger(logger))
	problems := schema.Problems(err)
	if err != nil && problems == nil {
		return err
	}

	if opts.JSON {
		report := checkReport{Valid: err == nil, Env: env, Problems: s.Redact(problems)}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(report); encErr != nil {
			return fmt.Errorf("failed to encode report: %w", encErr)
		}
	} else {
		profile := termenv.Ascii
		if isTerminal(w) {
			profile = termenv.EnvColorProfile()
		}
		printer := tui.NewPrinter(w, profile)
		if err != nil {
			printer.Problems(s, problems)
		} else {
			if opts.Print {
				printer.Env(env)
			}
			printer.Success(env)
		}
	}

	if err != nil {
		return ErrInvalidEnvironment
	}
	return nil
}
