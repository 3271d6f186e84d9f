package cli

import (
	"fmt"
	"io"

	"github.com/nicocarlier/safe-env-lite/internal/presentation/tui"
)

// Docs writes the schema reference to w. On a terminal the markdown is
// rendered; otherwise it is written raw so it can be redirected to a file.
func Docs(opts Options, w io.Writer) error {
	s, err := LoadSchema(opts.SchemaPath)
	if err != nil {
		return err
	}

	doc := fmt.Sprintf("# Environment variables\n\nSource schema: `%s`\n\n%s", opts.SchemaPath, s.Describe())
	if isTerminal(w) {
		rendered, err := tui.NewRenderer(terminalWidth(w))(doc)
		if err != nil {
			return fmt.Errorf("failed to render docs: %w", err)
		}
		doc = rendered
	}

	_, err = io.WriteString(w, doc)
	return err
}
