package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/nicocarlier/safe-env-lite/pkg/schema"
)

// Printer writes validation reports to a terminal.
// Colors follow the given profile; termenv.Ascii disables them.
type Printer struct {
	w       io.Writer
	profile termenv.Profile
}

// NewPrinter creates a Printer for w.
func NewPrinter(w io.Writer, profile termenv.Profile) *Printer {
	return &Printer{w: w, profile: profile}
}

func (p *Printer) style(s, color string) termenv.Style {
	return p.profile.String(s).Foreground(p.profile.Color(color))
}

// Problems prints the aggregated failure report. Raw values of secret
// variables are omitted.
func (p *Printer) Problems(s schema.Schema, problems []schema.Problem) {
	fmt.Fprintln(p.w, p.style(schema.Header, "#f87171").Bold())
	for _, prob := range problems {
		line := fmt.Sprintf("  - %s: %s", p.style(prob.Key, "#fbbf24"), prob.Message)
		if prob.Value != nil && !s.Secret(prob.Key) {
			line += p.style(fmt.Sprintf(" (got %q)", *prob.Value), "#9ca3af").String()
		}
		fmt.Fprintln(p.w, line)
	}
}

// Success prints a one-line confirmation.
func (p *Printer) Success(env *schema.Env) {
	fmt.Fprintln(p.w, p.style(fmt.Sprintf("Environment is valid (%d variables)", env.Len()), "#34d399"))
}

// Env prints every resolved variable, one per line, with secrets masked.
func (p *Printer) Env(env *schema.Env) {
	width := 0
	for _, key := range env.Keys() {
		width = max(width, len(key))
	}

	masked := env.Masked()
	for _, key := range env.Keys() {
		v, _ := env.Get(key)
		var shown string
		switch {
		case !v.Defined():
			shown = p.style("<unset>", "#9ca3af").String()
		case env.IsSecret(key) && !v.IsNull():
			shown = fmt.Sprint(masked[key])
		default:
			shown = v.String()
		}
		pad := strings.Repeat(" ", width-len(key))
		fmt.Fprintf(p.w, "%s%s = %s\n", p.style(key, "#60a5fa"), pad, shown)
	}
}
