package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the safeenv banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"            __                        ", "#34d399"},
		{"  ___ __ _ / _| ___   ___ _ ____   __ ", "#2dd4bf"},
		{" / __/ _` | |_ / _ \\ / _ \\ '_ \\ \\ / / ", "#22d3ee"},
		{" \\__ \\ (_| |  _|  __/|  __/ | | \\ V /  ", "#38bdf8"},
		{" |___/\\__,_|_|  \\___(_)___|_| |_|\\_/   ", "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
