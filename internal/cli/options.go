package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicocarlier/safe-env-lite/internal/logging"
	"github.com/nicocarlier/safe-env-lite/pkg/adapters/osenv"
	"github.com/nicocarlier/safe-env-lite/pkg/adapters/redis"
	"github.com/nicocarlier/safe-env-lite/pkg/ports"
	"github.com/nicocarlier/safe-env-lite/pkg/schema"
	"golang.org/x/term"
)

// Source names accepted by Options.Source.
const (
	SourceEnv   = "env"
	SourceRedis = "redis"
)

// Options contains the configuration shared by every command.
type Options struct {
	SchemaPath string
	LogLevel   string // Empty disables logging

	Source    string // SourceEnv or SourceRedis
	Prefix    string // Process environment only
	RedisAddr string
	RedisKey  string

	JSON  bool // check: machine-readable output
	Print bool // check: list resolved values on success
}

// LoadSchema reads a schema document. Files ending in .json are parsed as
// JSON, everything else as YAML.
func LoadSchema(path string) (schema.Schema, error) {
	if path == "" {
		return nil, fmt.Errorf("no schema file given (use --schema)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	var s schema.Schema
	if strings.EqualFold(filepath.Ext(path), ".json") {
		s, err = schema.ParseJSON(data)
	} else {
		s, err = schema.ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// openSource resolves the configured source. The returned closer is never nil.
func openSource(ctx context.Context, opts Options) (ports.Source, func() error, error) {
	noop := func() error { return nil }

	switch opts.Source {
	case "", SourceEnv:
		return osenv.New(osenv.WithPrefix(opts.Prefix)), noop, nil
	case SourceRedis:
		var ropts []redis.Option
		if opts.RedisKey != "" {
			ropts = append(ropts, redis.WithKey(opts.RedisKey))
		}
		store := redis.New(opts.RedisAddr, os.Getenv("SAFEENV_REDIS_PASSWORD"), 0, ropts...)
		src, err := store.Snapshot(ctx)
		if err != nil {
			_ = store.Close()
			return nil, noop, err
		}
		return src, store.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown source %q (want %s or %s)", opts.Source, SourceEnv, SourceRedis)
	}
}

func createLogger(level string) (*slog.Logger, error) {
	if level == "" {
		return logging.NewNop(), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or 0 when unknown.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
