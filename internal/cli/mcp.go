package cli

import (
	"context"
	"fmt"

	"github.com/nicocarlier/safe-env-lite/pkg/adapters/mcp"
)

// MCP transports accepted by RunMCP.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// RunMCP serves the schema and the configured source as MCP tools until
// ctx is cancelled (sse) or Stdin closes (stdio).
func RunMCP(ctx context.Context, opts Options, transport string, port int) error {
	if transport != TransportStdio && transport != TransportSSE {
		return fmt.Errorf("unknown transport %q (want %s or %s)", transport, TransportStdio, TransportSSE)
	}

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

	srv := mcp.NewServer(s, src, mcp.WithLogger(logger))
	if transport == TransportSSE {
		return srv.ServeSSE(ctx, port)
	}
	logger.Info("Starting safeenv MCP server (stdio)")
	return srv.ServeStdio()
}
