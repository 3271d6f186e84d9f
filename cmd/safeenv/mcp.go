package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/nicocarlier/safe-env-lite/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the schema to AI agents as an MCP server.

Tools:
- check_environment: validate the configured source (or given values) and report problems
- lint_schema: check the schema document for mistakes

Resources:
- safeenv://schema: Markdown reference of the declared variables

Supported Transports:
- stdio (default): Uses Standard Input/Output. Logs go to Stderr.
- sse: Uses Server-Sent Events over HTTP.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.RunMCP(ctx, sourceOptions(cmd, baseOptions(cmd)), transport, port)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	addSourceFlags(mcpCmd)
	mcpCmd.Flags().String("transport", cli.TransportStdio, "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
