package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	safeenv "github.com/nicocarlier/safe-env-lite"
	"github.com/nicocarlier/safe-env-lite/internal/validator"
	"github.com/nicocarlier/safe-env-lite/pkg/adapters/memory"
	"github.com/nicocarlier/safe-env-lite/pkg/ports"
	"github.com/nicocarlier/safe-env-lite/pkg/schema"
)

// SchemaURI is the resource holding the Markdown reference of the schema.
const SchemaURI = "safeenv://schema"

// CheckResponse is the structured result of the check_environment tool.
type CheckResponse struct {
	Valid    bool             `json:"valid" jsonschema_description:"Whether every declared variable resolved"`
	Env      map[string]any   `json:"env,omitempty" jsonschema_description:"Resolved values with secrets masked, present only when valid"`
	Problems []schema.Problem `json:"problems" jsonschema_description:"Failing variables in declaration order; raw values of secrets are omitted"`
}

// Server exposes a schema and its source as an MCP Server.
type Server struct {
	schema    schema.Schema
	source    ports.Source
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger passed to every validation run.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance checking s against src.
func NewServer(s schema.Schema, src ports.Source, opts ...Option) *Server {
	srv := &Server{
		schema:    s,
		source:    src,
		logger:    slog.Default(),
		mcpServer: server.NewMCPServer("safeenv-mcp", strings.TrimSpace(safeenv.Version)),
	}
	for _, opt := range opts {
		opt(srv)
	}
	srv.registerTools()
	srv.registerResources()
	return srv
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks until
// ctx is cancelled or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	s.logger.Info("MCP server listening (SSE)", "address", addr)
	go func() {
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) registerTools() {
	checkTool := mcp.NewTool("check_environment",
		mcp.WithDescription("Validate the environment against the schema and report every failing variable."),
		mcp.WithString("values", mcp.Description("JSON object of variable values to check instead of the configured source (optional)")),
		mcp.WithOutputSchema[CheckResponse](),
	)
	s.mcpServer.AddTool(checkTool, mcp.NewStructuredToolHandler(s.handleCheck))

	s.mcpServer.AddTool(mcp.NewTool("lint_schema",
		mcp.WithDescription("Check the schema document for declarations that cannot behave as intended."),
	), s.handleLint)
}

func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CheckResponse, error) {
	src := s.source
	if raw, ok := args["values"].(string); ok && raw != "" {
		values := make(map[string]string)
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return CheckResponse{}, fmt.Errorf("values must be a JSON object of strings: %w", err)
		}
		src = memory.NewSource(values)
	}

	env, err := safeenv.Load(ctx, s.schema, safeenv.WithSource(src), safeenv.WithLogger(s.logger))
	problems := schema.Problems(err)
	if err != nil && problems == nil {
		return CheckResponse{}, fmt.Errorf("check failed: %w", err)
	}

	resp := CheckResponse{Valid: err == nil, Problems: s.schema.Redact(problems)}
	if env != nil {
		resp.Env = env.Masked()
	}
	return resp, nil
}

func (s *Server) handleLint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := validator.ValidateSchema(s.schema); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Schema is valid (%d variables)", len(s.schema.Names()))), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(SchemaURI, "Environment Schema Reference",
		mcp.WithMIMEType("text/markdown"),
	), s.handleSchemaResource)
}

func (s *Server) handleSchemaResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      SchemaURI,
			MIMEType: "text/markdown",
			Text:     s.schema.Describe(),
		},
	}, nil
}
