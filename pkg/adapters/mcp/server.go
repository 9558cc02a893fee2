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

	"github.com/aretw0/medcalc"
	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource exposing the calculator catalog.
const CatalogURI = "medcalc://calculators"

// Service defines the calculator operations the MCP server exposes.
type Service interface {
	List(ctx context.Context) ([]domain.Summary, error)
	Get(ctx context.Context, slug string) (domain.Detail, error)
	Run(ctx context.Context, slug string, payload map[string]any) (domain.Response, error)
}

// CalculatorList is the structured result of list_calculators.
type CalculatorList struct {
	Calculators []domain.Summary `json:"calculators" jsonschema_description:"Every calculator in catalog order"`
}

// SlugArgs names one calculator.
type SlugArgs struct {
	Slug string `json:"slug"`
}

// RunArgs carries a calculator invocation.
type RunArgs struct {
	Slug   string         `json:"slug"`
	Inputs map[string]any `json:"inputs"`
}

// Server wraps the calculator Service and exposes it as an MCP Server.
type Server struct {
	svc       Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(svc Service) *Server {
	s := &Server{
		svc: svc,
		mcpServer: server.NewMCPServer("medcalc-mcp", strings.TrimSpace(medcalc.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, mainly for tests.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeHTTP starts the streamable HTTP transport on the given port, mounted at /mcp.
// It returns when ctx is done or the listener fails.
func (s *Server) ServeHTTP(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)

	mux := http.NewServeMux()
	mux.Handle("/mcp", corsMiddleware(server.NewStreamableHTTPServer(s.mcpServer)))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (streamable HTTP)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_calculators
	listTool := mcp.NewTool("list_calculators",
		mcp.WithDescription("List every available clinical calculator with its slug, id, name and type."),
		mcp.WithOutputSchema[CalculatorList](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleList))

	// TOOL: describe_calculator
	describeTool := mcp.NewTool("describe_calculator",
		mcp.WithDescription("Describe one calculator: its question and the input fields it accepts."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Calculator slug, as returned by list_calculators")),
		mcp.WithOutputSchema[domain.Detail](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribe))

	// TOOL: run_calculator
	runTool := mcp.NewTool("run_calculator",
		mcp.WithDescription("Run a calculator. Inputs are keyed by field label (or parameter name); "+
			"measurements may be a number or a [value, unit] pair."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Calculator slug")),
		mcp.WithObject("inputs", mcp.Required(),
			mcp.Description("Calculator inputs keyed by field label"),
			mcp.AdditionalProperties(true),
		),
	)
	s.mcpServer.AddTool(runTool, mcp.NewTypedToolHandler(s.handleRun))
}

// Handler methods for structured tools

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args struct{}) (CalculatorList, error) {
	summaries, err := s.svc.List(ctx)
	if err != nil {
		return CalculatorList{}, err
	}
	if summaries == nil {
		summaries = []domain.Summary{}
	}
	return CalculatorList{Calculators: summaries}, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args SlugArgs) (domain.Detail, error) {
	if args.Slug == "" {
		return domain.Detail{}, errors.New("slug is required")
	}
	return s.svc.Get(ctx, args.Slug)
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, args RunArgs) (*mcp.CallToolResult, error) {
	if args.Slug == "" {
		return mcp.NewToolResultError("slug is required"), nil
	}

	resp, err := s.svc.Run(ctx, args.Slug, args.Inputs)
	if err != nil {
		if domain.IsClientError(err) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid request: %v", err)), nil
		}
		slog.Error("run_calculator failed", "slug", args.Slug, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("calculator failed: %v", err)), nil
	}

	text, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultStructured(map[string]any(resp), string(text)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: medcalc://calculators
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Calculator Catalog",
		mcp.WithResourceDescription("Every calculator with its input fields"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := s.catalogJSON(ctx)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	})
}

func (s *Server) catalogJSON(ctx context.Context) (string, error) {
	summaries, err := s.svc.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list calculators: %w", err)
	}
	details := make([]domain.Detail, 0, len(summaries))
	for _, sum := range summaries {
		d, err := s.svc.Get(ctx, sum.Slug)
		if err != nil {
			return "", fmt.Errorf("failed to describe %s: %w", sum.Slug, err)
		}
		details = append(details, d)
	}
	jsonBytes, err := json.Marshal(details)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
