// Package mcpserver exposes the goexpr tools as a Model Context Protocol server.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/njchilds90/goexpr"
)

const exprDescription = `JSON-encoded expression, e.g. {"type":"pow","left":{"type":"sym","name":"x"},"right":{"type":"num","value":"3"}}`

// Server wraps goexpr.HandleToolCall in an MCP server.
type Server struct {
	logger    *slog.Logger
	mcpServer *server.MCPServer
	tools     []mcp.Tool
}

// New creates a Server with every tool registered.
func New(logger *slog.Logger, version string) *Server {
	s := &Server{
		logger:    logger,
		mcpServer: server.NewMCPServer("goexpr", version),
	}
	s.registerTools()
	return s
}

// ServeStdio serves on Stdin/Stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Tools returns the registered tool definitions.
func (s *Server) Tools() []mcp.Tool { return s.tools }

func (s *Server) registerTools() {
	s.add(mcp.NewTool(goexpr.ToolDifferentiate,
		mcp.WithDescription("Differentiate an expression with respect to one variable."),
		mcp.WithString("expr", mcp.Required(), mcp.Description(exprDescription)),
		mcp.WithString("var", mcp.Required(), mcp.Description("Differentiation variable")),
		mcp.WithNumber("order", mcp.Description(fmt.Sprintf("Derivative order, 0 to %d (default 1)", goexpr.MaxOrder))),
	))
	s.add(mcp.NewTool(goexpr.ToolRender,
		mcp.WithDescription("Render an expression as text and LaTeX."),
		mcp.WithString("expr", mcp.Required(), mcp.Description(exprDescription)),
	))
	s.add(mcp.NewTool(goexpr.ToolFreeSymbols,
		mcp.WithDescription("List the symbols occurring in an expression."),
		mcp.WithString("expr", mcp.Required(), mcp.Description(exprDescription)),
	))
	s.add(mcp.NewTool(goexpr.ToolSize,
		mcp.WithDescription("Count the distinct nodes of an expression."),
		mcp.WithString("expr", mcp.Required(), mcp.Description(exprDescription)),
	))
}

func (s *Server) add(tool mcp.Tool) {
	s.tools = append(s.tools, tool)
	s.mcpServer.AddTool(tool, s.handler(tool.Name))
}

// handler translates MCP string arguments into a goexpr.ToolRequest.
func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params, err := toolParams(request.GetArguments())
		if err != nil {
			s.logger.Warn("MCP tool: arguments rejected", "tool", name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		resp := goexpr.HandleToolCall(goexpr.ToolRequest{Tool: name, Params: params})
		if resp.Error != "" {
			s.logger.Info("MCP tool failed", "tool", name, "error", resp.Error)
			return mcp.NewToolResultError(resp.Error), nil
		}

		out, err := json.Marshal(resp)
		if err != nil {
			return nil, fmt.Errorf("encode %s result: %w", name, err)
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}

func toolParams(args map[string]any) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(args))
	for k, v := range args {
		params[k] = v
	}
	raw, ok := args["expr"].(string)
	if !ok {
		return nil, fmt.Errorf("expr must be a JSON string")
	}
	var expr map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &expr); err != nil {
		return nil, fmt.Errorf("expr: %w", err)
	}
	params["expr"] = expr
	return params, nil
}
