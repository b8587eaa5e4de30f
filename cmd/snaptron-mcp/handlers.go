package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/langmead-lab/snaptron-mcp/internal/snaptron"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// requireCompilation extracts the compilation name, the only locally-required
// parameter for compilation-scoped tools. Missing compilation fails before
// any network attempt.
func requireCompilation(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	compilation := request.GetString("compilation", "")
	if compilation == "" {
		return "", errorResult("Error: compilation parameter is required (use snaptron_list_compilations to see options)")
	}
	return compilation, nil
}

// --- Handlers ---

func handleListCompilations(c *snaptron.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := c.Fetch(ctx, c.RegistryURL())
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		// Pretty-print when the registry responds with JSON
		var parsed any
		if json.Unmarshal([]byte(body), &parsed) == nil {
			if formatted, err := json.MarshalIndent(parsed, "", "  "); err == nil {
				return textResult(fmt.Sprintf("Snaptron Compilation Registry:\n\n%s", formatted)), nil
			}
		}
		return textResult(fmt.Sprintf("Registry response:\n%s", body)), nil
	}
}

// handleQuery serves the junctions, genes, and samples query tools; they
// differ only in the resource path segment.
func handleQuery(c *snaptron.Client, resource snaptron.Resource) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		compilation, errRes := requireCompilation(request)
		if errRes != nil {
			return errRes, nil
		}

		params := snaptron.NormalizeParams(request.GetArguments())
		queryURL := c.QueryURL(compilation, resource, params)

		body, err := c.Fetch(ctx, queryURL)
		if err != nil {
			return errorResult(fmt.Sprintf("Query error: %v", err)), nil
		}

		count := snaptron.CountRecords(body)
		return textResult(fmt.Sprintf("Query URL: %s\n\nResults (%d records):\n\n%s", queryURL, count, body)), nil
	}
}

func handleGetResultCount(c *snaptron.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		compilation, errRes := requireCompilation(request)
		if errRes != nil {
			return errRes, nil
		}

		params := snaptron.NormalizeParams(request.GetArguments())
		queryURL := c.QueryURL(compilation, snaptron.ResourceJunctions, params)

		body, err := c.Fetch(ctx, queryURL)
		if err != nil {
			return errorResult(fmt.Sprintf("Count error: %v", err)), nil
		}

		count := snaptron.CountRecords(body)
		return textResult(fmt.Sprintf("Query URL: %s\n\nResult count: %d", queryURL, count)), nil
	}
}

func handleBuildURL(c *snaptron.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		compilation, errRes := requireCompilation(request)
		if errRes != nil {
			return errRes, nil
		}

		endpoint := request.GetString("endpoint", "")
		switch snaptron.Resource(endpoint) {
		case snaptron.ResourceJunctions, snaptron.ResourceGenes, snaptron.ResourceSamples:
		default:
			return errorResult("Error: endpoint parameter is required (one of 'snaptron', 'genes', 'samples')"), nil
		}

		params := snaptron.NormalizeParams(request.GetArguments())
		queryURL := c.QueryURL(compilation, snaptron.Resource(endpoint), params)

		return textResult(fmt.Sprintf("Built Snaptron URL:\n%s\n\nYou can test this with:\n  curl -L %q", queryURL, queryURL)), nil
	}
}
