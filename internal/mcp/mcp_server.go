// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/khaledelg/portfolio/internal/content"
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the portfolio MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.ProfileSource, site *content.Site) *server.MCPServer {
	s := server.NewMCPServer(
		"Portfolio Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  source,
		site:    site,
	}

	// --- 1. Tool: list_projects ---
	s.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List the public GitHub projects shown on the portfolio, most recently updated first."),
		mcp.WithString("topics", mcp.Description("Comma-separated topics; a project matches if it has any of them.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned (max 100).")),
	), h.handleListProjects)

	// --- 2. Tool: get_cache_status ---
	s.AddTool(mcp.NewTool("get_cache_status",
		mcp.WithDescription("Report the state of the GitHub data cache without contacting GitHub."),
	), h.handleGetCacheStatus)

	// --- 3. Tool: get_experience ---
	s.AddTool(mcp.NewTool("get_experience",
		mcp.WithDescription("Return the work experience and certifications listed on the portfolio."),
	), h.handleGetExperience)

	return s
}

// StartMCPServer starts the portfolio MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.ProfileSource, site *content.Site) error {
	s := NewMCPServer(baseCfg, source, site)
	return server.ServeStdio(s)
}
