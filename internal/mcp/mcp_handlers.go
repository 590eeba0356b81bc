package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/khaledelg/portfolio/core"
	"github.com/khaledelg/portfolio/internal/content"
	"github.com/khaledelg/portfolio/internal/contract"
	"github.com/khaledelg/portfolio/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	source  contract.ProfileSource
	site    *content.Site
}

// experienceResult is the payload of get_experience.
type experienceResult struct {
	Experiences    []schema.Experience    `json:"experiences"`
	Certifications []schema.Certification `json:"certifications"`
}

func (h *toolHandler) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if t := request.GetString("topics", ""); t != "" {
		cfg.Topics = contract.ParseTopics(t)
	}
	if l := request.GetInt("limit", 0); l != 0 {
		if l < 0 || l > contract.MaxAPIProjects {
			return mcp.NewToolResultError(fmt.Sprintf("limit must be between 1 and %d", contract.MaxAPIProjects)), nil
		}
		cfg.ResultLimit = l
	}
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = contract.DefaultAPIProjects
	}

	projects, err := core.SelectProjects(ctx, h.source, cfg.Topics, cfg.ResultLimit)
	if err != nil {
		if errors.Is(err, contract.ErrUpstreamUnavailable) {
			return mcp.NewToolResultError("project data is temporarily unavailable: GitHub could not be reached and nothing is cached yet"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("listing projects failed: %v", err)), nil
	}

	enriched := schema.EnrichProjects(projects, time.Now())
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCacheStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(h.source.Status(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetExperience(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.site == nil {
		return mcp.NewToolResultError("site content is not loaded"), nil
	}
	result := experienceResult{
		Experiences:    h.site.Experiences,
		Certifications: h.site.Certifications,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
