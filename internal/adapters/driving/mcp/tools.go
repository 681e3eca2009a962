package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"search terms, or a full http(s) URL to GET unchanged"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	// URL is the request actually sent.
	URL string `json:"url"`
	// Received is false when the bridge published nothing.
	Received bool `json:"received"`
	// Response is the decoded JSON body, unmodified.
	Response any `json:"response,omitempty"`
	// Repositories is filled for GitHub repository search responses.
	Repositories []RepositoryOutput `json:"repositories,omitempty"`
}

// RepositoryOutput is one repository from a search response.
type RepositoryOutput struct {
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int64  `json:"stars"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search",
		Description: "Send one GET through the search bridge and return the decoded JSON response. " +
			"Search terms are appended to the configured endpoint (GitHub repository search by default). " +
			"received=false means the request failed or the body was not JSON.",
	}, s.handleSearch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if input.Query == "" {
		return nil, SearchOutput{}, fmt.Errorf("query: %w", domain.ErrInvalidInput)
	}

	settings, err := s.settings()
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("loading settings: %w", err)
	}
	url := settings.Search.QueryURL(input.Query)

	value, ok, err := s.ports.Exchange.Exchange(ctx, url)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{URL: url, Received: ok}
	if !ok {
		return nil, output, nil
	}

	output.Response = value
	for _, r := range domain.RepositoriesFrom(value) {
		output.Repositories = append(output.Repositories, RepositoryOutput{
			Name:        r.Name,
			URL:         r.URL,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
		})
	}
	return nil, output, nil
}
