package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
)

// uriScheme is the URI scheme for sercha-bridge resources.
const uriScheme = "sercha-bridge://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Effective bridge settings: fetcher, user agent, GitHub API root and search endpoint",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "fetchers",
		Name:        "fetchers",
		Description: "Fetcher kinds the bridge can be configured with",
		MIMEType:    "application/json",
	}, s.handleFetchersResource)
}

// settingsDoc is the JSON shape of the settings resource.
type settingsDoc struct {
	Fetcher        string `json:"fetcher"`
	UserAgent      string `json:"user_agent"`
	GitHubBaseURL  string `json:"github_base_url"`
	SearchEndpoint string `json:"search_endpoint"`
}

func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.settings()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	return jsonResource(req.Params.URI, settingsDoc{
		Fetcher:        settings.Bridge.Fetcher.String(),
		UserAgent:      settings.Bridge.UserAgent,
		GitHubBaseURL:  settings.GitHub.BaseURL,
		SearchEndpoint: settings.Search.Endpoint,
	})
}

func (s *Server) handleFetchersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type fetcherInfo struct {
		Kind        string `json:"kind"`
		Description string `json:"description"`
	}

	kinds := []domain.FetcherKind{domain.FetcherHTTP, domain.FetcherGitHub}
	infos := make([]fetcherInfo, len(kinds))
	for i, k := range kinds {
		infos[i] = fetcherInfo{Kind: k.String(), Description: k.Description()}
	}
	return jsonResource(req.Params.URI, infos)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
