package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/umltools/uml-mcp/internal/diagram"
)

// Resource URIs exposed by the server.
const (
	typesResourceURI      = "uml://types"
	templatesResourceURI  = "uml://templates"
	examplesResourceURI   = "uml://examples"
	formatsResourceURI    = "uml://formats"
	serverInfoResourceURI = "uml://server-info"
)

// registerResources registers the diagram metadata resources.
func (s *Server) registerResources(m *mcp.Server) {
	m.AddResource(&mcp.Resource{
		Name:        "diagram_types",
		Description: "Registered diagram types with backend and format metadata",
		MIMEType:    "application/json",
		URI:         typesResourceURI,
	}, typesResourceHandler())

	m.AddResource(&mcp.Resource{
		Name:        "diagram_templates",
		Description: "Starter templates for each diagram type",
		MIMEType:    "application/json",
		URI:         templatesResourceURI,
	}, catalogResourceHandler(templatesResourceURI, diagram.Template))

	m.AddResource(&mcp.Resource{
		Name:        "diagram_examples",
		Description: "Complete example diagrams for each diagram type",
		MIMEType:    "application/json",
		URI:         examplesResourceURI,
	}, catalogResourceHandler(examplesResourceURI, diagram.Example))

	m.AddResource(&mcp.Resource{
		Name:        "output_formats",
		Description: "Supported output formats for each diagram type",
		MIMEType:    "application/json",
		URI:         formatsResourceURI,
	}, formatsResourceHandler())

	m.AddResource(&mcp.Resource{
		Name:        "server_info",
		Description: "Server name, version, and configured rendering backends",
		MIMEType:    "application/json",
		URI:         serverInfoResourceURI,
	}, s.serverInfoResourceHandler())
}

// typeEntry is one diagram type's metadata in the uml://types payload.
type typeEntry struct {
	Backend     string   `json:"backend"`
	KrokiKind   string   `json:"kroki_kind,omitempty"`
	Description string   `json:"description"`
	Formats     []string `json:"formats"`
}

// typesResourceHandler serves the registry table as JSON.
func typesResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		payload := make(map[string]typeEntry)
		for _, t := range diagram.Types() {
			def, err := diagram.Resolve(t)
			if err != nil {
				return nil, fmt.Errorf("resolve %s: %w", t, err)
			}
			payload[string(t)] = typeEntry{
				Backend:     string(def.Family),
				KrokiKind:   def.KrokiKind,
				Description: def.Description,
				Formats:     def.Formats,
			}
		}
		return jsonResourceResult(typesResourceURI, payload)
	}
}

// catalogResourceHandler serves a per-type text catalog (templates or
// examples) as JSON.
func catalogResourceHandler(uri string, lookup func(diagram.Type) string) mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		payload := make(map[string]string)
		for _, t := range diagram.Types() {
			if entry := lookup(t); entry != "" {
				payload[string(t)] = entry
			}
		}
		return jsonResourceResult(uri, payload)
	}
}

// formatsResourceHandler serves the per-type output format lists.
func formatsResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		payload := make(map[string][]string)
		for _, t := range diagram.Types() {
			def, err := diagram.Resolve(t)
			if err != nil {
				return nil, fmt.Errorf("resolve %s: %w", t, err)
			}
			payload[string(t)] = def.Formats
		}
		return jsonResourceResult(formatsResourceURI, payload)
	}
}

// serverInfo is the uml://server-info payload.
type serverInfo struct {
	ServerName     string   `json:"server_name"`
	Version        string   `json:"version"`
	DiagramTypes   []string `json:"diagram_types"`
	PlantUMLServer string   `json:"plantuml_server"`
	KrokiServer    string   `json:"kroki_server"`
	OutputDir      string   `json:"output_dir"`
}

// serverInfoResourceHandler serves server identity and backend configuration.
func (s *Server) serverInfoResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		types := diagram.Types()
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		return jsonResourceResult(serverInfoResourceURI, serverInfo{
			ServerName:     serverName,
			Version:        serverVersion,
			DiagramTypes:   names,
			PlantUMLServer: s.cfg.PlantUMLServer,
			KrokiServer:    s.cfg.KrokiServer,
			OutputDir:      s.cfg.OutputDir,
		})
	}
}

// jsonResourceResult marshals a payload into a single JSON resource content.
func jsonResourceResult(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
