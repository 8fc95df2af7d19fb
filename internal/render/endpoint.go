package render

import (
	"fmt"
	"strings"

	"github.com/umltools/uml-mcp/internal/config"
	"github.com/umltools/uml-mcp/internal/diagram"
)

// EndpointKind distinguishes self-hosted and hosted renderers.
type EndpointKind string

const (
	// EndpointLocal is a self-hosted renderer (e.g. a Docker container).
	EndpointLocal EndpointKind = "local"

	// EndpointRemote is a hosted public or configured remote renderer.
	EndpointRemote EndpointKind = "remote"
)

// Endpoint is one concrete renderer eligible to satisfy a render request.
type Endpoint struct {
	// BaseURL is the renderer base URL without a trailing slash.
	BaseURL string

	// Kind records whether this is the local or the remote variant.
	Kind EndpointKind

	// Family is the protocol dialect the endpoint speaks.
	Family diagram.Family

	// Formats lists the output formats this endpoint can produce for the
	// requested diagram type. Never empty; an endpoint missing the requested
	// format is not a candidate at all.
	Formats []string
}

// SupportsFormat reports whether the endpoint can produce the format.
func (e Endpoint) SupportsFormat(format string) bool {
	for _, f := range e.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// RenderURL builds the GET URL for an encoded payload.
//
// PlantUML protocol: {base}/{format}/{payload}
// Kroki protocol:    {base}/{kind}/{format}/{payload}
func (e Endpoint) RenderURL(kind, format, payload string) string {
	if e.Family == diagram.FamilyKroki {
		return fmt.Sprintf("%s/%s/%s/%s", e.BaseURL, kind, format, payload)
	}
	return fmt.Sprintf("%s/%s/%s", e.BaseURL, format, payload)
}

// Resolver produces the ordered candidate endpoints for a backend family
// from the immutable runtime configuration. Order is deterministic: the
// local endpoint (when enabled and configured) comes first, the remote
// endpoint is always last.
type Resolver struct {
	cfg config.Config
}

// NewResolver creates a resolver over the given configuration.
func NewResolver(cfg config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Candidates returns the ordered, non-empty endpoint list for a family.
// The formats slice is the requested diagram type's supported format set and
// is attached to every candidate.
//
// A local renderer that is enabled but has an empty base URL is skipped
// rather than returned as a candidate that would certainly fail.
func (r *Resolver) Candidates(family diagram.Family, formats []string) []Endpoint {
	var localEnabled bool
	var localURL, remoteURL, remoteDefault string

	switch family {
	case diagram.FamilyPlantUML:
		localEnabled = r.cfg.UseLocalPlantUML
		localURL = r.cfg.LocalPlantUMLServer
		remoteURL = r.cfg.PlantUMLServer
		remoteDefault = config.DefaultPlantUMLServer
	default:
		localEnabled = r.cfg.UseLocalKroki
		localURL = r.cfg.LocalKrokiServer
		remoteURL = r.cfg.KrokiServer
		remoteDefault = config.DefaultKrokiServer
	}

	var out []Endpoint
	if localEnabled {
		if base := normalizeBaseURL(localURL); base != "" {
			out = append(out, Endpoint{
				BaseURL: base,
				Kind:    EndpointLocal,
				Family:  family,
				Formats: formats,
			})
		}
	}

	base := normalizeBaseURL(remoteURL)
	if base == "" {
		base = remoteDefault
	}
	out = append(out, Endpoint{
		BaseURL: base,
		Kind:    EndpointRemote,
		Family:  family,
		Formats: formats,
	})
	return out
}

// normalizeBaseURL trims whitespace and a trailing slash.
func normalizeBaseURL(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), "/")
}
