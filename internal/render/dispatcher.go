package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/umltools/uml-mcp/internal/config"
	"github.com/umltools/uml-mcp/internal/diagram"
	"github.com/umltools/uml-mcp/internal/encoding"
)

// Dispatcher orchestrates a single render request: registry lookup, candidate
// resolution, payload encoding, sequential fallback across candidates, and
// artifact persistence.
//
// A Dispatcher is stateless across calls and safe for concurrent use; the
// only shared state is the read-only registry and configuration.
type Dispatcher struct {
	resolver *Resolver
	client   *Client
}

// NewDispatcher creates a dispatcher over the given configuration.
func NewDispatcher(cfg config.Config) *Dispatcher {
	return &Dispatcher{
		resolver: NewResolver(cfg),
		client:   NewClient(),
	}
}

// Dispatch resolves and renders one request.
//
// Candidates are tried strictly in order; the first success wins and no two
// candidates are ever in flight at once. Failure modes:
//
//   - unknown diagram type or unsupported format: rejected before any
//     network call (*diagram.UnknownTypeError, *UnsupportedFormatError)
//   - encoding failure: fatal, *EncodingError
//   - every candidate failed: *AllBackendsFailedError with one attempt per
//     candidate in order
//   - artifact write failure after a successful render: the Result is
//     returned WITH the error (*PersistenceError) and LocalPath unset, since
//     the resolved URL is still usable.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(req.Code) == "" {
		return nil, fmt.Errorf("diagram code is required")
	}

	def, err := diagram.Resolve(diagram.Type(strings.ToLower(strings.TrimSpace(req.Type))))
	if err != nil {
		return nil, err
	}

	format := req.Format
	if format == "" {
		format = diagram.FormatSVG
	}
	if !def.SupportsFormat(format) {
		return nil, &UnsupportedFormatError{Type: def.Type, Format: format}
	}

	code := prepareSource(def, req.Code)

	// Payloads are cached per scheme so candidates sharing a scheme are not
	// re-encoded, and so the playground link reuses the same bytes.
	payloads := make(map[encoding.Scheme]string, 1)
	encodeFor := func(scheme encoding.Scheme) (string, error) {
		if payload, ok := payloads[scheme]; ok {
			return payload, nil
		}
		payload, err := encoding.Encode(code, scheme)
		if err != nil {
			return "", &EncodingError{Scheme: scheme, Err: err}
		}
		payloads[scheme] = payload
		return payload, nil
	}

	candidates := d.resolver.Candidates(def.Family, def.Formats)
	eligible := candidates[:0:0]
	for _, ep := range candidates {
		if ep.SupportsFormat(format) {
			eligible = append(eligible, ep)
		}
	}
	if len(eligible) == 0 {
		return nil, &UnsupportedFormatError{Type: def.Type, Format: format}
	}

	// Link-only mode: no fetch, no persistence. The first candidate's URL is
	// used; candidate order is deterministic, so the link is too.
	if req.OutputDir == "" {
		return d.buildResult(def, eligible[0], code, format, "", encodeFor)
	}

	attempts := make([]Attempt, 0, len(eligible))
	for _, ep := range eligible {
		payload, err := encodeFor(def.Scheme())
		if err != nil {
			return nil, err
		}

		data, err := d.client.Render(ctx, ep, def.KrokiKind, payload, format)
		if err != nil {
			attempts = append(attempts, Attempt{Endpoint: ep, Err: err})
			continue
		}

		name := artifactName(code, format, time.Now())
		localPath, werr := writeArtifact(req.OutputDir, name, data)
		if werr != nil {
			// Rendering succeeded; report the save failure but keep the URL
			// usable. Never retried against another endpoint.
			result, rerr := d.buildResult(def, ep, code, format, "", encodeFor)
			if rerr != nil {
				return nil, rerr
			}
			return result, &PersistenceError{Path: req.OutputDir, Err: werr}
		}
		return d.buildResult(def, ep, code, format, localPath, encodeFor)
	}

	return nil, &AllBackendsFailedError{Type: def.Type, Attempts: attempts}
}

// buildResult assembles the final record from the successful candidate's
// metadata and the cached payloads.
func (d *Dispatcher) buildResult(
	def diagram.Definition,
	ep Endpoint,
	code, format, localPath string,
	encodeFor func(encoding.Scheme) (string, error),
) (*Result, error) {
	payload, err := encodeFor(def.Scheme())
	if err != nil {
		return nil, err
	}

	result := &Result{
		Code:      code,
		URL:       ep.RenderURL(def.KrokiKind, format, payload),
		LocalPath: localPath,
	}

	if def.Playground != nil {
		payload, err := encodePlayground(def.Playground, code, encodeFor)
		if err != nil {
			return nil, err
		}
		result.Playground = def.Playground.Prefix + payload
	}
	return result, nil
}

// encodePlayground encodes the editor-link payload. A playground with a
// Wrap transform encodes the wrapped document instead of the raw source, so
// its payload bypasses the per-scheme cache of backend payloads.
func encodePlayground(pg *diagram.Playground, code string, encodeFor func(encoding.Scheme) (string, error)) (string, error) {
	if pg.Wrap == nil {
		return encodeFor(pg.Scheme)
	}
	payload, err := encoding.Encode(pg.Wrap(code), pg.Scheme)
	if err != nil {
		return "", &EncodingError{Scheme: pg.Scheme, Err: err}
	}
	return payload, nil
}

// prepareSource normalizes diagram source for its family. Bare PlantUML
// source is wrapped in @startuml/@enduml markers, matching what the hosted
// editor does for snippets.
func prepareSource(def diagram.Definition, code string) string {
	if def.Family != diagram.FamilyPlantUML {
		return code
	}
	if strings.Contains(code, "@start") {
		return code
	}
	return "@startuml\n" + strings.TrimRight(code, "\n") + "\n@enduml"
}

// ApplyTheme injects a PlantUML !theme directive after @startuml when a
// theme is requested and none is present. Non-PlantUML source is returned
// unchanged.
func ApplyTheme(code, theme string) string {
	if theme == "" || !strings.Contains(code, "@startuml") || strings.Contains(code, "!theme") {
		return code
	}
	return strings.Replace(code, "@startuml", "@startuml\n!theme "+theme, 1)
}
