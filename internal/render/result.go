package render

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Request is one inbound render request. Each request is resolved
// independently; nothing is shared between concurrent requests except the
// read-only registry and configuration.
type Request struct {
	// Type is the diagram type identifier, e.g. "class" or "mermaid".
	Type string

	// Code is the diagram source text. Must be non-empty.
	Code string

	// OutputDir is the directory the rendered artifact is written to. When
	// empty, the dispatcher skips fetching and persisting entirely and only
	// builds the deterministic URLs (link-only mode).
	OutputDir string

	// Format is the requested output format. Empty means "svg". The value
	// must be within the diagram type's supported set.
	Format string
}

// Result is the immutable outcome of a successful dispatch. It is built once
// per request and never cached beyond the call.
type Result struct {
	// Code is the diagram source as rendered, including any markers the
	// dispatcher added.
	Code string `json:"code"`

	// URL is the resolved render URL on the endpoint that served the
	// request. Deterministic for identical input and configuration.
	URL string `json:"url"`

	// Playground is a link to a hosted interactive editor pre-loaded with
	// the encoded source. Empty when the diagram type has no playground.
	Playground string `json:"playground,omitempty"`

	// LocalPath is the persisted artifact path. Empty in link-only mode and
	// when persistence failed after a successful render.
	LocalPath string `json:"local_path,omitempty"`
}

// artifactName builds the artifact filename: a timestamp for uniqueness plus
// a short content hash so identical sources are recognizable on disk.
func artifactName(code, format string, now time.Time) string {
	sum := md5.Sum([]byte(code))
	return fmt.Sprintf("diagram_%s_%s.%s",
		now.Format("20060102150405"), hex.EncodeToString(sum[:])[:8], format)
}

// writeArtifact persists rendered bytes under dir with an atomic
// write-then-rename. The destination either contains the complete artifact
// or does not exist; a partial temp file never survives an exit path.
func writeArtifact(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".diagram-*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	dest := filepath.Join(dir, name)
	if err := os.Rename(tmpName, dest); err != nil {
		return "", err
	}
	return dest, nil
}
