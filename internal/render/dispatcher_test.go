package render

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umltools/uml-mcp/internal/config"
	"github.com/umltools/uml-mcp/internal/diagram"
	"github.com/umltools/uml-mcp/internal/encoding"
)

const classSource = "@startuml\nclass Order\n@enduml"

// countingServer serves a fixed body and counts requests.
func countingServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int64, *[]string) {
	t.Helper()
	var count atomic.Int64
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &count, &paths
}

// forbiddenServer fails the test if it receives any request.
func forbiddenServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s", r.URL.Path)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDispatch_RemoteOnly(t *testing.T) {
	remote, count, paths := countingServer(t, http.StatusOK, "<svg/>")
	outputDir := t.TempDir()

	d := NewDispatcher(config.Config{PlantUMLServer: remote.URL})
	result, err := d.Dispatch(context.Background(), Request{
		Type:      "class",
		Code:      classSource,
		OutputDir: outputDir,
	})
	require.NoError(t, err)

	// Exactly one request, against the expected encoded payload.
	require.EqualValues(t, 1, count.Load())
	payload, err := encoding.PlantUML(classSource)
	require.NoError(t, err)
	assert.Equal(t, []string{"/svg/" + payload}, *paths)

	assert.Equal(t, classSource, result.Code)
	assert.Equal(t, remote.URL+"/svg/"+payload, result.URL)
	assert.Equal(t, "https://www.plantuml.com/plantuml/uml/"+payload, result.Playground)

	// The artifact lands under the output directory with the right suffix.
	require.NotEmpty(t, result.LocalPath)
	assert.True(t, strings.HasSuffix(result.LocalPath, ".svg"), "path %s", result.LocalPath)
	assert.Equal(t, outputDir, filepath.Dir(result.LocalPath))
	data, err := os.ReadFile(result.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestDispatch_LocalConfiguredButEmpty(t *testing.T) {
	remote, count, _ := countingServer(t, http.StatusOK, "<svg/>")

	// Local rendering enabled with no URL: the local candidate is skipped
	// entirely, not attempted and failed.
	d := NewDispatcher(config.Config{
		PlantUMLServer:      remote.URL,
		UseLocalPlantUML:    true,
		LocalPlantUMLServer: "",
	})
	result, err := d.Dispatch(context.Background(), Request{
		Type:      "class",
		Code:      classSource,
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)

	require.EqualValues(t, 1, count.Load())
	assert.True(t, strings.HasPrefix(result.URL, remote.URL))
}

func TestDispatch_FallsBackToRemote(t *testing.T) {
	local, localCount, _ := countingServer(t, http.StatusInternalServerError, "boom")
	remote, remoteCount, _ := countingServer(t, http.StatusOK, "<svg/>")

	d := NewDispatcher(config.Config{
		PlantUMLServer:      remote.URL,
		UseLocalPlantUML:    true,
		LocalPlantUMLServer: local.URL,
	})
	result, err := d.Dispatch(context.Background(), Request{
		Type:      "class",
		Code:      classSource,
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, localCount.Load())
	assert.EqualValues(t, 1, remoteCount.Load())
	assert.True(t, strings.HasPrefix(result.URL, remote.URL))
}

func TestDispatch_AllBackendsFail(t *testing.T) {
	local, localCount, _ := countingServer(t, http.StatusBadGateway, "down")
	remote, remoteCount, _ := countingServer(t, http.StatusServiceUnavailable, "down")

	d := NewDispatcher(config.Config{
		PlantUMLServer:      remote.URL,
		UseLocalPlantUML:    true,
		LocalPlantUMLServer: local.URL,
	})
	_, err := d.Dispatch(context.Background(), Request{
		Type:      "class",
		Code:      classSource,
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)

	var exhausted *AllBackendsFailedError
	require.True(t, errors.As(err, &exhausted), "got %T", err)
	assert.Equal(t, diagram.TypeClass, exhausted.Type)

	// One attempt per candidate, in try order: local first, remote last.
	require.Len(t, exhausted.Attempts, 2)
	assert.Equal(t, EndpointLocal, exhausted.Attempts[0].Endpoint.Kind)
	assert.Equal(t, EndpointRemote, exhausted.Attempts[1].Endpoint.Kind)

	assert.EqualValues(t, 1, localCount.Load())
	assert.EqualValues(t, 1, remoteCount.Load())
}

func TestDispatch_UnknownType(t *testing.T) {
	remote := forbiddenServer(t)

	d := NewDispatcher(config.Config{
		PlantUMLServer: remote.URL,
		KrokiServer:    remote.URL,
	})
	_, err := d.Dispatch(context.Background(), Request{
		Type:      "hieroglyphics",
		Code:      "whatever",
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)

	var unknown *diagram.UnknownTypeError
	assert.True(t, errors.As(err, &unknown), "got %T", err)
}

func TestDispatch_UnsupportedFormat(t *testing.T) {
	remote := forbiddenServer(t)

	d := NewDispatcher(config.Config{PlantUMLServer: remote.URL})
	_, err := d.Dispatch(context.Background(), Request{
		Type:      "class",
		Code:      classSource,
		OutputDir: t.TempDir(),
		Format:    "pdf",
	})
	require.Error(t, err)

	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported), "got %T", err)
	assert.Equal(t, diagram.TypeClass, unsupported.Type)
	assert.Equal(t, "pdf", unsupported.Format)
}

func TestDispatch_EmptyCode(t *testing.T) {
	d := NewDispatcher(config.Config{})
	_, err := d.Dispatch(context.Background(), Request{
		Type: "class",
		Code: "   \n ",
	})
	require.Error(t, err)
}

func TestDispatch_TypeNormalization(t *testing.T) {
	remote, count, _ := countingServer(t, http.StatusOK, "<svg/>")

	d := NewDispatcher(config.Config{PlantUMLServer: remote.URL})
	_, err := d.Dispatch(context.Background(), Request{
		Type:      "  Class ",
		Code:      classSource,
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count.Load())
}

func TestDispatch_LinkOnly(t *testing.T) {
	remote := forbiddenServer(t)

	d := NewDispatcher(config.Config{PlantUMLServer: remote.URL})
	result, err := d.Dispatch(context.Background(), Request{
		Type: "class",
		Code: classSource,
	})
	require.NoError(t, err)

	payload, err := encoding.PlantUML(classSource)
	require.NoError(t, err)
	assert.Equal(t, remote.URL+"/svg/"+payload, result.URL)
	assert.Empty(t, result.LocalPath)
}

func TestDispatch_KrokiDiagram(t *testing.T) {
	remote, count, paths := countingServer(t, http.StatusOK, "<svg/>")
	source := "graph TD\n  A --> B"

	d := NewDispatcher(config.Config{KrokiServer: remote.URL})
	result, err := d.Dispatch(context.Background(), Request{
		Type:      "mermaid",
		Code:      source,
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)

	require.EqualValues(t, 1, count.Load())
	payload, err := encoding.Kroki(source)
	require.NoError(t, err)
	assert.Equal(t, []string{"/mermaid/svg/" + payload}, *paths)

	// The playground link encodes the mermaid.live editor-state document,
	// not the backend payload.
	def, err := diagram.Resolve(diagram.TypeMermaid)
	require.NoError(t, err)
	statePayload, err := encoding.Kroki(def.Playground.Wrap(source))
	require.NoError(t, err)
	assert.Equal(t, "https://mermaid.live/edit#pako:"+statePayload, result.Playground)
	assert.NotEqual(t, payload, statePayload)

	// Mermaid source is never wrapped in PlantUML markers.
	assert.Equal(t, source, result.Code)
}

func TestDispatch_PersistenceFailureKeepsURL(t *testing.T) {
	remote, _, _ := countingServer(t, http.StatusOK, "<svg/>")

	// Use a regular file as the output directory so MkdirAll fails.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	d := NewDispatcher(config.Config{PlantUMLServer: remote.URL})
	result, err := d.Dispatch(context.Background(), Request{
		Type:      "class",
		Code:      classSource,
		OutputDir: blocker,
	})
	require.Error(t, err)

	var persistence *PersistenceError
	require.True(t, errors.As(err, &persistence), "got %T", err)

	// The result survives the error: the URL is still usable.
	require.NotNil(t, result)
	assert.True(t, strings.HasPrefix(result.URL, remote.URL))
	assert.Empty(t, result.LocalPath)
}

func TestDispatch_WrapsBarePlantUML(t *testing.T) {
	remote, _, paths := countingServer(t, http.StatusOK, "<svg/>")

	d := NewDispatcher(config.Config{PlantUMLServer: remote.URL})
	result, err := d.Dispatch(context.Background(), Request{
		Type:      "class",
		Code:      "class Order",
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)

	wrapped := "@startuml\nclass Order\n@enduml"
	assert.Equal(t, wrapped, result.Code)

	payload, err := encoding.PlantUML(wrapped)
	require.NoError(t, err)
	assert.Equal(t, []string{"/svg/" + payload}, *paths)
}

func TestApplyTheme(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		theme string
		want  string
	}{
		{
			name:  "injects after startuml",
			code:  "@startuml\nclass A\n@enduml",
			theme: "sketchy",
			want:  "@startuml\n!theme sketchy\nclass A\n@enduml",
		},
		{
			name:  "no theme requested",
			code:  "@startuml\nclass A\n@enduml",
			theme: "",
			want:  "@startuml\nclass A\n@enduml",
		},
		{
			name:  "existing theme preserved",
			code:  "@startuml\n!theme mono\nclass A\n@enduml",
			theme: "sketchy",
			want:  "@startuml\n!theme mono\nclass A\n@enduml",
		},
		{
			name:  "non-plantuml source untouched",
			code:  "graph TD\n  A --> B",
			theme: "sketchy",
			want:  "graph TD\n  A --> B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyTheme(tt.code, tt.theme))
		})
	}
}

func TestArtifactName(t *testing.T) {
	name := artifactName(classSource, "svg", mustParseTime(t, "2026-08-30T10:30:00Z"))
	assert.Regexp(t, `^diagram_20260830103000_[0-9a-f]{8}\.svg$`, name)

	// Same source, same hash fragment; different source, different fragment.
	again := artifactName(classSource, "png", mustParseTime(t, "2026-08-30T10:30:00Z"))
	assert.Equal(t, name[:len("diagram_20260830103000_xxxxxxxx")], again[:len("diagram_20260830103000_xxxxxxxx")])

	other := artifactName("@startuml\nclass Invoice\n@enduml", "svg", mustParseTime(t, "2026-08-30T10:30:00Z"))
	assert.NotEqual(t, name, other)
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestWriteArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := writeArtifact(dir, "diagram.svg", []byte("<svg/>"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "diagram.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
