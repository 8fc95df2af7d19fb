package server

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/umltools/uml-mcp/internal/diagram"
)

// GenerateInput is the MCP tool input for the generic generate_uml tool.
type GenerateInput struct {
	DiagramType  string `json:"diagram_type" jsonschema:"diagram type (class, sequence, activity, usecase, state, component, deployment, object, mermaid, d2, graphviz, erd, blockdiag, bpmn, c4)"`
	Code         string `json:"code" jsonschema:"diagram source code"`
	OutputDir    string `json:"output_dir,omitempty" jsonschema:"directory where the rendered artifact is saved (defaults to the configured output directory)"`
	OutputFormat string `json:"output_format,omitempty" jsonschema:"output format: svg, png, pdf, txt, or jpeg (default svg)"`
	Theme        string `json:"theme,omitempty" jsonschema:"optional PlantUML theme injected into the diagram"`
}

// DiagramInput is the MCP tool input for the per-type convenience tools.
type DiagramInput struct {
	Code         string `json:"code" jsonschema:"diagram source code"`
	OutputDir    string `json:"output_dir,omitempty" jsonschema:"directory where the rendered artifact is saved (defaults to the configured output directory)"`
	OutputFormat string `json:"output_format,omitempty" jsonschema:"output format (default svg)"`
	Theme        string `json:"theme,omitempty" jsonschema:"optional PlantUML theme injected into the diagram"`
}

// GenerateResult is the MCP tool output for all generation tools.
type GenerateResult struct {
	Code       string `json:"code" jsonschema:"diagram source as rendered"`
	URL        string `json:"url" jsonschema:"URL of the rendered diagram"`
	Playground string `json:"playground,omitempty" jsonschema:"interactive editor link pre-loaded with the diagram"`
	LocalPath  string `json:"local_path,omitempty" jsonschema:"local path of the saved artifact"`
	Message    string `json:"message,omitempty" jsonschema:"status message"`
}

// typedTools lists the diagram types that get their own convenience tool.
// The remaining registered types (blockdiag, bpmn, c4) are reachable through
// generate_uml.
var typedTools = []diagram.Type{
	diagram.TypeClass,
	diagram.TypeSequence,
	diagram.TypeActivity,
	diagram.TypeUsecase,
	diagram.TypeState,
	diagram.TypeComponent,
	diagram.TypeDeployment,
	diagram.TypeObject,
	diagram.TypeMermaid,
	diagram.TypeD2,
	diagram.TypeGraphviz,
	diagram.TypeERD,
}

// registerTools registers the generic tool and the per-type tools.
func (s *Server) registerTools(m *mcp.Server) {
	mcp.AddTool(m, generateUMLTool(), s.generateUMLHandler())
	for _, t := range typedTools {
		mcp.AddTool(m, typedTool(t), s.typedHandler(t))
	}
}

// generateUMLTool defines the MCP tool schema for the generic entry point.
func generateUMLTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_uml",
		Description: "Generate a diagram of any supported type and return its URL, playground link, and saved artifact path",
	}
}

// typedTool defines the MCP tool schema for one diagram type.
func typedTool(t diagram.Type) *mcp.Tool {
	def, err := diagram.Resolve(t)
	if err != nil {
		// typedTools only names registered types; reaching this is a
		// programming error.
		panic(err)
	}
	return &mcp.Tool{
		Name:        ToolName(t),
		Description: fmt.Sprintf("Generate a %s and return its URL, playground link, and saved artifact path", def.Description),
	}
}

// ToolName returns the convenience tool name for a diagram type.
func ToolName(t diagram.Type) string {
	return fmt.Sprintf("generate_%s_diagram", t)
}

// TypedToolTypes returns the diagram types that have their own tool, in
// registration order. Used by the CLI tool listing.
func TypedToolTypes() []diagram.Type {
	out := make([]diagram.Type, len(typedTools))
	copy(out, typedTools)
	return out
}
