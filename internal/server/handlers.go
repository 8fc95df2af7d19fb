package server

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/umltools/uml-mcp/internal/diagram"
	"github.com/umltools/uml-mcp/internal/render"
)

// generateUMLHandler executes the generic generate_uml tool.
func (s *Server) generateUMLHandler() mcp.ToolHandlerFor[GenerateInput, GenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateResult, error) {
		result, err := s.generate(ctx, input.DiagramType, input)
		return nil, result, err
	}
}

// typedHandler executes a per-type convenience tool.
func (s *Server) typedHandler(t diagram.Type) mcp.ToolHandlerFor[DiagramInput, GenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DiagramInput) (*mcp.CallToolResult, GenerateResult, error) {
		result, err := s.generate(ctx, string(t), GenerateInput{
			Code:         input.Code,
			OutputDir:    input.OutputDir,
			OutputFormat: input.OutputFormat,
			Theme:        input.Theme,
		})
		return nil, result, err
	}
}

// generate runs one dispatch and maps its outcome onto the tool result.
//
// A persistence failure after a successful render is not a tool error: the
// URL is still valid, so the result is returned with local_path unset and an
// explanatory message.
func (s *Server) generate(ctx context.Context, diagramType string, input GenerateInput) (GenerateResult, error) {
	if s.cfg.Debug() {
		log.Printf("generate: type=%s code_len=%d format=%q", diagramType, len(input.Code), input.OutputFormat)
	}

	outputDir := input.OutputDir
	if outputDir == "" {
		outputDir = s.cfg.OutputDir
	}

	result, err := s.dispatcher.Dispatch(ctx, render.Request{
		Type:      diagramType,
		Code:      render.ApplyTheme(input.Code, input.Theme),
		OutputDir: outputDir,
		Format:    input.OutputFormat,
	})

	var persistErr *render.PersistenceError
	if errors.As(err, &persistErr) && result != nil {
		log.Printf("artifact save failed, returning URL only: %v", persistErr)
		return toGenerateResult(result, fmt.Sprintf("diagram rendered, but saving the artifact failed: %v", persistErr.Err)), nil
	}
	if err != nil {
		return GenerateResult{}, err
	}
	return toGenerateResult(result, "diagram generated successfully"), nil
}

func toGenerateResult(r *render.Result, message string) GenerateResult {
	return GenerateResult{
		Code:       r.Code,
		URL:        r.URL,
		Playground: r.Playground,
		LocalPath:  r.LocalPath,
		Message:    message,
	}
}
