// Package server implements the MCP (Model Context Protocol) surface for
// diagram generation.
//
// The server is built on the official MCP Go SDK and communicates over
// stdio: protocol traffic on stdout, logs on stderr.
//
// # Tools
//
// One generic tool plus one convenience tool per common diagram type:
//
//   - generate_uml: render any supported diagram type
//   - generate_class_diagram, generate_sequence_diagram,
//     generate_activity_diagram, generate_usecase_diagram,
//     generate_state_diagram, generate_component_diagram,
//     generate_deployment_diagram, generate_object_diagram: the classic UML
//     types over the PlantUML protocol
//   - generate_mermaid_diagram, generate_d2_diagram,
//     generate_graphviz_diagram, generate_erd_diagram: Kroki-protocol types
//
// Every tool accepts {code, output_dir, output_format} and returns
// {code, url, playground, local_path}.
//
// # Resources
//
//   - uml://types: registered diagram types with backend and format metadata
//   - uml://templates: starter skeletons per diagram type
//   - uml://examples: complete example diagrams per diagram type
//   - uml://formats: supported output formats per diagram type
//   - uml://server-info: server name, version, and configured backends
//
// # Prompts
//
// Authoring guidance prompts: uml_diagram (generic), class_diagram,
// sequence_diagram, activity_diagram, and usecase_diagram.
package server
