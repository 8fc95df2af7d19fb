// Package diagram defines the diagram-type registry: the static table mapping
// every supported diagram type to its rendering backend family, its
// family-specific kind string, its supported output formats, and its
// playground (interactive editor) link template.
//
// The registry is data, not logic. Adding a diagram type is an edit to the
// table in registry.go; no other package branches on individual types.
//
// # Backend Families
//
// Two protocol families cover all supported types:
//
//   - plantuml: the PlantUML HTTP protocol (GET {base}/{format}/{payload})
//     used by the eight classic UML diagram types.
//   - kroki: the Kroki HTTP protocol (GET {base}/{kind}/{format}/{payload})
//     used by everything else (mermaid, d2, graphviz, erd, blockdiag, bpmn,
//     c4).
//
// The package also carries the authoring catalogs (starter templates and
// examples per diagram type) that the MCP server exposes as resources.
package diagram
