// Package encoding implements the wire encodings the diagram rendering
// backends expect in their URLs.
//
// Two schemes are supported, one per backend protocol family:
//
//   - PlantUML: raw DEFLATE of the source text followed by PlantUML's own
//     64-character alphabet (not standard base64). This is the encoding the
//     reference PlantUML text encoder produces, so URLs built from it open
//     directly in any PlantUML server or editor.
//   - Kroki: zlib compression of the source text followed by URL-safe base64
//     with the trailing '=' padding stripped, per the Kroki GET API.
//
// Both encodings are deterministic: the same source always produces the same
// payload, which keeps rendered-diagram URLs stable and shareable. Inverse
// transforms are provided as well so the round-trip property can be verified.
//
// All functions are pure; no I/O is performed.
package encoding
