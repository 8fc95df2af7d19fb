package diagram

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/umltools/uml-mcp/internal/encoding"
)

// Type identifies a supported diagram type, e.g. "class" or "mermaid".
type Type string

// Supported diagram types.
const (
	TypeClass      Type = "class"
	TypeSequence   Type = "sequence"
	TypeActivity   Type = "activity"
	TypeUsecase    Type = "usecase"
	TypeState      Type = "state"
	TypeComponent  Type = "component"
	TypeDeployment Type = "deployment"
	TypeObject     Type = "object"
	TypeMermaid    Type = "mermaid"
	TypeD2         Type = "d2"
	TypeGraphviz   Type = "graphviz"
	TypeERD        Type = "erd"
	TypeBlockDiag  Type = "blockdiag"
	TypeBPMN       Type = "bpmn"
	TypeC4         Type = "c4"
)

// Family identifies a rendering protocol dialect shared by several types.
type Family string

// Supported backend families.
const (
	FamilyPlantUML Family = "plantuml"
	FamilyKroki    Family = "kroki"
)

// Output formats understood by the dispatcher. A request format outside this
// set, or outside a type's Formats list, is rejected before any network call.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatTXT  = "txt"
	FormatJPEG = "jpeg"
)

// Playground describes how to build an interactive-editor link for a type:
// the encoded payload produced by Scheme is appended to Prefix. When Wrap is
// set, it transforms the diagram source into the document the editor expects
// in its URL fragment before encoding.
type Playground struct {
	Prefix string
	Scheme encoding.Scheme
	Wrap   func(source string) string
}

// Definition is one row of the registry table.
type Definition struct {
	// Type is the registered identifier.
	Type Type

	// Family selects the rendering protocol.
	Family Family

	// KrokiKind is the diagram kind in Kroki URLs. Empty for the plantuml
	// family, whose protocol has no kind segment.
	KrokiKind string

	// Formats lists the output formats the backends can produce for this
	// type. Never empty.
	Formats []string

	// Description is the human-readable summary shown in tool listings and
	// the uml://types resource.
	Description string

	// Playground is the editor link template, nil when no hosted editor
	// exists for the type.
	Playground *Playground
}

// UnknownTypeError reports a diagram type that is not in the registry.
// It is a caller error and never triggers backend fallback.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unsupported diagram type: %s", e.Type)
}

// plantumlPlayground links to the hosted PlantUML web editor.
var plantumlPlayground = &Playground{
	Prefix: "https://www.plantuml.com/plantuml/uml/",
	Scheme: encoding.SchemePlantUML,
}

// registry is the static type table. Content is configuration data loaded at
// compile time; it is never mutated after process start.
var registry = map[Type]Definition{
	TypeClass: {
		Type: TypeClass, Family: FamilyPlantUML,
		Formats:     []string{FormatSVG, FormatPNG, FormatTXT},
		Description: "UML class diagram (PlantUML)",
		Playground:  plantumlPlayground,
	},
	TypeSequence: {
		Type: TypeSequence, Family: FamilyPlantUML,
		Formats:     []string{FormatSVG, FormatPNG, FormatTXT},
		Description: "UML sequence diagram (PlantUML)",
		Playground:  plantumlPlayground,
	},
	TypeActivity: {
		Type: TypeActivity, Family: FamilyPlantUML,
		Formats:     []string{FormatSVG, FormatPNG, FormatTXT},
		Description: "UML activity diagram (PlantUML)",
		Playground:  plantumlPlayground,
	},
	TypeUsecase: {
		Type: TypeUsecase, Family: FamilyPlantUML,
		Formats:     []string{FormatSVG, FormatPNG, FormatTXT},
		Description: "UML use case diagram (PlantUML)",
		Playground:  plantumlPlayground,
	},
	TypeState: {
		Type: TypeState, Family: FamilyPlantUML,
		Formats:     []string{FormatSVG, FormatPNG, FormatTXT},
		Description: "UML state diagram (PlantUML)",
		Playground:  plantumlPlayground,
	},
	TypeComponent: {
		Type: TypeComponent, Family: FamilyPlantUML,
		Formats:     []string{FormatSVG, FormatPNG, FormatTXT},
		Description: "UML component diagram (PlantUML)",
		Playground:  plantumlPlayground,
	},
	TypeDeployment: {
		Type: TypeDeployment, Family: FamilyPlantUML,
		Formats:     []string{FormatSVG, FormatPNG, FormatTXT},
		Description: "UML deployment diagram (PlantUML)",
		Playground:  plantumlPlayground,
	},
	TypeObject: {
		Type: TypeObject, Family: FamilyPlantUML,
		Formats:     []string{FormatSVG, FormatPNG, FormatTXT},
		Description: "UML object diagram (PlantUML)",
		Playground:  plantumlPlayground,
	},
	TypeMermaid: {
		Type: TypeMermaid, Family: FamilyKroki, KrokiKind: "mermaid",
		Formats:     []string{FormatSVG, FormatPNG},
		Description: "Mermaid diagram",
		Playground: &Playground{
			Prefix: "https://mermaid.live/edit#pako:",
			Scheme: encoding.SchemeKroki,
			Wrap:   mermaidLiveState,
		},
	},
	TypeD2: {
		Type: TypeD2, Family: FamilyKroki, KrokiKind: "d2",
		Formats:     []string{FormatSVG},
		Description: "D2 diagram",
		Playground: &Playground{
			Prefix: "https://play.d2lang.com/?script=",
			Scheme: encoding.SchemeKroki,
		},
	},
	TypeGraphviz: {
		Type: TypeGraphviz, Family: FamilyKroki, KrokiKind: "graphviz",
		Formats:     []string{FormatSVG, FormatPNG, FormatPDF, FormatJPEG},
		Description: "Graphviz (DOT) diagram",
	},
	TypeERD: {
		Type: TypeERD, Family: FamilyKroki, KrokiKind: "erd",
		Formats:     []string{FormatSVG, FormatPNG, FormatPDF, FormatJPEG},
		Description: "Entity-Relationship diagram",
	},
	TypeBlockDiag: {
		Type: TypeBlockDiag, Family: FamilyKroki, KrokiKind: "blockdiag",
		Formats:     []string{FormatSVG, FormatPNG, FormatPDF},
		Description: "BlockDiag diagram",
	},
	TypeBPMN: {
		Type: TypeBPMN, Family: FamilyKroki, KrokiKind: "bpmn",
		Formats:     []string{FormatSVG},
		Description: "BPMN diagram",
	},
	TypeC4: {
		Type: TypeC4, Family: FamilyKroki, KrokiKind: "c4plantuml",
		Formats:     []string{FormatSVG, FormatPNG, FormatTXT},
		Description: "C4 model diagram (C4-PlantUML)",
	},
}

// mermaidLiveState builds the editor-state document mermaid.live expects in
// its pako: fragment. The editor deflates a JSON state object, not the bare
// diagram source; the mermaid field is a JSON string per its state format.
func mermaidLiveState(source string) string {
	state := struct {
		Code          string `json:"code"`
		Mermaid       string `json:"mermaid"`
		AutoSync      bool   `json:"autoSync"`
		UpdateDiagram bool   `json:"updateDiagram"`
	}{
		Code:          source,
		Mermaid:       `{"theme": "default"}`,
		AutoSync:      true,
		UpdateDiagram: true,
	}
	data, err := json.Marshal(state)
	if err != nil {
		// Marshaling a struct of strings and bools cannot fail.
		panic(err)
	}
	return string(data)
}

// Resolve looks up the registry entry for a diagram type.
func Resolve(t Type) (Definition, error) {
	def, ok := registry[t]
	if !ok {
		return Definition{}, &UnknownTypeError{Type: t}
	}
	return def, nil
}

// Types returns all registered diagram types in sorted order.
func Types() []Type {
	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// SupportsFormat reports whether the definition can produce the format.
func (d Definition) SupportsFormat(format string) bool {
	for _, f := range d.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Scheme returns the wire encoding used by the definition's family.
func (d Definition) Scheme() encoding.Scheme {
	if d.Family == FamilyPlantUML {
		return encoding.SchemePlantUML
	}
	return encoding.SchemeKroki
}
