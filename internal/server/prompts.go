package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/umltools/uml-mcp/internal/diagram"
)

// basePromptText is the shared preamble for every diagram prompt.
const basePromptText = `You are an expert in UML diagrams. Create a UML diagram based on the description.

Follow these guidelines:
1. Use proper UML notation and syntax
2. Include all necessary elements mentioned in the description
3. Organize the diagram to be readable and clear
4. Add appropriate relationships between elements

Provide the diagram code that can be directly used to generate the UML diagram:
`

// typedPromptText holds the type-specific guidance appended to the base
// prompt for each specialised diagram prompt.
var typedPromptText = map[diagram.Type]string{
	diagram.TypeClass: `
For class diagrams, follow these additional guidelines:
1. Include class names, attributes, and methods with proper visibility (+, -, #)
2. Show inheritance using generalization relationships (empty triangle arrow)
3. Show composition using filled diamond and aggregation using empty diamond
4. Include proper multiplicities on associations (1, *, 0..1, etc.)
5. Group related classes together
6. Use interfaces where appropriate (with <<interface>> stereotype)

Example PlantUML class diagram syntax:
` + "```" + `
@startuml
class User {
  -name: String
  -email: String
  +login(): void
  +logout(): void
}

class Account {
  -balance: Decimal
  +deposit(amount: Decimal): void
  +withdraw(amount: Decimal): boolean
}

User "1" -- "*" Account : has >
@enduml
` + "```" + `

Provide the complete PlantUML code for the class diagram:
`,
	diagram.TypeSequence: `
For sequence diagrams, follow these additional guidelines:
1. Include all participants (actors, objects, systems) involved in the interaction
2. Show messages in chronological order from top to bottom
3. Include activations to show when objects are active
4. Use lifelines for all participants
5. Include return messages where appropriate
6. Add notes for clarification when needed

Example PlantUML sequence diagram syntax:
` + "```" + `
@startuml
actor User
participant "Web Browser" as Browser
participant "Web Server" as Server
database Database

User -> Browser: Enter credentials
activate Browser
Browser -> Server: Send login request
activate Server
Server -> Database: Validate credentials
activate Database
Database --> Server: Authentication result
deactivate Database
Server --> Browser: Login response
deactivate Server
Browser --> User: Display result
deactivate Browser
@enduml
` + "```" + `

Provide the complete PlantUML code for the sequence diagram:
`,
	diagram.TypeActivity: `
For activity diagrams, follow these additional guidelines:
1. Include clear start and end points
2. Show activities as rounded rectangles
3. Use decision nodes (diamonds) for branching
4. Include merge nodes where appropriate
5. Use swimlanes if activities are performed by different actors/systems
6. Include fork and join bars for parallel activities

Example PlantUML activity diagram syntax:
` + "```" + `
@startuml
start
:Login to system;
if (Valid credentials?) then (yes)
  :Display dashboard;
  fork
    :Check notifications;
  fork again
    :Load user data;
  end fork
  :Display user profile;
else (no)
  :Show error message;
  :Display login form;
endif
stop
@enduml
` + "```" + `

Provide the complete PlantUML code for the activity diagram:
`,
	diagram.TypeUsecase: `
For use case diagrams, follow these additional guidelines:
1. Include actors represented as stick figures
2. Display use cases as ovals with descriptive text
3. Show system boundary as a rectangle containing the use cases
4. Include relationships: association (line), include (dashed arrow with <<include>>), extend (dashed arrow with <<extend>>)
5. Show actor generalizations if applicable

Example PlantUML use case diagram syntax:
` + "```" + `
@startuml
left to right direction
actor Customer
actor Administrator

rectangle "Online Shopping System" {
  usecase "Browse Products" as UC1
  usecase "Add to Cart" as UC2
  usecase "Checkout" as UC3
  usecase "Process Payment" as UC4
  usecase "Manage Products" as UC5

  Customer --> UC1
  Customer --> UC2
  Customer --> UC3
  UC3 ..> UC4 : <<include>>
  Administrator --> UC5
}
@enduml
` + "```" + `

Provide the complete PlantUML code for the use case diagram:
`,
}

// registerPrompts registers the diagram authoring prompts.
func (s *Server) registerPrompts(m *mcp.Server) {
	m.AddPrompt(&mcp.Prompt{
		Name:        "uml_diagram",
		Description: "Base prompt for UML diagram generation",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "diagram_type",
				Description: "Kind of UML diagram to produce (class, sequence, activity, ...)",
			},
		},
	}, umlDiagramPromptHandler())

	for _, t := range []diagram.Type{
		diagram.TypeClass,
		diagram.TypeSequence,
		diagram.TypeActivity,
		diagram.TypeUsecase,
	} {
		m.AddPrompt(&mcp.Prompt{
			Name:        fmt.Sprintf("%s_diagram", t),
			Description: fmt.Sprintf("Generate a UML %s diagram from a description", t),
		}, typedPromptHandler(t))
	}
}

// umlDiagramPromptHandler serves the base prompt, optionally specialised by
// the diagram_type argument.
func umlDiagramPromptHandler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text := basePromptText
		if req != nil && req.Params != nil {
			if t := req.Params.Arguments["diagram_type"]; t != "" {
				text += fmt.Sprintf("\nThis should be a %s diagram.\n", t)
			}
		}
		return promptResult(text), nil
	}
}

// typedPromptHandler serves the base prompt plus type-specific guidance.
func typedPromptHandler(t diagram.Type) mcp.PromptHandler {
	return func(_ context.Context, _ *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text := basePromptText + fmt.Sprintf("\nThis should be a %s diagram.\n", t)
		text += typedPromptText[t]
		return promptResult(text), nil
	}
}

func promptResult(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}
