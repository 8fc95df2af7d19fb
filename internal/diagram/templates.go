package diagram

// Template returns a starter skeleton for the given diagram type, or an
// empty string if none is registered. Templates are served through the
// uml://templates MCP resource.
func Template(t Type) string {
	return templates[t]
}

var templates = map[Type]string{
	TypeClass: `@startuml
class ClassName {
  -privateField: Type
  +publicMethod(): ReturnType
}

ClassName --|> ParentClass
@enduml`,
	TypeSequence: `@startuml
actor Caller
participant Service

Caller -> Service: request()
Service --> Caller: response
@enduml`,
	TypeActivity: `@startuml
start
:First activity;
if (condition?) then (yes)
  :Then branch;
else (no)
  :Else branch;
endif
stop
@enduml`,
	TypeUsecase: `@startuml
actor User
usecase "Do something" as UC1
User --> UC1
@enduml`,
	TypeState: `@startuml
[*] --> Idle
Idle --> Running : start
Running --> Idle : stop
Running --> [*] : finish
@enduml`,
	TypeComponent: `@startuml
package "System" {
  [Component A] --> [Component B]
}
@enduml`,
	TypeDeployment: `@startuml
node "Server" {
  artifact "app.jar"
}
node "Client" --> "Server"
@enduml`,
	TypeObject: `@startuml
object instanceName {
  field = value
}
@enduml`,
	TypeMermaid: `graph TD
    A[Start] --> B{Decision}
    B -->|Yes| C[Do it]
    B -->|No| D[Skip it]`,
	TypeD2: `shape1: First
shape2: Second
shape1 -> shape2: connects to`,
	TypeGraphviz: `digraph G {
    rankdir=LR;
    A -> B -> C;
}`,
	TypeERD: `[Person]
*name
+birth_location_id

[Location]
*id

Person *--1 Location`,
	TypeBlockDiag: `blockdiag {
    A -> B -> C;
    B -> D;
}`,
	TypeBPMN: `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                  id="Definitions_1" targetNamespace="http://bpmn.io/schema/bpmn">
  <bpmn:process id="Process_1" isExecutable="false">
    <bpmn:startEvent id="StartEvent_1"/>
  </bpmn:process>
</bpmn:definitions>`,
	TypeC4: `@startuml
!include <C4/C4_Container>

Person(user, "User")
System(system, "System", "Does the work")
Rel(user, system, "Uses")
@enduml`,
}
