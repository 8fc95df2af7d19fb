package diagram

// Example returns a small complete diagram for the given type, or an empty
// string if none is registered. Examples are served through the
// uml://examples MCP resource.
func Example(t Type) string {
	return examples[t]
}

var examples = map[Type]string{
	TypeClass: `@startuml
class User {
  -name: String
  -email: String
  +login(): Boolean
  +logout(): void
}

class Account {
  -balance: Decimal
  +deposit(amount: Decimal): void
  +withdraw(amount: Decimal): Boolean
}

User "1" -- "*" Account : owns >
@enduml`,
	TypeSequence: `@startuml
actor Customer
participant "Web Shop" as Shop
participant "Payment Gateway" as Pay

Customer -> Shop: checkout()
Shop -> Pay: charge(amount)
Pay --> Shop: confirmation
Shop --> Customer: receipt
@enduml`,
	TypeActivity: `@startuml
start
:Receive order;
if (in stock?) then (yes)
  :Ship order;
else (no)
  :Backorder;
endif
stop
@enduml`,
	TypeUsecase: `@startuml
actor Customer
actor Admin

usecase "Browse catalog" as UC1
usecase "Manage inventory" as UC2

Customer --> UC1
Admin --> UC2
@enduml`,
	TypeState: `@startuml
[*] --> Pending
Pending --> Shipped : dispatch
Shipped --> Delivered : deliver
Delivered --> [*]
@enduml`,
	TypeComponent: `@startuml
package "Storefront" {
  [Web UI] --> [API Gateway]
  [API Gateway] --> [Order Service]
  [Order Service] --> [Database]
}
@enduml`,
	TypeDeployment: `@startuml
node "Load Balancer" as lb
node "App Server 1" as app1
node "App Server 2" as app2
database "Postgres" as db

lb --> app1
lb --> app2
app1 --> db
app2 --> db
@enduml`,
	TypeObject: `@startuml
object order {
  id = 42
  status = "shipped"
}
object customer {
  name = "Ada"
}
customer --> order
@enduml`,
	TypeMermaid: `sequenceDiagram
    participant Alice
    participant Bob
    Alice->>Bob: Hello Bob!
    Bob-->>Alice: Hi Alice!`,
	TypeD2: `server: API Server
db: Database {
  shape: cylinder
}
server -> db: queries`,
	TypeGraphviz: `digraph pipeline {
    rankdir=LR;
    ingest -> transform -> load;
    transform -> errors [style=dashed];
}`,
	TypeERD: `[Author]
*id
name

[Book]
*id
title
+author_id

Author 1--* Book`,
	TypeBlockDiag: `blockdiag {
    request -> validate -> process -> respond;
    validate -> reject;
}`,
	TypeBPMN: `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                  xmlns:bpmndi="http://www.omg.org/spec/BPMN/20100524/DI"
                  id="Definitions_1" targetNamespace="http://bpmn.io/schema/bpmn">
  <bpmn:process id="Process_1" isExecutable="false">
    <bpmn:startEvent id="Start_1" name="Order received"/>
    <bpmn:task id="Task_1" name="Process order"/>
    <bpmn:endEvent id="End_1" name="Order shipped"/>
    <bpmn:sequenceFlow id="Flow_1" sourceRef="Start_1" targetRef="Task_1"/>
    <bpmn:sequenceFlow id="Flow_2" sourceRef="Task_1" targetRef="End_1"/>
  </bpmn:process>
</bpmn:definitions>`,
	TypeC4: `@startuml
!include <C4/C4_Container>

Person(customer, "Customer", "Buys products")
System_Boundary(shop, "Web Shop") {
  Container(web, "Web App", "Go", "Serves the storefront")
  ContainerDb(db, "Database", "PostgreSQL", "Stores orders")
}
Rel(customer, web, "Uses", "HTTPS")
Rel(web, db, "Reads/writes")
@enduml`,
}
