// Concrete node kinds of the hardware-description schema. Each kind is
// a declarative contribution: it embeds BaseNode, registers its field
// slots and ordered lists in its constructor, and supplies its visitor
// callback identity through Accept. The dispatch core never changes
// when a kind is added.
package hif

import "github.com/esd-univr/hif-core-sub003/internal/names"

// Value represents all value-producing nodes (expressions, literals,
// value references).
type Value interface {
	Node
	valueNode() // Marker method to distinguish values
}

// TypeNode represents all type nodes.
type TypeNode interface {
	Node
	typeNode() // Marker method to distinguish types
}

// Action represents all statement nodes.
type Action interface {
	Node
	actionNode() // Marker method to distinguish actions
}

// ===== Structure and scopes =====

// System is the root of a design description: the libraries, design
// units and global declarations of one compilation run.
type System struct {
	BaseNode
	Libraries    List
	DesignUnits  List
	Declarations List
}

// NewSystem creates a detached System root.
func NewSystem(name *names.Name) *System {
	n := &System{}
	n.init(n, name)
	n.declareList(&n.Libraries, "Libraries")
	n.declareList(&n.DesignUnits, "DesignUnits")
	n.declareList(&n.Declarations, "Declarations")

	return n
}

func (*System) Kind() Kind             { return KindSystem }
func (*System) DeclClass() DeclClass   { return 0 }
func (*System) scopeNode()             {}
func (n *System) Accept(v Visitor) int { return v.VisitSystem(n) }

// LibraryDef groups the declarations of one library.
type LibraryDef struct {
	BaseNode
	Declarations List
}

// NewLibraryDef creates a detached library definition.
func NewLibraryDef(name *names.Name) *LibraryDef {
	n := &LibraryDef{}
	n.init(n, name)
	n.declareList(&n.Declarations, "Declarations")

	return n
}

func (*LibraryDef) Kind() Kind             { return KindLibraryDef }
func (*LibraryDef) DeclClass() DeclClass   { return ClassLibrary }
func (*LibraryDef) scopeNode()             {}
func (n *LibraryDef) Accept(v Visitor) int { return v.VisitLibraryDef(n) }

// DesignUnit is a named hardware component with one or more views.
type DesignUnit struct {
	BaseNode
	Views List
}

// NewDesignUnit creates a detached design unit.
func NewDesignUnit(name *names.Name) *DesignUnit {
	n := &DesignUnit{}
	n.init(n, name)
	n.declareList(&n.Views, "Views")

	return n
}

func (*DesignUnit) Kind() Kind             { return KindDesignUnit }
func (*DesignUnit) DeclClass() DeclClass   { return ClassUnit }
func (*DesignUnit) scopeNode()             {}
func (n *DesignUnit) Accept(v Visitor) int { return v.VisitDesignUnit(n) }

// View is one implementation of a design unit: its interface ports and
// its contents.
type View struct {
	BaseNode
	Ports    List
	Contents Field
}

// NewView creates a detached view.
func NewView(name *names.Name) *View {
	n := &View{}
	n.init(n, name)
	n.declareList(&n.Ports, "Ports")
	n.declareField(&n.Contents, "Contents")

	return n
}

func (*View) Kind() Kind             { return KindView }
func (*View) DeclClass() DeclClass   { return ClassUnit }
func (*View) scopeNode()             {}
func (n *View) Accept(v Visitor) int { return v.VisitView(n) }

// Contents is the declarative and behavioral body of a view.
type Contents struct {
	BaseNode
	Declarations List
	Actions      List
}

// NewContents creates a detached contents block.
func NewContents() *Contents {
	n := &Contents{}
	n.init(n, nil)
	n.declareList(&n.Declarations, "Declarations")
	n.declareList(&n.Actions, "Actions")

	return n
}

func (*Contents) Kind() Kind             { return KindContents }
func (*Contents) DeclClass() DeclClass   { return 0 }
func (*Contents) scopeNode()             {}
func (n *Contents) Accept(v Visitor) int { return v.VisitContents(n) }

// ===== Object declarations =====

// Signal declares a signal object with a type and an optional initial
// value.
type Signal struct {
	BaseNode
	Type    Field
	Initial Field
}

// NewSignal creates a detached signal declaration.
func NewSignal(name *names.Name) *Signal {
	n := &Signal{}
	n.init(n, name)
	n.declareField(&n.Type, "Type")
	n.declareField(&n.Initial, "Initial")

	return n
}

func (*Signal) Kind() Kind             { return KindSignal }
func (*Signal) DeclClass() DeclClass   { return ClassValue }
func (n *Signal) Accept(v Visitor) int { return v.VisitSignal(n) }

// PortDirection distinguishes input, output and bidirectional ports.
type PortDirection int

const (
	DirIn PortDirection = iota
	DirOut
	DirInOut
)

// String returns the direction keyword.
func (d PortDirection) String() string {
	switch d {
	case DirIn:
		return "in"
	case DirOut:
		return "out"
	case DirInOut:
		return "inout"
	default:
		return "unknown"
	}
}

// Port declares an interface port of a view.
type Port struct {
	BaseNode
	Direction PortDirection
	Type      Field
	Initial   Field
}

// NewPort creates a detached port declaration.
func NewPort(name *names.Name, dir PortDirection) *Port {
	n := &Port{Direction: dir}
	n.init(n, name)
	n.declareField(&n.Type, "Type")
	n.declareField(&n.Initial, "Initial")

	return n
}

func (*Port) Kind() Kind             { return KindPort }
func (*Port) DeclClass() DeclClass   { return ClassValue }
func (n *Port) Accept(v Visitor) int { return v.VisitPort(n) }
func (n *Port) equalPayload(other Node) bool {
	return n.Direction == other.(*Port).Direction
}

// Variable declares a mutable object local to a process or function.
type Variable struct {
	BaseNode
	Type    Field
	Initial Field
}

// NewVariable creates a detached variable declaration.
func NewVariable(name *names.Name) *Variable {
	n := &Variable{}
	n.init(n, name)
	n.declareField(&n.Type, "Type")
	n.declareField(&n.Initial, "Initial")

	return n
}

func (*Variable) Kind() Kind             { return KindVariable }
func (*Variable) DeclClass() DeclClass   { return ClassValue }
func (n *Variable) Accept(v Visitor) int { return v.VisitVariable(n) }

// Const declares a named constant.
type Const struct {
	BaseNode
	Type  Field
	Value Field
}

// NewConst creates a detached constant declaration.
func NewConst(name *names.Name) *Const {
	n := &Const{}
	n.init(n, name)
	n.declareField(&n.Type, "Type")
	n.declareField(&n.Value, "Value")

	return n
}

func (*Const) Kind() Kind             { return KindConst }
func (*Const) DeclClass() DeclClass   { return ClassValue }
func (n *Const) Accept(v Visitor) int { return v.VisitConst(n) }

// Parameter declares a formal parameter of a function.
type Parameter struct {
	BaseNode
	Direction PortDirection
	Type      Field
	Default   Field
}

// NewParameter creates a detached parameter declaration.
func NewParameter(name *names.Name, dir PortDirection) *Parameter {
	n := &Parameter{Direction: dir}
	n.init(n, name)
	n.declareField(&n.Type, "Type")
	n.declareField(&n.Default, "Default")

	return n
}

func (*Parameter) Kind() Kind             { return KindParameter }
func (*Parameter) DeclClass() DeclClass   { return ClassValue }
func (n *Parameter) Accept(v Visitor) int { return v.VisitParameter(n) }
func (n *Parameter) equalPayload(other Node) bool {
	return n.Direction == other.(*Parameter).Direction
}

// TypeDef declares a named type. Record member declarations nested in
// the base type are visible through the definition's scope.
type TypeDef struct {
	BaseNode
	Base Field
}

// NewTypeDef creates a detached type definition.
func NewTypeDef(name *names.Name) *TypeDef {
	n := &TypeDef{}
	n.init(n, name)
	n.declareField(&n.Base, "Base")

	return n
}

func (*TypeDef) Kind() Kind             { return KindTypeDef }
func (*TypeDef) DeclClass() DeclClass   { return ClassType }
func (*TypeDef) scopeNode()             {}
func (n *TypeDef) Accept(v Visitor) int { return v.VisitTypeDef(n) }

// Function declares a callable with parameters, local declarations and
// a body.
type Function struct {
	BaseNode
	ReturnType   Field
	Parameters   List
	Declarations List
	Actions      List
}

// NewFunction creates a detached function declaration.
func NewFunction(name *names.Name) *Function {
	n := &Function{}
	n.init(n, name)
	n.declareField(&n.ReturnType, "ReturnType")
	n.declareList(&n.Parameters, "Parameters")
	n.declareList(&n.Declarations, "Declarations")
	n.declareList(&n.Actions, "Actions")

	return n
}

func (*Function) Kind() Kind             { return KindFunction }
func (*Function) DeclClass() DeclClass   { return ClassCallable }
func (*Function) scopeNode()             {}
func (n *Function) Accept(v Visitor) int { return v.VisitFunction(n) }

// FieldDecl declares one member of a record type.
type FieldDecl struct {
	BaseNode
	Type Field
}

// NewFieldDecl creates a detached record member declaration.
func NewFieldDecl(name *names.Name) *FieldDecl {
	n := &FieldDecl{}
	n.init(n, name)
	n.declareField(&n.Type, "Type")

	return n
}

func (*FieldDecl) Kind() Kind             { return KindFieldDecl }
func (*FieldDecl) DeclClass() DeclClass   { return ClassValue }
func (n *FieldDecl) Accept(v Visitor) int { return v.VisitFieldDecl(n) }

// ===== Symbols =====

// Identifier references a value object by name.
type Identifier struct {
	BaseNode
}

// NewIdentifier creates a detached value reference.
func NewIdentifier(name *names.Name) *Identifier {
	n := &Identifier{}
	n.init(n, name)

	return n
}

func (*Identifier) Kind() Kind                    { return KindIdentifier }
func (*Identifier) valueNode()                    {}
func (n *Identifier) ReferencedName() *names.Name { return n.Name() }
func (*Identifier) WantsClass() DeclClass         { return ClassValue }
func (n *Identifier) Accept(v Visitor) int        { return v.VisitIdentifier(n) }

// TypeRef references a named type.
type TypeRef struct {
	BaseNode
}

// NewTypeRef creates a detached type reference.
func NewTypeRef(name *names.Name) *TypeRef {
	n := &TypeRef{}
	n.init(n, name)

	return n
}

func (*TypeRef) Kind() Kind                    { return KindTypeRef }
func (*TypeRef) typeNode()                     {}
func (n *TypeRef) ReferencedName() *names.Name { return n.Name() }
func (*TypeRef) WantsClass() DeclClass         { return ClassType }
func (n *TypeRef) Accept(v Visitor) int        { return v.VisitTypeRef(n) }

// FieldRef references a member of a record-typed prefix value.
type FieldRef struct {
	BaseNode
	Prefix Field
}

// NewFieldRef creates a detached member reference.
func NewFieldRef(name *names.Name) *FieldRef {
	n := &FieldRef{}
	n.init(n, name)
	n.declareField(&n.Prefix, "Prefix")

	return n
}

func (*FieldRef) Kind() Kind                    { return KindFieldRef }
func (*FieldRef) valueNode()                    {}
func (n *FieldRef) ReferencedName() *names.Name { return n.Name() }
func (*FieldRef) WantsClass() DeclClass         { return ClassValue }
func (n *FieldRef) Accept(v Visitor) int        { return v.VisitFieldRef(n) }

// FunctionCall references a callable by name and carries its actual
// arguments.
type FunctionCall struct {
	BaseNode
	Arguments List
}

// NewFunctionCall creates a detached call expression.
func NewFunctionCall(name *names.Name) *FunctionCall {
	n := &FunctionCall{}
	n.init(n, name)
	n.declareList(&n.Arguments, "Arguments")

	return n
}

func (*FunctionCall) Kind() Kind                    { return KindFunctionCall }
func (*FunctionCall) valueNode()                    {}
func (n *FunctionCall) ReferencedName() *names.Name { return n.Name() }
func (*FunctionCall) WantsClass() DeclClass         { return ClassCallable }
func (n *FunctionCall) Accept(v Visitor) int        { return v.VisitFunctionCall(n) }

// Instance declares a named instantiation of a design unit and, as a
// symbol, references the instantiated unit by name.
type Instance struct {
	BaseNode
	unitName    *names.Name
	PortAssigns List
}

// NewInstance creates a detached instantiation. name is the declared
// instance name; unit names the design unit being instantiated.
func NewInstance(name, unit *names.Name) *Instance {
	n := &Instance{unitName: unit}
	n.init(n, name)
	n.declareList(&n.PortAssigns, "PortAssigns")

	return n
}

func (*Instance) Kind() Kind                    { return KindInstance }
func (*Instance) DeclClass() DeclClass          { return ClassValue }
func (n *Instance) ReferencedName() *names.Name { return n.unitName }
func (*Instance) WantsClass() DeclClass         { return ClassUnit }
func (n *Instance) Accept(v Visitor) int        { return v.VisitInstance(n) }
func (n *Instance) equalPayload(other Node) bool {
	return n.unitName == other.(*Instance).unitName
}

// PortAssign binds a value to a named port of an instantiated unit.
// Resolution starts from the instantiated view rather than the
// enclosing scope of the instance.
type PortAssign struct {
	BaseNode
	Value Field
}

// NewPortAssign creates a detached port binding.
func NewPortAssign(port *names.Name) *PortAssign {
	n := &PortAssign{}
	n.init(n, port)
	n.declareField(&n.Value, "Value")

	return n
}

func (*PortAssign) Kind() Kind                    { return KindPortAssign }
func (n *PortAssign) ReferencedName() *names.Name { return n.Name() }
func (*PortAssign) WantsClass() DeclClass         { return ClassValue }
func (n *PortAssign) Accept(v Visitor) int        { return v.VisitPortAssign(n) }

// ===== Values =====

// Operator enumerates the expression operators.
type Operator int

const (
	OpNone Operator = iota
	OpPlus
	OpMinus
	OpMult
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpNot
	OpBAnd
	OpBOr
	OpBXor
	OpShl
	OpShr
	OpConcat
)

// String returns the operator spelling.
func (op Operator) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMult:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpNot:
		return "!"
	case OpBAnd:
		return "&"
	case OpBOr:
		return "|"
	case OpBXor:
		return "^"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	case OpConcat:
		return "++"
	default:
		return "<none>"
	}
}

// Expression is a unary or binary operation. Value2 stays empty for
// unary operators.
type Expression struct {
	BaseNode
	Op     Operator
	Value1 Field
	Value2 Field
}

// NewExpression creates a detached expression node.
func NewExpression(op Operator) *Expression {
	n := &Expression{Op: op}
	n.init(n, nil)
	n.declareField(&n.Value1, "Value1")
	n.declareField(&n.Value2, "Value2")

	return n
}

func (*Expression) Kind() Kind             { return KindExpression }
func (*Expression) valueNode()             {}
func (n *Expression) Accept(v Visitor) int { return v.VisitExpression(n) }
func (n *Expression) equalPayload(other Node) bool {
	return n.Op == other.(*Expression).Op
}

// IntValue is an integer literal.
type IntValue struct {
	BaseNode
	Value int64
}

// NewIntValue creates a detached integer literal.
func NewIntValue(v int64) *IntValue {
	n := &IntValue{Value: v}
	n.init(n, nil)

	return n
}

func (*IntValue) Kind() Kind             { return KindIntValue }
func (*IntValue) valueNode()             {}
func (n *IntValue) Accept(v Visitor) int { return v.VisitIntValue(n) }
func (n *IntValue) equalPayload(other Node) bool {
	return n.Value == other.(*IntValue).Value
}

// BoolValue is a boolean literal.
type BoolValue struct {
	BaseNode
	Value bool
}

// NewBoolValue creates a detached boolean literal.
func NewBoolValue(v bool) *BoolValue {
	n := &BoolValue{Value: v}
	n.init(n, nil)

	return n
}

func (*BoolValue) Kind() Kind             { return KindBoolValue }
func (*BoolValue) valueNode()             {}
func (n *BoolValue) Accept(v Visitor) int { return v.VisitBoolValue(n) }
func (n *BoolValue) equalPayload(other Node) bool {
	return n.Value == other.(*BoolValue).Value
}

// BitvectorValue is a bit-string literal such as "01ZX".
type BitvectorValue struct {
	BaseNode
	Bits string
}

// NewBitvectorValue creates a detached bit-string literal.
func NewBitvectorValue(bits string) *BitvectorValue {
	n := &BitvectorValue{Bits: bits}
	n.init(n, nil)

	return n
}

func (*BitvectorValue) Kind() Kind             { return KindBitvectorValue }
func (*BitvectorValue) valueNode()             {}
func (n *BitvectorValue) Accept(v Visitor) int { return v.VisitBitvectorValue(n) }
func (n *BitvectorValue) equalPayload(other Node) bool {
	return n.Bits == other.(*BitvectorValue).Bits
}

// TextValue is a string literal.
type TextValue struct {
	BaseNode
	Text string
}

// NewTextValue creates a detached string literal.
func NewTextValue(text string) *TextValue {
	n := &TextValue{Text: text}
	n.init(n, nil)

	return n
}

func (*TextValue) Kind() Kind             { return KindTextValue }
func (*TextValue) valueNode()             {}
func (n *TextValue) Accept(v Visitor) int { return v.VisitTextValue(n) }
func (n *TextValue) equalPayload(other Node) bool {
	return n.Text == other.(*TextValue).Text
}

// RangeDirection distinguishes ascending and descending ranges.
type RangeDirection int

const (
	RangeUpto RangeDirection = iota
	RangeDownto
)

// String returns the range keyword.
func (d RangeDirection) String() string {
	if d == RangeDownto {
		return "downto"
	}

	return "upto"
}

// Range is a bounded span of values with a direction.
type Range struct {
	BaseNode
	Direction RangeDirection
	Left      Field
	Right     Field
}

// NewRange creates a detached range.
func NewRange(dir RangeDirection) *Range {
	n := &Range{Direction: dir}
	n.init(n, nil)
	n.declareField(&n.Left, "Left")
	n.declareField(&n.Right, "Right")

	return n
}

func (*Range) Kind() Kind             { return KindRange }
func (*Range) valueNode()             {}
func (n *Range) Accept(v Visitor) int { return v.VisitRange(n) }
func (n *Range) equalPayload(other Node) bool {
	return n.Direction == other.(*Range).Direction
}

// ===== Actions =====

// Assign drives Source onto Target.
type Assign struct {
	BaseNode
	Target Field
	Source Field
}

// NewAssign creates a detached assignment.
func NewAssign() *Assign {
	n := &Assign{}
	n.init(n, nil)
	n.declareField(&n.Target, "Target")
	n.declareField(&n.Source, "Source")

	return n
}

func (*Assign) Kind() Kind             { return KindAssign }
func (*Assign) actionNode()            {}
func (n *Assign) Accept(v Visitor) int { return v.VisitAssign(n) }

// IfStmt selects among guarded alternatives, with a default branch.
type IfStmt struct {
	BaseNode
	Alts     List
	Defaults List
}

// NewIfStmt creates a detached conditional.
func NewIfStmt() *IfStmt {
	n := &IfStmt{}
	n.init(n, nil)
	n.declareList(&n.Alts, "Alts")
	n.declareList(&n.Defaults, "Defaults")

	return n
}

func (*IfStmt) Kind() Kind             { return KindIfStmt }
func (*IfStmt) actionNode()            {}
func (n *IfStmt) Accept(v Visitor) int { return v.VisitIfStmt(n) }

// IfAlt is one guarded alternative of an IfStmt.
type IfAlt struct {
	BaseNode
	Condition Field
	Actions   List
}

// NewIfAlt creates a detached alternative.
func NewIfAlt() *IfAlt {
	n := &IfAlt{}
	n.init(n, nil)
	n.declareField(&n.Condition, "Condition")
	n.declareList(&n.Actions, "Actions")

	return n
}

func (*IfAlt) Kind() Kind             { return KindIfAlt }
func (n *IfAlt) Accept(v Visitor) int { return v.VisitIfAlt(n) }

// ForStmt iterates its body over a range, declaring the induction
// variable in its own scope.
type ForStmt struct {
	BaseNode
	Index     Field
	IterRange Field
	Actions   List
}

// NewForStmt creates a detached loop. The optional label names the
// loop's scope.
func NewForStmt(label *names.Name) *ForStmt {
	n := &ForStmt{}
	n.init(n, label)
	n.declareField(&n.Index, "Index")
	n.declareField(&n.IterRange, "IterRange")
	n.declareList(&n.Actions, "Actions")

	return n
}

func (*ForStmt) Kind() Kind             { return KindForStmt }
func (*ForStmt) actionNode()            {}
func (*ForStmt) DeclClass() DeclClass   { return 0 }
func (*ForStmt) scopeNode()             {}
func (n *ForStmt) Accept(v Visitor) int { return v.VisitForStmt(n) }

// Return ends a function body, optionally yielding a value.
type Return struct {
	BaseNode
	Value Field
}

// NewReturn creates a detached return action.
func NewReturn() *Return {
	n := &Return{}
	n.init(n, nil)
	n.declareField(&n.Value, "Value")

	return n
}

func (*Return) Kind() Kind             { return KindReturn }
func (*Return) actionNode()            {}
func (n *Return) Accept(v Visitor) int { return v.VisitReturn(n) }

// ===== Types =====

// IntType is a ranged integer type.
type IntType struct {
	BaseNode
	Signed bool
	Bounds Field
}

// NewIntType creates a detached integer type.
func NewIntType(signed bool) *IntType {
	n := &IntType{Signed: signed}
	n.init(n, nil)
	n.declareField(&n.Bounds, "Bounds")

	return n
}

func (*IntType) Kind() Kind             { return KindIntType }
func (*IntType) typeNode()              {}
func (n *IntType) Accept(v Visitor) int { return v.VisitIntType(n) }
func (n *IntType) equalPayload(other Node) bool {
	return n.Signed == other.(*IntType).Signed
}

// BoolType is the boolean type.
type BoolType struct {
	BaseNode
}

// NewBoolType creates a detached boolean type.
func NewBoolType() *BoolType {
	n := &BoolType{}
	n.init(n, nil)

	return n
}

func (*BoolType) Kind() Kind             { return KindBoolType }
func (*BoolType) typeNode()              {}
func (n *BoolType) Accept(v Visitor) int { return v.VisitBoolType(n) }

// BitvectorType is a vector of bits over a span.
type BitvectorType struct {
	BaseNode
	Logic  bool // true for multi-valued logic vectors
	Bounds Field
}

// NewBitvectorType creates a detached bit-vector type.
func NewBitvectorType(logic bool) *BitvectorType {
	n := &BitvectorType{Logic: logic}
	n.init(n, nil)
	n.declareField(&n.Bounds, "Bounds")

	return n
}

func (*BitvectorType) Kind() Kind             { return KindBitvectorType }
func (*BitvectorType) typeNode()              {}
func (n *BitvectorType) Accept(v Visitor) int { return v.VisitBitvectorType(n) }
func (n *BitvectorType) equalPayload(other Node) bool {
	return n.Logic == other.(*BitvectorType).Logic
}

// ArrayType is an array over a span of elements of one type.
type ArrayType struct {
	BaseNode
	Bounds      Field
	ElementType Field
}

// NewArrayType creates a detached array type.
func NewArrayType() *ArrayType {
	n := &ArrayType{}
	n.init(n, nil)
	n.declareField(&n.Bounds, "Bounds")
	n.declareField(&n.ElementType, "ElementType")

	return n
}

func (*ArrayType) Kind() Kind             { return KindArrayType }
func (*ArrayType) typeNode()              {}
func (n *ArrayType) Accept(v Visitor) int { return v.VisitArrayType(n) }

// RecordType aggregates named member declarations.
type RecordType struct {
	BaseNode
	Members List
}

// NewRecordType creates a detached record type.
func NewRecordType() *RecordType {
	n := &RecordType{}
	n.init(n, nil)
	n.declareList(&n.Members, "Members")

	return n
}

func (*RecordType) Kind() Kind             { return KindRecordType }
func (*RecordType) typeNode()              {}
func (n *RecordType) Accept(v Visitor) int { return v.VisitRecordType(n) }
