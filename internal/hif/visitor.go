// Visitor dispatch protocol for the IR tree. Each node's Accept calls
// the visitor method matching its concrete kind; GuideVisitor supplies
// the default recursive behavior so concrete visitors override only the
// kinds they care about while still reaching the whole tree.
package hif

// Visitor is the polymorphic callback with one method per concrete node
// kind. Handler results are plain ints; the guided traversal combines
// child results into the parent's result with bitwise OR.
type Visitor interface {
	// Structure and scopes
	VisitSystem(n *System) int
	VisitLibraryDef(n *LibraryDef) int
	VisitDesignUnit(n *DesignUnit) int
	VisitView(n *View) int
	VisitContents(n *Contents) int

	// Object declarations
	VisitSignal(n *Signal) int
	VisitPort(n *Port) int
	VisitVariable(n *Variable) int
	VisitConst(n *Const) int
	VisitParameter(n *Parameter) int
	VisitTypeDef(n *TypeDef) int
	VisitFunction(n *Function) int
	VisitFieldDecl(n *FieldDecl) int

	// Symbols
	VisitIdentifier(n *Identifier) int
	VisitTypeRef(n *TypeRef) int
	VisitFieldRef(n *FieldRef) int
	VisitFunctionCall(n *FunctionCall) int
	VisitInstance(n *Instance) int
	VisitPortAssign(n *PortAssign) int

	// Values
	VisitExpression(n *Expression) int
	VisitIntValue(n *IntValue) int
	VisitBoolValue(n *BoolValue) int
	VisitBitvectorValue(n *BitvectorValue) int
	VisitTextValue(n *TextValue) int
	VisitRange(n *Range) int

	// Actions
	VisitAssign(n *Assign) int
	VisitIfStmt(n *IfStmt) int
	VisitIfAlt(n *IfAlt) int
	VisitForStmt(n *ForStmt) int
	VisitReturn(n *Return) int

	// Types
	VisitIntType(n *IntType) int
	VisitBoolType(n *BoolType) int
	VisitBitvectorType(n *BitvectorType) int
	VisitArrayType(n *ArrayType) int
	VisitRecordType(n *RecordType) int
}

// NullVisitor implements Visitor returning zero for every kind. Embed
// it to write per-node callbacks that perform no recursion of their
// own, for example the visitor handed to an ordered traversal.
type NullVisitor struct{}

func (NullVisitor) VisitSystem(n *System) int                 { return 0 }
func (NullVisitor) VisitLibraryDef(n *LibraryDef) int         { return 0 }
func (NullVisitor) VisitDesignUnit(n *DesignUnit) int         { return 0 }
func (NullVisitor) VisitView(n *View) int                     { return 0 }
func (NullVisitor) VisitContents(n *Contents) int             { return 0 }
func (NullVisitor) VisitSignal(n *Signal) int                 { return 0 }
func (NullVisitor) VisitPort(n *Port) int                     { return 0 }
func (NullVisitor) VisitVariable(n *Variable) int             { return 0 }
func (NullVisitor) VisitConst(n *Const) int                   { return 0 }
func (NullVisitor) VisitParameter(n *Parameter) int           { return 0 }
func (NullVisitor) VisitTypeDef(n *TypeDef) int               { return 0 }
func (NullVisitor) VisitFunction(n *Function) int             { return 0 }
func (NullVisitor) VisitFieldDecl(n *FieldDecl) int           { return 0 }
func (NullVisitor) VisitIdentifier(n *Identifier) int         { return 0 }
func (NullVisitor) VisitTypeRef(n *TypeRef) int               { return 0 }
func (NullVisitor) VisitFieldRef(n *FieldRef) int             { return 0 }
func (NullVisitor) VisitFunctionCall(n *FunctionCall) int     { return 0 }
func (NullVisitor) VisitInstance(n *Instance) int             { return 0 }
func (NullVisitor) VisitPortAssign(n *PortAssign) int         { return 0 }
func (NullVisitor) VisitExpression(n *Expression) int         { return 0 }
func (NullVisitor) VisitIntValue(n *IntValue) int             { return 0 }
func (NullVisitor) VisitBoolValue(n *BoolValue) int           { return 0 }
func (NullVisitor) VisitBitvectorValue(n *BitvectorValue) int { return 0 }
func (NullVisitor) VisitTextValue(n *TextValue) int           { return 0 }
func (NullVisitor) VisitRange(n *Range) int                   { return 0 }
func (NullVisitor) VisitAssign(n *Assign) int                 { return 0 }
func (NullVisitor) VisitIfStmt(n *IfStmt) int                 { return 0 }
func (NullVisitor) VisitIfAlt(n *IfAlt) int                   { return 0 }
func (NullVisitor) VisitForStmt(n *ForStmt) int               { return 0 }
func (NullVisitor) VisitReturn(n *Return) int                 { return 0 }
func (NullVisitor) VisitIntType(n *IntType) int               { return 0 }
func (NullVisitor) VisitBoolType(n *BoolType) int             { return 0 }
func (NullVisitor) VisitBitvectorType(n *BitvectorType) int   { return 0 }
func (NullVisitor) VisitArrayType(n *ArrayType) int           { return 0 }
func (NullVisitor) VisitRecordType(n *RecordType) int         { return 0 }

// GuideVisitor implements the default recursive traversal: for every
// kind it visits the node's field-slot children, then its list
// children, in declaration order, OR-combining each child's result.
// Concrete visitors embed it, set Self to themselves so that overrides
// participate in the recursion, and override only the kinds they care
// about.
type GuideVisitor struct {
	// Self is the outermost visitor dispatched to during descent. When
	// nil the guide dispatches to itself.
	Self Visitor

	// PreVisit runs before a node's kind-specific handler. Returning
	// true cancels the node: neither the handler nor the descent into
	// its children runs, and the node contributes zero to the result.
	PreVisit func(n Node) bool
}

// Visit is the traversal entry point: it applies the pre-visit hook,
// then dispatches n to the visitor's kind-specific handler.
func (g *GuideVisitor) Visit(n Node) int {
	if n == nil {
		return 0
	}

	if g.PreVisit != nil && g.PreVisit(n) {
		return 0
	}

	return n.Accept(g.visitor())
}

// Descend visits all of n's children in declaration order, field slots
// first, then ordered lists, OR-combining their results. Overrides call
// it to continue the default traversal below their node.
func (g *GuideVisitor) Descend(n Node) int {
	res := 0
	for _, f := range n.Fields() {
		if child := f.Get(); child != nil {
			res |= g.Visit(child)
		}
	}

	for _, l := range n.Lists() {
		for it := l.First(); it.Valid(); it.Next() {
			res |= g.Visit(it.Node())
		}
	}

	return res
}

func (g *GuideVisitor) visitor() Visitor {
	if g.Self != nil {
		return g.Self
	}

	return g
}

func (g *GuideVisitor) VisitSystem(n *System) int                 { return g.Descend(n) }
func (g *GuideVisitor) VisitLibraryDef(n *LibraryDef) int         { return g.Descend(n) }
func (g *GuideVisitor) VisitDesignUnit(n *DesignUnit) int         { return g.Descend(n) }
func (g *GuideVisitor) VisitView(n *View) int                     { return g.Descend(n) }
func (g *GuideVisitor) VisitContents(n *Contents) int             { return g.Descend(n) }
func (g *GuideVisitor) VisitSignal(n *Signal) int                 { return g.Descend(n) }
func (g *GuideVisitor) VisitPort(n *Port) int                     { return g.Descend(n) }
func (g *GuideVisitor) VisitVariable(n *Variable) int             { return g.Descend(n) }
func (g *GuideVisitor) VisitConst(n *Const) int                   { return g.Descend(n) }
func (g *GuideVisitor) VisitParameter(n *Parameter) int           { return g.Descend(n) }
func (g *GuideVisitor) VisitTypeDef(n *TypeDef) int               { return g.Descend(n) }
func (g *GuideVisitor) VisitFunction(n *Function) int             { return g.Descend(n) }
func (g *GuideVisitor) VisitFieldDecl(n *FieldDecl) int           { return g.Descend(n) }
func (g *GuideVisitor) VisitIdentifier(n *Identifier) int         { return g.Descend(n) }
func (g *GuideVisitor) VisitTypeRef(n *TypeRef) int               { return g.Descend(n) }
func (g *GuideVisitor) VisitFieldRef(n *FieldRef) int             { return g.Descend(n) }
func (g *GuideVisitor) VisitFunctionCall(n *FunctionCall) int     { return g.Descend(n) }
func (g *GuideVisitor) VisitInstance(n *Instance) int             { return g.Descend(n) }
func (g *GuideVisitor) VisitPortAssign(n *PortAssign) int         { return g.Descend(n) }
func (g *GuideVisitor) VisitExpression(n *Expression) int         { return g.Descend(n) }
func (g *GuideVisitor) VisitIntValue(n *IntValue) int             { return g.Descend(n) }
func (g *GuideVisitor) VisitBoolValue(n *BoolValue) int           { return g.Descend(n) }
func (g *GuideVisitor) VisitBitvectorValue(n *BitvectorValue) int { return g.Descend(n) }
func (g *GuideVisitor) VisitTextValue(n *TextValue) int           { return g.Descend(n) }
func (g *GuideVisitor) VisitRange(n *Range) int                   { return g.Descend(n) }
func (g *GuideVisitor) VisitAssign(n *Assign) int                 { return g.Descend(n) }
func (g *GuideVisitor) VisitIfStmt(n *IfStmt) int                 { return g.Descend(n) }
func (g *GuideVisitor) VisitIfAlt(n *IfAlt) int                   { return g.Descend(n) }
func (g *GuideVisitor) VisitForStmt(n *ForStmt) int               { return g.Descend(n) }
func (g *GuideVisitor) VisitReturn(n *Return) int                 { return g.Descend(n) }
func (g *GuideVisitor) VisitIntType(n *IntType) int               { return g.Descend(n) }
func (g *GuideVisitor) VisitBoolType(n *BoolType) int             { return g.Descend(n) }
func (g *GuideVisitor) VisitBitvectorType(n *BitvectorType) int   { return g.Descend(n) }
func (g *GuideVisitor) VisitArrayType(n *ArrayType) int           { return g.Descend(n) }
func (g *GuideVisitor) VisitRecordType(n *RecordType) int         { return g.Descend(n) }
