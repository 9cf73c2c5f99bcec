package hif

// Kind is the flat discriminant identifying a node's concrete kind.
// Every concrete node type returns a distinct constant, enabling
// exhaustive switches and pair-keyed dispatch without type assertions.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Structure and scopes
	KindSystem
	KindLibraryDef
	KindDesignUnit
	KindView
	KindContents

	// Object declarations
	KindSignal
	KindPort
	KindVariable
	KindConst
	KindParameter
	KindTypeDef
	KindFunction
	KindFieldDecl

	// Symbols
	KindIdentifier
	KindTypeRef
	KindFieldRef
	KindFunctionCall
	KindInstance
	KindPortAssign

	// Values
	KindExpression
	KindIntValue
	KindBoolValue
	KindBitvectorValue
	KindTextValue
	KindRange

	// Actions
	KindAssign
	KindIfStmt
	KindIfAlt
	KindForStmt
	KindReturn

	// Types
	KindIntType
	KindBoolType
	KindBitvectorType
	KindArrayType
	KindRecordType
)

// String returns the kind name used in diagnostics and queries.
func (k Kind) String() string {
	switch k {
	case KindSystem:
		return "System"
	case KindLibraryDef:
		return "LibraryDef"
	case KindDesignUnit:
		return "DesignUnit"
	case KindView:
		return "View"
	case KindContents:
		return "Contents"
	case KindSignal:
		return "Signal"
	case KindPort:
		return "Port"
	case KindVariable:
		return "Variable"
	case KindConst:
		return "Const"
	case KindParameter:
		return "Parameter"
	case KindTypeDef:
		return "TypeDef"
	case KindFunction:
		return "Function"
	case KindFieldDecl:
		return "FieldDecl"
	case KindIdentifier:
		return "Identifier"
	case KindTypeRef:
		return "TypeRef"
	case KindFieldRef:
		return "FieldRef"
	case KindFunctionCall:
		return "FunctionCall"
	case KindInstance:
		return "Instance"
	case KindPortAssign:
		return "PortAssign"
	case KindExpression:
		return "Expression"
	case KindIntValue:
		return "IntValue"
	case KindBoolValue:
		return "BoolValue"
	case KindBitvectorValue:
		return "BitvectorValue"
	case KindTextValue:
		return "TextValue"
	case KindRange:
		return "Range"
	case KindAssign:
		return "Assign"
	case KindIfStmt:
		return "IfStmt"
	case KindIfAlt:
		return "IfAlt"
	case KindForStmt:
		return "ForStmt"
	case KindReturn:
		return "Return"
	case KindIntType:
		return "IntType"
	case KindBoolType:
		return "BoolType"
	case KindBitvectorType:
		return "BitvectorType"
	case KindArrayType:
		return "ArrayType"
	case KindRecordType:
		return "RecordType"
	default:
		return "Invalid"
	}
}

// DeclClass is a bitmask classifying what category of name a
// declaration introduces, and which categories a symbol accepts.
// A value reference never matches a type declaration and vice versa.
type DeclClass uint8

const (
	ClassValue    DeclClass = 1 << iota // signals, ports, variables, constants, parameters, fields
	ClassType                           // type definitions
	ClassCallable                       // functions
	ClassUnit                           // design units and views
	ClassLibrary                        // libraries
)

// Matches reports whether the two class masks overlap.
func (c DeclClass) Matches(other DeclClass) bool { return c&other != 0 }
