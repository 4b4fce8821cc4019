// Package ast implements the core of pascalc: a typed arena-backed AST
// (node.go, visitor.go), a builder that turns a front-end parse tree into
// that AST (builder.go), and a deterministic XML dump of it (xml.go).
package ast

// Form classifies what a declared name denotes, mirroring the original
// SymbolTable.hpp's Form enum.
type Form int

const (
	FormNoForm Form = iota
	FormConstant
	FormVariable
	FormArray
	FormProgramName
)

// VarType is the scalar type of a declared name or a typed expression.
type VarType int

const (
	TypeNone VarType = iota
	TypeInteger
	TypeChar
	TypeString
)

func (t VarType) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeChar:
		return "char"
	case TypeString:
		return "string"
	default:
		return "none"
	}
}

// Op is an arithmetic binary operator.
type Op int

const (
	OpPlus Op = iota
	OpMinus
	OpStar
	OpDiv
	OpMod
)

// BoolOp is a relational operator used in boolean expressions.
type BoolOp int

const (
	BoolEqual BoolOp = iota
	BoolMore
	BoolLess
	BoolNotEqual
	BoolNotMore
	BoolNotLess
)

// ModType is the assignment-statement modifier: plain assignment or one of
// the three compound forms.
type ModType int

const (
	ModAssign ModType = iota
	ModAdd
	ModReduce
	ModMultiply
)

// FuncName identifies one of the three built-in I/O statements.
type FuncName int

const (
	FuncReadln FuncName = iota
	FuncWrite
	FuncWriteln
)

// ArrayData records the declared bounds of an array-typed symbol: its
// minimum index and its element count (§9: size is stored as
// rborder-lborder, not rborder-lborder+1 — preserved as a quirk of the
// system this was distilled from; see DESIGN.md).
type ArrayData struct {
	MinIndex int
	Size     int
}

// Symbol is a single entry in the program's flat symbol table (spec.md
// §4.1, grounded in SymbolTable.hpp). There are no nested scopes: the
// language has exactly one, matching the original's single unordered_map.
type Symbol struct {
	Form Form
	Type VarType
	Addr int // register number holding this symbol's alloca, set by codegen
	Arr  *ArrayData
}

// SymbolTable maps declared names to their Symbol. The semantic analyser's
// VisitDeclaration allocates one Symbol per declared name, never sharing a
// pointer between sibling declarations in the same declaration list — a
// defect present in the original's visitDeclaration (every varname in a
// "a, b, c : integer;" list aliased the *same* Symbol instance) that this
// implementation deliberately does not reproduce, per spec.md §9(i).
type SymbolTable map[string]*Symbol
