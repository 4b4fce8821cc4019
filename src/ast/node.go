package ast

// Arena owns every node in a single program's AST. Nodes are allocated
// through the arena's New* methods and never freed individually; the tree
// is acyclic and every pointer in it was handed out by exactly one arena,
// so the whole tree is reclaimed together when the arena is dropped.
//
// The teacher's AST (ir/*.go) is a single generic Node struct carrying an
// interface{} payload switched on at runtime. spec.md §4.2 calls for a
// closed set of tagged variants instead, each a distinct Go type, dispatched
// through the Visitor interface (visitor.go) rather than a type switch on
// an untyped payload — this is the "typed arena tree" referred to
// throughout SPEC_FULL.md.
type Arena struct {
	headers      []*Header
	constDecls   []*ConstDecl
	constDeclrs  []*ConstDeclaration
	exprs        []*Expression
	boolExprs    []*BoolExpr
	varDecls     []*VarDecl
	decls        []*Declaration
	simpleTypes  []*SimpleType
	intervals    []*Interval
	arrayTypes   []*ArrayType
	blocks       []*Block
	funcCalls    []*FunctionCall
	assignments  []*Assignment
	whiles       []*While
	branches     []*Branch
	operations   []*Operation
	boolOps      []*BoolOperation
	modifiers    []*Modification
	funcNames    []*FunctionName
	ids          []*Id
	cells        []*Cell
	chars        []*Char
	stringLits   []*StringLiteral
	ints         []*Int
	nextID       int
}

func (a *Arena) newID() int {
	a.nextID++
	return a.nextID
}

// NewProgram allocates the arena's root node.
func (a *Arena) NewProgram() *Program {
	return &Program{ID: a.newID()}
}

func (a *Arena) NewHeader() *Header {
	n := &Header{ID: a.newID()}
	a.headers = append(a.headers, n)
	return n
}

func (a *Arena) NewConstDecl() *ConstDecl {
	n := &ConstDecl{ID: a.newID()}
	a.constDecls = append(a.constDecls, n)
	return n
}

func (a *Arena) NewConstDeclaration() *ConstDeclaration {
	n := &ConstDeclaration{ID: a.newID()}
	a.constDeclrs = append(a.constDeclrs, n)
	return n
}

func (a *Arena) NewExpression() *Expression {
	n := &Expression{ID: a.newID()}
	a.exprs = append(a.exprs, n)
	return n
}

func (a *Arena) NewBoolExpr() *BoolExpr {
	n := &BoolExpr{ID: a.newID()}
	a.boolExprs = append(a.boolExprs, n)
	return n
}

func (a *Arena) NewVarDecl() *VarDecl {
	n := &VarDecl{ID: a.newID()}
	a.varDecls = append(a.varDecls, n)
	return n
}

func (a *Arena) NewDeclaration() *Declaration {
	n := &Declaration{ID: a.newID()}
	a.decls = append(a.decls, n)
	return n
}

func (a *Arena) NewSimpleType() *SimpleType {
	n := &SimpleType{ID: a.newID()}
	a.simpleTypes = append(a.simpleTypes, n)
	return n
}

func (a *Arena) NewInterval() *Interval {
	n := &Interval{ID: a.newID()}
	a.intervals = append(a.intervals, n)
	return n
}

func (a *Arena) NewArrayType() *ArrayType {
	n := &ArrayType{ID: a.newID()}
	a.arrayTypes = append(a.arrayTypes, n)
	return n
}

func (a *Arena) NewBlock() *Block {
	n := &Block{ID: a.newID()}
	a.blocks = append(a.blocks, n)
	return n
}

func (a *Arena) NewFunctionCall() *FunctionCall {
	n := &FunctionCall{ID: a.newID()}
	a.funcCalls = append(a.funcCalls, n)
	return n
}

func (a *Arena) NewAssignment() *Assignment {
	n := &Assignment{ID: a.newID()}
	a.assignments = append(a.assignments, n)
	return n
}

func (a *Arena) NewWhile() *While {
	n := &While{ID: a.newID()}
	a.whiles = append(a.whiles, n)
	return n
}

func (a *Arena) NewBranch() *Branch {
	n := &Branch{ID: a.newID()}
	a.branches = append(a.branches, n)
	return n
}

func (a *Arena) NewOperation() *Operation {
	n := &Operation{ID: a.newID()}
	a.operations = append(a.operations, n)
	return n
}

func (a *Arena) NewBoolOperation() *BoolOperation {
	n := &BoolOperation{ID: a.newID()}
	a.boolOps = append(a.boolOps, n)
	return n
}

func (a *Arena) NewModification() *Modification {
	n := &Modification{ID: a.newID()}
	a.modifiers = append(a.modifiers, n)
	return n
}

func (a *Arena) NewFunctionName() *FunctionName {
	n := &FunctionName{ID: a.newID()}
	a.funcNames = append(a.funcNames, n)
	return n
}

func (a *Arena) NewId() *Id {
	n := &Id{ID: a.newID()}
	a.ids = append(a.ids, n)
	return n
}

func (a *Arena) NewCell() *Cell {
	n := &Cell{ID: a.newID()}
	a.cells = append(a.cells, n)
	return n
}

func (a *Arena) NewChar() *Char {
	n := &Char{ID: a.newID()}
	a.chars = append(a.chars, n)
	return n
}

func (a *Arena) NewStringLiteral() *StringLiteral {
	n := &StringLiteral{ID: a.newID()}
	a.stringLits = append(a.stringLits, n)
	return n
}

func (a *Arena) NewInt() *Int {
	n := &Int{ID: a.newID()}
	a.ints = append(a.ints, n)
	return n
}

// Program is the arena's single root: a header, optional constant and
// variable declaration sections, and a body block.
type Program struct {
	ID         int
	Header     *Header
	ConstDecl  *ConstDecl // nil if the program declares no constants
	VarDecl    *VarDecl   // nil if the program declares no variables
	Block      *Block
}

func (n *Program) Accept(v Visitor) { v.VisitProgram(n) }

type Header struct {
	ID   int
	Name string
}

func (n *Header) Accept(v Visitor) { v.VisitHeader(n) }

type ConstDecl struct {
	ID    int
	Decls []*ConstDeclaration
}

func (n *ConstDecl) Accept(v Visitor) { v.VisitConstDecl(n) }

type ConstDeclaration struct {
	ID    int
	Name  string
	Value *Expression
	// Symbol is filled in by the semantic analyser (src/semantic/analyser.go)
	// once the constant's type is known; the code generator later sets its
	// address.
	Symbol *Symbol
}

func (n *ConstDeclaration) Accept(v Visitor) { v.VisitConstDeclaration(n) }

// Expression is either a bracketed sub-expression, a signed atom, or a
// binary operation over two sub-expressions, matching the three shapes
// Builder.cpp distinguishes. Exactly one of the combinations below is
// populated for any given node:
//
//   - Atom != nil:                a (possibly signed) atom
//   - Bracketed && Operand != nil: "( expression )"
//   - Operation != nil:           Left Operation Right
type Expression struct {
	ID        int
	Bracketed bool
	Signs     []string // leading unary +/- before Atom, outermost first
	Atom      Node     // Id, Cell, Char, StringLiteral, or Int

	Operand *Expression // set when Bracketed

	Left      *Expression
	Operation *Operation
	Right     *Expression

	// Type is the resolved scalar type, populated by the semantic analyser
	// (spec.md invariant I3). Zero value TypeNone until analysis runs.
	Type VarType
}

func (n *Expression) Accept(v Visitor) { v.VisitExpression(n) }

// BoolExpr is a single relational comparison; the language has no boolean
// connectives (no and/or), matching spec.md's Non-goals.
type BoolExpr struct {
	ID             int
	Left           *Expression
	Op             *BoolOperation
	Right          *Expression
	Type           VarType // resolved by the semantic analyser; I3
}

func (n *BoolExpr) Accept(v Visitor) { v.VisitBoolExpr(n) }

type VarDecl struct {
	ID    int
	Decls []*Declaration
}

func (n *VarDecl) Accept(v Visitor) { v.VisitVarDecl(n) }

// Declaration declares one or more names sharing a single type. Each name
// gets its own Symbol (see symbol.go's SymbolTable doc comment) — the
// original's aliasing defect (§9(i)) is deliberately not reproduced here.
type Declaration struct {
	ID        int
	Names     []string
	Simple    *SimpleType // nil if Array != nil
	Array     *ArrayType  // nil if Simple != nil
	Symbols   []*Symbol   // parallel to Names, filled by the semantic analyser
}

func (n *Declaration) Accept(v Visitor) { v.VisitDeclaration(n) }

type SimpleType struct {
	ID   int
	Type VarType
}

func (n *SimpleType) Accept(v Visitor) { v.VisitSimpleType(n) }

type Interval struct {
	ID       int
	LBorder  int
	RBorder  int
}

func (n *Interval) Accept(v Visitor) { v.VisitInterval(n) }

type ArrayType struct {
	ID       int
	Interval *Interval
	Elem     *SimpleType
}

func (n *ArrayType) Accept(v Visitor) { v.VisitArrayType(n) }

// Statement is implemented by every node kind that can appear as a block
// component or as the body of a While/Branch: *Assignment, *While,
// *Branch, *FunctionCall, and *Block itself (for a nested begin...end).
type Statement interface {
	Node
	statement()
}

type Block struct {
	ID         int
	Statements []Statement
}

func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }
func (n *Block) statement()       {}

type FunctionCall struct {
	ID   int
	Name *FunctionName
	Args []*Expression
}

func (n *FunctionCall) Accept(v Visitor) { v.VisitFunctionCall(n) }
func (n *FunctionCall) statement()       {}

type Assignment struct {
	ID      int
	Cell    *Cell // nil if the target is a plain variable
	Varname *Id   // nil if the target is an indexed cell
	Mod     *Modification
	Value   *Expression
}

func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }
func (n *Assignment) statement()       {}

type While struct {
	ID        int
	Condition *BoolExpr
	Body      Statement
}

func (n *While) Accept(v Visitor) { v.VisitWhile(n) }
func (n *While) statement()       {}

type Branch struct {
	ID          int
	Condition   *BoolExpr
	Then        Statement
	Alternative Statement // nil if there is no else clause
}

func (n *Branch) Accept(v Visitor) { v.VisitBranch(n) }
func (n *Branch) statement()       {}

type Operation struct {
	ID   int
	Op   Op
	Text string // lower-cased source text, e.g. "+" or "div" — written by the XML dump
}

func (n *Operation) Accept(v Visitor) { v.VisitOperation(n) }

type BoolOperation struct {
	ID   int
	Op   BoolOp
	Text string
}

func (n *BoolOperation) Accept(v Visitor) { v.VisitBoolOperation(n) }

// Modification carries its modifier's raw, un-normalized text (":=", "+=",
// "-=", or "*="), matching Builder.cpp's visitModification — the one leaf
// visit that does not lower-case its text.
type Modification struct {
	ID   int
	Mod  ModType
	Text string
}

func (n *Modification) Accept(v Visitor) { v.VisitModification(n) }

type FunctionName struct {
	ID   int
	Name FuncName
}

func (n *FunctionName) Accept(v Visitor) { v.VisitFunctionName(n) }

// Node is implemented by every AST node type; Accept dispatches to the
// matching Visitor method.
type Node interface {
	Accept(v Visitor)
}

// Id is a lower-cased identifier reference (variable, constant, or program
// name), case-normalized at build time per spec.md §4.3/§9.
type Id struct {
	ID   int
	Name string
	Type VarType // resolved by the semantic analyser; I3
}

func (n *Id) Accept(v Visitor) { v.VisitId(n) }

// Cell is an indexed array reference: name[index].
type Cell struct {
	ID      int
	Varname *Id
	Index   *Expression
	Type    VarType // resolved by the semantic analyser; I3 and I2
}

func (n *Cell) Accept(v Visitor) { v.VisitCell(n) }

type Char struct {
	ID   int
	Text string // the single character between quotes
}

func (n *Char) Accept(v Visitor) { v.VisitChar(n) }

type StringLiteral struct {
	ID   int
	Text string // quotes stripped
}

func (n *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(n) }

type Int struct {
	ID   int
	Text string // raw decimal digits, kept as text per §4.3
}

func (n *Int) Accept(v Visitor) { v.VisitInt(n) }
