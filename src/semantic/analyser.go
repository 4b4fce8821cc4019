// Package semantic implements pascalc's single-pass, fail-fast type
// checker (spec.md §4.5), grounded in the original SemanticAnalysier.cpp:
// one flat symbol table, no nested scopes, and the first type error
// encountered aborts analysis immediately.
package semantic

import (
	"fmt"

	"pascalc/src/ast"
)

// Error is a semantic type error. It mirrors the original's SemanticError
// (a runtime_error subclass carrying one message) rather than a collected
// list: analysis stops at the first violation.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// abort unwinds the visitor on the first semantic error, the Go stand-in
// for the original's throw SemanticError.
type abort struct {
	err *Error
}

// Analyse type-checks prog and returns its flat symbol table. On the first
// violation it returns a nil table and the *Error describing it.
func Analyse(prog *ast.Program) (ast.SymbolTable, *Error) {
	a := &analyser{symtab: ast.SymbolTable{}}
	var result *Error
	func() {
		defer func() {
			if r := recover(); r != nil {
				ab, ok := r.(abort)
				if !ok {
					panic(r)
				}
				result = ab.err
			}
		}()
		prog.Accept(a)
	}()
	if result != nil {
		return nil, result
	}
	return a.symtab, nil
}

type analyser struct {
	symtab ast.SymbolTable
}

func (a *analyser) fail(format string, args ...interface{}) {
	panic(abort{&Error{Message: fmt.Sprintf(format, args...)}})
}

func (a *analyser) lookup(name string) *ast.Symbol {
	sym, ok := a.symtab[name]
	if !ok {
		a.fail("Unknown identifier '%s'", name)
	}
	return sym
}

func (a *analyser) declare(name string, sym *ast.Symbol) {
	if _, exists := a.symtab[name]; exists {
		a.fail("Repeat declaration of identifier '%s'", name)
	}
	a.symtab[name] = sym
}

func (a *analyser) VisitProgram(n *ast.Program) {
	n.Header.Accept(a)
	if n.ConstDecl != nil {
		n.ConstDecl.Accept(a)
	}
	if n.VarDecl != nil {
		n.VarDecl.Accept(a)
	}
	n.Block.Accept(a)
}

func (a *analyser) VisitHeader(n *ast.Header) {
	a.declare(n.Name, &ast.Symbol{Form: ast.FormProgramName, Type: ast.TypeNone})
}

func (a *analyser) VisitConstDecl(n *ast.ConstDecl) {
	for _, d := range n.Decls {
		d.Accept(a)
	}
}

func (a *analyser) VisitConstDeclaration(n *ast.ConstDeclaration) {
	typ := a.typeOf(n.Value)
	if _, exists := a.symtab[n.Name]; exists {
		a.fail("Repeat declaration of const identifier '%s'", n.Name)
	}
	sym := &ast.Symbol{Form: ast.FormConstant, Type: typ}
	a.symtab[n.Name] = sym
	n.Symbol = sym
}

func (a *analyser) VisitVarDecl(n *ast.VarDecl) {
	for _, d := range n.Decls {
		d.Accept(a)
	}
}

// VisitDeclaration allocates one Symbol per declared name — unlike the
// original's visitDeclaration, which inserted every name in a
// "a, b, c : T;" list as the *same* shared Symbol (so later setting one's
// address or array bounds silently aliased all of them). spec.md §9(i)
// calls this a defect to fix; symbol.go's SymbolTable doc comment records
// the decision.
func (a *analyser) VisitDeclaration(n *ast.Declaration) {
	var form ast.Form
	var typ ast.VarType
	var arr *ast.ArrayData

	if n.Array != nil {
		n.Array.Elem.Accept(a)
		if n.Array.Elem.Type == ast.TypeString {
			a.fail("Incompatible array type of array")
		}
		n.Array.Interval.Accept(a)
		form = ast.FormArray
		typ = n.Array.Elem.Type
		// Preserves the original's rborder-lborder sizing (not
		// rborder-lborder+1): spec.md §9(iii), kept as observed behavior.
		arr = &ast.ArrayData{
			MinIndex: n.Array.Interval.LBorder,
			Size:     n.Array.Interval.RBorder - n.Array.Interval.LBorder,
		}
	} else {
		n.Simple.Accept(a)
		form = ast.FormVariable
		typ = n.Simple.Type
	}

	for _, name := range n.Names {
		sym := &ast.Symbol{Form: form, Type: typ}
		if arr != nil {
			cp := *arr
			sym.Arr = &cp
		}
		a.declare(name, sym)
		n.Symbols = append(n.Symbols, sym)
	}
}

func (a *analyser) VisitSimpleType(n *ast.SimpleType) {}

func (a *analyser) VisitInterval(n *ast.Interval) {
	if n.RBorder < n.LBorder {
		a.fail("array interval's upper bound %d is below its lower bound %d", n.RBorder, n.LBorder)
	}
}

func (a *analyser) VisitArrayType(n *ast.ArrayType) {
	n.Interval.Accept(a)
	n.Elem.Accept(a)
}

func (a *analyser) VisitBlock(n *ast.Block) {
	for _, stmt := range n.Statements {
		stmt.Accept(a)
	}
}

func (a *analyser) VisitFunctionCall(n *ast.FunctionCall) {
	n.Name.Accept(a)
	switch n.Name.Name {
	case ast.FuncReadln:
		for _, arg := range n.Args {
			id, cell := exprVariable(arg)
			if id == nil && cell == nil {
				a.fail("Only identifiers or array cells expected in read function arguments")
			}
			a.typeOf(arg)
			var name string
			if cell != nil {
				name = cell.Varname.Name
			} else {
				name = id.Name
			}
			if a.symtab[name].Form == ast.FormConstant {
				a.fail("Cannot assign new value to constant '%s'", name)
			}
		}
	default: // write, writeln
		for _, arg := range n.Args {
			a.typeOf(arg)
		}
	}
}

// exprVariable reports whether expr is a bare Id or Cell reference (i.e.
// usable as an lvalue), matching the original's restriction that readln's
// arguments must be variables, not arbitrary expressions.
func exprVariable(expr *ast.Expression) (*ast.Id, *ast.Cell) {
	if expr.Bracketed || expr.Operation != nil || len(expr.Signs) != 0 {
		return nil, nil
	}
	switch atom := expr.Atom.(type) {
	case *ast.Id:
		return atom, nil
	case *ast.Cell:
		return nil, atom
	default:
		return nil, nil
	}
}

func (a *analyser) VisitAssignment(n *ast.Assignment) {
	var targetType ast.VarType
	if n.Cell != nil {
		// typeOfAtom's existence/kind checks surface the Cell-specific
		// messages. A String constant passes them, so a constant target
		// is rejected separately.
		targetType = a.typeOfAtom(n.Cell)
		if a.symtab[n.Cell.Varname.Name].Form == ast.FormConstant {
			a.fail("Cannot assign new value to constant '%s'", n.Cell.Varname.Name)
		}
	} else {
		sym := a.lookup(n.Varname.Name)
		if sym.Form == ast.FormConstant {
			a.fail("Cannot assign new value to constant '%s'", n.Varname.Name)
		}
		n.Varname.Type = sym.Type
		targetType = sym.Type
	}

	switch n.Mod.Mod {
	case ast.ModAdd, ast.ModReduce, ast.ModMultiply:
		if targetType == ast.TypeChar {
			a.fail("Incompatible operation for char expression")
		}
		if targetType == ast.TypeString && n.Mod.Mod != ast.ModAdd {
			a.fail("Incompatible operation for string expression")
		}
	}

	valType := a.typeOf(n.Value)
	if valType != targetType && !(targetType == ast.TypeString && valType == ast.TypeChar) {
		a.fail("Incompatible operands types for assignment")
	}
}

func (a *analyser) VisitWhile(n *ast.While) {
	n.Condition.Accept(a)
	n.Body.Accept(a)
}

func (a *analyser) VisitBranch(n *ast.Branch) {
	n.Condition.Accept(a)
	n.Then.Accept(a)
	if n.Alternative != nil {
		n.Alternative.Accept(a)
	}
}

func (a *analyser) VisitBoolExpr(n *ast.BoolExpr) {
	left := a.typeOf(n.Left)
	right := a.typeOf(n.Right)
	if left != right {
		a.fail("Different types of boolean expression operands")
	}
	n.Type = left
}

func (a *analyser) VisitOperation(n *ast.Operation)         {}
func (a *analyser) VisitBoolOperation(n *ast.BoolOperation) {}
func (a *analyser) VisitModification(n *ast.Modification)   {}
func (a *analyser) VisitFunctionName(n *ast.FunctionName)   {}
func (a *analyser) VisitId(n *ast.Id)                       {}
func (a *analyser) VisitCell(n *ast.Cell)                   {}
func (a *analyser) VisitChar(n *ast.Char)                   {}
func (a *analyser) VisitStringLiteral(n *ast.StringLiteral) {}
func (a *analyser) VisitInt(n *ast.Int)                     {}

// VisitExpression is not reached by the analyser's own traversal (typeOf
// drives expression typing, so that it can return a value, and every call
// site, readln's argument check included, calls typeOf directly); it is
// implemented so analyser satisfies ast.Visitor.
func (a *analyser) VisitExpression(n *ast.Expression) {
	a.typeOf(n)
}

// typeOf computes an expression's scalar type, failing analysis on any
// mismatch, matching the original's interleaved visit-and-type-check
// control flow for Expression/Boolexpr/Cell/Id/Char/Stringliteral/Int.
// It also stamps e.Type with the resolved result (spec.md invariant I3).
func (a *analyser) typeOf(e *ast.Expression) ast.VarType {
	var t ast.VarType
	switch {
	case e.Bracketed:
		t = a.typeOf(e.Operand)
	case e.Operation != nil:
		lt := a.typeOf(e.Left)
		rt := a.typeOf(e.Right)
		if lt != rt || lt == ast.TypeChar || lt == ast.TypeString {
			a.fail("Incompatible operands types for expression")
		}
		t = lt
	case len(e.Signs) != 0:
		at := a.typeOfAtom(e.Atom)
		if at != ast.TypeInteger {
			a.fail("Only integer expression can be signed")
		}
		t = at
	default:
		t = a.typeOfAtom(e.Atom)
	}
	e.Type = t
	return t
}

func (a *analyser) typeOfAtom(node ast.Node) ast.VarType {
	switch n := node.(type) {
	case *ast.Id:
		sym, ok := a.symtab[n.Name]
		if !ok {
			a.fail("Unknown identifier '%s'", n.Name)
		}
		if sym.Form == ast.FormArray {
			a.fail("'%s' is an array name", n.Name)
		}
		if sym.Form == ast.FormProgramName {
			a.fail("'%s' is a program name", n.Name)
		}
		n.Type = sym.Type
		return sym.Type
	case *ast.Cell:
		sym, ok := a.symtab[n.Varname.Name]
		if !ok {
			a.fail("Unknown identifier '%s' in array name", n.Varname.Name)
		}
		if sym.Form != ast.FormArray && sym.Type != ast.TypeString {
			a.fail("Identifier '%s' is not an array or string name", n.Varname.Name)
		}
		if a.typeOf(n.Index) != ast.TypeInteger {
			a.fail("Invalid index type of '%s'", n.Varname.Name)
		}
		t := sym.Type
		if sym.Type == ast.TypeString {
			t = ast.TypeChar
		}
		n.Type = t
		return t
	case *ast.Char:
		return ast.TypeChar
	case *ast.StringLiteral:
		return ast.TypeString
	case *ast.Int:
		return ast.TypeInteger
	default:
		a.fail("unrecognized expression atom")
		return ast.TypeNone
	}
}
