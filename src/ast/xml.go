package ast

import (
	"fmt"
	"strings"
)

// Serialize dumps prog as an indented XML document, for the --dump-ast CLI
// flag (spec.md §6). It is grounded in XmlSerializer.cpp's visitor-driven
// tree construction: each visit method appends a child tag under the
// current parent, descends into it for any children, then returns to the
// parent. The original builds a pugixml DOM and lets the library handle
// indentation on save; no XML library in the example pack offers that
// dynamic "current parent" construction model, so this builds the same
// shape directly with strings.Builder and a two-space indent per depth.
// The tag set and expression dumping convention follow spec.md §4.4
// exactly: expressions are dumped infix (operand, operation, operand) with
// no wrapping tag of their own, braced only when the source was
// parenthesized — each call site (constant initializer, assignment value,
// function-call argument, cell index, boolean condition) supplies its own
// surrounding element.
func Serialize(prog *Program) string {
	s := &xmlSerializer{}
	prog.Accept(s)
	return s.sb.String()
}

type xmlSerializer struct {
	sb    strings.Builder
	depth int
}

func (s *xmlSerializer) indent() {
	for i := 0; i < s.depth; i++ {
		s.sb.WriteString("  ")
	}
}

func (s *xmlSerializer) open(tag string) {
	s.indent()
	fmt.Fprintf(&s.sb, "<%s>\n", tag)
	s.depth++
}

func (s *xmlSerializer) close(tag string) {
	s.depth--
	s.indent()
	fmt.Fprintf(&s.sb, "</%s>\n", tag)
}

func (s *xmlSerializer) leaf(tag, text string) {
	s.indent()
	fmt.Fprintf(&s.sb, "<%s>%s</%s>\n", tag, text, tag)
}

// text emits a bare, untagged text line. Used for an Expression's leading
// unary sign run: spec.md §4.4's tag set has no element for a sign, so a
// signed atom's "+"/"-" tokens are written as plain text ahead of the atom.
func (s *xmlSerializer) text(t string) {
	s.indent()
	s.sb.WriteString(t)
	s.sb.WriteString("\n")
}

func (s *xmlSerializer) VisitProgram(n *Program) {
	s.open("pascal")
	n.Header.Accept(s)
	if n.ConstDecl != nil {
		n.ConstDecl.Accept(s)
	}
	if n.VarDecl != nil {
		n.VarDecl.Accept(s)
	}
	n.Block.Accept(s)
	s.close("pascal")
}

func (s *xmlSerializer) VisitHeader(n *Header) {
	s.leaf("progname", n.Name)
}

func (s *xmlSerializer) VisitConstDecl(n *ConstDecl) {
	s.open("constdecl")
	for _, d := range n.Decls {
		d.Accept(s)
	}
	s.close("constdecl")
}

func (s *xmlSerializer) VisitConstDeclaration(n *ConstDeclaration) {
	s.open("constdeclaration")
	s.leaf("constname", n.Name)
	s.open("value")
	s.emitExprContent(n.Value)
	s.close("value")
	s.close("constdeclaration")
}

func (s *xmlSerializer) VisitVarDecl(n *VarDecl) {
	s.open("vardecl")
	for _, d := range n.Decls {
		d.Accept(s)
	}
	s.close("vardecl")
}

func (s *xmlSerializer) VisitDeclaration(n *Declaration) {
	s.open("declaration")
	for _, name := range n.Names {
		s.leaf("varname", name)
	}
	if n.Array != nil {
		n.Array.Accept(s)
	} else {
		n.Simple.Accept(s)
	}
	s.close("declaration")
}

func (s *xmlSerializer) VisitSimpleType(n *SimpleType) {
	s.leaf("vartype", n.Type.String())
}

func (s *xmlSerializer) VisitInterval(n *Interval) {
	s.open("interval")
	s.open("lborder")
	s.leaf("integer", fmt.Sprint(n.LBorder))
	s.close("lborder")
	s.open("rborder")
	s.leaf("integer", fmt.Sprint(n.RBorder))
	s.close("rborder")
	s.close("interval")
}

func (s *xmlSerializer) VisitArrayType(n *ArrayType) {
	s.open("arraytype")
	n.Interval.Accept(s)
	n.Elem.Accept(s)
	s.close("arraytype")
}

func (s *xmlSerializer) VisitBlock(n *Block) {
	s.open("block")
	for _, stmt := range n.Statements {
		stmt.Accept(s)
	}
	s.close("block")
}

func (s *xmlSerializer) VisitFunctionCall(n *FunctionCall) {
	s.open("functioncall")
	n.Name.Accept(s)
	for _, a := range n.Args {
		s.open("argument")
		s.emitExprContent(a)
		s.close("argument")
	}
	s.close("functioncall")
}

func (s *xmlSerializer) VisitAssignment(n *Assignment) {
	s.open("assignment")
	s.open("variable")
	if n.Cell != nil {
		n.Cell.Accept(s)
	} else {
		n.Varname.Accept(s)
	}
	s.close("variable")
	n.Mod.Accept(s)
	s.open("value")
	s.emitExprContent(n.Value)
	s.close("value")
	s.close("assignment")
}

func (s *xmlSerializer) VisitWhile(n *While) {
	s.open("whileloop")
	s.open("condition")
	n.Condition.Accept(s)
	s.close("condition")
	s.open("body")
	n.Body.Accept(s)
	s.close("body")
	s.close("whileloop")
}

func (s *xmlSerializer) VisitBranch(n *Branch) {
	s.open("branch")
	s.open("condition")
	n.Condition.Accept(s)
	s.close("condition")
	s.open("body")
	n.Then.Accept(s)
	s.close("body")
	if n.Alternative != nil {
		s.open("alternative")
		n.Alternative.Accept(s)
		s.close("alternative")
	}
	s.close("branch")
}

// emitExprContent dumps e's content infix directly into the currently open
// parent element, with no wrapping tag of its own: a bracketed node opens a
// <braces> element around its operand's content; a binary node emits its
// left operand, its operation, then its right operand in sequence; a leaf
// emits its leading sign run as bare text followed by its atom.
func (s *xmlSerializer) emitExprContent(n *Expression) {
	switch {
	case n.Bracketed:
		s.open("braces")
		s.emitExprContent(n.Operand)
		s.close("braces")
	case n.Operation != nil:
		s.emitExprContent(n.Left)
		n.Operation.Accept(s)
		s.emitExprContent(n.Right)
	default:
		for _, sign := range n.Signs {
			s.text(sign)
		}
		n.Atom.Accept(s)
	}
}

// VisitExpression satisfies the Visitor interface for generic traversal,
// but the serializer never reaches an Expression through Accept: every
// call site above dispatches through emitExprContent so it can control the
// surrounding element (value/argument/index/condition) itself.
func (s *xmlSerializer) VisitExpression(n *Expression) {
	s.emitExprContent(n)
}

func (s *xmlSerializer) VisitBoolExpr(n *BoolExpr) {
	s.emitExprContent(n.Left)
	n.Op.Accept(s)
	s.emitExprContent(n.Right)
}

func (s *xmlSerializer) VisitOperation(n *Operation) {
	s.leaf("operation", n.Text)
}

func (s *xmlSerializer) VisitBoolOperation(n *BoolOperation) {
	s.leaf("booloperation", n.Text)
}

func (s *xmlSerializer) VisitModification(n *Modification) {
	s.leaf("modification", n.Text)
}

func (s *xmlSerializer) VisitFunctionName(n *FunctionName) {
	var text string
	switch n.Name {
	case FuncReadln:
		text = "readln"
	case FuncWrite:
		text = "write"
	case FuncWriteln:
		text = "writeln"
	}
	s.leaf("functionname", text)
}

func (s *xmlSerializer) VisitId(n *Id) {
	s.leaf("id", n.Name)
}

func (s *xmlSerializer) VisitCell(n *Cell) {
	s.open("cell")
	n.Varname.Accept(s)
	s.open("index")
	s.emitExprContent(n.Index)
	s.close("index")
	s.close("cell")
}

func (s *xmlSerializer) VisitChar(n *Char) {
	s.leaf("char", n.Text)
}

func (s *xmlSerializer) VisitStringLiteral(n *StringLiteral) {
	s.leaf("string", n.Text)
}

func (s *xmlSerializer) VisitInt(n *Int) {
	s.leaf("integer", n.Text)
}
