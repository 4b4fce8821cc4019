package ast

import (
	"strings"

	"pascalc/src/frontend"
)

// Build converts a front-end parse tree into an AST, allocating every node
// from a single fresh Arena. It performs the same normalization the
// original's Builder.cpp does while walking the ANTLR parse tree:
// identifiers, operators, and function names are lower-cased, quoted
// literals have their surrounding quotes stripped, and an Expression
// node's "bracketed" flag and leading sign run are captured verbatim.
// Modification text is the one leaf kept unnormalized, matching
// visitModification.
func Build(root *frontend.Node) (*Program, *Arena) {
	b := &builder{arena: &Arena{}}
	return b.buildProgram(root), b.arena
}

type builder struct {
	arena *Arena
}

func normalize(s string) string {
	return strings.ToLower(s)
}

// trimQuotes strips a single layer of surrounding single quotes, matching
// Builder.cpp's trim_quotes (which asserts the text is quote-delimited).
func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

func (b *builder) buildProgram(n *frontend.Node) *Program {
	p := b.arena.NewProgram()
	p.Header = b.buildHeader(n.Child(0))
	if c := n.Child(1); c != nil {
		p.ConstDecl = b.buildConstDecl(c)
	}
	if v := n.Child(2); v != nil {
		p.VarDecl = b.buildVarDecl(v)
	}
	p.Block = b.buildBlock(n.Child(3))
	return p
}

func (b *builder) buildHeader(n *frontend.Node) *Header {
	h := b.arena.NewHeader()
	h.Name = normalize(n.Text)
	return h
}

func (b *builder) buildConstDecl(n *frontend.Node) *ConstDecl {
	cd := b.arena.NewConstDecl()
	for _, c := range n.Children {
		cd.Decls = append(cd.Decls, b.buildConstDeclaration(c))
	}
	return cd
}

func (b *builder) buildConstDeclaration(n *frontend.Node) *ConstDeclaration {
	d := b.arena.NewConstDeclaration()
	d.Name = normalize(n.Text)
	d.Value = b.buildExpression(n.Child(0))
	return d
}

func (b *builder) buildVarDecl(n *frontend.Node) *VarDecl {
	vd := b.arena.NewVarDecl()
	for _, c := range n.Children {
		vd.Decls = append(vd.Decls, b.buildDeclaration(c))
	}
	return vd
}

func (b *builder) buildDeclaration(n *frontend.Node) *Declaration {
	d := b.arena.NewDeclaration()
	// n.Children is [name, name, ..., type]; the type is the last child.
	typeNode := n.Children[len(n.Children)-1]
	for _, c := range n.Children[:len(n.Children)-1] {
		d.Names = append(d.Names, normalize(c.Text))
	}
	if typeNode.Kind == frontend.RuleArrayType {
		d.Array = b.buildArrayType(typeNode)
	} else {
		d.Simple = b.buildSimpleType(typeNode)
	}
	return d
}

func (b *builder) buildSimpleType(n *frontend.Node) *SimpleType {
	st := b.arena.NewSimpleType()
	switch normalize(n.Text) {
	case "integer":
		st.Type = TypeInteger
	case "char":
		st.Type = TypeChar
	case "string":
		st.Type = TypeString
	default:
		st.Type = TypeNone
	}
	return st
}

func (b *builder) buildInterval(n *frontend.Node) *Interval {
	iv := b.arena.NewInterval()
	iv.LBorder = atoiOrZero(n.Children[0].Text)
	iv.RBorder = atoiOrZero(n.Children[1].Text)
	return iv
}

func (b *builder) buildArrayType(n *frontend.Node) *ArrayType {
	at := b.arena.NewArrayType()
	at.Interval = b.buildInterval(n.Children[0])
	at.Elem = b.buildSimpleType(n.Children[1])
	return at
}

func (b *builder) buildBlock(n *frontend.Node) *Block {
	blk := b.arena.NewBlock()
	for _, c := range n.Children {
		blk.Statements = append(blk.Statements, b.buildStatement(c))
	}
	return blk
}

func (b *builder) buildStatement(n *frontend.Node) Statement {
	switch n.Kind {
	case frontend.RuleAssignment:
		return b.buildAssignment(n)
	case frontend.RuleWhile:
		return b.buildWhile(n)
	case frontend.RuleBranch:
		return b.buildBranch(n)
	case frontend.RuleFunctionCall:
		return b.buildFunctionCall(n)
	case frontend.RuleBlock:
		return b.buildBlock(n)
	default:
		panic("ast.Build: unexpected statement kind")
	}
}

func (b *builder) buildFunctionCall(n *frontend.Node) *FunctionCall {
	fc := b.arena.NewFunctionCall()
	fc.Name = b.buildFunctionName(n.Children[0])
	for _, a := range n.Children[1:] {
		fc.Args = append(fc.Args, b.buildExpression(a))
	}
	return fc
}

func (b *builder) buildFunctionName(n *frontend.Node) *FunctionName {
	fn := b.arena.NewFunctionName()
	switch normalize(n.Text) {
	case "readln":
		fn.Name = FuncReadln
	case "write":
		fn.Name = FuncWrite
	case "writeln":
		fn.Name = FuncWriteln
	}
	return fn
}

func (b *builder) buildAssignment(n *frontend.Node) *Assignment {
	a := b.arena.NewAssignment()
	target := n.Children[0]
	if target.Kind == frontend.RuleCell {
		a.Cell = b.buildCell(target)
	} else {
		a.Varname = b.buildId(target)
	}
	a.Mod = b.buildModification(n.Children[1])
	a.Value = b.buildExpression(n.Children[2])
	return a
}

func (b *builder) buildModification(n *frontend.Node) *Modification {
	m := b.arena.NewModification()
	m.Text = n.Text // raw, not normalized — see doc comment on Modification
	switch n.Text {
	case ":=":
		m.Mod = ModAssign
	case "+=":
		m.Mod = ModAdd
	case "-=":
		m.Mod = ModReduce
	case "*=":
		m.Mod = ModMultiply
	}
	return m
}

func (b *builder) buildWhile(n *frontend.Node) *While {
	w := b.arena.NewWhile()
	w.Condition = b.buildBoolExpr(n.Children[0])
	w.Body = b.buildStatement(n.Children[1])
	return w
}

func (b *builder) buildBranch(n *frontend.Node) *Branch {
	br := b.arena.NewBranch()
	br.Condition = b.buildBoolExpr(n.Children[0])
	br.Then = b.buildStatement(n.Children[1])
	if len(n.Children) > 2 {
		br.Alternative = b.buildStatement(n.Children[2])
	}
	return br
}

func (b *builder) buildBoolExpr(n *frontend.Node) *BoolExpr {
	be := b.arena.NewBoolExpr()
	be.Left = b.buildExpression(n.Children[0])
	be.Op = b.buildBoolOperation(n.Children[1])
	be.Right = b.buildExpression(n.Children[2])
	return be
}

func (b *builder) buildBoolOperation(n *frontend.Node) *BoolOperation {
	bo := b.arena.NewBoolOperation()
	text := normalize(n.Text)
	bo.Text = text
	switch text {
	case "=":
		bo.Op = BoolEqual
	case "<>":
		bo.Op = BoolNotEqual
	case "<":
		bo.Op = BoolLess
	case ">":
		bo.Op = BoolMore
	case "<=":
		bo.Op = BoolNotMore
	case ">=":
		bo.Op = BoolNotLess
	}
	return bo
}

// buildExpression mirrors Builder.cpp's visitExpression: a bracketed node
// wraps a single operand, a binary node recurses on both sides sharing the
// outermost node's shape, and a leaf node carries its sign run and atom.
func (b *builder) buildExpression(n *frontend.Node) *Expression {
	e := b.arena.NewExpression()
	if n.IsBracketed() {
		e.Bracketed = true
		e.Operand = b.buildExpression(n.Children[0])
		return e
	}
	if len(n.Children) == 3 {
		// Binary: left, operation, right.
		e.Left = b.buildExpression(n.Children[0])
		e.Operation = b.buildOperation(n.Children[1])
		e.Right = b.buildExpression(n.Children[2])
		return e
	}
	// Leaf: signs + atom.
	e.Signs = append([]string(nil), n.Signs...)
	e.Atom = b.buildAtom(n.Children[0])
	return e
}

func (b *builder) buildOperation(n *frontend.Node) *Operation {
	op := b.arena.NewOperation()
	text := normalize(n.Text)
	op.Text = text
	switch text {
	case "+":
		op.Op = OpPlus
	case "-":
		op.Op = OpMinus
	case "*":
		op.Op = OpStar
	case "div":
		op.Op = OpDiv
	case "mod":
		op.Op = OpMod
	}
	return op
}

func (b *builder) buildAtom(n *frontend.Node) Node {
	switch n.Kind {
	case frontend.RuleCell:
		return b.buildCell(n)
	case frontend.RuleId:
		return b.buildId(n)
	case frontend.RuleChar:
		return b.buildChar(n)
	case frontend.RuleStringLiteral:
		return b.buildStringLiteral(n)
	case frontend.RuleInt:
		return b.buildInt(n)
	default:
		panic("ast.Build: unexpected atom kind")
	}
}

func (b *builder) buildCell(n *frontend.Node) *Cell {
	c := b.arena.NewCell()
	c.Varname = b.buildId(n.Children[0])
	c.Index = b.buildExpression(n.Children[1])
	return c
}

func (b *builder) buildId(n *frontend.Node) *Id {
	id := b.arena.NewId()
	id.Name = normalize(n.Text)
	return id
}

func (b *builder) buildChar(n *frontend.Node) *Char {
	c := b.arena.NewChar()
	c.Text = trimQuotes(n.Text)
	return c
}

func (b *builder) buildStringLiteral(n *frontend.Node) *StringLiteral {
	s := b.arena.NewStringLiteral()
	s.Text = trimQuotes(n.Text)
	return s
}

func (b *builder) buildInt(n *frontend.Node) *Int {
	i := b.arena.NewInt()
	i.Text = n.Text
	return i
}

func atoiOrZero(s string) int {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n
}
