package frontend

import (
	"pascalc/src/token"
	"pascalc/src/util"
)

// parser is a hand-written recursive-descent parser over the flat token
// slice the lexer produces. A combinator library (participle/v2, used
// elsewhere in the example pack) was considered and rejected for this
// grammar: the expression grammar is left-recursive by nature and the
// code generator's expression lowering (src/codegen/generator.go) re-derives
// operator precedence itself from the shape of nested binary Expression
// nodes, so the parser only has to produce a correct binary tree by any
// standard precedence-climbing method.
type parser struct {
	toks []token.Token
	pos  int
	errs util.ErrorList
}

// Parse tokenizes and parses src, returning the root Program node and any
// syntax errors. A non-empty error list means the returned tree may be
// partial or nil.
func Parse(src string) (*Node, []util.Diagnostic) {
	toks, lexErrs := Lex(src)
	p := &parser{toks: toks}
	for _, e := range lexErrs {
		p.errs.Append(1, 1, "%v", e)
	}
	prog := p.parseProgram()
	return prog, p.errs.Errors()
}

func (p *parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// expect consumes a token of kind k or records a syntax error and returns
// the zero Token, allowing the caller to keep parsing (a best-effort
// recovery strategy, not full error-production recovery).
func (p *parser) expect(k token.Kind) token.Token {
	if p.at(k) {
		return p.advance()
	}
	t := p.cur()
	p.errs.Append(t.Line, t.Col, "expected %s, found %s %q", k, t.Kind, t.Text)
	return t
}

func (p *parser) parseProgram() *Node {
	prog := &Node{Kind: RuleProgram}
	prog.Children = append(prog.Children, p.parseHeader())
	if p.at(token.CONST) {
		prog.Children = append(prog.Children, p.parseConstDecl())
	} else {
		prog.Children = append(prog.Children, nil)
	}
	if p.at(token.VAR) {
		prog.Children = append(prog.Children, p.parseVarDecl())
	} else {
		prog.Children = append(prog.Children, nil)
	}
	prog.Children = append(prog.Children, p.parseBlock())
	p.expect(token.DOT)
	return prog
}

func (p *parser) parseHeader() *Node {
	p.expect(token.PROGRAM)
	id := p.expect(token.IDENTIFIER)
	p.expect(token.SEMICOLON)
	return &Node{Kind: RuleHeader, Text: id.Text, Tok: id}
}

func (p *parser) parseConstDecl() *Node {
	p.expect(token.CONST)
	n := &Node{Kind: RuleConstDecl}
	for p.at(token.IDENTIFIER) {
		n.Children = append(n.Children, p.parseConstDeclaration())
	}
	return n
}

func (p *parser) parseConstDeclaration() *Node {
	id := p.expect(token.IDENTIFIER)
	p.expect(token.EQ)
	expr := p.parseExpression()
	p.expect(token.SEMICOLON)
	return &Node{Kind: RuleConstDeclaration, Text: id.Text, Tok: id, Children: []*Node{expr}}
}

func (p *parser) parseVarDecl() *Node {
	p.expect(token.VAR)
	n := &Node{Kind: RuleVarDecl}
	for p.at(token.IDENTIFIER) || p.at(token.VAR) {
		if p.at(token.VAR) {
			// A repeated "var" keyword opens another section; its
			// declarations join the same VarDecl node.
			p.advance()
			continue
		}
		n.Children = append(n.Children, p.parseDeclaration())
	}
	return n
}

func (p *parser) parseDeclaration() *Node {
	n := &Node{Kind: RuleDeclaration}
	var names []*Node
	id := p.expect(token.IDENTIFIER)
	names = append(names, &Node{Kind: RuleId, Text: id.Text, Tok: id})
	for p.at(token.COMMA) {
		p.advance()
		id = p.expect(token.IDENTIFIER)
		names = append(names, &Node{Kind: RuleId, Text: id.Text, Tok: id})
	}
	p.expect(token.COLON)
	var typ *Node
	if p.at(token.ARRAY) {
		typ = p.parseArrayType()
	} else {
		typ = p.parseSimpleType()
	}
	p.expect(token.SEMICOLON)
	n.Children = append(names, typ)
	return n
}

func (p *parser) parseSimpleType() *Node {
	t := p.advance()
	return &Node{Kind: RuleSimpleType, Text: t.Text, Tok: t}
}

func (p *parser) parseArrayType() *Node {
	p.expect(token.ARRAY)
	p.expect(token.LBRACKET)
	interval := p.parseInterval()
	p.expect(token.RBRACKET)
	p.expect(token.OF)
	elem := p.parseSimpleType()
	return &Node{Kind: RuleArrayType, Children: []*Node{interval, elem}}
}

func (p *parser) parseInterval() *Node {
	lo := p.expect(token.INTEGER)
	p.expect(token.DOTDOT)
	hi := p.expect(token.INTEGER)
	return &Node{
		Kind: RuleInterval,
		Children: []*Node{
			{Kind: RuleInt, Text: lo.Text, Tok: lo},
			{Kind: RuleInt, Text: hi.Text, Tok: hi},
		},
	}
}

func (p *parser) parseBlock() *Node {
	p.expect(token.BEGIN)
	n := &Node{Kind: RuleBlock}
	n.Children = append(n.Children, p.parseStatement())
	for p.at(token.SEMICOLON) {
		p.advance()
		if p.at(token.END) {
			break
		}
		n.Children = append(n.Children, p.parseStatement())
	}
	p.expect(token.END)
	return n
}

func (p *parser) parseStatement() *Node {
	switch p.cur().Kind {
	case token.WHILE:
		return p.parseWhile()
	case token.IF:
		return p.parseBranch()
	case token.READLN, token.WRITE, token.WRITELN:
		return p.parseFunctionCall()
	case token.BEGIN:
		return p.parseBlock()
	default:
		return p.parseAssignment()
	}
}

func (p *parser) parseWhile() *Node {
	p.expect(token.WHILE)
	cond := p.parseBoolExpr()
	p.expect(token.DO)
	body := p.parseStatement()
	return &Node{Kind: RuleWhile, Children: []*Node{cond, body}}
}

func (p *parser) parseBranch() *Node {
	p.expect(token.IF)
	cond := p.parseBoolExpr()
	p.expect(token.THEN)
	then := p.parseStatement()
	n := &Node{Kind: RuleBranch, Children: []*Node{cond, then}}
	if p.at(token.ELSE) {
		p.advance()
		n.Children = append(n.Children, p.parseStatement())
	}
	return n
}

func (p *parser) parseFunctionCall() *Node {
	name := p.advance()
	fn := &Node{Kind: RuleFuncName, Text: name.Text, Tok: name}
	p.expect(token.LPAREN)
	n := &Node{Kind: RuleFunctionCall, Children: []*Node{fn}}
	if !p.at(token.RPAREN) {
		n.Children = append(n.Children, p.parseExpression())
		for p.at(token.COMMA) {
			p.advance()
			n.Children = append(n.Children, p.parseExpression())
		}
	}
	p.expect(token.RPAREN)
	return n
}

// parseAssignment parses "target modifier expression" where target is
// either a bare identifier (varname) or an indexed cell. The separating
// ";" is consumed by parseBlock.
func (p *parser) parseAssignment() *Node {
	id := p.expect(token.IDENTIFIER)
	var target *Node
	if p.at(token.LBRACKET) {
		p.advance()
		idx := p.parseExpression()
		p.expect(token.RBRACKET)
		target = &Node{
			Kind:     RuleCell,
			Children: []*Node{{Kind: RuleId, Text: id.Text, Tok: id}, idx},
		}
	} else {
		target = &Node{Kind: RuleId, Text: id.Text, Tok: id}
	}
	mod := p.advance()
	value := p.parseExpression()
	return &Node{
		Kind:     RuleAssignment,
		Children: []*Node{target, {Kind: RuleModifier, Text: mod.Text, Tok: mod}, value},
	}
}

func (p *parser) parseBoolExpr() *Node {
	lhs := p.parseExpression()
	op := p.advance()
	rhs := p.parseExpression()
	return &Node{
		Kind:     RuleBoolExpr,
		Children: []*Node{lhs, {Kind: RuleBoolOp, Text: op.Text, Tok: op}, rhs},
	}
}

// parseExpression parses a (possibly signed) sum of terms, left-associative.
// The result is a binary tree of RuleExpression nodes; src/codegen/generator.go
// flattens and re-derives precedence from this tree's shape regardless of
// how it was built here, so precedence climbing is the only requirement.
func (p *parser) parseExpression() *Node {
	left := p.parseTerm()
	for p.at(token.PLUS) || p.at(token.MINUS) {
		op := p.advance()
		right := p.parseTerm()
		left = &Node{
			Kind:     RuleExpression,
			Children: []*Node{left, {Kind: RuleOperation, Text: op.Text, Tok: op}, right},
		}
	}
	return left
}

func (p *parser) parseTerm() *Node {
	left := p.parseSignedAtom()
	for p.at(token.STAR) || p.at(token.DIV) || p.at(token.MOD) {
		op := p.advance()
		right := p.parseSignedAtom()
		left = &Node{
			Kind:     RuleExpression,
			Children: []*Node{left, {Kind: RuleOperation, Text: op.Text, Tok: op}, right},
		}
	}
	return left
}

// parseSignedAtom parses a run of leading unary +/- signs followed by an
// atom, matching the Signs-then-atom shape Builder.cpp's visitExpression
// distinguishes for non-bracketed, atom-bearing expressions.
func (p *parser) parseSignedAtom() *Node {
	var signs []string
	for p.at(token.PLUS) || p.at(token.MINUS) {
		signs = append(signs, p.advance().Text)
	}
	if p.at(token.LPAREN) {
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RPAREN)
		return &Node{Kind: RuleExpression, Bracketed: true, Signs: signs, Children: []*Node{inner}}
	}
	atom := p.parseAtom()
	return &Node{Kind: RuleExpression, Signs: signs, Children: []*Node{atom}}
}

func (p *parser) parseAtom() *Node {
	switch p.cur().Kind {
	case token.IDENTIFIER:
		id := p.advance()
		if p.at(token.LBRACKET) {
			p.advance()
			idx := p.parseExpression()
			p.expect(token.RBRACKET)
			return &Node{
				Kind:     RuleCell,
				Children: []*Node{{Kind: RuleId, Text: id.Text, Tok: id}, idx},
			}
		}
		return &Node{Kind: RuleId, Text: id.Text, Tok: id}
	case token.CHAR:
		t := p.advance()
		return &Node{Kind: RuleChar, Text: t.Text, Tok: t}
	case token.STRING:
		t := p.advance()
		return &Node{Kind: RuleStringLiteral, Text: t.Text, Tok: t}
	case token.INTEGER:
		t := p.advance()
		return &Node{Kind: RuleInt, Text: t.Text, Tok: t}
	default:
		t := p.cur()
		p.errs.Append(t.Line, t.Col, "expected an expression, found %s %q", t.Kind, t.Text)
		p.advance()
		return &Node{Kind: RuleInt, Text: "0", Tok: t}
	}
}
