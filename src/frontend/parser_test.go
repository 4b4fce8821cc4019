package frontend

import "testing"

func TestParseHelloWorld(t *testing.T) {
	src := `program hello;
begin
	writeln('Hello world!');
end.`
	prog, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	if prog == nil || prog.Kind != RuleProgram {
		t.Fatalf("expected a Program node, got %#v", prog)
	}
	header := prog.Child(0)
	if header == nil || header.Text != "hello" {
		t.Fatalf("expected header name %q, got %#v", "hello", header)
	}
	block := prog.Child(3)
	if block == nil || block.Kind != RuleBlock {
		t.Fatalf("expected a Block node, got %#v", block)
	}
	if len(block.Children) != 1 || block.Children[0].Kind != RuleFunctionCall {
		t.Fatalf("expected a single FunctionCall statement, got %#v", block.Children)
	}
}

func TestParseArithmeticPrecedence(t *testing.T) {
	src := `program p;
var x : integer;
begin
	x := 1 + 2 * 3;
end.`
	prog, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	block := prog.Child(3)
	assign := block.Children[0]
	if assign.Kind != RuleAssignment {
		t.Fatalf("expected Assignment, got %#v", assign)
	}
	value := assign.Children[2]
	if value.Kind != RuleExpression || len(value.Children) != 3 {
		t.Fatalf("expected a binary Expression node, got %#v", value)
	}
	op := value.Children[1]
	if op.Kind != RuleOperation || op.Text != "+" {
		t.Fatalf("expected the outermost operation to be '+', got %#v", op)
	}
}

func TestParseSyntaxError(t *testing.T) {
	src := `program broken;
begin
	x := ;
end.`
	_, errs := Parse(src)
	if len(errs) == 0 {
		t.Fatal("expected at least one syntax error")
	}
}

func TestParseArrayDeclarationAndCell(t *testing.T) {
	src := `program arr;
var a : array[0..9] of integer;
begin
	a[0] := 1;
end.`
	prog, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	varDecl := prog.Child(2)
	if varDecl == nil || varDecl.Kind != RuleVarDecl {
		t.Fatalf("expected a VarDecl node, got %#v", varDecl)
	}
	decl := varDecl.Children[0]
	arrType := decl.Children[len(decl.Children)-1]
	if arrType.Kind != RuleArrayType {
		t.Fatalf("expected an ArrayType node, got %#v", arrType)
	}

	block := prog.Child(3)
	assign := block.Children[0]
	target := assign.Children[0]
	if target.Kind != RuleCell {
		t.Fatalf("expected a Cell assignment target, got %#v", target)
	}
}
