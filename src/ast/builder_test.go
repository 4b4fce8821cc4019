package ast

import (
	"testing"

	"pascalc/src/frontend"
)

func mustParse(t *testing.T, src string) *frontend.Node {
	t.Helper()
	root, errs := frontend.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("Parse(%q) returned errors: %v", src, errs)
	}
	return root
}

func TestBuildNormalizesIdentifierCase(t *testing.T) {
	root := mustParse(t, `Program Hello;
begin
	Writeln('hi');
end.`)
	prog, _ := Build(root)
	if prog.Header.Name != "hello" {
		t.Errorf("Header.Name = %q, want %q", prog.Header.Name, "hello")
	}
}

func TestBuildKeepsModificationTextRaw(t *testing.T) {
	root := mustParse(t, `program p;
var X : integer;
begin
	X += 1;
end.`)
	prog, _ := Build(root)
	stmt := prog.Block.Statements[0].(*Assignment)
	if stmt.Mod.Text != "+=" {
		t.Errorf("Mod.Text = %q, want %q", stmt.Mod.Text, "+=")
	}
	if stmt.Mod.Mod != ModAdd {
		t.Errorf("Mod.Mod = %v, want ModAdd", stmt.Mod.Mod)
	}
}

func TestBuildStripsQuotesFromLiterals(t *testing.T) {
	root := mustParse(t, `program p;
begin
	writeln('Hello world!');
end.`)
	prog, _ := Build(root)
	call := prog.Block.Statements[0].(*FunctionCall)
	lit := call.Args[0].Atom.(*StringLiteral)
	if lit.Text != "Hello world!" {
		t.Errorf("StringLiteral.Text = %q, want %q", lit.Text, "Hello world!")
	}
}

func TestBuildArrayDeclarationBounds(t *testing.T) {
	root := mustParse(t, `program p;
var a : array[0..9] of integer;
begin
	a[0] := 1;
end.`)
	prog, _ := Build(root)
	decl := prog.VarDecl.Decls[0]
	if decl.Array == nil {
		t.Fatal("expected an Array declaration")
	}
	if decl.Array.Interval.LBorder != 0 || decl.Array.Interval.RBorder != 9 {
		t.Errorf("interval = [%d..%d], want [0..9]", decl.Array.Interval.LBorder, decl.Array.Interval.RBorder)
	}
}

func TestBuildEachDeclaredNameGetsItsOwnSymbolSlot(t *testing.T) {
	root := mustParse(t, `program p;
var a, b : integer;
begin
	a := 1;
	b := 2;
end.`)
	prog, _ := Build(root)
	decl := prog.VarDecl.Decls[0]
	if len(decl.Names) != 2 {
		t.Fatalf("expected 2 declared names, got %d", len(decl.Names))
	}
	if len(decl.Symbols) != 0 {
		t.Fatalf("expected Symbols to be unpopulated until semantic analysis, got %d", len(decl.Symbols))
	}
}

func TestBuildBinaryExpressionShape(t *testing.T) {
	root := mustParse(t, `program p;
var x : integer;
begin
	x := 1 + 2 * 3;
end.`)
	prog, _ := Build(root)
	assign := prog.Block.Statements[0].(*Assignment)
	expr := assign.Value
	if expr.Operation == nil || expr.Operation.Text != "+" {
		t.Fatalf("expected outermost operation '+', got %#v", expr.Operation)
	}
	rhs := expr.Right
	if rhs.Operation == nil || rhs.Operation.Text != "*" {
		t.Fatalf("expected nested operation '*', got %#v", rhs.Operation)
	}
}
