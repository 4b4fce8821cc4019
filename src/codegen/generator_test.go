package codegen

import (
	"strings"
	"testing"

	"pascalc/src/ast"
	"pascalc/src/frontend"
	"pascalc/src/semantic"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	root, errs := frontend.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	prog, _ := ast.Build(root)
	symtab, err := semantic.Analyse(prog)
	if err != nil {
		t.Fatalf("unexpected semantic error: %v", err)
	}
	return Generate(prog, symtab)
}

func TestGenerateHelloWorld(t *testing.T) {
	ir := compile(t, `program hello;
begin
	writeln('Hello world!');
end.`)

	if !strings.HasPrefix(ir, "target triple = \"x86_64-pc-linux-gnu\"") {
		t.Fatalf("expected the target triple as the first line, got:\n%s", ir)
	}
	if !strings.Contains(ir, "define i32 @main() {") {
		t.Error("expected a @main function definition")
	}
	if !strings.Contains(ir, "@.str.1 = constant [13 x i8]") {
		t.Errorf("expected a 13-byte string constant for 'Hello world!', got:\n%s", ir)
	}
	if !strings.Contains(ir, "@writeln_string(i8*") {
		t.Error("expected a call to the writeln_string helper")
	}
	if !strings.Contains(ir, "ret i32 0\n}") {
		t.Error("expected @main to end with ret i32 0")
	}
}

func TestGenerateArithmeticPrecedence(t *testing.T) {
	ir := compile(t, `program p;
var x : integer;
begin
	x := 1 + 2 * 3;
	writeln(x);
end.`)
	// "*" must be lowered before "+" regardless of the parser's left-leaning
	// binary tree shape: the generator's own precedence pass (parseStacks)
	// is what enforces multiplication-before-addition here.
	mulIdx := strings.Index(ir, "= mul i32")
	addIdx := strings.Index(ir, "= add i32")
	if mulIdx == -1 || addIdx == -1 {
		t.Fatalf("expected both a mul and an add instruction, got:\n%s", ir)
	}
	if mulIdx > addIdx {
		t.Errorf("expected mul to be emitted before add, got:\n%s", ir)
	}
}

func TestGenerateWhileReservesLabelsBeforeBody(t *testing.T) {
	ir := compile(t, `program p;
var i : integer;
begin
	i := 0;
	while i < 10 do
		i += 1;
end.`)
	if !strings.Contains(ir, "br label %.") {
		t.Fatalf("expected at least one unconditional branch, got:\n%s", ir)
	}
	if !strings.Contains(ir, "br i1 %.") {
		t.Fatalf("expected a conditional branch for the while loop, got:\n%s", ir)
	}
	// The condition's icmp is %.8, so the body and exit labels are %.9 and
	// %.10; the body's first register comes after them, as %.11.
	if !strings.Contains(ir, "br i1 %.8, label %.9, label %.10\n\n.9:\n%.11 = alloca i32") {
		t.Errorf("expected labels .9/.10 to be reserved before the body's registers, got:\n%s", ir)
	}
}

func TestGenerateBoolExprIcmpHasNoSpaceBeforeFirstOperand(t *testing.T) {
	ir := compile(t, `program p;
var x : integer;
begin
	if x = 1 then
		x := 2;
end.`)
	if !strings.Contains(ir, "icmp eq i32%.") {
		t.Errorf("expected the icmp-operand formatting irregularity to be preserved, got:\n%s", ir)
	}
}

func TestGenerateArrayIndexing(t *testing.T) {
	ir := compile(t, `program p;
var a : array[0..9] of integer;
begin
	a[0] := 5;
	writeln(a[0]);
end.`)
	if !strings.Contains(ir, "getelementptr [9 x i32]") {
		t.Errorf("expected a 9-element array type (rborder-lborder, not +1), got:\n%s", ir)
	}
}

func TestGenerateRegisterNumberingIsMonotone(t *testing.T) {
	ir := compile(t, `program p;
var x, y : integer;
begin
	x := 1;
	y := 2;
	writeln(x + y);
end.`)
	var last int
	seen := false
	for _, line := range strings.Split(ir, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "%.") {
			continue
		}
		// line looks like "%.N = ..."
		rest := line[2:]
		n := 0
		for i := 0; i < len(rest) && rest[i] >= '0' && rest[i] <= '9'; i++ {
			n = n*10 + int(rest[i]-'0')
		}
		if seen && n <= last {
			t.Fatalf("register numbers must be strictly increasing, got %d after %d", n, last)
		}
		last, seen = n, true
	}
	if !seen {
		t.Fatal("expected at least one numbered register in the output")
	}
}
