package ast

import (
	"strings"
	"testing"

	"pascalc/src/frontend"
)

func TestSerializeIsWellNested(t *testing.T) {
	root, errs := frontend.Parse(`program hello;
begin
	writeln('Hello world!');
end.`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	prog, _ := Build(root)
	out := Serialize(prog)

	if !strings.HasPrefix(out, "<pascal>\n") {
		t.Errorf("expected document to start with <pascal>, got %q", out)
	}
	if !strings.HasSuffix(out, "</pascal>\n") {
		t.Errorf("expected document to end with </pascal>, got %q", out)
	}
	if !strings.Contains(out, "<progname>hello</progname>") {
		t.Errorf("expected a <progname>hello</progname> leaf, got:\n%s", out)
	}
	if strings.Count(out, "<block>") != strings.Count(out, "</block>") {
		t.Errorf("unbalanced <block> tags:\n%s", out)
	}
}

func TestSerializeIndentsByDepth(t *testing.T) {
	root, _ := frontend.Parse(`program p;
var x : integer;
begin
	x := 1;
end.`)
	prog, _ := Build(root)
	out := Serialize(prog)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "<pascal>" {
		t.Fatalf("expected first line <pascal>, got %q", lines[0])
	}
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " ")
		if len(line)-len(trimmed) == 0 {
			continue
		}
		if (len(line)-len(trimmed))%2 != 0 {
			t.Errorf("expected even indentation, got %q", line)
		}
	}
}
