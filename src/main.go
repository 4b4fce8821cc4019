// Command pascalc compiles a small Pascal subset to LLVM textual IR.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"pascalc/src/ast"
	"pascalc/src/codegen"
	"pascalc/src/frontend"
	"pascalc/src/semantic"
	"pascalc/src/util"
)

func main() {
	app := &cli.App{
		Name:      "pascalc",
		Usage:     "compile a Pascal-subset source file to LLVM IR",
		ArgsUsage: "<file-path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dump-tokens", Usage: "print the token stream and exit"},
			&cli.BoolFlag{Name: "dump-ast", Usage: "print the parsed AST as XML and exit"},
			&cli.BoolFlag{Name: "dump-asm", Usage: "emit LLVM IR without invoking the external toolchain"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var errColor = color.New(color.FgRed)

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		_ = cli.ShowAppHelp(c)
		return fmt.Errorf("missing required <file-path> argument")
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if c.Bool("dump-tokens") {
		var out strings.Builder
		if errs := frontend.DumpTokens(string(src), &out); len(errs) != 0 {
			dumpDiagnostics(errs)
			return nil
		}
		fmt.Print(out.String())
		return nil
	}

	root, errs := frontend.Parse(string(src))
	if len(errs) != 0 {
		// Syntax errors terminate the pipeline but are not a process-level
		// failure (spec.md §6): they exit 0, unlike argument/I-O errors.
		dumpParseErrors(errs)
		return nil
	}

	prog, _ := ast.Build(root)

	if c.Bool("dump-ast") {
		fmt.Print(ast.Serialize(prog))
		return nil
	}

	symtab, semErr := semantic.Analyse(prog)
	if semErr != nil {
		errColor.Fprintf(os.Stderr, "Error: %s\n", semErr)
		return nil
	}

	ir := codegen.Generate(prog, symtab)

	stem := strings.TrimSuffix(path, ".pas")
	llPath := stem + ".ll"
	if err := os.WriteFile(llPath, []byte(ir), 0o644); err != nil {
		return err
	}

	if c.Bool("dump-asm") {
		return nil
	}
	return util.Assemble(llPath, stem)
}

func dumpParseErrors(diags []util.Diagnostic) {
	for _, d := range diags {
		errColor.Fprintf(os.Stderr, "%s\n", d)
	}
}

func dumpDiagnostics(errs []error) {
	for _, e := range errs {
		errColor.Fprintf(os.Stderr, "%v\n", e)
	}
}
