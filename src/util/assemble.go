package util

import (
	"fmt"
	"os/exec"
)

// Assemble invokes an external C compiler to turn LLVM IR at llPath into a
// native executable at outPath, the Go equivalent of the original's
// exec_generate (which shells out via system("clang " + input + " -o " +
// output)). clang is tried first since it understands .ll directly; cc is
// a fallback for environments without clang installed.
func Assemble(llPath, outPath string) error {
	for _, toolchain := range []string{"clang", "cc"} {
		if _, err := exec.LookPath(toolchain); err != nil {
			continue
		}
		cmd := exec.Command(toolchain, llPath, "-o", outPath)
		cmd.Stdout = nil
		cmd.Stderr = nil
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s: %w\n%s", toolchain, err, out)
		}
		return nil
	}
	return fmt.Errorf("no C toolchain found: install clang or cc to assemble %s", llPath)
}
