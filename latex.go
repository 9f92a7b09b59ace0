package resumegen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// logTailLines is how much of the compiler log is surfaced on failure.
const logTailLines = 50

// compilerPasses is the fixed number of xelatex invocations. The second
// pass resolves cross-references (page numbers, labels) produced by the
// first.
const compilerPasses = 2

// CommandRunner abstracts subprocess execution so tests can run without a
// TeX installation. The command runs with dir as its working directory.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner implements CommandRunner using os/exec. The compiler's own
// output is discarded; diagnostics come from its log file instead.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s: %w", strings.TrimSpace(stderr.String()), err)
		}
		return err
	}
	return nil
}

// Compiler invokes the external LaTeX compiler on a markup file.
type Compiler struct {
	Runner CommandRunner
	Binary string // compiler binary name, resolved via PATH
}

// NewCompiler creates a Compiler that shells out to xelatex.
func NewCompiler() *Compiler {
	return &Compiler{Runner: &ExecRunner{}, Binary: "xelatex"}
}

// Compile runs the compiler twice over texFile inside dir. On a non-zero
// exit it returns ErrCompilerFailure carrying the tail of the compiler's
// log file; intermediate files are left in place for inspection.
func (c *Compiler) Compile(ctx context.Context, dir, texFile string) error {
	for pass := 1; pass <= compilerPasses; pass++ {
		err := c.Runner.Run(ctx, dir, c.Binary, "-interaction=nonstopmode", texFile)
		if err != nil {
			logPath := filepath.Join(dir, strings.TrimSuffix(texFile, ".tex")+".log")
			if tail := logTail(logPath, logTailLines); tail != "" {
				return fmt.Errorf("%w on pass %d: %v\n=== last %d lines of %s ===\n%s",
					ErrCompilerFailure, pass, err, logTailLines, filepath.Base(logPath), tail)
			}
			return fmt.Errorf("%w on pass %d: %v", ErrCompilerFailure, pass, err)
		}
	}
	return nil
}

// logTail returns the last n lines of the file at path, or "" if the file
// cannot be read.
func logTail(path string, n int) string {
	data, err := os.ReadFile(path) // #nosec G304 -- path derived from our own output file
	if err != nil {
		return ""
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
