// Package solc runs an external Solidity compiler to produce ABI files.
package solc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultCompiler is the compiler executable used when none is configured.
const DefaultCompiler = "solcjs"

// Result is the captured output of one compiler run.
type Result struct {
	Stdout  string
	Stderr  string
	Elapsed time.Duration
}

// Compiler compiles a single source file into ABI files under outDir.
type Compiler interface {
	Compile(ctx context.Context, file, baseDir, outDir string) (Result, error)
}

// ExitError reports a compiler run that exited with a non-zero status.
type ExitError struct {
	File   string
	Code   int
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("solc: compile %s: exit status %d", e.File, e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exec invokes a compiler binary as
// "<path> <file> --abi --base-path <baseDir> -o <outDir>".
type Exec struct {
	Path string
}

// NewExec returns an Exec for path, or DefaultCompiler when empty.
func NewExec(path string) *Exec {
	if path == "" {
		path = DefaultCompiler
	}
	return &Exec{Path: path}
}

// LookPath reports whether the compiler can be found.
func (e *Exec) LookPath() (string, error) {
	p, err := exec.LookPath(e.Path)
	if err != nil {
		return "", fmt.Errorf("solc: %s not found: %w", e.Path, err)
	}
	return p, nil
}

// Args returns the argument list passed to the compiler.
func (e *Exec) Args(file, baseDir, outDir string) []string {
	return []string{file, "--abi", "--base-path", baseDir, "-o", outDir}
}

// Compile runs the compiler and waits for it to exit.
func (e *Exec) Compile(ctx context.Context, file, baseDir, outDir string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.Path, e.Args(file, baseDir, outDir)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: time.Since(start),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return res, &ExitError{File: file, Code: exitErr.ExitCode(), Stderr: res.Stderr, Err: err}
		}
		return res, fmt.Errorf("solc: run %s: %w", e.Path, err)
	}
	return res, nil
}
