package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const DefaultPattern = "*.mojo"

// Suite is a directory of standalone programs built against the package.
type Suite struct {
	Kind string
	Dir  string
}

var (
	Examples   = Suite{Kind: "example", Dir: "examples"}
	Benchmarks = Suite{Kind: "benchmark", Dir: "benchmarks"}
)

// Orchestrator packages the project and then builds and runs each program of
// a suite, one after another, stopping at the first failure.
type Orchestrator struct {
	Settings Settings
	Tool     *Tool
	Out      io.Writer
	Log      *slog.Logger
}

func New(s Settings, tool *Tool, out io.Writer, log *slog.Logger) *Orchestrator {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if s.ScratchDir == "" {
		s.ScratchDir = DefaultScratchDir()
	}
	return &Orchestrator{Settings: s, Tool: tool, Out: out, Log: log}
}

// Run builds and executes every file of the suite matching pattern (relative
// to the suite directory, DefaultPattern when empty). A missing suite
// directory is reported and is not an error.
func (o *Orchestrator) Run(ctx context.Context, suite Suite, pattern string) (err error) {
	if info, statErr := os.Stat(suite.Dir); statErr != nil || !info.IsDir() {
		fmt.Fprintf(o.Out, "Path does not exist: %s.\n", suite.Dir)
		return nil
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("pattern %q: %w", pattern, err)
	}

	fmt.Fprintf(o.Out, "Building package and copying %ss.\n", suite.Kind)
	scratch, err := Acquire(ctx, o.Settings.ScratchDir, o.Settings.Package, o.Tool, o.Log)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := scratch.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if err := copyTree(suite.Dir, scratch.Dir); err != nil {
		return fmt.Errorf("copy %s: %w", suite.Dir, err)
	}

	files, err := matchFiles(suite.Dir, pattern)
	if err != nil {
		return err
	}
	o.Log.Debug("matched files", "suite", suite.Kind, "pattern", pattern, "count", len(files))

	for _, file := range files {
		fmt.Fprintf(o.Out, "\nRunning %s: %s\n", suite.Kind, file)
		if err := o.runFile(ctx, scratch.Dir, file); err != nil {
			return fmt.Errorf("%s %s: %w", suite.Kind, file, err)
		}
	}
	return nil
}

func (o *Orchestrator) runFile(ctx context.Context, dir, file string) error {
	base := filepath.Base(file)
	src := filepath.Join(dir, base)
	bin := filepath.Join(dir, BinaryName(base))

	if err := copyFile(file, src); err != nil {
		return err
	}
	if err := o.Tool.Compile(ctx, src, bin); err != nil {
		return err
	}
	return o.Tool.Exec(ctx, bin)
}

// BinaryName is the file name up to its first dot.
func BinaryName(file string) string {
	name, _, _ := strings.Cut(filepath.Base(file), ".")
	return name
}

// matchFiles globs pattern inside dir and keeps regular files, in lexical
// order.
func matchFiles(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	files := matches[:0]
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}
