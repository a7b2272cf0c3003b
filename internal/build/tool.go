package build

import "context"

const DefaultTool = "mojo"

// Tool drives the external compiler and packager.
type Tool struct {
	Binary string
	Runner Runner
}

func NewTool(binary string, r Runner) *Tool {
	if binary == "" {
		binary = DefaultTool
	}
	return &Tool{Binary: binary, Runner: r}
}

// Package bundles the named package into a redistributable artifact at out.
func (t *Tool) Package(ctx context.Context, name, out string) error {
	return t.Runner.Run(ctx, t.Binary, "package", name, "-o", out)
}

// Compile builds a single source file into an executable at out.
func (t *Tool) Compile(ctx context.Context, src, out string) error {
	return t.Runner.Run(ctx, t.Binary, "build", src, "-o", out)
}

// Exec runs a built binary.
func (t *Tool) Exec(ctx context.Context, bin string) error {
	return t.Runner.Run(ctx, bin)
}
