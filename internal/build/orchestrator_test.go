package build

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Orchestrator", func() {
	var (
		root    string
		scratch string
		runner  *recordingRunner
		out     *bytes.Buffer
		orch    *Orchestrator
		ctx     context.Context
		suite   Suite
	)

	writeSource := func(name string) {
		path := filepath.Join(root, "examples", name)
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
		Expect(os.WriteFile(path, []byte("fn main(): pass\n"), 0644)).To(Succeed())
	}

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		scratch = filepath.Join(root, "tmp")
		runner = &recordingRunner{}
		out = &bytes.Buffer{}
		ctx = context.Background()
		suite = Suite{Kind: "example", Dir: filepath.Join(root, "examples")}
		orch = New(Settings{Package: "gojo", ScratchDir: scratch}, NewTool("", runner), out, nil)
	})

	Context("when the suite directory is missing", func() {
		It("reports it and invokes nothing", func() {
			Expect(orch.Run(ctx, suite, "")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Path does not exist: " + suite.Dir + "."))
			Expect(runner.calls).To(BeEmpty())
			Expect(scratch).NotTo(BeADirectory())
		})
	})

	Context("with three example files", func() {
		BeforeEach(func() {
			writeSource("a.mojo")
			writeSource("b.mojo")
			writeSource("c.mojo")
			writeSource("notes.txt")
		})

		It("packages once then builds and runs each file in order", func() {
			Expect(orch.Run(ctx, suite, "")).To(Succeed())

			Expect(runner.calls).To(Equal([]string{
				"mojo package gojo -o " + filepath.Join(scratch, "gojo.mojopkg"),
				"mojo build " + filepath.Join(scratch, "a.mojo") + " -o " + filepath.Join(scratch, "a"),
				filepath.Join(scratch, "a"),
				"mojo build " + filepath.Join(scratch, "b.mojo") + " -o " + filepath.Join(scratch, "b"),
				filepath.Join(scratch, "b"),
				"mojo build " + filepath.Join(scratch, "c.mojo") + " -o " + filepath.Join(scratch, "c"),
				filepath.Join(scratch, "c"),
			}))
			Expect(out.String()).To(ContainSubstring("Building package and copying examples."))
			Expect(out.String()).To(ContainSubstring("Running example: " + filepath.Join(suite.Dir, "b.mojo")))
			Expect(scratch).NotTo(BeADirectory())
		})

		It("honours the glob filter", func() {
			Expect(orch.Run(ctx, suite, "b*")).To(Succeed())
			Expect(runner.calls).To(HaveLen(3))
			Expect(runner.calls[1]).To(ContainSubstring("b.mojo"))
		})

		It("copies the suite tree into the scratch directory", func() {
			runner.onCall = func(argv string) {
				if argv == filepath.Join(scratch, "a") {
					Expect(filepath.Join(scratch, "notes.txt")).To(BeARegularFile())
					Expect(filepath.Join(scratch, "c.mojo")).To(BeARegularFile())
				}
			}
			Expect(orch.Run(ctx, suite, "")).To(Succeed())
		})

		It("follows symlinked directories inside the suite", func() {
			shared := filepath.Join(root, "shared")
			Expect(os.MkdirAll(shared, 0755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(shared, "util.mojo"), []byte("fn util(): pass\n"), 0644)).To(Succeed())
			Expect(os.Symlink("../shared", filepath.Join(root, "examples", "lib"))).To(Succeed())

			runner.onCall = func(argv string) {
				if argv == filepath.Join(scratch, "a") {
					Expect(filepath.Join(scratch, "lib")).To(BeADirectory())
					Expect(filepath.Join(scratch, "lib", "util.mojo")).To(BeARegularFile())
				}
			}
			Expect(orch.Run(ctx, suite, "")).To(Succeed())
			Expect(runner.calls).To(HaveLen(7))
		})

		It("stops at the first failing build", func() {
			boom := errors.New("exit status 1")
			runner.fail = failPrefix("mojo build " + filepath.Join(scratch, "b.mojo"))
			runner.err = boom

			err := orch.Run(ctx, suite, "")
			Expect(err).To(MatchError(boom))
			Expect(err.Error()).To(ContainSubstring("b.mojo"))

			for _, call := range runner.calls {
				Expect(call).NotTo(ContainSubstring("c.mojo"))
				Expect(call).NotTo(Equal(filepath.Join(scratch, "b")))
			}
			Expect(out.String()).NotTo(ContainSubstring("Running example: " + filepath.Join(suite.Dir, "c.mojo")))
		})

		It("stops when a built program fails", func() {
			runner.fail = failEqual(filepath.Join(scratch, "a"))
			runner.err = &CommandError{Args: []string{filepath.Join(scratch, "a")}, ExitCode: 2, Err: errors.New("exit status 2")}

			err := orch.Run(ctx, suite, "")
			var cerr *CommandError
			Expect(errors.As(err, &cerr)).To(BeTrue())
			Expect(cerr.ExitCode).To(Equal(2))
			Expect(runner.calls).To(HaveLen(3))
		})

		It("removes the scratch directory even when a build fails", func() {
			Expect(os.MkdirAll(scratch, 0755)).To(Succeed())
			stale := filepath.Join(scratch, "stale.bin")
			Expect(os.WriteFile(stale, []byte("old"), 0644)).To(Succeed())

			runner.onCall = func(string) {
				Expect(stale).NotTo(BeAnExistingFile())
			}
			runner.fail = failPrefix("mojo build ")
			runner.err = errors.New("compile error")

			Expect(orch.Run(ctx, suite, "")).NotTo(Succeed())
			Expect(scratch).NotTo(BeADirectory())
		})

		It("rejects malformed patterns before touching the scratch directory", func() {
			Expect(orch.Run(ctx, suite, "[")).To(MatchError(filepath.ErrBadPattern))
			Expect(runner.calls).To(BeEmpty())
		})
	})
})

var _ = Describe("Acquire", func() {
	var (
		dir    string
		runner *recordingRunner
	)

	BeforeEach(func() {
		dir = filepath.Join(GinkgoT().TempDir(), "scratch")
		runner = &recordingRunner{}
	})

	It("creates a fresh directory and packages into it", func() {
		s, err := Acquire(context.Background(), dir, "gojo", NewTool("", runner), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(dir).To(BeADirectory())
		Expect(s.Artifact).To(Equal(filepath.Join(dir, "gojo.mojopkg")))

		Expect(s.Release()).To(Succeed())
		Expect(dir).NotTo(BeADirectory())
		Expect(s.Release()).To(Succeed())
	})

	It("reports removal only when there was a directory", func() {
		logs := &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(logs, nil))

		s, err := Acquire(context.Background(), dir, "gojo", NewTool("", runner), log)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Release()).To(Succeed())
		Expect(logs.String()).To(ContainSubstring("Temporary build directory removed."))

		logs.Reset()
		s, err = Acquire(context.Background(), dir, "gojo", NewTool("", runner), log)
		Expect(err).NotTo(HaveOccurred())
		Expect(os.RemoveAll(dir)).To(Succeed())
		Expect(s.Release()).To(Succeed())
		Expect(logs.String()).NotTo(ContainSubstring("Temporary build directory removed."))
	})

	It("cleans up when packaging fails", func() {
		runner.fail = failPrefix("mojo package ")
		runner.err = errors.New("no such package")

		s, err := Acquire(context.Background(), dir, "gojo", NewTool("", runner), nil)
		Expect(err).To(MatchError(ContainSubstring("package gojo")))
		Expect(s).To(BeNil())
		Expect(dir).NotTo(BeADirectory())
	})
})

var _ = Describe("BinaryName", func() {
	DescribeTable("strips everything after the first dot",
		func(in, want string) {
			Expect(BinaryName(in)).To(Equal(want))
		},
		Entry("plain", "hello.mojo", "hello"),
		Entry("double extension", "bench.tar.mojo", "bench"),
		Entry("nested path", "examples/sub/run.mojo", "run"),
		Entry("no extension", "script", "script"),
	)
})

var _ = Describe("ExecRunner", func() {
	It("rejects an empty command", func() {
		Expect(NewExecRunner().Run(context.Background(), "")).To(MatchError(ErrEmptyCommand))
	})

	It("passes stdin through to the child", func() {
		stdout := &bytes.Buffer{}
		r := &ExecRunner{Stdin: strings.NewReader("hello\n"), Stdout: stdout, Stderr: GinkgoWriter}
		Expect(r.Run(context.Background(), "sh", "-c", "read x; echo got:$x")).To(Succeed())
		Expect(stdout.String()).To(Equal("got:hello\n"))
	})

	It("defaults to the process streams", func() {
		r := NewExecRunner()
		Expect(r.Stdin).To(BeIdenticalTo(os.Stdin))
		Expect(r.Stdout).To(BeIdenticalTo(os.Stdout))
	})

	It("wraps failures with the argv", func() {
		err := NewExecRunner().Run(context.Background(), "hearth-no-such-binary", "x")
		var cerr *CommandError
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(cerr.Args).To(Equal([]string{"hearth-no-such-binary", "x"}))
		Expect(cerr.Error()).To(HavePrefix("hearth-no-such-binary x: "))
	})
})
