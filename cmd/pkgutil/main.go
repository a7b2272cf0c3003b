package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/san-kum/hearth/internal/build"
	"github.com/san-kum/hearth/internal/logging"
	"github.com/san-kum/hearth/internal/project"
	"github.com/spf13/cobra"
)

var (
	manifestPath string
	scratchDir   string
	toolBinary   string
	envFile      string
	verbose      bool
	pathFilter   string
	recipePath   string
)

func main() {
	log, level := logging.New(os.Stderr)

	rootCmd := &cobra.Command{
		Use:           "pkgutil",
		Short:         "package, build and run examples and benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", project.DefaultManifestPath, "project manifest (toml)")
	rootCmd.PersistentFlags().StringVar(&scratchDir, "scratch", build.DefaultScratchDir(), "scratch build directory")
	rootCmd.PersistentFlags().StringVar(&toolBinary, "tool", build.DefaultTool, "compiler and packager binary")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file consulted for "+project.BuildCacheEnv)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	examplesCmd := &cobra.Command{
		Use:   "run-examples [glob]",
		Short: "build and run the examples",
		Args:  cobra.MaximumNArgs(1),
		RunE:  suiteRunner(build.Examples),
	}
	examplesCmd.Flags().StringVar(&pathFilter, "path", "", "glob of files to run, relative to the examples directory")

	benchmarksCmd := &cobra.Command{
		Use:   "run-benchmarks [glob]",
		Short: "build and run the benchmarks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  suiteRunner(build.Benchmarks),
	}
	benchmarksCmd.Flags().StringVar(&pathFilter, "path", "", "glob of files to run, relative to the benchmarks directory")

	recipeCmd := &cobra.Command{
		Use:   "recipe",
		Short: "write the package recipe from the manifest",
		Args:  cobra.NoArgs,
		RunE:  writeRecipe,
	}
	recipeCmd.Flags().StringVar(&recipePath, "out", project.DefaultRecipePath, "recipe output path")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "show resolved build settings",
		Args:  cobra.NoArgs,
		RunE:  showInfo,
	}

	rootCmd.AddCommand(examplesCmd, benchmarksCmd, recipeCmd, infoCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logging.WithLogger(ctx, log)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
	stop()
}

// loadSettings reads the manifest once and resolves every path the
// orchestrator needs.
func loadSettings() (build.Settings, *project.Manifest, error) {
	m, err := project.Load(manifestPath)
	if err != nil {
		return build.Settings{}, nil, err
	}
	cacheDir, err := project.BuildCacheDir(envFile)
	if err != nil {
		return build.Settings{}, nil, err
	}
	return build.Settings{
		Package:       m.Package.Name,
		ScratchDir:    scratchDir,
		Tool:          toolBinary,
		BuildCacheDir: cacheDir,
	}, m, nil
}

func suiteRunner(suite build.Suite) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := logging.FromContext(cmd.Context())
		settings, _, err := loadSettings()
		if err != nil {
			return err
		}
		pattern := pathFilter
		if len(args) > 0 {
			pattern = args[0]
		}

		tool := build.NewTool(settings.Tool, build.NewExecRunner())
		orch := build.New(settings, tool, cmd.OutOrStdout(), log)
		return orch.Run(cmd.Context(), suite, pattern)
	}
}

func writeRecipe(cmd *cobra.Command, args []string) error {
	_, m, err := loadSettings()
	if err != nil {
		return err
	}
	r := project.NewRecipe(m)
	written, err := project.SyncRecipe(recipePath, r)
	if err != nil {
		return err
	}
	if !written {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", recipePath)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d run requirements)\n", recipePath, len(r.Requirements.Run))
	return nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	settings, m, err := loadSettings()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "package:      %s\n", settings.Package)
	if m.Package.Version != "" {
		fmt.Fprintf(out, "version:      %s\n", m.Package.Version)
	}
	fmt.Fprintf(out, "tool:         %s\n", settings.Tool)
	fmt.Fprintf(out, "scratch dir:  %s\n", settings.ScratchDir)
	fmt.Fprintf(out, "build cache:  %s\n", settings.BuildCacheDir)
	fmt.Fprintf(out, "dependencies: %d\n", len(m.Dependencies))
	return nil
}
