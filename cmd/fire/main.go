package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/hearth/internal/config"
	"github.com/san-kum/hearth/internal/fire"
	"github.com/spf13/cobra"
)

var (
	configFile   string
	preset       string
	theme        string
	seed         int64
	flameBase    int
	sparkDivisor int
	tickMs       int
	// Profile options
	profileWidth  int
	profileHeight int
	profileFrames int
	showFrame     bool
)

var headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "fire",
		Short:        "terminal fire; press any key to quit",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runFire,
	}
	addSettingsFlags(rootCmd)

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "run the fire headless and plot heat per row",
		Args:  cobra.NoArgs,
		RunE:  runProfile,
	}
	addSettingsFlags(profileCmd)
	profileCmd.Flags().IntVar(&profileWidth, "width", 80, "grid width")
	profileCmd.Flags().IntVar(&profileHeight, "height", 24, "grid height")
	profileCmd.Flags().IntVar(&profileFrames, "frames", 300, "frames to simulate")
	profileCmd.Flags().BoolVar(&showFrame, "frame", false, "print the final frame")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets and themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(headingStyle.Render("presets"))
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-8s flame=%d divisor=%d tick=%dms theme=%s\n", name, p.FlameBase, p.SparkDivisor, p.TickMs, p.Theme)
			}
			fmt.Println(headingStyle.Render("themes"))
			for _, name := range fire.ThemeNames() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save <path>",
		Short: "write the resolved settings to a config file",
		Args:  cobra.ExactArgs(1),
		RunE:  saveConfig,
	}
	addSettingsFlags(saveCmd)

	rootCmd.AddCommand(profileCmd, presetsCmd, saveCmd)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().IntVar(&flameBase, "flame", config.DefaultFlameBase, "heat of a new spark")
	cmd.Flags().IntVar(&sparkDivisor, "divisor", config.DefaultSparkDivisor, "one spark per this many columns")
	cmd.Flags().IntVar(&tickMs, "tick", config.DefaultTickMs, "frame interval in milliseconds")
}

// resolveConfig layers preset, config file and explicit flags, in that
// order of precedence from lowest to highest.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("theme") || (preset == "" && configFile == "") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("flame") {
		cfg.FlameBase = flameBase
	}
	if cmd.Flags().Changed("divisor") {
		cfg.SparkDivisor = sparkDivisor
	}
	if cmd.Flags().Changed("tick") {
		cfg.TickMs = tickMs
	}
	return cfg, nil
}

func resolveSettings(cmd *cobra.Command) (fire.Settings, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fire.Settings{}, err
	}
	return cfg.Settings(), nil
}

func saveConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", args[0])
	return nil
}

func runFire(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	return fire.Run(cmd.Context(), s)
}

func runProfile(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if s.Seed == 0 && !cmd.Flags().Changed("seed") {
		s.Seed = 1
	}

	p, err := fire.RunProfile(profileWidth, profileHeight, profileFrames, s)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("fire profile %dx%d", p.Width, p.Height)))
	fmt.Printf("frames: %d\n", p.Frames)
	fmt.Printf("peak heat: %d\n\n", p.Peak)
	fmt.Println(p.Plot(profileWidth))

	if showFrame {
		fmt.Println()
		fmt.Println(p.Final.Plain())
	}
	return nil
}
