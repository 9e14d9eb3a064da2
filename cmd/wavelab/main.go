package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavelab/internal/config"
	"github.com/san-kum/wavelab/internal/player"
	"github.com/san-kum/wavelab/internal/render"
	"github.com/san-kum/wavelab/internal/viz"
)

var (
	fps        int
	frames     int
	width      int
	height     int
	configFile string
	preset     string
	plain      bool
)

// main registers commands and flags; running with no subcommand plays
// the canonical animation until interrupted.
func main() {
	rootCmd := &cobra.Command{
		Use:   "wavelab",
		Short: "animated rainbow sine wave for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Press Ctrl+C to exit...")
			time.Sleep(time.Second)
			cfg := config.DefaultConfig()
			return runAnimation(cfg.Renderer(), cfg.FPS, 0)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "play the animation",
		RunE:  runWave,
	}
	runCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	runCmd.Flags().IntVar(&frames, "frames", 0, "number of frames (0 = until interrupted)")
	runCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	runCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	frameCmd := &cobra.Command{
		Use:   "frame <n>",
		Short: "print a single rendered frame",
		Args:  cobra.ExactArgs(1),
		RunE:  printFrame,
	}
	frameCmd.Flags().BoolVar(&plain, "plain", false, "strip color escapes")
	frameCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	frameCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	plotCmd := &cobra.Command{
		Use:   "plot <n>",
		Short: "plot the wave centerline for a frame",
		Args:  cobra.ExactArgs(1),
		RunE:  plotFrame,
	}
	plotCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive wave view",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the renderer",
		RunE:  benchRenderer,
	}

	rootCmd.AddCommand(runCmd, frameCmd, plotCmd, liveCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file, and flag overrides, in that
// order of increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
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

	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	return cfg, nil
}

func runAnimation(r *render.Renderer, fps, frames int) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := player.New(r, fps)
	p.Frames = frames
	return p.Run(ctx, os.Stdout)
}

func runWave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return runAnimation(cfg.Renderer(), cfg.FPS, frames)
}

func printFrame(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid frame number: %s", args[0])
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r := cfg.Renderer()

	if plain {
		fmt.Println(r.RenderPlain(n))
	} else {
		fmt.Println(r.Render(n))
	}
	return nil
}

func plotFrame(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid frame number: %s", args[0])
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r := cfg.Renderer()

	graph := asciigraph.Plot(r.Centerline(n),
		asciigraph.Height(12),
		asciigraph.Width(cfg.Width),
		asciigraph.Caption(fmt.Sprintf("wave centerline, frame %d", n)),
	)
	fmt.Println(graph)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.Renderer(), cfg.FPS)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func benchRenderer(cmd *cobra.Command, args []string) error {
	sizes := []struct{ w, h int }{{60, 20}, {80, 24}, {120, 40}}
	const benchFrames = 500

	fmt.Println("benchmarking renderer")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WIDTH\tHEIGHT\tFRAMES\tTIME\tFRAMES/SEC")

	for _, size := range sizes {
		r := render.New(size.w, size.h)

		start := time.Now()
		for frame := 0; frame < benchFrames; frame++ {
			_ = r.Render(frame)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n",
			size.w, size.h, benchFrames, elapsed,
			float64(benchFrames)/elapsed.Seconds())
	}

	return w.Flush()
}
