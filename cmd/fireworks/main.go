package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fireworks/internal/audio"
	"github.com/san-kum/fireworks/internal/automation"
	"github.com/san-kum/fireworks/internal/config"
	"github.com/san-kum/fireworks/internal/export"
	"github.com/san-kum/fireworks/internal/gui"
	"github.com/san-kum/fireworks/internal/metrics"
	"github.com/san-kum/fireworks/internal/screen"
	"github.com/san-kum/fireworks/internal/show"
	"github.com/san-kum/fireworks/internal/storage"
	"github.com/san-kum/fireworks/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       int64
	duration   float64
	fps        int
	particles  int
	speed      int
	lifespan   int
	withAudio  bool

	dataDir      string
	saveRun      bool
	numRuns      int
	scriptFile   string
	plotColumn   string
	backend      string
	snapshotTick int
	snapshotOut  string
)

// main registers the commands and runs the raylib window show when no
// subcommand is given. It exits with status 1 if a command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fireworks",
		Short:        "fireworks display",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".fireworks", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.Float64Var(&duration, "time", config.DefaultDuration, "seconds before quitting (0 = never)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.IntVar(&particles, "particles", show.DefaultParticles, "particles per explosion")
	pf.IntVar(&speed, "speed", show.DefaultSpeed, "maximum explosion speed")
	pf.IntVar(&lifespan, "lifespan", show.DefaultLifespan, "particle lifespan")
	pf.BoolVar(&withAudio, "audio", false, "play a sound for every explosion")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the show in a window",
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&backend, "backend", "raylib", "window backend (raylib, ebiten)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the show in the terminal",
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the show headless and print metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the run report to the data directory")
	runCmd.Flags().IntVar(&numRuns, "runs", 1, "run an ensemble over consecutive seeds")
	runCmd.Flags().StringVar(&scriptFile, "script", "", "scripted key presses (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotColumn, "column", "particles", "stats column to plot")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "run the show headless and write per-tick stats as CSV",
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&scriptFile, "script", "", "scripted key presses (yaml)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a single frame to SVG",
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&snapshotTick, "tick", 60, "frame to capture (1 = first)")
	snapshotCmd.Flags().StringVar(&snapshotOut, "out", "snapshot.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDURATION\tPARTICLES\tSPEED\tLIFESPAN\tINTERVAL")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%gs\t%d\t%d\t%d\t%d-%d\n", name, p.Duration,
					p.Params.Particles, p.Params.Speed, p.Params.Lifespan,
					p.Launch.MinInterval, p.Launch.MaxInterval)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, plotCmd, exportCSVCmd, snapshotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers preset, config file and explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := cfg.Overlay(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("particles") {
		cfg.Params.Particles = particles
	}
	if flags.Changed("speed") {
		cfg.Params.Speed = speed
	}
	if flags.Changed("lifespan") {
		cfg.Params.Lifespan = lifespan
	}
	if flags.Changed("audio") {
		cfg.Audio = withAudio
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Seed = cfg.ResolveSeed()
	return cfg, nil
}

func newShow(cfg *config.Config) *show.Show {
	return show.New(cfg.ShowOptions(), rand.New(rand.NewSource(cfg.Seed)))
}

// startAudio attaches explosion sounds when enabled. A missing audio
// device is not fatal.
func startAudio(s *show.Show, cfg *config.Config) func() {
	if !cfg.Audio {
		return func() {}
	}
	p := audio.NewProcessor(cfg.Seed)
	if err := p.Start(); err != nil {
		fmt.Printf("audio disabled: %v\n", err)
		return func() {}
	}
	s.AddObserver(p)
	return p.Stop
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func reportEnd(s *show.Show, cfg *config.Config) {
	if s.StopReason() == show.EventTimeout {
		fmt.Printf("%g seconds elapsed. Quitting...\n", cfg.Duration)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s := newShow(cfg)
	stopAudio := startAudio(s, cfg)
	defer stopAudio()

	switch backend {
	case "raylib":
		w, err := gui.Open(cfg)
		if err != nil {
			return err
		}
		ctx, stop := signalContext()
		defer stop()
		if err := show.Run(ctx, w, s); err != nil {
			return err
		}
	case "ebiten":
		if err := screen.Run(s, cfg); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown backend: %s (available: raylib, ebiten)", backend)
	}

	reportEnd(s, cfg)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s := newShow(cfg)
	stopAudio := startAudio(s, cfg)
	defer stopAudio()

	if err := viz.Run(s, cfg); err != nil {
		return err
	}
	reportEnd(s, cfg)
	return nil
}

// headless runs s to its deadline without a window, feeding it the
// --script key presses if any.
func headless(cfg *config.Config, s *show.Show) error {
	if cfg.Duration <= 0 {
		return fmt.Errorf("headless runs need a positive --time")
	}

	h := show.NewHeadless(cfg.FPS, cfg.Timeout())
	if scriptFile != "" {
		script, err := automation.LoadScript(scriptFile)
		if err != nil {
			return fmt.Errorf("failed to load script: %w", err)
		}
		if err := script.Apply(h); err != nil {
			return err
		}
	}

	ctx, stop := signalContext()
	defer stop()
	return show.Run(ctx, h, s)
}

func runEnsemble(cfg *config.Config) error {
	if cfg.Duration <= 0 {
		return fmt.Errorf("headless runs need a positive --time")
	}
	ticks := int(cfg.Duration * float64(cfg.FPS))

	ctx, stop := signalContext()
	defer stop()

	fmt.Printf("running %d shows of %gs from seed %d...\n", numRuns, cfg.Duration, cfg.Seed)
	start := time.Now()
	results, err := metrics.NewEnsemble(cfg.ShowOptions(), cfg.FPS, ticks, numRuns, cfg.Seed).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	names := make([]string, 0)
	for _, m := range metrics.Default().Metrics {
		names = append(names, m.Name())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SEED\t%s\n", strings.ToUpper(strings.Join(names, "\t")))
	row := func(label string, values map[string]float64) {
		fmt.Fprint(w, label)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.2f", values[n])
		}
		fmt.Fprintln(w)
	}
	for _, r := range results {
		row(strconv.FormatInt(r.Seed, 10), r.Values)
	}
	row("mean", metrics.Mean(results))
	return w.Flush()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns > 1 {
		return runEnsemble(cfg)
	}

	s := newShow(cfg)
	rec := metrics.Default()
	s.AddObserver(rec)

	var run *storage.Run
	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		if run, err = st.Begin("show"); err != nil {
			return err
		}
		s.AddObserver(run)
	}

	fmt.Printf("running %gs show at %d fps (seed %d)...\n", cfg.Duration, cfg.FPS, cfg.Seed)
	start := time.Now()
	if err := headless(cfg, s); err != nil {
		return err
	}

	fmt.Printf("completed %d ticks in %v\n", s.Tick(), time.Since(start))
	fmt.Println("\nmetrics:")
	values := make(map[string]float64, len(rec.Metrics))
	for _, m := range rec.Metrics {
		values[m.Name()] = m.Value()
		fmt.Printf("  %s: %.2f\n", m.Name(), m.Value())
	}

	plotSeries(rec.Particles.Downsample(80), "live particles")

	if run != nil {
		err := run.Finish(storage.RunMetadata{
			Preset:    preset,
			Timestamp: time.Now(),
			Seed:      cfg.Seed,
			Duration:  cfg.Duration,
			FPS:       cfg.FPS,
			Ticks:     s.Tick(),
			Params:    s.Params(),
			Metrics:   values,
		})
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", run.ID)
	}
	return nil
}

func plotSeries(data []float64, caption string) {
	if len(data) < 2 {
		return
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Printf("\n%s\n", graph)
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tSEED\tTICKS\tEXPLOSIONS\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f\t%s\n", r.ID, r.Preset, r.Seed, r.Ticks,
			r.Metrics["explosions"], r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	data, err := st.LoadColumn(args[0], plotColumn)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d ticks, seed %d\n", meta.ID, meta.Ticks, meta.Seed)
	series := metrics.NewSeries(plotColumn, nil)
	for _, v := range data {
		series.Append(v)
	}
	plotSeries(series.Downsample(80), plotColumn)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s := newShow(cfg)
	out := export.NewStatsCSV(os.Stdout)
	s.AddObserver(out)

	if err := headless(cfg, s); err != nil {
		return err
	}
	return out.Flush()
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	svg, err := export.Snapshot(newShow(cfg), snapshotTick)
	if err != nil {
		return err
	}

	f, err := os.Create(snapshotOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := svg.WriteTo(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s (tick %d, %d shapes)\n", snapshotOut, snapshotTick, svg.Elements())
	return nil
}
