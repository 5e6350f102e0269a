package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/srcsim/internal/config"
	"github.com/san-kum/srcsim/internal/dose"
	"github.com/san-kum/srcsim/internal/engine"
	"github.com/san-kum/srcsim/internal/plot"
	"github.com/san-kum/srcsim/internal/stats"
	"github.com/san-kum/srcsim/internal/storage"
	"github.com/san-kum/srcsim/internal/tui"
)

var (
	dataDir    string
	configFile string
	particles  int
	seed       int64
	bins       int
	logBins    bool
	attr       string
	svgOut     string
	plotWidth  int
	plotHeight int
	// dose flags
	doseDistance  float64
	doseParticles float64
	doseEnergy    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "srcsim",
		Short: "particle source sampling and visualization lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".srcsim", "data directory")

	sampleCmd := &cobra.Command{
		Use:   "sample [preset]",
		Short: "sample a particle batch from a source",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSample,
	}
	sampleCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sampleCmd.Flags().IntVar(&particles, "particles", 0, "number of particles")
	sampleCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a sampled attribute of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&attr, "attr", "energy", "attribute: energy, xy, rz, direction")
	plotCmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "histogram bins")
	plotCmd.Flags().BoolVar(&logBins, "log", false, "logarithmic energy bins")
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the figure as SVG to this path")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width (chars)")
	plotCmd.Flags().IntVar(&plotHeight, "height", 20, "plot height (chars)")

	overlayCmd := &cobra.Command{
		Use:   "overlay [run_id] [run_id] ...",
		Short: "overlay several runs on one figure",
		Args:  cobra.MinimumNArgs(2),
		RunE:  overlayRuns,
	}
	overlayCmd.Flags().StringVar(&attr, "attr", "energy", "attribute: energy, xy, rz, direction")
	overlayCmd.Flags().IntVar(&bins, "bins", config.DefaultBins, "histogram bins")
	overlayCmd.Flags().BoolVar(&logBins, "log", false, "logarithmic energy bins")
	overlayCmd.Flags().StringVar(&svgOut, "svg", "", "also write the figure as SVG to this path")
	overlayCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width (chars)")
	overlayCmd.Flags().IntVar(&plotHeight, "height", 20, "plot height (chars)")

	compareCmd := &cobra.Command{
		Use:   "compare [preset] [preset] ...",
		Short: "sample several presets and compare energy statistics",
		Args:  cobra.MinimumNArgs(2),
		RunE:  comparePresets,
	}
	compareCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "number of particles per preset")
	compareCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")

	doseCmd := &cobra.Command{
		Use:   "dose",
		Short: "back-of-envelope dose from an unshielded point source",
		RunE:  runDose,
	}
	doseCmd.Flags().Float64Var(&doseParticles, "emitted", 1e18, "particles emitted by the source")
	doseCmd.Flags().Float64Var(&doseDistance, "distance", 100, "distance from the source (cm)")
	doseCmd.Flags().Float64Var(&doseEnergy, "energy", config.DTNeutronEnergy, "particle energy (eV)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run particles to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available source presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "sample continuously with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "benchmark sampling throughput",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchPreset,
	}

	rootCmd.AddCommand(sampleCmd, listCmd, plotCmd, overlayCmd, compareCmd, doseCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags: the config file
// overrides the preset, explicit flags override both.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		preset := config.GetPreset(args[0])
		if preset == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		cfg = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	out := *cfg
	if cmd.Flags().Changed("particles") {
		out.Particles = particles
	}
	if cmd.Flags().Changed("seed") {
		out.Seed = seed
	}
	return &out, nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sources, err := cfg.BuildSources()
	if err != nil {
		return err
	}

	fmt.Printf("sampling %d particles from %s...\n", cfg.Particles, cfg.Source.Name)
	start := time.Now()

	eng := engine.New(cfg.Seed)
	batch, err := eng.Run(context.Background(), sources, cfg.Particles)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Source.Name, cfg.Source.Type, cfg.Seed, len(sources), batch)
	if err != nil {
		return err
	}

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("particles: %d from %d source(s)\n", meta.Particles, meta.Sources)
	fmt.Printf("mean energy: %.4g eV (std %.4g)\n", meta.Energy.Mean, meta.Energy.StdDev)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTYPE\tTIME\tPARTICLES\tMEAN E [eV]")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.4g\n",
			run.ID,
			run.Source,
			run.SourceType,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Particles,
			run.Energy.Mean,
		)
	}

	return w.Flush()
}

func buildFigure(fig *plot.Figure, name string, st *storage.Store, runID string) (*plot.Figure, error) {
	particles, err := st.LoadParticles(runID)
	if err != nil {
		return fig, err
	}
	if len(particles) == 0 {
		return fig, fmt.Errorf("run %s holds no particles", runID)
	}

	switch attr {
	case "energy":
		energies := make([]float64, len(particles))
		for i, p := range particles {
			energies[i] = p.Energy
		}
		opts := []plot.Option{plot.Bins(bins)}
		if logBins {
			opts = append(opts, plot.LogBins())
		}
		return plot.Energy(fig, runID, energies, opts...)
	case "xy":
		return plot.Position(fig, runID, particles, plot.XY)
	case "rz":
		return plot.Position(fig, runID, particles, plot.RZ)
	case "direction":
		return plot.Direction(fig, runID, particles)
	default:
		return fig, fmt.Errorf("unknown attribute: %s", attr)
	}
}

func emitFigure(fig *plot.Figure) error {
	fmt.Println(fig.Render(plotWidth, plotHeight))
	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(fig.SVG(640, 480)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("source: %s (%s)\n\n", meta.Source, meta.SourceType)

	fig, err := buildFigure(nil, meta.Source, st, args[0])
	if err != nil {
		return err
	}
	return emitFigure(fig)
}

// overlayRuns threads one explicit figure handle through the run list and
// renders once after the final element.
func overlayRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	var fig *plot.Figure
	var err error
	for _, runID := range args {
		fig, err = buildFigure(fig, runID, st, runID)
		if err != nil {
			return err
		}
	}
	return emitFigure(fig)
}

func comparePresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSOURCES\tMEAN E [eV]\tSTD [eV]\tMIN [eV]\tMAX [eV]")

	for _, name := range args {
		cfg := config.GetPreset(name)
		if cfg == nil {
			fmt.Fprintf(w, "%s\terror: unknown preset\n", name)
			continue
		}

		sources, err := cfg.BuildSources()
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		eng := engine.New(seed)
		batch, err := eng.Run(context.Background(), sources, particles)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		s := stats.Summarize(batch.Energies())
		fmt.Fprintf(w, "%s\t%d\t%.4g\t%.4g\t%.4g\t%.4g\n",
			name, len(sources), s.Mean, s.StdDev, s.Min, s.Max)
	}

	return w.Flush()
}

func runDose(cmd *cobra.Command, args []string) error {
	sv, err := dose.Estimate(doseParticles, doseDistance, doseEnergy)
	if err != nil {
		return err
	}
	fmt.Printf("%.4g particles of %.4g eV at %.4g cm\n", doseParticles, doseEnergy, doseDistance)
	fmt.Printf("dose: %.4g Sv (%.4g mSv)\n", sv, sv*1e3)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	particles, err := st.LoadParticles(args[0])
	if err != nil {
		return err
	}
	if len(particles) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "z", "u", "v", "w", "energy", "source"}); err != nil {
		return err
	}
	for _, p := range particles {
		row := []string{
			fmt.Sprintf("%.6f", p.Position.X),
			fmt.Sprintf("%.6f", p.Position.Y),
			fmt.Sprintf("%.6f", p.Position.Z),
			fmt.Sprintf("%.6f", p.Direction.U),
			fmt.Sprintf("%.6f", p.Direction.V),
			fmt.Sprintf("%.6f", p.Direction.W),
			fmt.Sprintf("%g", p.Energy),
			fmt.Sprintf("%d", p.SourceIdx),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return st.ExportJSON(args[0], enc)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	sources, err := cfg.BuildSources()
	if err != nil {
		return err
	}

	m := tui.NewModel(cfg.Source.Name, sources, cfg.Seed)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(tui.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func benchPreset(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	sources, err := cfg.BuildSources()
	if err != nil {
		return err
	}

	counts := []int{1_000, 10_000, 100_000}

	fmt.Printf("benchmarking %s\n\n", cfg.Source.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tTIME\tPARTICLES/SEC")

	for _, n := range counts {
		eng := engine.New(cfg.Seed)
		start := time.Now()
		batch, err := eng.Run(context.Background(), sources, n)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		rate := float64(len(batch.Particles)) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%v\t%.0f\n", n, elapsed, rate)
	}

	return w.Flush()
}
