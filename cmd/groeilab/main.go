package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/groeilab/internal/config"
	"github.com/san-kum/groeilab/internal/demo"
	"github.com/san-kum/groeilab/internal/export"
	"github.com/san-kum/groeilab/internal/format"
	"github.com/san-kum/groeilab/internal/growth"
	"github.com/san-kum/groeilab/internal/layout"
	"github.com/san-kum/groeilab/internal/storage"
	"github.com/san-kum/groeilab/internal/table"
	"github.com/san-kum/groeilab/internal/viz"
)

var (
	dataDir     string
	start       int
	k           int
	generations int
	frameMs     int
	logScale    bool
	configFile  string
	preset      string
	// export-svg
	generation int
	outFile    string
	svgSize    int
	curve      bool
	// sweep
	kMin int
	kMax int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "groeilab",
		Short: "classroom demos for exponential growth",
		Run: func(cmd *cobra.Command, args []string) {
			if err := viz.RunInteractive(); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".groeilab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "simulate a demo and store the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemo,
	}
	addParamFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [demo]",
		Short: "run a demo with the live view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addParamFlags(liveCmd)

	tableCmd := &cobra.Command{
		Use:   "table [demo]",
		Short: "print the generation table",
		Args:  cobra.ExactArgs(1),
		RunE:  printTable,
	}
	addParamFlags(tableCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().BoolVar(&logScale, "log", false, "log10 scale")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [demo]",
		Short: "render a generation as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	addParamFlags(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&generation, "generation", -1, "generation to render (default: last that fits)")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default: stdout)")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 640, "image size in pixels")
	exportSVGCmd.Flags().BoolVar(&curve, "curve", false, "render the growth curve instead of tiles")

	sweepCmd := &cobra.Command{
		Use:   "sweep [demo]",
		Short: "compare final counts across k values",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepK,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&kMin, "k-min", 1, "lowest k")
	sweepCmd.Flags().IntVar(&kMax, "k-max", 6, "highest k")

	presetsCmd := &cobra.Command{
		Use:   "presets [demo]",
		Short: "list presets for a demo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for demo: %s\n", args[0])
				return nil
			}
			sort.Strings(names)
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				p := config.GetPreset(args[0], name)
				fmt.Printf("  %-12s start=%d k=%d generations=%d\n",
					name, p.Start, p.K, p.Generations)
			}
			return nil
		},
	}

	demosCmd := &cobra.Command{
		Use:   "demos",
		Short: "list available demos",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLOCALE\tMODE\tDESCRIPTION")
			for _, d := range demo.List() {
				mode := "animate"
				if d.Mode == demo.ModePaginate {
					mode = "paginate"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name, d.Locale.Tag, mode, d.Description)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, tableCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, sweepCmd, presetsCmd, demosCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&start, "start", config.DefaultStart, "starting count")
	cmd.Flags().IntVar(&k, "k", config.DefaultK, "children per parent")
	cmd.Flags().IntVar(&generations, "generations", config.DefaultGenerations, "number of generations")
	cmd.Flags().IntVar(&frameMs, "frame-ms", config.DefaultFrameMs, "animation interval in ms")
	cmd.Flags().BoolVar(&logScale, "log", true, "log10 scale for the curve")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset configuration")
}

// resolveParams layers parameter sources: demo defaults, then preset, then
// config file, then explicit flags.
func resolveParams(cmd *cobra.Command, d demo.Demo) (growth.Params, int, error) {
	p := d.Defaults
	ms := d.FrameMs
	if ms == 0 {
		ms = config.DefaultFrameMs
	}

	if preset != "" {
		pc := config.GetPreset(d.Name, preset)
		if pc == nil {
			return growth.Params{}, 0, fmt.Errorf("unknown preset %q for demo %s", preset, d.Name)
		}
		p = pc.Params()
		if pc.FrameMs > 0 {
			ms = pc.ClampFrameMs()
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return growth.Params{}, 0, err
		}
		p = cfg.Params()
		ms = cfg.ClampFrameMs()
	}

	if cmd.Flags().Changed("start") {
		p.Start = start
	}
	if cmd.Flags().Changed("k") {
		p.K = k
	}
	if cmd.Flags().Changed("generations") {
		p.Generations = generations
	}
	if cmd.Flags().Changed("frame-ms") {
		ms = frameMs
	}

	return p, ms, nil
}

func simulateDemo(cmd *cobra.Command, name string) (demo.Demo, *growth.Series, int, error) {
	d, err := demo.Get(name)
	if err != nil {
		return demo.Demo{}, nil, 0, err
	}

	p, ms, err := resolveParams(cmd, d)
	if err != nil {
		return demo.Demo{}, nil, 0, err
	}

	series, err := growth.Simulate(p)
	if err != nil {
		return demo.Demo{}, nil, 0, err
	}
	return d, series, ms, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	d, series, _, err := simulateDemo(cmd, args[0])
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(d.Name, series)
	if err != nil {
		return err
	}

	p := series.Params
	fmt.Printf("demo: %s (%s)\n", d.Name, d.Title)
	fmt.Printf("params: start=%d k=%d factor=%d generations=%d\n",
		p.Start, p.K, p.Factor(), p.Generations)
	fmt.Printf("final: %s (%s)\n",
		format.Exact(series.Last(), d.Locale), format.Abbrev(series.Last(), d.Locale))
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	d, series, ms, err := simulateDemo(cmd, args[0])
	if err != nil {
		return err
	}

	m := viz.NewModel(d, series, ms, logScale)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func printTable(cmd *cobra.Command, args []string) error {
	d, series, _, err := simulateDemo(cmd, args[0])
	if err != nil {
		return err
	}
	return table.Render(os.Stdout, series, d.Locale)
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDEMO\tSTART\tFACTOR\tGENERATIONS\tFINAL\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.ID, r.Demo, r.Start, r.Factor, r.Generations, r.Final,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	series, err := store.LoadSeries(args[0])
	if err != nil {
		return err
	}

	data := make([]float64, len(series.Counts))
	for i, c := range series.Counts {
		v := float64(c)
		if logScale {
			v = math.Log10(v)
		}
		data[i] = v
	}

	caption := fmt.Sprintf("%s: count per generation", meta.Demo)
	if logScale {
		caption += " (log10)"
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	series, err := store.LoadSeries(args[0])
	if err != nil {
		return err
	}

	loc := localeForRun(meta)
	data, err := table.CSV(series, loc)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func exportJSON(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	series, err := store.LoadSeries(args[0])
	if err != nil {
		return err
	}

	return export.JSON(os.Stdout, *meta, series, localeForRun(meta))
}

func exportSVG(cmd *cobra.Command, args []string) error {
	d, series, _, err := simulateDemo(cmd, args[0])
	if err != nil {
		return err
	}

	var svg string
	if curve {
		svg = export.CurveSVG(series.Counts, svgSize, svgSize*9/16, logScale)
	} else {
		g := generation
		if g < 0 {
			g = layout.LastWithinBudget(series.Counts)
			if g < 0 {
				return layout.ErrBudget
			}
		}
		parents, children, arrows, err := layout.ForGeneration(
			series.Counts, g, series.Params.Factor())
		if err != nil {
			return err
		}
		svg = export.LayoutSVG(parents, children, arrows, d.Shape == demo.ShapeCircle, svgSize)
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}

func sweepK(cmd *cobra.Command, args []string) error {
	d, err := demo.Get(args[0])
	if err != nil {
		return err
	}
	p, _, err := resolveParams(cmd, d)
	if err != nil {
		return err
	}

	if kMin < 1 || kMax < kMin {
		return fmt.Errorf("invalid k range [%d, %d]", kMin, kMax)
	}
	ks := make([]int, 0, kMax-kMin+1)
	for v := kMin; v <= kMax; v++ {
		ks = append(ks, v)
	}

	results, err := growth.Sweep(context.Background(), p, ks)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "K\tFACTOR\tFINAL\tABBREV")
	finals := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%d\t\t%s\t\n", r.K, r.Err)
			continue
		}
		rp := r.Series.Params
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n",
			r.K, rp.Factor(), r.Series.Last(), format.Abbrev(r.Series.Last(), d.Locale))
		finals = append(finals, math.Log10(float64(r.Series.Last())))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(finals) >= 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(finals,
			asciigraph.Height(8),
			asciigraph.Width(50),
			asciigraph.Caption("final count by k (log10)"),
		))
	}
	return nil
}

func localeForRun(meta *storage.RunMetadata) format.Locale {
	if d, err := demo.Get(meta.Demo); err == nil {
		return d.Locale
	}
	return format.Dutch
}
