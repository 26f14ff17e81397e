package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/qwave/internal/config"
	"github.com/san-kum/qwave/internal/experiment"
	"github.com/san-kum/qwave/internal/export"
	"github.com/san-kum/qwave/internal/observe"
	"github.com/san-kum/qwave/internal/storage"
	"github.com/san-kum/qwave/internal/sweep"
	"github.com/san-kum/qwave/internal/transmission"
	"github.com/san-kum/qwave/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	xMin, xMax float64
	gridN      int
	mass       float64

	width, depth, height, omega, wallHeight float64

	numStates int

	dt          float64
	steps       int
	scheme      string
	absorbWidth float64

	packetCenter   float64
	packetWidth    float64
	packetMomentum float64

	sweepMomenta []float64

	showStates int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qwave",
		Short: "1d schrodinger simulation lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qwave", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [potential]",
		Short: "solve for stationary states",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addScenarioFlags(solveCmd)
	solveCmd.Flags().IntVar(&numStates, "states", config.DefaultNumStates, "number of eigenstates")

	evolveCmd := &cobra.Command{
		Use:   "evolve [potential]",
		Short: "propagate a gaussian wavepacket",
		Args:  cobra.ExactArgs(1),
		RunE:  runEvolve,
	}
	addScenarioFlags(evolveCmd)
	addDynamicFlags(evolveCmd)

	transmitCmd := &cobra.Command{
		Use:   "transmit",
		Short: "compare wkb and numerical barrier transmission",
		RunE:  runTransmit,
	}
	addScenarioFlags(transmitCmd)
	addDynamicFlags(transmitCmd)
	transmitCmd.Flags().Float64SliceVar(&sweepMomenta, "sweep", nil, "run one propagation per momentum and tabulate T(E)")

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
	plotCmd.Flags().IntVar(&showStates, "states", 3, "eigenstates to plot (stationary runs)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata to json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run curves to svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&showStates, "states", 3, "eigenstates to draw (stationary runs)")

	presetsCmd := &cobra.Command{
		Use:   "presets [potential]",
		Short: "list available presets for a potential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for potential: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [potential]",
		Short: "animate a wavepacket in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	addDynamicFlags(liveCmd)

	rootCmd.AddCommand(solveCmd, evolveCmd, transmitCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&xMin, "x-min", config.DefaultXMin, "domain left edge")
	cmd.Flags().Float64Var(&xMax, "x-max", config.DefaultXMax, "domain right edge")
	cmd.Flags().IntVar(&gridN, "n", config.DefaultN, "grid points")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "particle mass")
	cmd.Flags().Float64Var(&width, "width", 2.0, "well/barrier width")
	cmd.Flags().Float64Var(&depth, "depth", 10.0, "finite well depth")
	cmd.Flags().Float64Var(&height, "height", 5.0, "barrier height")
	cmd.Flags().Float64Var(&omega, "omega", 1.0, "oscillator frequency")
	cmd.Flags().Float64Var(&wallHeight, "wall", 0, "infinite well sentinel (0 = default)")
}

func addDynamicFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "propagation steps")
	cmd.Flags().StringVar(&scheme, "scheme", "crank-nicolson", "propagation scheme")
	cmd.Flags().Float64Var(&absorbWidth, "absorb", 0, "absorbing edge width (x units, 0 = off)")
	cmd.Flags().Float64Var(&packetCenter, "center", -5.0, "packet center")
	cmd.Flags().Float64Var(&packetWidth, "packet-width", 1.0, "packet width")
	cmd.Flags().Float64Var(&packetMomentum, "momentum", 2.0, "packet central momentum")
}

// buildConfig merges preset, config file, and explicit flags, in that
// order of increasing precedence. Flags the user set always win.
func buildConfig(cmd *cobra.Command, pot string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(pot, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(pot))
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
	}
	if pot != "" {
		cfg.Potential = pot
	}

	set := cmd.Flags().Changed
	if set("x-min") {
		cfg.Grid.XMin = xMin
	}
	if set("x-max") {
		cfg.Grid.XMax = xMax
	}
	if set("n") {
		cfg.Grid.N = gridN
	}
	if set("mass") {
		cfg.Mass = mass
	}
	if set("width") {
		cfg.Params.Width = width
	}
	if set("depth") {
		cfg.Params.Depth = depth
	}
	if set("height") {
		cfg.Params.Height = height
	}
	if set("omega") {
		cfg.Params.Omega = omega
	}
	if set("wall") {
		cfg.Params.WallHeight = wallHeight
	}
	if set("dt") {
		cfg.Dt = dt
	}
	if set("steps") {
		cfg.Steps = steps
	}
	if set("scheme") {
		cfg.Scheme = scheme
	}
	if set("absorb") {
		cfg.Absorb = absorbWidth
	}
	if set("center") {
		cfg.Packet.Center = packetCenter
	}
	if set("packet-width") {
		cfg.Packet.Width = packetWidth
	}
	if set("momentum") {
		cfg.Packet.Momentum = packetMomentum
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	cfg.Mode = "stationary"
	if cmd.Flags().Changed("states") || cfg.NumStates == 0 {
		cfg.NumStates = numStates
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("solving %s for %d states...\n", cfg.Potential, cfg.NumStates)
	start := time.Now()
	set, err := exp.Solve()
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tENERGY")
	for i, e := range set.Energies() {
		fmt.Fprintf(w, "%d\t%.6f\n", i, e)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveStationary(cfg, set)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runEvolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	cfg.Mode = "dynamic"

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("propagating %s packet for %d steps (dt=%.4g, %s)...\n",
		cfg.Potential, cfg.Steps, cfg.Dt, cfg.Scheme)
	start := time.Now()
	traj, err := exp.Evolve()
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", time.Since(start))

	final := traj.Final()
	metrics := map[string]float64{
		"norm":   observe.Norm(exp.Grid, final),
		"mean_x": observe.MeanPosition(exp.Grid, final),
	}

	if _, _, ok := exp.BarrierRegion(); ok {
		res, err := exp.Transmission(traj)
		if err != nil {
			return err
		}
		metrics["T"] = res.T
		metrics["R"] = res.R
		metrics["sum"] = res.Sum
		fmt.Printf("transmission: T=%.4f R=%.4f T+R=%.4f\n", res.T, res.R, res.Sum)
		for _, warn := range res.Warnings {
			fmt.Printf("warning: %s\n", warn)
		}
	}
	for _, warn := range traj.Warnings {
		fmt.Printf("warning: %s\n", warn)
	}

	fmt.Println()
	fmt.Println(viz.PlotDensity(final, fmt.Sprintf("|psi|^2 at t=%.3f", final.Time)))

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveEvolution(cfg, traj, metrics)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func runTransmit(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, "barrier")
	if err != nil {
		return err
	}
	cfg.Mode = "dynamic"

	if len(sweepMomenta) > 0 {
		return runSweep(cfg)
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	psi0, err := exp.Packet()
	if err != nil {
		return err
	}
	energy := observe.Energy(exp.H, psi0)

	wkb, err := transmission.EstimateWKB(exp.Potential, cfg.Mass, energy)
	if err != nil {
		return err
	}

	fmt.Printf("barrier height=%.3g width=%.3g, packet mean energy=%.4f\n\n",
		cfg.Params.Height, cfg.Params.Width, energy)
	fmt.Printf("propagating for numerical estimate (%d steps)...\n", cfg.Steps)
	traj, err := exp.Evolve()
	if err != nil {
		return err
	}
	res, err := exp.Transmission(traj)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tT\tR\tT+R")
	fmt.Fprintf(w, "wkb\t%.4f\t-\t-\n", wkb)
	fmt.Fprintf(w, "numerical\t%.4f\t%.4f\t%.4f\n", res.T, res.R, res.Sum)
	if err := w.Flush(); err != nil {
		return err
	}
	// WKB is a one-sided estimate that lowballs T for thin barriers.
	for _, warn := range res.Warnings {
		fmt.Printf("warning: %s\n", warn)
	}
	for _, warn := range traj.Warnings {
		fmt.Printf("warning: %s\n", warn)
	}
	return nil
}

func runSweep(cfg *config.Config) error {
	fmt.Printf("sweeping %d momenta against %s barrier (height=%.3g width=%.3g)...\n",
		len(sweepMomenta), cfg.Potential, cfg.Params.Height, cfg.Params.Width)
	start := time.Now()
	points, err := sweep.Transmission(context.Background(), cfg, sweepMomenta)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MOMENTUM\tENERGY\tWKB\tT\tR\tT+R")
	for _, p := range points {
		fmt.Fprintf(w, "%.3f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n", p.Momentum, p.Energy, p.WKB, p.T, p.R, p.Sum)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tPOTENTIAL\tMODE\tTIME\tN\tSTATES/STEPS")
	for _, run := range runs {
		detail := strconv.Itoa(run.NumStates)
		if run.Mode == "dynamic" {
			detail = strconv.Itoa(run.Steps)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID, run.Potential, run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"), run.N, detail)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, rows, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s (%s, %s)\n\n", meta.ID, meta.Potential, meta.Mode)

	if meta.Mode == "dynamic" {
		final := rows[len(rows)-1]
		fmt.Println(viz.PlotSeries(final, "final |psi|^2"))
		return nil
	}

	count := showStates
	if count > len(rows[0]) {
		count = len(rows[0])
	}
	for s := 0; s < count; s++ {
		col := make([]float64, len(rows))
		for i := range rows {
			col[i] = rows[i][s]
		}
		caption := fmt.Sprintf("psi%d", s)
		if s < len(meta.Energies) {
			caption = fmt.Sprintf("psi%d  (E=%.4f)", s, meta.Energies[s])
		}
		fmt.Println(viz.PlotSeries(col, caption))
		fmt.Println()
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	keys, rows, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	for i, row := range rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.FormatFloat(keys[i], 'g', 10, 64))
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', 10, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	keys, rows, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	if meta.Mode == "dynamic" {
		// Density rows are sampled against the grid, not the t column.
		final := rows[len(rows)-1]
		xs := make([]float64, len(final))
		dx := (meta.XMax - meta.XMin) / float64(len(final)-1)
		for i := range xs {
			xs[i] = meta.XMin + float64(i)*dx
		}
		fmt.Println(export.SeriesToSVG(xs, final, 800, 400, ""))
		return nil
	}

	count := showStates
	if count > len(rows[0]) {
		count = len(rows[0])
	}
	palette := []string{"#00ff00", "#00c8ff", "#ff6400", "#ff00c8", "#ffff00"}
	curves := make([]export.Curve, 0, count)
	for s := 0; s < count; s++ {
		ys := make([]float64, len(rows))
		for i := range rows {
			ys[i] = rows[i][s]
		}
		curves = append(curves, export.Curve{Ys: ys, Color: palette[s%len(palette)]})
	}
	fmt.Println(export.CurvesToSVG(keys, curves, 800, 400))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	cfg.Mode = "dynamic"

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}
	m, err := viz.NewLiveModel(exp)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
