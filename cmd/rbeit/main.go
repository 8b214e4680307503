package main

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/rbeit/internal/atom"
	"github.com/san-kum/rbeit/internal/batch"
	"github.com/san-kum/rbeit/internal/config"
	"github.com/san-kum/rbeit/internal/export"
	"github.com/san-kum/rbeit/internal/logging"
	"github.com/san-kum/rbeit/internal/spectra"
	"github.com/san-kum/rbeit/internal/sweep"
	"github.com/san-kum/rbeit/internal/viz"
)

const twoPiMHz = 2 * math.Pi * 1e6

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string

	isotope        string
	pumpRabi       float64
	pumpDetuning   float64
	probeRabi      float64
	probeDetuning  float64
	groundDeph     float64
	opticalDeph    float64
	density        float64
	length         float64
	pumpIntensity  float64
	probeIntensity float64

	parameter string
	minMHz    float64
	maxMHz    float64
	points    int
	secondary string
	secMinMHz float64
	secMaxMHz float64
	secPoints int
	workers   int

	observable string
	analytic   bool
	runName    string
	output     string
	format     string
	svgSeries  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rbeit",
		Short: "rubidium double-lambda EIT and four-wave-mixing calculator",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rbeit", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "compute and plot probe spectra",
		RunE:  runSpectrum,
	}
	addPhysicsFlags(spectrumCmd)
	addScanFlags(spectrumCmd)
	spectrumCmd.Flags().StringVar(&observable, "observable", "all",
		"absorption|dispersion|susceptibility|chi3|intensity|all")
	spectrumCmd.Flags().BoolVar(&analytic, "analytic", false, "also plot the analytic EIT curve")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a parameter sweep and store the result",
		RunE:  runSweep,
	}
	addPhysicsFlags(sweepCmd)
	addScanFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&parameter, "parameter", sweep.ParamProbeDetuning, "swept parameter")
	sweepCmd.Flags().StringVar(&secondary, "secondary", "", "secondary swept parameter (2D)")
	sweepCmd.Flags().Float64Var(&secMinMHz, "sec-min", 0, "secondary minimum (MHz)")
	sweepCmd.Flags().Float64Var(&secMaxMHz, "sec-max", 0, "secondary maximum (MHz)")
	sweepCmd.Flags().IntVar(&secPoints, "sec-points", 0, "secondary points")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	sweepCmd.Flags().StringVar(&runName, "name", "", "run name (default: swept parameter)")
	sweepCmd.Flags().StringVar(&output, "out", "", "also export to a file")
	sweepCmd.Flags().StringVar(&format, "format", "", "export format: csv|json (default by extension)")

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "run a scripted sequence of sweeps from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&output, "out", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&format, "format", "", "csv|json|svg (default by extension)")
	exportCmd.Flags().StringVar(&svgSeries, "series", "chi3", "svg series: chi3|intensity")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	levelsCmd := &cobra.Command{
		Use:   "levels [isotope]",
		Short: "show the hyperfine structure of an isotope",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLevels,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive spectrum explorer",
		RunE:  runLive,
	}
	addPhysicsFlags(liveCmd)
	addScanFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [isotope]",
		Short: "list preset configurations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPresets,
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "check a configuration and solve one steady state",
		RunE:  runValidate,
	}
	addPhysicsFlags(validateCmd)
	addScanFlags(validateCmd)

	rootCmd.AddCommand(spectrumCmd, sweepCmd, batchCmd, exportCmd, listCmd, levelsCmd, liveCmd, presetsCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPhysicsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&isotope, "isotope", config.DefaultIsotope, "isotope (Rb87 or Rb85)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset configuration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&pumpRabi, "pump-rabi", config.DefaultPumpRabiMHz, "pump Rabi frequency (MHz)")
	cmd.Flags().Float64Var(&pumpDetuning, "pump-detuning", 0, "pump detuning (MHz)")
	cmd.Flags().Float64Var(&probeRabi, "probe-rabi", config.DefaultProbeRabiMHz, "probe Rabi frequency (MHz)")
	cmd.Flags().Float64Var(&probeDetuning, "probe-detuning", 0, "probe detuning (MHz)")
	cmd.Flags().Float64Var(&groundDeph, "ground-dephasing", config.DefaultGroundMHz, "ground coherence dephasing (MHz)")
	cmd.Flags().Float64Var(&opticalDeph, "optical-dephasing", 0, "extra optical dephasing (MHz)")
	cmd.Flags().Float64Var(&density, "density", spectra.DefaultNumberDensity, "number density (atoms/m^3)")
	cmd.Flags().Float64Var(&length, "length", spectra.DefaultInteractionLength, "interaction length (m)")
	cmd.Flags().Float64Var(&pumpIntensity, "pump-intensity", spectra.DefaultPumpIntensity, "pump intensity (W/m^2)")
	cmd.Flags().Float64Var(&probeIntensity, "probe-intensity", spectra.DefaultProbeIntensity, "probe intensity (W/m^2)")
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&minMHz, "min", config.DefaultSweepMinMHz, "scan minimum (MHz)")
	cmd.Flags().Float64Var(&maxMHz, "max", config.DefaultSweepMaxMHz, "scan maximum (MHz)")
	cmd.Flags().IntVar(&points, "points", config.DefaultSweepPoints, "scan points")
}

// buildConfig layers the preset, the config file and the changed flags
// over the defaults, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		key := strings.ToLower(isotope)
		p := config.GetPreset(key, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for %s (available: %v)",
				preset, isotope, config.ListPresets(key))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("isotope") {
		cfg.Isotope = isotope
	}
	if flags.Changed("pump-rabi") {
		cfg.Pump.RabiMHz = pumpRabi
	}
	if flags.Changed("pump-detuning") {
		cfg.Pump.DetuningMHz = pumpDetuning
	}
	if flags.Changed("probe-rabi") {
		cfg.Probe.RabiMHz = probeRabi
	}
	if flags.Changed("probe-detuning") {
		cfg.Probe.DetuningMHz = probeDetuning
	}
	if flags.Changed("ground-dephasing") {
		cfg.Dephasing.GroundMHz = groundDeph
	}
	if flags.Changed("optical-dephasing") {
		cfg.Dephasing.OpticalMHz = opticalDeph
	}
	if flags.Changed("density") {
		cfg.Medium.NumberDensity = density
	}
	if flags.Changed("length") {
		cfg.Medium.InteractionLength = length
	}
	if flags.Changed("pump-intensity") {
		cfg.Beams.PumpIntensity = pumpIntensity
	}
	if flags.Changed("probe-intensity") {
		cfg.Beams.ProbeIntensity = probeIntensity
	}
	if flags.Changed("parameter") {
		cfg.Sweep.Parameter = parameter
	}
	if flags.Changed("min") {
		cfg.Sweep.MinMHz = minMHz
	}
	if flags.Changed("max") {
		cfg.Sweep.MaxMHz = maxMHz
	}
	if flags.Changed("points") {
		cfg.Sweep.Points = points
	}
	if flags.Changed("secondary") {
		cfg.Sweep.SecondaryParameter = secondary
	}
	if flags.Changed("sec-min") {
		cfg.Sweep.SecondaryMinMHz = secMinMHz
	}
	if flags.Changed("sec-max") {
		cfg.Sweep.SecondaryMaxMHz = secMaxMHz
	}
	if flags.Changed("sec-points") {
		cfg.Sweep.SecondaryPoints = secPoints
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Root().PersistentFlags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func scanDetunings(cfg *config.Config) []float64 {
	return sweep.Linspace(config.RadPerSec(cfg.Sweep.MinMHz),
		config.RadPerSec(cfg.Sweep.MaxMHz), cfg.Sweep.Points)
}

func printChart(values []float64, name string, detunings []float64) {
	chart := viz.Spectrum(values, 80, 10,
		viz.DetuningCaption(name, detunings[0], detunings[len(detunings)-1]))
	fmt.Println(chart)
	fmt.Println()
}

func peak(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func printWindow(detunings, absorption []float64) {
	w, ok := spectra.FindWindow(detunings, absorption)
	if !ok {
		return
	}
	fmt.Printf("transparency window: %.2f MHz wide at %+.2f MHz, contrast %.0f%%\n",
		w.Width/twoPiMHz, w.Center/twoPiMHz, 100*w.Contrast)
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New("spectrum", cfg.LogLevel)

	calc, err := cfg.Calculator()
	if err != nil {
		return err
	}
	detunings := scanDetunings(cfg)
	if len(detunings) < 2 {
		return fmt.Errorf("need at least two scan points")
	}

	start := time.Now()
	switch observable {
	case "absorption", "dispersion", "susceptibility":
		ab, di, err := calc.Susceptibility(detunings)
		if err != nil {
			return err
		}
		switch observable {
		case "absorption":
			printChart(ab, "absorption", detunings)
			printWindow(detunings, ab)
		case "dispersion":
			printChart(di, "dispersion", detunings)
		default:
			fmt.Println(viz.SusceptibilityPlot(ab, di, 80, 10))
			fmt.Println()
			printWindow(detunings, ab)
		}

	case "chi3":
		chi3, err := calc.Chi3Spectrum(detunings)
		if err != nil {
			return err
		}
		mags := make([]float64, len(chi3))
		for i, c := range chi3 {
			mags[i] = cmplx.Abs(c)
		}
		printChart(mags, "|chi3|", detunings)
		i := peak(mags)
		fmt.Printf("peak |chi3| %.3e at %.2f MHz\n", mags[i], detunings[i]/twoPiMHz)

	case "intensity":
		vals, err := calc.IntensitySpectrum(detunings)
		if err != nil {
			return err
		}
		printChart(vals, "fwm intensity", detunings)
		i := peak(vals)
		fmt.Printf("peak intensity %.3e at %.2f MHz\n", vals[i], detunings[i]/twoPiMHz)

	case "all":
		ab, di, err := calc.Susceptibility(detunings)
		if err != nil {
			return err
		}
		chi3, err := calc.Chi3Spectrum(detunings)
		if err != nil {
			return err
		}
		intens, err := calc.IntensitySpectrum(detunings)
		if err != nil {
			return err
		}
		mags := make([]float64, len(chi3))
		for i, c := range chi3 {
			mags[i] = cmplx.Abs(c)
		}

		printChart(ab, "absorption", detunings)
		printChart(di, "dispersion", detunings)
		printChart(mags, "|chi3|", detunings)
		printChart(intens, "fwm intensity", detunings)

		printWindow(detunings, ab)
		i := peak(mags)
		fmt.Printf("peak |chi3| %.3e at %.2f MHz\n", mags[i], detunings[i]/twoPiMHz)
		j := peak(intens)
		fmt.Printf("peak intensity %.3e at %.2f MHz\n", intens[j], detunings[j]/twoPiMHz)

	default:
		return fmt.Errorf("unknown observable: %s", observable)
	}

	if analytic {
		eit := spectra.NewAnalyticEIT(calc.System)
		vals := make([]float64, len(detunings))
		for i, c := range eit.Scan(detunings) {
			vals[i] = spectra.Absorption(c)
		}
		printChart(vals, "analytic EIT absorption", detunings)
	}

	log.Debug().Int("points", len(detunings)).
		Dur("elapsed", time.Since(start)).Msg("scan complete")
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New("sweep", cfg.LogLevel)

	calc, err := cfg.Calculator()
	if err != nil {
		return err
	}
	axis, err := cfg.Axis()
	if err != nil {
		return err
	}
	axis2, ok, err := cfg.SecondaryAxis()
	if err != nil {
		return err
	}

	runner := sweep.NewRunner(calc)
	runner.Workers = cfg.Workers
	runner.Log = log

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	var res *sweep.Result
	if ok {
		log.Info().Str("parameter", axis.Name).Str("secondary", axis2.Name).
			Int("points", len(axis.Values)*len(axis2.Values)).Msg("starting 2D sweep")
		res, err = runner.Run2D(ctx, axis, axis2)
	} else {
		log.Info().Str("parameter", axis.Name).
			Int("points", len(axis.Values)).Msg("starting sweep")
		res, err = runner.Run(ctx, axis, nil)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := export.NewStore(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	name := runName
	if name == "" {
		name = axis.Name
	}
	id, err := st.Save(name, res)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", id)
	fmt.Printf("points: %d\n", res.Points())

	if output != "" {
		if err := writeResult(output, format, res); err != nil {
			return err
		}
		fmt.Printf("exported: %s\n", output)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := batch.Load(args[0])
	if err != nil {
		return err
	}
	log := logging.New("batch", logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := &batch.Runner{Store: export.NewStore(dataDir), Log: log}
	start := time.Now()
	ids, runErr := r.Run(ctx, b)
	for _, id := range ids {
		fmt.Printf("saved: %s\n", id)
	}
	if runErr != nil {
		return runErr
	}
	fmt.Printf("%d jobs completed in %v\n", len(ids), time.Since(start))
	return nil
}

func writeResult(path, format string, res *sweep.Result) error {
	f := format
	if f == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			f = "json"
		default:
			f = "csv"
		}
	}
	switch f {
	case "csv":
		return export.WriteCSVFile(path, res, true)
	case "json":
		return export.WriteJSONFile(path, res)
	default:
		return fmt.Errorf("unknown format: %s", f)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	st := export.NewStore(dataDir)
	res, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	f := format
	if f == "" && output != "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".json":
			f = "json"
		case ".svg":
			f = "svg"
		default:
			f = "csv"
		}
	}

	if output == "" {
		switch f {
		case "", "csv":
			return export.WriteCSV(os.Stdout, res, true)
		case "json":
			return export.WriteJSON(os.Stdout, res)
		default:
			return fmt.Errorf("format %s needs --out", f)
		}
	}

	if f == "svg" {
		if res.Is2D() {
			return fmt.Errorf("svg export supports 1D runs only")
		}
		vals := make([]float64, res.Points())
		switch svgSeries {
		case "chi3":
			for i, c := range res.Chi3 {
				vals[i] = cmplx.Abs(c)
			}
		case "intensity":
			copy(vals, res.Intensity)
		default:
			return fmt.Errorf("unknown svg series: %s", svgSeries)
		}
		svg := export.SpectrumToSVG(res.ParamValues, vals, 800, 400, "#00ff88")
		if svg == "" {
			return fmt.Errorf("not enough points for an svg plot")
		}
		if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
			return err
		}
		return os.WriteFile(output, []byte(svg), 0644)
	}
	return writeResult(output, f, res)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := export.NewStore(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPARAMETER\tSECONDARY\tPOINTS\tTIME")
	for _, run := range runs {
		sec := run.Secondary
		if sec == "" {
			sec = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.ID, run.Parameter, sec, run.Points,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func runLevels(cmd *cobra.Command, args []string) error {
	name := config.DefaultIsotope
	if len(args) > 0 {
		name = args[0]
	}
	sys, err := atom.NewSystem(name)
	if err != nil {
		return err
	}

	fmt.Printf("%s  (I=%.1f)\n\n", sys.Name, sys.NuclearSpin)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tF\tENERGY/h (GHz)")
	for _, l := range sys.Levels() {
		fmt.Fprintf(w, "%s\t%.1f\t%.4f\n", l.Label, l.F, l.Energy/atom.Planck/1e9)
	}
	w.Flush()

	fmt.Println("\ntransitions:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LOWER\tUPPER\tFREQ (THz)\tDIPOLE (C m)")
	for _, t := range sys.Transitions {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.3e\n",
			t.Lower.Label, t.Upper.Label, t.Frequency/(2*math.Pi*1e12), t.Dipole)
	}
	w.Flush()

	fmt.Println("\ndecay channels:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UPPER\tLOWER\tRATE/2pi (MHz)\tBRANCHING")
	for _, c := range sys.DecayChannels {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\n",
			c.Upper.Label, c.Lower.Label, c.Rate/twoPiMHz, c.Branching)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	calc, err := cfg.Calculator()
	if err != nil {
		return err
	}
	return viz.RunExplorer(calc, scanDetunings(cfg))
}

func runPresets(cmd *cobra.Command, args []string) error {
	var isotopes []string
	if len(args) > 0 {
		isotopes = []string{strings.ToLower(args[0])}
	} else {
		for iso := range config.Presets {
			isotopes = append(isotopes, iso)
		}
		sort.Strings(isotopes)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ISOTOPE\tPRESET\tPARAMETER\tRANGE (MHz)\tPOINTS")
	found := false
	for _, iso := range isotopes {
		names := config.ListPresets(iso)
		sort.Strings(names)
		for _, n := range names {
			p := config.GetPreset(iso, n)
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f to %.1f\t%d\n",
				iso, n, p.Sweep.Parameter, p.Sweep.MinMHz, p.Sweep.MaxMHz, p.Sweep.Points)
			found = true
		}
	}
	if !found {
		fmt.Printf("no presets for isotope: %s\n", args[0])
		return nil
	}
	return w.Flush()
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	calc, err := cfg.Calculator()
	if err != nil {
		return err
	}
	axis, err := cfg.Axis()
	if err != nil {
		return err
	}
	if _, _, err := cfg.SecondaryAxis(); err != nil {
		return err
	}

	base, err := calc.BaseParams()
	if err != nil {
		return err
	}
	pt, err := calc.At(base)
	if err != nil {
		return err
	}

	sys := calc.System
	total := sys.ExcitedDecayRate()
	r1, r2 := sys.BranchingRates()

	fmt.Println("configuration ok")
	fmt.Printf("system: %s\n", sys)
	fmt.Printf("pump: %.4g MHz rabi, %.4g MHz detuning\n", cfg.Pump.RabiMHz, cfg.Pump.DetuningMHz)
	fmt.Printf("probe: %.4g MHz rabi, %.4g MHz detuning\n", cfg.Probe.RabiMHz, cfg.Probe.DetuningMHz)
	fmt.Printf("two-photon detuning: %.4g MHz\n", sys.TwoPhotonDetuning()/twoPiMHz)
	fmt.Printf("excited decay: %.4g MHz (branching %.3f / %.3f)\n",
		total/twoPiMHz, r1/total, r2/total)
	fmt.Printf("sweep: %s, %d points\n", axis.Name, len(axis.Values))
	if pt.Report.Converged {
		fmt.Printf("steady state: converged in %d iterations (residual %.2e)\n",
			pt.Report.Iterations, pt.Report.ResidualNorm)
	} else {
		fmt.Printf("steady state: did not converge (residual %.2e)\n", pt.Report.ResidualNorm)
	}
	return nil
}
