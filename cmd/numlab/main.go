package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/numlab/numlab/internal/config"
	"github.com/numlab/numlab/internal/deriv"
	"github.com/numlab/numlab/internal/fourier"
	"github.com/numlab/numlab/internal/models"
	"github.com/numlab/numlab/internal/ode"
	"github.com/numlab/numlab/internal/roots"
	"github.com/numlab/numlab/internal/storage"
	"github.com/numlab/numlab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	samples    int
	rate       float64
	frequency  float64
	frequency2 float64
	amplitude  float64
	// Root finding
	method     string
	bracketA   float64
	bracketB   float64
	guess      float64
	guess2     float64
	iterations int
	// Integration initial state
	y0    float64
	v0    float64
	theta float64
	omega float64
	// Convolution kernel
	kernelName  string
	kernelWidth int
	// Differentiation
	fivePoint bool
	// Config file and preset
	configFile string
	preset     string
	// Frame rate for live view
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "numerical analysis lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numlab", "data directory")

	transformCmd := &cobra.Command{
		Use:   "transform",
		Short: "Fourier-transform a generated signal",
		RunE:  runTransform,
	}
	transformCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count (power of two)")
	transformCmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "sample rate (hz)")
	transformCmd.Flags().Float64Var(&frequency, "freq", config.DefaultFrequency, "signal frequency (hz)")
	transformCmd.Flags().Float64Var(&frequency2, "freq2", 0, "second signal frequency (hz)")
	transformCmd.Flags().Float64Var(&amplitude, "amp", config.DefaultAmplitude, "signal amplitude")
	transformCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "power spectrum of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	convolveCmd := &cobra.Command{
		Use:   "convolve",
		Short: "convolve a generated signal with a kernel",
		RunE:  runConvolve,
	}
	convolveCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	convolveCmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "sample rate (hz)")
	convolveCmd.Flags().Float64Var(&frequency, "freq", config.DefaultFrequency, "signal frequency (hz)")
	convolveCmd.Flags().Float64Var(&amplitude, "amp", config.DefaultAmplitude, "signal amplitude")
	convolveCmd.Flags().StringVar(&kernelName, "kernel", "box", "kernel: box, impulse")
	convolveCmd.Flags().IntVar(&kernelWidth, "width", 8, "box kernel width")

	rootFindCmd := &cobra.Command{
		Use:   "root [function]",
		Short: "find a root of a named function",
		Args:  cobra.ExactArgs(1),
		RunE:  runRoot,
	}
	rootFindCmd.Flags().StringVar(&method, "method", "bisection", "bisection, linear, newton, secant")
	rootFindCmd.Flags().Float64Var(&bracketA, "a", 1.0, "bracket start")
	rootFindCmd.Flags().Float64Var(&bracketB, "b", 2.0, "bracket end")
	rootFindCmd.Flags().Float64Var(&guess, "guess", 1.5, "initial guess (newton, secant)")
	rootFindCmd.Flags().Float64Var(&guess2, "guess2", 2.0, "second guess (secant)")
	rootFindCmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "iteration budget")

	integrateCmd := &cobra.Command{
		Use:   "integrate [model]",
		Short: "integrate a model with RK4",
		Args:  cobra.ExactArgs(1),
		RunE:  runIntegrate,
	}
	integrateCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	integrateCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	integrateCmd.Flags().Float64Var(&y0, "y", 1.0, "initial value")
	integrateCmd.Flags().Float64Var(&v0, "v", 0.0, "initial velocity")
	integrateCmd.Flags().Float64Var(&theta, "theta", 0.5, "initial angle (pendulum)")
	integrateCmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity (pendulum)")
	integrateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	integrateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	diffCmd := &cobra.Command{
		Use:   "diff [run_id]",
		Short: "differentiate a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  diffRun,
	}
	diffCmd.Flags().BoolVar(&fivePoint, "five-point", false, "use the five-point stencil")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "integrate a model with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().Float64Var(&y0, "y", 1.0, "initial value")
	liveCmd.Flags().Float64Var(&v0, "v", 0.0, "initial velocity")
	liveCmd.Flags().Float64Var(&theta, "theta", 0.5, "initial angle (pendulum)")
	liveCmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity (pendulum)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(transformCmd, analyzeCmd, convolveCmd, rootFindCmd,
		integrateCmd, diffCmd, listCmd, plotCmd, exportCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// makeSignal samples amp*sin(2*pi*f*t) + 0.5*amp*sin(2*pi*f2*t) at the
// configured rate.
func makeSignal(n int, rate, freq, freq2, amp float64) ([]float64, []float64) {
	times := make([]float64, n)
	data := make([]float64, n)
	for i := range data {
		t := float64(i) / rate
		times[i] = t
		data[i] = amp * math.Sin(2*math.Pi*freq*t)
		if freq2 > 0 {
			data[i] += 0.5 * amp * math.Sin(2*math.Pi*freq2*t)
		}
	}
	return data, times
}

func runTransform(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("samples") {
			samples = cfg.Signal.Samples
		}
		if !cmd.Flags().Changed("rate") {
			rate = cfg.Signal.Rate
		}
		if !cmd.Flags().Changed("freq") {
			frequency = cfg.Signal.Frequency
		}
		if !cmd.Flags().Changed("freq2") {
			frequency2 = cfg.Signal.Frequency2
		}
		if !cmd.Flags().Changed("amp") {
			amplitude = cfg.Signal.Amplitude
		}
	}

	data, _ := makeSignal(samples, rate, frequency, frequency2, amplitude)

	coeffs, err := fourier.RealFFT(data)
	if err != nil {
		return err
	}

	// cross-check the recursive transform against the direct sums
	direct := fourier.DFT(fourier.FromReal(data))
	maxDev := 0.0
	for k := range coeffs {
		if d := coeffs[k].Sub(direct[k]).Abs(); d > maxDev {
			maxDev = d
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	freqs := make([]float64, len(coeffs))
	series := make([][]float64, len(coeffs))
	for k, c := range coeffs {
		freqs[k] = float64(k) * rate / float64(samples)
		series[k] = []float64{c.Re, c.Im, c.Abs()}
	}

	params := map[string]float64{
		"rate":      rate,
		"frequency": frequency,
		"amplitude": amplitude,
	}
	runID, err := st.Save("transform", 1/rate, float64(samples)/rate, params, freqs, series)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d, rate: %.1f hz\n", samples, rate)
	fmt.Printf("fft/dft max deviation: %.3g\n\n", maxDev)

	mags := make([]float64, len(coeffs)/2)
	for i := range mags {
		mags[i] = series[i][2]
	}
	graph := asciigraph.Plot(mags,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("spectrum magnitude"),
	)
	fmt.Println(graph)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, _, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 || len(series[0]) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("kind: %s\n\n", meta.Kind)

	data := make([]float64, len(series))
	for i := range series {
		data[i] = series[i][0]
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	ps, err := fourier.PowerSpectrum(padded)
	if err != nil {
		return err
	}

	plotData := ps[:len(ps)/4]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (y0)"),
	)
	fmt.Println(graph)
	fmt.Println()

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(plotData); i++ {
		if plotData[i] > maxPower {
			maxPower = plotData[i]
			maxIdx = i
		}
	}

	if meta.Duration > 0 {
		freq := float64(maxIdx) / meta.Duration
		fmt.Printf("dominant frequency: %.3f hz\n", freq)
		if freq > 0 {
			fmt.Printf("period: %.3f s\n", 1.0/freq)
		}
	}
	return nil
}

func makeKernel(name string, n, width int) ([]float64, error) {
	kernel := make([]float64, n)
	switch name {
	case "impulse":
		kernel[0] = 1
	case "box":
		if width < 1 || width > n {
			return nil, fmt.Errorf("box width %d out of range [1, %d]", width, n)
		}
		for i := 0; i < width; i++ {
			kernel[i] = 1 / float64(width)
		}
	default:
		return nil, fmt.Errorf("unknown kernel: %s", name)
	}
	return kernel, nil
}

func runConvolve(cmd *cobra.Command, args []string) error {
	data, times := makeSignal(samples, rate, frequency, 0, amplitude)

	kernel, err := makeKernel(kernelName, samples, kernelWidth)
	if err != nil {
		return err
	}

	result := fourier.Convolve(data, kernel)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	series := make([][]float64, len(result))
	for i := range result {
		series[i] = []float64{result[i], data[i]}
	}
	params := map[string]float64{
		"rate":      rate,
		"frequency": frequency,
		"width":     float64(kernelWidth),
	}
	runID, err := st.Save("convolve", 1/rate, float64(samples)/rate, params, times, series)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("kernel: %s\n\n", kernelName)

	graph := asciigraph.PlotMany([][]float64{data, result},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("signal and convolution"),
	)
	fmt.Println(graph)
	return nil
}

// demo functions for the root command, with derivatives for newton
var demoFunctions = map[string]struct {
	fn, dfn roots.Func
	desc    string
}{
	"sqrt2": {
		fn:   func(x float64) float64 { return x*x - 2 },
		dfn:  func(x float64) float64 { return 2 * x },
		desc: "x^2 - 2",
	},
	"cubic": {
		fn:   func(x float64) float64 { return x*x*x - x - 2 },
		dfn:  func(x float64) float64 { return 3*x*x - 1 },
		desc: "x^3 - x - 2",
	},
	"cosine": {
		fn:   func(x float64) float64 { return math.Cos(x) - x },
		dfn:  func(x float64) float64 { return -math.Sin(x) - 1 },
		desc: "cos(x) - x",
	},
}

func runRoot(cmd *cobra.Command, args []string) error {
	name := args[0]
	demo, ok := demoFunctions[name]
	if !ok {
		names := make([]string, 0, len(demoFunctions))
		for n := range demoFunctions {
			names = append(names, n)
		}
		return fmt.Errorf("unknown function: %s (available: %s)", name, strings.Join(names, ", "))
	}

	var (
		root float64
		err  error
	)
	switch method {
	case "bisection":
		root, err = roots.Bisect(demo.fn, bracketA, bracketB, iterations)
	case "linear":
		root, err = roots.Linear(demo.fn, bracketA, bracketB, iterations)
	case "newton":
		root, err = roots.Newton(demo.fn, demo.dfn, guess, iterations)
	case "secant":
		root, err = roots.Secant(demo.fn, guess, guess2, iterations)
	default:
		return fmt.Errorf("unknown method: %s", method)
	}
	if err != nil {
		return err
	}

	fmt.Printf("function: %s\n", demo.desc)
	fmt.Printf("method: %s\n", method)
	fmt.Printf("root: %.10f\n", root)
	fmt.Printf("residual: %.3g\n", demo.fn(root))
	return nil
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	modelName := args[0]

	if preset != "" {
		cfg := config.GetPreset(modelName, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(modelName))
		}
		dt = cfg.Dt
		duration = cfg.Duration
		y0 = cfg.InitState.Y
		v0 = cfg.InitState.V
		theta = cfg.InitState.Theta
		omega = cfg.InitState.Omega
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("time") {
			duration = cfg.Duration
		}
		if !cmd.Flags().Changed("y") {
			y0 = cfg.InitState.Y
		}
		if !cmd.Flags().Changed("v") {
			v0 = cfg.InitState.V
		}
		if !cmd.Flags().Changed("theta") {
			theta = cfg.InitState.Theta
		}
		if !cmd.Flags().Changed("omega") {
			omega = cfg.InitState.Omega
		}
	}

	model, err := models.Get(modelName)
	if err != nil {
		return err
	}

	initState := initialState(model)
	steps := int(duration / dt)

	fmt.Printf("integrating %s for %d steps...\n", modelName, steps)
	tr := ode.Integrate(initState, model.Deriv, 0, dt, steps)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	series := make([][]float64, tr.Len())
	for i, x := range tr.States {
		series[i] = []float64(x)
	}
	runID, err := st.Save("integrate", dt, duration, nil, tr.Times, series)
	if err != nil {
		return err
	}

	final := tr.Final()
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("final state: %v\n\n", []float64(final))

	plotSeries(modelName, model.Labels, series)
	return nil
}

func initialState(m models.Model) ode.State {
	switch m.Name {
	case "oscillator":
		return ode.State{y0, v0}
	case "pendulum":
		return ode.State{theta, omega}
	default:
		return ode.State{y0}
	}
}

func diffRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	series, times, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 || len(series[0]) == 0 {
		return fmt.Errorf("no data")
	}

	values := make([]deriv.Sample, len(series))
	for i := range series {
		values[i] = deriv.Sample{X: times[i], Y: series[i][0]}
	}

	var res []deriv.Sample
	caption := "first-order derivative"
	if fivePoint {
		res = deriv.Diff5(values)
		caption = "five-point derivative"
	} else {
		res = deriv.Diff(values)
	}
	if len(res) == 0 {
		return fmt.Errorf("not enough samples to differentiate")
	}

	data := make([]float64, len(res))
	for i, s := range res {
		data[i] = s.Y
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("derivative points: %d\n\n", len(res))

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
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
	fmt.Fprintln(w, "ID\tKIND\tTIME\tDURATION\tDT\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Samples,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, _, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s\n", meta.Kind)
	fmt.Printf("samples: %d\n\n", len(series))

	numVars := len(series[0])
	maxPlots := 4
	if numVars > maxPlots {
		numVars = maxPlots
	}

	for varIdx := 0; varIdx < numVars; varIdx++ {
		data := make([]float64, len(series))
		for i := range series {
			if varIdx < len(series[i]) {
				data[i] = series[i][varIdx]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("y%d", varIdx)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func plotSeries(name string, labels []string, series [][]float64) {
	if len(series) == 0 {
		return
	}
	for varIdx := 0; varIdx < len(series[0]); varIdx++ {
		data := make([]float64, len(series))
		for i := range series {
			data[i] = series[i][varIdx]
		}
		caption := fmt.Sprintf("%s: y%d", name, varIdx)
		if varIdx < len(labels) {
			caption = fmt.Sprintf("%s: %s", name, labels[varIdx])
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runLive(cmd *cobra.Command, args []string) error {
	model, err := models.Get(args[0])
	if err != nil {
		return err
	}
	return viz.RunLive(model, initialState(model), dt, frameRate)
}
