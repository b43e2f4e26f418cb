package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/biflab/internal/analysis"
	"github.com/san-kum/biflab/internal/branch"
	"github.com/san-kum/biflab/internal/config"
	"github.com/san-kum/biflab/internal/cycle"
	"github.com/san-kum/biflab/internal/export"
	"github.com/san-kum/biflab/internal/stability"
	"github.com/san-kum/biflab/internal/storage"
	"github.com/san-kum/biflab/internal/tui"
	"github.com/san-kum/biflab/internal/viz"
)

var (
	dataDir    string
	configFile string
	tolerance  float64
	// point selection (logical index)
	pointIndex int
	// plot controls
	varIndex int
	xVar     int
	yVar     int
	withPlot bool
	svgPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "biflab",
		Short: "continuation and bifurcation branch analysis",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tol", 0, "stability tolerance (default from config)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored branches",
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [system] [branch]",
		Short: "list a branch's points in logical order",
		Args:  cobra.ExactArgs(2),
		RunE:  runShow,
	}
	showCmd.Flags().BoolVar(&withPlot, "plot", false, "plot the continuation parameter along the branch")
	showCmd.Flags().StringVar(&svgPath, "svg", "", "write a branch diagram SVG to this path")
	showCmd.Flags().IntVar(&varIndex, "var", 0, "state component for the SVG diagram")

	pointCmd := &cobra.Command{
		Use:   "point [system] [branch]",
		Short: "describe one point of a branch",
		Args:  cobra.ExactArgs(2),
		RunE:  runPoint,
	}
	pointCmd.Flags().IntVar(&pointIndex, "index", 0, "logical point index")

	cycleCmd := &cobra.Command{
		Use:   "cycle [system] [branch]",
		Short: "profile and metrics for a limit-cycle point",
		Args:  cobra.ExactArgs(2),
		RunE:  runCycle,
	}
	cycleCmd.Flags().IntVar(&pointIndex, "index", 0, "logical point index")
	cycleCmd.Flags().IntVar(&varIndex, "var", 0, "state variable to plot over one period")
	cycleCmd.Flags().IntVar(&xVar, "x", 0, "phase-plane x variable")
	cycleCmd.Flags().IntVar(&yVar, "y", 1, "phase-plane y variable")
	cycleCmd.Flags().BoolVar(&withPlot, "plot", false, "render profile and phase-plane plots")

	dimensionCmd := &cobra.Command{
		Use:   "dimension [exponents...]",
		Short: "Kaplan-Yorke dimension from a Lyapunov spectrum",
		Args:  cobra.MinimumNArgs(0),
		RunE:  runDimension,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [system] [branch]",
		Short: "interactively walk a branch",
		Args:  cobra.ExactArgs(2),
		RunE:  runBrowse,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "biflab.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			return config.Save(path, config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(listCmd, showCmd, pointCmd, cycleCmd, dimensionCmd, browseCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if tolerance > 0 {
		cfg.Tolerance = tolerance
	}
	return cfg, nil
}

func openBranch(system, name string) (*config.Config, *branch.System, *branch.Branch, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	store := storage.New(cfg.DataDir)
	sys, err := store.LoadSystem(system)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading system %s: %w", system, err)
	}
	b, err := store.Load(system, name)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading branch %s: %w", name, err)
	}
	return cfg, sys, b, nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	infos, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no branches stored")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYSTEM\tBRANCH\tTYPE\tPARAMETER\tPOINTS")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			info.System, info.Name, info.Kind, info.Parameter, info.Points)
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, sys, b, err := openBranch(args[0], args[1])
	if err != nil {
		return err
	}

	indices := branch.EnsureIndices(&b.Data)
	order := branch.SortedOrder(indices)
	classifier := stability.NewClassifier(cfg.Tolerance)

	fmt.Printf("%s [%s] parameter %s, %d points, %d bifurcations\n\n",
		b.Name, b.Type, b.Parameter, b.Len(), len(b.Data.Bifurcations))

	flagged := make(map[int]bool, len(b.Data.Bifurcations))
	for _, pos := range b.Data.Bifurcations {
		flagged[pos] = true
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := "IDX\t" + strings.ToUpper(b.Parameter)
	if _, p2, ok := branch.CurveParams(b.Data.Meta); ok {
		header += "\t" + strings.ToUpper(p2)
	}
	fmt.Fprintln(w, header+"\tLABEL")

	for _, pos := range order {
		pt := &b.Data.Points[pos]
		row := fmt.Sprintf("%d\t%.6g", indices[pos], pt.ParamValue)
		if _, _, ok := branch.CurveParams(b.Data.Meta); ok {
			if pt.Param2Value != nil {
				row += fmt.Sprintf("\t%.6g", *pt.Param2Value)
			} else {
				row += "\t-"
			}
		}
		kind := stability.Resolve(pt.Stability, derive(classifier, sys, b, pt))
		row += "\t" + stability.Label(indices[pos], kind)
		if flagged[pos] {
			row += " *"
		}
		fmt.Fprintln(w, row)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if withPlot {
		fmt.Println()
		fmt.Println(viz.ParamPlot(b, cfg.Plot.Width, cfg.Plot.Height))
	}

	if svgPath != "" {
		svg := export.BranchSVG(b, varIndex, 640, 480)
		if svg == "" {
			return fmt.Errorf("cannot render component %d of branch %s", varIndex, b.Name)
		}
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func derive(c stability.Classifier, sys *branch.System, b *branch.Branch, pt *branch.Point) stability.Kind {
	eigen := pt.Eigen()
	switch {
	case b.Type == branch.LimitCycle:
		return c.Cycle(eigen)
	case sys.Kind == branch.Map:
		return c.Map(eigen)
	default:
		return c.Flow(eigen)
	}
}

func runPoint(cmd *cobra.Command, args []string) error {
	cfg, sys, b, err := openBranch(args[0], args[1])
	if err != nil {
		return err
	}

	indices := branch.EnsureIndices(&b.Data)
	pos, ok := branch.FindLogical(indices, pointIndex)
	if !ok {
		return fmt.Errorf("no point with logical index %d", pointIndex)
	}
	pt := &b.Data.Points[pos]

	classifier := stability.NewClassifier(cfg.Tolerance)
	kind := stability.Resolve(pt.Stability, derive(classifier, sys, b, pt))
	fmt.Println(stability.Label(pointIndex, kind))

	params := branch.Reconstruct(sys.ParamNames, sys.Params, b, pt)
	for i, name := range sys.ParamNames {
		if i < len(params) {
			fmt.Printf("  %-10s %.6g\n", name, params[i])
		}
	}

	if b.Type != branch.LimitCycle {
		for i, name := range sys.VarNames {
			if i < len(pt.State) {
				fmt.Printf("  %-10s %.6g\n", name, pt.State[i])
			}
		}
	}

	eigen := pt.Eigen()
	if len(eigen) > 0 {
		fmt.Println("  eigenvalues:")
		for _, ev := range eigen {
			fmt.Printf("    %.6g %+.6gi\n", real(ev), imag(ev))
		}
	}
	return nil
}

func runCycle(cmd *cobra.Command, args []string) error {
	cfg, sys, b, err := openBranch(args[0], args[1])
	if err != nil {
		return err
	}

	meta, ok := b.Data.Meta.(branch.CycleMeta)
	if !ok {
		return fmt.Errorf("branch %s is not a limit-cycle branch", b.Name)
	}

	indices := branch.EnsureIndices(&b.Data)
	pos, ok := branch.FindLogical(indices, pointIndex)
	if !ok {
		return fmt.Errorf("no point with logical index %d", pointIndex)
	}
	pt := &b.Data.Points[pos]

	profile, period := cycle.ExtractProfile(pt.State, sys.Dim(), meta.Ntst, meta.Ncol)
	summary := cycle.Summarize(profile, period)
	if len(summary.Vars) == 0 {
		fmt.Println("cycle profile unavailable (mesh metadata does not match the state vector)")
		return nil
	}

	fmt.Printf("period %.6g  (%s = %.6g, mesh %dx%d)\n\n",
		summary.Period, b.Parameter, pt.ParamValue, meta.Ntst, meta.Ncol)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VAR\tMIN\tMAX\tRANGE\tMEAN\tRMS")
	for i, vs := range summary.Vars {
		name := fmt.Sprintf("x%d", i)
		if i < len(sys.VarNames) {
			name = sys.VarNames[i]
		}
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
			name, vs.Min, vs.Max, vs.Range, vs.Mean, vs.RMS)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if withPlot {
		name := fmt.Sprintf("x%d", varIndex)
		if varIndex >= 0 && varIndex < len(sys.VarNames) {
			name = sys.VarNames[varIndex]
		}
		fmt.Println()
		fmt.Println(viz.ProfilePlot(profile, varIndex, name, cfg.Plot.Width, cfg.Plot.Height))
		if phase := viz.PhasePlot(profile, xVar, yVar, cfg.Plot.Width, cfg.Plot.Height); phase != "" {
			fmt.Println()
			fmt.Println(phase)
		}
	}
	return nil
}

func runDimension(cmd *cobra.Command, args []string) error {
	exponents := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("parsing exponent %q: %w", arg, err)
		}
		exponents = append(exponents, v)
	}

	dim, ok := analysis.KaplanYorke(exponents)
	if !ok {
		fmt.Println("dimension: n/a (empty spectrum)")
		return nil
	}
	fmt.Printf("dimension: %.6g\n", dim)
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, sys, b, err := openBranch(args[0], args[1])
	if err != nil {
		return err
	}
	program := tea.NewProgram(tui.NewBrowser(sys, b, cfg.Tolerance), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
