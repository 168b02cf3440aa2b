package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/bench"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/controller"
	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/viz"
)

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Algorithm = args[0]
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if _, err := engine.Lookup(cfg.Algorithm); err != nil {
		return err
	}

	printer := &stepPrinter{out: cmd.OutOrStdout(), quiet: quiet, locale: cfg.Locale}
	trace := &inversionTrace{}
	opts := []controller.Option{
		controller.WithObserver(controller.Multi{printer, trace, controller.NewLogObserver(log.Logger)}),
		controller.WithLogger(log.Logger),
		controller.WithRand(newRand(cfg.Seed)),
		controller.WithSpeed(cfg.Speed),
	}
	if cmd.Flags().Changed("speed") {
		if speed <= 0 {
			opts = append(opts, controller.WithoutPacing())
		} else {
			opts = append(opts, controller.WithSpeed(speed))
		}
	}
	session := controller.New(opts...)

	if cmd.Flags().Changed("values") {
		err = session.Load(values)
	} else {
		err = session.Generate(cfg.Size, cfg.Values)
	}
	if err != nil {
		return err
	}
	trace.reset(session.Array())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := session.Start(ctx, cfg.Algorithm); err != nil {
		return err
	}
	session.Wait()

	theme := viz.GetTheme(cfg.Theme)
	if svgOut != "" {
		doc := export.BarsToSVG(session.Array(), nil, 800, 400, export.Palette{Bar: string(theme.Sorted), Highlight: string(theme.Highlight)})
		if err := writeFile(svgOut, doc); err != nil {
			return err
		}
	}
	if traceOut != "" {
		doc := export.SeriesToSVG(trace.values, 800, 300, string(theme.Bar))
		if doc == "" {
			return fmt.Errorf("trace-svg: run produced fewer than two samples")
		}
		if err := writeFile(traceOut, doc); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path, doc string) error {
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("svg written")
	return nil
}

// inversionTrace records the inversion count of every step snapshot.
type inversionTrace struct {
	controller.NopObserver
	values []float64
}

func (t *inversionTrace) reset(data []int) {
	t.values = []float64{float64(array.Inversions(data))}
}

func (t *inversionTrace) OnStep(ev engine.Event[int]) {
	t.values = append(t.values, float64(array.Inversions(ev.Snapshot)))
}

// stepPrinter writes one coloured line per step and a summary at the end.
type stepPrinter struct {
	controller.NopObserver
	out    io.Writer
	quiet  bool
	locale string
}

func (p *stepPrinter) OnStarted(s controller.Started) {
	label := s.Algorithm
	if alg, err := engine.Lookup(s.Algorithm); err == nil {
		label = alg.Label(p.locale)
	}
	fmt.Fprintf(p.out, "%s %s\n", color.Bold.Sprint(label), color.Gray.Sprintf("(%d values, run %s)", s.Size, s.RunID))
}

func (p *stepPrinter) OnStep(ev engine.Event[int]) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", color.Gray.Sprintf("%6d", ev.Seq), formatStep(ev.Snapshot, ev.Highlight))
}

func (p *stepPrinter) OnFinished(r controller.Result) {
	status := color.Green.Sprint("sorted")
	if r.Cancelled {
		status = color.Yellow.Sprint("cancelled")
	}
	fmt.Fprintf(p.out, "%s %v\n", status, r.Final)
	fmt.Fprintf(p.out, "%s events=%d comparisons=%d passes=%d elapsed=%s\n",
		color.Cyan.Sprint(r.Algorithm), r.Stats.Events, r.Stats.Comparisons, r.Stats.Passes, r.Elapsed)
}

// formatStep renders a snapshot with the highlighted values coloured.
func formatStep(data []int, highlight []int) string {
	lit := make(map[int]bool, len(highlight))
	for _, i := range highlight {
		lit[i] = true
	}
	parts := make([]string, len(data))
	for i, v := range data {
		s := strconv.Itoa(v)
		if lit[i] {
			s = color.Magenta.Sprint(s)
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	vals := cfg.Values
	if benchValues > 0 {
		vals = array.Range{Min: 1, Max: benchValues}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rep, err := bench.Run(ctx, bench.Options{
		Sizes:  sizes,
		Values: vals,
		Rand:   newRand(cfg.Seed),
		Logger: log.Logger,
	})
	if rep != nil {
		out := cmd.OutOrStdout()
		if werr := rep.WriteTable(out); werr != nil {
			return werr
		}
		if !noPlot && len(rep.Cases) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, rep.Plot(plotWidth, plotHeight))
		}
	}
	if errors.Is(err, bench.ErrVerify) {
		color.Red.Println("verification failed")
	}
	return err
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := automation.RunScenario(ctx, sc, log.Logger)
	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintln(out, color.Bold.Sprint(sc.Name))
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tSIZE\tEVENTS\tCOMPARISONS\tELAPSED\tFINGERPRINT")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\t%016x\n",
			i+1, r.Algorithm, len(r.Final), r.Stats.Events, r.Stats.Comparisons, r.Elapsed, r.Fingerprint)
	}
	if werr := w.Flush(); werr != nil {
		return werr
	}
	return err
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	loc := locale
	if loc == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loc = cfg.Locale
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, a := range engine.Algorithms() {
		fmt.Fprintf(w, "%s\t%s\n", color.Cyan.Sprint(a.ID), a.Label(loc))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALGORITHM\tSIZE\tVALUES\tSPEED\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d-%d\t%d-%d\t%.2fs\t%s\n",
			name, p.Algorithm, p.Size.Min, p.Size.Max, p.Values.Min, p.Values.Max, p.Speed, p.Theme)
	}
	return w.Flush()
}

func printGaps(cmd *cobra.Command, args []string) error {
	n := array.DefaultSizeMax
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			return fmt.Errorf("invalid size %q", args[0])
		}
		n = v
	}
	gaps := engine.ShellGaps(n)
	strs := make([]string, len(gaps))
	for i, g := range gaps {
		strs[i] = strconv.Itoa(g)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(strs, ","))
	return nil
}
