package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/controller"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFile    string
	// run
	values   []int
	speed    float64
	seed     int64
	quiet    bool
	svgOut   string
	traceOut string
	// bench
	sizes       []int
	plotWidth   int
	plotHeight  int
	noPlot      bool
	benchValues int
	// algorithms
	locale string
)

// feedBuffer bounds how far the worker may run ahead of the renderer.
const feedBuffer = 256

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "step-by-step sorting algorithm visualizer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.Name() == "sortviz")
		},
		RunE:         runTUI,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml, or toml by extension)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort once without the TUI, printing every step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().IntSliceVar(&values, "values", nil, "array to sort, e.g. 5,1,4,2,8 (default: random)")
	runCmd.Flags().Float64Var(&speed, "speed", 0, "seconds per step; 0 disables pacing (default: the config speed)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the result")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the final array as an SVG bar chart")
	runCmd.Flags().StringVar(&traceOut, "trace-svg", "", "write the inversion count per step as an SVG line chart")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run every algorithm unpaced over several sizes",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", nil, "array sizes (default 8,16,32,64,128,256)")
	benchCmd.Flags().IntVar(&benchValues, "max-value", 0, "largest generated value (default from config)")
	benchCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	benchCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	benchCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")
	benchCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the events plot")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}
	algorithmsCmd.Flags().StringVar(&locale, "locale", "", "label language, e.g. en or ru (default from config)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	gapsCmd := &cobra.Command{
		Use:   "gaps [n]",
		Short: "print the shell sort gap sequence for n elements",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printGaps,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a YAML list of sorts and summarise them",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	rootCmd.AddCommand(runCmd, benchCmd, algorithmsCmd, presetsCmd, gapsCmd, scenarioCmd)
	return rootCmd
}

// setupLogging configures the global zerolog logger. The TUI owns the
// terminal, so it only logs when a file is given.
func setupLogging(tui bool) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
	case tui:
		out = io.Discard
	}

	log.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return nil
}

// loadConfig resolves defaults, then --preset, then --config.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return cfg, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	feed := controller.NewFeed(feedBuffer)
	session := controller.New(
		controller.WithObserver(controller.Multi{feed, controller.NewLogObserver(log.Logger)}),
		controller.WithLogger(log.Logger),
		controller.WithRand(newRand(cfg.Seed)),
		controller.WithSpeed(cfg.Speed),
	)
	log.Info().Str("algorithm", cfg.Algorithm).Str("theme", cfg.Theme).Msg("starting tui")
	return viz.Run(session, feed, *cfg)
}
