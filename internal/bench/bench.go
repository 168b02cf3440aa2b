// Package bench runs every registered algorithm without pacing over a range of
// array sizes and verifies the results.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/exascience/pargo/sort"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/controller"
	"github.com/san-kum/sortviz/internal/engine"
)

var ErrVerify = errors.New("bench: result not a sorted permutation")

var DefaultSizes = []int{8, 16, 32, 64, 128, 256}

type Case struct {
	Algorithm   string
	Size        int
	Stats       engine.Stats
	Elapsed     time.Duration
	Fingerprint uint64
	Sorted      bool
}

type Report struct {
	Sizes      []int
	Algorithms []string
	Cases      []Case
}

type Options struct {
	Sizes  []int
	Values array.Range
	Rand   *rand.Rand
	Logger zerolog.Logger
}

// collector keeps the last result reported by the session.
type collector struct {
	controller.NopObserver
	last controller.Result
}

func (c *collector) OnFinished(r controller.Result) { c.last = r }

// Run sorts the same random input of each size with every algorithm. All
// cases run even when one fails verification; the returned error then wraps
// ErrVerify.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if len(opts.Sizes) == 0 {
		opts.Sizes = DefaultSizes
	}
	if opts.Values == (array.Range{}) {
		opts.Values = array.DefaultValues()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	col := &collector{}
	sess := controller.New(
		controller.WithoutPacing(),
		controller.WithObserver(col),
		controller.WithLogger(opts.Logger),
	)

	rep := &Report{Sizes: opts.Sizes, Algorithms: engine.IDs()}
	var failed []string

	for _, n := range opts.Sizes {
		input, err := array.Generate(opts.Rand, array.Range{Min: n, Max: n}, opts.Values)
		if err != nil {
			return nil, err
		}
		for _, alg := range rep.Algorithms {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			if err := sess.Load(input); err != nil {
				return rep, err
			}
			if err := sess.Start(ctx, alg); err != nil {
				if errors.Is(err, controller.ErrEmpty) {
					rep.Cases = append(rep.Cases, Case{Algorithm: alg, Size: n, Sorted: true})
					continue
				}
				return rep, err
			}
			sess.Wait()

			res := col.last
			c := Case{
				Algorithm:   alg,
				Size:        n,
				Stats:       res.Stats,
				Elapsed:     res.Elapsed,
				Fingerprint: res.Fingerprint,
				Sorted:      Verify(input, res.Final),
			}
			if res.Cancelled {
				return rep, ctx.Err()
			}
			if !c.Sorted {
				failed = append(failed, fmt.Sprintf("%s/%d", alg, n))
			}
			opts.Logger.Debug().
				Str("algorithm", alg).
				Int("size", n).
				Int("events", c.Stats.Events).
				Bool("sorted", c.Sorted).
				Dur("elapsed", c.Elapsed).
				Msg("bench case")
			rep.Cases = append(rep.Cases, c)
		}
	}

	if len(failed) > 0 {
		return rep, fmt.Errorf("%w: %v", ErrVerify, failed)
	}
	return rep, nil
}

// Verify reports whether got is the sorted rearrangement of input.
func Verify(input, got []int) bool {
	return len(input) == len(got) && sort.IntsAreSorted(got) && array.SameMultiset(input, got)
}

// Events returns, per algorithm in report order, the event count at each size.
func (r *Report) Events() [][]float64 {
	idx := make(map[string]int, len(r.Algorithms))
	for i, a := range r.Algorithms {
		idx[a] = i
	}
	sizeIdx := make(map[int]int, len(r.Sizes))
	for i, n := range r.Sizes {
		sizeIdx[n] = i
	}
	series := make([][]float64, len(r.Algorithms))
	for i := range series {
		series[i] = make([]float64, len(r.Sizes))
	}
	for _, c := range r.Cases {
		series[idx[c.Algorithm]][sizeIdx[c.Size]] = float64(c.Stats.Events)
	}
	return series
}

// WriteTable prints one row per case.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSIZE\tEVENTS\tCOMPARISONS\tPASSES\tELAPSED\tOK")
	for _, c := range r.Cases {
		ok := "yes"
		if !c.Sorted {
			ok = "NO"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			c.Algorithm, c.Size, c.Stats.Events, c.Stats.Comparisons, c.Stats.Passes,
			c.Elapsed.Round(time.Microsecond), ok)
	}
	return tw.Flush()
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red, asciigraph.Green, asciigraph.Yellow,
	asciigraph.Blue, asciigraph.Magenta, asciigraph.Cyan,
}

// Plot draws events against size, one coloured series per algorithm.
func (r *Report) Plot(width, height int) string {
	series := r.Events()
	if len(series) == 0 || len(r.Sizes) == 0 {
		return ""
	}
	colors := make([]asciigraph.AnsiColor, len(series))
	for i := range colors {
		colors[i] = seriesColors[i%len(seriesColors)]
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("events per size %v", r.Sizes)),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(r.Algorithms...),
	)
}
