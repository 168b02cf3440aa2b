package automation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/controller"
	"github.com/san-kum/sortviz/internal/engine"
)

var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario defines a scripted sequence of sort runs
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single run. Values, when present, is sorted as given; otherwise
// an array is generated from Size and Range with Seed.
type Step struct {
	Algorithm string      `yaml:"algorithm"`
	Values    []int       `yaml:"values"`
	Size      array.Range `yaml:"size"`
	Range     array.Range `yaml:"range"`
	Seed      int64       `yaml:"seed"`
	Repeat    int         `yaml:"repeat"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScenario
	}
	for i, step := range s.Steps {
		if _, err := engine.Lookup(step.Algorithm); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Values != nil {
			continue
		}
		if err := step.Size.Validate(); err != nil {
			return fmt.Errorf("step %d size: %w", i+1, err)
		}
		if err := step.Range.Validate(); err != nil {
			return fmt.Errorf("step %d range: %w", i+1, err)
		}
	}
	return nil
}

// collector keeps every result the session reports.
type collector struct {
	controller.NopObserver
	results []controller.Result
}

func (c *collector) OnFinished(r controller.Result) { c.results = append(c.results, r) }

// RunScenario executes all steps in order without pacing. A step with Repeat
// n runs n times on fresh arrays from the same generator.
func RunScenario(ctx context.Context, scenario *Scenario, log zerolog.Logger) ([]controller.Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	col := &collector{}
	for i, step := range scenario.Steps {
		seed := step.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sess := controller.New(
			controller.WithoutPacing(),
			controller.WithObserver(controller.Multi{col, controller.NewLogObserver(log)}),
			controller.WithLogger(log),
			controller.WithRand(rand.New(rand.NewSource(seed))),
		)

		repeat := max(step.Repeat, 1)
		for r := 0; r < repeat; r++ {
			if err := ctx.Err(); err != nil {
				return col.results, err
			}
			var err error
			if step.Values != nil {
				err = sess.Load(step.Values)
			} else {
				err = sess.Generate(step.Size, step.Range)
			}
			if err != nil {
				return col.results, fmt.Errorf("step %d: %w", i+1, err)
			}

			log.Debug().Int("step", i+1).Int("repeat", r+1).Str("algorithm", step.Algorithm).Msg("scenario step")
			if err := sess.Start(ctx, step.Algorithm); err != nil {
				if errors.Is(err, controller.ErrEmpty) {
					continue
				}
				return col.results, fmt.Errorf("step %d: %w", i+1, err)
			}
			sess.Wait()
		}
	}
	return col.results, ctx.Err()
}
