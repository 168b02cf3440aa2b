package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/engine"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndRunScenario(t *testing.T) {
	path := writeScenario(t, `name: smoke
steps:
  - algorithm: bubble
    values: [5, 1, 4, 2, 8]
  - algorithm: merge
    size: {min: 10, max: 10}
    range: {min: 1, max: 9}
    seed: 3
    repeat: 2
`)
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if sc.Name != "smoke" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	results, err := RunScenario(context.Background(), sc, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !slices.Equal(results[0].Final, []int{1, 2, 4, 5, 8}) {
		t.Errorf("bubble final = %v", results[0].Final)
	}
	if results[0].Stats.Events != 4 {
		t.Errorf("bubble events = %d, want 4", results[0].Stats.Events)
	}
	for _, r := range results[1:] {
		if r.Algorithm != "merge" || len(r.Final) != 10 || !slices.IsSorted(r.Final) {
			t.Errorf("merge result %+v", r)
		}
	}
	if results[1].Fingerprint == results[2].Fingerprint {
		t.Error("repeats should sort fresh arrays")
	}
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name string
		sc   Scenario
		want error
	}{
		{"no steps", Scenario{}, ErrEmptyScenario},
		{"unknown algorithm", Scenario{Steps: []Step{{Algorithm: "bogo", Values: []int{1}}}}, engine.ErrUnknownAlgorithm},
		{"bad size", Scenario{Steps: []Step{{Algorithm: "quick", Size: array.Range{Min: 5, Max: 1}, Range: array.DefaultValues()}}}, array.ErrInvalidRange},
		{"values skip ranges", Scenario{Steps: []Step{{Algorithm: "quick", Values: []int{2, 1}}}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sc.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunScenarioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sc := &Scenario{Steps: []Step{{Algorithm: "shell", Values: []int{3, 2, 1}}}}
	results, err := RunScenario(ctx, sc, zerolog.Nop())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results from a cancelled scenario", len(results))
	}
}
