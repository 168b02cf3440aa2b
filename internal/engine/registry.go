package engine

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
)

// Func is an algorithm instantiated for the integer arrays the session sorts.
type Func func(ctx context.Context, data []int, em *Emitter[int]) Stats

// Algorithm pairs a stable identifier with its display labels.
type Algorithm struct {
	ID     string
	Run    Func
	labels map[language.Base]string
}

var (
	english = language.MustParseBase("en")
	russian = language.MustParseBase("ru")

	labelMatcher = language.NewMatcher([]language.Tag{language.English, language.Russian})
)

var algorithms = []Algorithm{
	{ID: "bubble", Run: Bubble[int], labels: map[language.Base]string{english: "Bubble sort", russian: "Пузырьковая сортировка"}},
	{ID: "selection", Run: Selection[int], labels: map[language.Base]string{english: "Selection sort", russian: "Сортировка выбором"}},
	{ID: "insertion", Run: Insertion[int], labels: map[language.Base]string{english: "Insertion sort", russian: "Сортировка вставками"}},
	{ID: "quick", Run: Quick[int], labels: map[language.Base]string{english: "Quicksort", russian: "Быстрая сортировка"}},
	{ID: "merge", Run: Merge[int], labels: map[language.Base]string{english: "Merge sort", russian: "Сортировка слиянием"}},
	{ID: "shell", Run: Shell[int], labels: map[language.Base]string{english: "Shell sort", russian: "Сортировка Шелла"}},
}

// Label returns the display label best matching locale, falling back to
// English.
func (a Algorithm) Label(locale string) string {
	tag, _ := language.MatchStrings(labelMatcher, locale)
	base, _ := tag.Base()
	if l, ok := a.labels[base]; ok {
		return l
	}
	return a.labels[english]
}

// Algorithms returns every registered algorithm in menu order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

func IDs() []string {
	ids := make([]string, len(algorithms))
	for i, a := range algorithms {
		ids[i] = a.ID
	}
	return ids
}

func Lookup(id string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.ID == id {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownAlgorithm, id, IDs())
}
