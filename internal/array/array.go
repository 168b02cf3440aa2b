package array

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	farm "github.com/dgryski/go-farm"
)

const (
	DefaultSizeMin  = 20
	DefaultSizeMax  = 50
	DefaultValueMin = 1
	DefaultValueMax = 100
)

var ErrInvalidRange = errors.New("array: invalid range")

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

func DefaultSize() Range   { return Range{Min: DefaultSizeMin, Max: DefaultSizeMax} }
func DefaultValues() Range { return Range{Min: DefaultValueMin, Max: DefaultValueMax} }

func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Pick returns a uniformly distributed value in [Min, Max].
func (r Range) Pick(rng *rand.Rand) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Generate builds a fresh random array whose length is drawn from size and
// whose values are drawn from values.
func Generate(rng *rand.Rand, size, values Range) ([]int, error) {
	if err := size.Validate(); err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	if size.Min < 0 {
		return nil, fmt.Errorf("size: %w: negative length %d", ErrInvalidRange, size.Min)
	}
	if err := values.Validate(); err != nil {
		return nil, fmt.Errorf("values: %w", err)
	}

	n := size.Pick(rng)
	data := make([]int, n)
	for i := range data {
		data[i] = values.Pick(rng)
	}
	return data, nil
}

func Clone(data []int) []int {
	c := make([]int, len(data))
	copy(c, data)
	return c
}

// Fingerprint identifies an array by content so runs over the same input can
// be correlated in logs.
func Fingerprint(data []int) uint64 {
	buf := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(int64(v)))
	}
	return farm.Fingerprint64(buf)
}

// SameMultiset reports whether a and b hold the same values with the same
// multiplicities, ignoring order.
func SameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

func Max(data []int) int {
	if len(data) == 0 {
		return 0
	}
	m := data[0]
	for _, v := range data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Inversions counts pairs i < j with data[i] > data[j]. It is zero exactly
// when data is sorted.
func Inversions(data []int) int {
	n := 0
	for i := range data {
		for j := i + 1; j < len(data); j++ {
			if data[i] > data[j] {
				n++
			}
		}
	}
	return n
}
