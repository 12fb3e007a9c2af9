// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrUnknownAlgorithm is returned when an algorithm name cannot be resolved.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// ErrUnknownPivot is returned when a pivot strategy name cannot be resolved.
var ErrUnknownPivot = errors.New("sorting: unknown pivot strategy")

// Algorithm selects one of the sorting algorithms for Sort.
type Algorithm int

const (
	// Bubble is the early-exit bubble sort.
	Bubble Algorithm = iota
	// Quick is the Lomuto-partition quick sort.
	Quick
	// Merge is the top-down merge sort.
	Merge
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "bubble"
	case Quick:
		return "quick"
	case Merge:
		return "merge"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Stable reports whether the algorithm preserves the order of equal elements.
func (a Algorithm) Stable() bool {
	return a == Bubble || a == Merge
}

// ParseAlgorithm resolves a case-insensitive name ("bubble", "quick", "merge").
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bubble":
		return Bubble, nil
	case "quick":
		return Quick, nil
	case "merge":
		return Merge, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// PivotStrategy controls how QuickSort chooses the pivot of a subrange.
type PivotStrategy int

const (
	// PivotLast uses the last element of the subrange. Sorted and reverse
	// sorted inputs hit the O(n²) worst case with this strategy.
	PivotLast PivotStrategy = iota

	// PivotMedianOfThree uses the median of the first, middle and last elements.
	PivotMedianOfThree

	// PivotRandom uses a uniformly random element drawn from Options.Rand.
	PivotRandom
)

// String returns the name accepted by ParsePivot.
func (p PivotStrategy) String() string {
	switch p {
	case PivotLast:
		return "last"
	case PivotMedianOfThree:
		return "median3"
	case PivotRandom:
		return "random"
	default:
		return fmt.Sprintf("PivotStrategy(%d)", int(p))
	}
}

// ParsePivot resolves "last", "median3" or "random".
func ParsePivot(name string) (PivotStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "last":
		return PivotLast, nil
	case "median3", "median-of-three":
		return PivotMedianOfThree, nil
	case "random":
		return PivotRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPivot, name)
	}
}

// defaultPivotSeed seeds PivotRandom when no source is supplied, so runs
// stay reproducible.
const defaultPivotSeed int64 = 1

// Options configures QuickSort. Bubble and merge sort take no options;
// Sort ignores them for those algorithms.
type Options struct {
	Pivot PivotStrategy // pivot selection, PivotLast by default
	Rand  *rand.Rand    // source for PivotRandom; seeded with defaultPivotSeed if nil
}

// Option is a functional option for QuickSort and Sort.
type Option func(*Options)

// DefaultOptions returns PivotLast with no random source.
func DefaultOptions() Options {
	return Options{Pivot: PivotLast}
}

// WithPivot selects the pivot strategy.
func WithPivot(p PivotStrategy) Option {
	return func(o *Options) {
		o.Pivot = p
	}
}

// WithRand supplies the random source used by PivotRandom.
// A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Pivot == PivotRandom && cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(defaultPivotSeed))
	}

	return cfg
}
