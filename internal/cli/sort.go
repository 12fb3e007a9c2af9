// SPDX-License-Identifier: MIT

package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/instrument"
	"github.com/katalvlaran/algokit/internal/gen"
	"github.com/katalvlaran/algokit/sorting"
)

func newSortCmd(a *app) *cobra.Command {
	var algo string
	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort integers with bubble, quick or merge sort",
		Long: `Sort the given integers, or --size generated ones when none are given.

--algo selects bubble, quick, merge or all. --pivot only affects quick sort.`,
		Example: `  algokit sort 5 3 8 1 2
  algokit sort --algo quick --pivot median3 --size 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := sizeSetting(cmd, a.cfg.Size)
			if err != nil {
				return err
			}
			input, err := a.values(args, size)
			if err != nil {
				return err
			}
			pivot, err := sorting.ParsePivot(stringSetting(cmd, "pivot", a.cfg.Pivot))
			if err != nil {
				return err
			}
			algs, err := parseAlgorithms(algo)
			if err != nil {
				return err
			}

			printField(a.out, "input", preview(input))
			opts := a.sortOptions(pivot)
			for _, alg := range algs {
				out, err := a.sort(alg, input, opts...)
				if err != nil {
					return err
				}
				printField(a.out, alg.String(), preview(out))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", "merge", "algorithm: bubble, quick, merge or all")
	cmd.Flags().String("pivot", "last", "quick sort pivot: last, median3, random")
	cmd.Flags().Int("size", 100, "number of generated values when none are given")
	return cmd
}

func parseAlgorithms(name string) ([]sorting.Algorithm, error) {
	if name == "all" {
		return []sorting.Algorithm{sorting.Bubble, sorting.Quick, sorting.Merge}, nil
	}
	alg, err := sorting.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []sorting.Algorithm{alg}, nil
}

// sortOptions seeds PivotRandom from the configured seed.
func (a *app) sortOptions(pivot sorting.PivotStrategy) []sorting.Option {
	opts := []sorting.Option{sorting.WithPivot(pivot)}
	if pivot == sorting.PivotRandom {
		opts = append(opts, sorting.WithRand(rand.New(rand.NewSource(gen.NewRand(a.cfg.Seed).Int63()))))
	}
	return opts
}

// sort runs alg through the instrumented decorator, named like "quick_sort".
func (a *app) sort(alg sorting.Algorithm, input []int, opts ...sorting.Option) ([]int, error) {
	timed := instrument.Decorate(alg.String()+"_sort", a.reporter, sorting.Sort[int])
	return timed(alg, input, opts...)
}
