// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/instrument"
	"github.com/katalvlaran/algokit/internal/gen"
	"github.com/katalvlaran/algokit/search"
	"github.com/katalvlaran/algokit/sorting"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		mode   string
		target int
	)
	cmd := &cobra.Command{
		Use:   "search [values...]",
		Short: "Find a target with linear or binary search",
		Long: `Search the given integers, or --size generated ones, for --target.

Binary search needs sorted input, so the values are merge sorted first and the
reported index refers to the sorted sequence. Without --target a random
element of the input is searched for.`,
		Example: `  algokit search --mode binary --target 5 1 2 3 5 8
  algokit search --mode binary --duplicates first --target 2 1 2 2 2 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := sizeSetting(cmd, a.cfg.Size)
			if err != nil {
				return err
			}
			input, err := a.values(args, size)
			if err != nil {
				return err
			}
			policy, err := search.ParseDuplicatePolicy(stringSetting(cmd, "duplicates", a.cfg.Duplicates))
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("target") {
				v, ok := gen.Pick(gen.NewRand(a.cfg.Seed), input)
				if !ok {
					printField(a.out, "result", renderIndex(search.NotFound, false))
					return nil
				}
				target = v
			}
			printField(a.out, "target", target)

			m := strings.ToLower(mode)
			modes := []string{m}
			if m == "all" {
				modes = []string{"linear", "binary"}
			}
			for _, m := range modes {
				switch m {
				case "linear":
					i, ok := a.linearSearch(input, target)
					printField(a.out, "linear", renderIndex(i, ok))
				case "binary":
					sorted, err := a.sort(sorting.Merge, input)
					if err != nil {
						return err
					}
					i, ok := a.binarySearch(sorted, target, policy)
					printField(a.out, "binary", renderIndex(i, ok))
				default:
					return fmt.Errorf("unknown search mode %q (want linear, binary or all)", m)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "all", "search mode: linear, binary or all")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "value to search for (default: random element)")
	cmd.Flags().String("duplicates", "any", "binary search duplicate policy: any, first, last")
	cmd.Flags().Int("size", 100, "number of generated values when none are given")
	return cmd
}

func (a *app) linearSearch(s []int, target int) (int, bool) {
	return instrument.Decorate("linear_search", a.reporter, search.Linear[int])(s, target)
}

func (a *app) binarySearch(s []int, target int, policy search.DuplicatePolicy) (int, bool) {
	timed := instrument.Decorate("binary_search", a.reporter, search.Binary[int])
	return timed(s, target, search.WithDuplicates(policy))
}
