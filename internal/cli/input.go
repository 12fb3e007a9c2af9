// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/algokit/internal/gen"
)

// values returns the integers given on the command line, or cfg.Size
// generated values when args is empty.
func (a *app) values(args []string, size int) ([]int, error) {
	if len(args) == 0 {
		return gen.Ints(gen.NewRand(a.cfg.Seed), size, a.cfg.MaxValue), nil
	}
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i+1, s)
		}
		out[i] = v
	}
	return out, nil
}
