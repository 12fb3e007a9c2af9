// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"strings"
)

// NotFound is the index reported alongside found == false.
const NotFound = -1

// ErrUnknownPolicy is returned by ParseDuplicatePolicy for unknown names.
var ErrUnknownPolicy = errors.New("search: unknown duplicate policy")

// DuplicatePolicy selects which occurrence Binary reports when the target
// appears more than once.
type DuplicatePolicy int

const (
	// AnyMatch returns the first mid that compares equal.
	AnyMatch DuplicatePolicy = iota
	// FirstMatch returns the leftmost occurrence.
	FirstMatch
	// LastMatch returns the rightmost occurrence.
	LastMatch
)

// String returns the name accepted by ParseDuplicatePolicy.
func (p DuplicatePolicy) String() string {
	switch p {
	case AnyMatch:
		return "any"
	case FirstMatch:
		return "first"
	case LastMatch:
		return "last"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy resolves "any", "first" or "last".
func ParseDuplicatePolicy(name string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "any":
		return AnyMatch, nil
	case "first", "leftmost":
		return FirstMatch, nil
	case "last", "rightmost":
		return LastMatch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Options configures Binary.
type Options struct {
	Duplicates DuplicatePolicy
}

// Option is a functional option for Binary and BinaryFunc.
type Option func(*Options)

// WithDuplicates sets the duplicate policy.
func WithDuplicates(p DuplicatePolicy) Option {
	return func(o *Options) {
		o.Duplicates = p
	}
}
