// SPDX-License-Identifier: MIT

// Package instrument measures the wall-clock duration of algorithm calls and
// hands the measurement to a Reporter.
//
// The algorithms themselves never log or time anything; callers opt in by
// decorating the entry point they want to observe:
//
//	sortTimed := instrument.Wrap("merge_sort", rep, sorting.MergeSort[int])
//	out := sortTimed(data) // same result as sorting.MergeSort(data)
//
//	dijkstraTimed := instrument.Decorate("dijkstra", rep, dijkstra.Dijkstra[string])
//	dist, prev, err := dijkstraTimed(g, "A") // err is reported, then returned unchanged
//
// Decorators never change inputs, outputs or errors. The Reporter is invoked
// exactly once per call, after the wrapped function returns; a nil Reporter
// skips reporting. A panic inside the wrapped function propagates without a
// report.
//
// Reporters:
//
//   - LogReporter:        one charmbracelet/log line per call, "<name> took 1.23ms".
//   - PrometheusReporter: duration histogram and error counter, labelled by operation.
//   - Multi:              fan-out to several reporters.
//   - ReporterFunc:       adapter for plain functions.
package instrument
