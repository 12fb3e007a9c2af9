// SPDX-License-Identifier: MIT

package instrument

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusReporter_RecordsDurationsAndErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	rep := NewPrometheusReporter(reg)

	rep.Report("quick_sort", 2*time.Millisecond, nil)
	rep.Report("quick_sort", 3*time.Millisecond, nil)
	rep.Report("dijkstra", time.Millisecond, errors.New("missing source"))

	assert.Equal(t, 2, testutil.CollectAndCount(rep.duration), "one series per operation/status pair")
	assert.Equal(t, 1.0, testutil.ToFloat64(rep.errors.WithLabelValues("dijkstra")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rep.errors.WithLabelValues("quick_sort")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{MetricDuration, MetricErrors}, names)
}

func TestPrometheusReporter_Unregistered(t *testing.T) {
	rep := NewPrometheusReporter(nil)
	rep.Report("merge_sort", time.Microsecond, nil)
	assert.Equal(t, 1, testutil.CollectAndCount(rep.duration))
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "0.42ms", formatMillis(420*time.Microsecond))
	assert.Equal(t, "12.00ms", formatMillis(12*time.Millisecond))
}
