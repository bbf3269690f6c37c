package main

import (
	"fmt"
	"io"
	"sort"

	"fasttime/report"
)

// metricStats accumulates per-metric cycle counts. Aggregation happens
// in cycles, the firmware's native unit; microseconds are shown from
// the firmware's own converted field so host and target never disagree
// about the frequency.
type metricStats struct {
	byMetric map[uint8]*accumulator
}

type accumulator struct {
	count  uint64
	sum    uint64
	min    uint64
	max    uint64
	lastUS uint64
}

func newMetricStats() *metricStats {
	return &metricStats{byMetric: make(map[uint8]*accumulator)}
}

func (m *metricStats) add(s report.Sample) {
	acc := m.byMetric[s.Metric]
	if acc == nil {
		acc = &accumulator{min: ^uint64(0)}
		m.byMetric[s.Metric] = acc
	}
	acc.count++
	acc.sum += s.Cycles
	if s.Cycles < acc.min {
		acc.min = s.Cycles
	}
	if s.Cycles > acc.max {
		acc.max = s.Cycles
	}
	acc.lastUS = s.US
}

func (m *metricStats) print(w io.Writer) {
	if len(m.byMetric) == 0 {
		return
	}

	metrics := make([]uint8, 0, len(m.byMetric))
	for id := range m.byMetric {
		metrics = append(metrics, id)
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i] < metrics[j] })

	fmt.Fprintln(w, "metric            count        min       mean        max   last-us")
	for _, id := range metrics {
		acc := m.byMetric[id]
		fmt.Fprintf(w, "%-14s %8d %10d %10d %10d %9d\n",
			metricName(id), acc.count, acc.min, acc.sum/acc.count, acc.max, acc.lastUS)
	}
}

func metricName(id uint8) string {
	switch id {
	case report.MetricNowOverhead:
		return "now-overhead"
	case report.MetricDivConvert:
		return "div-convert"
	case report.MetricFixedConvert:
		return "fixed-convert"
	case report.MetricBusyLoop:
		return "busy-loop"
	case report.MetricSensorRead:
		return "sensor-read"
	default:
		return fmt.Sprintf("metric-%d", id)
	}
}
