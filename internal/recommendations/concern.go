package recommendations

// PrimaryConcern returns the metric with the highest score. Ties go to the
// metric that comes first in Metrics.
func PrimaryConcern(m ScanMetrics) Metric {
	best := Metrics[0]
	for _, metric := range Metrics[1:] {
		if m.Value(metric) > m.Value(best) {
			best = metric
		}
	}
	return best
}
