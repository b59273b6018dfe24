package metrics

// Metric represents a single metric data point.
type Metric struct {
	Type  string
	Key   string
	Value int
}

// CatalogStats summarizes the albums of the catalog.
type CatalogStats struct {
	TotalAlbums int
	TotalTracks int
	// GenreCounts has one entry per accepted album genre, zero counts included.
	GenreCounts []Metric
	// Completeness counts albums with a cover, with a release date and
	// available online.
	Completeness []Metric
}

// GenreDistribution returns the genre counts as a map.
func (s *CatalogStats) GenreDistribution() map[string]int {
	m := make(map[string]int, len(s.GenreCounts))
	for _, metric := range s.GenreCounts {
		m[metric.Key] = metric.Value
	}
	return m
}

// Value returns the value of the metric of the given type and key, 0 if absent.
func (s *CatalogStats) Value(metricType, key string) int {
	var all []Metric
	all = append(all, s.GenreCounts...)
	all = append(all, s.Completeness...)
	for _, metric := range all {
		if metric.Type == metricType && metric.Key == key {
			return metric.Value
		}
	}
	return 0
}
