package stats_collector

var _ StatsCollector = (*noopCollector)(nil)

type noopCollector struct {
}

func (col *noopCollector) IncMetadataLookups(string, string)      {}
func (col *noopCollector) IncPokemonCreated(string, string)       {}
func (col *noopCollector) IncConversions(string, string, string) {}
func (col *noopCollector) IncSkippedFields(string)                {}

func NewNoopStatsCollector() StatsCollector {
	return &noopCollector{}
}
