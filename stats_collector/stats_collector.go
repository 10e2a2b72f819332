package stats_collector

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type StatsCollector interface {
	IncMetadataLookups(kind, status string)
	IncPokemonCreated(game, source string)
	IncConversions(fromGeneration, toGeneration, status string)
	IncSkippedFields(field string)
}

// GetStatsCollector returns a Prometheus backed collector registered with
// reg when enabled, a noop one otherwise.
func GetStatsCollector(enabled bool, reg prometheus.Registerer) StatsCollector {
	if !enabled {
		return NewNoopStatsCollector()
	}
	log.Infof("Prometheus init")
	return NewPrometheusCollector(reg)
}
