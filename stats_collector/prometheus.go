package stats_collector

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ StatsCollector = (*promCollector)(nil)

type promCollector struct {
	metadataLookups *prometheus.CounterVec
	pokemonCreated  *prometheus.CounterVec
	conversions     *prometheus.CounterVec
	skippedFields   *prometheus.CounterVec
}

func NewPrometheusCollector(reg prometheus.Registerer) StatsCollector {
	col := &promCollector{
		metadataLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "metadata_lookups",
				Help: "Total number of metadata lookups by kind and cache status",
			},
			[]string{"kind", "status"},
		),
		pokemonCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pokemon_created",
				Help: "Total number of pokemon entities created",
			},
			[]string{"game", "source"},
		),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pokemon_conversions",
				Help: "Total number of cross-game conversions",
			},
			[]string{"from", "to", "status"},
		),
		skippedFields: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pokemon_conversion_skipped_fields",
				Help: "Fields left at their default during conversion",
			},
			[]string{"field"},
		),
	}
	if reg != nil {
		reg.MustRegister(col.metadataLookups, col.pokemonCreated, col.conversions, col.skippedFields)
	}
	return col
}

func (col *promCollector) IncMetadataLookups(kind, status string) {
	col.metadataLookups.WithLabelValues(kind, status).Inc()
}

func (col *promCollector) IncPokemonCreated(game, source string) {
	col.pokemonCreated.WithLabelValues(game, source).Inc()
}

func (col *promCollector) IncConversions(fromGeneration, toGeneration, status string) {
	col.conversions.WithLabelValues(fromGeneration, toGeneration, status).Inc()
}

func (col *promCollector) IncSkippedFields(field string) {
	col.skippedFields.WithLabelValues(field).Inc()
}
