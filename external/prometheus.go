package external

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"porygon/config"
)

// Registry collects the counters of one CLI run for the textfile export.
var Registry = prometheus.NewRegistry()

func WritePrometheusTextfile() {
	cfg := config.Config.Prometheus
	if !cfg.Enabled || cfg.Textfile == "" {
		return
	}
	if err := prometheus.WriteToTextfile(cfg.Textfile, Registry); err != nil {
		log.Errorf("Writing prometheus textfile %s failed: %s", cfg.Textfile, err)
		return
	}
	log.Debugf("Prometheus counters written to %s", cfg.Textfile)
}
