package config

import "time"

type configDefinition struct {
	Logging    logging    `toml:"logging"`
	Metadata   metadata   `toml:"metadata"`
	Defaults   defaults   `toml:"defaults"`
	Prometheus prometheus `toml:"prometheus"`
	Sentry     sentry     `toml:"sentry"`
}

type logging struct {
	Debug      bool `toml:"debug"`
	SaveLogs   bool `toml:"save_logs"`
	MaxSize    int  `toml:"max_size"`
	MaxAge     int  `toml:"max_age"`
	MaxBackups int  `toml:"max_backups"`
	Compress   bool `toml:"compress"`
}

// metadata picks the reference data source. A masterfile is merged over the
// embedded one; an SQLite path takes precedence over both.
type metadata struct {
	Masterfile string        `toml:"masterfile"`
	SQLite     string        `toml:"sqlite"`
	CacheTTL   time.Duration `toml:"cache_ttl"`
}

type defaults struct {
	TrainerName   string `toml:"trainer_name"`
	TrainerID     uint32 `toml:"trainer_id"`
	TrainerGender string `toml:"trainer_gender"`
	Language      string `toml:"language"`
}

type prometheus struct {
	Enabled  bool   `toml:"enabled"`
	Textfile string `toml:"textfile"`
}

type sentry struct {
	DSN        string  `toml:"dsn"`
	SampleRate float64 `toml:"sample_rate"`
}

// Config holds the settings of the last successful ReadConfig.
var Config = defaultConfig

var defaultConfig = configDefinition{
	Logging: logging{
		MaxSize:    50,
		MaxAge:     30,
		MaxBackups: 5,
	},
	Metadata: metadata{
		CacheTTL: 10 * time.Minute,
	},
	Defaults: defaults{
		TrainerName:   "PORYGON",
		TrainerID:     0x04D2_162E,
		TrainerGender: "Male",
		Language:      "English",
	},
	Prometheus: prometheus{
		Textfile: "porygon.prom",
	},
	Sentry: sentry{
		SampleRate: 1.0,
	},
}
