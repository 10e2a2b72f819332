package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ReadConfig layers the file at path over the built-in defaults and stores
// the result in Config. A missing file leaves the defaults in place.
func ReadConfig(path string) (configDefinition, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig, "toml"), nil); err != nil {
		return Config, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return Config, fmt.Errorf("reading %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config, err
		}
	}

	var cfg configDefinition
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "toml"}); err != nil {
		return Config, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Defaults.TrainerGender != "Male" && cfg.Defaults.TrainerGender != "Female" {
		return Config, fmt.Errorf("defaults.trainer_gender must be Male or Female, got %q", cfg.Defaults.TrainerGender)
	}
	if cfg.Sentry.SampleRate < 0 || cfg.Sentry.SampleRate > 1 {
		return Config, fmt.Errorf("sentry.sample_rate %v not in [0, 1]", cfg.Sentry.SampleRate)
	}

	Config = cfg
	return cfg, nil
}
