package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"porygon/codec"
	"porygon/config"
	"porygon/database"
	"porygon/external"
	"porygon/pokemon"
	"porygon/stats_collector"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "porygon",
	Short:         "porygon - build, inspect and convert stored Pokémon records across game generations",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.ReadConfig(configPath)
		if err != nil {
			return err
		}
		logLevel := log.InfoLevel
		if cfg.Logging.Debug {
			logLevel = log.DebugLevel
		}
		SetupLogger(logLevel, cfg.Logging.SaveLogs)
		external.InitSentry()
		return nil
	},
}

var makeOpts struct {
	species, game, form, out string
	level                    int
}

var makeCmd = &cobra.Command{
	Use:   "make",
	Short: "Create a record with the configured trainer defaults",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withFactory(cmd.Context(), func(f *pokemon.Factory) error {
			p, err := f.Make(makeOpts.species, makeOpts.game, makeOpts.form, makeOpts.level)
			if err != nil {
				return err
			}
			return writeRecord(p, makeOpts.out)
		})
	},
}

var showGame string

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a stored record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFactory(cmd.Context(), func(f *pokemon.Factory) error {
			p, err := readRecord(f, args[0], showGame)
			if err != nil {
				return err
			}
			return codec.JSONMarshalWrite(os.Stdout, pokemon.Summarize(p))
		})
	},
}

var convertOpts struct {
	from, to string
}

var convertCmd = &cobra.Command{
	Use:   "convert IN OUT",
	Short: "Convert a stored record to another game",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFactory(cmd.Context(), func(f *pokemon.Factory) error {
			p, err := readRecord(f, args[0], convertOpts.from)
			if err != nil {
				return err
			}
			converted, err := p.ToGame(convertOpts.to)
			if err != nil {
				return err
			}
			log.Infof("[CONVERT] %s %s -> %s", p.Species(), p.Game(), converted.Game())
			return writeRecord(converted, args[1])
		})
	},
}

var importOpts struct {
	masterfile, out string
}

var importCmd = &cobra.Command{
	Use:   "import-metadata",
	Short: "Load a masterfile into an SQLite metadata database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		mf, err := loadMasterfile(importOpts.masterfile)
		if err != nil {
			return err
		}
		db, err := database.OpenSQLite(importOpts.out)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Import(mf); err != nil {
			return err
		}
		log.Infof("[METADATA] Imported %d species, %d moves, %d items and %d locations into %s",
			len(mf.Species()), len(mf.Moves()), len(mf.Items()), len(mf.Locations()), importOpts.out)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path of the TOML config file. Defaults apply when it does not exist.")

	makeCmd.Flags().StringVar(&makeOpts.species, "species", "", "Species name")
	makeCmd.Flags().StringVar(&makeOpts.game, "game", "", "Game name")
	makeCmd.Flags().StringVar(&makeOpts.form, "form", "", "Form name, the species' default when empty")
	makeCmd.Flags().IntVar(&makeOpts.level, "level", 5, "Level")
	makeCmd.Flags().StringVar(&makeOpts.out, "out", "", "Output file. Prints a JSON summary when empty.")
	_ = makeCmd.MarkFlagRequired("species")
	_ = makeCmd.MarkFlagRequired("game")

	showCmd.Flags().StringVar(&showGame, "game", "", "Game the record was stored by")
	_ = showCmd.MarkFlagRequired("game")

	convertCmd.Flags().StringVar(&convertOpts.from, "from", "", "Game the input was stored by")
	convertCmd.Flags().StringVar(&convertOpts.to, "to", "", "Target game")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")

	importCmd.Flags().StringVar(&importOpts.masterfile, "masterfile", "", "Masterfile to import, the embedded one when empty")
	importCmd.Flags().StringVar(&importOpts.out, "out", "", "SQLite database to create or update")
	_ = importCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(makeCmd, showCmd, convertCmd, importCmd)
}

// loadMasterfile merges path over the embedded masterfile.
func loadMasterfile(path string) (*database.Masterfile, error) {
	mf, err := database.EmbeddedMasterfile()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return mf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := mf.MergeBytes(data); err != nil {
		return nil, fmt.Errorf("merging %s: %w", path, err)
	}
	return mf, nil
}

// withFactory builds the metadata stack from the config and hands a Factory
// to fn.
func withFactory(ctx context.Context, fn func(f *pokemon.Factory) error) error {
	cfg := config.Config
	stats := stats_collector.GetStatsCollector(cfg.Prometheus.Enabled, external.Registry)

	var src database.Source
	if cfg.Metadata.SQLite != "" {
		db, err := database.OpenSQLite(cfg.Metadata.SQLite)
		if err != nil {
			return err
		}
		defer db.Close()
		log.Debugf("[METADATA] Using sqlite database %s", cfg.Metadata.SQLite)
		src = db
	} else {
		mf, err := loadMasterfile(cfg.Metadata.Masterfile)
		if err != nil {
			return err
		}
		src = mf
	}

	lookup := database.NewCachedLookup(database.NewStore(src), cfg.Metadata.CacheTTL, stats)
	defer lookup.Stop()

	defaults := pokemon.Defaults{
		TrainerName:   cfg.Defaults.TrainerName,
		TrainerID:     cfg.Defaults.TrainerID,
		TrainerGender: database.Gender(cfg.Defaults.TrainerGender),
		Language:      cfg.Defaults.Language,
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(pokemon.NewFactory(lookup, defaults, stats))
}

func readRecord(f *pokemon.Factory, path, game string) (pokemon.Pokemon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if size, err := pokemon.NativeSize(game); err == nil && len(data) != size {
		log.Warnf("[POKEMON] %s is %d bytes, %s records are %d", path, len(data), game, size)
	}
	return f.FromNative(data, game)
}

func writeRecord(p pokemon.Pokemon, path string) error {
	if path == "" {
		return codec.JSONMarshalWrite(os.Stdout, pokemon.Summarize(p))
	}
	if err := os.WriteFile(path, p.NativeData(), 0o644); err != nil {
		return err
	}
	log.Infof("[POKEMON] Wrote %s (%s) for %s to %s", p.Species(), p.Form(), p.Game(), path)
	return nil
}
