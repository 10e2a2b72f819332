package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"gopkg.in/guregu/null.v4"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// SQLite is a record Source backed by a metadata database imported from a
// masterfile.
type SQLite struct {
	db *sqlx.DB
}

var _ Source = (*SQLite)(nil)

type speciesRow struct {
	ID         int         `db:"id"`
	Name       string      `db:"name"`
	Generation int         `db:"generation"`
	Types      string      `db:"types"`
	Gen1Types  null.String `db:"gen1_types"`
	BaseStats
	HiddenAbility  null.String `db:"hidden_ability"`
	EggGroups      string      `db:"egg_groups"`
	GenderRate     int         `db:"gender_rate"`
	BaseFriendship int         `db:"base_friendship"`
	GrowthRate     string      `db:"growth_rate"`
	CatchRate      int         `db:"catch_rate"`
}

type abilityRow struct {
	SpeciesID  int    `db:"species_id"`
	Slot       int    `db:"slot"`
	Name       string `db:"name"`
	Generation int    `db:"generation"`
}

type formRow struct {
	SpeciesID  int         `db:"species_id"`
	Slot       int         `db:"slot"`
	Name       string      `db:"name"`
	Generation int         `db:"generation"`
	Games      null.String `db:"games"`
}

type moveRow struct {
	ID         int         `db:"id"`
	Name       string      `db:"name"`
	Generation int         `db:"generation"`
	Type       string      `db:"type"`
	PP         int         `db:"pp"`
	Games      null.String `db:"games"`
}

type itemRow struct {
	ID             int         `db:"id"`
	Name           string      `db:"name"`
	Generation     int         `db:"generation"`
	LastGeneration int         `db:"last_generation"`
	Holdable       bool        `db:"holdable"`
	Pocket         string      `db:"pocket"`
	Games          null.String `db:"games"`
}

type locationRow struct {
	ID     int    `db:"id"`
	Name   string `db:"name"`
	Groups string `db:"location_groups"`
}

// OpenSQLite opens (creating if needed) a metadata database and brings its
// schema up to date.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// modernc connections do not share an in-process cache
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrateSQLite(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLite{db: db}, nil
}

func migrateSQLite(db *sql.DB) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	// m.Close would close the shared handle, only release the source
	defer src.Close()

	log.Debugf("[SQLITE] Starting migration")
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func joinList(values []string) string {
	return strings.Join(values, ",")
}

func joinNullList(values []string) null.String {
	if len(values) == 0 {
		return null.String{}
	}
	return null.StringFrom(joinList(values))
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// Import writes every record of a masterfile, replacing rows with the same id.
func (s *SQLite) Import(mf *Masterfile) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	species := mf.Species()
	for _, rec := range species {
		row := speciesRow{
			ID:             rec.ID,
			Name:           rec.Name,
			Generation:     rec.Generation,
			Types:          joinList(rec.Types),
			Gen1Types:      joinNullList(rec.Gen1Types),
			BaseStats:      rec.BaseStats,
			HiddenAbility:  null.NewString(rec.HiddenAbility, rec.HiddenAbility != ""),
			EggGroups:      joinList(rec.EggGroups),
			GenderRate:     rec.GenderRate,
			BaseFriendship: rec.BaseFriendship,
			GrowthRate:     rec.GrowthRate,
			CatchRate:      rec.CatchRate,
		}
		_, err = tx.NamedExec(`
			INSERT OR REPLACE INTO species (
				id, name, generation, types, gen1_types,
				hp, attack, defense, speed, special_attack, special_defense, special,
				hidden_ability, egg_groups, gender_rate, base_friendship, growth_rate, catch_rate
			) VALUES (
				:id, :name, :generation, :types, :gen1_types,
				:hp, :attack, :defense, :speed, :special_attack, :special_defense, :special,
				:hidden_ability, :egg_groups, :gender_rate, :base_friendship, :growth_rate, :catch_rate
			)`, row)
		if err != nil {
			return fmt.Errorf("insert species %s: %w", rec.Name, err)
		}

		if _, err = tx.Exec("DELETE FROM species_abilities WHERE species_id = ?", rec.ID); err != nil {
			return err
		}
		for slot, a := range rec.Abilities {
			_, err = tx.NamedExec(`
				INSERT INTO species_abilities (species_id, slot, name, generation)
				VALUES (:species_id, :slot, :name, :generation)`,
				abilityRow{SpeciesID: rec.ID, Slot: slot, Name: a.Name, Generation: a.Generation})
			if err != nil {
				return fmt.Errorf("insert ability %s: %w", a.Name, err)
			}
		}

		if _, err = tx.Exec("DELETE FROM species_forms WHERE species_id = ?", rec.ID); err != nil {
			return err
		}
		for slot, f := range rec.Forms {
			_, err = tx.NamedExec(`
				INSERT INTO species_forms (species_id, slot, name, generation, games)
				VALUES (:species_id, :slot, :name, :generation, :games)`,
				formRow{SpeciesID: rec.ID, Slot: slot, Name: f.Name, Generation: f.Generation, Games: joinNullList(f.Games)})
			if err != nil {
				return fmt.Errorf("insert form %s: %w", f.Name, err)
			}
		}
	}

	moves := mf.Moves()
	for _, rec := range moves {
		_, err = tx.NamedExec(`
			INSERT OR REPLACE INTO moves (id, name, generation, type, pp, games)
			VALUES (:id, :name, :generation, :type, :pp, :games)`,
			moveRow{ID: rec.ID, Name: rec.Name, Generation: rec.Generation, Type: rec.Type, PP: rec.PP, Games: joinNullList(rec.Games)})
		if err != nil {
			return fmt.Errorf("insert move %s: %w", rec.Name, err)
		}
	}

	items := mf.Items()
	for _, rec := range items {
		_, err = tx.NamedExec(`
			INSERT OR REPLACE INTO items (id, name, generation, last_generation, holdable, pocket, games)
			VALUES (:id, :name, :generation, :last_generation, :holdable, :pocket, :games)`,
			itemRow{
				ID:             rec.ID,
				Name:           rec.Name,
				Generation:     rec.Generation,
				LastGeneration: rec.LastGeneration,
				Holdable:       rec.Holdable,
				Pocket:         rec.Pocket,
				Games:          joinNullList(rec.Games),
			})
		if err != nil {
			return fmt.Errorf("insert item %s: %w", rec.Name, err)
		}
	}

	locations := mf.Locations()
	for _, rec := range locations {
		_, err = tx.NamedExec(`
			INSERT OR REPLACE INTO locations (id, name, location_groups)
			VALUES (:id, :name, :location_groups)`,
			locationRow{ID: rec.ID, Name: rec.Name, Groups: joinList(rec.Groups)})
		if err != nil {
			return fmt.Errorf("insert location %s: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Infof("[SQLITE] Imported %d species, %d moves, %d items, %d locations",
		len(species), len(moves), len(items), len(locations))
	return nil
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func (s *SQLite) SpeciesByName(name string) (*SpeciesRecord, error) {
	var row speciesRow
	if err := s.db.Get(&row, "SELECT * FROM species WHERE name = ?", name); err != nil {
		return nil, notFound(err, fmt.Sprintf("species %q", name))
	}
	return s.speciesRecord(row)
}

func (s *SQLite) SpeciesByID(id int) (*SpeciesRecord, error) {
	var row speciesRow
	if err := s.db.Get(&row, "SELECT * FROM species WHERE id = ?", id); err != nil {
		return nil, notFound(err, fmt.Sprintf("species id %d", id))
	}
	return s.speciesRecord(row)
}

func (s *SQLite) speciesRecord(row speciesRow) (*SpeciesRecord, error) {
	rec := &SpeciesRecord{
		ID:             row.ID,
		Name:           row.Name,
		Generation:     row.Generation,
		Types:          splitList(row.Types),
		Gen1Types:      splitList(row.Gen1Types.ValueOrZero()),
		BaseStats:      row.BaseStats,
		HiddenAbility:  row.HiddenAbility.ValueOrZero(),
		EggGroups:      splitList(row.EggGroups),
		GenderRate:     row.GenderRate,
		BaseFriendship: row.BaseFriendship,
		GrowthRate:     row.GrowthRate,
		CatchRate:      row.CatchRate,
	}

	var abilities []abilityRow
	err := s.db.Select(&abilities, "SELECT * FROM species_abilities WHERE species_id = ? ORDER BY slot", row.ID)
	if err != nil {
		return nil, fmt.Errorf("abilities of %s: %w", row.Name, err)
	}
	for _, a := range abilities {
		rec.Abilities = append(rec.Abilities, AbilityRecord{Name: a.Name, Generation: a.Generation})
	}

	var forms []formRow
	err = s.db.Select(&forms, "SELECT * FROM species_forms WHERE species_id = ? ORDER BY slot", row.ID)
	if err != nil {
		return nil, fmt.Errorf("forms of %s: %w", row.Name, err)
	}
	for _, f := range forms {
		rec.Forms = append(rec.Forms, FormRecord{Name: f.Name, Generation: f.Generation, Games: splitList(f.Games.ValueOrZero())})
	}
	return rec, nil
}

func (r moveRow) record() *MoveRecord {
	return &MoveRecord{
		ID:         r.ID,
		Name:       r.Name,
		Generation: r.Generation,
		Type:       r.Type,
		PP:         r.PP,
		Games:      splitList(r.Games.ValueOrZero()),
	}
}

func (s *SQLite) MoveByName(name string) (*MoveRecord, error) {
	var row moveRow
	if err := s.db.Get(&row, "SELECT * FROM moves WHERE name = ?", name); err != nil {
		return nil, notFound(err, fmt.Sprintf("move %q", name))
	}
	return row.record(), nil
}

func (s *SQLite) MoveByID(id int) (*MoveRecord, error) {
	var row moveRow
	if err := s.db.Get(&row, "SELECT * FROM moves WHERE id = ?", id); err != nil {
		return nil, notFound(err, fmt.Sprintf("move id %d", id))
	}
	return row.record(), nil
}

func (r itemRow) record() *ItemRecord {
	return &ItemRecord{
		ID:             r.ID,
		Name:           r.Name,
		Generation:     r.Generation,
		LastGeneration: r.LastGeneration,
		Holdable:       r.Holdable,
		Pocket:         r.Pocket,
		Games:          splitList(r.Games.ValueOrZero()),
	}
}

func (s *SQLite) ItemByName(name string) (*ItemRecord, error) {
	var row itemRow
	if err := s.db.Get(&row, "SELECT * FROM items WHERE name = ?", name); err != nil {
		return nil, notFound(err, fmt.Sprintf("item %q", name))
	}
	return row.record(), nil
}

func (s *SQLite) ItemByID(id int) (*ItemRecord, error) {
	var row itemRow
	if err := s.db.Get(&row, "SELECT * FROM items WHERE id = ?", id); err != nil {
		return nil, notFound(err, fmt.Sprintf("item id %d", id))
	}
	return row.record(), nil
}

func (r locationRow) record() *LocationRecord {
	return &LocationRecord{ID: r.ID, Name: r.Name, Groups: splitList(r.Groups)}
}

func (s *SQLite) LocationByName(name string) (*LocationRecord, error) {
	var row locationRow
	if err := s.db.Get(&row, "SELECT * FROM locations WHERE name = ?", name); err != nil {
		return nil, notFound(err, fmt.Sprintf("location %q", name))
	}
	return row.record(), nil
}

func (s *SQLite) LocationByID(id int) (*LocationRecord, error) {
	var row locationRow
	if err := s.db.Get(&row, "SELECT * FROM locations WHERE id = ?", id); err != nil {
		return nil, notFound(err, fmt.Sprintf("location id %d", id))
	}
	return row.record(), nil
}
