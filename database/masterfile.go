package database

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/puzpuzpuz/xsync/v3"
	log "github.com/sirupsen/logrus"

	"porygon/codec"
)

//go:embed data/masterfile.json
var embeddedMasterfile []byte

var (
	errMasterfileOpen      = errors.New("can't open masterfile")
	errMasterfileUnmarshal = errors.New("can't unmarshal masterfile")
)

type rawMasterfile struct {
	Pokemon   map[string]SpeciesRecord  `json:"pokemon"`
	Moves     map[string]MoveRecord     `json:"moves"`
	Items     map[string]ItemRecord     `json:"items"`
	Locations map[string]LocationRecord `json:"locations"`
}

// Masterfile is an in-memory record Source. Records may be merged in from
// further files while lookups are running.
type Masterfile struct {
	species       *xsync.MapOf[int, *SpeciesRecord]
	speciesByName *xsync.MapOf[string, int]
	moves         *xsync.MapOf[int, *MoveRecord]
	movesByName   *xsync.MapOf[string, int]
	items         *xsync.MapOf[int, *ItemRecord]
	itemsByName   *xsync.MapOf[string, int]
	locations     *xsync.MapOf[int, *LocationRecord]
	locsByName    *xsync.MapOf[string, int]
}

var _ Source = (*Masterfile)(nil)

func newMasterfile() *Masterfile {
	return &Masterfile{
		species:       xsync.NewMapOf[int, *SpeciesRecord](),
		speciesByName: xsync.NewMapOf[string, int](),
		moves:         xsync.NewMapOf[int, *MoveRecord](),
		movesByName:   xsync.NewMapOf[string, int](),
		items:         xsync.NewMapOf[int, *ItemRecord](),
		itemsByName:   xsync.NewMapOf[string, int](),
		locations:     xsync.NewMapOf[int, *LocationRecord](),
		locsByName:    xsync.NewMapOf[string, int](),
	}
}

// EmbeddedMasterfile returns the masterfile compiled into the binary.
func EmbeddedMasterfile() (*Masterfile, error) {
	return LoadMasterfileBytes(embeddedMasterfile)
}

// LoadMasterfile reads a masterfile from disk.
func LoadMasterfile(filePath string) (*Masterfile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMasterfileOpen, err)
	}
	return LoadMasterfileBytes(data)
}

func LoadMasterfileBytes(data []byte) (*Masterfile, error) {
	mf := newMasterfile()
	if err := mf.MergeBytes(data); err != nil {
		return nil, err
	}
	return mf, nil
}

// MergeBytes adds every record of a masterfile document, replacing records
// with the same id.
func (mf *Masterfile) MergeBytes(data []byte) error {
	var raw rawMasterfile
	if err := codec.JSONUnmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", errMasterfileUnmarshal, err)
	}

	for key, rec := range raw.Pokemon {
		id, err := strconv.Atoi(key)
		if err != nil {
			log.Warnf("[METADATA] Skipping pokemon with bad id %q", key)
			continue
		}
		rec.ID = id
		mf.AddSpecies(rec)
	}
	for key, rec := range raw.Moves {
		id, err := strconv.Atoi(key)
		if err != nil {
			log.Warnf("[METADATA] Skipping move with bad id %q", key)
			continue
		}
		rec.ID = id
		mf.AddMove(rec)
	}
	for key, rec := range raw.Items {
		id, err := strconv.Atoi(key)
		if err != nil {
			log.Warnf("[METADATA] Skipping item with bad id %q", key)
			continue
		}
		rec.ID = id
		mf.AddItem(rec)
	}
	for key, rec := range raw.Locations {
		id, err := strconv.Atoi(key)
		if err != nil {
			log.Warnf("[METADATA] Skipping location with bad id %q", key)
			continue
		}
		rec.ID = id
		mf.AddLocation(rec)
	}
	return nil
}

func (mf *Masterfile) AddSpecies(rec SpeciesRecord) {
	mf.species.Store(rec.ID, &rec)
	mf.speciesByName.Store(rec.Name, rec.ID)
}

func (mf *Masterfile) AddMove(rec MoveRecord) {
	mf.moves.Store(rec.ID, &rec)
	mf.movesByName.Store(rec.Name, rec.ID)
}

func (mf *Masterfile) AddItem(rec ItemRecord) {
	mf.items.Store(rec.ID, &rec)
	mf.itemsByName.Store(rec.Name, rec.ID)
}

func (mf *Masterfile) AddLocation(rec LocationRecord) {
	mf.locations.Store(rec.ID, &rec)
	mf.locsByName.Store(rec.Name, rec.ID)
}

func (mf *Masterfile) SpeciesByName(name string) (*SpeciesRecord, error) {
	id, ok := mf.speciesByName.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: species %q", ErrNotFound, name)
	}
	return mf.SpeciesByID(id)
}

func (mf *Masterfile) SpeciesByID(id int) (*SpeciesRecord, error) {
	rec, ok := mf.species.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: species id %d", ErrNotFound, id)
	}
	return rec, nil
}

func (mf *Masterfile) MoveByName(name string) (*MoveRecord, error) {
	id, ok := mf.movesByName.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: move %q", ErrNotFound, name)
	}
	return mf.MoveByID(id)
}

func (mf *Masterfile) MoveByID(id int) (*MoveRecord, error) {
	rec, ok := mf.moves.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: move id %d", ErrNotFound, id)
	}
	return rec, nil
}

func (mf *Masterfile) ItemByName(name string) (*ItemRecord, error) {
	id, ok := mf.itemsByName.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: item %q", ErrNotFound, name)
	}
	return mf.ItemByID(id)
}

func (mf *Masterfile) ItemByID(id int) (*ItemRecord, error) {
	rec, ok := mf.items.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: item id %d", ErrNotFound, id)
	}
	return rec, nil
}

func (mf *Masterfile) LocationByName(name string) (*LocationRecord, error) {
	id, ok := mf.locsByName.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: location %q", ErrNotFound, name)
	}
	return mf.LocationByID(id)
}

func (mf *Masterfile) LocationByID(id int) (*LocationRecord, error) {
	rec, ok := mf.locations.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: location id %d", ErrNotFound, id)
	}
	return rec, nil
}

// Species returns every species record ordered by id.
func (mf *Masterfile) Species() []SpeciesRecord {
	var out []SpeciesRecord
	mf.species.Range(func(_ int, rec *SpeciesRecord) bool {
		out = append(out, *rec)
		return true
	})
	slices.SortFunc(out, func(a, b SpeciesRecord) int { return a.ID - b.ID })
	return out
}

func (mf *Masterfile) Moves() []MoveRecord {
	var out []MoveRecord
	mf.moves.Range(func(_ int, rec *MoveRecord) bool {
		out = append(out, *rec)
		return true
	})
	slices.SortFunc(out, func(a, b MoveRecord) int { return a.ID - b.ID })
	return out
}

func (mf *Masterfile) Items() []ItemRecord {
	var out []ItemRecord
	mf.items.Range(func(_ int, rec *ItemRecord) bool {
		out = append(out, *rec)
		return true
	})
	slices.SortFunc(out, func(a, b ItemRecord) int { return a.ID - b.ID })
	return out
}

func (mf *Masterfile) Locations() []LocationRecord {
	var out []LocationRecord
	mf.locations.Range(func(_ int, rec *LocationRecord) bool {
		out = append(out, *rec)
		return true
	})
	slices.SortFunc(out, func(a, b LocationRecord) int { return a.ID - b.ID })
	return out
}
