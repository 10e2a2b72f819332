package database

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSQLiteMatchesMasterfile(t *testing.T) {
	mf, err := EmbeddedMasterfile()
	if err != nil {
		t.Fatal(err)
	}
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "metadata.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := db.Import(mf); err != nil {
		t.Fatalf("import: %v", err)
	}
	// importing twice replaces rather than duplicates
	if err := db.Import(mf); err != nil {
		t.Fatalf("second import: %v", err)
	}

	fromFile := NewStore(mf)
	fromSQL := NewStore(db)

	lookups := []struct {
		species, game, form string
	}{
		{"Mightyena", "Emerald", ""},
		{"Magnemite", "Red", ""},
		{"Unown", "FireRed", "!"},
		{"Pichu", "SoulSilver", "Spiky-eared"},
		{"Pidgey", "White 2", ""},
	}
	for _, l := range lookups {
		t.Run(l.species+"/"+l.game, func(t *testing.T) {
			want, err := fromFile.Pokemon(l.species, l.game, l.form)
			if err != nil {
				t.Fatal(err)
			}
			got, err := fromSQL.Pokemon(l.species, l.game, l.form)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("expected %+v, got %+v", want, got)
			}
		})
	}

	want, _ := fromFile.Item("GS Ball", "Crystal")
	got, err := fromSQL.Item("GS Ball", "Crystal")
	if err != nil || want != got {
		t.Errorf("expected %+v, got %+v (%v)", want, got, err)
	}
	if _, err := fromSQL.Item("GS Ball", "Gold"); err == nil {
		t.Errorf("expected game restriction to survive the import")
	}
	move, err := fromSQL.MoveByID(33, "Red")
	if err != nil || move.Name != "Tackle" {
		t.Errorf("expected Tackle, got %+v (%v)", move, err)
	}
	loc, err := fromSQL.LocationByID(20, "Colosseum")
	if err != nil || loc.Name != "Distant land" {
		t.Errorf("expected Distant land, got %+v (%v)", loc, err)
	}
}

func TestSQLiteMissingRows(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if _, err := db.SpeciesByName("Porygon"); err == nil {
		t.Fatalf("expected an error from an empty database")
	}
}
