package database

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidGame = errors.New("invalid game")
	ErrInvalidForm = errors.New("invalid form")
)

// Lookup is the read-only metadata reference consulted by entities. All
// methods are safe for concurrent use.
type Lookup interface {
	Pokemon(species, game, form string) (PokemonEntry, error)
	PokemonByID(id int, game, form string) (PokemonEntry, error)
	Move(name, game string) (MoveEntry, error)
	MoveByID(id int, game string) (MoveEntry, error)
	Item(name, game string) (ItemEntry, error)
	ItemByID(id int, game string) (ItemEntry, error)
	Location(name, game string) (LocationEntry, error)
	LocationByID(id int, game string) (LocationEntry, error)
}
