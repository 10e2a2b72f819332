package database

import (
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	stripedmutex "github.com/nmvalera/striped-mutex"
	log "github.com/sirupsen/logrus"

	"porygon/intstripedmutex"
	"porygon/stats_collector"
)

type idKey struct {
	id   int
	game string
	form string
}

// CachedLookup memoises another Lookup. Concurrent misses for the same key
// are collapsed so the underlying source is queried once.
type CachedLookup struct {
	next  Lookup
	stats stats_collector.StatsCollector

	pokemonCache     *ttlcache.Cache[string, PokemonEntry]
	pokemonByIDCache *ttlcache.Cache[idKey, PokemonEntry]
	moveCache        *ttlcache.Cache[string, MoveEntry]
	itemCache        *ttlcache.Cache[string, ItemEntry]
	locationCache    *ttlcache.Cache[string, LocationEntry]

	nameMutex *stripedmutex.StripedMutex
	idMutex   *intstripedmutex.IntStripedMutex[int]
}

var _ Lookup = (*CachedLookup)(nil)

func NewCachedLookup(next Lookup, ttl time.Duration, stats stats_collector.StatsCollector) *CachedLookup {
	if stats == nil {
		stats = stats_collector.NewNoopStatsCollector()
	}
	c := &CachedLookup{
		next:  next,
		stats: stats,
		pokemonCache: ttlcache.New[string, PokemonEntry](
			ttlcache.WithTTL[string, PokemonEntry](ttl),
		),
		pokemonByIDCache: ttlcache.New[idKey, PokemonEntry](
			ttlcache.WithTTL[idKey, PokemonEntry](ttl),
		),
		moveCache: ttlcache.New[string, MoveEntry](
			ttlcache.WithTTL[string, MoveEntry](ttl),
		),
		itemCache: ttlcache.New[string, ItemEntry](
			ttlcache.WithTTL[string, ItemEntry](ttl),
		),
		locationCache: ttlcache.New[string, LocationEntry](
			ttlcache.WithTTL[string, LocationEntry](ttl),
		),
		nameMutex: stripedmutex.New(64),
		idMutex:   intstripedmutex.New[int](61),
	}
	go c.pokemonCache.Start()
	go c.pokemonByIDCache.Start()
	go c.moveCache.Start()
	go c.itemCache.Start()
	go c.locationCache.Start()
	return c
}

// Stop ends the expiry goroutines.
func (c *CachedLookup) Stop() {
	c.pokemonCache.Stop()
	c.pokemonByIDCache.Stop()
	c.moveCache.Stop()
	c.itemCache.Stop()
	c.locationCache.Stop()
}

func cachedByName[V any](c *CachedLookup, kind string, cache *ttlcache.Cache[string, V], key string, load func() (V, error)) (V, error) {
	if item := cache.Get(key); item != nil {
		c.stats.IncMetadataLookups(kind, "hit")
		return item.Value(), nil
	}

	mutex, _ := c.nameMutex.GetLock(kind + "/" + key)
	mutex.Lock()
	defer mutex.Unlock()

	if item := cache.Get(key); item != nil {
		c.stats.IncMetadataLookups(kind, "hit")
		return item.Value(), nil
	}

	value, err := load()
	if err != nil {
		c.stats.IncMetadataLookups(kind, "error")
		return value, err
	}
	c.stats.IncMetadataLookups(kind, "miss")
	cache.Set(key, value, ttlcache.DefaultTTL)
	log.Debugf("[METADATA] Cached %s %s", kind, key)
	return value, nil
}

func (c *CachedLookup) Pokemon(species, game, form string) (PokemonEntry, error) {
	key := fmt.Sprintf("%s/%s/%s", species, game, form)
	return cachedByName(c, "pokemon", c.pokemonCache, key, func() (PokemonEntry, error) {
		return c.next.Pokemon(species, game, form)
	})
}

func (c *CachedLookup) PokemonByID(id int, game, form string) (PokemonEntry, error) {
	key := idKey{id: id, game: game, form: form}
	if item := c.pokemonByIDCache.Get(key); item != nil {
		c.stats.IncMetadataLookups("pokemon_id", "hit")
		return item.Value(), nil
	}

	mutex := c.idMutex.GetLock(id)
	mutex.Lock()
	defer mutex.Unlock()

	if item := c.pokemonByIDCache.Get(key); item != nil {
		c.stats.IncMetadataLookups("pokemon_id", "hit")
		return item.Value(), nil
	}
	entry, err := c.next.PokemonByID(id, game, form)
	if err != nil {
		c.stats.IncMetadataLookups("pokemon_id", "error")
		return entry, err
	}
	c.stats.IncMetadataLookups("pokemon_id", "miss")
	c.pokemonByIDCache.Set(key, entry, ttlcache.DefaultTTL)
	return entry, nil
}

func (c *CachedLookup) Move(name, game string) (MoveEntry, error) {
	return cachedByName(c, "move", c.moveCache, name+"/"+game, func() (MoveEntry, error) {
		return c.next.Move(name, game)
	})
}

// Id keyed moves, items and locations are only needed while decoding native
// records, which is rare enough to go straight to the source.
func (c *CachedLookup) MoveByID(id int, game string) (MoveEntry, error) {
	c.stats.IncMetadataLookups("move_id", "direct")
	return c.next.MoveByID(id, game)
}

func (c *CachedLookup) Item(name, game string) (ItemEntry, error) {
	return cachedByName(c, "item", c.itemCache, name+"/"+game, func() (ItemEntry, error) {
		return c.next.Item(name, game)
	})
}

func (c *CachedLookup) ItemByID(id int, game string) (ItemEntry, error) {
	c.stats.IncMetadataLookups("item_id", "direct")
	return c.next.ItemByID(id, game)
}

func (c *CachedLookup) Location(name, game string) (LocationEntry, error) {
	return cachedByName(c, "location", c.locationCache, name+"/"+game, func() (LocationEntry, error) {
		return c.next.Location(name, game)
	})
}

func (c *CachedLookup) LocationByID(id int, game string) (LocationEntry, error) {
	c.stats.IncMetadataLookups("location_id", "direct")
	return c.next.LocationByID(id, game)
}
