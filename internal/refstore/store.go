// Package refstore holds the process-wide, read-mostly reference data the
// damage engine consults: item/rune/tool catalogs, the champion alias table,
// and the per-champion Riot/ability descriptors loaded from disk on demand.
package refstore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"lol-damage-engine/internal/models"
)

// Config points the store at the directory tree holding the reference JSON
// documents (effects/, cache/, champions/), matching the on-disk layout
// described for this service's reference data.
type Config struct {
	DataDir string
}

// Store is the single injected handle C7 uses for every reference lookup.
// Lazy-loaded tables become immutable after their first load; the champion
// descriptor cache and the single-slot ability pack stay mutable for the
// life of the process.
type Store struct {
	dataDir string

	itemsOnce sync.Once
	items     models.LocalItems
	itemsErr  error

	runesOnce sync.Once
	runes     models.LocalRunes
	runesErr  error

	toolsOnce sync.Once
	tools     models.LocalStats
	toolsErr  error

	idsOnce sync.Once
	ids     models.IdsCache
	idsErr  error

	itemCacheOnce sync.Once
	itemCache     models.ItemCache
	itemCacheErr  error

	champMu    sync.RWMutex
	champCache map[string]models.ChampionCache

	abilityMu   sync.RWMutex
	abilityID   string
	abilityPack models.LocalChampion
}

// New returns a Store bound to the given data directory. No file I/O
// happens until the first lookup.
func New(config Config) *Store {
	return &Store{
		dataDir:    config.DataDir,
		champCache: make(map[string]models.ChampionCache),
	}
}

func (s *Store) path(rel string) string {
	return filepath.Join(s.dataDir, rel+".json")
}

func loadJSON(path string, dest interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load reference file %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("parse reference file %s: %w", path, err)
	}
	return nil
}

// Items yields the fully-loaded item-effect catalog. The first call
// triggers a synchronous load from effects/items.json; a missing or
// malformed file there is startup-fatal.
func (s *Store) Items() models.LocalItems {
	s.itemsOnce.Do(func() {
		s.itemsErr = loadJSON(s.path("effects/items"), &s.items)
		if s.itemsErr != nil {
			log.Fatalf("🔥 [REFSTORE] %v", s.itemsErr)
		}
		log.Printf("📦 [REFSTORE] loaded %d item effects", len(s.items.Data))
	})
	return s.items
}

// Runes yields the fully-loaded rune-effect catalog.
func (s *Store) Runes() models.LocalRunes {
	s.runesOnce.Do(func() {
		s.runesErr = loadJSON(s.path("effects/runes"), &s.runes)
		if s.runesErr != nil {
			log.Fatalf("🔥 [REFSTORE] %v", s.runesErr)
		}
		log.Printf("📦 [REFSTORE] loaded %d rune effects", len(s.runes.Data))
	})
	return s.runes
}

// Tools yields the fully-loaded tool (item stat) catalog.
func (s *Store) Tools() models.LocalStats {
	s.toolsOnce.Do(func() {
		s.toolsErr = loadJSON(s.path("cache/stats"), &s.tools)
		if s.toolsErr != nil {
			log.Fatalf("🔥 [REFSTORE] %v", s.toolsErr)
		}
		log.Printf("📦 [REFSTORE] loaded %d tools", len(s.tools))
	})
	return s.tools
}

// Ids yields the champion-alias table (internal id -> locale -> display name).
func (s *Store) Ids() models.IdsCache {
	s.idsOnce.Do(func() {
		s.idsErr = loadJSON(s.path("cache/ids"), &s.ids)
		if s.idsErr != nil {
			log.Fatalf("🔥 [REFSTORE] %v", s.idsErr)
		}
		log.Printf("📦 [REFSTORE] loaded %d champion aliases", len(s.ids))
	})
	return s.ids
}

func (s *Store) itemDescriptors() models.ItemCache {
	s.itemCacheOnce.Do(func() {
		s.itemCacheErr = loadJSON(s.path("cache/item"), &s.itemCache)
		if s.itemCacheErr != nil {
			log.Fatalf("🔥 [REFSTORE] %v", s.itemCacheErr)
		}
		log.Printf("📦 [REFSTORE] loaded %d Riot item descriptors", len(s.itemCache.Data))
	})
	return s.itemCache
}

// ItemDescriptor returns the Riot item descriptor for itemID, or false if
// the catalog has no entry for it (a lookup miss, not an error — callers
// skip the identifier and continue).
func (s *Store) ItemDescriptor(itemID string) (models.ItemDescriptor, bool) {
	raw, ok := s.itemDescriptors().Data[itemID]
	if !ok {
		return models.ItemDescriptor{}, false
	}
	name := ""
	if raw.Name != nil {
		name = *raw.Name
	}
	desc := ""
	if raw.Description != nil {
		desc = *raw.Description
	}
	var gold *models.RiotItemGold
	if raw.Gold != nil {
		g := *raw.Gold
		gold = &models.RiotItemGold{Base: g.Base, Total: g.Total, Sell: g.Sell, Purchasable: g.Purchasable}
	}
	return models.ItemDescriptor{
		Name:        name,
		Description: desc,
		Stats:       raw.Stats,
		Gold:        gold,
		Maps:        raw.Maps,
		From:        raw.From,
	}, true
}

// dummyInternalID is the sentinel returned by ChampionDescriptor when the
// in-game display name cannot be resolved against the alias table.
const dummyInternalID = "TargetDummy"

// resolveInternalID scans ids() for the first internal id whose locale map
// contains inGameName, mirroring the original get_champion linear scan: tie
// order across map iteration is intentionally left unspecified.
func (s *Store) resolveInternalID(inGameName string) string {
	for internalID, locales := range s.Ids() {
		for _, display := range locales {
			if display == inGameName {
				return internalID
			}
		}
	}
	return dummyInternalID
}

// ChampionDescriptor resolves an in-game display name to its champion
// descriptor. A miss against the alias table falls back to the
// "TargetDummy" sentinel internal id rather than failing the request.
func (s *Store) ChampionDescriptor(inGameName string) (models.ChampionDescriptor, error) {
	internalID := s.resolveInternalID(inGameName)

	s.champMu.RLock()
	cached, ok := s.champCache[internalID]
	s.champMu.RUnlock()
	if ok {
		return descriptorFromCache(cached)
	}

	s.champMu.Lock()
	defer s.champMu.Unlock()
	if cached, ok := s.champCache[internalID]; ok {
		return descriptorFromCache(cached)
	}

	var loaded models.ChampionCache
	if err := loadJSON(s.path(filepath.Join("cache/champions", internalID)), &loaded); err != nil {
		return models.ChampionDescriptor{}, err
	}
	s.champCache[internalID] = loaded
	log.Printf("📦 [REFSTORE] installed champion descriptor %s", internalID)
	return descriptorFromCache(loaded)
}

func descriptorFromCache(cache models.ChampionCache) (models.ChampionDescriptor, error) {
	for id, data := range cache.Data {
		return models.ChampionDescriptor{
			ID:      id,
			Name:    data.Name,
			Stats:   data.Stats,
			Spells:  data.Spells,
			Passive: data.Passive,
		}, nil
	}
	return models.ChampionDescriptor{}, fmt.Errorf("refstore: champion descriptor cache entry empty")
}

// AbilityPack returns the ability formula pack for internalID. The store
// keeps only one pack resident at a time: a request for a different id
// replaces the slot and its id tag atomically under an exclusive lock, so a
// reader never observes a pack paired with a different id than it checked.
func (s *Store) AbilityPack(internalID string) (models.LocalChampion, error) {
	s.abilityMu.RLock()
	if s.abilityID == internalID {
		pack := s.abilityPack
		s.abilityMu.RUnlock()
		return pack, nil
	}
	s.abilityMu.RUnlock()

	s.abilityMu.Lock()
	defer s.abilityMu.Unlock()
	if s.abilityID == internalID {
		return s.abilityPack, nil
	}

	var pack models.LocalChampion
	if err := loadJSON(s.path(filepath.Join("champions", internalID)), &pack); err != nil {
		return nil, err
	}
	s.abilityID = internalID
	s.abilityPack = pack
	log.Printf("📦 [REFSTORE] ability pack slot now holds %s", internalID)
	return pack, nil
}
