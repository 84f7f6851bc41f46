// Package engine implements the orchestrator (C7): the top-level per-request
// function that resolves champion descriptors concurrently, derives the
// active player, fans out one pipeline per opposing teammate, and collects
// the enriched response.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"lol-damage-engine/internal/allstats"
	"lol-damage-engine/internal/damage"
	"lol-damage-engine/internal/eval"
	"lol-damage-engine/internal/models"
	"lol-damage-engine/internal/refstore"
	"lol-damage-engine/internal/stats"
	"lol-damage-engine/internal/toolsim"
)

// Engine ties the reference store to the bounded-concurrency pool that
// drives champion resolution and opponent fan-out.
type Engine struct {
	store *refstore.Store
	pool  *Pool
}

// New returns an Engine backed by store, with a freshly sized worker pool.
func New(store *refstore.Store) *Engine {
	return &Engine{store: store, pool: NewPool()}
}

// ErrActiveTeamUnset is returned when the active player cannot be matched
// against any entry in all_players — an input error per the design note
// resolving this as a 4xx-class failure rather than undefined behavior.
var ErrActiveTeamUnset = fmt.Errorf("engine: active player not found among all_players")

// Calculate runs the full per-request pipeline against game, using toolID
// as the candidate tool, and returns the enriched response.
func (e *Engine) Calculate(ctx context.Context, game models.GameProps, toolID string, rec bool) (models.GameProps, error) {
	if err := e.assignChampions(ctx, &game); err != nil {
		return models.GameProps{}, err
	}

	activeTeam, err := findActiveTeam(game)
	if err != nil {
		return models.GameProps{}, err
	}
	game.ActivePlayer.Team = activeTeam

	attackerIdx := -1
	for i, p := range game.AllPlayers {
		if p.SummonerName == game.ActivePlayer.SummonerName {
			attackerIdx = i
			break
		}
	}
	if attackerIdx == -1 {
		return models.GameProps{}, ErrActiveTeamUnset
	}
	attackerRecord := game.AllPlayers[attackerIdx]

	if err := e.prepareAttacker(&game, attackerRecord, toolID); err != nil {
		return models.GameProps{}, err
	}

	sim := attackerSim(game, attackerRecord)
	sim.AbilityPack, err = e.store.AbilityPack(sim.ChampionID)
	if err != nil {
		return models.GameProps{}, err
	}
	sim.ItemsCatalog, sim.RunesCatalog = e.itemsAndRunes()
	modifiers := e.toolModifiers(toolID)

	tasks := make([]func(context.Context) error, 0, len(game.AllPlayers))
	for i := range game.AllPlayers {
		i := i
		if game.AllPlayers[i].Team == activeTeam {
			continue
		}
		tasks = append(tasks, func(context.Context) error {
			return e.runOpponent(&game.AllPlayers[i], sim, modifiers)
		})
	}

	if err := e.pool.Run(ctx, tasks); err != nil {
		return models.GameProps{}, err
	}

	return game, nil
}

func findActiveTeam(game models.GameProps) (string, error) {
	for _, p := range game.AllPlayers {
		if p.SummonerName == game.ActivePlayer.SummonerName {
			return p.Team, nil
		}
	}
	return "", ErrActiveTeamUnset
}

// assignChampions resolves champion_name -> descriptor for every player
// concurrently. Each task writes back into its own distinct slot of
// game.AllPlayers; the writes are still serialized behind a mutex, matching
// the "exclusive lock over the container" requirement even though each
// write touches a disjoint index.
func (e *Engine) assignChampions(ctx context.Context, game *models.GameProps) error {
	var mu sync.Mutex
	tasks := make([]func(context.Context) error, len(game.AllPlayers))
	for i := range game.AllPlayers {
		i := i
		tasks[i] = func(context.Context) error {
			descriptor, err := e.store.ChampionDescriptor(game.AllPlayers[i].ChampionName)
			if err != nil {
				return err
			}
			mu.Lock()
			game.AllPlayers[i].Champion = &descriptor
			mu.Unlock()
			return nil
		}
	}
	return e.pool.Run(ctx, tasks)
}

// prepareAttacker fills the active player's derived fields: champion,
// skin, base/bonus stats, relevant identifiers, and the resolved tool.
func (e *Engine) prepareAttacker(game *models.GameProps, record models.Player, toolID string) error {
	if record.Champion == nil {
		return fmt.Errorf("engine: attacker champion descriptor missing")
	}
	pack, err := e.store.AbilityPack(record.Champion.ID)
	if err != nil {
		return err
	}

	ap := &game.ActivePlayer
	ap.ChampionName = record.Champion.Name
	ap.Champion = record.Champion
	ap.Skin = record.SkinID

	base := stats.FromGrowth(record.Champion.Stats, ap.Level)
	bonus := stats.BonusFromActive(ap.ChampionStats, base)
	ap.BaseStats = &base
	ap.BonusStats = &bonus

	itemIDs := itemIDStrings(record.Items)
	relevant := buildRelevant(pack, itemIDs, e.store.Items(), runeIDStrings(ap.FullRunes), e.store.Runes(), record.SummonerSpells)
	ap.Relevant = &relevant

	tool, err := e.resolveTool(toolID)
	if err != nil {
		return err
	}
	ap.Tool = &tool
	return nil
}

func (e *Engine) resolveTool(toolID string) (models.ToolInfo, error) {
	entry, ok := e.store.Tools()[toolID]
	if !ok {
		return models.ToolInfo{}, fmt.Errorf("engine: unknown tool id %q", toolID)
	}
	raw := map[string]interface{}{
		"stack": entry.Stack,
		"maps":  entry.Maps,
	}
	var gold *int
	total := entry.Gold.Total
	gold = &total
	return models.ToolInfo{
		ID:     toolID,
		Name:   entry.Name,
		Active: true,
		Gold:   gold,
		Raw:    raw,
	}, nil
}

func itemIDStrings(items []models.PlayerItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprintf("%d", it.ItemID)
	}
	return out
}

func runeIDStrings(runes models.FullRunes) []string {
	out := make([]string, len(runes.GeneralRunes))
	for i, r := range runes.GeneralRunes {
		out[i] = fmt.Sprintf("%d", r.ID)
	}
	return out
}

func buildRelevant(pack models.LocalChampion, itemIDs []string, items models.LocalItems, runeIDs []string, runes models.LocalRunes, spells models.SummonerSpells) models.Relevant {
	abilityMin := make([]string, 0, len(pack)+2)
	abilityMax := make([]string, 0, len(pack))
	for key, ability := range pack {
		abilityMin = append(abilityMin, key)
		if len(ability.Max) > 0 {
			abilityMax = append(abilityMax, key)
		}
	}
	abilityMin = append(abilityMin, "A", "C")

	itemSet := toSet(itemIDs)
	itemMin := make([]string, 0, len(itemSet))
	itemMax := make([]string, 0, len(itemSet))
	for id, entry := range items.Data {
		if itemSet[id] {
			itemMin = append(itemMin, id)
			if entry.Max != nil {
				itemMax = append(itemMax, id)
			}
		}
	}

	runeSet := toSet(runeIDs)
	runeMin := make([]string, 0, len(runeSet))
	runeMax := make([]string, 0, len(runeSet))
	for id, entry := range runes.Data {
		if runeSet[id] {
			runeMin = append(runeMin, id)
			if entry.Max != nil {
				runeMax = append(runeMax, id)
			}
		}
	}

	spellMin := []string{}
	if containsIgnite(spells) {
		spellMin = append(spellMin, "SummonerDot")
	}

	return models.Relevant{
		Abilities: models.RelevantProps{Min: abilityMin, Max: abilityMax},
		Items:     models.RelevantProps{Min: itemMin, Max: itemMax},
		Runes:     models.RelevantProps{Min: runeMin, Max: runeMax},
		Spell:     models.RelevantProps{Min: spellMin, Max: []string{}},
	}
}

func containsIgnite(spells models.SummonerSpells) bool {
	const needle = "SummonerDot"
	return strings.Contains(spells.SummonerSpellOne.RawDescription, needle) || strings.Contains(spells.SummonerSpellTwo.RawDescription, needle)
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// attackerSim snapshots everything the tool simulator needs to rerun the
// kernels, built once per request and reused for every opponent.
func attackerSim(game models.GameProps, record models.Player) toolsim.Attacker {
	ap := game.ActivePlayer
	return toolsim.Attacker{
		ChampionID:    ap.Champion.ID,
		Level:         ap.Level,
		ChampionStats: ap.ChampionStats,
		BaseStats:     *ap.BaseStats,
		Relevant:      *ap.Relevant,
		Abilities:     ap.Abilities,
		Spells:        record.SummonerSpells,
	}
}

// runOpponent derives one opposing player's stats, computes their baseline
// damage, and simulates the candidate tool against them.
func (e *Engine) runOpponent(player *models.Player, sim toolsim.Attacker, modifiers map[string]interface{}) error {
	if player.Champion == nil {
		return fmt.Errorf("engine: opponent champion descriptor missing for %s", player.SummonerName)
	}

	base := stats.FromGrowth(player.Champion.Stats, player.Level)
	itemIDs := itemIDStrings(player.Items)
	itemStats := e.itemStatsFor(itemIDs)
	championStats := stats.FoldItemStats(base, itemStats)
	bonus := stats.BonusFromComputed(base, championStats)

	player.BaseStats = &base
	player.ChampionStats = &championStats
	player.BonusStats = &bonus

	defender := allstats.Defender{
		ChampionStats: championStats,
		BaseStats:     base,
		BonusStats:    bonus,
		ItemIDs:       itemIDs,
	}

	attacker := allstats.Attacker{
		ChampionID:       sim.ChampionID,
		Level:            sim.Level,
		ChampionStats:    sim.ChampionStats,
		BaseStats:        sim.BaseStats,
		BonusStats:       stats.BonusFromActive(sim.ChampionStats, sim.BaseStats),
		RelevantRunesMin: sim.Relevant.Runes.Min,
		RelevantItemsMin: sim.Relevant.Items.Min,
	}
	ctx := allstats.Build(attacker, defender)
	bindings := eval.BuildBindings(ctx)

	baseline := models.PlayerDamages{
		Abilities: damage.Abilities(sim.AbilityPack, sim.Abilities, sim.Level, ctx, bindings),
		Items:     damage.Items(sim.ItemsCatalog, sim.Relevant.Items, ctx, bindings),
		Runes:     damage.Runes(sim.RunesCatalog, sim.Relevant.Runes, ctx, bindings),
		Spell:     damage.Spell(sim.Level, sim.Spells),
	}
	player.Damage = &baseline

	toolResult := toolsim.Simulate(sim, modifiers, defender, baseline)
	player.Tool = &toolResult
	return nil
}

func (e *Engine) itemsAndRunes() (models.LocalItems, models.LocalRunes) {
	return e.store.Items(), e.store.Runes()
}

func (e *Engine) itemStatsFor(itemIDs []string) []map[string]float64 {
	out := make([]map[string]float64, 0, len(itemIDs))
	for _, id := range itemIDs {
		descriptor, ok := e.store.ItemDescriptor(id)
		if !ok {
			continue
		}
		out = append(out, descriptor.Stats)
	}
	return out
}

// toolModifiers resolves the candidate tool's modifiers into the generic
// map ApplyModifiers expects (numbers pass through, percentage strings stay
// strings so stats.ApplyModifiers can subtract their numeric content).
func (e *Engine) toolModifiers(toolID string) map[string]interface{} {
	entry, ok := e.store.Tools()[toolID]
	if !ok {
		return nil
	}
	out := make(map[string]interface{}, len(entry.Stats.Modifiers))
	for key, raw := range entry.Stats.Modifiers {
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			continue
		}
		out[key] = value
	}
	return out
}
