// Package toolsim implements the "what if I bought this" comparison: clone
// the attacker, apply a candidate tool's stat modifiers, rerun the damage
// kernels, and diff the result against the attacker's baseline damage.
package toolsim

import (
	"log"

	"lol-damage-engine/internal/allstats"
	"lol-damage-engine/internal/damage"
	"lol-damage-engine/internal/eval"
	"lol-damage-engine/internal/models"
	"lol-damage-engine/internal/stats"
)

// Attacker bundles the fully-derived attacker state the simulator needs to
// rerun the damage kernels under a hypothetical stat mutation.
type Attacker struct {
	ChampionID    string
	Level         int
	ChampionStats models.ChampionStats
	BaseStats     models.CoreStats
	Relevant      models.Relevant
	AbilityPack   models.LocalChampion
	Abilities     models.Abilities
	Spells        models.SummonerSpells
	ItemsCatalog  models.LocalItems
	RunesCatalog  models.LocalRunes
}

// Simulate applies modifiers to attacker's current stats, rebuilds the
// evaluation context against defender, reruns the four kernels, and returns
// the resulting PlayerTool: the post-tool maximum damages, their elementwise
// delta against baseline, and the scalar sum of that delta.
func Simulate(attacker Attacker, modifiers map[string]interface{}, defender allstats.Defender, baseline models.PlayerDamages) models.PlayerTool {
	mutated := stats.ApplyModifiers(attacker.ChampionStats, modifiers)
	bonus := stats.BonusFromActive(mutated, attacker.BaseStats)

	ctx := allstats.Build(allstats.Attacker{
		ChampionID:       attacker.ChampionID,
		Level:            attacker.Level,
		ChampionStats:    mutated,
		BaseStats:        attacker.BaseStats,
		BonusStats:       bonus,
		RelevantRunesMin: attacker.Relevant.Runes.Min,
		RelevantItemsMin: attacker.Relevant.Items.Min,
	}, defender)
	bindings := eval.BuildBindings(ctx)

	maxDamages := models.PlayerDamages{
		Abilities: damage.Abilities(attacker.AbilityPack, attacker.Abilities, attacker.Level, ctx, bindings),
		Items:     damage.Items(attacker.ItemsCatalog, attacker.Relevant.Items, ctx, bindings),
		Runes:     damage.Runes(attacker.RunesCatalog, attacker.Relevant.Runes, ctx, bindings),
		Spell:     damage.Spell(attacker.Level, attacker.Spells),
	}

	dif, sum := delta(maxDamages, baseline)
	return models.PlayerTool{
		Dif: &dif,
		Max: maxDamages,
		Sum: sum,
	}
}

func delta(max, baseline models.PlayerDamages) (models.PlayerDamages, float64) {
	sum := 0.0
	maxFamilies := max.ByFamily()
	baselineFamilies := baseline.ByFamily()

	result := models.PlayerDamages{
		Abilities: make(models.DamageReturn, len(max.Abilities)),
		Items:     make(models.DamageReturn, len(max.Items)),
		Runes:     make(models.DamageReturn, len(max.Runes)),
		Spell:     make(models.DamageReturn, len(max.Spell)),
	}
	resultFamilies := result.ByFamily()

	for category, maxFamily := range maxFamilies {
		baselineFamily := baselineFamilies[category]
		resultFamily := resultFamilies[category]
		for key, maxVal := range maxFamily {
			baseVal, ok := baselineFamily[key]
			if !ok {
				log.Printf("🔍 [TOOLSIM] key %q in category %q present in max damage but absent from baseline", key, category)
				continue
			}
			d := models.PlayerDamage{
				Min:        maxVal.Min - baseVal.Min,
				DamageType: maxVal.DamageType,
				Name:       maxVal.Name,
				Area:       maxVal.Area,
				OnHit:      maxVal.OnHit,
			}
			sum += d.Min
			if maxVal.Max != nil && baseVal.Max != nil {
				m := *maxVal.Max - *baseVal.Max
				d.Max = &m
				sum += m
			}
			resultFamily[key] = d
		}
	}
	return result, sum
}
