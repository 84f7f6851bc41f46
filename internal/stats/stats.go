// Package stats implements the growth/bonus algebra over CoreStats: per-level
// derivation from champion growth data, the two bonus-stat polarities, the
// camelCase round-trip used by tool-modifier application, and the
// item-stat-fold used to build an opposing player's champion stats.
package stats

import (
	"strconv"
	"strings"

	"lol-damage-engine/internal/models"
)

// growthFormula is the canonical per-level stat curve: base plus a
// per-level increment scaled by the standard (L-1) ramp.
func growthFormula(base, perLevel, level float64) float64 {
	return base + perLevel*(level-1)*(0.7025+0.0175*(level-1))
}

// FromGrowth derives CoreStats at level from a champion's Riot growth block.
// AbilityPower always starts at 0 — it has no base growth curve, it is
// entirely a bonus stat.
func FromGrowth(riot models.RiotChampionStats, level int) models.CoreStats {
	l := float64(level)
	return models.CoreStats{
		MaxHealth:    growthFormula(riot.HP, riot.HPPerLevel, l),
		Armor:        growthFormula(riot.Armor, riot.ArmorPerLevel, l),
		MagicResist:  growthFormula(riot.SpellBlock, riot.SpellBlockPerLevel, l),
		AttackDamage: growthFormula(riot.AttackDamage, riot.AttackDamagePerLevel, l),
		ResourceMax:  growthFormula(riot.MP, riot.MPPerLevel, l),
		AbilityPower: 0,
	}
}

// BonusFromActive computes the active player's bonus stats: current
// championStats minus base, across the five growth fields. AbilityPower is
// carried through as the current value, since it has no base component.
func BonusFromActive(championStats models.ChampionStats, base models.CoreStats) models.CoreStats {
	return models.CoreStats{
		MaxHealth:    championStats.MaxHealth - base.MaxHealth,
		Armor:        championStats.Armor - base.Armor,
		MagicResist:  championStats.MagicResist - base.MagicResist,
		AttackDamage: championStats.AttackDamage - base.AttackDamage,
		ResourceMax:  championStats.ResourceMax - base.ResourceMax,
		AbilityPower: championStats.AbilityPower,
	}
}

// BonusFromComputed computes an opposing player's bonus stats: the
// item-folded championStats minus base, same sign convention as
// BonusFromActive (computed - base) even though the inputs arrive the
// opposite way around — this dual-polarity quirk is preserved intentionally.
func BonusFromComputed(base, championStats models.CoreStats) models.CoreStats {
	return models.CoreStats{
		MaxHealth:    championStats.MaxHealth - base.MaxHealth,
		Armor:        championStats.Armor - base.Armor,
		MagicResist:  championStats.MagicResist - base.MagicResist,
		AttackDamage: championStats.AttackDamage - base.AttackDamage,
		ResourceMax:  championStats.ResourceMax - base.ResourceMax,
		AbilityPower: championStats.AbilityPower,
	}
}

// FoldItemStats folds the Riot stats map of every carried item onto base,
// producing an opposing player's champion_stats. The key switch is fixed
// and deliberately narrow: unrecognized keys are ignored.
//
// FlatPhysicalDamageMod is folded into AbilityPower, not AttackDamage — a
// quirk inherited verbatim from the upstream item-stat fold; see DESIGN.md.
func FoldItemStats(base models.CoreStats, itemStats []map[string]float64) models.CoreStats {
	for _, stats := range itemStats {
		for key, val := range stats {
			switch key {
			case "FlatHPPoolMod":
				base.MaxHealth += val
			case "FlatMPPoolMod":
				base.ResourceMax += val
			case "FlatMagicDamageMod":
				base.AbilityPower += val
			case "FlatArmorMod":
				base.Armor += val
			case "FlatSpellBlockMod":
				base.MagicResist += val
			case "FlatPhysicalDamageMod":
				base.AbilityPower += val
			}
		}
	}
	return base
}

// ApplyModifiers applies a tool's stat modifiers onto championStats,
// returning the mutated copy. A numeric modifier value is added directly; a
// percentage-suffixed string value has its numeric content subtracted
// instead — preserved exactly as the upstream catalog encodes it.
func ApplyModifiers(championStats models.ChampionStats, modifiers map[string]interface{}) models.ChampionStats {
	m := championStats.ToCamelMap()
	for key, raw := range modifiers {
		current, known := m[key]
		if !known {
			continue
		}
		switch v := raw.(type) {
		case float64:
			m[key] = current + v
		case string:
			if amount, ok := parsePercent(v); ok {
				m[key] = current - amount
			}
		}
	}
	return models.FromCamelMap(m)
}

func parsePercent(s string) (float64, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if trimmed == s {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
