// Package allstats builds the per-(attacker, defender) evaluation context
// the damage kernels and expression evaluator consume: multipliers,
// penetration-adjusted resistances, adaptive-damage type, attack form, and
// the defender's item-driven property flags.
package allstats

import (
	"lol-damage-engine/internal/models"
)

const (
	rangedThreshold     = 350.0
	excessHealthCap     = 2500.0
	overHealthLowClamp  = 1.1
	overHealthLowValue  = 0.65
	overHealthHighClamp = 2.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func contains(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// Attacker bundles everything about the active player the context builder
// needs, already resolved by the orchestrator before fan-out.
type Attacker struct {
	ChampionID       string
	Level            int
	ChampionStats    models.ChampionStats
	BaseStats        models.CoreStats
	BonusStats       models.CoreStats
	RelevantRunesMin []string
	RelevantItemsMin []string
}

// Defender bundles everything about one opposing player the context builder
// needs.
type Defender struct {
	ChampionStats models.CoreStats
	BaseStats     models.CoreStats
	BonusStats    models.CoreStats
	ItemIDs       []string
}

// Build produces the immutable AllStats evaluation context for one
// (attacker, defender) pair.
func Build(attacker Attacker, defender Defender) models.AllStats {
	acs := attacker.ChampionStats
	abs := attacker.BonusStats

	rar := defender.ChampionStats.Armor*acs.ArmorPenetrationPercent - acs.ArmorPenetrationFlat
	rmr := defender.ChampionStats.MagicResist*acs.MagicPenetrationPercent - acs.MagicPenetrationFlat

	physicalMult := 100.0 / (100.0 + rar)
	magicMult := 100.0 / (100.0 + rmr)

	adaptivePhysical := 0.35*abs.AttackDamage >= 0.2*acs.AbilityPower
	adaptiveType := models.AdaptiveMagic
	adaptiveRatio := magicMult
	if adaptivePhysical {
		adaptiveType = models.AdaptivePhysical
		adaptiveRatio = physicalMult
	}

	overHealth := defender.ChampionStats.MaxHealth / acs.MaxHealth
	switch {
	case overHealth < overHealthLowClamp:
		overHealth = overHealthLowValue
	case overHealth > overHealthHighClamp:
		overHealth = overHealthHighClamp
	}

	missingHealth := 1 - acs.CurrentHealth/acs.MaxHealth
	excessHealth := clamp(defender.ChampionStats.MaxHealth-acs.MaxHealth, 0, excessHealthCap)

	generalMult := 1.0
	if contains(attacker.RelevantRunesMin, "8299") {
		switch {
		case missingHealth > 0.7:
			generalMult += 0.11
		case missingHealth >= 0.4:
			generalMult += 0.2*missingHealth - 0.03
		}
	}
	if contains(attacker.RelevantItemsMin, "4015") {
		generalMult += excessHealth / (220000.0 / 15.0)
	}

	form := models.FormMelee
	if acs.AttackRange > rangedThreshold {
		form = models.FormRanged
	}

	ownsSteelcaps := contains(defender.ItemIDs, "3143")
	steelcaps := 1.0
	randuin := 1.0
	if ownsSteelcaps {
		steelcaps = 0.88
		randuin = 0.7
	}
	rocksolid := 0.0
	for _, id := range defender.ItemIDs {
		if id == "3143" || id == "3110" || id == "3082" {
			rocksolid += defender.ChampionStats.MaxHealth / 1000.0 * 3.5
		}
	}

	return models.AllStats{
		ActivePlayer: models.AllStatsActivePlayer{
			ID:    attacker.ChampionID,
			Level: attacker.Level,
			Form:  form,
			Multiplier: models.Multiplier{
				Magic:    magicMult,
				Physical: physicalMult,
				General:  generalMult,
			},
			Adaptive: models.Adaptive{
				AdaptiveType: adaptiveType,
				Ratio:        adaptiveRatio,
			},
			ChampionStats: models.ActivePlayerStats{
				MaxHealth:               acs.MaxHealth,
				Armor:                   acs.Armor,
				MagicResist:             acs.MagicResist,
				AttackDamage:            acs.AttackDamage,
				ResourceMax:             acs.ResourceMax,
				AbilityPower:            acs.AbilityPower,
				CurrentHealth:           acs.CurrentHealth,
				AttackSpeed:             1.0,
				AttackRange:             acs.AttackRange,
				CritChance:              acs.CritChance,
				CritDamage:              acs.CritDamage,
				PhysicalLethality:       acs.PhysicalLethality,
				ArmorPenetrationPercent: acs.ArmorPenetrationPercent,
				MagicPenetrationPercent: acs.MagicPenetrationPercent,
				MagicPenetrationFlat:    acs.MagicPenetrationFlat,
			},
			BaseStats:  attacker.BaseStats,
			BonusStats: attacker.BonusStats,
		},
		Player: models.AllStatsPlayer{
			Multiplier: models.Multiplier{Magic: 1.0, Physical: 1.0, General: 1.0},
			RealStats: models.RealStats{
				Armor:       rar,
				MagicResist: rmr,
			},
			ChampionStats: defender.ChampionStats,
			BaseStats:     defender.BaseStats,
			BonusStats:    defender.BonusStats,
		},
		Property: models.Property{
			OverHealth:    overHealth,
			MissingHealth: missingHealth,
			ExcessHealth:  excessHealth,
			Steelcaps:     steelcaps,
			Rocksolid:     rocksolid,
			Randuin:       randuin,
		},
	}
}
