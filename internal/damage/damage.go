// Package damage implements the four pure damage kernels: abilities, items,
// runes, and summoner spell. Each walks a relevant identifier list, resolves
// the matching formula for the attacker's form, evaluates it through the
// expression evaluator, and inserts a PlayerDamage record.
package damage

import (
	"strings"

	"lol-damage-engine/internal/eval"
	"lol-damage-engine/internal/models"
)

const ignitePhrase = "SummonerDot"

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// Abilities walks the attacker's ability pack (relevant.abilities.min minus
// the synthetic "A"/"C" entries, which are appended here) and produces one
// PlayerDamage per slot, indexed by the slot's current rank.
func Abilities(pack models.LocalChampion, abilities models.Abilities, level int, ctx models.AllStats, bindings eval.Bindings) models.DamageReturn {
	out := make(models.DamageReturn, len(pack)+2)

	rankOf := map[string]int{
		"Q": abilities.Q.AbilityLevel,
		"W": abilities.W.AbilityLevel,
		"E": abilities.E.AbilityLevel,
		"R": abilities.R.AbilityLevel,
		"P": level,
	}

	for key, ability := range pack {
		rank, known := rankOf[key]
		if !known {
			// An unrecognized first-letter key in an ability pack is a
			// catalog programmer error, not a request-scoped miss.
			panic("damage: unknown ability key " + key)
		}
		if key != "P" && rank <= 0 {
			out[key] = models.VoidDamage()
			continue
		}
		idx := rank - 1
		if idx < 0 || idx >= len(ability.Min) {
			continue
		}
		minFormula := ability.Min[idx]
		var maxFormula *string
		if len(ability.Max) > idx {
			maxFormula = &ability.Max[idx]
		}
		minVal, maxVal := eval.Evaluate(minFormula, maxFormula, bindings, nil)
		out[key] = models.PlayerDamage{Min: minVal, Max: maxVal, DamageType: classifyType(ability.AbilityType)}
	}

	physicalMult := ctx.ActivePlayer.Multiplier.Physical
	aMin := ctx.ActivePlayer.ChampionStats.AttackDamage * physicalMult
	cMin := aMin * ctx.ActivePlayer.ChampionStats.CritDamage / 100
	out["A"] = models.PlayerDamage{Min: aMin, DamageType: "physical"}
	out["C"] = models.PlayerDamage{Min: cMin, DamageType: "physical"}
	return out
}

func classifyType(abilityType string) string {
	switch abilityType {
	case "physical", "magic", "true", "mixed":
		return abilityType
	default:
		return "mixed"
	}
}

// Items walks the attacker's relevant item identifiers and produces one
// PlayerDamage per catalog hit.
func Items(catalog models.LocalItems, relevant models.RelevantProps, ctx models.AllStats, bindings eval.Bindings) models.DamageReturn {
	out := make(models.DamageReturn, len(relevant.Min))
	maxSet := toSet(relevant.Max)

	for _, id := range relevant.Min {
		entry, ok := catalog.Data[id]
		if !ok {
			continue
		}
		form := entry.Min
		minFormula := form.Melee
		if ctx.ActivePlayer.Form == models.FormRanged {
			minFormula = form.Ranged
		}

		var maxFormula *string
		if maxSet[id] && entry.Max != nil {
			m := entry.Max.Melee
			if ctx.ActivePlayer.Form == models.FormRanged {
				m = entry.Max.Ranged
			}
			maxFormula = &m
		}

		extra := map[string]float64(nil)
		if len(entry.Effect) == 18 {
			level := ctx.ActivePlayer.Level
			if level < 1 {
				level = 1
			}
			if level > 18 {
				level = 18
			}
			extra = map[string]float64{"total": entry.Effect[level-1]}
		}

		minVal, maxVal := eval.Evaluate(minFormula, maxFormula, bindings, extra)
		onhit := entry.OnHit
		out[id] = models.PlayerDamage{
			Min:        minVal,
			Max:        maxVal,
			DamageType: classifyType(entry.ItemType),
			Name:       strPtr(entry.Name),
			OnHit:      boolPtr(onhit),
		}
	}
	return out
}

// Runes walks the attacker's relevant rune identifiers. Only the min
// formula is ever evaluated; max is always absent.
func Runes(catalog models.LocalRunes, relevant models.RelevantProps, ctx models.AllStats, bindings eval.Bindings) models.DamageReturn {
	out := make(models.DamageReturn, len(relevant.Min))
	for _, id := range relevant.Min {
		entry, ok := catalog.Data[id]
		if !ok {
			continue
		}
		formula := entry.Min.Melee
		if ctx.ActivePlayer.Form == models.FormRanged {
			formula = entry.Min.Ranged
		}
		minVal, _ := eval.Evaluate(formula, nil, bindings, nil)
		out[id] = models.PlayerDamage{
			Min:        minVal,
			DamageType: classifyType(entry.RuneType),
			Name:       strPtr(entry.Name),
		}
	}
	return out
}

// Spell hardcodes the only summoner-spell interaction this engine models:
// Ignite ("SummonerDot" in either spell's raw tooltip text).
func Spell(level int, spells models.SummonerSpells) models.DamageReturn {
	out := models.DamageReturn{}
	has := strings.Contains(spells.SummonerSpellOne.RawDescription, ignitePhrase) ||
		strings.Contains(spells.SummonerSpellTwo.RawDescription, ignitePhrase)
	if has {
		out[ignitePhrase] = models.PlayerDamage{
			Min:        50 + 20*float64(level),
			DamageType: "true",
			Name:       strPtr("Ignite"),
		}
	}
	return out
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
