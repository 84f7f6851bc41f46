package damage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lol-damage-engine/internal/eval"
	"lol-damage-engine/internal/models"
)

func baseCtx() models.AllStats {
	return models.AllStats{
		ActivePlayer: models.AllStatsActivePlayer{
			Level: 11,
			Form:  models.FormRanged,
			Multiplier: models.Multiplier{
				Physical: 0.6,
				Magic:    0.7,
				General:  1.0,
			},
			ChampionStats: models.ActivePlayerStats{
				AttackDamage: 100,
				CritDamage:   175,
			},
		},
	}
}

func TestAbilitiesIndexesByRank(t *testing.T) {
	pack := models.LocalChampion{
		"Q": {AbilityType: "physical", Min: []string{"10", "20", "30"}},
	}
	abilities := models.Abilities{Q: models.Ability{AbilityLevel: 2}}
	bindings := eval.Bindings{}

	out := Abilities(pack, abilities, 11, baseCtx(), bindings)
	assert.Equal(t, 20.0, out["Q"].Min)
	assert.Equal(t, "physical", out["Q"].DamageType)
}

func TestAbilitiesVoidWhenRankZero(t *testing.T) {
	pack := models.LocalChampion{
		"W": {AbilityType: "magic", Min: []string{"10"}},
	}
	abilities := models.Abilities{W: models.Ability{AbilityLevel: 0}}

	out := Abilities(pack, abilities, 11, baseCtx(), eval.Bindings{})
	assert.Equal(t, 0.0, out["W"].Min)
}

func TestAbilitiesBasicAttackAndCrit(t *testing.T) {
	out := Abilities(models.LocalChampion{}, models.Abilities{}, 11, baseCtx(), eval.Bindings{})
	assert.InDelta(t, 60.0, out["A"].Min, 1e-9)
	assert.InDelta(t, 60.0*175.0/100.0, out["C"].Min, 1e-9)
}

func TestItemsSelectsRangedFormula(t *testing.T) {
	catalog := models.LocalItems{
		Data: map[string]models.LocalItemData{
			"3031": {Name: "Infinity Edge", ItemType: "physical", Min: models.LocalItemForm{Melee: "1", Ranged: "2"}},
		},
	}
	relevant := models.RelevantProps{Min: []string{"3031"}}

	out := Items(catalog, relevant, baseCtx(), eval.Bindings{})
	assert.Equal(t, 2.0, out["3031"].Min)
}

func TestItemsEffectArrayIndexedByLevel(t *testing.T) {
	effect := make([]float64, 18)
	effect[10] = 42 // level 11 -> index 10
	catalog := models.LocalItems{
		Data: map[string]models.LocalItemData{
			"item1": {Min: models.LocalItemForm{Melee: "total", Ranged: "total"}, Effect: effect},
		},
	}
	relevant := models.RelevantProps{Min: []string{"item1"}}

	out := Items(catalog, relevant, baseCtx(), eval.Bindings{})
	assert.Equal(t, 42.0, out["item1"].Min)
}

func TestRunesOnlyEvaluatesMin(t *testing.T) {
	catalog := models.LocalRunes{
		Data: map[string]models.LocalRuneData{
			"8299": {Name: "Hail of Blades", RuneType: "physical", Min: models.LocalRuneForm{Melee: "5", Ranged: "5"}},
		},
	}
	relevant := models.RelevantProps{Min: []string{"8299"}}

	out := Runes(catalog, relevant, baseCtx(), eval.Bindings{})
	assert.Equal(t, 5.0, out["8299"].Min)
	assert.Nil(t, out["8299"].Max)
}

func TestSpellDetectsIgnite(t *testing.T) {
	spells := models.SummonerSpells{
		SummonerSpellOne: models.SummonerSpell{RawDescription: "Deals <SummonerDot>true damage</SummonerDot>"},
	}
	out := Spell(11, spells)
	assert.Contains(t, out, ignitePhrase)
	assert.Equal(t, 50.0+20.0*11, out[ignitePhrase].Min)
}

func TestSpellAbsentWithoutIgnite(t *testing.T) {
	spells := models.SummonerSpells{
		SummonerSpellOne: models.SummonerSpell{RawDescription: "Flash"},
	}
	out := Spell(11, spells)
	assert.Empty(t, out)
}
