package toolsim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lol-damage-engine/internal/allstats"
	"lol-damage-engine/internal/models"
)

func baseAttacker() Attacker {
	return Attacker{
		ChampionID: "Ashe",
		Level:      11,
		ChampionStats: models.ChampionStats{
			AttackDamage:  100,
			AttackRange:   600,
			CurrentHealth: 1800,
			MaxHealth:     1800,
		},
		BaseStats: models.CoreStats{MaxHealth: 1800},
	}
}

func baseDefender() allstats.Defender {
	return allstats.Defender{
		ChampionStats: models.CoreStats{MaxHealth: 2000},
	}
}

func TestSimulateAppliesModifierAndRaisesDamage(t *testing.T) {
	attacker := baseAttacker()
	baseline := models.PlayerDamages{
		Abilities: models.DamageReturn{},
		Items:     models.DamageReturn{},
		Runes:     models.DamageReturn{},
		Spell:     models.DamageReturn{},
	}
	baseline.Abilities["A"] = models.PlayerDamage{Min: 100, DamageType: "physical"}

	modifiers := map[string]interface{}{"attackDamage": 50.0}
	tool := Simulate(attacker, modifiers, baseDefender(), baseline)

	assert.NotNil(t, tool.Dif)
	assert.Greater(t, (*tool.Dif).Abilities["A"].Min, 0.0)
	assert.Greater(t, tool.Sum, 0.0)
}

func TestSimulateNoModifierYieldsZeroDelta(t *testing.T) {
	attacker := baseAttacker()
	baseline := models.PlayerDamages{
		Abilities: models.DamageReturn{"A": {Min: 100, DamageType: "physical"}},
		Items:     models.DamageReturn{},
		Runes:     models.DamageReturn{},
		Spell:     models.DamageReturn{},
	}

	tool := Simulate(attacker, map[string]interface{}{}, baseDefender(), baseline)
	assert.InDelta(t, 0.0, tool.Sum, 1e-6)
}

func TestDeltaSkipsKeyAbsentFromBaseline(t *testing.T) {
	max := models.PlayerDamages{
		Abilities: models.DamageReturn{"Q": {Min: 50, DamageType: "physical"}},
		Items:     models.DamageReturn{},
		Runes:     models.DamageReturn{},
		Spell:     models.DamageReturn{},
	}
	baseline := models.PlayerDamages{
		Abilities: models.DamageReturn{},
		Items:     models.DamageReturn{},
		Runes:     models.DamageReturn{},
		Spell:     models.DamageReturn{},
	}

	result, sum := delta(max, baseline)
	_, present := result.Abilities["Q"]
	assert.False(t, present)
	assert.Equal(t, 0.0, sum)
}

func TestDeltaComputesElementwiseDifference(t *testing.T) {
	max := models.PlayerDamages{
		Abilities: models.DamageReturn{"Q": {Min: 80, DamageType: "physical"}},
		Items:     models.DamageReturn{},
		Runes:     models.DamageReturn{},
		Spell:     models.DamageReturn{},
	}
	baseline := models.PlayerDamages{
		Abilities: models.DamageReturn{"Q": {Min: 50, DamageType: "physical"}},
		Items:     models.DamageReturn{},
		Runes:     models.DamageReturn{},
		Spell:     models.DamageReturn{},
	}

	result, sum := delta(max, baseline)
	assert.Equal(t, 30.0, result.Abilities["Q"].Min)
	assert.Equal(t, 30.0, sum)
}
