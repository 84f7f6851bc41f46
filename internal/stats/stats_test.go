package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lol-damage-engine/internal/models"
)

func TestFromGrowthLevelOne(t *testing.T) {
	riot := models.RiotChampionStats{HP: 600, HPPerLevel: 100}
	core := FromGrowth(riot, 1)
	assert.Equal(t, 600.0, core.MaxHealth)
}

func TestFromGrowthHigherLevel(t *testing.T) {
	riot := models.RiotChampionStats{HP: 600, HPPerLevel: 100}
	core := FromGrowth(riot, 18)
	expected := 600 + 100*17*(0.7025+0.0175*17)
	assert.InDelta(t, expected, core.MaxHealth, 1e-9)
}

func TestBonusFromActiveSubtractsBase(t *testing.T) {
	championStats := models.ChampionStats{AttackDamage: 150, AbilityPower: 40}
	base := models.CoreStats{AttackDamage: 100}
	bonus := BonusFromActive(championStats, base)
	assert.Equal(t, 50.0, bonus.AttackDamage)
	assert.Equal(t, 40.0, bonus.AbilityPower)
}

func TestFoldItemStatsPhysicalModGoesToAbilityPower(t *testing.T) {
	base := models.CoreStats{}
	folded := FoldItemStats(base, []map[string]float64{
		{"FlatPhysicalDamageMod": 35},
		{"FlatMagicDamageMod": 10},
	})
	assert.Equal(t, 45.0, folded.AbilityPower)
	assert.Equal(t, 0.0, folded.AttackDamage)
}

func TestFoldItemStatsArmorAndHealth(t *testing.T) {
	base := models.CoreStats{Armor: 30, MaxHealth: 500}
	folded := FoldItemStats(base, []map[string]float64{
		{"FlatArmorMod": 40, "FlatHPPoolMod": 300},
	})
	assert.Equal(t, 70.0, folded.Armor)
	assert.Equal(t, 800.0, folded.MaxHealth)
}

func TestApplyModifiersNumeric(t *testing.T) {
	championStats := models.ChampionStats{AttackDamage: 100}
	mutated := ApplyModifiers(championStats, map[string]interface{}{"attackDamage": 20.0})
	assert.Equal(t, 120.0, mutated.AttackDamage)
}

func TestApplyModifiersPercentStringSubtracts(t *testing.T) {
	championStats := models.ChampionStats{ArmorPenetrationPercent: 0.35}
	mutated := ApplyModifiers(championStats, map[string]interface{}{"armorPenetrationPercent": "30%"})
	assert.InDelta(t, 0.35-30, mutated.ArmorPenetrationPercent, 1e-9)
}

func TestApplyModifiersUnknownKeyIgnored(t *testing.T) {
	championStats := models.ChampionStats{AttackDamage: 100}
	mutated := ApplyModifiers(championStats, map[string]interface{}{"notAField": 99.0})
	assert.Equal(t, 100.0, mutated.AttackDamage)
}
