package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lol-damage-engine/internal/models"
)

func TestFindActiveTeamMatchesBySummonerName(t *testing.T) {
	game := models.GameProps{
		ActivePlayer: models.ActivePlayer{SummonerName: "Foo"},
		AllPlayers: []models.Player{
			{SummonerName: "Bar", Team: "ORDER"},
			{SummonerName: "Foo", Team: "CHAOS"},
		},
	}

	team, err := findActiveTeam(game)
	assert.NoError(t, err)
	assert.Equal(t, "CHAOS", team)
}

func TestFindActiveTeamUnsetWhenNoMatch(t *testing.T) {
	game := models.GameProps{
		ActivePlayer: models.ActivePlayer{SummonerName: "Missing"},
		AllPlayers: []models.Player{
			{SummonerName: "Bar", Team: "ORDER"},
		},
	}

	_, err := findActiveTeam(game)
	assert.ErrorIs(t, err, ErrActiveTeamUnset)
}

func TestItemIDStringsFormatsDecimal(t *testing.T) {
	items := []models.PlayerItem{{ItemID: 3143}, {ItemID: 1001}}
	assert.Equal(t, []string{"3143", "1001"}, itemIDStrings(items))
}

func TestRuneIDStringsFormatsDecimal(t *testing.T) {
	runes := models.FullRunes{GeneralRunes: []models.RuneProp{{ID: 8299}, {ID: 8126}}}
	assert.Equal(t, []string{"8299", "8126"}, runeIDStrings(runes))
}

func TestContainsIgniteDetectsEitherSlot(t *testing.T) {
	spells := models.SummonerSpells{
		SummonerSpellTwo: models.SummonerSpell{RawDescription: "deals <SummonerDot>damage</SummonerDot>"},
	}
	assert.True(t, containsIgnite(spells))
	assert.False(t, containsIgnite(models.SummonerSpells{}))
}

func TestBuildRelevantAppendsSyntheticBasicAttackKeys(t *testing.T) {
	pack := models.LocalChampion{
		"Q": {Min: []string{"10"}},
	}
	relevant := buildRelevant(pack, nil, models.LocalItems{}, nil, models.LocalRunes{}, models.SummonerSpells{})
	assert.Contains(t, relevant.Abilities.Min, "A")
	assert.Contains(t, relevant.Abilities.Min, "C")
	assert.Contains(t, relevant.Abilities.Min, "Q")
}

func TestBuildRelevantFiltersItemsAndRunesByOwnedIDs(t *testing.T) {
	items := models.LocalItems{Data: map[string]models.LocalItemData{
		"3143": {Name: "Steelcaps"},
		"1001": {Name: "Boots"},
	}}
	runes := models.LocalRunes{Data: map[string]models.LocalRuneData{
		"8299": {Name: "Hail of Blades"},
	}}

	relevant := buildRelevant(models.LocalChampion{}, []string{"3143"}, items, []string{"8299"}, runes, models.SummonerSpells{})
	assert.Equal(t, []string{"3143"}, relevant.Items.Min)
	assert.Equal(t, []string{"8299"}, relevant.Runes.Min)
}

func TestBuildRelevantSpellMinOnlyWithIgnite(t *testing.T) {
	relevant := buildRelevant(models.LocalChampion{}, nil, models.LocalItems{}, nil, models.LocalRunes{}, models.SummonerSpells{})
	assert.Empty(t, relevant.Spell.Min)

	spells := models.SummonerSpells{SummonerSpellOne: models.SummonerSpell{RawDescription: "SummonerDot"}}
	relevant = buildRelevant(models.LocalChampion{}, nil, models.LocalItems{}, nil, models.LocalRunes{}, spells)
	assert.Equal(t, []string{"SummonerDot"}, relevant.Spell.Min)
}
