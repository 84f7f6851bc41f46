package models

// ChampionStats is the raw live-client stat block for the active player,
// as reported by the game (pre tool-simulation).
type ChampionStats struct {
	AbilityPower            float64 `json:"abilityPower"`
	Armor                   float64 `json:"armor"`
	ArmorPenetrationFlat    float64 `json:"armorPenetrationFlat"`
	ArmorPenetrationPercent float64 `json:"armorPenetrationPercent"`
	AttackDamage            float64 `json:"attackDamage"`
	AttackRange             float64 `json:"attackRange"`
	CritChance              float64 `json:"critChance"`
	CritDamage              float64 `json:"critDamage"`
	CurrentHealth           float64 `json:"currentHealth"`
	MagicPenetrationFlat    float64 `json:"magicPenetrationFlat"`
	MagicPenetrationPercent float64 `json:"magicPenetrationPercent"`
	MagicResist             float64 `json:"magicResist"`
	MaxHealth               float64 `json:"maxHealth"`
	PhysicalLethality       float64 `json:"physicalLethality"`
	ResourceMax             float64 `json:"resourceMax"`
}

var camelFieldOrder = []string{
	"abilityPower", "armor", "armorPenetrationFlat", "armorPenetrationPercent",
	"attackDamage", "attackRange", "critChance", "critDamage", "currentHealth",
	"magicPenetrationFlat", "magicPenetrationPercent", "magicResist",
	"maxHealth", "physicalLethality", "resourceMax",
}

// ToCamelMap flattens the stat block into the camelCase key/value form that
// the tool simulator's modifier application operates on.
func (c ChampionStats) ToCamelMap() map[string]float64 {
	return map[string]float64{
		"abilityPower":            c.AbilityPower,
		"armor":                   c.Armor,
		"armorPenetrationFlat":    c.ArmorPenetrationFlat,
		"armorPenetrationPercent": c.ArmorPenetrationPercent,
		"attackDamage":            c.AttackDamage,
		"attackRange":             c.AttackRange,
		"critChance":              c.CritChance,
		"critDamage":              c.CritDamage,
		"currentHealth":           c.CurrentHealth,
		"magicPenetrationFlat":    c.MagicPenetrationFlat,
		"magicPenetrationPercent": c.MagicPenetrationPercent,
		"magicResist":             c.MagicResist,
		"maxHealth":               c.MaxHealth,
		"physicalLethality":       c.PhysicalLethality,
		"resourceMax":             c.ResourceMax,
	}
}

// FromCamelMap rebuilds a stat block from a camelCase key/value map, leaving
// unrecognized keys ignored and missing keys zero — mirroring the original
// from_hashmap_camel's silent-default behavior.
func FromCamelMap(m map[string]float64) ChampionStats {
	var c ChampionStats
	for key, value := range m {
		switch key {
		case "abilityPower":
			c.AbilityPower = value
		case "armor":
			c.Armor = value
		case "armorPenetrationFlat":
			c.ArmorPenetrationFlat = value
		case "armorPenetrationPercent":
			c.ArmorPenetrationPercent = value
		case "attackDamage":
			c.AttackDamage = value
		case "attackRange":
			c.AttackRange = value
		case "critChance":
			c.CritChance = value
		case "critDamage":
			c.CritDamage = value
		case "currentHealth":
			c.CurrentHealth = value
		case "magicPenetrationFlat":
			c.MagicPenetrationFlat = value
		case "magicPenetrationPercent":
			c.MagicPenetrationPercent = value
		case "magicResist":
			c.MagicResist = value
		case "maxHealth":
			c.MaxHealth = value
		case "physicalLethality":
			c.PhysicalLethality = value
		case "resourceMax":
			c.ResourceMax = value
		}
	}
	return c
}

// CamelFieldNames lists the camelCase keys in a fixed, stable order.
func CamelFieldNames() []string {
	out := make([]string, len(camelFieldOrder))
	copy(out, camelFieldOrder)
	return out
}

// Passive is one champion passive entry from the live client's abilities block.
type Passive struct {
	DisplayName string `json:"displayName"`
	ID          string `json:"id"`
}

// Ability holds the current rank of a single Q/W/E/R slot.
type Ability struct {
	AbilityLevel int `json:"abilityLevel"`
}

// Abilities is the active player's full ability-rank block.
type Abilities struct {
	Passive Passive `json:"Passive"`
	Q       Ability `json:"Q"`
	W       Ability `json:"W"`
	E       Ability `json:"E"`
	R       Ability `json:"R"`
}

// RuneProp identifies one equipped rune by id and display name.
type RuneProp struct {
	DisplayName string `json:"displayName"`
	ID          int    `json:"id"`
}

// FullRunes holds the active player's general (non-keystone) rune page.
type FullRunes struct {
	GeneralRunes []RuneProp `json:"generalRunes"`
}

// CoreStats is the six-stat growth/bonus algebra block shared by both the
// active player and every opposing player.
type CoreStats struct {
	MaxHealth    float64 `json:"maxHealth"`
	Armor        float64 `json:"armor"`
	MagicResist  float64 `json:"magicResist"`
	AttackDamage float64 `json:"attackDamage"`
	ResourceMax  float64 `json:"resourceMax"`
	AbilityPower float64 `json:"abilityPower"`
}

// RelevantProps pairs the identifier lists of one damage source family
// (abilities, items, runes or spell): Min is every identifier evaluated, Max
// the subset whose catalog entry also has a max formula.
type RelevantProps struct {
	Min []string `json:"min"`
	Max []string `json:"max"`
}

// Relevant groups the per-family relevant-identifier sets computed for an
// active player, used to select which identifiers each kernel evaluates.
type Relevant struct {
	Abilities RelevantProps `json:"abilities"`
	Items     RelevantProps `json:"items"`
	Runes     RelevantProps `json:"runes"`
	Spell     RelevantProps `json:"spell"`
}

// DragonProps carries per-player elemental dragon-soul stacks. Not consumed
// by any kernel; round-trips through the response unchanged.
type DragonProps struct {
	Earth    float64 `json:"earth"`
	Fire     float64 `json:"fire"`
	Chemtech float64 `json:"chemtech"`
}

// ActivePlayer is the live client's active-player block, extended with the
// fields the engine resolves and attaches (champion, stats, tool, relevant).
type ActivePlayer struct {
	SummonerName  string        `json:"summonerName"`
	Level         int           `json:"level"`
	Abilities     Abilities     `json:"abilities"`
	ChampionStats ChampionStats `json:"championStats"`
	FullRunes     FullRunes     `json:"fullRunes"`

	ChampionName string              `json:"championName,omitempty"`
	Champion     *ChampionDescriptor `json:"champion,omitempty"`
	Dragon       *DragonProps        `json:"dragon,omitempty"`
	BaseStats    *CoreStats          `json:"baseStats,omitempty"`
	BonusStats   *CoreStats          `json:"bonusStats,omitempty"`
	Team         string              `json:"team,omitempty"`
	Skin         int                 `json:"skin,omitempty"`
	Tool         *ToolInfo           `json:"tool,omitempty"`
	Relevant     *Relevant           `json:"relevant,omitempty"`
}

// ToolInfo is the resolved candidate-item block attached to ActivePlayer.Tool.
type ToolInfo struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name"`
	Active bool                   `json:"active"`
	Gold   *int                   `json:"gold,omitempty"`
	Raw    map[string]interface{} `json:"raw"`
}

// Scores is a player's current kill/death/assist line.
type Scores struct {
	Assists int `json:"assists"`
	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
}

// SummonerSpell is one equipped summoner spell (name + raw tooltip text).
type SummonerSpell struct {
	DisplayName    string `json:"displayName"`
	RawDescription string `json:"rawDescription"`
}

// SummonerSpells holds both equipped summoner spells for a player.
type SummonerSpells struct {
	SummonerSpellOne SummonerSpell `json:"summonerSpellOne"`
	SummonerSpellTwo SummonerSpell `json:"summonerSpellTwo"`
}

// PlayerItem identifies one item carried by a player by its Riot item id.
type PlayerItem struct {
	ItemID int `json:"itemID"`
}

// PlayerDamage is one resolved damage-kernel result: its min value, an
// optional max value (nil when the source has no max formula),
// a damage-type tag, and optional display metadata.
type PlayerDamage struct {
	Min        float64  `json:"min"`
	Max        *float64 `json:"max,omitempty"`
	DamageType string   `json:"type"`
	Name       *string  `json:"name,omitempty"`
	Area       *bool    `json:"area,omitempty"`
	OnHit      *bool    `json:"onhit,omitempty"`
}

// VoidDamage returns the zero-value placeholder kernel result used when a
// source has no applicable formula (e.g. a champion at ability level 0).
func VoidDamage() PlayerDamage {
	return PlayerDamage{Min: 0, DamageType: "mixed"}
}

// DamageReturn maps a source identifier (ability slot, item id, rune id, or
// "A"/"C" for basic attack/critical) to its resolved damage result.
type DamageReturn map[string]PlayerDamage

// PlayerDamages groups every damage-source family computed for one player.
type PlayerDamages struct {
	Abilities DamageReturn `json:"abilities"`
	Items     DamageReturn `json:"items"`
	Runes     DamageReturn `json:"runes"`
	Spell     DamageReturn `json:"spell"`
}

// ByFamily returns the four families keyed by name, for generic iteration
// (used by the tool simulator's elementwise delta computation).
func (p PlayerDamages) ByFamily() map[string]DamageReturn {
	return map[string]DamageReturn{
		"abilities": p.Abilities,
		"items":     p.Items,
		"runes":     p.Runes,
		"spell":     p.Spell,
	}
}

// PlayerTool is the candidate-tool simulation result attached to a Player:
// the elementwise delta of the post-tool damages against the player's
// baseline damages, the post-tool maximum damages, the scalar sum of every
// delta min and every present delta max, and an optional recommendation map
// (always nil — recommendation is an explicit non-goal).
type PlayerTool struct {
	Dif *PlayerDamages     `json:"dif,omitempty"`
	Max PlayerDamages      `json:"max"`
	Sum float64            `json:"sum"`
	Rec map[string]float64 `json:"rec,omitempty"`
}

// Player is one participant in the match (the active player's own record
// included), extended with the engine's resolved champion/stats/damage/
// tool-simulation fields.
type Player struct {
	ChampionName   string         `json:"championName"`
	Level          int            `json:"level"`
	Position       string         `json:"position"`
	SummonerName   string         `json:"summonerName"`
	Scores         Scores         `json:"scores"`
	Items          []PlayerItem   `json:"items"`
	SummonerSpells SummonerSpells `json:"summonerSpells"`
	SkinID         int            `json:"skinID"`
	Team           string         `json:"team"`

	Champion      *ChampionDescriptor `json:"champion,omitempty"`
	Dragon        *DragonProps        `json:"dragon,omitempty"`
	BonusStats    *CoreStats          `json:"bonusStats,omitempty"`
	BaseStats     *CoreStats          `json:"baseStats,omitempty"`
	ChampionStats *CoreStats          `json:"championStats,omitempty"`
	Damage        *PlayerDamages      `json:"damage,omitempty"`
	Tool          *PlayerTool         `json:"tool,omitempty"`
}

// MatchClock is the live-client match-progress block (time elapsed, map id).
type MatchClock struct {
	GameTime  float64 `json:"gameTime"`
	MapNumber int     `json:"mapNumber"`
}

// GameEvent is one entry of the live client's event feed relevant to dragon
// soul tracking (kill attribution, dragon type taken).
type GameEvent struct {
	EventName  string  `json:"EventName"`
	KillerName *string `json:"KillerName,omitempty"`
	DragonType *string `json:"DragonType,omitempty"`
}

// GameEvents wraps the event feed exactly as the live client emits it.
type GameEvents struct {
	Events []GameEvent `json:"Events"`
}

// GameProps is the full request/response payload: the active player, every
// other participant, the event feed, and the match clock.
type GameProps struct {
	ActivePlayer ActivePlayer `json:"activePlayer"`
	AllPlayers   []Player     `json:"allPlayers"`
	Events       GameEvents   `json:"events"`
	GameData     MatchClock   `json:"gameData"`
}
