package models

import "encoding/json"

// LocalItemForm holds a melee/ranged formula pair for one rank or level.
type LocalItemForm struct {
	Melee  string `json:"melee"`
	Ranged string `json:"ranged"`
}

// LocalItemData is one entry of the static item-effect catalog.
type LocalItemData struct {
	Name     string          `json:"name"`
	ItemType string          `json:"type"`
	Min      LocalItemForm   `json:"min"`
	Max      *LocalItemForm  `json:"max,omitempty"`
	OnHit    bool            `json:"onhit"`
	Effect   []float64       `json:"effect,omitempty"`
}

// LocalItems is the parsed contents of effects/items.json.
type LocalItems struct {
	Data map[string]LocalItemData `json:"data"`
}

// LocalRuneForm holds a melee/ranged formula pair for a rune.
type LocalRuneForm struct {
	Melee  string `json:"melee"`
	Ranged string `json:"ranged"`
}

// LocalRuneData is one entry of the static rune-effect catalog.
type LocalRuneData struct {
	Name     string         `json:"name"`
	RuneType string         `json:"type"`
	Min      LocalRuneForm  `json:"min"`
	Max      *LocalRuneForm `json:"max,omitempty"`
}

// LocalRunes is the parsed contents of effects/runes.json.
type LocalRunes struct {
	Data map[string]LocalRuneData `json:"data"`
}

// LocalChampionAbility is one ability slot ("Q","W","E","R","P") for a champion.
type LocalChampionAbility struct {
	AbilityType string   `json:"type"`
	Area        *bool    `json:"area,omitempty"`
	Min         []string `json:"min"`
	Max         []string `json:"max,omitempty"`
}

// LocalChampion is the per-champion ability-formula pack, keyed by slot.
type LocalChampion map[string]LocalChampionAbility

// LocalStatsGold carries the gold costs of a tool catalog entry.
type LocalStatsGold struct {
	Base        int  `json:"base"`
	Total       int  `json:"total"`
	Sell        int  `json:"sell"`
	Purchasable bool `json:"purchasable"`
}

// LocalStatsEntry is one tool catalog entry (cache/stats.json).
type LocalStatsEntry struct {
	Name  string `json:"name"`
	Stats struct {
		Raw       map[string]json.RawMessage `json:"raw"`
		Modifiers map[string]json.RawMessage `json:"mod"`
	} `json:"stats"`
	Stack bool            `json:"stack"`
	Gold  LocalStatsGold  `json:"gold"`
	Maps  map[string]bool `json:"maps"`
}

// LocalStats is the full tool catalog, keyed by tool (item) ID.
type LocalStats map[string]LocalStatsEntry

// IdsCache maps a Riot internal champion name to its display name per locale.
type IdsCache map[string]map[string]string

// RiotItemGold is the gold block of a raw Riot item descriptor.
type RiotItemGold struct {
	Base        int  `json:"base"`
	Total       int  `json:"total"`
	Sell        int  `json:"sell"`
	Purchasable bool `json:"purchasable"`
}

// RiotItem is one entry of the raw Riot item descriptor cache.
type RiotItem struct {
	Name        *string            `json:"name"`
	Gold        *RiotItemGold      `json:"gold"`
	Description *string            `json:"description"`
	Stats       map[string]float64 `json:"stats"`
	Maps        map[string]bool    `json:"maps"`
	From        []string           `json:"from,omitempty"`
}

// ItemCache is the parsed contents of cache/item.json.
type ItemCache struct {
	Data map[string]RiotItem `json:"data"`
}

// RiotChampionImage is the small image descriptor carried on spells/passive.
type RiotChampionImage struct {
	Full string `json:"full"`
}

// RiotChampionStats is the per-level growth block of a Riot champion descriptor.
type RiotChampionStats struct {
	HP                   float64 `json:"hp"`
	HPPerLevel           float64 `json:"hpperlevel"`
	MP                   float64 `json:"mp"`
	MPPerLevel           float64 `json:"mpperlevel"`
	Armor                float64 `json:"armor"`
	ArmorPerLevel        float64 `json:"armorperlevel"`
	SpellBlock           float64 `json:"spellblock"`
	SpellBlockPerLevel   float64 `json:"spellblockperlevel"`
	AttackRange          float64 `json:"attackrange"`
	AttackDamage         float64 `json:"attackdamage"`
	AttackDamagePerLevel float64 `json:"attackdamageperlevel"`
	AttackSpeedPerLevel  float64 `json:"attackspeedperlevel"`
	AttackSpeed          float64 `json:"attackspeed"`
}

// RiotChampionPassive is the passive block of a Riot champion descriptor.
type RiotChampionPassive struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       RiotChampionImage `json:"image"`
}

// RiotChampionSpell is one active ability of a Riot champion descriptor.
type RiotChampionSpell struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Cooldown    []float64         `json:"cooldown"`
	Image       RiotChampionImage `json:"image"`
}

// RiotChampionSkin identifies one purchasable skin.
type RiotChampionSkin struct {
	Num int `json:"num"`
}

// RiotChampionData is one entry of the raw Riot champion descriptor cache.
type RiotChampionData struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	Image   RiotChampionImage   `json:"image"`
	Skins   []RiotChampionSkin  `json:"skins"`
	Stats   RiotChampionStats   `json:"stats"`
	Spells  []RiotChampionSpell `json:"spells"`
	Passive RiotChampionPassive `json:"passive"`
}

// ChampionCache is the parsed contents of cache/champions/<internalId>.json.
type ChampionCache struct {
	Data map[string]RiotChampionData `json:"data"`
}
