package models

// Form is the attacker's melee/ranged classification, derived from
// attack range (> 350 means ranged).
type Form string

const (
	FormMelee  Form = "melee"
	FormRanged Form = "ranged"
)

// AdaptiveType names which of AD/AP an adaptive-damage formula resolves to.
type AdaptiveType string

const (
	AdaptivePhysical AdaptiveType = "physical"
	AdaptiveMagic    AdaptiveType = "magic"
)

// Multiplier is the three resistance-derived multipliers a kernel applies
// to its raw formula output: physical/magic from penetration-reduced
// resist, general from any flat rune/item adjustment (rune 8299, item 4015).
type Multiplier struct {
	Magic    float64 `json:"magic"`
	Physical float64 `json:"physical"`
	General  float64 `json:"general"`
}

// Adaptive carries the resolved adaptive-damage type (0.35*bonusAD >= 0.2*AP
// selects physical) and, as Ratio, the multiplier of the selected type.
type Adaptive struct {
	AdaptiveType AdaptiveType `json:"adaptativeType"`
	Ratio        float64      `json:"ratio"`
}

// ActivePlayerStats is the full evaluated-context stat block bound into the
// expression evaluator for abilities/items/runes/spell kernels belonging to
// the active player.
type ActivePlayerStats struct {
	MaxHealth               float64 `json:"maxHealth"`
	Armor                   float64 `json:"armor"`
	MagicResist             float64 `json:"magicResist"`
	AttackDamage            float64 `json:"attackDamage"`
	ResourceMax             float64 `json:"resourceMax"`
	AbilityPower            float64 `json:"abilityPower"`
	CurrentHealth           float64 `json:"currentHealth"`
	AttackSpeed             float64 `json:"attackSpeed"`
	AttackRange             float64 `json:"attackRange"`
	CritChance              float64 `json:"critChance"`
	CritDamage              float64 `json:"critDamage"`
	PhysicalLethality       float64 `json:"physicalLethality"`
	ArmorPenetrationPercent float64 `json:"armorPenetrationPercent"`
	MagicPenetrationPercent float64 `json:"magicPenetrationPercent"`
	MagicPenetrationFlat    float64 `json:"magicPenetrationFlat"`
}

// AllStatsActivePlayer is the full computed context for the active player:
// identity, form, the three multipliers, the adaptive selection, the flat
// stat block bound into kernels, and both stat polarities.
type AllStatsActivePlayer struct {
	ID            string            `json:"id"`
	Level         int               `json:"level"`
	Form          Form              `json:"form"`
	Multiplier    Multiplier        `json:"multiplier"`
	Adaptive      Adaptive          `json:"adaptative"`
	ChampionStats ActivePlayerStats `json:"championStats"`
	BaseStats     CoreStats         `json:"baseStats"`
	BonusStats    CoreStats         `json:"bonusStats"`
}

// RealStats is the post-penetration effective armor/MR used to derive the
// physical/magic multipliers for an opposing player.
type RealStats struct {
	Armor       float64 `json:"armor"`
	MagicResist float64 `json:"magicResist"`
}

// AllStatsPlayer is the computed context for one opposing player: its
// multiplier against the attacker, its effective (post-penetration) resists,
// and its stat block in both polarities.
type AllStatsPlayer struct {
	Multiplier    Multiplier `json:"multiplier"`
	RealStats     RealStats  `json:"realStats"`
	ChampionStats CoreStats  `json:"championStats"`
	BaseStats     CoreStats  `json:"baseStats"`
	BonusStats    CoreStats  `json:"bonusStats"`
}

// Property holds the health-threshold signals (over and excess health compare
// the opposing player to the attacker; missing health is the attacker's own)
// and the three flags driven by the opposing player's items: steelcaps and
// randuin are 1.0 unless item 3143 is owned, rocksolid starts at 0.
type Property struct {
	OverHealth    float64 `json:"overHealth"`
	MissingHealth float64 `json:"missingHealth"`
	ExcessHealth  float64 `json:"excessHealth"`
	Steelcaps     float64 `json:"steelcaps"`
	Rocksolid     float64 `json:"rocksolid"`
	Randuin       float64 `json:"randuin"`
}

// AllStats is the full binding context for one (attacker, opponent) pair,
// fed verbatim into the expression evaluator for every kernel evaluated
// against that opponent.
type AllStats struct {
	ActivePlayer AllStatsActivePlayer `json:"activePlayer"`
	Player       AllStatsPlayer       `json:"player"`
	Property     Property             `json:"property"`
}
