// Package eval substitutes named bindings into formula strings pulled from
// the reference catalogs and evaluates the resulting arithmetic expression.
package eval

import (
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"regexp"
	"sort"
	"strconv"

	"lol-damage-engine/internal/models"
)

var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Bindings is a flat name -> numeric-literal table, built once per
// (attacker, defender) pair and reused across every formula evaluated
// against it, optionally extended per-call with extra bindings (e.g. an
// item's level-indexed total).
type Bindings map[string]float64

// BuildBindings materializes the fixed binding table documented for the
// evaluation context: property flags, multipliers, level/adaptive ratio,
// and both stat polarities of the active player and the opposing player.
func BuildBindings(ctx models.AllStats) Bindings {
	ap := ctx.ActivePlayer
	return Bindings{
		"steelcapsEffect":        ctx.Property.Steelcaps,
		"attackReductionEffect":  ctx.Property.Rocksolid,
		"exceededHP":             ctx.Property.ExcessHealth,
		"missingHP":              ctx.Property.MissingHealth,
		"magicMod":               ap.Multiplier.Magic,
		"physicalMod":            ap.Multiplier.Physical,
		"level":                  float64(ap.Level),
		"adaptative":             ap.Adaptive.Ratio,
		"currentAP":              ap.ChampionStats.AbilityPower,
		"currentAD":              ap.ChampionStats.AttackDamage,
		"currentLethality":       ap.ChampionStats.PhysicalLethality,
		"maxHP":                  ap.ChampionStats.MaxHealth,
		"maxMana":                ap.ChampionStats.ResourceMax,
		"currentMR":              ap.ChampionStats.MagicResist,
		"currentArmor":           ap.ChampionStats.Armor,
		"currentHealth":          ap.ChampionStats.CurrentHealth,
		"critChance":             ap.ChampionStats.CritChance,
		"critDamage":             ap.ChampionStats.CritDamage,
		"basicAttack":            1.0,
		"attackSpeed":            1.0,
		"baseHP":                 ap.BaseStats.MaxHealth,
		"baseMana":               ap.BaseStats.ResourceMax,
		"baseArmor":              ap.BaseStats.Armor,
		"baseMR":                 ap.BaseStats.MagicResist,
		"baseAD":                 ap.BaseStats.AttackDamage,
		"bonusAD":                ap.BonusStats.AttackDamage,
		"bonusHP":                ap.BonusStats.MaxHealth,
		"bonusArmor":             ap.BonusStats.Armor,
		"bonusMR":                ap.BonusStats.MagicResist,
		"expectedHealth":         ctx.Player.ChampionStats.MaxHealth,
		"expectedMana":           ctx.Player.ChampionStats.ResourceMax,
		"expectedArmor":          ctx.Player.ChampionStats.Armor,
		"expectedMR":             ctx.Player.ChampionStats.MagicResist,
		"expectedAD":             ctx.Player.ChampionStats.AttackDamage,
		"expectedBonusHealth":    ctx.Player.BonusStats.MaxHealth,
	}
}

// With returns a copy of b extended (or overridden) by extra — used when a
// kernel needs to add a one-off binding such as an item's level-indexed
// "total" without mutating the shared context table.
func (b Bindings) With(extra map[string]float64) Bindings {
	out := make(Bindings, len(b)+len(extra))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// substitute performs a single, word-boundary-anchored pass over formula,
// replacing every occurrence of a binding name with its decimal literal.
// Later bindings never see the text produced by earlier ones: all matches
// are located against the original string before any replacement is
// written out.
func substitute(formula string, bindings Bindings) string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	// Each token is a whole identifier compared for exact equality, so a
	// shorter name such as "current" never matches inside "currentHealth";
	// the longest-first sort only fixes the lookup order.
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	return identifierPattern.ReplaceAllStringFunc(formula, func(token string) string {
		for _, name := range names {
			if token == name {
				return strconv.FormatFloat(bindings[name], 'f', -1, 64)
			}
		}
		return token
	})
}

// Evaluate substitutes bindings into minFormula and, when present,
// maxFormula, then evaluates each resulting arithmetic expression.
// Unparseable formulas evaluate to 0. A nil maxFormula yields a nil max.
func Evaluate(minFormula string, maxFormula *string, bindings Bindings, extra map[string]float64) (float64, *float64) {
	effective := bindings
	if len(extra) > 0 {
		effective = bindings.With(extra)
	}

	minValue := evalOne(minFormula, effective)
	if maxFormula == nil {
		return minValue, nil
	}
	maxValue := evalOne(*maxFormula, effective)
	return minValue, &maxValue
}

func evalOne(formula string, bindings Bindings) float64 {
	substituted := substitute(formula, bindings)
	expr, err := parser.ParseExpr(substituted)
	if err != nil {
		log.Printf("⚠️  [EVAL] unparseable formula %q (substituted %q): %v", formula, substituted, err)
		return 0
	}
	value, ok := evalExpr(expr)
	if !ok {
		log.Printf("⚠️  [EVAL] formula %q did not reduce to a number", formula)
		return 0
	}
	return value
}

func evalExpr(expr ast.Expr) (float64, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.FLOAT && e.Kind != token.INT {
			return 0, false
		}
		value, err := strconv.ParseFloat(e.Value, 64)
		if err != nil {
			return 0, false
		}
		return value, true
	case *ast.ParenExpr:
		return evalExpr(e.X)
	case *ast.UnaryExpr:
		x, ok := evalExpr(e.X)
		if !ok {
			return 0, false
		}
		switch e.Op {
		case token.SUB:
			return -x, true
		case token.ADD:
			return x, true
		default:
			return 0, false
		}
	case *ast.BinaryExpr:
		x, ok := evalExpr(e.X)
		if !ok {
			return 0, false
		}
		y, ok := evalExpr(e.Y)
		if !ok {
			return 0, false
		}
		switch e.Op {
		case token.ADD:
			return x + y, true
		case token.SUB:
			return x - y, true
		case token.MUL:
			return x * y, true
		case token.QUO:
			if y == 0 {
				return 0, false
			}
			return x / y, true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}
