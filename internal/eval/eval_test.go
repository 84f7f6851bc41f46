package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteWordBoundary(t *testing.T) {
	bindings := Bindings{"ap": 50, "currentAP": 100}
	got := substitute("ap + currentAP + apple", bindings)
	assert.Equal(t, "50 + 100 + apple", got)
}

func TestSubstituteLongestNameFirst(t *testing.T) {
	bindings := Bindings{"currentHealth": 10, "current": 1}
	got := substitute("currentHealth", bindings)
	assert.Equal(t, "10", got)
}

func TestEvaluateArithmetic(t *testing.T) {
	bindings := Bindings{"bonusAD": 80, "currentAP": 40}
	min, max := Evaluate("0.5 * bonusAD + currentAP", nil, bindings, nil)
	assert.InDelta(t, 80.0, min, 1e-9)
	assert.Nil(t, max)
}

func TestEvaluateWithMaxFormula(t *testing.T) {
	bindings := Bindings{"bonusAD": 80}
	maxFormula := "bonusAD * 2"
	min, max := Evaluate("bonusAD", &maxFormula, bindings, nil)
	assert.InDelta(t, 80.0, min, 1e-9)
	assert.NotNil(t, max)
	assert.InDelta(t, 160.0, *max, 1e-9)
}

func TestEvaluateExtraBindings(t *testing.T) {
	bindings := Bindings{"bonusAD": 10}
	min, _ := Evaluate("bonusAD + total", nil, bindings, map[string]float64{"total": 5})
	assert.InDelta(t, 15.0, min, 1e-9)
}

func TestEvaluateUnparseableFallsBackToZero(t *testing.T) {
	bindings := Bindings{}
	min, _ := Evaluate("not a valid expr (", nil, bindings, nil)
	assert.Equal(t, 0.0, min)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	bindings := Bindings{"x": 0}
	min, _ := Evaluate("10 / x", nil, bindings, nil)
	assert.Equal(t, 0.0, min)
}
