package combat

import (
	"fmt"

	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// CrackDamage is the health cost of a hit of crack.
const CrackDamage = 5

var narrativeDrugLines = map[string]string{
	types.DrugWeed:      "You spark up. Everything slows down for a minute.",
	types.DrugCoke:      "Your heart races. You feel ten feet tall.",
	types.DrugIce:       "Your jaw clenches. You won't sleep for days.",
	types.DrugPixieDust: "The streetlights start to sparkle.",
}

// UseDrug spends one unit of a drug and reports its effect. Health is not
// touched here; pass the result to ApplyDrug.
func UseDrug(s *types.GameState, r *rng.RNG, kind string) types.DrugResult {
	n, ok := state.DrugCount(s, kind)
	if !ok {
		return types.DrugResult{Message: fmt.Sprintf("There's no such thing as %q on these streets.", kind)}
	}
	if n < 1 {
		return types.DrugResult{Message: fmt.Sprintf("You don't have any %s.", kind)}
	}
	_ = state.AddDrug(s, kind, -1)

	switch kind {
	case types.DrugCrack:
		return types.DrugResult{
			Success:     true,
			Message:     fmt.Sprintf("You hit the crack pipe. Wired, but it costs you %d health.", CrackDamage),
			HealthDelta: -CrackDamage,
		}
	case types.DrugPercs:
		heal := r.Range(10, 15)
		return types.DrugResult{
			Success:     true,
			Message:     fmt.Sprintf("You pop a perc. The pain fades (+%d health).", heal),
			HealthDelta: heal,
		}
	}
	return types.DrugResult{Success: true, Message: narrativeDrugLines[kind]}
}

// ApplyDrug applies a drug result's health change and resolves any defeat.
func ApplyDrug(s *types.GameState, res types.DrugResult) (lifeLost, gameOver bool) {
	if !res.Success || res.HealthDelta == 0 {
		return false, state.IsGameOver(s)
	}
	if res.HealthDelta > 0 {
		state.Heal(s, res.HealthDelta)
		return false, state.IsGameOver(s)
	}
	state.TakeDamage(s, -res.HealthDelta)
	return state.ResolveDefeat(s)
}
