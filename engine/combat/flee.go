package combat

import (
	"fmt"

	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// FleeChance is the probability a flee attempt succeeds.
const FleeChance = 0.4

// Bonus hit per enemy on a failed flee.
const (
	FleePenaltyMin = 10
	FleePenaltyMax = 20
)

// AttemptFlee makes one draw against FleeChance. It does not touch state.
func AttemptFlee(r *rng.RNG) (bool, string) {
	if r.Chance(FleeChance) {
		return true, "You duck into an alley and lose them."
	}
	return false, "You try to run but they cut you off!"
}

// FleePenalty applies the bonus hit enemies get after a failed flee. It is
// separate from the regular counterattack.
func FleePenalty(s *types.GameState, r *rng.RNG, enemy types.EnemyType, count int) types.CombatResult {
	res := types.CombatResult{EnemiesRemaining: count}
	if count <= 0 {
		return res
	}
	dmg := count * r.Range(FleePenaltyMin, FleePenaltyMax)
	state.TakeDamage(s, dmg)
	res.DamageTaken = dmg
	res.Log = append(res.Log, fmt.Sprintf("The %s punish you for running: %d damage.", EnemyName(normalizeEnemy(enemy)), dmg))
	if s.Health <= 0 {
		res.Defeat = true
		res.LifeLost, res.GameOver = state.ResolveDefeat(s)
		res.Log = append(res.Log, defeatLines(s, res)...)
	}
	return res
}
