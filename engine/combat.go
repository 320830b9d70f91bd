package engine

import (
	"fmt"

	"github.com/nathoo/gangwar/engine/combat"
	"github.com/nathoo/gangwar/engine/parser"
	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// combatVerbs are the commands allowed during a fight.
var combatVerbs = map[string]bool{
	"attack":  true,
	"flee":    true,
	"use":     true,
	"status":  true,
	"weapons": true,
	"help":    true,
}

// isCombatVerb returns true if the verb is allowed during a fight.
func isCombatVerb(verb string) bool {
	return combatVerbs[verb]
}

// defaultWeapon picks the pistol when it can fire and the knife otherwise.
func defaultWeapon(s *types.GameState) types.Weapon {
	if combat.Owns(s, types.WeaponPistol) && combat.AmmoLeft(s, types.WeaponPistol) > 0 {
		return types.WeaponPistol
	}
	return types.WeaponKnife
}

func (e *Engine) attack(intent types.Intent, result *types.Result) {
	s := e.State
	f := s.Fight
	if f == nil {
		result.Output = append(result.Output, "There's nobody to fight. Try wander.")
		return
	}

	weapon := defaultWeapon(s)
	if intent.Object != "" {
		name, ok := parser.Match(intent.Object, weaponNames())
		if !ok {
			result.Output = append(result.Output, fmt.Sprintf("You don't have anything called %q.", intent.Object))
			return
		}
		weapon = types.Weapon(name)
	}

	res := combat.ResolveAttack(s, e.RNG, weapon, f.Enemy, f.Count, f.Health)
	result.Combat = &res
	result.Output = append(result.Output, res.Log...)

	switch {
	case res.Defeat:
		// ResolveDefeat already closed the fight.
	case res.Victory:
		s.Fight = nil
	default:
		f.Count = res.EnemiesRemaining
		f.Health = res.EnemyHealthRemaining
		result.Output = append(result.Output, fightLine(f))
	}
}

func (e *Engine) flee(result *types.Result) {
	s := e.State
	f := s.Fight
	if f == nil {
		result.Output = append(result.Output, "You're not running from anything.")
		return
	}
	ok, msg := combat.AttemptFlee(e.RNG)
	result.Output = append(result.Output, msg)
	if ok {
		s.Fight = nil
		return
	}
	res := combat.FleePenalty(s, e.RNG, f.Enemy, f.Count)
	result.Combat = &res
	result.Output = append(result.Output, res.Log...)
	if s.Fight != nil {
		result.Output = append(result.Output, fightLine(s.Fight))
	}
}

func (e *Engine) use(intent types.Intent, result *types.Result) {
	kind, ok := parser.Match(intent.Object, state.DrugKinds())
	if !ok {
		result.Output = append(result.Output, "Use what? (crack, percs, weed, coke, ice, pixie_dust)")
		return
	}
	res := combat.UseDrug(e.State, e.RNG, kind)
	result.Output = append(result.Output, res.Message)
	lifeLost, gameOver := combat.ApplyDrug(e.State, res)
	switch {
	case gameOver:
		result.Output = append(result.Output, "You overdid it. GAME OVER.")
	case lifeLost:
		result.Output = append(result.Output, fmt.Sprintf("You overdid it and wake up in the ER. Lives left: %d.", e.State.Lives))
	}
}

// fightLine summarizes an open fight.
func fightLine(f *types.Fight) string {
	return fmt.Sprintf("%d %s stand in your way (%.0f hp). attack, use, or flee.",
		f.Count, combat.EnemyName(f.Enemy), f.Health)
}
