// Package combat resolves single attack turns, drug use and flee attempts
// against an enemy health pool shared by all enemies of an encounter.
package combat

import (
	"fmt"
	"math"

	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// Tuning.
const (
	MaxAssists       = 5
	AssistHitChance  = 0.5
	AssistMinDmg     = 5
	AssistMaxDmg     = 15
	CounterMinDmg    = 5
	CounterMaxDmg    = 15
	VestAbsorbChance = 0.5
	VestReduction    = 20
	RecruitChance    = 0.3
	MagazineChance   = 1.0 / 3
)

// VestTier maps vest points to a protection tier: 1-5 is tier 1, 6-10
// tier 2, 11 and up tier 3. No points is tier 0.
func VestTier(points int) int {
	switch {
	case points <= 0:
		return 0
	case points <= 5:
		return 1
	case points <= 10:
		return 2
	default:
		return 3
	}
}

// normalizeEnemy maps unknown enemy types onto the monster fallback.
func normalizeEnemy(enemy types.EnemyType) types.EnemyType {
	switch enemy {
	case types.EnemyGang, types.EnemyPolice, types.EnemyHitSquad, types.EnemyMonster:
		return enemy
	}
	return types.EnemyMonster
}

// ResolveAttack runs one full combat turn: the player's attack, the gang's
// assist, kill accounting, the enemy counterattack and the outcome. State
// is mutated in place (ammo, health, vest, members, lives).
//
// count must be at least 1 and health positive; a fight that is already
// over cannot be attacked.
func ResolveAttack(s *types.GameState, r *rng.RNG, weapon types.Weapon, enemy types.EnemyType, count int, health float64) types.CombatResult {
	if count < 1 || !(health > 0) {
		panic(fmt.Sprintf("combat: ResolveAttack called with %d enemies and %v health", count, health))
	}
	enemy = normalizeEnemy(enemy)
	name := EnemyName(enemy)
	res := types.CombatResult{
		EnemiesRemaining:     count,
		EnemyHealthRemaining: health,
	}

	// 1. Player attack.
	playerDmg, line := playerAttack(s, r, weapon, name)
	res.Log = append(res.Log, line)

	// 2. Gang assist.
	assistDmg := 0
	if assistants := min(s.Members-1, MaxAssists); assistants > 0 {
		hits := 0
		for i := 0; i < assistants; i++ {
			if r.Chance(AssistHitChance) {
				hits++
				assistDmg += r.Range(AssistMinDmg, AssistMaxDmg)
			}
		}
		if hits > 0 {
			res.Log = append(res.Log, fmt.Sprintf("Your crew lands %d of %d hits for %d damage.", hits, assistants, assistDmg))
		} else {
			res.Log = append(res.Log, "Your crew misses everything.")
		}
	}

	// 3. Kill accounting.
	total := playerDmg + assistDmg
	res.DamageDealt = total
	killed := estimateKills(total, count, health)
	res.EnemiesKilled = killed
	res.EnemiesRemaining = count - killed
	res.EnemyHealthRemaining = math.Max(0, health-float64(total))
	if killed > 0 {
		res.Log = append(res.Log, fmt.Sprintf("You took out %d of the %s.", killed, name))
	}

	// 4. Counterattack.
	if res.EnemiesRemaining > 0 && res.EnemyHealthRemaining > 0 {
		dmg := res.EnemiesRemaining * r.Range(CounterMinDmg, CounterMaxDmg)
		counter := pick(r, counterLines[enemy])
		res.Log = append(res.Log, fmt.Sprintf(counter+" for %d damage.", name, dmg))
		if s.Weapons.Vest > 0 && r.Chance(VestAbsorbChance) {
			reduction := VestReduction * VestTier(s.Weapons.Vest)
			absorbed := min(dmg, reduction)
			dmg -= absorbed
			s.Weapons.Vest--
			res.Log = append(res.Log, fmt.Sprintf("Your vest soaks up %d of it.", absorbed))
		}
		state.TakeDamage(s, dmg)
		res.DamageTaken = dmg
	}

	// 5. Outcome.
	if res.EnemyHealthRemaining <= 0 || res.EnemiesRemaining == 0 {
		res.Victory = true
		res.EnemiesRemaining = 0
		res.EnemyHealthRemaining = 0
		res.Log = append(res.Log, pick(r, victoryLines[enemy]))
		if enemy == types.EnemyGang || enemy == types.EnemyHitSquad {
			s.Squidies = max(0, s.Squidies-killed)
		}
		if enemy != types.EnemyPolice && r.Chance(RecruitChance) {
			s.Members++
			res.Recruited = true
			res.Log = append(res.Log, fmt.Sprintf("One of them switches sides and joins %s.", gangLabel(s)))
		}
	}
	if s.Health <= 0 {
		res.Defeat = true
		res.LifeLost, res.GameOver = state.ResolveDefeat(s)
		res.Log = append(res.Log, defeatLines(s, res)...)
	}
	return res
}

// playerAttack validates and spends ammo, then rolls damage.
func playerAttack(s *types.GameState, r *rng.RNG, weapon types.Weapon, enemyName string) (int, string) {
	spec, ok := Lookup(weapon)
	if !ok {
		return 0, fmt.Sprintf("You don't know how to fight with %q.", weapon)
	}
	if !Owns(s, weapon) {
		return 0, fmt.Sprintf("You don't have a %s.", spec.Name)
	}
	if !hasAmmo(s, spec) {
		return 0, fmt.Sprintf("No ammo for the %s! %s", spec.Name, pick(r, missLines))
	}

	upgrade := types.UpgradeNone
	if spec.Pistol && s.PistolUpgraded {
		upgrade = s.PistolUpgradeType
	}
	free := upgrade == types.UpgradeMagazine && r.Chance(MagazineChance)
	_, exploding := consumeAmmo(s, spec, free)

	dmg := r.Range(spec.MinDmg, spec.MaxDmg)
	if exploding {
		dmg *= 2
	}
	switch upgrade {
	case types.UpgradeDamage:
		dmg = int(float64(dmg) * 1.5)
	case types.UpgradeAccuracy:
		dmg += r.Range(5, 10)
	}

	line := fmt.Sprintf(pick(r, attackLines[weapon]), enemyName)
	if exploding {
		line += " with exploding rounds"
	}
	line += fmt.Sprintf(" for %d damage.", dmg)
	if free {
		line += " (The extended mag saves a round.)"
	}
	return dmg, line
}

// estimateKills converts damage against a shared pool into a kill count.
// Damage short of the pool leaves at least one enemy standing; damage that
// covers the pool kills everyone.
func estimateKills(total, count int, pool float64) int {
	if count <= 0 {
		return 0
	}
	if float64(total) >= pool {
		return count
	}
	if total <= 0 {
		return 0
	}
	perEnemy := pool / float64(count)
	est := max(1, int(math.Floor(float64(total)/perEnemy)))
	// The pool, not the head count, decides victory: until it is emptied
	// someone is still standing.
	return min(est, count-1)
}

func gangLabel(s *types.GameState) string {
	if s.GangName == "" {
		return "your gang"
	}
	return s.GangName
}

func defeatLines(s *types.GameState, res types.CombatResult) []string {
	switch {
	case res.GameOver:
		return []string{"You went down for good. GAME OVER."}
	case res.LifeLost:
		return []string{fmt.Sprintf("You went down! You wake up patched together. Lives left: %d.", s.Lives)}
	}
	return nil
}
